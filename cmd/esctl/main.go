// Command esctl runs search engine actions from the shell and prints the
// JSON response.
//
//	esctl --url http://localhost:9200 status logs-a logs-b
//	esctl split logs logs-split --wait-for-active-shards 1
//	esctl search comments --match title=Ruby --size 5 --path hits.total.value
//	esctl dsl has-parent --parent-type article --score-mode max --match title=Ruby
//	esctl --request-timeout 5s --compress search logs --match message=timeout
//
// The URL may also come from ESCTL_URL or a YAML config file (--config).
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
