package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tidwall/gjson"

	"github.com/bjaus/elastic"
	"github.com/bjaus/elastic/dsl"
)

// app carries the state shared by every subcommand.
type app struct {
	cfg    *viper.Viper
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{cfg: viper.New(), out: out, errOut: errOut}

	root := &cobra.Command{
		Use:               "esctl",
		Short:             "Run search engine REST actions",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.init()
		},
	}

	flags := root.PersistentFlags()
	flags.String("url", elastic.DefaultURL, "Base URL of the cluster")
	flags.Bool("debug", false, "Log every request")
	flags.StringP("config", "c", "", "Path to a YAML config file")
	flags.String("path", "", "Print only the value at this gjson path of the response")
	flags.Duration("request-timeout", 0, "Bound each request to this duration (0 for none)")
	flags.Bool("compress", false, "Gzip request bodies")
	for _, name := range []string{"url", "debug", "config", "path", "request-timeout", "compress"} {
		if err := a.cfg.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
	a.cfg.SetEnvPrefix("ESCTL")
	a.cfg.AutomaticEnv()

	root.SetOut(out)
	root.SetErr(errOut)
	root.AddCommand(
		a.newActionsCmd(),
		a.newStatusCmd(),
		a.newSplitCmd(),
		a.newSearchCmd(),
		a.newDSLCmd(),
	)
	return root
}

func (a *app) init() error {
	if path := a.cfg.GetString("config"); path != "" {
		a.cfg.SetConfigFile(path)
		a.cfg.SetConfigType("yaml")
		if err := a.cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	level := slog.LevelInfo
	if a.cfg.GetBool("debug") {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
	return nil
}

func (a *app) client() (*elastic.Client, error) {
	opts := []elastic.Option{
		elastic.WithURL(a.cfg.GetString("url")),
		elastic.WithLogger(a.logger),
		elastic.WithMiddleware(elastic.OpaqueID()),
	}
	if a.cfg.GetBool("debug") {
		opts = append(opts, elastic.WithMiddleware(elastic.Logger(a.logger)))
	}
	if d := a.cfg.GetDuration("request-timeout"); d > 0 {
		opts = append(opts, elastic.WithMiddleware(elastic.Timeout(d)))
	}
	if a.cfg.GetBool("compress") {
		opts = append(opts, elastic.WithMiddleware(elastic.Compress()))
	}
	return elastic.New(opts...)
}

// print writes v as indented JSON, or just the selected value when --path is set.
func (a *app) print(v any) error {
	if elastic.IsNotFound(v) {
		_, err := fmt.Fprintln(a.out, "not found")
		return err
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	if path := a.cfg.GetString("path"); path != "" {
		_, err = fmt.Fprintln(a.out, gjson.GetBytes(b, path).String())
		return err
	}
	_, err = fmt.Fprintln(a.out, string(b))
	return err
}

func (a *app) newActionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List the actions and the query parameters each accepts",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			reg := elastic.DefaultRegistry()
			for _, action := range reg.Actions() {
				names := reg.MustGet(action)
				if _, err := fmt.Fprintf(a.out, "%s\t%s\n", action, strings.Join(names, ",")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) newStatusCmd() *cobra.Command {
	var ignoreMissing, recovery bool
	cmd := &cobra.Command{
		Use:   "status [index...]",
		Short: "Show index status",
		RunE: func(cmd *cobra.Command, indices []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			args := elastic.Args{"index": indices}
			if ignoreMissing {
				args["ignore"] = 404
			}
			if recovery {
				args["recovery"] = true
			}
			body, err := c.Indices.Status(cmd.Context(), args)
			if err != nil {
				return err
			}
			return a.print(body)
		},
	}
	cmd.Flags().BoolVar(&ignoreMissing, "ignore-missing", false, "Print \"not found\" instead of failing on a missing index")
	cmd.Flags().BoolVar(&recovery, "recovery", false, "Include shard recovery information")
	return cmd
}

func (a *app) newSplitCmd() *cobra.Command {
	var waitFor, timeout string
	cmd := &cobra.Command{
		Use:   "split <index> <target>",
		Short: "Split an index into a new index with more primary shards",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, argv []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			args := elastic.Args{"index": argv[0], "target": argv[1]}
			if waitFor != "" {
				args["wait_for_active_shards"] = waitFor
			}
			if timeout != "" {
				args["timeout"] = timeout
			}
			body, err := c.Indices.Split(cmd.Context(), args)
			if err != nil {
				return err
			}
			return a.print(body)
		},
	}
	cmd.Flags().StringVar(&waitFor, "wait-for-active-shards", "", "Active shards to wait for on the target")
	cmd.Flags().StringVar(&timeout, "timeout", "", "Operation timeout (e.g. 30s)")
	return cmd
}

func (a *app) newSearchCmd() *cobra.Command {
	var (
		matches []string
		size    int
	)
	cmd := &cobra.Command{
		Use:   "search [index...]",
		Short: "Search with match clauses combined by bool/must",
		RunE: func(cmd *cobra.Command, indices []string) error {
			body, err := searchBody(matches, size)
			if err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			res, err := c.Search(cmd.Context(), elastic.Args{"index": indices, "body": body})
			if err != nil {
				return err
			}
			return a.print(res)
		},
	}
	cmd.Flags().StringArrayVar(&matches, "match", nil, "field=value match clause (repeatable)")
	cmd.Flags().IntVar(&size, "size", 10, "Number of hits")
	return cmd
}

func (a *app) newDSLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dsl",
		Short: "Print query DSL bodies without contacting a cluster",
	}

	var parentType, scoreMode, match string
	hasParent := &cobra.Command{
		Use:   "has-parent",
		Short: "Build a has_parent query",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			q := dsl.NewHasParent()
			if parentType != "" {
				q.ParentType(parentType)
			}
			if scoreMode != "" {
				q.ScoreMode(scoreMode)
			}
			if match != "" {
				field, value, err := splitMatch(match)
				if err != nil {
					return err
				}
				q.QueryFunc(func(inner *dsl.Query) { inner.Match(field, value) })
			}
			return a.print(q.Map())
		},
	}
	hasParent.Flags().StringVar(&parentType, "parent-type", "", "Parent relation name")
	hasParent.Flags().StringVar(&scoreMode, "score-mode", "", "Score mode")
	hasParent.Flags().StringVar(&match, "match", "", "field=value match for the parent query")

	cmd.AddCommand(hasParent)
	return cmd
}

func searchBody(matches []string, size int) (*dsl.Search, error) {
	s := dsl.NewSearch().Size(size)
	switch len(matches) {
	case 0:
		s.QueryFunc(func(q *dsl.Query) { q.MatchAll() })
	case 1:
		field, value, err := splitMatch(matches[0])
		if err != nil {
			return nil, err
		}
		s.Query(dsl.NewMatch(field, value))
	default:
		b := dsl.NewBool()
		for _, m := range matches {
			field, value, err := splitMatch(m)
			if err != nil {
				return nil, err
			}
			b.Must(dsl.NewMatch(field, value))
		}
		s.Query(b)
	}
	return s, nil
}

func splitMatch(s string) (field, value string, err error) {
	field, value, ok := strings.Cut(s, "=")
	if !ok || field == "" {
		return "", "", fmt.Errorf("invalid match %q: want field=value", s)
	}
	return field, value, nil
}
