package elastic

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/url"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed params.yaml
var defaultParams []byte

// Registry maps action ids to the query parameter names each action accepts.
// Populate it before handing it to a Client; after that it is only read, so
// concurrent use without locking is safe.
type Registry struct {
	actions map[string]map[string]struct{}
}

// NewRegistry builds a registry from an explicit table.
func NewRegistry(table map[string][]string) *Registry {
	r := &Registry{actions: make(map[string]map[string]struct{}, len(table))}
	for action, names := range table {
		r.Register(action, names...)
	}
	return r
}

// LoadRegistry parses a YAML document of the form
//
//	indices.split: [timeout, master_timeout]
func LoadRegistry(rd io.Reader) (*Registry, error) {
	var table map[string][]string
	if err := yaml.NewDecoder(rd).Decode(&table); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode params registry: %w", err)
	}
	return NewRegistry(table), nil
}

var parseDefault = sync.OnceValue(func() map[string][]string {
	var table map[string][]string
	if err := yaml.Unmarshal(defaultParams, &table); err != nil {
		panic(fmt.Sprintf("elastic: embedded params.yaml: %v", err))
	}
	return table
})

// DefaultRegistry returns a fresh registry covering every action this
// package ships. Each call returns an independent copy.
func DefaultRegistry() *Registry {
	return NewRegistry(parseDefault())
}

// Register sets the allow-list for an action, replacing any previous one.
func (r *Registry) Register(action string, names ...string) {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	if r.actions == nil {
		r.actions = make(map[string]map[string]struct{})
	}
	r.actions[action] = set
}

// Get returns the sorted allow-list for an action.
func (r *Registry) Get(action string) ([]string, error) {
	set, ok := r.actions[action]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}
	return slices.Sorted(maps.Keys(set)), nil
}

// MustGet is like Get but panics if the action was never registered.
func (r *Registry) MustGet(action string) []string {
	names, err := r.Get(action)
	if err != nil {
		panic("elastic: " + err.Error())
	}
	return names
}

// Actions returns the registered action ids, sorted.
func (r *Registry) Actions() []string {
	return slices.Sorted(maps.Keys(r.actions))
}

// Filter keeps the arguments the action accepts and encodes them as query
// parameters. Unknown names are dropped. It panics for an unregistered
// action, which means a dispatcher and its registry disagree.
func (r *Registry) Filter(action string, args Args) (url.Values, error) {
	set, ok := r.actions[action]
	if !ok {
		panic(fmt.Sprintf("elastic: %v: %s", ErrUnknownAction, action))
	}
	params := make(url.Values)
	for name, v := range args {
		if _, ok := set[name]; !ok || v == nil {
			continue
		}
		s, err := encodeParam(v)
		if err != nil {
			return nil, invalidArgument(name, "%v", err)
		}
		params.Set(name, s)
	}
	return params, nil
}
