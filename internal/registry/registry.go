// Package registry routes raw log lines to the first format adapter able to
// parse them.
package registry

import (
	"fmt"
	"os"

	"actlog/internal/model"
)

// Registry holds format adapters keyed by type name and tries them in
// registration order. Instances are not safe for concurrent mutation; the
// expected pattern is to register everything up front.
type Registry struct {
	order    []string
	adapters map[string]model.Adapter

	// Warn receives non-fatal registration warnings. Defaults to stderr.
	Warn func(msg string)
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		adapters: make(map[string]model.Adapter),
		Warn: func(msg string) {
			fmt.Fprintln(os.Stderr, "actlog: "+msg)
		},
	}
}

// Register stores an adapter under its type name. Re-registering an existing
// type replaces the previous adapter (last write wins) and emits a warning;
// the position in the trial order is unchanged.
func (r *Registry) Register(a model.Adapter) {
	typ := a.Type()
	if _, exists := r.adapters[typ]; exists {
		if r.Warn != nil {
			r.Warn(fmt.Sprintf("adapter %q already registered, replacing", typ))
		}
	} else {
		r.order = append(r.order, typ)
	}
	r.adapters[typ] = a
}

// Get returns the adapter registered under typ.
func (r *Registry) Get(typ string) (model.Adapter, bool) {
	a, ok := r.adapters[typ]
	return a, ok
}

// Parse tries every registered adapter in registration order and returns the
// first non-nil result, or nil when no adapter matches or the registry is
// empty. A panicking adapter is a programming error and is deliberately not
// recovered here.
func (r *Registry) Parse(raw string) *model.Line {
	for _, typ := range r.order {
		if line := r.adapters[typ].Parse(raw); line != nil {
			return line
		}
	}
	return nil
}

// Types returns the registered type names in registration order.
func (r *Registry) Types() []string {
	types := make([]string, len(r.order))
	copy(types, r.order)
	return types
}
