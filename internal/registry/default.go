package registry

import "actlog/internal/model"

// defaultRegistry backs the package-level convenience functions used at the
// application edge. Library code should take an explicit *Registry instead.
var defaultRegistry = New()

// Default returns the process-wide default registry.
func Default() *Registry {
	return defaultRegistry
}

// Register adds an adapter to the default registry.
func Register(a model.Adapter) {
	defaultRegistry.Register(a)
}

// Get returns an adapter from the default registry.
func Get(typ string) (model.Adapter, bool) {
	return defaultRegistry.Get(typ)
}

// Parse routes a raw line through the default registry.
func Parse(raw string) *model.Line {
	return defaultRegistry.Parse(raw)
}

// Types lists the default registry's types in registration order.
func Types() []string {
	return defaultRegistry.Types()
}
