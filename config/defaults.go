package config

import (
	"sync"
)

// useDefault is the unexported type behind the Default sentinel
type useDefault struct{}

// Default is the sentinel value meaning "use the configured default".
// A field write receiving Default resolves the effective value from the
// ambient per-type Defaults registry before validation.
var Default any = useDefault{}

// IsDefault reports whether v is the Default sentinel
func IsDefault(v any) bool {
	_, ok := v.(useDefault)
	return ok
}

// Defaults is a per-type registry of configured default values, keyed by
// type name and field name.
type Defaults struct {
	mu     sync.RWMutex
	values map[string]map[string]any
}

// NewDefaults creates an empty defaults registry
func NewDefaults() *Defaults {
	return &Defaults{
		values: make(map[string]map[string]any),
	}
}

// Set configures the default value for a field of the given type
func (d *Defaults) Set(typeName, field string, value any) {
	d.mu.Lock()
	defer d.mu.Unlock()

	fields, exists := d.values[typeName]
	if !exists {
		fields = make(map[string]any)
		d.values[typeName] = fields
	}
	fields[field] = value
}

// Get returns the configured default for a field of the given type
func (d *Defaults) Get(typeName, field string) (any, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	fields, exists := d.values[typeName]
	if !exists {
		return nil, false
	}
	v, exists := fields[field]
	return v, exists
}

// Clear removes all configured defaults.
// This is primarily useful for testing.
func (d *Defaults) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.values = make(map[string]map[string]any)
}

// ambient is the process-wide defaults registry consulted when a module
// is not given an explicit one
var ambient = NewDefaults()

// Ambient returns the process-wide defaults registry
func Ambient() *Defaults {
	return ambient
}
