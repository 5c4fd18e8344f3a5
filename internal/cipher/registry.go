package cipher

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is a concurrency-safe set of named operations.
type Registry struct {
	mu  sync.RWMutex
	ops map[string]Operation
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]Operation)}
}

// DefaultRegistry holds the operations registered at init.
var DefaultRegistry = NewRegistry()

// Register adds op. Names must be unique.
func (r *Registry) Register(op Operation) error {
	if op == nil {
		return fmt.Errorf("cannot register nil operation")
	}

	name := op.Name()
	if name == "" {
		return fmt.Errorf("operation name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ops[name]; exists {
		return fmt.Errorf("operation %s is already registered", name)
	}

	r.ops[name] = op
	return nil
}

// Get retrieves an operation by name.
func (r *Registry) Get(name string) (Operation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	op, exists := r.ops[name]
	return op, exists
}

// List returns all operations sorted by name, optionally filtered by type.
func (r *Registry) List(types ...OperationType) []Operation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ops := make([]Operation, 0, len(r.ops))
	for _, op := range r.ops {
		if len(types) > 0 && !hasType(types, op.Type()) {
			continue
		}
		ops = append(ops, op)
	}

	sort.Slice(ops, func(i, j int) bool {
		return ops[i].Name() < ops[j].Name()
	})

	return ops
}

// Unregister removes an operation (mainly for testing).
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.ops, name)
}

func hasType(types []OperationType, t OperationType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

// RegisterOperation adds an operation to DefaultRegistry.
func RegisterOperation(op Operation) error {
	return DefaultRegistry.Register(op)
}

// GetOperation retrieves an operation from DefaultRegistry.
func GetOperation(name string) (Operation, bool) {
	return DefaultRegistry.Get(name)
}

// ListOperations returns the operations in DefaultRegistry.
func ListOperations(types ...OperationType) []Operation {
	return DefaultRegistry.List(types...)
}
