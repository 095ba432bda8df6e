// Package command maps the stable identifiers key bindings are stored
// under to their handlers. Bindings persist the identifier, never a
// function reference, so a binding read from disk resolves against
// whatever handler is registered under that name at runtime.
package command

import (
	"errors"
	"fmt"
	"sort"
)

// Handler executes a command. args is the trailing argument text from
// the binding, possibly empty.
type Handler func(args string)

// ErrUnknownCommand indicates execution of an identifier with no
// registered handler.
var ErrUnknownCommand = errors.New("unknown command")

// Registry manages handler registration by exact command identifier.
//
// Registry is not safe for concurrent use; registration happens at
// startup and execution on the event-loop goroutine.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Register adds a handler under an identifier. Empty identifiers, nil
// handlers, and duplicate registrations are programming errors and are
// rejected.
func (r *Registry) Register(name string, h Handler) error {
	if name == "" {
		return fmt.Errorf("command identifier cannot be empty")
	}
	if h == nil {
		return fmt.Errorf("command %s: handler cannot be nil", name)
	}
	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("command %s already registered", name)
	}
	r.handlers[name] = h
	return nil
}

// MustRegister adds a handler and panics on failure.
func (r *Registry) MustRegister(name string, h Handler) {
	if err := r.Register(name, h); err != nil {
		panic("command: " + err.Error())
	}
}

// Unregister removes the handler for an identifier.
func (r *Registry) Unregister(name string) {
	delete(r.handlers, name)
}

// Get returns the handler for an identifier. Returns nil if no handler
// is registered.
func (r *Registry) Get(name string) Handler {
	return r.handlers[name]
}

// Has returns true if a handler is registered for the identifier.
func (r *Registry) Has(name string) bool {
	_, ok := r.handlers[name]
	return ok
}

// Execute runs the handler registered under name with the given args.
func (r *Registry) Execute(name, args string) error {
	h := r.handlers[name]
	if h == nil {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	h(args)
	return nil
}

// List returns all registered identifiers, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered commands.
func (r *Registry) Count() int {
	return len(r.handlers)
}
