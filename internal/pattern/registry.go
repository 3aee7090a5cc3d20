package pattern

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownPattern is returned by Registry.Get for unregistered names.
var ErrUnknownPattern = errors.New("unknown pattern")

type Registry struct {
	names    []string
	patterns map[string]func() Pattern
}

// NewRegistry registers the built-in patterns. The clock reads the wall
// clock through time.Now.
func NewRegistry() *Registry {
	r := &Registry{patterns: make(map[string]func() Pattern)}

	r.register("modulo", func() Pattern { return NewModulo() })
	r.register("logarithm", func() Pattern { return NewLogarithm() })
	r.register("spiral", func() Pattern { return NewSpiral() })
	r.register("fibonacci", func() Pattern { return NewFibonacci() })
	r.register("wave", func() Pattern { return NewWave() })
	r.register("matrix", func() Pattern { return NewMatrix() })
	r.register("plasma", func() Pattern { return NewPlasma() })
	r.register("clock", func() Pattern { return NewClock(time.Now) })

	return r
}

func (r *Registry) register(name string, fn func() Pattern) {
	r.names = append(r.names, name)
	r.patterns[name] = fn
}

func (r *Registry) Get(name string) (Pattern, error) {
	fn, ok := r.patterns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPattern, name)
	}
	return fn(), nil
}

// Names lists the registered patterns in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.patterns[name]
	return ok
}
