package integrators

import (
	"fmt"
	"sort"

	"github.com/san-kum/orbitsim/internal/orbit"
)

var steppers = map[string]func() orbit.Stepper{
	"euler": func() orbit.Stepper { return NewEuler() },
	"rk4":   func() orbit.Stepper { return NewRK4() },
}

// New resolves a method token to a fresh stepper. The method set is closed:
// anything but "euler" or "rk4" is rejected with the offending token in the
// error.
func New(name string) (orbit.Stepper, error) {
	fn, ok := steppers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (use one of %v)", orbit.ErrUnsupportedMethod, name, Names())
	}
	return fn(), nil
}

// Names lists the available method tokens, sorted.
func Names() []string {
	names := make([]string, 0, len(steppers))
	for name := range steppers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
