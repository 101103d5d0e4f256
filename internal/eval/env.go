package eval

import (
	"sort"

	"golang.org/x/text/unicode/norm"

	"abacus/internal/bigint"
)

// AnsName is the variable that tracks the most recent statement result.
const AnsName = "ans"

// RemName is the variable divmod binds its remainder to.
const RemName = "rem"

// Env holds variable bindings. Names are NFC-normalized on every access so
// visually identical identifiers written with different Unicode compositions
// resolve to the same slot.
type Env struct {
	vars map[string]bigint.Int
}

// NewEnv creates an empty environment.
func NewEnv() *Env {
	return &Env{vars: make(map[string]bigint.Int)}
}

// NormalizeName canonicalizes an identifier for binding lookups.
func NormalizeName(name string) string {
	return norm.NFC.String(name)
}

// Get looks up a variable by name.
func (e *Env) Get(name string) (bigint.Int, bool) {
	v, ok := e.vars[NormalizeName(name)]
	return v, ok
}

// Set binds a variable, replacing any previous value.
func (e *Env) Set(name string, value bigint.Int) {
	e.vars[NormalizeName(name)] = value
}

// Delete removes a binding if present.
func (e *Env) Delete(name string) {
	delete(e.vars, NormalizeName(name))
}

// Len reports the number of bindings.
func (e *Env) Len() int {
	return len(e.vars)
}

// Names returns all bound names in sorted order.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
