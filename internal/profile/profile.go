// Package profile holds named rule bundles ("profiles"), one per target
// ecosystem, behind a simple registry. Extending the tool means registering
// another RuleSet, not adding branching code.
package profile

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dshills/govlint/internal/rule"
)

// ErrProfileNotFound is returned by Get for unknown profile names.
var ErrProfileNotFound = errors.New("profile not found")

// RuleSet is an ordered collection of rules scoped to a named profile.
// Rule order determines finding order and correction registration order.
// RuleSets are immutable after registration.
type RuleSet struct {
	Name  string
	Rules []rule.Rule
}

var (
	mu       sync.RWMutex
	registry = map[string]*RuleSet{}
)

// Register adds a rule set under its name. The set is validated first;
// a duplicate name is an error.
func Register(rs *RuleSet) error {
	if err := Validate(rs); err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	if _, ok := registry[rs.Name]; ok {
		return fmt.Errorf("profile %q already registered", rs.Name)
	}
	registry[rs.Name] = rs
	return nil
}

// mustRegister is used by the built-in profiles, which are defined in code
// and must always validate.
func mustRegister(rs *RuleSet) {
	if err := Register(rs); err != nil {
		panic(err)
	}
}

// Get returns the registered rule set for the given profile name, or an
// error wrapping ErrProfileNotFound for unknown names.
func Get(name string) (*RuleSet, error) {
	mu.RLock()
	defer mu.RUnlock()
	rs, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrProfileNotFound, name, strings.Join(namesLocked(), ", "))
	}
	return rs, nil
}

// Names returns the registered profile names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return namesLocked()
}

func namesLocked() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
