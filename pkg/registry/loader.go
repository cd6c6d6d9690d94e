package registry

import (
	"sync"

	"github.com/dgraph-esolang/directed/pkg/types"
)

// Loader tracks the Registry for every compilation unit known so far, plus
// the import edges between them, so it can reject an import that would
// revisit a unit already on the current chain.
type Loader struct {
	mu    sync.Mutex
	units map[string]*Registry
	deps  map[string][]string // unit -> units it directly imports
}

// NewLoader creates an empty Loader.
func NewLoader() *Loader {
	return &Loader{
		units: make(map[string]*Registry),
		deps:  make(map[string][]string),
	}
}

// NewUnit creates a fresh, builtin-populated Registry for the compilation
// unit named name and registers it with the loader.
func (l *Loader) NewUnit(name string) *Registry {
	l.mu.Lock()
	defer l.mu.Unlock()
	r := NewRegistry()
	l.units[name] = r
	return r
}

// Unit returns the Registry previously created for name, if any.
func (l *Loader) Unit(name string) (*Registry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	r, ok := l.units[name]
	return r, ok
}

// Import splices dep's declared graphs into unit under namespace and
// records the unit->dep edge. Returns types.ErrCyclicImport if dep can
// already reach unit through existing import edges (which would make the
// chain circular once this edge is added), or ErrUnitNotFound if either
// unit hasn't been created via NewUnit.
func (l *Loader) Import(unit, namespace, dep string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	unitReg, ok := l.units[unit]
	if !ok {
		return ErrUnitNotFound
	}
	depReg, ok := l.units[dep]
	if !ok {
		return ErrUnitNotFound
	}

	if l.wouldCycle(unit, dep) {
		return types.ErrCyclicImport
	}

	if err := unitReg.importFrom(namespace, depReg); err != nil {
		return err
	}
	l.deps[unit] = append(l.deps[unit], dep)
	return nil
}

// wouldCycle reports whether dep can reach unit through the import edges
// recorded so far (or dep == unit), meaning that adding unit->dep would
// close a cycle.
func (l *Loader) wouldCycle(unit, dep string) bool {
	if unit == dep {
		return true
	}
	visited := make(map[string]bool)
	var dfs func(n string) bool
	dfs = func(n string) bool {
		if n == unit {
			return true
		}
		if visited[n] {
			return false
		}
		visited[n] = true
		for _, next := range l.deps[n] {
			if dfs(next) {
				return true
			}
		}
		return false
	}
	return dfs(dep)
}
