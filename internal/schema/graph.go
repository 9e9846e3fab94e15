package schema

import (
	"fmt"
	"sort"
)

// DependencyGraph orders tables so that every foreign key target is created
// and populated before its referrers.
type DependencyGraph struct {
	tables map[string]Table
}

func NewDependencyGraph(tables []Table) *DependencyGraph {
	g := &DependencyGraph{tables: make(map[string]Table, len(tables))}
	for _, t := range tables {
		g.tables[t.Name] = t
	}
	return g
}

func (g *DependencyGraph) dependencies(name string) []string {
	var deps []string
	for _, fk := range g.tables[name].ForeignKeys {
		if fk.RefTable != name {
			deps = append(deps, fk.RefTable)
		}
	}
	return deps
}

// InsertionOrder returns a topological order of the FK graph. Iteration is
// over sorted names so the result is stable.
func (g *DependencyGraph) InsertionOrder() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(name string) error {
		if temp[name] {
			return fmt.Errorf("circular dependency detected involving table: %s", name)
		}
		if visited[name] {
			return nil
		}
		temp[name] = true
		for _, dep := range g.dependencies(name) {
			if err := visit(dep); err != nil {
				return err
			}
		}
		temp[name] = false
		visited[name] = true
		order = append(order, name)
		return nil
	}

	names := make([]string, 0, len(g.tables))
	for name := range g.tables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// ValidateLoadOrder checks that order covers every table exactly once and
// that each table appears after all tables it references.
func (g *DependencyGraph) ValidateLoadOrder(order []string) error {
	pos := make(map[string]int, len(order))
	for i, name := range order {
		if _, ok := g.tables[name]; !ok {
			return fmt.Errorf("unknown table in load order: %s", name)
		}
		if _, dup := pos[name]; dup {
			return fmt.Errorf("table repeated in load order: %s", name)
		}
		pos[name] = i
	}
	if len(order) != len(g.tables) {
		return fmt.Errorf("load order covers %d of %d tables", len(order), len(g.tables))
	}
	for _, name := range order {
		for _, dep := range g.dependencies(name) {
			if pos[dep] >= pos[name] {
				return fmt.Errorf("table %s is loaded before its dependency %s", name, dep)
			}
		}
	}
	return nil
}
