package world

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Graph is the room-connectivity graph: room name -> directly reachable room names.
// Directions are discarded; only reachability matters for search.
type Graph struct {
	adj map[string][]string
}

// BuildGraph derives the graph from every room's declared connections.
// The result need not be symmetric.
func BuildGraph(rooms []*Room) *Graph {
	g := &Graph{adj: make(map[string][]string, len(rooms))}
	for _, r := range rooms {
		g.adj[r.Name] = append(g.adj[r.Name], r.NeighborNames()...)
	}
	return g
}

// Neighbors returns the rooms reachable in one step from name.
func (g *Graph) Neighbors(name string) ([]string, error) {
	n, ok := g.adj[name]
	if !ok {
		return nil, invalidRoom(name)
	}
	return n, nil
}

// Has reports whether name is a room of the graph.
func (g *Graph) Has(name string) bool {
	_, ok := g.adj[name]
	return ok
}

// AllRooms returns the set of room names in the graph.
func (g *Graph) AllRooms() mapset.Set[string] {
	all := mapset.New[string]()
	for name := range g.adj {
		all.Put(name)
	}
	return all
}

// Size returns the number of rooms.
func (g *Graph) Size() int {
	return len(g.adj)
}

// Validate checks that every neighbor reference resolves to a room of the graph.
func (g *Graph) Validate() error {
	names := make([]string, 0, len(g.adj))
	for name := range g.adj {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, n := range g.adj[name] {
			if _, ok := g.adj[n]; !ok {
				return fmt.Errorf("%s connects to %w", name, invalidRoom(n))
			}
		}
	}
	return nil
}

// Reachable returns every room reachable from start, start included.
func (g *Graph) Reachable(start string) (mapset.Set[string], error) {
	if !g.Has(start) {
		return mapset.New[string](), invalidRoom(start)
	}
	visited := mapset.New[string]()
	queue := []string{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited.Has(current) {
			continue
		}
		visited.Put(current)

		for _, n := range g.adj[current] {
			if !visited.Has(n) {
				queue = append(queue, n)
			}
		}
	}
	return visited, nil
}
