package world

import (
	"github.com/zyedidia/generic/heap"
)

// frontierEntry is a queued room with its A* priority.
// seq preserves insertion order among equal priorities.
type frontierEntry struct {
	priority int
	seq      int
	hops     int
	name     string
}

func frontierLess(a, b frontierEntry) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.seq < b.seq
}

// FindPath runs A* from start to goal and returns the route, both ends included.
//
// Every edge costs one hop and the heuristic is the Manhattan distance between the
// stored room positions. Positions are in screen units, so the heuristic can
// overestimate the remaining hops and the route is not guaranteed to be the shortest.
// It always finds a route when one exists.
//
// A nil path with a nil error means goal is unreachable from start. Rooms missing from
// the graph or from coords yield ErrInvalidRoom.
func FindPath(g *Graph, coords Coordinates, start, goal string) ([]string, error) {
	if !g.Has(start) {
		return nil, invalidRoom(start)
	}
	if !g.Has(goal) {
		return nil, invalidRoom(goal)
	}
	if _, ok := coords[start]; !ok {
		return nil, invalidRoom(start)
	}
	goalPos, ok := coords[goal]
	if !ok {
		return nil, invalidRoom(goal)
	}
	if start == goal {
		return []string{start}, nil
	}

	frontier := heap.New[frontierEntry](frontierLess)
	seq := 0
	frontier.Push(frontierEntry{priority: 0, seq: seq, hops: 0, name: start})

	cameFrom := map[string]string{}
	costSoFar := map[string]int{start: 0}

	for frontier.Size() > 0 {
		current, _ := frontier.Pop()

		// A cheaper route to this room was queued after this entry.
		if current.hops > costSoFar[current.name] {
			continue
		}

		if current.name == goal {
			return reconstructPath(cameFrom, start, goal), nil
		}

		neighbors, err := g.Neighbors(current.name)
		if err != nil {
			return nil, err
		}
		for _, next := range neighbors {
			newCost := costSoFar[current.name] + 1
			if old, seen := costSoFar[next]; seen && newCost >= old {
				continue
			}
			pos, ok := coords[next]
			if !ok {
				return nil, invalidRoom(next)
			}
			costSoFar[next] = newCost
			cameFrom[next] = current.name
			seq++
			frontier.Push(frontierEntry{
				priority: newCost + Manhattan(pos, goalPos),
				seq:      seq,
				hops:     newCost,
				name:     next,
			})
		}
	}

	return nil, nil
}

func reconstructPath(cameFrom map[string]string, start, goal string) []string {
	var path []string
	for current := goal; ; current = cameFrom[current] {
		path = append(path, current)
		if current == start {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
