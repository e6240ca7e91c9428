package fess

import "github.com/bertbaron/fess-sokoban/level"

// ConnectivityAdvisor computes feature F2: the number of connected
// components of free space (non-wall, non-box squares), counted as if
// the player were absent — pure topology of the current box
// placement (§4.E). Adapted from the "connectivity" component count
// the original fess_simple_working.py's calculate_features() computes
// with an explicit visited/stack flood fill.
type ConnectivityAdvisor struct {
	lvl *level.Level
}

// NewConnectivityAdvisor builds the advisor for lvl.
func NewConnectivityAdvisor(lvl *level.Level) *ConnectivityAdvisor {
	return &ConnectivityAdvisor{lvl: lvl}
}

// Project computes F2(s).
func (c *ConnectivityAdvisor) Project(s State) int {
	return countFreeComponents(c.lvl, s.Boxes)
}

// countFreeComponents counts connected components, under 4-connected
// adjacency, of squares that are neither walls nor occupied by boxes.
func countFreeComponents(lvl *level.Level, boxes BoxSet) int {
	visited := make(map[level.Square]bool)
	components := 0
	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			sq := level.Square{X: x, Y: y}
			if lvl.IsWall(x, y) || boxes.Contains(sq) || visited[sq] {
				continue
			}
			components++
			floodFreeComponent(lvl, boxes, sq, visited)
		}
	}
	return components
}

func floodFreeComponent(lvl *level.Level, boxes BoxSet, start level.Square, visited map[level.Square]bool) {
	stack := []level.Square{start}
	visited[start] = true
	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]
		for _, d := range pushDirections {
			next := cur.Add(d.X, d.Y)
			if visited[next] || lvl.IsWall(next.X, next.Y) || boxes.Contains(next) {
				continue
			}
			visited[next] = true
			stack = append(stack, next)
		}
	}
}
