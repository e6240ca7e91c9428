package fess

import "github.com/bertbaron/fess-sokoban/level"

var pushDirections = [4]level.Square{
	{X: 0, Y: -1}, // up
	{X: 1, Y: 0},  // right
	{X: 0, Y: 1},  // down
	{X: -1, Y: 0}, // left
}

// reachableRegion returns every square the player can reach from
// `from` by 4-connected moves through squares that are neither walls
// nor boxes (§4.C). A plain BFS flood fill, the breadth-first
// walkstate search bertbaron's sokoban example runs to find the
// squares from which a box can be pushed, specialized here to just
// the visited set rather than a sub-search for particular targets.
func reachableRegion(lvl *level.Level, from level.Square, boxes BoxSet) map[level.Square]bool {
	visited := map[level.Square]bool{from: true}
	queue := []level.Square{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range pushDirections {
			next := cur.Add(d.X, d.Y)
			if visited[next] || lvl.IsWall(next.X, next.Y) || boxes.Contains(next) {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return visited
}

// canReach reports whether target lies in the player-reachable region
// of from under the given box placement.
func canReach(lvl *level.Level, from, target level.Square, boxes BoxSet) bool {
	return reachableRegion(lvl, from, boxes)[target]
}
