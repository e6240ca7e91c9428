package fess

import "github.com/bertbaron/fess-sokoban/level"

// RoomAdvisor computes feature F3: the number of room-linking tunnel
// squares currently occupied by a box (§4.F). The room/tunnel
// decomposition is static board topology, computed once per Level and
// independent of box placement.
type RoomAdvisor struct {
	lvl *level.Level
	// linking is the set of tunnel squares that connect two rooms.
	linking map[level.Square]bool
}

// NewRoomAdvisor decomposes lvl into tunnels and rooms.
func NewRoomAdvisor(lvl *level.Level) *RoomAdvisor {
	roomID := assignRoomIDs(lvl)
	linking := make(map[level.Square]bool)
	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			sq := level.Square{X: x, Y: y}
			if lvl.IsWall(x, y) || !isTunnel(lvl, sq) {
				continue
			}
			if linksTwoRooms(lvl, roomID, sq) {
				linking[sq] = true
			}
		}
	}
	return &RoomAdvisor{lvl: lvl, linking: linking}
}

// Project computes F3(s).
func (r *RoomAdvisor) Project(s State) int {
	count := 0
	for sq := range r.linking {
		if s.Boxes.Contains(sq) {
			count++
		}
	}
	return count
}

// isTunnel reports whether sq (assumed non-wall) has exactly one
// opposite pair of non-wall neighbours — a width-1 corridor square.
func isTunnel(lvl *level.Level, sq level.Square) bool {
	up := !lvl.IsWall(sq.X, sq.Y-1)
	down := !lvl.IsWall(sq.X, sq.Y+1)
	left := !lvl.IsWall(sq.X-1, sq.Y)
	right := !lvl.IsWall(sq.X+1, sq.Y)
	vertical := up && down && !left && !right
	horizontal := left && right && !up && !down
	return vertical || horizontal
}

// assignRoomIDs flood-fills the non-wall, non-tunnel squares (the
// "rooms") and labels each with a component id. Tunnel squares are
// left unlabeled (id -1): they are corridor, not room, geometry.
func assignRoomIDs(lvl *level.Level) map[level.Square]int {
	ids := make(map[level.Square]int)
	next := 0
	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			sq := level.Square{X: x, Y: y}
			if lvl.IsWall(x, y) || isTunnel(lvl, sq) {
				continue
			}
			if _, seen := ids[sq]; seen {
				continue
			}
			floodRoom(lvl, sq, next, ids)
			next++
		}
	}
	return ids
}

func floodRoom(lvl *level.Level, start level.Square, id int, ids map[level.Square]int) {
	stack := []level.Square{start}
	ids[start] = id
	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]
		for _, d := range pushDirections {
			next := cur.Add(d.X, d.Y)
			if lvl.IsWall(next.X, next.Y) || isTunnel(lvl, next) {
				continue
			}
			if _, seen := ids[next]; seen {
				continue
			}
			ids[next] = id
			stack = append(stack, next)
		}
	}
}

// linksTwoRooms walks outward from tunnel square sq along both
// directions of its corridor until it leaves the tunnel, and reports
// whether both ends reach a room square (as opposed to a dead end).
func linksTwoRooms(lvl *level.Level, roomID map[level.Square]int, sq level.Square) bool {
	dirs := tunnelDirections(lvl, sq)
	if len(dirs) != 2 {
		return false
	}
	_, ok1 := walkTunnelChain(lvl, roomID, sq.Add(dirs[0].X, dirs[0].Y), sq)
	_, ok2 := walkTunnelChain(lvl, roomID, sq.Add(dirs[1].X, dirs[1].Y), sq)
	return ok1 && ok2
}

func tunnelDirections(lvl *level.Level, sq level.Square) []level.Square {
	var open []level.Square
	for _, d := range pushDirections {
		if !lvl.IsWall(sq.X+d.X, sq.Y+d.Y) {
			open = append(open, d)
		}
	}
	return open
}

// walkTunnelChain follows a corridor from cur (having just arrived
// from prev) until it reaches a room square (returns its id, true) or
// runs into a wall / dead end (returns 0, false).
func walkTunnelChain(lvl *level.Level, roomID map[level.Square]int, cur, prev level.Square) (int, bool) {
	for {
		if lvl.IsWall(cur.X, cur.Y) {
			return 0, false
		}
		if !isTunnel(lvl, cur) {
			id, ok := roomID[cur]
			return id, ok
		}
		nextFound := false
		var next level.Square
		for _, d := range pushDirections {
			candidate := cur.Add(d.X, d.Y)
			if candidate == prev || lvl.IsWall(candidate.X, candidate.Y) {
				continue
			}
			next = candidate
			nextFound = true
			break
		}
		if !nextFound {
			return 0, false
		}
		prev, cur = cur, next
	}
}
