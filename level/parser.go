package level

import (
	"strings"

	"github.com/pkg/errors"
)

// charFlags mirrors the `chars` bitmask table of bertbaron's sokoban
// example, extended with the floor/target/box/player bits this
// package needs independently of any player/box overlay.
var charFlags = map[rune]struct {
	wall, target, box, player bool
}{
	'#': {wall: true},
	' ': {},
	'.': {target: true},
	'$': {box: true},
	'@': {player: true},
	'+': {target: true, player: true},
	'*': {target: true, box: true},
}

// Parse reads the single-level text dialect of §6: one character per
// cell, '#' wall, ' ' floor, '.' target, '$' box, '@' player, '+'
// player-on-target, '*' box-on-target. Rows shorter than the widest
// row are right-padded with floor.
func Parse(text string) (*Level, error) {
	lines := splitRows(text)
	if len(lines) == 0 {
		return nil, errors.New("empty level text")
	}
	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	height := len(lines)

	l := &Level{Width: width, Height: height}
	l.cells = make([]cellFlag, width*height)
	l.targets = make([]Square, 0)
	l.boxesStart = make([]Square, 0)

	for y, line := range lines {
		runes := []rune(line)
		for x := 0; x < width; x++ {
			ch := ' '
			if x < len(runes) {
				ch = runes[x]
			}
			flags, ok := charFlags[ch]
			if !ok {
				return nil, errors.Errorf("invalid level character %q at row %d, col %d", ch, y, x)
			}
			sq := Square{x, y}
			idx := l.index(x, y)
			if flags.wall {
				l.cells[idx] |= flagWall
			}
			if flags.target {
				l.cells[idx] |= flagTarget
				l.targets = append(l.targets, sq)
			}
			if flags.box {
				l.boxesStart = append(l.boxesStart, sq)
			}
			if flags.player {
				if l.hasPlayer {
					return nil, errors.Errorf("more than one player square (second at %v)", sq)
				}
				l.playerStart = sq
				l.hasPlayer = true
			}
		}
	}
	sortSquares(l.targets)
	sortSquares(l.boxesStart)

	if err := l.validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid level")
	}
	return l, nil
}

func splitRows(text string) []string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// String renders the level back to its canonical text representation:
// walls, floor and targets plus the initial player and box placement,
// so that Parse accepts the result.
func (l *Level) String() string {
	return RenderState(l, l.playerStart, l.boxesStart)
}

// RenderState renders a level plus a concrete player/box placement
// using the §6 alphabet, e.g. for progress logging or debugging.
func RenderState(l *Level, player Square, boxes []Square) string {
	boxSet := make(map[Square]bool, len(boxes))
	for _, b := range boxes {
		boxSet[b] = true
	}
	var b strings.Builder
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			sq := Square{x, y}
			wall := l.IsWall(x, y)
			target := l.IsTarget(x, y)
			isBox := boxSet[sq]
			isPlayer := player == sq
			switch {
			case wall:
				b.WriteRune('#')
			case isPlayer && target:
				b.WriteRune('+')
			case isPlayer:
				b.WriteRune('@')
			case isBox && target:
				b.WriteRune('*')
			case isBox:
				b.WriteRune('$')
			case target:
				b.WriteRune('.')
			default:
				b.WriteRune(' ')
			}
		}
		if y < l.Height-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}
