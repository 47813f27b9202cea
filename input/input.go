// Package input is the boundary between a host engine's keyboard API and the
// movement core. Hosts adapt their "key went down this frame" query to
// Source; everything downstream only sees grid.Direction values.
package input

import (
	"fmt"
	"strings"

	"github.com/plus3/gridstep/grid"
)

// Key is one of the movement keys.
type Key uint8

const (
	KeyW Key = iota
	KeyS
	KeyA
	KeyD
)

// Keys lists the movement keys in priority order.
var Keys = [...]Key{KeyW, KeyS, KeyA, KeyD}

var keyDirections = [...]grid.Direction{
	KeyW: grid.Forward,
	KeyS: grid.Back,
	KeyA: grid.Left,
	KeyD: grid.Right,
}

func (k Key) String() string {
	switch k {
	case KeyW:
		return "W"
	case KeyS:
		return "S"
	case KeyA:
		return "A"
	case KeyD:
		return "D"
	}
	return fmt.Sprintf("Key(%d)", k)
}

// Direction returns the step direction bound to k.
func (k Key) Direction() grid.Direction {
	if int(k) >= len(keyDirections) {
		return grid.None
	}
	return keyDirections[k]
}

// ParseKey accepts a key name, case-insensitive.
func ParseKey(s string) (Key, error) {
	for _, k := range Keys {
		if strings.EqualFold(k.String(), s) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("input: unknown key %q", s)
}

// KeyForRune maps a typed character to a movement key.
func KeyForRune(r rune) (Key, bool) {
	switch r {
	case 'w', 'W':
		return KeyW, true
	case 's', 'S':
		return KeyS, true
	case 'a', 'A':
		return KeyA, true
	case 'd', 'D':
		return KeyD, true
	}
	return 0, false
}

// Source reports which keys went down during the current frame.
type Source interface {
	JustPressed(k Key) bool
}

// Direction returns the direction of the first key in Keys that src reports
// as just pressed, or grid.None. At most one direction is produced per frame.
func Direction(src Source) grid.Direction {
	if src == nil {
		return grid.None
	}
	for _, k := range Keys {
		if src.JustPressed(k) {
			return k.Direction()
		}
	}
	return grid.None
}

// Nothing is a Source with no keys pressed.
type Nothing struct{}

func (Nothing) JustPressed(Key) bool { return false }
