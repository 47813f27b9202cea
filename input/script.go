package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// ErrScript is wrapped by every script parse error.
var ErrScript = errors.New("input: bad script")

// Press is one scripted key-down.
type Press struct {
	Frame uint64
	Key   Key
}

// Script is a deterministic Source: it reports the keys scheduled for the
// current frame. Set the frame with Seek before each update.
type Script struct {
	presses []Press
	frame   uint64
}

// NewScript builds a script from presses in any order.
func NewScript(presses ...Press) *Script {
	s := &Script{presses: slices.Clone(presses)}
	slices.SortStableFunc(s.presses, func(a, b Press) int {
		switch {
		case a.Frame < b.Frame:
			return -1
		case a.Frame > b.Frame:
			return 1
		}
		return 0
	})
	return s
}

// ParseScript reads one press per line as "<frame> <key> [<key>...]".
// Blank lines and lines starting with '#' are skipped.
func ParseScript(r io.Reader) (*Script, error) {
	var presses []Press

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: want \"<frame> <key>\", got %q", ErrScript, line, text)
		}
		frame, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: frame: %v", ErrScript, line, err)
		}
		for _, name := range fields[1:] {
			k, err := ParseKey(name)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrScript, line, err)
			}
			presses = append(presses, Press{Frame: frame, Key: k})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("input: read script: %w", err)
	}
	return NewScript(presses...), nil
}

// Seek sets the frame the script answers for.
func (s *Script) Seek(frame uint64) {
	s.frame = frame
}

func (s *Script) JustPressed(k Key) bool {
	i, found := slices.BinarySearchFunc(s.presses, s.frame, func(p Press, f uint64) int {
		switch {
		case p.Frame < f:
			return -1
		case p.Frame > f:
			return 1
		}
		return 0
	})
	if !found {
		return false
	}
	for ; i < len(s.presses) && s.presses[i].Frame == s.frame; i++ {
		if s.presses[i].Key == k {
			return true
		}
	}
	return false
}

// LastFrame returns the frame of the final press, or 0 for an empty script.
func (s *Script) LastFrame() uint64 {
	if len(s.presses) == 0 {
		return 0
	}
	return s.presses[len(s.presses)-1].Frame
}

// Len returns the number of presses.
func (s *Script) Len() int {
	return len(s.presses)
}
