package input

import "sync"

// Latch is a Source fed by discrete key events, for hosts that deliver input
// as an event stream instead of per-frame polling. Presses are collected
// between frames; the frame loop calls Next to publish them.
type Latch struct {
	mu      sync.Mutex
	pending [len(Keys)]bool
	current [len(Keys)]bool
}

// Press records a key-down event. Safe for concurrent use with Next.
func (l *Latch) Press(k Key) {
	if int(k) >= len(Keys) {
		return
	}
	l.mu.Lock()
	l.pending[k] = true
	l.mu.Unlock()
}

// Next makes the presses received since the last call visible to
// JustPressed and starts collecting afresh.
func (l *Latch) Next() {
	l.mu.Lock()
	l.current = l.pending
	l.pending = [len(Keys)]bool{}
	l.mu.Unlock()
}

func (l *Latch) JustPressed(k Key) bool {
	if int(k) >= len(Keys) {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current[k]
}
