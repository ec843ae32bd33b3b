package jedi_test

import "sync"

// testWorld is the shared context the test chains are anchored to.
type testWorld struct {
	username string
	token    string
}

// Printer resolves directly from the world.
type Printer struct {
	username string
}

// Looper depends on Printer and simply holds it.
type Looper struct {
	printer Printer
}

// callLog records construction side effects so tests can assert invocation
// counts and ordering.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, name)
}

func (l *callLog) names() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.calls))
	copy(out, l.calls)
	return out
}

func (l *callLog) count(name string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, c := range l.calls {
		if c == name {
			n++
		}
	}
	return n
}
