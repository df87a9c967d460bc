package auth

import (
	"sync"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
)

// notifier implements synchronous subscriber fan-out for session providers.
// Callbacks run on the goroutine that triggered the transition, with no
// debounce, so subscribers observe every state in order.
type notifier struct {
	mu   sync.Mutex
	subs map[int]func(domain.Session)
	next int
}

// subscribe registers fn and returns a removal function.
func (n *notifier) subscribe(fn func(domain.Session)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs == nil {
		n.subs = make(map[int]func(domain.Session))
	}
	id := n.next
	n.next++
	n.subs[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

// notify calls every subscriber with the session snapshot.
func (n *notifier) notify(s domain.Session) {
	n.mu.Lock()
	fns := make([]func(domain.Session), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}
