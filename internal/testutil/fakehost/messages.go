package fakehost

import (
	"sync"

	"github.com/bnema/appshell/internal/application/port"
)

// Messages implements port.MessageSource for tests.
type Messages struct {
	mu       sync.Mutex
	nextID   int
	handlers map[string]map[int]func(string)
	order    map[string][]int
}

var _ port.MessageSource = (*Messages)(nil)

// NewMessages creates an empty message source.
func NewMessages() *Messages {
	return &Messages{
		handlers: make(map[string]map[int]func(string)),
		order:    make(map[string][]int),
	}
}

// Subscribe implements port.MessageSource.
func (m *Messages) Subscribe(channel string, handler func(payload string)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	id := m.nextID
	if m.handlers[channel] == nil {
		m.handlers[channel] = make(map[int]func(string))
	}
	m.handlers[channel][id] = handler
	m.order[channel] = append(m.order[channel], id)

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.handlers[channel], id)
	}
}

// Post delivers payload to every subscriber of channel.
func (m *Messages) Post(channel, payload string) {
	m.mu.Lock()
	var fns []func(string)
	for _, id := range m.order[channel] {
		if fn, ok := m.handlers[channel][id]; ok {
			fns = append(fns, fn)
		}
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(payload)
	}
}

// Subscribers returns the number of live handlers on channel.
func (m *Messages) Subscribers(channel string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.handlers[channel])
}

// Scheduler implements port.Scheduler by queueing work until Drain.
type Scheduler struct {
	mu    sync.Mutex
	queue []func()
}

var _ port.Scheduler = (*Scheduler)(nil)

// Post implements port.Scheduler.
func (s *Scheduler) Post(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, fn)
}

// Pending returns the number of queued callbacks.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Drain runs queued callbacks, including ones posted while draining, and
// returns how many ran.
func (s *Scheduler) Drain() int {
	ran := 0
	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.mu.Unlock()
			return ran
		}
		fn := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()
		fn()
		ran++
	}
}
