package caretaker

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// MemoryRepository keeps tallies for the lifetime of the process. It backs
// the caretaker board when no database is configured.
type MemoryRepository struct {
	mu   sync.RWMutex
	rows map[string]*Caretaker
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{rows: make(map[string]*Caretaker)}
}

func key(name, network, channel string) string {
	return name + "|" + network + "|" + channel
}

func (m *MemoryRepository) GetCaretaker(_ context.Context, name, network, channel string) (*Caretaker, error) {
	name = normNick(name)
	network, channel = normScope(network, channel)

	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.rows[key(name, network, channel)]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *MemoryRepository) Record(_ context.Context, name, network, channel string, kind Kind, at time.Time) error {
	if !kind.Valid() {
		return fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}
	name = normNick(name)
	network, channel = normScope(network, channel)

	m.mu.Lock()
	defer m.mu.Unlock()
	k := key(name, network, channel)
	c, ok := m.rows[k]
	if !ok {
		c = &Caretaker{
			ID:        uint(len(m.rows) + 1),
			CreatedAt: at,
			Name:      name,
			Network:   network,
			Channel:   channel,
		}
		m.rows[k] = c
	}
	kind.apply(c)
	seen := at
	c.LastSeenAt = &seen
	c.UpdatedAt = at
	return nil
}

func (m *MemoryRepository) TopCaretakers(_ context.Context, network, channel string, limit int) ([]*Caretaker, error) {
	network, channel = normScope(network, channel)
	if limit <= 0 {
		limit = 5
	}

	m.mu.RLock()
	var out []*Caretaker
	for _, c := range m.rows {
		if c.Network == network && c.Channel == channel {
			cp := *c
			out = append(out, &cp)
		}
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score() != out[j].Score() {
			return out[i].Score() > out[j].Score()
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
