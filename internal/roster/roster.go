package roster

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MyelinBots/catmanager-go/internal/cat"
	"github.com/google/uuid"
)

const DefaultMaxCats = 40

var (
	ErrNotFound = errors.New("no such cat")
	ErrFull     = errors.New("the shelter is full")
)

// Entry is a snapshot of one cat together with its roster id and the 1-based
// index it held when the snapshot was taken.
type Entry struct {
	ID    uuid.UUID   `json:"id"`
	Index int         `json:"index"`
	Cat   cat.CatInfo `json:"cat"`
}

// Birth is the result of a successful Mate.
type Birth struct {
	Entry
	Parents [2]string
}

// Death reports a cat removed by Tick.
type Death struct {
	Entry
	Cause error
}

type Options struct {
	MaxCats   int
	Generator *cat.Generator
}

type slot struct {
	id  uuid.UUID
	cat *cat.CatInfo
}

// Roster owns the ordered list of living cats. Indexes are 1-based, matching
// what front ends show to users.
type Roster struct {
	mu    sync.Mutex
	slots []slot
	max   int
	gen   *cat.Generator
}

func New(opts Options) *Roster {
	if opts.MaxCats <= 0 {
		opts.MaxCats = DefaultMaxCats
	}
	if opts.Generator == nil {
		opts.Generator = cat.NewGenerator(nil, nil)
	}
	return &Roster{max: opts.MaxCats, gen: opts.Generator}
}

func (r *Roster) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots)
}

func (r *Roster) Cap() int {
	return r.max
}

// Add appends an existing cat.
func (r *Roster) Add(c *cat.CatInfo) (Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.add(c)
}

func (r *Roster) add(c *cat.CatInfo) (Entry, error) {
	if len(r.slots) >= r.max {
		return Entry{}, ErrFull
	}
	s := slot{id: uuid.New(), cat: c}
	r.slots = append(r.slots, s)
	return s.entry(len(r.slots)), nil
}

// Spawn adds one freshly generated cat.
func (r *Roster) Spawn() (Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.slots) >= r.max {
		return Entry{}, ErrFull
	}
	return r.add(r.gen.NewCat())
}

// SpawnBatch adds n random cats, or none when they would not all fit.
func (r *Roster) SpawnBatch(n int) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if free := r.max - len(r.slots); n > free {
		return nil, fmt.Errorf("room for %d more, asked for %d: %w", free, n, ErrFull)
	}
	out := make([]Entry, 0, n)
	for _, c := range r.gen.SpawnCats(n) {
		e, err := r.add(c)
		if err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *Roster) List() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.slots))
	for i, s := range r.slots {
		out[i] = s.entry(i + 1)
	}
	return out
}

func (r *Roster) Get(index int) (Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, err := r.at(index)
	if err != nil {
		return Entry{}, err
	}
	return s.entry(index), nil
}

func (r *Roster) ByID(id uuid.UUID) (Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.slots {
		if s.id == id {
			return s.entry(i + 1), nil
		}
	}
	return Entry{}, ErrNotFound
}

func (r *Roster) ToggleSleep(index int, dHealth float64) (string, error) {
	return r.Apply(index, func(c *cat.CatInfo) (string, error) { return c.ToggleSleep(dHealth), nil })
}

// Apply runs fn on the cat at index while holding the roster lock, so the
// check and the change it makes see the same cat. fn must not call back into
// the roster.
func (r *Roster) Apply(index int, fn func(c *cat.CatInfo) (string, error)) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, err := r.at(index)
	if err != nil {
		return "", err
	}
	return fn(s.cat)
}

// Mate breeds the cats at i and j and appends the kitten.
func (r *Roster) Mate(i, j int) (Birth, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, err := r.at(i)
	if err != nil {
		return Birth{}, err
	}
	b, err := r.at(j)
	if err != nil {
		return Birth{}, err
	}
	if len(r.slots) >= r.max {
		return Birth{}, ErrFull
	}
	kitten, err := r.gen.Mate(a.cat, b.cat)
	if err != nil {
		return Birth{}, err
	}
	e, err := r.add(kitten)
	if err != nil {
		return Birth{}, err
	}
	return Birth{Entry: e, Parents: [2]string{a.cat.Name, b.cat.Name}}, nil
}

// Tick updates every cat and removes the ones that died, keeping the order
// of the survivors.
func (r *Roster) Tick(now time.Time) []Death {
	r.mu.Lock()
	defer r.mu.Unlock()

	var dead []Death
	alive := r.slots[:0]
	for i, s := range r.slots {
		if err := s.cat.Update(now); err != nil {
			dead = append(dead, Death{Entry: s.entry(i + 1), Cause: err})
			continue
		}
		alive = append(alive, s)
	}
	for i := len(alive); i < len(r.slots); i++ {
		r.slots[i] = slot{}
	}
	r.slots = alive
	return dead
}

func (r *Roster) at(index int) (slot, error) {
	if index < 1 || index > len(r.slots) {
		return slot{}, fmt.Errorf("cat #%d: %w", index, ErrNotFound)
	}
	return r.slots[index-1], nil
}

func (s slot) entry(index int) Entry {
	return Entry{ID: s.id, Index: index, Cat: *s.cat}
}
