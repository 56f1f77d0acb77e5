package catmanager

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/MyelinBots/catmanager-go/internal/cat"
	"github.com/MyelinBots/catmanager-go/internal/db/repositories/caretaker"
	"github.com/MyelinBots/catmanager-go/internal/pantry"
	"github.com/MyelinBots/catmanager-go/internal/roster"
	"github.com/MyelinBots/catmanager-go/internal/services/avatar"
	"github.com/MyelinBots/catmanager-go/internal/services/context_manager"
	"github.com/MyelinBots/catmanager-go/internal/services/timer"
)

// Interfaces
type CatManager interface {
	Spawn(ctx context.Context, n int) (string, error)
	Feed(ctx context.Context, index int) (string, error)
	Play(ctx context.Context, index int) (string, error)
	Sleep(ctx context.Context, index int) (string, error)
	Mate(ctx context.Context, i, j int) (string, error)
	Describe(index int) (string, error)
	Avatar(index int) (string, error)
	List() []string
	PantryStatus() string
	Restock(n int) string
	TopCaretakers(ctx context.Context, limit int) (string, error)
	Tick(now time.Time) []string
	Start(ctx context.Context)
	Stop()
}

type Options struct {
	Roster       *roster.Roster
	Pantry       *pantry.Pantry
	Caretakers   caretaker.CaretakerRepository
	Avatars      *avatar.Picker
	Network      string
	Channel      string
	TickInterval time.Duration
	Now          func() time.Time
	// Notify receives obituaries from the background tick.
	Notify func(message string)
}

// Implementation
type CatManagerImpl struct {
	Roster     *roster.Roster
	Pantry     *pantry.Pantry
	Caretakers caretaker.CaretakerRepository
	Avatars    *avatar.Picker
	Network    string
	Channel    string

	now      func() time.Time
	notify   func(string)
	interval time.Duration

	mu    sync.Mutex
	timer *timer.RepeatedTimer
}

// Constructor
func NewCatManager(opts Options) *CatManagerImpl {
	if opts.Roster == nil {
		opts.Roster = roster.New(roster.Options{})
	}
	if opts.Pantry == nil {
		opts.Pantry = pantry.New()
	}
	if opts.Caretakers == nil {
		opts.Caretakers = caretaker.NewMemoryRepository()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Notify == nil {
		opts.Notify = func(string) {}
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = 10 * time.Second
	}

	return &CatManagerImpl{
		Roster:     opts.Roster,
		Pantry:     opts.Pantry,
		Caretakers: opts.Caretakers,
		Avatars:    opts.Avatars,
		Network:    opts.Network,
		Channel:    opts.Channel,
		now:        opts.Now,
		notify:     opts.Notify,
		interval:   opts.TickInterval,
	}
}

func (m *CatManagerImpl) Spawn(ctx context.Context, n int) (string, error) {
	if n <= 0 {
		n = 1
	}
	entries, err := m.Roster.SpawnBatch(n)
	if err != nil {
		return "", err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Cat.Name)
		m.record(ctx, caretaker.KindSpawn)
	}
	first, last := entries[0].Index, entries[len(entries)-1].Index
	if len(entries) == 1 {
		return fmt.Sprintf("🐱 %s arrived at the shelter as #%d.", names[0], first), nil
	}
	return fmt.Sprintf("🐱 %d cats arrived at the shelter (#%d-#%d): %s.",
		len(entries), first, last, strings.Join(names, ", ")), nil
}

// Feed serves one pantry ration. A sleeping cat keeps the pantry untouched.
func (m *CatManagerImpl) Feed(ctx context.Context, index int) (string, error) {
	fed := false
	msg, err := m.Roster.Apply(index, func(c *cat.CatInfo) (string, error) {
		if c.Sleep {
			return c.Feed(0, 0), nil
		}
		ration, err := m.Pantry.Take()
		if err != nil {
			return "", err
		}
		scale := ration.FoodValue / pantry.RationFoodValue
		fed = true
		return c.Feed(cat.FeedWeight*scale, cat.FeedHealth*scale), nil
	})
	if err != nil {
		return "", err
	}
	if fed {
		m.record(ctx, caretaker.KindFeed)
	}
	return msg, nil
}

func (m *CatManagerImpl) Play(ctx context.Context, index int) (string, error) {
	played := false
	msg, err := m.Roster.Apply(index, func(c *cat.CatInfo) (string, error) {
		played = !c.Sleep
		return c.Play(cat.PlayWeight, cat.PlayHealth), nil
	})
	if err != nil {
		return "", err
	}
	if played {
		m.record(ctx, caretaker.KindPlay)
	}
	return msg, nil
}

func (m *CatManagerImpl) Sleep(ctx context.Context, index int) (string, error) {
	msg, err := m.Roster.ToggleSleep(index, cat.SleepHealth)
	if err != nil {
		return "", err
	}
	m.record(ctx, caretaker.KindNap)
	return msg, nil
}

func (m *CatManagerImpl) Mate(ctx context.Context, i, j int) (string, error) {
	birth, err := m.Roster.Mate(i, j)
	if err != nil {
		return "", err
	}
	m.record(ctx, caretaker.KindBirth)

	k := birth.Cat
	return fmt.Sprintf("🐣 %s and %s had a kitten! Welcome %s (%s, %s %s) as #%d.",
		birth.Parents[0], birth.Parents[1], k.Name, k.Gender, k.Color, k.Race, birth.Index), nil
}

func (m *CatManagerImpl) Describe(index int) (string, error) {
	e, err := m.Roster.Get(index)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("#%d %s", index, e.Cat.OneLine()), nil
}

// Avatar returns an image path for the cat at index.
func (m *CatManagerImpl) Avatar(index int) (string, error) {
	if _, err := m.Roster.Get(index); err != nil {
		return "", err
	}
	if m.Avatars == nil {
		return "", avatar.ErrNoAvatars
	}
	return m.Avatars.Random()
}

// List renders one line per cat.
func (m *CatManagerImpl) List() []string {
	entries := m.Roster.List()
	out := make([]string, 0, len(entries))
	for i, e := range entries {
		out = append(out, RosterLine(i+1, e.Cat))
	}
	return out
}

func RosterLine(index int, c cat.CatInfo) string {
	gender := "♀"
	if c.Gender == cat.Male {
		gender = "♂"
	}
	line := fmt.Sprintf("#%d %s %s age %d ❤ %.0f 🍗 %.0f", index, c.Name, gender, c.Age, c.Health, c.Food)
	if c.Sleep {
		line += " 💤"
	}
	return line
}

func (m *CatManagerImpl) PantryStatus() string {
	n := m.Pantry.Len()
	if n == 0 {
		return "🥫 The pantry is empty. Use !restock."
	}
	return fmt.Sprintf("🥫 %d ration(s) of %s left.", n, pantry.RationName)
}

func (m *CatManagerImpl) Restock(n int) string {
	if n <= 0 {
		n = 10
	}
	added := m.Pantry.Fill(n)
	if added == 0 {
		return fmt.Sprintf("🥫 The pantry is full (%d rations).", pantry.MaxStock)
	}
	return fmt.Sprintf("🥫 Restocked %d ration(s). %d in the pantry.", added, m.Pantry.Len())
}

func (m *CatManagerImpl) TopCaretakers(ctx context.Context, limit int) (string, error) {
	top, err := m.Caretakers.TopCaretakers(ctx, m.Network, m.Channel, limit)
	if err != nil {
		return "", err
	}
	if len(top) == 0 {
		return "No caretakers yet. Try !feed 1 😺", nil
	}

	out := "🏆 Best caretakers: "
	for i, c := range top {
		if i > 0 {
			out += "  •  "
		}
		out += fmt.Sprintf("#%d %s (%d pts) %s", i+1, c.Name, c.Score(), c.Title())
	}
	return out, nil
}

// Tick runs one update pass and returns an obituary per dead cat.
func (m *CatManagerImpl) Tick(now time.Time) []string {
	deaths := m.Roster.Tick(now)
	out := make([]string, 0, len(deaths))
	for _, d := range deaths {
		out = append(out, Obituary(d))
	}
	return out
}

func Obituary(d roster.Death) string {
	c := d.Cat
	switch {
	case errors.Is(d.Cause, cat.ErrOldAge):
		return fmt.Sprintf("🕯️ %s passed away peacefully of old age at %d.", c.Name, c.Age)
	case errors.Is(d.Cause, cat.ErrHealthDepleted):
		return fmt.Sprintf("🕯️ %s ran out of health and passed away at %d.", c.Name, c.Age)
	default:
		return fmt.Sprintf("🕯️ %s passed away.", c.Name)
	}
}

// Start runs the tick timer until ctx is done or Stop is called.
func (m *CatManagerImpl) Start(ctx context.Context) {
	m.mu.Lock()
	if m.timer != nil {
		m.mu.Unlock()
		return
	}
	m.timer = timer.NewRepeatedTimer(m.interval, func(time.Time) {
		for _, msg := range m.Tick(m.now()) {
			m.notify(msg)
		}
	})
	m.timer.Start()
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.Stop()
	}()
}

func (m *CatManagerImpl) Stop() {
	m.mu.Lock()
	t := m.timer
	m.timer = nil
	m.mu.Unlock()
	if t != nil {
		t.Stop()
	}
}

func (m *CatManagerImpl) record(ctx context.Context, kind caretaker.Kind) {
	nick := context_manager.GetNickContext(ctx)
	if nick == "" {
		return
	}
	if err := m.Caretakers.Record(ctx, nick, m.Network, m.Channel, kind, m.now()); err != nil {
		log.Printf("caretaker %s %s: %v", nick, kind, err)
	}
}
