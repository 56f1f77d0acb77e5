package roster

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/MyelinBots/catmanager-go/internal/cat"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestRoster(max int) *Roster {
	gen := cat.NewGenerator(rand.New(rand.NewSource(7)), func() time.Time { return testNow })
	return New(Options{MaxCats: max, Generator: gen})
}

func addCat(t *testing.T, r *Roster, name string, g cat.Gender) Entry {
	t.Helper()
	e, err := r.Add(&cat.CatInfo{
		Name:        name,
		Gender:      g,
		Age:         2,
		Weight:      3,
		Health:      50,
		Food:        50,
		LastUpdated: testNow,
	})
	if err != nil {
		t.Fatalf("add %s: %v", name, err)
	}
	return e
}

func TestNew_Defaults(t *testing.T) {
	r := New(Options{})
	if r.Cap() != DefaultMaxCats {
		t.Errorf("expected default capacity %d, got %d", DefaultMaxCats, r.Cap())
	}
	if r.Len() != 0 {
		t.Errorf("expected empty roster, got %d", r.Len())
	}
}

func TestSpawn(t *testing.T) {
	r := newTestRoster(2)

	e1, err := r.Spawn()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e2, err := r.Spawn()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e1.ID == e2.ID {
		t.Error("entries should get distinct ids")
	}

	if _, err := r.Spawn(); !errors.Is(err, ErrFull) {
		t.Errorf("expected ErrFull, got %v", err)
	}
}

func TestSpawnBatch(t *testing.T) {
	r := newTestRoster(5)

	entries, err := r.SpawnBatch(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 || r.Len() != 3 {
		t.Fatalf("expected 3 cats, got %d entries and len %d", len(entries), r.Len())
	}
	for i, e := range entries {
		if e.Index != i+1 {
			t.Errorf("entry %d: expected index %d, got %d", i, i+1, e.Index)
		}
	}

	if _, err := r.SpawnBatch(3); !errors.Is(err, ErrFull) {
		t.Errorf("expected ErrFull, got %v", err)
	}
	if r.Len() != 3 {
		t.Errorf("a refused batch should add nothing, got %d", r.Len())
	}
}

func TestGet(t *testing.T) {
	r := newTestRoster(5)
	addCat(t, r, "Luna", cat.Female)
	addCat(t, r, "Leo", cat.Male)

	e, err := r.Get(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Cat.Name != "Leo" {
		t.Errorf("expected Leo, got %s", e.Cat.Name)
	}

	for _, idx := range []int{0, 3, -1} {
		if _, err := r.Get(idx); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get(%d): expected ErrNotFound, got %v", idx, err)
		}
	}
}

func TestByID(t *testing.T) {
	r := newTestRoster(5)
	luna := addCat(t, r, "Luna", cat.Female)

	e, err := r.ByID(luna.ID)
	if err != nil || e.Cat.Name != "Luna" {
		t.Errorf("expected Luna, got %+v %v", e, err)
	}

	other := newTestRoster(5)
	stranger := addCat(t, other, "Nyx", cat.Female)
	if _, err := r.ByID(stranger.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestList_ReturnsSnapshots(t *testing.T) {
	r := newTestRoster(5)
	addCat(t, r, "Luna", cat.Female)

	list := r.List()
	list[0].Cat.Health = 0

	e, _ := r.Get(1)
	if e.Cat.Health != 50 {
		t.Errorf("mutating a snapshot should not touch the roster, got health %.1f", e.Cat.Health)
	}
}

func TestActions(t *testing.T) {
	r := newTestRoster(5)
	addCat(t, r, "Luna", cat.Female)

	msg, err := r.Apply(1, func(c *cat.CatInfo) (string, error) {
		return c.Feed(cat.FeedWeight, cat.FeedHealth), nil
	})
	if err != nil || !strings.Contains(msg, "Luna was fed") {
		t.Errorf("feed: %q %v", msg, err)
	}
	msg, err = r.Apply(1, func(c *cat.CatInfo) (string, error) {
		return c.Play(cat.PlayWeight, cat.PlayHealth), nil
	})
	if err != nil || !strings.Contains(msg, "Luna played") {
		t.Errorf("play: %q %v", msg, err)
	}
	msg, err = r.ToggleSleep(1, cat.SleepHealth)
	if err != nil || !strings.Contains(msg, "sleeping") {
		t.Errorf("sleep: %q %v", msg, err)
	}

	e, _ := r.Get(1)
	if e.Cat.Health != 67 {
		t.Errorf("expected health 67 after feed, play and nap, got %.1f", e.Cat.Health)
	}

	if _, err := r.ToggleSleep(9, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMate(t *testing.T) {
	r := newTestRoster(3)
	addCat(t, r, "Leo", cat.Male)
	addCat(t, r, "Luna", cat.Female)

	kitten, err := r.Mate(1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kitten.Cat.Age != 1 || kitten.Cat.Health != 100 || kitten.Cat.Food != 100 {
		t.Errorf("unexpected kitten %+v", kitten.Cat)
	}
	if r.Len() != 3 || kitten.Index != 3 {
		t.Errorf("kitten should be appended at #3, got len %d index %d", r.Len(), kitten.Index)
	}
	if kitten.Parents != [2]string{"Leo", "Luna"} {
		t.Errorf("unexpected parents %v", kitten.Parents)
	}

	if _, err := r.Mate(1, 2); !errors.Is(err, ErrFull) {
		t.Errorf("expected ErrFull, got %v", err)
	}
}

func TestMate_Refused(t *testing.T) {
	r := newTestRoster(5)
	addCat(t, r, "Leo", cat.Male)
	addCat(t, r, "Max", cat.Male)

	_, err := r.Mate(1, 2)

	var mateErr *cat.MateError
	if !errors.As(err, &mateErr) {
		t.Fatalf("expected *cat.MateError, got %v", err)
	}
	if r.Len() != 2 {
		t.Errorf("refused mate should add nothing, got %d", r.Len())
	}

	if _, err := r.Mate(1, 7); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTick_RemovesDeadAndKeepsOrder(t *testing.T) {
	r := newTestRoster(5)
	addCat(t, r, "Luna", cat.Female)
	old := addCat(t, r, "Rocky", cat.Male)
	addCat(t, r, "Leo", cat.Male)
	sick := addCat(t, r, "Nyx", cat.Female)
	addCat(t, r, "Zoe", cat.Female)

	r.mu.Lock()
	r.slots[1].cat.Age = cat.MaxAge
	r.slots[3].cat.Health = 0.1
	r.mu.Unlock()

	deaths := r.Tick(testNow.Add(time.Second))

	if len(deaths) != 2 {
		t.Fatalf("expected 2 deaths, got %d", len(deaths))
	}
	if deaths[0].ID != old.ID || !errors.Is(deaths[0].Cause, cat.ErrOldAge) {
		t.Errorf("expected Rocky to die of old age, got %+v", deaths[0])
	}
	if deaths[1].ID != sick.ID || !errors.Is(deaths[1].Cause, cat.ErrHealthDepleted) {
		t.Errorf("expected Nyx to die of poor health, got %+v", deaths[1])
	}

	var names []string
	for _, e := range r.List() {
		names = append(names, e.Cat.Name)
	}
	if got := strings.Join(names, ","); got != "Luna,Leo,Zoe" {
		t.Errorf("survivors = %s, want Luna,Leo,Zoe", got)
	}
}

func TestTick_NoDeaths(t *testing.T) {
	r := newTestRoster(5)
	addCat(t, r, "Luna", cat.Female)

	if deaths := r.Tick(testNow); len(deaths) != 0 {
		t.Errorf("expected no deaths, got %d", len(deaths))
	}
	e, _ := r.Get(1)
	if e.Cat.Food != 48 {
		t.Errorf("tick should decay food, got %.1f", e.Cat.Food)
	}
}

func TestApply(t *testing.T) {
	r := newTestRoster(5)
	addCat(t, r, "Luna", cat.Female)

	msg, err := r.Apply(1, func(c *cat.CatInfo) (string, error) {
		c.Sleep = true
		return c.Name + " dozes off", nil
	})
	if err != nil || msg != "Luna dozes off" {
		t.Fatalf("unexpected result %q %v", msg, err)
	}
	if e, _ := r.Get(1); !e.Cat.Sleep {
		t.Error("change made inside Apply should stick")
	}

	refused := errors.New("refused")
	if _, err := r.Apply(1, func(*cat.CatInfo) (string, error) { return "", refused }); !errors.Is(err, refused) {
		t.Errorf("expected the callback error, got %v", err)
	}

	called := false
	if _, err := r.Apply(4, func(*cat.CatInfo) (string, error) {
		called = true
		return "", nil
	}); !errors.Is(err, ErrNotFound) || called {
		t.Errorf("expected ErrNotFound without a call, got %v called=%v", err, called)
	}
}
