package caretaker

import (
	"context"
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestKind_Valid(t *testing.T) {
	for _, k := range []Kind{KindSpawn, KindFeed, KindPlay, KindNap, KindBirth} {
		if !k.Valid() {
			t.Errorf("%s should be valid", k)
		}
	}
	if Kind("deaths; DROP TABLE caretaker").Valid() {
		t.Error("arbitrary column names must be rejected")
	}
}

func TestScore(t *testing.T) {
	c := Caretaker{Feeds: 2, Plays: 1, Naps: 1, Spawns: 1, Births: 2}
	if c.Score() != 11 {
		t.Errorf("expected score 11, got %d", c.Score())
	}
}

func TestMemory_RecordAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	if c, err := repo.GetCaretaker(ctx, "alice", "net", "#cats"); c != nil || err != nil {
		t.Fatalf("expected nothing yet, got %+v %v", c, err)
	}

	_ = repo.Record(ctx, "Alice", "Net", "#Cats", KindFeed, testNow)
	_ = repo.Record(ctx, " alice ", "net", "#cats", KindFeed, testNow.Add(time.Minute))
	_ = repo.Record(ctx, "alice", "net", "#cats", KindBirth, testNow.Add(2*time.Minute))

	c, err := repo.GetCaretaker(ctx, "ALICE", "net", "#cats")
	if err != nil || c == nil {
		t.Fatalf("expected caretaker, got %+v %v", c, err)
	}
	if c.Feeds != 2 || c.Births != 1 {
		t.Errorf("expected 2 feeds 1 birth, got %+v", c)
	}
	if c.LastSeenAt == nil || !c.LastSeenAt.Equal(testNow.Add(2*time.Minute)) {
		t.Errorf("unexpected last seen %v", c.LastSeenAt)
	}
	if !c.CreatedAt.Equal(testNow) {
		t.Errorf("created at should be the first record, got %s", c.CreatedAt)
	}
}

func TestMemory_RecordUnknownKind(t *testing.T) {
	repo := NewMemoryRepository()

	err := repo.Record(context.Background(), "alice", "net", "#cats", Kind("naps2"), testNow)
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestMemory_TopCaretakers(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	record := func(name string, kind Kind, n int) {
		for i := 0; i < n; i++ {
			_ = repo.Record(ctx, name, "net", "#cats", kind, testNow)
		}
	}
	record("alice", KindFeed, 3)
	record("bob", KindBirth, 1)
	record("carol", KindPlay, 1)
	record("dave", KindNap, 5)
	_ = repo.Record(ctx, "eve", "net", "#other", KindFeed, testNow)

	top, err := repo.TopCaretakers(ctx, "NET", "#cats", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var names []string
	for _, c := range top {
		names = append(names, c.Name)
	}
	want := []string{"dave", "alice", "bob"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("rank %d = %s, want %s (all: %v)", i+1, names[i], want[i], names)
		}
	}

	all, _ := repo.TopCaretakers(ctx, "net", "#cats", 0)
	if len(all) != 4 {
		t.Errorf("default limit should be 5 and return all 4, got %d", len(all))
	}
}

func TestTitleForScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "New Friend 🐱"},
		{4, "New Friend 🐱"},
		{5, "Shelter Volunteer 🧹"},
		{20, "Trusted Caretaker 🧶"},
		{99, "Cat Whisperer 🐾"},
		{100, "Shelter Legend 🏅"},
		{500, "Guardian of All Whiskers 👑"},
	}
	for _, tt := range tests {
		if got := TitleForScore(tt.score); got != tt.want {
			t.Errorf("TitleForScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestMemory_NickPrefixes(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_ = repo.Record(ctx, "@Alice", "net", "#cats", KindPlay, testNow)
	_ = repo.Record(ctx, "+alice", "net", "#cats", KindPlay, testNow)

	c, _ := repo.GetCaretaker(ctx, "alice", "net", "#cats")
	if c == nil || c.Plays != 2 {
		t.Errorf("mode prefixes should not split a caretaker, got %+v", c)
	}
}
