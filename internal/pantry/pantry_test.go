package pantry

import (
	"errors"
	"testing"
)

func TestFillAndTake(t *testing.T) {
	p := New()
	p.Fill(3)

	if p.Len() != 3 {
		t.Fatalf("expected 3 rations, got %d", p.Len())
	}

	for want := uint32(0); want < 3; want++ {
		r, err := p.Take()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.ID != want {
			t.Errorf("expected ration %d, got %d", want, r.ID)
		}
		if r.Name != RationName || r.FoodValue != RationFoodValue {
			t.Errorf("unexpected ration %+v", r)
		}
	}

	if _, err := p.Take(); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestFill_IDsKeepIncreasing(t *testing.T) {
	p := New()
	p.Fill(2)
	_, _ = p.Take()
	_, _ = p.Take()
	p.Fill(1)

	r, err := p.Take()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ID != 2 {
		t.Errorf("expected id 2 after restock, got %d", r.ID)
	}
}

func TestFill_StopsAtCeiling(t *testing.T) {
	p := New()

	if added := p.Fill(MaxStock - 3); added != MaxStock-3 {
		t.Fatalf("expected %d added, got %d", MaxStock-3, added)
	}
	if added := p.Fill(2_000_000_000); added != 3 {
		t.Errorf("expected only 3 to fit, got %d", added)
	}
	if p.Len() != MaxStock {
		t.Errorf("expected a full pantry of %d, got %d", MaxStock, p.Len())
	}
	if added := p.Fill(1); added != 0 {
		t.Errorf("a full pantry should take nothing, got %d", added)
	}
	if added := p.Fill(-5); added != 0 {
		t.Errorf("a negative fill should add nothing, got %d", added)
	}
}
