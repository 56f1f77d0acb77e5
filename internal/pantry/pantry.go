package pantry

import (
	"errors"
	"sync"
)

const (
	RationName      = "CatEat"
	RationFoodValue = 2.0

	// MaxStock is the most rations the pantry holds at once.
	MaxStock = 1000
)

var ErrEmpty = errors.New("the pantry is empty")

// Ration is one serving of cat food.
type Ration struct {
	ID        uint32
	Name      string
	FoodValue float64
}

type Pantry struct {
	mu     sync.Mutex
	slots  []Ration
	nextID uint32
}

func New() *Pantry {
	return &Pantry{}
}

// Fill stocks up to amount new rations without going past MaxStock and
// reports how many were added.
func (p *Pantry) Fill(amount int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	amount = max(0, min(amount, MaxStock-len(p.slots)))
	for i := 0; i < amount; i++ {
		p.slots = append(p.slots, Ration{
			ID:        p.nextID,
			Name:      RationName,
			FoodValue: RationFoodValue,
		})
		p.nextID++
	}
	return amount
}

// Take removes the oldest ration.
func (p *Pantry) Take() (Ration, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.slots) == 0 {
		return Ration{}, ErrEmpty
	}
	r := p.slots[0]
	p.slots = p.slots[1:]
	return r, nil
}

func (p *Pantry) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.slots)
}
