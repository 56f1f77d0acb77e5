package cat

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	AgeStep         = 5 * time.Minute
	AgingHealthLoss = 5.0
	MaxAge          = 20

	FoodDecay     = 2.0
	StarvePenalty = 5.0
	HealthDecay   = 0.5

	MaxHealth = 100.0
	MaxFood   = 100.0
	MinWeight = 0.1
)

// Default action deltas.
const (
	FeedWeight  = 0.1
	FeedHealth  = 5.0
	PlayWeight  = 0.05
	PlayHealth  = 2.0
	SleepHealth = 10.0
)

var (
	ErrDead           = errors.New("cat is dead")
	ErrOldAge         = errors.New("reached the age ceiling")
	ErrHealthDepleted = errors.New("health reached zero")
)

// MateError explains why two cats could not be bred.
type MateError struct {
	First   string
	Second  string
	Reasons []string
}

func (e *MateError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Can't mate %s with %s because:", e.First, e.Second)
	for _, r := range e.Reasons {
		b.WriteString(" - ")
		b.WriteString(r)
	}
	return b.String()
}

type CatInfo struct {
	Name        string    `json:"name"`
	Gender      Gender    `json:"gender"`
	ArrivedDate time.Time `json:"arrived_date"`
	BirthDate   time.Time `json:"birth_date"`
	Age         int       `json:"age"`
	Color       ColorType `json:"color"`
	Race        Race      `json:"race"`
	Weight      float64   `json:"weight"`
	Sleep       bool      `json:"sleep"`
	Health      float64   `json:"health"`
	Food        float64   `json:"food"`
	LastUpdated time.Time `json:"last_updated"`
}

func (c *CatInfo) asleep() string {
	return fmt.Sprintf("%s is sleeping and can't do that right now.", c.Name)
}

// Feed adds dWeight to the weight and dHealth to both health and food.
func (c *CatInfo) Feed(dWeight, dHealth float64) string {
	if c.Sleep {
		return c.asleep()
	}
	c.Weight += dWeight
	c.Health += dHealth
	c.Food += dHealth
	c.clamp()
	return fmt.Sprintf("%s was fed. New weight: %.1f kg, Health: %.0f, Food: %.0f", c.Name, c.Weight, c.Health, c.Food)
}

func (c *CatInfo) Play(dWeight, dHealth float64) string {
	if c.Sleep {
		return c.asleep()
	}
	c.Weight -= dWeight
	c.Health += dHealth
	c.clamp()
	return fmt.Sprintf("%s played. New weight: %.1f kg, Health: %.0f", c.Name, c.Weight, c.Health)
}

// ToggleSleep flips the sleep flag. Falling asleep grants dHealth.
func (c *CatInfo) ToggleSleep(dHealth float64) string {
	c.Sleep = !c.Sleep
	if !c.Sleep {
		return fmt.Sprintf("%s is now awake.", c.Name)
	}
	c.Health += dHealth
	c.clamp()
	return fmt.Sprintf("%s is now sleeping. Health: %.0f", c.Name, c.Health)
}

// GrowOlder applies a single aging step.
func (c *CatInfo) GrowOlder() string {
	c.age()
	c.clamp()
	return fmt.Sprintf("%s got older. New age: %d, Health: %.0f", c.Name, c.Age, c.Health)
}

func (c *CatInfo) age() {
	c.Age++
	c.Health -= AgingHealthLoss
}

// Mate breeds c with other using the package generator.
func (c *CatInfo) Mate(other *CatInfo) (*CatInfo, error) {
	return defaultGenerator.Mate(c, other)
}

// Update ages the cat for every full AgeStep elapsed since the last update,
// then applies food and health decay. The returned error wraps ErrDead once
// the cat reached MaxAge or its health is gone.
func (c *CatInfo) Update(now time.Time) error {
	if c.LastUpdated.IsZero() {
		c.LastUpdated = now
	}
	if elapsed := now.Sub(c.LastUpdated); elapsed >= AgeStep {
		steps := int(elapsed / AgeStep)
		for i := 0; i < steps; i++ {
			c.age()
		}
		c.LastUpdated = c.LastUpdated.Add(time.Duration(steps) * AgeStep)
	}

	if c.Food > 0 {
		c.Food -= FoodDecay
	} else {
		c.Health -= StarvePenalty
	}
	c.Health -= HealthDecay
	c.clamp()

	switch {
	case c.Age >= MaxAge:
		return fmt.Errorf("%s: %w: %w", c.Name, ErrDead, ErrOldAge)
	case c.Health <= 0:
		return fmt.Errorf("%s: %w: %w", c.Name, ErrDead, ErrHealthDepleted)
	}
	return nil
}

func (c *CatInfo) clamp() {
	c.Health = min(max(c.Health, 0), MaxHealth)
	c.Food = min(max(c.Food, 0), MaxFood)
	c.Weight = max(c.Weight, MinWeight)
}

// Summary is the short card: name, gender, age and sleep state.
func (c *CatInfo) Summary() string {
	return fmt.Sprintf("Name: %s\n- Gender: %s\n- Age: %d\n- Sleep: %s", c.Name, c.Gender, c.Age, yesNo(c.Sleep))
}

func (c *CatInfo) String() string {
	return fmt.Sprintf(
		"Name: %s\n- Age: %d year(s)\n- Color: %s\n- Race: %s\n- Weight: %.2f kg\n- Sleep: %s\n- Health: %.0f\n- Food: %.0f\n- Gender: %s\n- Arrived: %s\n- Born: %s",
		c.Name, c.Age, c.Color, c.Race, c.Weight, yesNo(c.Sleep), c.Health, c.Food, c.Gender,
		c.ArrivedDate.Format(time.DateOnly), c.BirthDate.Format(time.DateOnly),
	)
}

// OneLine renders the card on a single line for chat front ends.
func (c *CatInfo) OneLine() string {
	return strings.ReplaceAll(c.String(), "\n", " ")
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}
