package cat

import (
	"math/rand"
	"sync"
	"time"
)

var (
	earliestBirth   = time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC)
	earliestArrival = time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// Generator produces randomized cats. It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator builds a generator. A nil rng is seeded from the clock and a
// nil now defaults to time.Now.
func NewGenerator(rng *rand.Rand, now func() time.Time) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{rng: rng, now: now}
}

var defaultGenerator = NewGenerator(nil, nil)

// NewCat spawns a single healthy, awake cat.
func NewCat() *CatInfo { return defaultGenerator.NewCat() }

// SpawnCats spawns n cats with random vitals.
func SpawnCats(n int) []*CatInfo { return defaultGenerator.SpawnCats(n) }

// Now returns the generator's clock reading.
func (g *Generator) Now() time.Time {
	return g.now()
}

func (g *Generator) NewCat() *CatInfo {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	name, gender := g.nameAndGender()
	birth, arrival := g.dates(now)

	return &CatInfo{
		Name:        name,
		Gender:      gender,
		ArrivedDate: arrival,
		BirthDate:   birth,
		Age:         ageAt(birth, now),
		Color:       ColorType(g.rng.Intn(int(colorCount))),
		Race:        Race(g.rng.Intn(int(raceCount))),
		Weight:      g.between(0.5, 7.0),
		Sleep:       false,
		Health:      MaxHealth,
		Food:        MaxFood,
		LastUpdated: now,
	}
}

func (g *Generator) SpawnCats(n int) []*CatInfo {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	cats := make([]*CatInfo, 0, n)
	for i := 0; i < n; i++ {
		name, gender := g.nameAndGender()
		birth, arrival := g.dates(now)
		cats = append(cats, &CatInfo{
			Name:        name,
			Gender:      gender,
			ArrivedDate: arrival,
			BirthDate:   birth,
			Age:         ageAt(birth, now),
			Color:       ColorType(g.rng.Intn(int(colorCount))),
			Race:        Race(g.rng.Intn(int(raceCount))),
			Weight:      g.between(1.5, 7.0),
			Sleep:       g.rng.Intn(2) == 0,
			Health:      float64(10 + g.rng.Intn(90)),
			Food:        float64(10 + g.rng.Intn(90)),
			LastUpdated: now,
		})
	}
	return cats
}

// Mate breeds a and b. On failure the returned error is a *MateError listing
// every reason and neither parent is touched.
func (g *Generator) Mate(a, b *CatInfo) (*CatInfo, error) {
	var reasons []string
	if a.Gender == b.Gender {
		reasons = append(reasons, "Same Sexe")
	}
	if a.Sleep {
		reasons = append(reasons, a.Name+" sleep")
	}
	if b.Sleep {
		reasons = append(reasons, b.Name+" sleep")
	}
	if len(reasons) > 0 {
		return nil, &MateError{First: a.Name, Second: b.Name, Reasons: reasons}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	today := truncateDay(now)
	name, gender := g.nameAndGender()

	color := b.Color
	if g.rng.Intn(2) == 0 {
		color = a.Color
	}
	race := b.Race
	if g.rng.Intn(2) == 0 {
		race = a.Race
	}

	return &CatInfo{
		Name:        name,
		Gender:      gender,
		ArrivedDate: today,
		BirthDate:   today,
		Age:         1,
		Color:       color,
		Race:        race,
		Weight:      1.0,
		Sleep:       false,
		Health:      MaxHealth,
		Food:        MaxFood,
		LastUpdated: now,
	}, nil
}

func (g *Generator) nameAndGender() (string, Gender) {
	gender := Female
	if g.rng.Intn(2) == 1 {
		gender = Male
	}
	pool := Names(gender)
	return pool[g.rng.Intn(len(pool))], gender
}

func (g *Generator) between(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// dates picks a birth date in [2010-01-01, today] and an arrival date
// between the later of birth and 2015-01-01, and today.
func (g *Generator) dates(now time.Time) (birth, arrival time.Time) {
	today := truncateDay(now)
	birth = g.dayIn(earliestBirth, today)

	start := earliestArrival
	if birth.After(start) {
		start = birth
	}
	arrival = g.dayIn(start, today)
	return birth, arrival
}

func (g *Generator) dayIn(start, end time.Time) time.Time {
	days := int(end.Sub(start).Hours() / 24)
	if days <= 0 {
		return start
	}
	return start.AddDate(0, 0, g.rng.Intn(days+1))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ageAt returns whole years between birth and now.
func ageAt(birth, now time.Time) int {
	now = now.UTC()
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age
}
