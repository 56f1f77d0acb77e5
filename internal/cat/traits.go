package cat

type Gender int

const (
	Female Gender = iota
	Male
)

func (g Gender) String() string {
	switch g {
	case Male:
		return "Male"
	default:
		return "Female"
	}
}

var maleNames = []string{
	"Mittens", "Whiskers", "Shadow", "Smokey",
	"Tiger", "Oreo", "Simba", "Ginger", "Felix",
	"Jack", "Jasper", "Leo", "Loki", "Lucky",
	"Max", "Milo", "Chamallow", "Oscar",
	"Peanut", "Rocky", "Surf",
}

var femaleNames = []string{
	"Fluffy", "Luna", "Suzie", "Princess", "Marelle",
	"Bella", "Chloe", "Coco", "Daisy", "Nyx", "Dinah",
	"Nala", "Pepper", "Zoe", "Callie", "Angel", "Kitty",
}

// Names returns the name pool for a gender.
func Names(g Gender) []string {
	if g == Male {
		return maleNames
	}
	return femaleNames
}

type ColorType int

const (
	Black ColorType = iota
	White
	Orange
	Grey
	Tabby
	Calico
	Tortoiseshell
	Bicolor
	colorCount
)

func (c ColorType) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	case Orange:
		return "Orange"
	case Grey:
		return "Grey"
	case Tabby:
		return "Tabby"
	case Calico:
		return "Calico"
	case Tortoiseshell:
		return "Tortoiseshell"
	case Bicolor:
		return "Bicolor"
	default:
		return "Unknown"
	}
}

type Race int

const (
	European Race = iota
	Siamese
	Persian
	MaineCoon
	Bengal
	Sphynx
	Ragdoll
	BritishShorthair
	ScottishFold
	Abyssinian
	raceCount
)

func (r Race) String() string {
	switch r {
	case European:
		return "European"
	case Siamese:
		return "Siamese"
	case Persian:
		return "Persian"
	case MaineCoon:
		return "Maine Coon"
	case Bengal:
		return "Bengal"
	case Sphynx:
		return "Sphynx"
	case Ragdoll:
		return "Ragdoll"
	case BritishShorthair:
		return "British Shorthair"
	case ScottishFold:
		return "Scottish Fold"
	case Abyssinian:
		return "Abyssinian"
	default:
		return "Unknown"
	}
}

func (g Gender) MarshalText() ([]byte, error)    { return []byte(g.String()), nil }
func (c ColorType) MarshalText() ([]byte, error) { return []byte(c.String()), nil }
func (r Race) MarshalText() ([]byte, error)      { return []byte(r.String()), nil }
