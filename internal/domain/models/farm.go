package models

// Cow is a single animal on the farm. Values are copied, never mutated.
type Cow struct {
	Breed       string   `yaml:"breed"`
	FeedType    FeedType `yaml:"feed_type"`
	MilkYield   float64  `yaml:"milk_yield"`   // gallons per day
	GHGEmission float64  `yaml:"ghg_emission"` // kg per day, before feed-related emissions
}

// Pen is a housing group. It is not linked to individual Cow records.
type Pen struct {
	Breed    string `yaml:"breed"`
	CowCount int    `yaml:"cow_count"`
}

// FoodEffect holds the per-food coefficients of a breed.
type FoodEffect struct {
	Fertilizer float64 `yaml:"fertilizer"` // fertilizer units per unit of soil
}

// Breed is a cattle variety with its per-food effects.
type Breed struct {
	Name    string                  `yaml:"name"`
	Effects map[FeedType]FoodEffect `yaml:"effects"`
}

// FertilizerCoefficient returns the fertilizer yield for the food, or 0 when the
// breed has no entry for it.
func (b Breed) FertilizerCoefficient(food FeedType) float64 {
	effect, ok := b.Effects[food]
	if !ok {
		return 0
	}
	return effect.Fertilizer
}

// Farm owns the cows, pens and breeds of one scenario in insertion order.
type Farm struct {
	cows   []Cow
	pens   []Pen
	breeds []Breed
}

// NewFarm builds a farm from the provided cows.
func NewFarm(cows ...Cow) *Farm {
	f := &Farm{}
	for _, c := range cows {
		f.AddCow(c)
	}
	return f
}

// AddCow appends a cow to the farm.
func (f *Farm) AddCow(cow Cow) {
	f.cows = append(f.cows, cow)
}

// AddPen appends a pen to the farm.
func (f *Farm) AddPen(pen Pen) {
	f.pens = append(f.pens, pen)
}

// AddBreed appends a breed to the farm.
func (f *Farm) AddBreed(breed Breed) {
	f.breeds = append(f.breeds, breed)
}

// Cows returns a copy of the farm's cows.
func (f *Farm) Cows() []Cow {
	if f == nil {
		return nil
	}
	return append([]Cow(nil), f.cows...)
}

// Pens returns a copy of the farm's pens.
func (f *Farm) Pens() []Pen {
	if f == nil {
		return nil
	}
	return append([]Pen(nil), f.pens...)
}

// Breeds returns a copy of the farm's breeds.
func (f *Farm) Breeds() []Breed {
	if f == nil {
		return nil
	}
	return append([]Breed(nil), f.breeds...)
}

// HeadcountByBreed sums pen cow counts per breed. Pens of the same breed are
// merged. This is a derived view; it does not look at the Cow records.
func (f *Farm) HeadcountByBreed() map[string]int {
	counts := make(map[string]int)
	if f == nil {
		return counts
	}
	for _, pen := range f.pens {
		counts[pen.Breed] += pen.CowCount
	}
	return counts
}
