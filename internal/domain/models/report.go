package models

// PenAllocation lists pens in insertion order.
type PenAllocation struct {
	Pens []Pen `yaml:"pens"`
}

// MilkYield is the farm-wide daily milk yield.
type MilkYield struct {
	Total float64 `yaml:"total_gallons_per_day"`
}

// CowEmission is the daily emission of one cow including its feed.
type CowEmission struct {
	Breed     string   `yaml:"breed"`
	FeedType  FeedType `yaml:"feed_type"`
	Emissions float64  `yaml:"kg_per_day"`
}

// Emissions aggregates greenhouse gas emissions per cow and in total.
type Emissions struct {
	Cows  []CowEmission `yaml:"cows"`
	Total float64       `yaml:"total_kg_per_day"`
}

// CowCost is the daily feed cost of one cow.
type CowCost struct {
	Breed    string   `yaml:"breed"`
	FeedType FeedType `yaml:"feed_type"`
	Cost     float64  `yaml:"cost"`
}

// CostEstimate aggregates per-head feed costs.
type CostEstimate struct {
	Cows  []CowCost `yaml:"cows"`
	Total float64   `yaml:"total_per_day"`
}

// FarmReport bundles the pen, yield, emission and cost aggregates of a farm.
type FarmReport struct {
	Pens      PenAllocation `yaml:"pen_allocation"`
	MilkYield MilkYield     `yaml:"milk_yield"`
	Emissions Emissions     `yaml:"emissions"`
	Cost      CostEstimate  `yaml:"cost_estimate"`
}

// YieldBreakdown groups milk yield by breed and feed type.
type YieldBreakdown struct {
	Breeds           []string                        `yaml:"breeds"` // first-seen order
	ByBreed          map[string]map[FeedType]float64 `yaml:"by_breed"`
	TotalsByFeedType map[FeedType]float64            `yaml:"totals_by_feed_type"`
}

// Share returns the breed's percentage of the feed type's farm-wide yield.
// A zero feed-type total yields 0.
func (b YieldBreakdown) Share(breed string, feed FeedType) float64 {
	total := b.TotalsByFeedType[feed]
	if total == 0 {
		return 0
	}
	return b.ByBreed[breed][feed] / total * 100
}

// BreedTotal sums the breed's yield over every feed type.
func (b YieldBreakdown) BreedTotal(breed string) float64 {
	var total float64
	for _, feed := range FeedTypes {
		total += b.ByBreed[breed][feed]
	}
	return total
}

// BreedProduction is the estimated output of one breed.
type BreedProduction struct {
	Breed  string  `yaml:"breed"`
	Amount float64 `yaml:"amount"`
}

// FoodProduction is the fertilizer-driven production of every breed for one food.
type FoodProduction struct {
	Food     FeedType          `yaml:"food"`
	SoilSize float64           `yaml:"soil_size"`
	Breeds   []BreedProduction `yaml:"breeds"`
}

// AsMap returns breed name to production.
func (p FoodProduction) AsMap() map[string]float64 {
	out := make(map[string]float64, len(p.Breeds))
	for _, b := range p.Breeds {
		out[b.Breed] = b.Amount
	}
	return out
}

// FoodAmount is an amount attributed to one food type.
type FoodAmount struct {
	Food   FeedType `yaml:"food"`
	Amount float64  `yaml:"amount"`
}

// FertilizerProfile lists a breed's fertilizer output per food.
type FertilizerProfile struct {
	Breed string       `yaml:"breed"`
	Foods []FoodAmount `yaml:"foods"`
}

// BreedWeeklyCost is the weekly cost of one breed's cows.
type BreedWeeklyCost struct {
	Breed string  `yaml:"breed"`
	Count int     `yaml:"count"`
	Cost  float64 `yaml:"cost"`
}

// WeeklyCost is the weekly feeding cost of the herd.
type WeeklyCost struct {
	Breeds []BreedWeeklyCost `yaml:"breeds"`
	Total  float64           `yaml:"total"`
}

// Point is one labelled value of a chart series.
type Point struct {
	Label string  `yaml:"label"`
	Value float64 `yaml:"value"`
}
