package models

import (
	"fmt"
	"maps"
)

// FeedTable maps a feed type to a per-head constant.
type FeedTable map[FeedType]float64

// Lookup returns the constant for the feed type.
func (t FeedTable) Lookup(feed FeedType) (float64, error) {
	value, ok := t[feed]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFeedType, feed)
	}
	return value, nil
}

// WeeklyCostTable maps breed to the weekly cost of each feed type.
type WeeklyCostTable map[string]FeedTable

// Breed returns the feed costs of the breed.
func (t WeeklyCostTable) Breed(name string) (FeedTable, error) {
	costs, ok := t[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBreed, name)
	}
	return costs, nil
}

// Tables groups the constant lookup tables injected into the services.
type Tables struct {
	Emissions   FeedTable       `yaml:"emissions" validate:"required,dive,keys,oneof=Corn Grass Grain,endkeys,gte=0"`
	FeedCosts   FeedTable       `yaml:"feed_costs" validate:"required,dive,keys,oneof=Corn Grass Grain,endkeys,gte=0"`
	WeeklyCosts WeeklyCostTable `yaml:"weekly_costs" validate:"required,dive,dive,keys,oneof=Corn Grass Grain,endkeys,gte=0"`
}

// DefaultEmissions returns the kg/day added to a cow's emissions by its feed.
func DefaultEmissions() FeedTable {
	return FeedTable{Corn: 5.0, Grass: 3.0, Grain: 6.0}
}

// DefaultFeedCosts returns the per-head daily feed cost.
func DefaultFeedCosts() FeedTable {
	return FeedTable{Corn: 3.5, Grass: 2.5, Grain: 4.0}
}

// DefaultWeeklyCosts returns the weekly feeding cost per breed and feed type.
func DefaultWeeklyCosts() WeeklyCostTable {
	return WeeklyCostTable{
		"Holstein": {Corn: 25, Grain: 45, Grass: 30},
		"Jersey":   {Corn: 20, Grain: 40, Grass: 35},
		"Guernsey": {Corn: 22, Grain: 42, Grass: 32},
		"Ayrshire": {Corn: 24, Grain: 44, Grass: 28},
	}
}

// DefaultTables returns fresh copies of every default table.
func DefaultTables() Tables {
	return Tables{
		Emissions:   DefaultEmissions(),
		FeedCosts:   DefaultFeedCosts(),
		WeeklyCosts: DefaultWeeklyCosts(),
	}
}

// Clone deep-copies the tables.
func (t Tables) Clone() Tables {
	weekly := make(WeeklyCostTable, len(t.WeeklyCosts))
	for breed, costs := range t.WeeklyCosts {
		weekly[breed] = maps.Clone(costs)
	}
	return Tables{
		Emissions:   maps.Clone(t.Emissions),
		FeedCosts:   maps.Clone(t.FeedCosts),
		WeeklyCosts: weekly,
	}
}
