package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFarm_AddCowAndPen(t *testing.T) {
	farm := NewFarm()

	cows := []Cow{
		{Breed: "Holstein", FeedType: Corn, MilkYield: 10, GHGEmission: 5},
		{Breed: "Jersey", FeedType: Grass, MilkYield: 7, GHGEmission: 4},
		{Breed: "Guernsey", FeedType: Grain, MilkYield: 8, GHGEmission: 4.5},
		{Breed: "Ayrshire", FeedType: Grass, MilkYield: 6, GHGEmission: 3.5},
	}
	for i, c := range cows {
		farm.AddCow(c)
		assert.Len(t, farm.Cows(), i+1)
	}

	pens := []Pen{{"Holstein", 3}, {"Jersey", 2}, {"Guernsey", 4}, {"Ayrshire", 5}}
	for i, p := range pens {
		farm.AddPen(p)
		assert.Len(t, farm.Pens(), i+1)
	}

	assert.Equal(t, cows, farm.Cows(), "cows should keep insertion order")
	assert.Equal(t, pens, farm.Pens(), "pens should keep insertion order")
}

func TestFarm_AccessorsReturnCopies(t *testing.T) {
	farm := NewFarm(Cow{Breed: "Holstein", FeedType: Corn, MilkYield: 10})
	farm.AddPen(Pen{Breed: "Holstein", CowCount: 3})

	cows := farm.Cows()
	cows[0].MilkYield = 99
	pens := farm.Pens()
	pens[0].CowCount = 99

	assert.Equal(t, 10.0, farm.Cows()[0].MilkYield)
	assert.Equal(t, 3, farm.Pens()[0].CowCount)
}

func TestFarm_NilAndEmpty(t *testing.T) {
	var nilFarm *Farm
	assert.Nil(t, nilFarm.Cows())
	assert.Nil(t, nilFarm.Pens())
	assert.Nil(t, nilFarm.Breeds())
	assert.Empty(t, nilFarm.HeadcountByBreed())

	empty := NewFarm()
	assert.Empty(t, empty.Cows())
	assert.Empty(t, empty.HeadcountByBreed())
}

func TestFarm_HeadcountByBreed(t *testing.T) {
	farm := NewFarm()
	farm.AddPen(Pen{Breed: "Holstein", CowCount: 3})
	farm.AddPen(Pen{Breed: "Jersey", CowCount: 2})
	farm.AddPen(Pen{Breed: "Holstein", CowCount: 4})

	assert.Equal(t, map[string]int{"Holstein": 7, "Jersey": 2}, farm.HeadcountByBreed())
}

func TestBreed_FertilizerCoefficient(t *testing.T) {
	jersey := Breed{Name: "Jersey", Effects: map[FeedType]FoodEffect{
		Grain: {Fertilizer: 0.008},
		Corn:  {Fertilizer: 0.011},
	}}

	assert.Equal(t, 0.008, jersey.FertilizerCoefficient(Grain))
	assert.Equal(t, 0.011, jersey.FertilizerCoefficient(Corn))
	assert.Zero(t, jersey.FertilizerCoefficient(Grass), "missing food should default to 0")

	var bare Breed
	require.NotPanics(t, func() { bare.FertilizerCoefficient(Corn) })
}
