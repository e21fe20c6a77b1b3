// Package render turns aggregation results into console text, YAML and
// terminal charts.
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mamadbah2/dairy/internal/domain/models"
)

// PenAllocation prints one line per pen.
func PenAllocation(a models.PenAllocation) string {
	var sb strings.Builder
	for _, pen := range a.Pens {
		fmt.Fprintf(&sb, "%d %s cows in this pen\n", pen.CowCount, pen.Breed)
	}
	return sb.String()
}

// MilkYield prints the farm-wide milk yield.
func MilkYield(m models.MilkYield) string {
	return fmt.Sprintf("Expected milk yield: %s gallons per day\n", Float(m.Total))
}

// Emissions prints one line per cow followed by the total.
func Emissions(e models.Emissions) string {
	var sb strings.Builder
	for _, cow := range e.Cows {
		fmt.Fprintf(&sb, "%s cows fed with %s will produce %s kg of greenhouse gas emissions per day\n",
			cow.Breed, cow.FeedType, Float(cow.Emissions))
	}
	fmt.Fprintf(&sb, "Total expected greenhouse gas emissions: %s kg per day\n", Float(e.Total))
	return sb.String()
}

// CostEstimate prints the daily feed cost.
func CostEstimate(c models.CostEstimate) string {
	return fmt.Sprintf("Estimated cost: $%.2f per day\n", c.Total)
}

// FarmReport prints the four farm report sections in order.
func FarmReport(r models.FarmReport) string {
	return PenAllocation(r.Pens) + MilkYield(r.MilkYield) + Emissions(r.Emissions) + CostEstimate(r.Cost)
}

// YieldBreakdown prints each breed's yield per feed type and its share of
// that feed type's farm-wide yield.
func YieldBreakdown(b models.YieldBreakdown) string {
	var sb strings.Builder
	for _, breed := range b.Breeds {
		fmt.Fprintf(&sb, "%s cows:\n", breed)
		for _, feed := range models.FeedTypes {
			fmt.Fprintf(&sb, "    %s feed: %s gallons of milk (%.2f%% of total)\n",
				feed, Number(b.ByBreed[breed][feed]), b.Share(breed, feed))
		}
	}
	return sb.String()
}

// FertilizerProfiles prints each breed's fertilizer output per food.
func FertilizerProfiles(profiles []models.FertilizerProfile) string {
	var sb strings.Builder
	for _, p := range profiles {
		fmt.Fprintf(&sb, "Fertilizer production for %s:\n", p.Breed)
		for _, f := range p.Foods {
			fmt.Fprintf(&sb, "%s: %s lbs\n", f.Food.Lower(), Float(f.Amount))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// FoodProduction prints every breed's production for one food.
func FoodProduction(p models.FoodProduction) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Food production for %s:\n", p.Food.Lower())
	for _, b := range p.Breeds {
		fmt.Fprintf(&sb, "%s: %s lbs\n", b.Breed, Float(b.Amount))
	}
	sb.WriteString("\n")
	return sb.String()
}

// WeeklyCost prints the herd's weekly feeding cost.
func WeeklyCost(w models.WeeklyCost) string {
	return fmt.Sprintf("The cost per week of feeding the cows is: $%.2f\n", w.Total)
}

// Float formats v the way the reports have always shown floats: shortest
// round-trip digits, always with a fractional part, exponent form below 1e-4
// and from 1e16.
func Float(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Number formats v with shortest round-trip digits and no forced fraction.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
