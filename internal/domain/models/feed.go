package models

import (
	"fmt"
	"strings"
)

// FeedType enumerates the feed categories driving cost and emission lookups.
type FeedType string

const (
	Corn  FeedType = "Corn"
	Grass FeedType = "Grass"
	Grain FeedType = "Grain"
)

// FeedTypes lists the feed types in report order.
var FeedTypes = []FeedType{Corn, Grass, Grain}

// Lower returns the lower-case form used by the fertilizer reports.
func (f FeedType) Lower() string {
	return strings.ToLower(string(f))
}

// ParseFeedType derives a FeedType from free-form text, ignoring case.
func ParseFeedType(value string) (FeedType, error) {
	normalized := strings.TrimSpace(strings.ToLower(value))

	switch normalized {
	case Corn.Lower():
		return Corn, nil
	case Grass.Lower():
		return Grass, nil
	case Grain.Lower():
		return Grain, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFeedType, value)
	}
}
