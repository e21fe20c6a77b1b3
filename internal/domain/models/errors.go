package models

import "errors"

// Sentinel errors for farm lookups. Use errors.Is() to check these.
var (
	// ErrUnknownFeedType indicates a feed type absent from a lookup table.
	ErrUnknownFeedType = errors.New("unknown feed type")

	// ErrUnknownBreed indicates a breed absent from a lookup table.
	ErrUnknownBreed = errors.New("unknown breed")
)
