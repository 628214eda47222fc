package models

import "time"

// MaxSpins is how many past spin results a wheel keeps, newest first.
const MaxSpins = 20

// DefaultWheelName is substituted when a wheel is created or renamed
// with a blank name.
const DefaultWheelName = "Untitled wheel"

// Item represents a single weighted option on a wheel.
// A higher weight makes the item proportionally more likely to be picked.
type Item struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Weight int    `json:"weight"` // always >= 1 after normalization
}

// SpinResult records the outcome of one spin. The label is a snapshot,
// so history stays readable after the item is renamed or removed.
type SpinResult struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"itemId"`
	Label     string    `json:"label"`
	Timestamp time.Time `json:"timestamp"`
}

// Wheel is a named set of weighted options plus its recent spin history.
type Wheel struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Items       []Item       `json:"items"`
	Spins       []SpinResult `json:"spins"` // most recent first, capped at MaxSpins
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// Document is the root object persisted to disk. The whole store is one
// document; lookups are linear scans over Lists.
type Document struct {
	Lists []Wheel `json:"lists"`
}
