package services

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"wheelspin/internal/models"
)

// ItemInput is a raw item payload as submitted by a client. Weight is a
// float so arbitrary JSON numbers are accepted; normalization coerces
// it to a valid integer weight.
type ItemInput struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Weight float64 `json:"weight"`
}

// NormalizeWeight coerces any weight input to an integer >= 1. Missing
// weights arrive as zero and become 1; non-finite values become 1;
// everything else rounds to the nearest integer and clamps at 1.
// Idempotent: applying it twice gives the same result as once.
func NormalizeWeight(w float64) int {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 1
	}
	n := int(math.Round(w))
	if n < 1 {
		return 1
	}
	return n
}

// NormalizeItems canonicalizes raw items: entries whose label is empty
// after trimming are dropped, surviving labels are trimmed, items
// without an id get a fresh one (stable ids let clients edit existing
// items), and weights are clamped. Always returns a valid, non-nil
// slice.
func NormalizeItems(raw []ItemInput) []models.Item {
	items := make([]models.Item, 0, len(raw))
	for _, in := range raw {
		label := strings.TrimSpace(in.Label)
		if label == "" {
			continue
		}
		id := in.ID
		if id == "" {
			id = uuid.NewString()
		}
		items = append(items, models.Item{
			ID:     id,
			Label:  label,
			Weight: NormalizeWeight(in.Weight),
		})
	}
	return items
}

// SanitizeName trims the name and substitutes the default for blanks.
func SanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.DefaultWheelName
	}
	return name
}

// SanitizeDescription trims the description. An empty result is stored
// as absent (the field is omitted from JSON), not as an empty string.
func SanitizeDescription(desc string) string {
	return strings.TrimSpace(desc)
}
