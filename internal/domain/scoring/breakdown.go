package scoring

import "github.com/riskibarqy/fpl-cli/internal/domain/live"

// Breakdown holds accumulated points per catalog category, in catalog order.
type Breakdown struct {
	catalog Catalog
	points  []int
}

// NewBreakdown returns an all-zero accumulator for the catalog.
func NewBreakdown(catalog Catalog) Breakdown {
	return Breakdown{
		catalog: catalog,
		points:  make([]int, catalog.Len()),
	}
}

// Calculate sums explain points across every fixture into catalog buckets.
// Identifiers outside the catalog are ignored.
func Calculate(catalog Catalog, explains []live.Explain) Breakdown {
	out := NewBreakdown(catalog)
	for _, explain := range explains {
		for _, stat := range explain.Stats {
			out.Add(stat.Identifier, stat.Points)
		}
	}
	return out
}

// Add accumulates points for an identifier and reports whether it was known.
func (b *Breakdown) Add(identifier string, points int) bool {
	slot, ok := b.catalog.Slot(identifier)
	if !ok {
		return false
	}
	b.points[slot] += points
	return true
}

// Points returns the accumulated points for an identifier, zero when unknown.
func (b Breakdown) Points(identifier string) int {
	slot, ok := b.catalog.Slot(identifier)
	if !ok {
		return 0
	}
	return b.points[slot]
}

// Values returns a copy of the buckets in catalog order.
func (b Breakdown) Values() []int {
	out := make([]int, len(b.points))
	copy(out, b.points)
	return out
}

func (b Breakdown) IsZero() bool {
	for _, value := range b.points {
		if value != 0 {
			return false
		}
	}
	return true
}

func (b Breakdown) Catalog() Catalog {
	return b.catalog
}
