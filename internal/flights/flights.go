// Package flights builds search filters from resolved trip criteria and
// selects the single best flight from a list of candidates.
package flights

import (
	"github.com/mzielin/kiwibook/internal/cli/options"
	"github.com/mzielin/kiwibook/pkg/protocol"
)

// BuildFilter derives the search query filter from the resolved
// configuration. The derivation is pure and deterministic: the
// departure date collapses to a single-day range, and the
// one-per-city narrowing is enabled exactly when searching by price.
func BuildFilter(cfg *options.SearchConfig) *protocol.SearchFilter {
	typeFlight := protocol.TripOneWay
	if !cfg.OneWay {
		typeFlight = protocol.TripRound
	}

	return &protocol.SearchFilter{
		FlyFrom:       cfg.FlyFrom,
		FlyTo:         cfg.FlyTo,
		DateFrom:      cfg.Date,
		DateTo:        cfg.Date,
		Partner:       protocol.PartnerTag,
		DirectFlights: cfg.Direct,
		OneForCity:    cfg.Criterion == options.Cheapest,
		TypeFlight:    typeFlight,
		NightsFrom:    cfg.ReturnNights,
		NightsTo:      cfg.ReturnNights,
	}
}

// SelectBest picks the single best candidate by the given criterion.
// The second return value is false when candidates is empty. A sole
// candidate is trivially both the cheapest and the fastest.
func SelectBest(candidates []protocol.Flight, criterion options.Criterion) (*protocol.Flight, bool) {
	switch {
	case len(candidates) == 0:
		return nil, false
	case len(candidates) == 1:
		return &candidates[0], true
	case criterion == options.Fastest:
		return fastestOf(candidates), true
	default:
		return cheapestOf(candidates), true
	}
}

// cheapestOf scans candidates left to right keeping the minimum by
// price. Ties keep the first-seen candidate. Callers guarantee the
// slice is non-empty; the first element seeds the running best.
func cheapestOf(candidates []protocol.Flight) *protocol.Flight {
	best := &candidates[0]
	for i := 1; i < len(candidates); i++ {
		if candidates[i].Price < best.Price {
			best = &candidates[i]
		}
	}
	return best
}

// fastestOf is the same scan keyed on total duration, with the same
// first-seen tie policy.
func fastestOf(candidates []protocol.Flight) *protocol.Flight {
	best := &candidates[0]
	for i := 1; i < len(candidates); i++ {
		if candidates[i].Duration.Total < best.Duration.Total {
			best = &candidates[i]
		}
	}
	return best
}
