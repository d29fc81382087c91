package matching

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"donation-match-service/internal/domain"
)

// Batch-level structural failure: unknown strategy or malformed recipient
// location. Per-record data quality issues never produce this; they degrade
// the individual record instead.
var ErrInvalidArgument = errors.New("invalid argument")

// Engine ranks donations for a recipient by blending spatial proximity and
// perishability urgency under a selectable strategy.
//
// The engine is a pure, synchronous transform: it performs no I/O, holds no
// state beyond its tuning params, and never mutates its inputs, so a single
// instance is safe for concurrent use by independent callers.
type Engine struct {
	params Params
}

func NewEngine(params Params) (*Engine, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	return &Engine{params: params}, nil
}

// Rank scores and orders donations for a recipient location.
//
// Scoreable records (those with a pickup coordinate) are sorted descending by
// priority score, ties broken by ascending distance, then by original input
// order. Records without a pickup coordinate are never treated as distance 0;
// they are appended after all scoreable records, preserving their relative
// input order, with nil distance and priority fields.
//
// A nil recipient disables spatial scoring entirely: every record passes
// through in input order with nil distance/travel/priority fields, urgency
// fields still annotated where an expiry exists. The output is always a
// permutation of the input.
func (e *Engine) Rank(
	donations []*domain.Donation,
	recipient *domain.Coordinate,
	strategy domain.Strategy,
	now time.Time,
) ([]domain.RankedDonation, error) {
	switch strategy {
	case domain.StrategyDistance, domain.StrategyUrgency, domain.StrategyBalanced:
	default:
		return nil, fmt.Errorf("rank donations: unknown strategy %q: %w", strategy, ErrInvalidArgument)
	}

	if recipient != nil && !recipient.Valid() {
		return nil, fmt.Errorf(
			"rank donations: recipient location lat=%v lon=%v is not a finite coordinate: %w",
			recipient.Lat, recipient.Lon, ErrInvalidArgument,
		)
	}

	type scored struct {
		ranked domain.RankedDonation
		index  int
	}

	scoreable := make([]scored, 0, len(donations))
	unscoreable := make([]domain.RankedDonation, 0)

	for i, d := range donations {
		r := domain.RankedDonation{Donation: d}

		// Urgency is defined independently of coordinates.
		if d.ExpiresAt != nil {
			minutesLeft := MinutesUntil(now, *d.ExpiresAt)
			urgency := UrgencyScore(now, *d.ExpiresAt, e.params.UrgencyHorizonMinutes)
			r.TimeUntilExpiryMinutes = &minutesLeft
			r.UrgencyScore = &urgency
		}

		if recipient == nil || d.Pickup == nil {
			unscoreable = append(unscoreable, r)
			continue
		}

		dist, ok := DistanceKm(*recipient, *d.Pickup)
		if !ok {
			// Malformed pickup coordinate degrades like a missing one.
			unscoreable = append(unscoreable, r)
			continue
		}

		travel := TravelTimeMinutes(dist, e.params.AverageSpeedKmh)
		r.DistanceKm = &dist
		r.TravelTimeMinutes = &travel

		// Missing expiry contributes zero urgency to the blend; the reported
		// urgency fields stay nil.
		urgency := 0.0
		if r.UrgencyScore != nil {
			urgency = *r.UrgencyScore
		}

		normDistance := math.Min(dist/e.params.DistanceHorizonKm, 1)

		var priority float64
		switch strategy {
		case domain.StrategyDistance:
			priority = 1 - normDistance
		case domain.StrategyUrgency:
			priority = urgency
		case domain.StrategyBalanced:
			priority = e.params.DistanceWeight*(1-normDistance) + e.params.UrgencyWeight*urgency
		}
		r.PriorityScore = &priority

		scoreable = append(scoreable, scored{ranked: r, index: i})
	}

	slices.SortStableFunc(scoreable, func(a, b scored) int {
		if *a.ranked.PriorityScore > *b.ranked.PriorityScore {
			return -1
		}
		if *a.ranked.PriorityScore < *b.ranked.PriorityScore {
			return 1
		}
		if *a.ranked.DistanceKm < *b.ranked.DistanceKm {
			return -1
		}
		if *a.ranked.DistanceKm > *b.ranked.DistanceKm {
			return 1
		}
		// Final tie-breaker keeps ordering deterministic across calls.
		return a.index - b.index
	})

	out := make([]domain.RankedDonation, 0, len(donations))
	for _, s := range scoreable {
		out = append(out, s.ranked)
	}
	out = append(out, unscoreable...)

	return out, nil
}
