package matching

import "fmt"

// Default tuning values. Treated as configuration, not behavior: cmd/server
// may override any of them from the environment.
const (
	// Assumed average pickup travel speed for urban trips.
	DefaultAverageSpeedKmh = 30.0
	// Distance beyond which proximity is treated as maximally unfavorable.
	DefaultDistanceHorizonKm = 10.0
	// Time-to-expiry beyond which a donation is treated as not urgent (24h).
	DefaultUrgencyHorizonMinutes = 1440.0
	// Blend weights for the balanced strategy.
	DefaultDistanceWeight = 0.5
	DefaultUrgencyWeight  = 0.5
)

// Params holds the tuning constants for a matching Engine.
type Params struct {
	AverageSpeedKmh       float64
	DistanceHorizonKm     float64
	UrgencyHorizonMinutes float64
	DistanceWeight        float64
	UrgencyWeight         float64
}

func DefaultParams() Params {
	return Params{
		AverageSpeedKmh:       DefaultAverageSpeedKmh,
		DistanceHorizonKm:     DefaultDistanceHorizonKm,
		UrgencyHorizonMinutes: DefaultUrgencyHorizonMinutes,
		DistanceWeight:        DefaultDistanceWeight,
		UrgencyWeight:         DefaultUrgencyWeight,
	}
}

func (p Params) validate() error {
	if p.AverageSpeedKmh <= 0 {
		return fmt.Errorf("matching params: averageSpeedKmh must be positive, got %v", p.AverageSpeedKmh)
	}
	if p.DistanceHorizonKm <= 0 {
		return fmt.Errorf("matching params: distanceHorizonKm must be positive, got %v", p.DistanceHorizonKm)
	}
	if p.UrgencyHorizonMinutes <= 0 {
		return fmt.Errorf("matching params: urgencyHorizonMinutes must be positive, got %v", p.UrgencyHorizonMinutes)
	}
	if p.DistanceWeight < 0 || p.UrgencyWeight < 0 {
		return fmt.Errorf("matching params: weights must be non-negative, got %v/%v", p.DistanceWeight, p.UrgencyWeight)
	}
	return nil
}
