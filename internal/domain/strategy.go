package domain

import "fmt"

// Strategy selects how distance and urgency are blended into a priority score.
// It is a closed enumeration: unknown values are rejected at the boundary by
// ParseStrategy rather than silently defaulted.
type Strategy string

const (
	// Rank by proximity alone (urgency still reported, not ordered on).
	StrategyDistance Strategy = "distance"
	// Rank by time-to-expiry alone (distance still reported, not ordered on).
	StrategyUrgency Strategy = "urgency"
	// Weighted blend of proximity and urgency.
	StrategyBalanced Strategy = "balanced"
)

// ParseStrategy maps a caller-supplied selector to a Strategy.
// An empty string selects StrategyBalanced.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "":
		return StrategyBalanced, nil
	case string(StrategyDistance):
		return StrategyDistance, nil
	case string(StrategyUrgency):
		return StrategyUrgency, nil
	case string(StrategyBalanced):
		return StrategyBalanced, nil
	default:
		return "", fmt.Errorf("parse strategy: unknown strategy %q", s)
	}
}
