package domain

// A donation annotated with derived ranking metrics.
// A RankedDonation is the output of the matching engine and describes how a
// single listing scored against the recipient's location and the active
// strategy. It is immutable result data and contains no side effects.
//
// Nil metric fields mean "not computable for this record": a donation with no
// pickup coordinate has nil DistanceKm, TravelTimeMinutes and PriorityScore;
// one with no expiry has nil TimeUntilExpiryMinutes and UrgencyScore.
// PriorityScore is on a higher-is-better scale.
type RankedDonation struct {
	Donation               *Donation
	DistanceKm             *float64
	TravelTimeMinutes      *float64
	TimeUntilExpiryMinutes *float64
	UrgencyScore           *float64
	PriorityScore          *float64
}
