package matching

import "time"

// MinutesUntil returns the number of minutes from now until expiry.
// Negative when the expiry has already passed.
func MinutesUntil(now, expiry time.Time) float64 {
	return expiry.Sub(now).Minutes()
}

// UrgencyScore converts a time-to-expiry into a bounded [0,1] urgency signal.
//
// The curve is a deliberately simple linear decay so a recipient can reason
// about what a given score means:
//   - expired or expiring now  -> 1 (surfaced first so someone can still act)
//   - at or past horizonMinutes -> 0 (not urgent)
//   - in between               -> 1 - minutesLeft/horizonMinutes
func UrgencyScore(now, expiry time.Time, horizonMinutes float64) float64 {
	minutesLeft := MinutesUntil(now, expiry)

	if minutesLeft <= 0 {
		return 1
	}
	if horizonMinutes <= 0 || minutesLeft >= horizonMinutes {
		return 0
	}

	return 1 - minutesLeft/horizonMinutes
}
