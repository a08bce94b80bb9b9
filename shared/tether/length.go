package tether

import (
	"math"

	"github.com/asgmods/grapplehook/shared/gamemath"
)

// ResolveLength applies one batch of pending steps to the desired length.
// Shrinking never increases the length and never drops it more than
// SlingshotSlack below the current distance. Extending never exceeds max.
// The result always lies in [0, max].
func ResolveLength(desired, distance, max float64, steps int32, dt float64, tu Tuning) float64 {
	if steps == 0 {
		return desired
	}
	proposed := desired + tu.LengthStep*float64(steps)*dt
	if steps < 0 {
		proposed = math.Min(desired, math.Max(distance-tu.SlingshotSlack, proposed))
	} else {
		proposed = math.Min(max, proposed)
	}
	return gamemath.Clamp(proposed, 0, math.Max(max, 0))
}
