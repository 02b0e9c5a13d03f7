package kernel

import (
	"fmt"
	"math"
	"strconv"

	"dronefleet/internal/pkg/errs"
)

// Weight is a carry weight in the fleet's weight units.
// Drone weight limits and medication weights are both expressed as Weight.
type Weight float64

// NewWeight validates that w is strictly positive.
//
// Example:
//
//	w, err := kernel.NewWeight(200)
//	if err != nil {
//	    return err
//	}
func NewWeight(w float64) (Weight, error) {
	weight := Weight(w)
	if err := weight.Validate(); err != nil {
		return 0, err
	}
	return weight, nil
}

// Validate rejects zero, negative and non-finite weights.
func (w Weight) Validate() error {
	if math.IsNaN(float64(w)) || math.IsInf(float64(w), 0) {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%s is not a finite number", w))
	}
	if w <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%s is not greater than 0", w))
	}
	return nil
}

// Add returns the sum of w and other.
func (w Weight) Add(other Weight) Weight {
	return w + other
}

// Exceeds reports whether w is strictly greater than limit.
// A load equal to the limit fits.
func (w Weight) Exceeds(limit Weight) bool {
	return w > limit
}

// Float64 returns w as a plain float.
func (w Weight) Float64() float64 {
	return float64(w)
}

// String formats the weight without trailing zeros, e.g. "800" or "12.5".
func (w Weight) String() string {
	return strconv.FormatFloat(float64(w), 'f', -1, 64)
}

// SumWeights adds up weights; an empty input yields 0.
func SumWeights(weights ...Weight) Weight {
	var total Weight
	for _, w := range weights {
		total = total.Add(w)
	}
	return total
}
