package indicator

import (
	"errors"
	"math"
)

// SMA computes the trailing simple moving average over the given window.
// The first window-1 values are NaN.
func SMA(prices []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, errors.New("window must be positive")
	}
	out := make([]float64, len(prices))
	var sum float64
	for i, p := range prices {
		sum += p
		if i >= window {
			sum -= prices[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		} else {
			out[i] = math.NaN()
		}
	}
	return out, nil
}
