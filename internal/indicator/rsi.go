package indicator

import (
	"errors"
	"math"
)

// RSI computes the Relative Strength Index using trailing simple means of
// gains and losses over `period` price deltas. The first `period` values
// are NaN. When the trailing average loss is zero the RSI saturates to 100;
// when both averages are zero (a flat window) the value stays NaN and the
// row counts as incomplete downstream.
func RSI(prices []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	out := make([]float64, len(prices))
	for i := range out {
		out[i] = math.NaN()
	}

	gains := make([]float64, len(prices))
	losses := make([]float64, len(prices))
	for i := 1; i < len(prices); i++ {
		delta := prices[i] - prices[i-1]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}

	var gainSum, lossSum float64
	for i := 1; i < len(prices); i++ {
		gainSum += gains[i]
		lossSum += losses[i]
		if i > period {
			gainSum -= gains[i-period]
			lossSum -= losses[i-period]
		}
		if i < period {
			continue
		}
		avgGain := gainSum / float64(period)
		avgLoss := lossSum / float64(period)
		switch {
		case avgGain == 0 && avgLoss == 0:
			// 0/0: leave undefined
		case avgLoss == 0:
			out[i] = 100.0
		default:
			rs := avgGain / avgLoss
			out[i] = 100.0 - 100.0/(1.0+rs)
		}
	}
	return out, nil
}
