package indicator

import "errors"

// EMA computes the exponentially weighted moving average in the adjusted
// form: the value at t is the weighted mean of all prices up to t, where
// price[t-k] carries weight (1-alpha)^k and the weights are renormalized
// over the finite window. alpha = 2/(span+1). Defined from the first bar.
//
// This is numerically different from EWMA during warm-up; the EMA(20)
// signal thresholds depend on this exact form, so the two are kept apart.
func EMA(prices []float64, span int) ([]float64, error) {
	if span <= 0 {
		return nil, errors.New("span must be positive")
	}
	alpha := 2.0 / (float64(span) + 1.0)
	decay := 1.0 - alpha

	out := make([]float64, len(prices))
	var num, den float64
	for i, p := range prices {
		num = num*decay + p
		den = den*decay + 1.0
		out[i] = num / den
	}
	return out, nil
}

// EWMA computes the streaming recursive exponential average:
// v[0] = p[0], v[t] = alpha*p[t] + (1-alpha)*v[t-1]. Used by MACD.
func EWMA(prices []float64, span int) ([]float64, error) {
	if span <= 0 {
		return nil, errors.New("span must be positive")
	}
	out := make([]float64, len(prices))
	if len(prices) == 0 {
		return out, nil
	}
	alpha := 2.0 / (float64(span) + 1.0)

	out[0] = prices[0]
	for i := 1; i < len(prices); i++ {
		out[i] = alpha*prices[i] + (1.0-alpha)*out[i-1]
	}
	return out, nil
}
