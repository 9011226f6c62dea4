package indicator

// MACD spans per the reference convention.
const (
	macdFastSpan   = 12
	macdSlowSpan   = 26
	macdSignalSpan = 9
)

// MACD computes the MACD line (EWMA12 - EWMA26) and its 9-span signal
// line. Both use the streaming recursive EWMA form, not the adjusted EMA.
func MACD(prices []float64) (macd, signal []float64, err error) {
	fast, err := EWMA(prices, macdFastSpan)
	if err != nil {
		return nil, nil, err
	}
	slow, err := EWMA(prices, macdSlowSpan)
	if err != nil {
		return nil, nil, err
	}
	macd = make([]float64, len(prices))
	for i := range macd {
		macd[i] = fast[i] - slow[i]
	}
	signal, err = EWMA(macd, macdSignalSpan)
	if err != nil {
		return nil, nil, err
	}
	return macd, signal, nil
}
