package waveform

// Multiply appends result = a * b.
func (w *Waveform) Multiply(a, b, result string) error {
	return w.combine(a, b, result, func(x, y float64) float64 { return x * y })
}

// Divide appends result = dividend / divisor. Samples where the divisor
// is exactly zero are set to zero so the column stays finite.
func (w *Waveform) Divide(dividend, divisor, result string) error {
	return w.combine(dividend, divisor, result, func(x, y float64) float64 {
		if y == 0 {
			return 0
		}
		return x / y
	})
}

// Scale appends result = factor * a.
func (w *Waveform) Scale(factor float64, a, result string) error {
	col, err := w.Column(a)
	if err != nil {
		return err
	}
	for i := range col {
		col[i] *= factor
	}
	return w.Append(result, col)
}

func (w *Waveform) combine(a, b, result string, op func(x, y float64) float64) error {
	colA, err := w.Column(a)
	if err != nil {
		return err
	}
	colB, err := w.Column(b)
	if err != nil {
		return err
	}
	for i := range colA {
		colA[i] = op(colA[i], colB[i])
	}
	return w.Append(result, colA)
}
