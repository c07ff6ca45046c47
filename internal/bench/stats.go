package bench

import "statfn/internal/stats"

type FloatStats struct {
	N    int
	Min  float64
	Max  float64
	Mean float64
	Std  float64
}

// CalcFloatStats summarizes values. Std is 0 for fewer than two values.
func CalcFloatStats(values []float64) FloatStats {
	s := FloatStats{N: len(values)}
	if s.N == 0 {
		return s
	}

	s.Min, s.Max = values[0], values[0]
	for _, v := range values {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}

	s.Mean = stats.Mean(values)
	if s.N >= 2 {
		s.Std = stats.StandardDev(values)
	}
	return s
}
