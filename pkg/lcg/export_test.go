package lcg

// Cumulative gives tests a copy of the cumulative table
func (a *Alphabet) Cumulative() []float32 {
	return append([]float32(nil), a.cum...)
}

func (a *Alphabet) Pick(r float32) byte { return a.pick(r) }
