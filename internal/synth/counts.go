package synth

// Counts fixes the collection sizes for a run. Derived once from the session
// so the rest of the pipeline sees stable numbers.
type Counts struct {
	Products int
	Users    int
	Orders   int
	Reviews  int
}

func DeriveCounts(s *Session) Counts {
	return Counts{
		Products: s.Int(60, 100),
		Users:    s.Int(70, 100),
		Orders:   s.Int(55, 90),
		Reviews:  s.Int(50, 80),
	}
}
