// etherion/internal/types/stage.go
package types

// Stage is an ordinal pipeline position, S1 (earliest) to S5.
type Stage string

const (
	S1 Stage = "S1"
	S2 Stage = "S2"
	S3 Stage = "S3"
	S4 Stage = "S4"
	S5 Stage = "S5"
)

// Stages lists every stage in order.
var Stages = []Stage{S1, S2, S3, S4, S5}

// Index returns 1..5, or 0 for an unknown stage.
func (s Stage) Index() int {
	for i, st := range Stages {
		if st == s {
			return i + 1
		}
	}
	return 0
}

// Next moves one level up, capped at S5.
func (s Stage) Next() Stage {
	i := s.Index()
	if i == 0 || i >= len(Stages) {
		return s
	}
	return Stages[i]
}
