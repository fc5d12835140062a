// etherion/internal/stablerand/rand.go
package stablerand

import (
	"crypto/sha256"
	"math"
	"strconv"

	"etherion/internal/types"
)

// modulus for the 48-bit digest prefix
const BASE = 10_000_000

// Rand01 maps key to a stable value in [0,1): the first 12 hex digits of the
// SHA-256 digest, mod BASE, over BASE.
func Rand01(key string) float64 {
	sum := sha256.Sum256([]byte(key))
	var v uint64
	for _, b := range sum[:6] {
		v = v<<8 | uint64(b)
	}
	return float64(v%BASE) / BASE
}

func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Round1 rounds to one decimal the way %.1f formatting does.
func Round1(x float64) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 1, 64), 64)
	return v
}

// RoundInt rounds half to even.
func RoundInt(x float64) int {
	return int(math.RoundToEven(x))
}

// Lerp returns lo + span*r. The explicit conversion keeps the product from
// being fused into an FMA so results match across platforms.
func Lerp(lo, span, r float64) float64 {
	return lo + float64(span*r)
}

// ---- Cadence modulator ----

type Modulator struct {
	cadence types.Cadence
}

func NewModulator(c types.Cadence) Modulator { return Modulator{cadence: c} }

func (m Modulator) Cadence() types.Cadence { return m.cadence }

// Boost scales base by a cadence-banded factor drawn from keybase|cadence and
// clamps the result to [0,1].
func (m Modulator) Boost(keybase string, base float64) float64 {
	r := Rand01(keybase + "|" + m.cadence.Key())
	lo, span := m.cadence.Band().Range()
	return Clamp01(float64(base * Lerp(lo, span, r)))
}
