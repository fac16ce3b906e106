package analysis

import (
	"math"

	"github.com/san-kum/ballsim/internal/sim"
)

// Decay is a least-squares fit of ln(KE) = ln(Initial) - Rate*t.
type Decay struct {
	Initial float64
	Rate    float64
	Points  int
}

// HalfLife is the time for the kinetic energy to halve. It is +Inf when the
// energy does not decay.
func (d Decay) HalfLife() float64 {
	if d.Rate <= 0 {
		return math.Inf(1)
	}
	return math.Ln2 / d.Rate
}

// FitDecay fits an exponential to the kinetic energy series. Samples with
// zero energy are skipped since every ball snaps to rest eventually under
// friction. ok is false with fewer than two usable samples.
func FitDecay(samples []sim.Sample) (Decay, bool) {
	var sumT, sumY, sumTT, sumTY float64
	n := 0
	for _, s := range samples {
		if s.KineticEnergy <= 0 {
			continue
		}
		y := math.Log(s.KineticEnergy)
		sumT += s.Time
		sumY += y
		sumTT += s.Time * s.Time
		sumTY += s.Time * y
		n++
	}
	if n < 2 {
		return Decay{}, false
	}

	fn := float64(n)
	denom := fn*sumTT - sumT*sumT
	if math.Abs(denom) < 1e-12 {
		return Decay{}, false
	}
	slope := (fn*sumTY - sumT*sumY) / denom
	intercept := (sumY - slope*sumT) / fn

	return Decay{Initial: math.Exp(intercept), Rate: -slope, Points: n}, true
}

// TimeToRest returns the time of the first sample at which no ball moves.
func TimeToRest(samples []sim.Sample) (float64, bool) {
	for _, s := range samples {
		if s.Moving == 0 {
			return s.Time, true
		}
	}
	return 0, false
}
