// Package analysis summarizes recorded runs and world snapshots.
//
//   - [FitDecay]: exponential fit of kinetic energy against time
//   - [TimeToRest]: first sample at which no ball moves
//   - [DominantPeriod]: strongest period in the contact series via [FFT] (go-dsp)
//   - [Speeds] and [NewHistogram]: speed distribution of a world
//
// Under drag the kinetic energy of an isolated ball decays as 0.99^(2n)
// per tick, so the fitted rate is a quick check that a run behaved:
//
//	fit, ok := analysis.FitDecay(samples)
//	if ok && fit.Rate > 0 {
//	    fmt.Printf("half-life %.2fs\n", fit.HalfLife())
//	}
package analysis
