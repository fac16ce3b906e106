// Package physics implements the ball collision core: the body model,
// non-overlapping spawning, pairwise collision resolution and the
// per-tick integrator with its friction and wrap-around policy.
//
//   - [Ball]: circular body; mass is derived from radius
//   - [Spawner]: rejection-sampled, non-overlapping placement
//   - [Resolve]: one broad phase + static + dynamic collision pass
//   - [Integrate]: position update, friction, rest snap, wrap-around
//
// # Pair Processing
//
// Every unordered pair is resolved at most once per pass (i < j). The set of
// candidate pairs is fixed at the start of the pass; positional corrections
// are applied immediately in (i, j) order, so later pairs see the corrected
// positions of earlier ones.
//
// # Example
//
//	balls, _ := physics.NewSpawner(rng, physics.DefaultSpawnOptions()).Spawn(100, bounds)
//	contacts, stats := physics.Resolve(balls, physics.FrictionDrag, nil)
//	physics.Integrate(balls, physics.FrictionDrag, dt, bounds)
package physics
