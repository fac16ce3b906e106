package physics

import (
	"github.com/golang/geo/r2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func distance(a, b Ball) float64 {
	return a.Position.Sub(b.Position).Norm()
}

var _ = Describe("Resolve", func() {
	Context("a single overlapping pair at rest", func() {
		var balls []Ball

		BeforeEach(func() {
			balls = []Ball{
				{Position: r2.Point{X: 100, Y: 100}, Radius: 10},
				{Position: r2.Point{X: 112, Y: 105}, Radius: 6},
			}
		})

		It("separates the centers to exactly the sum of the radii", func() {
			_, stats := Resolve(balls, FrictionNone, nil)
			Expect(stats.Resolved).To(Equal(1))
			Expect(distance(balls[0], balls[1])).To(BeNumerically("~", 16, 1e-9))
		})

		It("keeps both velocities at zero", func() {
			Resolve(balls, FrictionNone, nil)
			Expect(balls[0].Velocity).To(Equal(r2.Point{}))
			Expect(balls[1].Velocity).To(Equal(r2.Point{}))
		})

		It("moves both balls by the same amount along the center line", func() {
			before0, before1 := balls[0].Position, balls[1].Position
			Resolve(balls, FrictionNone, nil)
			shift0 := balls[0].Position.Sub(before0)
			shift1 := balls[1].Position.Sub(before1)
			Expect(shift0.Add(shift1).Norm()).To(BeNumerically("<", 1e-12))
			Expect(shift0.Cross(r2.Point{X: 12, Y: 5})).To(BeNumerically("~", 0, 1e-9))
		})

		It("emits a contact between the corrected centers", func() {
			contacts, _ := Resolve(balls, FrictionNone, nil)
			Expect(contacts).To(HaveLen(1))
			Expect(contacts[0].I).To(Equal(0))
			Expect(contacts[0].J).To(Equal(1))
			Expect(contacts[0].A).To(Equal(balls[0].Position))
			Expect(contacts[0].B).To(Equal(balls[1].Position))
		})
	})

	Context("a head-on collision of equal balls", func() {
		var balls []Ball

		BeforeEach(func() {
			balls = []Ball{
				{Position: r2.Point{X: 0, Y: 0}, Velocity: r2.Point{X: 10, Y: 0}, Radius: 10},
				{Position: r2.Point{X: 15, Y: 0}, Velocity: r2.Point{X: -10, Y: 0}, Radius: 10},
			}
		})

		It("negates both velocities without friction", func() {
			Resolve(balls, FrictionNone, nil)
			Expect(balls[0].Velocity.X).To(BeNumerically("~", -10, 1e-9))
			Expect(balls[1].Velocity.X).To(BeNumerically("~", 10, 1e-9))
			Expect(balls[0].Velocity.Y).To(BeNumerically("~", 0, 1e-9))
		})

		It("damps both velocities in Collision mode", func() {
			Resolve(balls, FrictionCollision, nil)
			Expect(balls[0].Velocity.X).To(BeNumerically("~", -10*CollisionDamping, 1e-9))
			Expect(balls[1].Velocity.X).To(BeNumerically("~", 10*CollisionDamping, 1e-9))
		})

		It("leaves velocities undamped in Drag mode", func() {
			Resolve(balls, FrictionDrag, nil)
			Expect(balls[0].Velocity.X).To(BeNumerically("~", -10, 1e-9))
		})
	})

	Context("conservation", func() {
		It("conserves momentum and kinetic energy for unequal masses", func() {
			balls := []Ball{
				{Position: r2.Point{X: 50, Y: 50}, Velocity: r2.Point{X: 30, Y: -4}, Radius: 20},
				{Position: r2.Point{X: 72, Y: 61}, Velocity: r2.Point{X: -12, Y: 7}, Radius: 5},
			}
			p0, e0 := Momentum(balls), KineticEnergy(balls)

			Resolve(balls, FrictionNone, nil)

			p1, e1 := Momentum(balls), KineticEnergy(balls)
			Expect(p1.X).To(BeNumerically("~", p0.X, 1e-9))
			Expect(p1.Y).To(BeNumerically("~", p0.Y, 1e-9))
			Expect(e1).To(BeNumerically("~", e0, 1e-6))
		})
	})

	Context("degenerate and non-overlapping input", func() {
		It("skips coincident centers without producing NaN", func() {
			balls := []Ball{
				{Position: r2.Point{X: 10, Y: 10}, Velocity: r2.Point{X: 1}, Radius: 5},
				{Position: r2.Point{X: 10, Y: 10}, Velocity: r2.Point{Y: 1}, Radius: 5},
			}
			contacts, stats := Resolve(balls, FrictionNone, nil)
			Expect(stats.Degenerate).To(Equal(1))
			Expect(stats.Resolved).To(BeZero())
			Expect(contacts).To(BeEmpty())
			Expect(balls[0].Position).To(Equal(r2.Point{X: 10, Y: 10}))
			Expect(balls[1].Velocity).To(Equal(r2.Point{Y: 1}))
		})

		It("ignores pairs that do not overlap", func() {
			balls := []Ball{
				{Position: r2.Point{X: 0, Y: 0}, Velocity: r2.Point{X: 5}, Radius: 5},
				{Position: r2.Point{X: 30, Y: 0}, Velocity: r2.Point{X: -5}, Radius: 5},
			}
			_, stats := Resolve(balls, FrictionNone, nil)
			Expect(stats.Candidates).To(BeZero())
			Expect(balls[0].Velocity.X).To(Equal(5.0))
		})

		It("resolves each unordered pair once", func() {
			balls := []Ball{
				{Position: r2.Point{X: 0, Y: 0}, Radius: 10},
				{Position: r2.Point{X: 10, Y: 0}, Radius: 10},
				{Position: r2.Point{X: 200, Y: 0}, Radius: 10},
			}
			contacts, stats := Resolve(balls, FrictionNone, nil)
			Expect(stats.Candidates).To(Equal(1))
			Expect(contacts).To(HaveLen(1))
		})
	})
})

var _ = Describe("BroadPhase", func() {
	It("lists overlapping pairs in index order", func() {
		balls := []Ball{
			{Position: r2.Point{X: 0, Y: 0}, Radius: 5},
			{Position: r2.Point{X: 100, Y: 0}, Radius: 5},
			{Position: r2.Point{X: 8, Y: 0}, Radius: 5},
			{Position: r2.Point{X: 104, Y: 0}, Radius: 5},
		}
		Expect(BroadPhase(balls)).To(Equal([]Pair{{I: 0, J: 2}, {I: 1, J: 3}}))
	})

	It("gives the same result above the parallel threshold", func() {
		balls := make([]Ball, parallelThreshold+40)
		for i := range balls {
			balls[i] = Ball{Position: r2.Point{X: float64(i) * 9, Y: float64(i % 3)}, Radius: 5}
		}
		pairs := BroadPhase(balls)
		Expect(pairs).To(Equal(appendOverlaps(nil, balls, 0, len(balls))))
		Expect(pairs).NotTo(BeEmpty())
	})
})
