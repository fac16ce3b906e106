package physics

import (
	"math"

	"github.com/golang/geo/r2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ballsim/internal/geom"
)

var _ = Describe("Integrate", func() {
	bounds := geom.NewBounds(200, 100)

	It("advances position by velocity times elapsed time", func() {
		balls := []Ball{{Position: r2.Point{X: 10, Y: 10}, Velocity: r2.Point{X: 20, Y: -5}, Radius: 1}}
		Integrate(balls, FrictionNone, 0.5, bounds)
		Expect(balls[0].Position.X).To(BeNumerically("~", 20, 1e-12))
		Expect(balls[0].Position.Y).To(BeNumerically("~", 7.5, 1e-12))
		Expect(balls[0].Velocity).To(Equal(r2.Point{X: 20, Y: -5}))
	})

	It("decays velocity in Drag mode after moving", func() {
		balls := []Ball{{Position: r2.Point{X: 50, Y: 50}, Velocity: r2.Point{X: 100}, Radius: 10}}
		Integrate(balls, FrictionDrag, 1.0, bounds)
		Expect(balls[0].Position.X).To(BeNumerically("~", 150, 1e-9))
		Expect(balls[0].Velocity.X).To(BeNumerically("~", 99, 1e-9))
		Expect(balls[0].Velocity.Y).To(BeZero())
	})

	It("does not decay velocity in Collision mode", func() {
		balls := []Ball{{Position: r2.Point{X: 50, Y: 50}, Velocity: r2.Point{X: 10}, Radius: 1}}
		Integrate(balls, FrictionCollision, 0.1, bounds)
		Expect(balls[0].Velocity.X).To(Equal(10.0))
	})

	DescribeTable("rest snap",
		func(v r2.Point, snapped bool) {
			balls := []Ball{{Position: r2.Point{X: 50, Y: 50}, Velocity: v, Radius: 1}}
			Integrate(balls, FrictionNone, 0, bounds)
			if snapped {
				Expect(balls[0].Velocity).To(Equal(r2.Point{}))
			} else {
				Expect(balls[0].Velocity).To(Equal(v))
			}
		},
		Entry("magnitude squared 0.04", r2.Point{X: 0.2}, true),
		Entry("magnitude squared 0.06", r2.Point{Y: math.Sqrt(0.06)}, false),
		Entry("split across axes below threshold", r2.Point{X: 0.1, Y: 0.1}, true),
		Entry("well above threshold", r2.Point{X: 3, Y: 4}, false),
	)

	DescribeTable("wrap-around",
		func(start, vel r2.Point, want r2.Point) {
			balls := []Ball{{Position: start, Velocity: vel, Radius: 1}}
			Integrate(balls, FrictionNone, 1, bounds)
			Expect(balls[0].Position).To(Equal(want))
		},
		Entry("past the right edge goes to zero", r2.Point{X: 200, Y: 50}, r2.Point{X: 1}, r2.Point{X: 0, Y: 50}),
		Entry("exactly zero goes to the right edge", r2.Point{X: 1, Y: 50}, r2.Point{X: -1}, r2.Point{X: 200, Y: 50}),
		Entry("past the bottom goes to zero", r2.Point{X: 20, Y: 99}, r2.Point{Y: 2}, r2.Point{X: 20, Y: 0}),
		Entry("above the top goes to the bottom", r2.Point{X: 20, Y: 1}, r2.Point{Y: -5}, r2.Point{X: 20, Y: 100}),
	)
})
