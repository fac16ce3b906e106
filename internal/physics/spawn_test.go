package physics

import (
	"errors"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ballsim/internal/geom"
)

var _ = Describe("Spawner", func() {
	var rng *rand.Rand

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(42))
	})

	It("never places two fixed-radius balls closer than their diameter", func() {
		opts := SpawnOptions{MinRadius: 5, MaxRadius: 5, MaxAttempts: DefaultMaxAttempts}
		for seed := int64(0); seed < 20; seed++ {
			s := NewSpawner(rand.New(rand.NewSource(seed)), opts)
			balls, err := s.Spawn(10, geom.NewBounds(1000, 1000))
			Expect(err).NotTo(HaveOccurred())
			Expect(balls).To(HaveLen(10))
			for i := range balls {
				Expect(balls[i].Radius).To(Equal(5.0))
				for j := i + 1; j < len(balls); j++ {
					Expect(distance(balls[i], balls[j])).To(BeNumerically(">=", 10))
				}
			}
		}
	})

	It("draws radius, color and position from the configured ranges", func() {
		bounds := geom.NewBounds(1290, 720)
		balls, err := NewSpawner(rng, DefaultSpawnOptions()).Spawn(100, bounds)
		Expect(err).NotTo(HaveOccurred())
		for _, b := range balls {
			Expect(b.Radius).To(BeNumerically(">=", DefaultMinRadius))
			Expect(b.Radius).To(BeNumerically("<", DefaultMaxRadius))
			Expect(b.Color.R).To(BeNumerically(">=", 64))
			Expect(b.Color.A).To(Equal(uint8(255)))
			Expect(b.Position.X).To(BeNumerically("<", bounds.Width))
			Expect(b.Position.Y).To(BeNumerically("<", bounds.Height))
			Expect(b.AtRest()).To(BeTrue())
		}
	})

	It("is deterministic for a fixed seed", func() {
		a, _ := NewSpawner(rand.New(rand.NewSource(9)), DefaultSpawnOptions()).Spawn(20, geom.NewBounds(800, 600))
		b, _ := NewSpawner(rand.New(rand.NewSource(9)), DefaultSpawnOptions()).Spawn(20, geom.NewBounds(800, 600))
		Expect(a).To(Equal(b))
	})

	It("gives balls a bounded random velocity when an initial speed is set", func() {
		opts := DefaultSpawnOptions()
		opts.InitialSpeed = 50
		balls, err := NewSpawner(rng, opts).Spawn(30, geom.NewBounds(1290, 720))
		Expect(err).NotTo(HaveOccurred())
		moving := 0
		for _, b := range balls {
			Expect(b.Speed()).To(BeNumerically("<", 50))
			if !b.AtRest() {
				moving++
			}
		}
		Expect(moving).To(BeNumerically(">", 0))
	})

	It("returns zero balls for a zero count", func() {
		balls, err := NewSpawner(rng, DefaultSpawnOptions()).Spawn(0, geom.NewBounds(10, 10))
		Expect(err).NotTo(HaveOccurred())
		Expect(balls).To(BeEmpty())
	})

	It("fails with a density error when the area cannot fit the bodies", func() {
		opts := SpawnOptions{MinRadius: 10, MaxRadius: 10, MaxAttempts: 200}
		balls, err := NewSpawner(rng, opts).Spawn(50, geom.NewBounds(40, 40))
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, ErrSpawnDensity)).To(BeTrue())

		var densityErr *SpawnDensityError
		Expect(errors.As(err, &densityErr)).To(BeTrue())
		Expect(densityErr.Requested).To(Equal(50))
		Expect(densityErr.Placed).To(Equal(len(balls)))
		Expect(densityErr.Attempts).To(Equal(200))
	})

	DescribeTable("rejects invalid configuration",
		func(count int, opts SpawnOptions) {
			_, err := NewSpawner(rng, opts).Spawn(count, geom.NewBounds(100, 100))
			Expect(errors.Is(err, ErrInvalidConfig)).To(BeTrue())
		},
		Entry("negative count", -1, DefaultSpawnOptions()),
		Entry("zero radius", 3, SpawnOptions{MinRadius: 0, MaxRadius: 5, MaxAttempts: 10}),
		Entry("negative radius", 3, SpawnOptions{MinRadius: -2, MaxRadius: -1, MaxAttempts: 10}),
		Entry("inverted range", 3, SpawnOptions{MinRadius: 6, MaxRadius: 5, MaxAttempts: 10}),
		Entry("no attempts", 3, SpawnOptions{MinRadius: 1, MaxRadius: 5, MaxAttempts: 0}),
		Entry("negative speed", 3, SpawnOptions{MinRadius: 1, MaxRadius: 5, MaxAttempts: 10, InitialSpeed: -1}),
	)
})

var _ = Describe("FrictionMode", func() {
	DescribeTable("parses names",
		func(in string, want FrictionMode) {
			got, err := ParseFrictionMode(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
			Expect(got.String()).To(Equal(want.String()))
		},
		Entry("none", "none", FrictionNone),
		Entry("drag", "Drag", FrictionDrag),
		Entry("collision", " collision ", FrictionCollision),
	)

	It("rejects unknown names", func() {
		_, err := ParseFrictionMode("sticky")
		Expect(errors.Is(err, ErrInvalidConfig)).To(BeTrue())
	})
})

var _ = Describe("Ball", func() {
	It("derives mass from radius", func() {
		b := Ball{Radius: 7}
		Expect(b.Mass()).To(Equal(70.0))
		b.Radius = 2
		Expect(b.Mass()).To(Equal(20.0))
	})
})
