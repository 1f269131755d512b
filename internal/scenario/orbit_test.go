package scenario_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/calistasalscpw/newtonlab/internal/scenario"
	"github.com/calistasalscpw/newtonlab/internal/vec"
)

var _ = Describe("Orbit", func() {
	var o *scenario.Orbit

	BeforeEach(func() {
		o = scenario.NewOrbit(scenario.DefaultOrbitParams())
	})

	It("starts idle at the default distance with zero angle and velocity", func() {
		Expect(o.Phase).To(Equal(scenario.OrbitIdle))
		Expect(o.Distance).To(Equal(o.Params.InitDistance))
		Expect(o.Angle).To(BeZero())
		Expect(o.Velocity).To(BeZero())
		Expect(o.Trail).To(BeEmpty())
		Expect(o.MoonX).To(BeNumerically("~", o.Params.CenterX+o.Params.InitDistance, 1e-9))
		Expect(o.MoonY).To(BeNumerically("~", o.Params.CenterY, 1e-9))
	})

	It("does not mutate physics while idle or paused", func() {
		for i := 0; i < 5; i++ {
			o.Step()
		}
		Expect(o.Angle).To(BeZero())

		o.Play()
		o.Step()
		angle := o.Angle
		o.Pause()
		for i := 0; i < 5; i++ {
			o.Step()
		}
		Expect(o.Angle).To(Equal(angle))
	})

	Describe("running", func() {
		BeforeEach(func() {
			o.Play()
		})

		It("recomputes force and velocity from the current distance", func() {
			o.Step()
			Expect(o.Force).To(BeNumerically(">", 0))
			Expect(o.Velocity).To(BeNumerically(">", 0))
		})

		It("exerts a stronger pull at a shorter distance", func() {
			o.Step()
			farForce := o.Force

			o.Reset()
			o.Play()
			o.Distance = o.Params.MinDistance
			o.Step()
			Expect(o.Force).To(BeNumerically(">", farForce))
		})

		It("accumulates angle at velocity over radius", func() {
			o.Step()
			expected := o.Velocity / o.Distance * o.Params.AngularScale
			Expect(o.Angle).To(BeNumerically("~", expected, 1e-9))
		})

		It("keeps the moon on the circle of the current distance", func() {
			for i := 0; i < 50; i++ {
				o.Step()
				r := vec.Vec2{X: o.MoonX, Y: o.MoonY}.
					Distance(vec.Vec2{X: o.Params.CenterX, Y: o.Params.CenterY})
				Expect(r).To(BeNumerically("~", o.Distance, 1e-9))
			}
		})

		It("scales the pull with the selected mass multiplier", func() {
			o.Step()
			baseline := o.Force

			o.Reset()
			o.SetMassScale(2.0)
			o.Play()
			o.Step()
			Expect(o.Force).To(BeNumerically(">", baseline))
		})
	})

	Describe("path trail", func() {
		It("holds the most recent positions up to the cap, in order", func() {
			o.Play()
			n := o.Params.TrailCap + 25
			var want []vec.Vec2
			for i := 0; i < n; i++ {
				o.Step()
				want = append(want, vec.Vec2{X: o.MoonX, Y: o.MoonY})
			}

			Expect(o.Trail).To(HaveLen(o.Params.TrailCap))
			Expect(o.Trail).To(Equal(want[len(want)-o.Params.TrailCap:]))
		})
	})

	Describe("dragging the moon", func() {
		It("ignores presses away from the moon", func() {
			Expect(o.PointerDown(0, 0)).To(BeFalse())
			Expect(o.Dragging()).To(BeFalse())
		})

		It("begins on a press within the hit radius", func() {
			Expect(o.PointerDown(o.MoonX+1, o.MoonY-1)).To(BeTrue())
			Expect(o.Dragging()).To(BeTrue())
		})

		It("clamps the dragged distance to its bounds", func() {
			o.PointerDown(o.MoonX, o.MoonY)

			o.PointerMove(o.Params.CenterX+1, o.Params.CenterY)
			Expect(o.Distance).To(Equal(o.Params.MinDistance))

			o.PointerMove(o.Params.CenterX+500, o.Params.CenterY)
			Expect(o.Distance).To(Equal(o.Params.MaxDistance))
		})

		It("recomputes the angle from the pointer vector", func() {
			o.PointerDown(o.MoonX, o.MoonY)
			o.PointerMove(o.Params.CenterX, o.Params.CenterY+40)
			Expect(o.Angle).To(BeNumerically("~", math.Pi/2, 1e-9))
		})

		It("suppresses the angular advance but refreshes force and velocity", func() {
			o.Play()
			o.Step()
			o.PointerDown(o.MoonX, o.MoonY)
			o.PointerMove(o.Params.CenterX+30, o.Params.CenterY)

			angle := o.Angle
			o.Step()
			Expect(o.Angle).To(Equal(angle))
			Expect(o.Velocity).To(BeNumerically("~",
				forceFreeVelocity(o), 1e-9))

			o.PointerUp()
			o.Step()
			Expect(o.Angle).To(BeNumerically(">", angle))
		})
	})

	Describe("force arrow pair", func() {
		It("derives both arrow lengths from the one force value", func() {
			o.Play()
			for i := 0; i < 10; i++ {
				o.Step()
				planetward := o.ArrowLength()
				moonward := o.ArrowLength()
				Expect(planetward).To(Equal(moonward))
			}
		})
	})

	It("resets to the initial record", func() {
		o.Play()
		for i := 0; i < 30; i++ {
			o.Step()
		}
		o.PointerDown(o.MoonX, o.MoonY)

		o.Reset()
		Expect(o.Phase).To(Equal(scenario.OrbitIdle))
		Expect(o.Angle).To(BeZero())
		Expect(o.Velocity).To(BeZero())
		Expect(o.Distance).To(Equal(o.Params.InitDistance))
		Expect(o.Trail).To(BeEmpty())
		Expect(o.Dragging()).To(BeFalse())
	})
})

var _ = Describe("Run", func() {
	It("stops when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		o := scenario.NewOrbit(scenario.DefaultOrbitParams())
		err := scenario.Run(ctx, o, 100, nil)
		Expect(err).To(MatchError(context.Canceled))
	})

	It("invokes the frame callback for every step", func() {
		o := scenario.NewOrbit(scenario.DefaultOrbitParams())
		o.Play()
		frames := 0
		err := scenario.Run(context.Background(), o, 25, func(int) bool {
			frames++
			return true
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(Equal(25))
	})

	It("stops early when the callback returns false", func() {
		o := scenario.NewOrbit(scenario.DefaultOrbitParams())
		o.Play()
		frames := 0
		err := scenario.Run(context.Background(), o, 100, func(int) bool {
			frames++
			return frames < 10
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(Equal(10))
	})
})

// forceFreeVelocity recomputes what Step should have derived for the current
// distance, mirroring the circular-orbit approximation.
func forceFreeVelocity(o *scenario.Orbit) float64 {
	p := o.Params
	return math.Sqrt(p.G * p.PlanetMass * p.MassScale / o.Distance)
}
