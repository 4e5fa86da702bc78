package session_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sketchdeck/internal/session"
	"github.com/san-kum/sketchdeck/internal/sketch"
)

var _ = Describe("Controller", func() {
	var (
		fx      *fixture
		clock   *fakeClock
		display *countingDisplay
		ctrl    *session.Controller
	)

	start := func(animation string) {
		var err error
		ctrl, err = session.New(fx.registry, display, session.Options{
			Animation: animation,
			Now:       clock.Now,
		})
		Expect(err).NotTo(HaveOccurred())
		ctrl.Start(1000, 800)
	}

	BeforeEach(func() {
		fx = newFixture()
		clock = newFakeClock()
		display = newCountingDisplay()
	})

	Describe("New", func() {
		It("defaults to the cnn animation, dark theme and visible topbar", func() {
			start("")
			st := ctrl.State()
			Expect(st.Animation).To(Equal("cnn"))
			Expect(st.Dark).To(BeTrue())
			Expect(st.TopbarVisible).To(BeTrue())
			Expect(ctrl.Mode()).To(Equal(session.Looping))
		})

		It("rejects an unknown start-up animation", func() {
			_, err := session.New(fx.registry, display, session.Options{Animation: "nope"})
			Expect(err).To(MatchError(sketch.ErrNotFound))
		})

		It("honours light theme and hidden topbar options", func() {
			var err error
			ctrl, err = session.New(fx.registry, display, session.Options{
				Animation:  "grid",
				Light:      true,
				HideTopbar: true,
				Now:        clock.Now,
			})
			Expect(err).NotTo(HaveOccurred())
			ctrl.Start(1000, 800)
			Expect(ctrl.State().Dark).To(BeFalse())
			Expect(display.height).To(Equal(800.0))
		})
	})

	Describe("SelectAnimation", func() {
		BeforeEach(func() {
			start("cnn")
		})

		It("round-trips through the registry for every registered id", func() {
			for _, want := range fx.registry.List() {
				Expect(ctrl.SelectAnimation(want.ID)).To(Succeed())
				got, _, err := fx.registry.Lookup(ctrl.State().Animation)
				Expect(err).NotTo(HaveOccurred())
				Expect(got).To(Equal(want))
				Expect(ctrl.Current()).To(Equal(want))
			}
		})

		It("renders a static animation exactly once and ignores ticks", func() {
			before := display.frames
			Expect(ctrl.SelectAnimation("grid")).To(Succeed())
			Expect(ctrl.Mode()).To(Equal(session.Static))
			Expect(display.frames).To(Equal(before + 1))
			Expect(fx.renderers["grid"].frames).To(HaveLen(1))

			for i := 0; i < 10; i++ {
				ctrl.Tick(clock.Advance(16 * time.Millisecond))
			}
			Expect(display.frames).To(Equal(before + 1))
		})

		It("does not force a render when switching to a looping animation", func() {
			Expect(ctrl.SelectAnimation("grid")).To(Succeed())
			before := display.frames

			Expect(ctrl.SelectAnimation("ball")).To(Succeed())
			Expect(ctrl.Looping()).To(BeTrue())
			Expect(display.frames).To(Equal(before))

			for i := 0; i < 5; i++ {
				ctrl.Tick(clock.Advance(16 * time.Millisecond))
			}
			Expect(display.frames).To(Equal(before + 5))
			Expect(fx.renderers["ball"].frames).To(HaveLen(5))
		})

		It("rejects unknown ids without touching the session", func() {
			Expect(ctrl.SelectAnimation("ball")).To(Succeed())
			ctrl.ToggleTheme()
			ctrl.HideTopbar()
			before := ctrl.State()
			frames := display.frames
			panel := ctrl.Panel().Descriptor()

			err := ctrl.SelectAnimation("missing")
			Expect(err).To(MatchError(sketch.ErrNotFound))
			Expect(ctrl.State()).To(Equal(before))
			Expect(ctrl.Mode()).To(Equal(session.Looping))
			Expect(display.frames).To(Equal(frames))
			Expect(ctrl.Panel().Descriptor()).To(Equal(panel))
		})

		It("initialises renderer state once per animation", func() {
			Expect(ctrl.SelectAnimation("grid")).To(Succeed())
			Expect(ctrl.SelectAnimation("ball")).To(Succeed())
			Expect(ctrl.SelectAnimation("grid")).To(Succeed())
			Expect(fx.renderers["grid"].inits).To(Equal(1))
		})

		It("cycles through the registry in order", func() {
			Expect(ctrl.SelectAnimation("grid")).To(Succeed())
			ctrl.Next()
			Expect(ctrl.State().Animation).To(Equal("ball"))
			ctrl.Previous()
			ctrl.Previous()
			Expect(ctrl.State().Animation).To(Equal("cnn"))
		})
	})

	Describe("ToggleTheme", func() {
		It("re-renders once per toggle in static mode and restores the output", func() {
			start("grid")
			frames := display.frames
			original := fx.renderers["grid"].last()

			ctrl.ToggleTheme()
			Expect(ctrl.State().Dark).To(BeFalse())
			Expect(fx.renderers["grid"].last().Dark).To(BeFalse())
			ctrl.ToggleTheme()

			Expect(ctrl.State().Dark).To(BeTrue())
			Expect(display.frames).To(Equal(frames + 2))
			Expect(fx.renderers["grid"].last()).To(Equal(original))
		})

		It("leaves repainting to the next tick in looping mode", func() {
			start("ball")
			frames := display.frames
			ctrl.ToggleTheme()
			Expect(display.frames).To(Equal(frames))

			ctrl.Tick(clock.Advance(16 * time.Millisecond))
			Expect(fx.renderers["ball"].last().Dark).To(BeFalse())
		})
	})

	Describe("topbar and resize", func() {
		BeforeEach(func() {
			start("ball")
		})

		It("gives the topbar band back to the canvas and repaints in any mode", func() {
			frames := display.frames
			ctrl.HideTopbar()
			Expect(ctrl.State().TopbarVisible).To(BeFalse())
			w, h := ctrl.Canvas()
			Expect(w).To(Equal(1000))
			Expect(h).To(Equal(800))
			Expect(display.frames).To(Equal(frames + 1))
			Expect(display.height).To(Equal(800.0))

			ctrl.ShowTopbar()
			_, h = ctrl.Canvas()
			Expect(h).To(Equal(736))
			Expect(display.frames).To(Equal(frames + 2))
		})

		It("is idempotent for unchanged parameters", func() {
			ctrl.HideTopbar()
			ctrl.HideTopbar()
			Expect(ctrl.State().TopbarVisible).To(BeFalse())
			_, h := ctrl.Canvas()
			Expect(h).To(Equal(800))
		})

		It("recomputes the canvas on resize", func() {
			frames := display.frames
			ctrl.Resize(640, 480)
			w, h := ctrl.Canvas()
			Expect([]int{w, h}).To(Equal([]int{640, 416}))
			Expect(display.frames).To(Equal(frames + 1))
			Expect(display.width).To(Equal(640.0))
		})
	})

	Describe("Tick", func() {
		It("hands renderers the time since the previous tick", func() {
			start("wave")
			ctrl.Tick(clock.Advance(10 * time.Millisecond))
			ctrl.Tick(clock.Advance(20 * time.Millisecond))
			frames := fx.renderers["wave"].frames
			Expect(frames[0].Elapsed).To(BeZero())
			Expect(frames[1].Elapsed).To(Equal(20 * time.Millisecond))
			Expect(frames[1].Width).To(Equal(1000.0))
			Expect(frames[1].Height).To(Equal(736.0))
		})

		It("samples FPS only once 500ms have passed", func() {
			start("wave")
			t0 := ctrl.State().LastFPSSample

			for i := 0; i < 4; i++ {
				ctrl.Tick(clock.Advance(100 * time.Millisecond))
			}
			Expect(ctrl.State().FPS).To(BeZero())
			Expect(ctrl.State().LastFPSSample).To(Equal(t0))

			now := clock.Advance(200 * time.Millisecond)
			ctrl.Tick(now)
			Expect(ctrl.State().FPS).To(BeNumerically("~", 5.0/0.6, 1e-9))
			Expect(ctrl.State().LastFPSSample).To(Equal(now))

			ctrl.Tick(clock.Advance(100 * time.Millisecond))
			Expect(ctrl.State().LastFPSSample).To(Equal(now))
			Expect(fx.renderers["wave"].last().FPS).To(BeNumerically("~", 5.0/0.6, 1e-9))
		})

		It("passes the pointer through to renderers", func() {
			start("ball")
			ctrl.MovePointer(12, 34, true)
			ctrl.Tick(clock.Advance(16 * time.Millisecond))
			p := fx.renderers["ball"].last().Pointer
			Expect(p.X).To(Equal(12.0))
			Expect(p.Y).To(Equal(34.0))
			Expect(p.Pressed).To(BeTrue())
			Expect(p.Inside).To(BeTrue())
		})
	})

	Describe("Decorate", func() {
		It("wraps each renderer once and keeps painting through the wrapper", func() {
			wrapped := map[string]int{}
			painted := 0
			var err error
			ctrl, err = session.New(fx.registry, display, session.Options{
				Animation: "ball",
				Now:       clock.Now,
				Decorate: func(r sketch.Renderer) sketch.Renderer {
					for id, rr := range fx.renderers {
						if sketch.Renderer(rr) == r {
							wrapped[id]++
						}
					}
					return &countingWrapper{inner: r, paints: &painted}
				},
			})
			Expect(err).NotTo(HaveOccurred())
			ctrl.Start(1000, 800)

			for i := 0; i < 10; i++ {
				ctrl.Tick(clock.Advance(16 * time.Millisecond))
			}
			Expect(ctrl.SelectAnimation("grid")).To(Succeed())
			Expect(ctrl.SelectAnimation("ball")).To(Succeed())
			ctrl.Tick(clock.Advance(16 * time.Millisecond))
			ctrl.Reset()
			ctrl.Tick(clock.Advance(16 * time.Millisecond))

			Expect(wrapped).To(Equal(map[string]int{"ball": 1, "grid": 1}))
			Expect(painted).To(Equal(13))
			Expect(fx.renderers["ball"].inits).To(Equal(2))
		})
	})

	Describe("Reset", func() {
		It("re-initialises the active renderer's state", func() {
			start("grid")
			ctrl.Reset()
			Expect(fx.renderers["grid"].inits).To(Equal(2))
			Expect(fx.renderers["grid"].frames).To(HaveLen(2))
		})
	})

	Describe("info panel", func() {
		It("shows the start-up animation and hides it after 3000ms", func() {
			start("grid")
			panel := ctrl.Panel()
			Expect(panel.Visible()).To(BeTrue())
			Expect(panel.Descriptor().ID).To(Equal("grid"))

			ctrl.Advance(clock.Advance(2999 * time.Millisecond))
			Expect(panel.Visible()).To(BeTrue())
			ctrl.Advance(clock.Advance(time.Millisecond))
			Expect(panel.Visible()).To(BeFalse())
		})

		It("restarts the countdown on every selection", func() {
			start("grid")
			dismissals := 0
			ctrl.Panel().OnDismiss = func(sketch.Descriptor) { dismissals++ }

			clock.Advance(2000 * time.Millisecond)
			Expect(ctrl.SelectAnimation("wave")).To(Succeed())
			second := clock.Now()

			deadline, ok := ctrl.NextDeadline()
			Expect(ok).To(BeTrue())
			Expect(deadline).To(Equal(second.Add(3000 * time.Millisecond)))

			ctrl.Advance(clock.Advance(2999 * time.Millisecond))
			Expect(dismissals).To(Equal(0))
			ctrl.Advance(clock.Advance(time.Millisecond))
			Expect(dismissals).To(Equal(1))
			Expect(ctrl.Panel().Descriptor().ID).To(Equal("wave"))

			ctrl.Advance(clock.Advance(10 * time.Second))
			Expect(dismissals).To(Equal(1))
		})

		It("fires the dismissal from ticks while looping", func() {
			start("ball")
			for i := 0; i < 200; i++ {
				ctrl.Tick(clock.Advance(16 * time.Millisecond))
			}
			Expect(ctrl.Panel().Visible()).To(BeFalse())
		})

		It("can be dismissed early", func() {
			start("grid")
			ctrl.DismissPanel()
			Expect(ctrl.Panel().Visible()).To(BeFalse())
			_, ok := ctrl.NextDeadline()
			Expect(ok).To(BeFalse())
		})
	})
})
