package main

import (
	"fmt"
	"os"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sketchdeck/internal/session"
	"github.com/san-kum/sketchdeck/internal/sketch"
	"github.com/san-kum/sketchdeck/internal/sketches"
	"github.com/san-kum/sketchdeck/internal/storage"
	"github.com/spf13/cobra"
)

// discardDisplay paints into a surface that draws nothing, so a bench
// measures renderer cost alone.
type discardDisplay struct {
	surface *sketch.Discard
}

func (d discardDisplay) Begin(float64, float64) sketch.Surface {
	d.surface.Reset()
	return d.surface
}

func (d discardDisplay) End() {}

type benchResult struct {
	id      string
	mode    session.Mode
	samples []float64 // milliseconds per frame
}

func (r benchResult) stats() (mean, p95, worst float64) {
	if len(r.samples) == 0 {
		return 0, 0, 0
	}
	sorted := slices.Clone(r.samples)
	slices.Sort(sorted)
	for _, v := range sorted {
		mean += v
	}
	mean /= float64(len(sorted))
	p95 = sorted[min(len(sorted)-1, len(sorted)*95/100)]
	return mean, p95, sorted[len(sorted)-1]
}

// benchAnimation renders id n times on a synthetic 60 Hz clock. Static
// animations are repainted by resizing, the one trigger that renders in
// every mode.
func benchAnimation(reg *sketch.Registry, id string, n, w, h int) (benchResult, error) {
	now := time.Unix(0, 0)
	ctrl, err := session.New(reg, discardDisplay{sketch.NewDiscard()}, session.Options{
		Animation:  id,
		HideTopbar: true,
		Now:        func() time.Time { return now },
		Decorate:   sketches.WithReadout,
	})
	if err != nil {
		return benchResult{}, err
	}
	ctrl.Start(w, h)

	res := benchResult{id: id, mode: ctrl.Mode(), samples: make([]float64, 0, n)}
	for i := 0; i < n; i++ {
		now = now.Add(time.Second / 60)
		start := time.Now()
		if ctrl.Looping() {
			ctrl.Tick(now)
		} else {
			ctrl.Resize(w, h)
		}
		res.samples = append(res.samples, float64(time.Since(start).Microseconds())/1000)
	}
	return res, nil
}

func bench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	reg, err := registry()
	if err != nil {
		return err
	}
	ids := reg.IDs()
	if len(args) > 0 {
		ids = args[:1]
	}
	w := firstPositive(width, cfg.Window.Width)
	h := firstPositive(height, cfg.Window.Height)
	n := max(frames, 1)

	fmt.Printf("benchmarking %d frames at %dx%d\n\n", n, w, h)
	var results []benchResult
	for _, id := range ids {
		res, err := benchAnimation(reg, id, n, w, h)
		if err != nil {
			return err
		}
		results = append(results, res)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ANIMATION\tMODE\tMEAN\tP95\tMAX\tMAX FPS")
	for _, r := range results {
		mean, p95, worst := r.stats()
		fps := 0.0
		if mean > 0 {
			fps = 1000 / mean
		}
		fmt.Fprintf(tw, "%s\t%s\t%.3fms\t%.3fms\t%.3fms\t%.0f\n", r.id, r.mode, mean, p95, worst, fps)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(results) == 1 && len(results[0].samples) > 1 {
		fmt.Printf("\n%s\n", plot(results[0].id, results[0].samples))
	}

	if saveDir == "" {
		return nil
	}
	store := storage.New(saveDir)
	if err := store.Init(); err != nil {
		return fmt.Errorf("init run store: %w", err)
	}
	now := time.Now()
	for _, r := range results {
		id, err := store.Save(r.metadata(w, h, now), r.samples)
		if err != nil {
			return fmt.Errorf("save %s: %w", r.id, err)
		}
		fmt.Printf("saved %s\n", id)
	}
	return nil
}

func (r benchResult) metadata(w, h int, at time.Time) storage.RunMetadata {
	mean, p95, worst := r.stats()
	return storage.RunMetadata{
		Animation: r.id,
		Mode:      r.mode.String(),
		Timestamp: at,
		Width:     w,
		Height:    h,
		MeanMS:    mean,
		P95MS:     p95,
		MaxMS:     worst,
	}
}

func plot(id string, samples []float64) string {
	return asciigraph.Plot(samples,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("%s frame time (ms)", id)))
}

// listRuns prints the saved bench runs, or plots one run's frame times.
func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(runsDir)
	if len(args) > 0 {
		meta, err := store.Load(args[0])
		if err != nil {
			return fmt.Errorf("load run: %w", err)
		}
		samples, err := store.LoadSamples(meta.ID)
		if err != nil {
			return fmt.Errorf("load frames: %w", err)
		}
		fmt.Printf("%s  %s  %dx%d  %d frames  mean %.3fms  p95 %.3fms\n\n",
			meta.ID, meta.Mode, meta.Width, meta.Height, meta.Frames, meta.MeanMS, meta.P95MS)
		if len(samples) > 1 {
			fmt.Println(plot(meta.Animation, samples))
		}
		return nil
	}

	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Printf("no runs in %s\n", runsDir)
		return nil
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWHEN\tSIZE\tFRAMES\tMEAN\tP95\tMAX")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%dx%d\t%d\t%.3fms\t%.3fms\t%.3fms\n",
			r.ID, r.Timestamp.Format(time.DateTime), r.Width, r.Height, r.Frames, r.MeanMS, r.P95MS, r.MaxMS)
	}
	return tw.Flush()
}
