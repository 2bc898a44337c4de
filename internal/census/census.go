// Package census tracks population across generations and condenses a run
// into summary statistics or a PNG line chart.
package census

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"lifecode/pkg/life"
)

// Sample is one generation's population count.
type Sample struct {
	Generation int
	Population int
}

// Recorder accumulates one Sample per observed generation.
type Recorder struct {
	samples []Sample
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends a raw generation/population pair.
func (r *Recorder) Record(generation, population int) {
	r.samples = append(r.samples, Sample{Generation: generation, Population: population})
}

// Observe records the world's current generation and population.
func (r *Recorder) Observe(w *life.World) {
	r.Record(w.Generation(), w.Population())
}

// Samples returns the recorded series in observation order.
func (r *Recorder) Samples() []Sample {
	return r.samples
}

// Len returns the number of recorded samples.
func (r *Recorder) Len() int { return len(r.samples) }

// Summary condenses a recorded run.
type Summary struct {
	Generations int // recorded sample count
	Min         int
	Max         int
	Mean        float64
	StdDev      float64
	Final       int
	ExtinctAt   int // first recorded generation with zero population, -1 if never
}

// Summarize computes summary statistics over the recorded series.
func (r *Recorder) Summarize() Summary {
	s := Summary{ExtinctAt: -1}
	if len(r.samples) == 0 {
		return s
	}

	pops := make([]float64, len(r.samples))
	s.Min = r.samples[0].Population
	s.Max = r.samples[0].Population
	for i, smp := range r.samples {
		pops[i] = float64(smp.Population)
		if smp.Population < s.Min {
			s.Min = smp.Population
		}
		if smp.Population > s.Max {
			s.Max = smp.Population
		}
		if smp.Population == 0 && s.ExtinctAt == -1 {
			s.ExtinctAt = smp.Generation
		}
	}

	s.Generations = len(r.samples)
	s.Final = r.samples[len(r.samples)-1].Population
	s.Mean = stat.Mean(pops, nil)
	if len(pops) > 1 {
		s.StdDev = stat.StdDev(pops, nil)
	}
	return s
}

// SavePlot renders the population series as a PNG line chart at path.
func (r *Recorder) SavePlot(title, path string) error {
	if len(r.samples) == 0 {
		return fmt.Errorf("census plot %s: no samples recorded", path)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Population"

	pts := make(plotter.XYs, len(r.samples))
	for i, smp := range r.samples {
		pts[i] = plotter.XY{X: float64(smp.Generation), Y: float64(smp.Population)}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("census plot %s: %w", path, err)
	}
	line.Width = vg.Points(1)
	p.Add(line)

	if err := p.Save(14*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save census plot: %w", err)
	}
	return nil
}
