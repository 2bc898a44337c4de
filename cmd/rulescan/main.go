package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"lifecode/internal/census"
	"lifecode/pkg/core"
	"lifecode/pkg/life"
)

type candidate struct {
	name string
	code string
}

type surveyResult struct {
	candidate
	summary census.Summary
	rec     *census.Recorder
}

func main() {
	width := flag.Int("width", life.DefaultWidth, "board width in cells")
	height := flag.Int("height", life.DefaultHeight, "board height in cells")
	generations := flag.Int("generations", 200, "generations to run per candidate")
	seed := flag.Int64("seed", life.DefaultSeed, "seed shared by every candidate board")
	density := flag.Float64("density", life.DefaultDensity, "live probability per cell when seeding")
	random := flag.Int("random", 32, "random rule candidates beyond the presets")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 10, "rows to print in the report")
	plotPath := flag.String("plot", "", "write the best candidate's population plot to this path")
	flag.Parse()

	cands := candidates(*random, *seed)
	fmt.Printf("Scanning %d rules (%d workers, %d generations, %dx%d board)\n",
		len(cands), *workers, *generations, *width, *height)

	jobs := make(chan candidate)
	results := make(chan surveyResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cand := range jobs {
				results <- runCandidate(cand, *width, *height, *generations, *seed, *density)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, cand := range cands {
			jobs <- cand
		}
		close(jobs)
	}()

	start := time.Now()
	var all []surveyResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].summary.Mean != all[j].summary.Mean {
			return all[i].summary.Mean > all[j].summary.Mean
		}
		return all[i].summary.Final > all[j].summary.Final
	})
	elapsed := time.Since(start)

	fmt.Printf("\nTop rules by mean population (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		s := all[i].summary
		extinct := ""
		if s.ExtinctAt >= 0 {
			extinct = fmt.Sprintf(" extinct@%d", s.ExtinctAt)
		}
		fmt.Printf("%2d) %-10s %s mean=%7.1f sd=%6.1f min=%4d max=%4d final=%4d%s\n",
			i+1, all[i].name, all[i].code, s.Mean, s.StdDev, s.Min, s.Max, s.Final, extinct)
	}

	if *plotPath != "" && len(all) > 0 {
		best := all[0]
		title := fmt.Sprintf("population, rule %s, seed %d", best.name, *seed)
		if err := best.rec.SavePlot(title, *plotPath); err != nil {
			fmt.Fprintln(os.Stderr, "plot:", err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote %s for %s\n", *plotPath, best.name)
	}
}

func candidates(random int, seed int64) []candidate {
	var cands []candidate
	for _, p := range life.Presets() {
		cands = append(cands, candidate{name: p.Name, code: p.Code})
	}
	rng := core.NewRNG(seed).Source()
	for i := 0; i < random; i++ {
		cands = append(cands, candidate{
			name: fmt.Sprintf("random-%02d", i+1),
			code: life.RandomRule(rng).Encode(),
		})
	}
	return cands
}

func runCandidate(cand candidate, width, height, generations int, seed int64, density float64) surveyResult {
	cfg := life.DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Rule = cand.code
	cfg.Density = density

	world, err := life.NewWithConfig(cfg)
	if err != nil {
		panic(err) // candidate codes come from Encode or the preset table
	}
	world.Reset(seed)

	rec := census.NewRecorder()
	rec.Observe(world)
	for i := 0; i < generations; i++ {
		world.Step()
		rec.Observe(world)
		if world.Population() == 0 && !world.Rule().Alive(0) {
			break
		}
	}
	return surveyResult{candidate: cand, summary: rec.Summarize(), rec: rec}
}
