//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"lifecode/internal/app"
	"lifecode/internal/config"
	"lifecode/pkg/life"
)

func main() {
	d := config.Default()
	width := flag.Int("width", d.World.Width, "board width in cells")
	height := flag.Int("height", d.World.Height, "board height in cells")
	ruleArg := flag.String("rule", d.World.Rule, "preset name or base64 rule code")
	seed := flag.Int64("seed", d.World.Seed, "seed for the initial random board")
	density := flag.Float64("density", d.World.Density, "live probability per cell when seeding")
	scale := flag.Int("scale", d.Display.Scale, "pixels per cell")
	tps := flag.Int("tps", d.Display.TPS, "generations per second")
	flag.Parse()

	cfg := life.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.Rule = *ruleArg
	cfg.Density = *density

	world, err := life.NewWithConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}
	world.Reset(*seed)

	game := app.New(world, *scale, *seed, *tps)
	size := world.Size()

	ebiten.SetWindowTitle("lifecode [" + *ruleArg + "]")
	ebiten.SetWindowSize(size.W*(*scale), size.H*(*scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
