//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"

	"lifegpu/internal/app"
	"lifegpu/internal/core"
	"lifegpu/internal/gpu"
	"lifegpu/internal/sim"
)

func main() {
	cfg := app.NewConfig()
	configPath := flag.String("config", "", "optional YAML config file")
	prof := flag.Bool("profile", false, "write a CPU profile to the working directory")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			log.Fatal(err)
		}
		// Re-parse so flags given on the command line win over the file.
		fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
		fs.String("config", "", "optional YAML config file")
		fs.Bool("profile", false, "write a CPU profile to the working directory")
		cfg.Bind(fs)
		if err := fs.Parse(os.Args[1:]); err != nil {
			log.Fatal(err)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if *prof {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if _, err := gpu.Programs(); err != nil {
		log.Fatal(err)
	}

	size := core.Size{W: cfg.Width, H: cfg.Height}
	pair, err := core.NewStatePair(size)
	if err != nil {
		log.Fatal(err)
	}
	values := make([]uint8, size.Cells())
	core.NewRNG(cfg.Seed).FillBinary(values)
	cur, _ := core.Roles(0)
	if err := pair.Seed(cur, values); err != nil {
		log.Fatal(err)
	}

	engine, err := sim.NewEngine(size, cfg.BlockSize)
	if err != nil {
		log.Fatal(err)
	}
	ticker := sim.NewTicker(pair, gpu.NewRotator(gpu.DefaultLayout()), engine)

	game, err := app.New(ticker, pair, cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle(fmt.Sprintf("lifegpu — %dx%d", size.W, size.H))
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
