package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	logger "github.com/beka-birhanu/pickle-maze/infrastruture/log"
	"github.com/beka-birhanu/pickle-maze/maze"
	"github.com/beka-birhanu/pickle-maze/terminal"
	"github.com/gdamore/tcell/v2"
)

func main() {
	size := flag.Int("size", terminal.Difficulties[0].Size, "maze size")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	// The screen owns stdout once it starts, so log to stderr.
	appLogger, _ := logger.New("PLAY", "", os.Stderr)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	gen := maze.NewGenerator(rand.New(rand.NewSource(*seed)))

	var sound terminal.Sound = terminal.Silent{}
	if !*mute {
		// Non-fatal, the game can run without sound
		if beeper, err := terminal.NewBeeper(); err == nil {
			sound = beeper
		} else {
			appLogger.Warning(fmt.Sprintf("Audio initialization failed: %v", err))
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating screen: %v", err))
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		appLogger.Error(fmt.Sprintf("Initializing screen: %v", err))
		os.Exit(1)
	}
	defer screen.Fini()

	g := terminal.New(screen, gen, *size, sound)
	g.Start()
	g.Run()
}
