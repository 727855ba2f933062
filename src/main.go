package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/integrii/flaggy"

	"lifetrace/src/export"
	"lifetrace/src/life"
	"lifetrace/src/sim"
	"lifetrace/src/view"
)

type EnvOptions struct {
	interactive  bool
	noise        string
	p            float64
	std          float64
	saltRatio    float64
	template     string
	templatePack string
	chartPath    string
	chartRaw     bool
	videoPath    string
	cellSize     int
	fps          int
}

func main() {
	eo, so := initOptions()

	policy, err := seedPolicy(eo)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	var stateCh chan sim.Status
	if !eo.interactive {
		stateCh = make(chan sim.Status, 10) //the buffered channel for simulation status updates
	}

	s, err := sim.New(so, policy, stateCh)
	if err != nil {
		log.Fatalln(err)
	}

	if eo.interactive {
		v := view.NewConsoleUI()
		s.RegisterViewer(v)
		v.Start()
		s.Close()
		return
	}

	runHeadless(eo, s, stateCh)
}

//runHeadless drives the simulation to completion without a TUI, recording
//video frames per step and writing the change chart at the end
func runHeadless(eo *EnvOptions, s *sim.Simulation, stateCh chan sim.Status) {
	co := view.NewConsoleOut()
	s.RegisterViewer(co)
	co.Start()

	var video *export.Video
	if eo.videoPath != "" {
		g := s.Grid()
		var err error
		video, err = export.NewVideo(eo.videoPath, g.Rows, g.Cols, eo.cellSize, int32(eo.fps))
		if err != nil {
			log.Fatalln(err)
		}
		if err := video.AddFrame(g); err != nil {
			log.Fatalln(err)
		}
	}

	s.Run()
	for {
		st := <-stateCh
		if st.RunningMode == sim.RunModeStep && video != nil {
			if err := video.AddFrame(s.Grid()); err != nil {
				log.Fatalln(err)
			}
		}
		if st.RunningMode == sim.RunModeFinished {
			break
		}
	}
	s.Close()
	close(stateCh)

	if video != nil {
		if err := video.Close(); err != nil {
			log.Fatalln(err)
		}
		fmt.Printf("  Video written to %v\n", eo.videoPath)
	}
	if eo.chartPath != "" {
		if err := export.WriteChart(eo.chartPath, s.History(), !eo.chartRaw); err != nil {
			log.Fatalln(err)
		}
		fmt.Printf("  Chart written to %v\n", eo.chartPath)
	}
}

//seedPolicy builds the seeding policy from the environment options
//a template name wins over a noise type
func seedPolicy(eo *EnvOptions) (life.SeedPolicy, error) {
	if eo.template != "" {
		reg := life.BuiltinTemplates()
		if eo.templatePack != "" {
			if err := reg.LoadTemplates(eo.templatePack); err != nil {
				return nil, err
			}
		}
		t, err := reg.Get(eo.template)
		if err != nil {
			return nil, err
		}
		return t.Policy(), nil
	}

	switch eo.noise {
	case "uniform":
		return life.UniformRandom{P: eo.p}, nil
	case "gaussian":
		return life.Gaussian{Std: eo.std}, nil
	case "saltpepper":
		return life.SaltAndPepper{P: eo.p, SaltRatio: eo.saltRatio}, nil
	}
	return nil, fmt.Errorf("unknown noise type %q", eo.noise)
}

func initOptions() (eo *EnvOptions, so *sim.Options) {
	o := sim.DefaultOptions
	so = &o
	eo = &EnvOptions{
		noise:     "uniform",
		p:         0.5,
		std:       1.0,
		saltRatio: 0.5,
		chartRaw:  false,
		cellSize:  4,
		fps:       10,
	}

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&so.Cols, "x", "width", "Width of the simulation field")
	flaggy.Int(&so.Rows, "y", "height", "Height of the simulation field")
	flaggy.Duration(&so.Interval, "i", "interval", "Interval between the steps, for example 150ms")
	flaggy.Int(&so.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps")
	flaggy.Int(&so.ConvergenceWindow, "", "convergence", "Stop after that many consecutive zero change scalars, 0 disables")
	flaggy.String(&so.Engine, "e", "engine", "Engine to use ["+strings.Join(life.EngineNames(), "|")+"]")
	flaggy.Int64(&so.RandSeed, "z", "randomSeed", "Random seed for reproducible runs, 0 seeds from the clock")

	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.String(&eo.noise, "o", "noise", "Seed noise type [uniform|gaussian|saltpepper]")
	flaggy.Float64(&eo.p, "p", "probability", "Live-cell probability for uniform and saltpepper noise")
	flaggy.Float64(&eo.std, "", "std", "Standard deviation for gaussian noise")
	flaggy.Float64(&eo.saltRatio, "", "saltRatio", "Salt vs pepper ratio for saltpepper noise")
	flaggy.String(&eo.template, "t", "template", "Settle with a named pattern instead of noise")
	flaggy.String(&eo.templatePack, "", "templates", "YAML pattern pack to merge into the template registry")
	flaggy.String(&eo.chartPath, "c", "chart", "Write a PNG chart of the change history to this path")
	flaggy.Bool(&eo.chartRaw, "", "chartRaw", "Plot raw scalars instead of log(1+v)")
	flaggy.String(&eo.videoPath, "v", "video", "Write an MJPEG video of the run to this path")
	flaggy.Int(&eo.cellSize, "", "cellSize", "Video pixels per cell")
	flaggy.Int(&eo.fps, "", "fps", "Video frames per second")

	flaggy.Parse()

	valid := false
	for _, name := range life.EngineNames() {
		if so.Engine == name {
			valid = true
		}
	}
	if !valid {
		flaggy.ShowHelpAndExit("unknown engine")
	}
	if eo.interactive && (eo.chartPath != "" || eo.videoPath != "") {
		fmt.Fprintln(os.Stderr, "chart and video export are only available in headless mode")
		os.Exit(2)
	}

	return
}
