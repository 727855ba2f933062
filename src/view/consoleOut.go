package view

import (
	"fmt"
	"time"

	"lifetrace/src/sim"
)

//ConsoleOut is the headless viewer: prints the configuration on start,
//periodic progress while running and a summary when the run finishes
type ConsoleOut struct {
	s         *sim.Simulation
	startTime time.Time
}

func NewConsoleOut() *ConsoleOut {
	return &ConsoleOut{}
}

func (c *ConsoleOut) Register(s *sim.Simulation) {
	c.s = s
	o := s.Options()
	fmt.Println("Running configuration:")
	fmt.Printf("  Dimension: %v x %v\n", o.Cols, o.Rows)
	fmt.Printf("  Engine: %v\n", o.Engine)
	fmt.Printf("  Interval: %v\n", o.Interval)
	fmt.Printf("  Max iterations: %v steps\n", o.MaxSteps)
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	fmt.Println("\nSimulation started...")
}

func (c *ConsoleOut) Refresh() {
	st := c.s.Status()
	switch st.RunningMode {
	case sim.RunModeFinished:
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		fmt.Println("\nFinished:")
		fmt.Printf("  Last iteration: %v\n", st.Step)
		fmt.Printf("  Live cells: %v\n", st.LiveCells)
		fmt.Printf("  Change scalar: %v\n", st.ChangeScalar)
		fmt.Printf("  Total time: %v\n", totalTime)
	case sim.RunModeRun:
		if st.Step%10 == 0 {
			fmt.Printf("  Iterations done: %v, change scalar: %v\n", st.Step, st.ChangeScalar)
		}
	}
}
