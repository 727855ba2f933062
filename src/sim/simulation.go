//Package sim wires the grid engine and the change tracker into a driveable
//simulation: one control goroutine executes commands, every completed step
//runs engine.Step followed by tracker.Update and publishes a Status snapshot.
package sim

import (
	"math/rand"
	"sync"
	"time"

	"lifetrace/src/change"
	"lifetrace/src/life"
)

//Options represents the simulation's configurable options
type Options struct {
	Rows     int
	Cols     int
	Interval time.Duration
	MaxSteps int
	//ConvergenceWindow stops a run after that many consecutive zero change
	//scalars, 0 disables the early stop
	ConvergenceWindow int
	MaxSkippedTicks   int
	Engine            string
	RandSeed          int64 //0 means seed from the clock
}

//Status represents the state of the simulation at a concrete moment
type Status struct {
	Step         int
	RunningMode  RunMode
	LiveCells    int
	ChangeScalar int
	StepTime     time.Duration
}

//RunMode is the simulation running status at the concrete moment
type RunMode int

const (
	RunModeManual RunMode = iota
	RunModeStep
	RunModeRun
	RunModeFinished
)

//default options
const (
	DefInterval          = time.Millisecond * 100
	DefMaxSteps          = 1000
	DefRows              = 15
	DefCols              = 40
	DefMaxSkippedTicks   = 5
	DefConvergenceWindow = 10
)

var DefaultOptions = Options{
	Rows:              DefRows,
	Cols:              DefCols,
	Interval:          DefInterval,
	MaxSteps:          DefMaxSteps,
	ConvergenceWindow: DefConvergenceWindow,
	MaxSkippedTicks:   DefMaxSkippedTicks,
	Engine:            "base",
}

//Viewer is the interface to any viewer - the object who can display
//simulation data or control the simulation
type Viewer interface {
	Refresh()
	Register(s *Simulation)
	Start()
}

//Simulation owns the engine and the tracker and serializes every mutation
//through its control goroutine. Viewers read stable snapshots via Grid,
//Status and History.
type Simulation struct {
	options Options
	state   struct {
		Status
		sync.Mutex
	}
	mu      sync.Mutex //guards engine, tracker and rng
	engine  life.Engine
	tracker *change.Tracker
	policy  life.SeedPolicy
	rng     *rand.Rand

	stateCh   chan Status
	views     []Viewer
	controlCh chan func()
	closeCh   chan bool
}

//New creates a settled Simulation and starts its control loop.
//stateCh may be nil when no headless driver listens for updates.
func New(o *Options, policy life.SeedPolicy, stateCh chan Status) (*Simulation, error) {
	if o == nil {
		o = &DefaultOptions
	}
	g, err := life.NewGrid(o.Rows, o.Cols)
	if err != nil {
		return nil, err
	}
	engine, err := life.NewEngine(o.Engine, g)
	if err != nil {
		return nil, err
	}

	seed := o.RandSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Simulation{
		options:   *o,
		engine:    engine,
		tracker:   change.NewTracker(),
		policy:    policy,
		rng:       rand.New(rand.NewSource(seed)),
		stateCh:   stateCh,
		controlCh: make(chan func(), 1),
		closeCh:   make(chan bool, 1),
	}
	if err := policy.Seed(g, s.rng); err != nil {
		return nil, err
	}
	s.state.LiveCells = g.LiveCells()
	go s.mainLoop()
	return s, nil
}

//RegisterViewer registers the viewer - the simulation will call the viewer
//when the state is changed
func (s *Simulation) RegisterViewer(v Viewer) {
	s.views = append(s.views, v)
	v.Register(s)
}

//Options returns the simulation configuration
func (s *Simulation) Options() Options {
	return s.options
}

//Status returns the current simulation status
func (s *Simulation) Status() Status {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.Status
}

//Grid returns a snapshot copy of the current grid, safe to read while the
//simulation keeps stepping
func (s *Simulation) Grid() life.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Current().Clone()
}

//History returns the change scalar series recorded so far
func (s *Simulation) History() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.History()
}

//StateCh returns the channel with the simulation's status updates
func (s *Simulation) StateCh() chan Status {
	return s.stateCh
}

//Run starts continuous stepping, returns immediately
func (s *Simulation) Run() {
	s.controlCh <- s.run
}

//Stop pauses continuous stepping, returns immediately
func (s *Simulation) Stop() {
	s.controlCh <- s.stop
}

//Step executes one simulation step, returns immediately
//a Status snapshot is written to the state channel when the step completes
func (s *Simulation) Step() {
	s.controlCh <- s.step
}

//Clear kills all cells and resets counters and history, returns immediately
func (s *Simulation) Clear() {
	s.controlCh <- s.clear
}

//Reseed repopulates the grid with the configured seed policy and resets
//counters and history, returns immediately
func (s *Simulation) Reseed() {
	s.controlCh <- s.reseed
}

//ToggleCell inverses the cell state at point x, y
func (s *Simulation) ToggleCell(x int, y int) {
	s.controlCh <- func() {
		s.mu.Lock()
		g := s.engine.Current()
		if x >= 0 && y >= 0 && x < g.Cols && y < g.Rows {
			g.Cells[y][x] = !g.Cells[y][x]
		}
		live := g.LiveCells()
		s.mu.Unlock()
		s.state.Lock()
		s.state.LiveCells = live
		s.state.Unlock()
		s.refreshView()
	}
}

//Close stops the control loop and releases the simulation
func (s *Simulation) Close() {
	s.closeCh <- true
}

//mainLoop waits for commands and executes them, should run as a goroutine
func (s *Simulation) mainLoop() {
	var c = false
	for !c {
		select {
		case cmd := <-s.controlCh:
			cmd()
		case c = <-s.closeCh:
		}
	}
	close(s.closeCh)
	close(s.controlCh)
}

func (s *Simulation) mode() RunMode {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.RunningMode
}

//switchRunMode switches the simulation state and signals the upper control
//software through the state channel
func (s *Simulation) switchRunMode(to RunMode) {
	s.state.Lock()
	s.state.RunningMode = to
	st := s.state.Status
	s.state.Unlock()
	s.emit(st)
}

func (s *Simulation) emit(st Status) {
	if s.stateCh != nil {
		s.stateCh <- st
	}
}

//run keeps stepping until stopped or finished
//ticks are skipped while the previous step is still being computed and the
//run finishes when too many ticks in a row were skipped
func (s *Simulation) run() {
	if s.mode() == RunModeFinished {
		return
	}
	go func() {
		s.switchRunMode(RunModeRun)
		skipped := 0
		done := make(chan bool)
		defer close(done)
		for s.mode() == RunModeRun {
			if skipped > s.options.MaxSkippedTicks {
				s.switchRunMode(RunModeFinished)
				break
			}
			select {
			case s.controlCh <- func() {
				s.step()
				done <- true
			}:
				skipped = 0
				<-done
			default:
				skipped++
			}
			if s.options.Interval > 0 {
				time.Sleep(s.options.Interval)
			}
		}
	}()
}

//stop pauses the running cycle
func (s *Simulation) stop() {
	if s.mode() == RunModeRun {
		s.switchRunMode(RunModeManual)
	}
}

//step advances the simulation by one generation and feeds the tracker
func (s *Simulation) step() {
	s.state.Lock()
	if s.options.MaxSteps != 0 && s.state.Step >= s.options.MaxSteps {
		s.state.Unlock()
		s.switchRunMode(RunModeFinished)
		s.refreshView()
		return
	}
	s.state.Unlock()

	s.mu.Lock()
	start := time.Now()
	prev := s.engine.Step()
	cur := s.engine.Current()
	scalar, err := s.tracker.Update(prev, cur)
	if err != nil {
		//both grids come from the same engine, shapes cannot diverge
		s.mu.Unlock()
		panic(err)
	}
	live := cur.LiveCells()
	elapsed := time.Since(start)
	converged := s.tracker.Converged(s.options.ConvergenceWindow)
	s.mu.Unlock()

	s.state.Lock()
	s.state.Step++
	s.state.LiveCells = live
	s.state.ChangeScalar = scalar
	s.state.StepTime = elapsed
	st := s.state.Status
	st.RunningMode = RunModeStep
	s.state.Unlock()
	s.emit(st)

	if live == 0 || converged {
		s.switchRunMode(RunModeFinished)
	}
	s.refreshView()
}

//clear kills every cell, resets counters and starts a fresh history
func (s *Simulation) clear() {
	s.mu.Lock()
	s.engine.Current().Clear()
	s.tracker = change.NewTracker()
	s.mu.Unlock()
	s.resetState(0)
}

//reseed settles the grid again with the configured policy
func (s *Simulation) reseed() {
	s.mu.Lock()
	g, err := life.NewGrid(s.options.Rows, s.options.Cols)
	if err == nil {
		err = s.policy.Seed(g, s.rng)
	}
	if err != nil {
		//the policy was validated when the simulation was first settled
		s.mu.Unlock()
		panic(err)
	}
	s.engine.Reset(g)
	s.tracker = change.NewTracker()
	live := g.LiveCells()
	s.mu.Unlock()
	s.resetState(live)
}

func (s *Simulation) resetState(live int) {
	s.state.Lock()
	s.state.Step = 0
	s.state.LiveCells = live
	s.state.ChangeScalar = 0
	s.state.StepTime = 0
	s.state.RunningMode = RunModeManual
	s.state.Unlock()
	s.switchRunMode(RunModeManual)
	s.refreshView()
}

//refreshView calls Refresh for all registered viewers
func (s *Simulation) refreshView() {
	for _, v := range s.views {
		v.Refresh()
	}
}
