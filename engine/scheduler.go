package engine

import (
	"log"

	"github.com/lixenwraith/vi-rogue/core"
	"github.com/lixenwraith/vi-rogue/input"
)

// Phase is a stage of the tick state machine
type Phase uint8

const (
	PhaseAwaitInput Phase = iota
	PhaseApplyMovement
	PhaseRunVisibility
	PhaseCommit
	PhaseRender

	phaseCount
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseAwaitInput:
		return "AwaitInput"
	case PhaseApplyMovement:
		return "ApplyMovement"
	case PhaseRunVisibility:
		return "RunVisibility"
	case PhaseCommit:
		return "Commit"
	case PhaseRender:
		return "Render"
	default:
		return "Unknown"
	}
}

// System is a unit of per-tick logic bound to one phase
type System interface {
	Update(ctx *GameContext)
}

// SystemFunc adapts a function to the System interface
type SystemFunc func(ctx *GameContext)

// Update calls f(ctx)
func (f SystemFunc) Update(ctx *GameContext) {
	f(ctx)
}

// TickResult summarizes one completed tick for front-ends
type TickResult struct {
	Tick    uint64
	Intent  input.Intent
	Moved   bool
	Blocked bool
	From    core.Point
	To      core.Point

	// Revealed counts tiles seen for the first time this tick
	Revealed int
}

// Scheduler drives the tick state machine:
// AwaitInput -> ApplyMovement -> RunVisibility -> Commit -> Render -> AwaitInput
// Each Step runs one full cycle synchronously; nothing inside a tick blocks.
type Scheduler struct {
	ctx     *GameContext
	systems [phaseCount][]System
	render  []func(Frame, TickResult)

	phase   Phase
	tick    uint64
	last    TickResult
	running bool
}

// NewScheduler creates a scheduler waiting for input with no systems registered
func NewScheduler(ctx *GameContext) *Scheduler {
	return &Scheduler{
		ctx:   ctx,
		phase: PhaseAwaitInput,
	}
}

// AddSystem registers sys to run in phase, after previously registered systems
func (s *Scheduler) AddSystem(phase Phase, sys System) {
	if phase >= phaseCount {
		panic("scheduler: unknown phase")
	}
	s.systems[phase] = append(s.systems[phase], sys)
}

// OnRender registers a callback invoked in the Render phase of every tick
func (s *Scheduler) OnRender(fn func(Frame, TickResult)) {
	s.render = append(s.render, fn)
}

// Step consumes one movement intent and runs a complete tick
func (s *Scheduler) Step(intent input.Intent) TickResult {
	if s.running {
		log.Printf("scheduler: re-entrant Step ignored during %s", s.phase)
		return s.last
	}
	s.running = true
	defer func() { s.running = false }()

	s.ctx.Intent = intent
	s.ctx.LastMove = MoveResult{}
	s.ctx.NewlyRevealed = 0

	s.runPhase(PhaseApplyMovement)
	s.runPhase(PhaseRunVisibility)
	s.runPhase(PhaseCommit)
	s.commit()

	s.tick++
	move := s.ctx.LastMove
	s.last = TickResult{
		Tick:     s.tick,
		Intent:   intent,
		Moved:    move.Moved,
		Blocked:  move.Blocked,
		From:     move.From,
		To:       move.To,
		Revealed: s.ctx.NewlyRevealed,
	}

	s.runPhase(PhaseRender)
	frame := s.Frame()
	for _, fn := range s.render {
		fn(frame, s.last)
	}

	s.ctx.Intent = input.IntentNone
	s.phase = PhaseAwaitInput
	return s.last
}

// Refresh runs visibility and commit without consuming input or advancing the tick
func (s *Scheduler) Refresh() {
	if s.running {
		return
	}
	s.running = true
	defer func() { s.running = false }()

	s.runPhase(PhaseRunVisibility)
	s.runPhase(PhaseCommit)
	s.commit()
	s.phase = PhaseAwaitInput
}

func (s *Scheduler) runPhase(phase Phase) {
	s.phase = phase
	for _, sys := range s.systems[phase] {
		sys.Update(s.ctx)
	}
}

func (s *Scheduler) commit() {
	if err := s.ctx.World.Commands().Commit(); err != nil {
		log.Printf("scheduler: commit at tick %d: %v", s.tick+1, err)
	}
}

// Phase returns the current phase; AwaitInput between ticks
func (s *Scheduler) Phase() Phase {
	return s.phase
}

// Tick returns the number of completed ticks
func (s *Scheduler) Tick() uint64 {
	return s.tick
}

// Last returns the result of the most recent tick
func (s *Scheduler) Last() TickResult {
	return s.last
}

// Context returns the scheduler's game context
func (s *Scheduler) Context() *GameContext {
	return s.ctx
}

// Frame returns the read-only render surface for the current state
func (s *Scheduler) Frame() Frame {
	return Frame{ctx: s.ctx, tick: s.tick}
}
