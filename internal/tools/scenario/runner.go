// Package scenario replays scripted pawn turns on the ring board.
//
// Scenarios are Lua scripts:
//
//	local scene = Scenario.new("climb")
//	scene:players(2)
//	scene:turn{pawn = "P0", roll = 1, answer = true}
//	scene:expect{pawn = "P0", ring = 0, tile = 0, points = 1, state = "active"}
//	scene:excite{pawn = "P0"}
//	return scene
//
// Rolls and answers are scripted, so a scenario exercises the real board,
// excite and pawn rules without randomness.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/louisbranch/randomness/internal/board"
	"github.com/louisbranch/randomness/internal/pawn"
	"github.com/louisbranch/randomness/internal/sim"
)

// Config controls scenario execution.
type Config struct {
	Assertions AssertionMode
	Verbose    bool
	Logger     *log.Logger
}

// DefaultConfig returns default runner configuration.
func DefaultConfig() Config {
	return Config{
		Assertions: AssertionStrict,
		Verbose:    false,
	}
}

// Runner executes scenarios against a fresh default board.
type Runner struct {
	board      *board.Board
	assertions Assertions
	logger     *log.Logger
	verbose    bool
}

// NewRunner prepares a scenario runner.
func NewRunner(cfg Config) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "", 0)
	}
	return &Runner{
		board:      board.New(),
		assertions: Assertions{Mode: cfg.Assertions, Logger: logger},
		logger:     logger,
		verbose:    cfg.Verbose,
	}
}

// RunFile loads and executes a scenario file.
func RunFile(ctx context.Context, cfg Config, path string) error {
	scenario, err := LoadScenarioFromFile(path)
	if err != nil {
		return err
	}
	return NewRunner(cfg).RunScenario(ctx, scenario)
}

// RunScenario executes the scenario steps in order.
func (r *Runner) RunScenario(ctx context.Context, scenario *Scenario) error {
	if scenario == nil {
		return errors.New("scenario is required")
	}
	r.logf("scenario start: %s (%d steps)", scenario.Name, len(scenario.Steps))
	state := &scenarioState{source: &scriptedSource{}}
	if r.verbose {
		state.trace = sim.NewTextTracer(r.logger.Writer(), nil)
	}

	for index, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		stepNumber := index + 1
		r.logf("step %d/%d start: %s", stepNumber, len(scenario.Steps), step.Kind)
		if err := r.runStep(state, step); err != nil {
			return fmt.Errorf("step %d (%s): %w", stepNumber, step.Kind, err)
		}
	}
	r.logf("scenario done: %s", scenario.Name)
	return nil
}

type scenarioState struct {
	pawns  []*pawn.Pawn
	source *scriptedSource
	trace  *sim.TextTracer
}

func (r *Runner) runStep(state *scenarioState, step Step) error {
	switch step.Kind {
	case "players":
		return r.runPlayers(state, step.Args)
	case "turn":
		return r.runTurn(state, step.Args)
	case "excite":
		return r.runExcite(state, step.Args)
	case "expect":
		return r.runExpect(state, step.Args)
	default:
		return r.failf("unknown step kind %q", step.Kind)
	}
}

func (r *Runner) runPlayers(state *scenarioState, args map[string]any) error {
	count, ok := readInt(args, "count")
	if !ok || count <= 0 {
		return r.failf("players count must be greater than zero")
	}
	state.pawns = make([]*pawn.Pawn, count)
	for i := range state.pawns {
		state.pawns[i] = pawn.New(r.board, sim.PawnName(i), state.source)
	}
	return nil
}

func (r *Runner) runTurn(state *scenarioState, args map[string]any) error {
	p, err := r.lookupPawn(state, args)
	if err != nil {
		return err
	}
	roll, ok := readInt(args, "roll")
	if !ok || roll < 0 {
		return r.failf("turn roll must be a non-negative integer")
	}
	answer := optionalBool(args, "answer", true)

	p.Move(roll)
	excite := p.Tile().Excite()
	state.source.answer(answer, excite)
	correct := p.Answer()
	if state.trace != nil {
		state.trace.TurnPlayed(sim.Turn{Pawn: p.Name(), Roll: roll, Excite: excite, Correct: correct})
	}
	return nil
}

func (r *Runner) runExcite(state *scenarioState, args map[string]any) error {
	p, err := r.lookupPawn(state, args)
	if err != nil {
		return err
	}
	p.Excite()
	r.logf("%s excited to %s", p.Name(), p.Position())
	return nil
}

func (r *Runner) runExpect(state *scenarioState, args map[string]any) error {
	p, err := r.lookupPawn(state, args)
	if err != nil {
		return err
	}
	pos := p.Position()
	if want, ok := readInt(args, "ring"); ok && pos.Ring != want {
		if err := r.assertf("%s ring = %d, want %d", p.Name(), pos.Ring, want); err != nil {
			return err
		}
	}
	if want, ok := readInt(args, "tile"); ok && pos.Tile != want {
		if err := r.assertf("%s tile = %d, want %d", p.Name(), pos.Tile, want); err != nil {
			return err
		}
	}
	if want, ok := readInt(args, "points"); ok && p.Points() != want {
		if err := r.assertf("%s points = %d, want %d", p.Name(), p.Points(), want); err != nil {
			return err
		}
	}
	if want, ok := args["state"].(string); ok && p.State().String() != want {
		if err := r.assertf("%s state = %s, want %s", p.Name(), p.State(), want); err != nil {
			return err
		}
	}
	if want, ok := readBool(args, "exited"); ok && p.Exited() != want {
		if err := r.assertf("%s exited = %t, want %t", p.Name(), p.Exited(), want); err != nil {
			return err
		}
	}
	return nil
}

// lookupPawn resolves the pawn argument, either a name like "P1" or a seat
// index.
func (r *Runner) lookupPawn(state *scenarioState, args map[string]any) (*pawn.Pawn, error) {
	if len(state.pawns) == 0 {
		return nil, r.failf("players must be set before pawn steps")
	}
	value, ok := args["pawn"]
	if !ok {
		return nil, r.failf("pawn is required")
	}
	seat := -1
	switch typed := value.(type) {
	case int:
		seat = typed
	case string:
		name := strings.TrimSpace(typed)
		if n, err := strconv.Atoi(strings.TrimPrefix(name, "P")); err == nil && strings.HasPrefix(name, "P") {
			seat = n
		}
	}
	if seat < 0 || seat >= len(state.pawns) {
		return nil, r.failf("unknown pawn %v", value)
	}
	return state.pawns[seat], nil
}

func (r *Runner) failf(format string, args ...any) error {
	return r.assertions.Failf(format, args...)
}

func (r *Runner) assertf(format string, args ...any) error {
	return r.assertions.Assertf(format, args...)
}

func (r *Runner) logf(format string, args ...any) {
	if !r.verbose || r.logger == nil {
		return
	}
	r.logger.Printf(format, args...)
}
