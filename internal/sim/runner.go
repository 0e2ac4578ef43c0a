package sim

import (
	"context"
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"

	"github.com/louisbranch/randomness/internal/board"
	"github.com/louisbranch/randomness/internal/core/dice"
	"github.com/louisbranch/randomness/internal/random"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/message"
)

const tracerName = "github.com/louisbranch/randomness/internal/sim"

// Config controls a Runner.
type Config struct {
	Verbose bool
	Logger  *log.Logger
	// Tracer overrides the global OpenTelemetry tracer provider.
	Tracer trace.Tracer
}

// Options describe one run.
type Options struct {
	Players int
	Games   int
	// Seed seeds the run source. Zero picks a fresh cryptographic seed.
	Seed int64
	// Die defaults to a standard six-sided die.
	Die dice.Die
	// Trace receives the game log. It is only written for single-game runs.
	Trace   io.Writer
	Printer *message.Printer
}

// Report aggregates a run.
type Report struct {
	Seed      int64
	Players   int
	Games     int
	Questions int
	// Wins counts games won per pawn name.
	Wins map[string]int
	// Exits counts board exits per pawn name.
	Exits map[string]int
}

// AverageQuestions returns the mean number of questions per game.
func (r Report) AverageQuestions() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.Questions) / float64(r.Games)
}

// PawnNames returns the names present in Wins or Exits, in seat order.
func (r Report) PawnNames() []string {
	seen := map[string]bool{}
	for name := range r.Wins {
		seen[name] = true
	}
	for name := range r.Exits {
		seen[name] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return seat(names[i]) < seat(names[j])
	})
	return names
}

func seat(name string) int {
	n, err := strconv.Atoi(name[1:])
	if err != nil {
		return -1
	}
	return n
}

// FormatAverage renders an average at single precision without trailing
// zeros.
func FormatAverage(avg float64) string {
	return strconv.FormatFloat(avg, 'f', -1, 32)
}

// Runner plays batches of games on one board.
type Runner struct {
	board   *board.Board
	logger  *log.Logger
	verbose bool
	tracer  trace.Tracer
}

// NewRunner creates a runner over b.
func NewRunner(b *board.Board, cfg Config) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return &Runner{board: b, logger: logger, verbose: cfg.Verbose, tracer: tracer}
}

// Run plays opts.Games games and aggregates them.
func (r *Runner) Run(ctx context.Context, opts Options) (report Report, err error) {
	if opts.Players <= 0 {
		return Report{}, fmt.Errorf("players must be greater than zero, got %d", opts.Players)
	}
	if opts.Games <= 0 {
		return Report{}, fmt.Errorf("games must be greater than zero, got %d", opts.Games)
	}
	die := opts.Die
	if len(die.Faces()) == 0 {
		die = dice.Standard()
	}
	seed := opts.Seed
	if seed == 0 {
		seed, err = random.NewSeed()
		if err != nil {
			return Report{}, fmt.Errorf("generate seed: %w", err)
		}
	}
	src := random.New(seed)

	ctx, span := r.tracer.Start(ctx, "sim.run", trace.WithAttributes(
		attribute.Int("sim.players", opts.Players),
		attribute.Int("sim.games", opts.Games),
		attribute.Int64("sim.seed", seed),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.Int("sim.questions", report.Questions))
		}
		span.End()
	}()

	var text *TextTracer
	var tracer Tracer = NopTracer{}
	if opts.Games == 1 && opts.Trace != nil {
		text = NewTextTracer(opts.Trace, opts.Printer)
		tracer = text
	}

	report = Report{
		Seed:    seed,
		Players: opts.Players,
		Games:   opts.Games,
		Wins:    map[string]int{},
		Exits:   map[string]int{},
	}
	r.logf("run seed=%d players=%d games=%d", seed, opts.Players, opts.Games)
	for game := 1; game <= opts.Games; game++ {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}
		result, err := r.playGame(ctx, game, opts.Players, die, src, tracer)
		if err != nil {
			return Report{}, fmt.Errorf("game %d: %w", game, err)
		}
		report.Questions += result.Questions
		report.Wins[result.Winner.Name]++
		if exited, ok := result.ExitedPawn(); ok {
			report.Exits[exited.Name]++
		}
	}
	if text != nil && text.Err() != nil {
		return Report{}, fmt.Errorf("write trace: %w", text.Err())
	}
	r.logf("run done seed=%d draws=%d questions=%d", src.Seed(), src.Draws(), report.Questions)
	for _, name := range report.PawnNames() {
		r.logf("%s: wins=%d exits=%d", name, report.Wins[name], report.Exits[name])
	}
	return report, nil
}

func (r *Runner) playGame(ctx context.Context, game, players int, die dice.Die, src random.Source, tracer Tracer) (GameResult, error) {
	ctx, span := r.tracer.Start(ctx, "sim.game", trace.WithAttributes(attribute.Int("sim.game", game)))
	defer span.End()

	result, err := PlayGame(ctx, r.board, players, die, src, tracer)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return GameResult{}, err
	}
	span.SetAttributes(
		attribute.Int("sim.questions", result.Questions),
		attribute.Int("sim.rounds", result.Rounds),
		attribute.String("sim.winner", result.Winner.Name),
	)
	r.logf("game %d: winner=%s points=%d questions=%d", game, result.Winner.Name, result.Winner.Points, result.Questions)
	return result, nil
}

func (r *Runner) logf(format string, args ...any) {
	if !r.verbose || r.logger == nil {
		return
	}
	r.logger.Printf(format, args...)
}
