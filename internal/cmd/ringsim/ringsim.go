// Package ringsim parses ringsim command configuration and runs simulations.
package ringsim

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/randomness/internal/board"
	entrypoint "github.com/louisbranch/randomness/internal/platform/cmd"
	apperrors "github.com/louisbranch/randomness/internal/platform/errors"
	errori18n "github.com/louisbranch/randomness/internal/platform/errors/i18n"
	"github.com/louisbranch/randomness/internal/platform/i18n/catalog"
	"github.com/louisbranch/randomness/internal/sim"
	"github.com/louisbranch/randomness/internal/storage"
	"github.com/louisbranch/randomness/internal/storage/sqlite"
	"golang.org/x/text/message"
)

// Config holds ringsim command configuration.
type Config struct {
	Players  int    `env:"RANDOMNESS_PLAYERS"   envDefault:"4"`
	Games    int    `env:"RANDOMNESS_GAMES"     envDefault:"1"`
	Seed     int64  `env:"RANDOMNESS_SEED"`
	ReportDB string `env:"RANDOMNESS_REPORT_DB"`
	Locale   string `env:"RANDOMNESS_LOCALE"    envDefault:"en-US"`
	Verbose  bool   `env:"RANDOMNESS_VERBOSE"`

	Board   bool
	History int
	// Args holds the positional arguments, validated by Run.
	Args []string
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one)")
	fs.BoolVar(&cfg.Board, "board", cfg.Board, "print the board layout before simulating")
	fs.StringVar(&cfg.ReportDB, "report-db", cfg.ReportDB, "path to a SQLite file recording run reports")
	fs.IntVar(&cfg.History, "history", cfg.History, "print the N most recent run reports and exit")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable verbose logging")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for printed messages")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.Args = fs.Args()
	return cfg, nil
}

// Run validates cfg and plays the requested games, writing the trace and
// summary to out and logs to errOut. Usage errors are printed to out and
// returned; see UsageExitCode.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	players, games, err := resolveCounts(cfg)
	if err != nil {
		printUsage(out, cfg.Locale, err)
		return err
	}
	printer := catalog.Default().Printer(cfg.Locale)

	if cfg.History > 0 {
		return printHistory(ctx, cfg, printer, out)
	}

	b := board.New()
	if cfg.Board {
		if err := b.Describe(out); err != nil {
			return fmt.Errorf("describe board: %w", err)
		}
	}

	logger := log.New(errOut, "", 0)
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceRingSim, func(ctx context.Context) error {
		runner := sim.NewRunner(b, sim.Config{Verbose: cfg.Verbose, Logger: logger})
		report, err := runner.Run(ctx, sim.Options{
			Players: players,
			Games:   games,
			Seed:    cfg.Seed,
			Trace:   out,
			Printer: printer,
		})
		if err != nil {
			return err
		}
		if cfg.Verbose {
			for _, name := range report.PawnNames() {
				fmt.Fprintln(out, printer.Sprintf("ringsim.wins", name, strconv.Itoa(report.Wins[name]), strconv.Itoa(report.Games)))
			}
		}
		if _, err := fmt.Fprintf(out, "%s\n\n", printer.Sprintf("ringsim.average", sim.FormatAverage(report.AverageQuestions()))); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		if cfg.ReportDB != "" {
			if err := recordReport(ctx, cfg.ReportDB, report); err != nil {
				return err
			}
			if cfg.Verbose {
				logger.Printf("recorded run seed=%d in %s", report.Seed, cfg.ReportDB)
			}
		}
		return nil
	})
}

// UsageExitCode reports the exit code for an error Run has already printed
// as a usage message.
func UsageExitCode(err error) (int, bool) {
	appErr, ok := apperrors.As(err)
	if !ok || !appErr.Code.IsUsage() {
		return 0, false
	}
	return appErr.Code.ExitCode(), true
}

func resolveCounts(cfg Config) (int, int, error) {
	// Only a pair of arguments overrides the counts; any other number of
	// arguments plays with the configured defaults.
	if len(cfg.Args) == 2 {
		players, ok := positive(cfg.Args[0])
		if !ok {
			return 0, 0, invalidCount(apperrors.CodePlayersInvalid, cfg.Args[0])
		}
		games, ok := positive(cfg.Args[1])
		if !ok {
			return 0, 0, invalidCount(apperrors.CodeGamesInvalid, cfg.Args[1])
		}
		return players, games, nil
	}
	if cfg.Players <= 0 {
		return 0, 0, invalidCount(apperrors.CodePlayersInvalid, strconv.Itoa(cfg.Players))
	}
	if cfg.Games <= 0 {
		return 0, 0, invalidCount(apperrors.CodeGamesInvalid, strconv.Itoa(cfg.Games))
	}
	return cfg.Players, cfg.Games, nil
}

func positive(value string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func invalidCount(code apperrors.Code, value string) error {
	return apperrors.WithMetadata(code, fmt.Sprintf("invalid count %q", value), map[string]string{"Value": value})
}

func printUsage(out io.Writer, locale string, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		fmt.Fprintln(out, err.Error())
		return
	}
	fmt.Fprintln(out, errori18n.GetCatalog(locale).Format(string(appErr.Code), appErr.Metadata))
}

func recordReport(ctx context.Context, path string, report sim.Report) error {
	store, err := sqlite.Open(ctx, path)
	if err != nil {
		return fmt.Errorf("open report store: %w", err)
	}
	defer store.Close()

	if _, err := store.AppendRunReport(ctx, toRunReport(report)); err != nil {
		return fmt.Errorf("record run report: %w", err)
	}
	return nil
}

func toRunReport(report sim.Report) storage.RunReport {
	names := report.PawnNames()
	tallies := make([]storage.PawnTally, 0, len(names))
	for _, name := range names {
		tallies = append(tallies, storage.PawnTally{Name: name, Wins: report.Wins[name], Exits: report.Exits[name]})
	}
	return storage.RunReport{
		Seed:      report.Seed,
		Players:   report.Players,
		Games:     report.Games,
		Questions: report.Questions,
		Average:   report.AverageQuestions(),
		Pawns:     tallies,
	}
}

func printHistory(ctx context.Context, cfg Config, printer *message.Printer, out io.Writer) error {
	if cfg.ReportDB == "" {
		return fmt.Errorf("-history requires -report-db")
	}
	store, err := sqlite.Open(ctx, cfg.ReportDB)
	if err != nil {
		return fmt.Errorf("open report store: %w", err)
	}
	defer store.Close()

	reports, err := store.ListRunReports(ctx, cfg.History)
	if err != nil {
		return fmt.Errorf("list run reports: %w", err)
	}
	if len(reports) == 0 {
		fmt.Fprintln(out, printer.Sprintf("ringsim.history.empty"))
		return nil
	}
	fmt.Fprintln(out, printer.Sprintf("ringsim.history.header"))
	for _, r := range reports {
		fmt.Fprintln(out, printer.Sprintf("ringsim.history.row",
			r.CreatedAt.Format(time.RFC3339),
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Players),
			strconv.Itoa(r.Games),
			sim.FormatAverage(r.Average),
		))
	}
	return nil
}
