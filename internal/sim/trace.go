package sim

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/louisbranch/randomness/internal/pawn"
	"github.com/louisbranch/randomness/internal/platform/i18n/catalog"
	"golang.org/x/text/message"
)

// Tracer observes a game as it is played.
type Tracer interface {
	TurnStarted(round int)
	TurnPlayed(turn Turn)
	RoundEnded(pawns []pawn.Snapshot)
	GameEnded(result GameResult)
}

// NopTracer ignores every event.
type NopTracer struct{}

func (NopTracer) TurnStarted(int) {}
func (NopTracer) TurnPlayed(Turn) {}
func (NopTracer) RoundEnded([]pawn.Snapshot) {}
func (NopTracer) GameEnded(GameResult) {}

const gameSeparator = "-------------------------------------------------------------------------"

// TextTracer writes the turn-by-turn game log.
//
//	TURN 0
//	P0: 3 -> n/Y
//	P1: 5 -> E/N
//	Resume: 1R0N0|0R0N0
//
// The first write error is kept and later writes are skipped.
type TextTracer struct {
	w       io.Writer
	printer *message.Printer
	err     error
}

// NewTextTracer writes to w, localizing the winner line with printer. A nil
// printer uses the base locale.
func NewTextTracer(w io.Writer, printer *message.Printer) *TextTracer {
	if printer == nil {
		printer = catalog.Default().Printer(catalog.BaseLocale)
	}
	return &TextTracer{w: w, printer: printer}
}

// Err returns the first write error.
func (t *TextTracer) Err() error {
	return t.err
}

func (t *TextTracer) TurnStarted(round int) {
	t.printf("TURN %d\n", round)
}

func (t *TextTracer) TurnPlayed(turn Turn) {
	kind := "n"
	if turn.Excite {
		kind = "E"
	}
	answer := "N"
	if turn.Correct {
		answer = "Y"
	}
	t.printf("%s: %d -> %s/%s\n", turn.Pawn, turn.Roll, kind, answer)
}

func (t *TextTracer) RoundEnded(pawns []pawn.Snapshot) {
	t.printf("Resume: %s\n\n", Resume(pawns))
}

func (t *TextTracer) GameEnded(result GameResult) {
	winner := t.printer.Sprintf("ringsim.winner", result.Winner.Name, strconv.Itoa(result.Winner.Points))
	t.printf("\n%s\n", winner)
	t.printf("Resume: %s\n\n", Resume(result.Pawns))
	t.printf("%s\n\n", gameSeparator)
}

func (t *TextTracer) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

// Resume joins pawn summaries with "|".
func Resume(pawns []pawn.Snapshot) string {
	parts := make([]string, len(pawns))
	for i, p := range pawns {
		parts[i] = p.String()
	}
	return strings.Join(parts, "|")
}
