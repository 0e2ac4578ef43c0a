// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Topology errors
	CodeRingOutOfRange Code = "RING_OUT_OF_RANGE"
	CodeRingNotFound   Code = "RING_NOT_FOUND"
	CodeTileNotFound   Code = "TILE_NOT_FOUND"
	CodeLayoutInvalid  Code = "LAYOUT_INVALID"

	// Dice errors
	CodeDiceMissing Code = "DICE_MISSING"

	// Command-line errors
	CodePlayersInvalid Code = "PLAYERS_INVALID"
	CodeGamesInvalid   Code = "GAMES_INVALID"
)

// ExitCode maps domain codes to process exit codes.
func (c Code) ExitCode() int {
	switch c {
	// Usage - the caller passed bad input, nothing was simulated
	case CodePlayersInvalid,
		CodeGamesInvalid:
		return 2

	// Internal - a construction or consistency fault
	default:
		return 1
	}
}

// IsUsage reports whether the code describes a user input problem.
func (c Code) IsUsage() bool {
	return c.ExitCode() == 2
}
