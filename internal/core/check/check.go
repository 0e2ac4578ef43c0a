// Package check resolves probabilistic question checks.
package check

// Succeeds reports whether a uniform draw in [0,1) passes a check with the
// given success chance. The comparison is strict: draw == chance fails.
func Succeeds(draw, chance float64) bool {
	return draw < chance
}
