// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownLocale is returned by LabelsFor for an unsupported locale name.
var ErrUnknownLocale = errors.New("report: unknown locale")

// Labels renders the header lines of a report. Only the header wording is
// localized; value lines are fixed.
type Labels struct {
	// Step renders the header of step k (1-based), e.g. "After step 3:".
	Step func(k int) string

	// Verification renders the header of the p(0)·Pⁿ line for n steps.
	Verification func(n int) string

	// Limit renders the header of the distribution reached by convergence
	// after k steps. Optional; English is used when nil.
	Limit func(k int) string
}

// English is the default label set.
var English = Labels{
	Step: func(k int) string { return fmt.Sprintf("After step %d:", k) },
	Verification: func(n int) string {
		return fmt.Sprintf("Verification p(%d) = p(0) * P%s:", n, Superscript(n))
	},
	Limit: func(k int) string { return fmt.Sprintf("Converged after %d steps:", k) },
}

// Ukrainian labels, numbered the way lab reports count tests.
var Ukrainian = Labels{
	Step: func(k int) string { return fmt.Sprintf("Після %d-го тесту:", k) },
	Verification: func(n int) string {
		return fmt.Sprintf("Перевірка p(%d) = p(0) * P%s:", n, Superscript(n))
	},
	Limit: func(k int) string { return fmt.Sprintf("Збіжність після %d кроків:", k) },
}

// LabelsFor maps a locale name ("en", "uk"; "" means "en") to its Labels.
func LabelsFor(locale string) (Labels, error) {
	switch strings.ToLower(locale) {
	case "", "en", "english":
		return English, nil
	case "uk", "ua", "ukrainian":
		return Ukrainian, nil
	default:
		return Labels{}, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
}

var superscriptDigits = [...]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}

// Superscript renders n with Unicode superscript digits (5 → "⁵", -12 → "⁻¹²").
func Superscript(n int) string {
	var b strings.Builder
	for _, r := range strconv.Itoa(n) {
		if r == '-' {
			b.WriteRune('⁻')
			continue
		}
		b.WriteRune(superscriptDigits[r-'0'])
	}

	return b.String()
}
