// Package format renders byte counts and percentages into compact strings
// that fit a fixed column budget in a status bar.
package format

import (
	"strconv"
	"strings"
)

// Unit is a display unit for a byte quantity.
type Unit struct {
	// Suffix is appended to the numeric part (e.g., "KB").
	Suffix string
	// Divisor converts raw bytes into this unit.
	Divisor float64
}

// The promotion threshold of each unit is 1000 of that unit while the divisor
// is a power of 1024. This keeps every scaled value below 1000, i.e. at most
// three integer digits, which is what the width budgets are sized for.
const promoteAt = 1000

var units = []Unit{
	{Suffix: "B", Divisor: 1},
	{Suffix: "KB", Divisor: 1 << 10},
	{Suffix: "MB", Divisor: 1 << 20},
	{Suffix: "GB", Divisor: 1 << 30},
	{Suffix: "TB", Divisor: 1 << 40},
}

// SelectUnit picks the display unit for v: B below 1000, KB below 1000*1024,
// MB below 1000*1024^2, GB below 1000*1024^3 and TB otherwise.
func SelectUnit(v uint64) Unit {
	limit := uint64(promoteAt)
	for _, u := range units[:len(units)-1] {
		if v < limit {
			return u
		}
		limit *= 1024
	}
	return units[len(units)-1]
}

// FormatBytes renders v with an auto-scaled unit suffix.
//
// When fixedWidth is false the scaled value is printed with two decimals.
// When it is true the numeric part is fitted into widthBudget minus the
// length of the unit suffix, trailing zeros trimmed.
//
// Parameters:
//   - v: The raw byte count.
//   - fixedWidth: Whether to enforce the column budget.
//   - widthBudget: Total columns available for number and unit.
//
// Returns:
//   - string: The number immediately followed by the unit, e.g. "0.977KB".
func FormatBytes(v uint64, fixedWidth bool, widthBudget int) string {
	u := SelectUnit(v)
	scaled := float64(v) / u.Divisor
	if !fixedWidth {
		return strconv.FormatFloat(scaled, 'f', 2, 64) + u.Suffix
	}
	return FitWidth(scaled, widthBudget-len(u.Suffix), true) + u.Suffix
}

// FormatPercent fits a percentage into budget columns. Trailing zeros are
// kept so the value does not jump around between refreshes.
func FormatPercent(pct float64, budget int) string {
	return FitWidth(pct, budget, false)
}

// FitWidth renders a non-negative v in at most budget characters whenever
// its integer part allows it.
//
// The value is first printed with budget decimals to find its integer part.
// If the integer part plus a decimal point already fills the budget, only the
// integer part is returned. Otherwise the value is re-rendered with the
// remaining columns as decimals and, when trim is set, trailing zeros and a
// dangling decimal point are removed.
//
// A budget too small for the integer part degrades to the integer part.
func FitWidth(v float64, budget int, trim bool) string {
	if budget < 0 {
		budget = 0
	}
	integer, _, _ := strings.Cut(strconv.FormatFloat(v, 'f', budget, 64), ".")
	if len(integer)+1 >= budget {
		return integer
	}

	precision := budget - len(integer) - 1
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if len(s) > budget {
		// rounding carried into a new integer digit (99.96 -> 100.0)
		s = strconv.FormatFloat(v, 'f', precision-1, 64)
	}
	if trim {
		s = trimZeros(s)
	}
	return s
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	return strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
}
