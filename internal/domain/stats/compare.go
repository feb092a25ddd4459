package stats

import "github.com/KirkDiggler/pokedex-bot-discord/internal/entities"

// Winner is the outcome of comparing two values
type Winner int

const (
	WinnerTie Winner = iota
	WinnerFirst
	WinnerSecond
)

// Compare reports which of a and b is larger
func Compare(a, b int) Winner {
	switch {
	case a > b:
		return WinnerFirst
	case a < b:
		return WinnerSecond
	default:
		return WinnerTie
	}
}

// Inverse swaps first and second, ties stay ties
func (w Winner) Inverse() Winner {
	switch w {
	case WinnerFirst:
		return WinnerSecond
	case WinnerSecond:
		return WinnerFirst
	default:
		return WinnerTie
	}
}

// Marker is the emoji shown between the two values
func (w Winner) Marker() string {
	switch w {
	case WinnerFirst:
		return "🥇"
	case WinnerSecond:
		return "🥈"
	default:
		return "🤝"
	}
}

func (w Winner) String() string {
	switch w {
	case WinnerFirst:
		return "first"
	case WinnerSecond:
		return "second"
	default:
		return "tie"
	}
}

// StatComparison is one row of a head to head comparison
type StatComparison struct {
	Name   entities.StatName
	First  int
	Second int
	Winner Winner
}

// CompareAll compares the six named statistics in display order. A statistic
// missing from either side counts as zero.
func CompareAll(first, second []entities.Stat) []StatComparison {
	a := toMap(first)
	b := toMap(second)

	out := make([]StatComparison, 0, len(entities.StatNames))
	for _, name := range entities.StatNames {
		out = append(out, StatComparison{
			Name:   name,
			First:  a[name],
			Second: b[name],
			Winner: Compare(a[name], b[name]),
		})
	}
	return out
}

func toMap(stats []entities.Stat) map[entities.StatName]int {
	m := make(map[entities.StatName]int, len(stats))
	for _, s := range stats {
		m[s.Name] = s.Base
	}
	return m
}
