// Package stats derives display values from a creature's base statistics
package stats

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/entities"
)

const (
	feetPerMetre   = 3.28084
	poundsPerKilo  = 2.20462
	barSegments    = 15
	pointsPerBlock = 10
)

// Total sums the six named base statistics, ignoring anything else
func Total(stats []entities.Stat) int {
	total := 0
	for _, s := range stats {
		if isNamed(s.Name) {
			total += s.Base
		}
	}
	return total
}

func isNamed(name entities.StatName) bool {
	for _, n := range entities.StatNames {
		if n == name {
			return true
		}
	}
	return false
}

// HeightImperial converts decimetres to feet and inches
func HeightImperial(decimetres int) (feet, inches int) {
	ft := float64(decimetres) / 10 * feetPerMetre
	feet = int(math.Floor(ft))
	inches = int(math.Round((ft - float64(feet)) * 12))
	return feet, inches
}

// WeightPounds converts hectograms to whole pounds
func WeightPounds(hectograms int) int {
	return int(math.Round(float64(hectograms) / 10 * poundsPerKilo))
}

// FormatHeight renders e.g. 17 as `1.7m (5'7")`
func FormatHeight(decimetres int) string {
	feet, inches := HeightImperial(decimetres)
	return fmt.Sprintf("%sm (%d'%d\")", tenths(decimetres), feet, inches)
}

// FormatWeight renders e.g. 905 as "90.5kg (200 lbs)"
func FormatWeight(hectograms int) string {
	return fmt.Sprintf("%skg (%d lbs)", tenths(hectograms), WeightPounds(hectograms))
}

func tenths(v int) string {
	return strconv.FormatFloat(float64(v)/10, 'f', -1, 64)
}

// Bar draws one block per ten points, padded to fifteen segments
func Bar(value int) string {
	filled := value / pointsPerBlock
	if filled < 0 {
		filled = 0
	}
	empty := barSegments - filled
	if empty < 0 {
		empty = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", empty)
}

// Label returns the short display name of a statistic
func Label(name entities.StatName) string {
	switch name {
	case entities.StatHP:
		return "HP"
	case entities.StatAttack:
		return "Attack"
	case entities.StatDefense:
		return "Defense"
	case entities.StatSpecialAttack:
		return "Sp. Attack"
	case entities.StatSpecialDefense:
		return "Sp. Defense"
	case entities.StatSpeed:
		return "Speed"
	default:
		return string(name)
	}
}
