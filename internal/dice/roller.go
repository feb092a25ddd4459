package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller rolls dice. The bot uses a single die sized to the highest
// national dex number to pick a random creature.
type Roller interface {
	// Roll rolls count dice with the given sides and adds bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

// RollResult is the outcome of a roll
type RollResult struct {
	Total int
	Rolls []int
	Bonus int
	Count int
	Sides int
}
