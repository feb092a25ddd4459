package dice_test

import (
	"testing"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/dice"
	mockdice "github.com/KirkDiggler/pokedex-bot-discord/internal/dice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomRoller_Roll(t *testing.T) {
	roller := dice.NewRandomRoller()

	for i := 0; i < 200; i++ {
		result, err := roller.Roll(1, 1010, 0)
		require.NoError(t, err)
		require.Len(t, result.Rolls, 1)
		assert.GreaterOrEqual(t, result.Total, 1)
		assert.LessOrEqual(t, result.Total, 1010)
	}

	result, err := roller.Roll(3, 6, 2)
	require.NoError(t, err)
	assert.Len(t, result.Rolls, 3)
	assert.Equal(t, result.Rolls[0]+result.Rolls[1]+result.Rolls[2]+2, result.Total)
}

func TestRandomRoller_InvalidInput(t *testing.T) {
	roller := dice.NewRandomRoller()

	_, err := roller.Roll(0, 6, 0)
	assert.Error(t, err)

	_, err = roller.Roll(1, 0, 0)
	assert.Error(t, err)
}

func TestMockRoller_Roll(t *testing.T) {
	tests := []struct {
		name       string
		setupRolls []int
		count      int
		sides      int
		bonus      int
		wantTotal  int
		wantRolls  []int
		wantErr    bool
	}{
		{
			name:       "single roll",
			setupRolls: []int{25},
			count:      1,
			sides:      1010,
			wantTotal:  25,
			wantRolls:  []int{25},
		},
		{
			name:       "2d6+3",
			setupRolls: []int{4, 5},
			count:      2,
			sides:      6,
			bonus:      3,
			wantTotal:  12, // 4+5+3
			wantRolls:  []int{4, 5},
		},
		{
			name:       "not enough rolls",
			setupRolls: []int{10},
			count:      2,
			sides:      20,
			wantErr:    true,
		},
		{
			name:       "invalid roll for die size",
			setupRolls: []int{1011},
			count:      1,
			sides:      1010,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockdice.NewManualMockRoller()
			roller.SetRolls(tt.setupRolls)

			result, err := roller.Roll(tt.count, tt.sides, tt.bonus)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Equal(t, tt.wantRolls, result.Rolls)
		})
	}
}
