package uuid_test

import (
	"testing"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGoogleUUIDGenerator(t *testing.T) {
	g := uuid.NewGoogleUUIDGenerator()

	id := g.New()
	assert.Len(t, id, 36)
	assert.NotEqual(t, id, g.New())
}

func TestShortGenerator(t *testing.T) {
	testCases := []struct {
		name   string
		length int
		want   int
	}{
		{name: "default", length: 0, want: uuid.DefaultShortLength},
		{name: "custom", length: 12, want: 12},
		{name: "capped", length: 64, want: 32},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id := uuid.NewShortGenerator(tc.length).New()
			assert.Len(t, id, tc.want)
			assert.NotContains(t, id, "-")
		})
	}
}
