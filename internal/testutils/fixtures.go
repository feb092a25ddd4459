package testutils

import (
	"github.com/KirkDiggler/pokedex-bot-discord/internal/entities"
)

// CreateTestCreature creates a creature with every base stat set to base
func CreateTestCreature(id int, name string, base int, types ...string) *entities.Creature {
	c := &entities.Creature{
		ID:        id,
		Name:      name,
		Types:     types,
		Height:    10,
		Weight:    100,
		SpriteURL: "https://example.com/sprites/" + name + ".png",
		Abilities: []entities.Ability{
			{Name: "overgrow", Slot: 1},
			{Name: "chlorophyll", IsHidden: true, Slot: 3},
		},
		Species: &entities.Species{
			Name:       name,
			Genus:      "Test Pokémon",
			FlavorText: "A creature made for tests.",
		},
	}
	for _, n := range entities.StatNames {
		c.Stats = append(c.Stats, entities.Stat{Name: n, Base: base})
	}
	return c
}

// CreateTestMessageContext creates a message context for a creature
func CreateTestMessageContext(messageID, channelID, userID string, creature *entities.Creature) *entities.MessageContext {
	return &entities.MessageContext{
		MessageID: messageID,
		ChannelID: channelID,
		UserID:    userID,
		Creature:  creature,
	}
}
