package entities

// DamageRelations lists the categories a category interacts with, as reported upstream
type DamageRelations struct {
	DoubleDamageTo   []string `json:"double_damage_to"`
	HalfDamageTo     []string `json:"half_damage_to"`
	NoDamageTo       []string `json:"no_damage_to"`
	DoubleDamageFrom []string `json:"double_damage_from"`
	HalfDamageFrom   []string `json:"half_damage_from"`
	NoDamageFrom     []string `json:"no_damage_from"`
}

// CategoryInfo is the provider's record for a single type
type CategoryInfo struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	DamageRelations DamageRelations `json:"damage_relations"`
	MoveCount       int             `json:"move_count"`
	PokemonCount    int             `json:"pokemon_count"`
}
