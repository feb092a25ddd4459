package pokeapi

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/entities"
)

const englishLanguage = "en"

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type apiPokemon struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Height    int           `json:"height"`
	Weight    int           `json:"weight"`
	Types     []apiTypeSlot `json:"types"`
	Abilities []apiAbility  `json:"abilities"`
	Stats     []apiStat     `json:"stats"`
	Species   namedResource `json:"species"`
	Sprites   apiSprites    `json:"sprites"`
}

type apiTypeSlot struct {
	Slot int           `json:"slot"`
	Type namedResource `json:"type"`
}

type apiAbility struct {
	Ability  namedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

type apiStat struct {
	BaseStat int           `json:"base_stat"`
	Stat     namedResource `json:"stat"`
}

type apiSprites struct {
	FrontDefault string `json:"front_default"`
	Other        struct {
		OfficialArtwork struct {
			FrontDefault string `json:"front_default"`
		} `json:"official-artwork"`
	} `json:"other"`
}

type apiSpecies struct {
	Name              string           `json:"name"`
	IsLegendary       bool             `json:"is_legendary"`
	IsMythical        bool             `json:"is_mythical"`
	Generation        namedResource    `json:"generation"`
	EvolvesFrom       *namedResource   `json:"evolves_from_species"`
	Genera            []apiGenus       `json:"genera"`
	FlavorTextEntries []apiFlavorEntry `json:"flavor_text_entries"`
}

type apiGenus struct {
	Genus    string        `json:"genus"`
	Language namedResource `json:"language"`
}

type apiFlavorEntry struct {
	FlavorText string        `json:"flavor_text"`
	Language   namedResource `json:"language"`
}

type apiType struct {
	ID              int                `json:"id"`
	Name            string             `json:"name"`
	DamageRelations apiDamageRelations `json:"damage_relations"`
	Moves           []namedResource    `json:"moves"`
	Pokemon         []struct {
		Slot    int           `json:"slot"`
		Pokemon namedResource `json:"pokemon"`
	} `json:"pokemon"`
}

type apiDamageRelations struct {
	DoubleDamageTo   []namedResource `json:"double_damage_to"`
	HalfDamageTo     []namedResource `json:"half_damage_to"`
	NoDamageTo       []namedResource `json:"no_damage_to"`
	DoubleDamageFrom []namedResource `json:"double_damage_from"`
	HalfDamageFrom   []namedResource `json:"half_damage_from"`
	NoDamageFrom     []namedResource `json:"no_damage_from"`
}

func apiPokemonToCreature(p *apiPokemon) *entities.Creature {
	slots := make([]apiTypeSlot, len(p.Types))
	copy(slots, p.Types)
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Slot < slots[j].Slot })

	types := make([]string, 0, len(slots))
	for _, s := range slots {
		types = append(types, s.Type.Name)
	}

	abilities := make([]entities.Ability, 0, len(p.Abilities))
	for _, a := range p.Abilities {
		abilities = append(abilities, entities.Ability{
			Name:     a.Ability.Name,
			IsHidden: a.IsHidden,
			Slot:     a.Slot,
		})
	}

	stats := make([]entities.Stat, 0, len(p.Stats))
	for _, s := range p.Stats {
		stats = append(stats, entities.Stat{
			Name: entities.StatName(s.Stat.Name),
			Base: s.BaseStat,
		})
	}

	sprite := p.Sprites.Other.OfficialArtwork.FrontDefault
	if sprite == "" {
		sprite = p.Sprites.FrontDefault
	}

	return &entities.Creature{
		ID:         p.ID,
		Name:       p.Name,
		Types:      types,
		Abilities:  abilities,
		Stats:      stats,
		Height:     p.Height,
		Weight:     p.Weight,
		SpriteURL:  sprite,
		SpeciesURL: p.Species.URL,
	}
}

func apiSpeciesToSpecies(s *apiSpecies) *entities.Species {
	species := &entities.Species{
		Name:        s.Name,
		Generation:  s.Generation.Name,
		IsLegendary: s.IsLegendary,
		IsMythical:  s.IsMythical,
	}
	if s.EvolvesFrom != nil {
		species.EvolvesFrom = s.EvolvesFrom.Name
	}

	for _, g := range s.Genera {
		if g.Language.Name == englishLanguage {
			species.Genus = g.Genus
			break
		}
	}

	for _, e := range s.FlavorTextEntries {
		if e.Language.Name == englishLanguage {
			species.FlavorText = strings.ReplaceAll(e.FlavorText, "\f", " ")
			break
		}
	}

	return species
}

func apiTypeToCategoryInfo(t *apiType) *entities.CategoryInfo {
	return &entities.CategoryInfo{
		ID:   t.ID,
		Name: t.Name,
		DamageRelations: entities.DamageRelations{
			DoubleDamageTo:   resourceNames(t.DamageRelations.DoubleDamageTo),
			HalfDamageTo:     resourceNames(t.DamageRelations.HalfDamageTo),
			NoDamageTo:       resourceNames(t.DamageRelations.NoDamageTo),
			DoubleDamageFrom: resourceNames(t.DamageRelations.DoubleDamageFrom),
			HalfDamageFrom:   resourceNames(t.DamageRelations.HalfDamageFrom),
			NoDamageFrom:     resourceNames(t.DamageRelations.NoDamageFrom),
		},
		MoveCount:    len(t.Moves),
		PokemonCount: len(t.Pokemon),
	}
}

func resourceNames(in []namedResource) []string {
	out := make([]string, 0, len(in))
	for _, r := range in {
		out = append(out, r.Name)
	}
	return out
}
