package models

// Type is a pokemon elemental type. It is referenced, never owned, by cards.
type Type struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:50;not null"`
}

// PokemonCard is a card linked to exactly one Type. Reads always populate
// the Type relation.
type PokemonCard struct {
	ID         int     `json:"id" gorm:"primaryKey"`
	Name       string  `json:"name" gorm:"size:100;not null"`
	PokedexID  int     `json:"pokedexId" gorm:"uniqueIndex"`
	TypeID     int     `json:"typeId"`
	Type       Type    `json:"type"`
	LifePoints int     `json:"lifePoints"`
	Size       float64 `json:"size"`
	Weight     float64 `json:"weight"`
	ImageURL   string  `json:"imageUrl"`
}
