package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kborsotti/pokecard-api/models"
)

// CardStore is the data-access contract for pokemon cards. Every read
// populates the Type relation.
type CardStore interface {
	List(ctx context.Context) ([]models.PokemonCard, error)
	ListPage(ctx context.Context, limit, offset int) ([]models.PokemonCard, int, error)
	GetByID(ctx context.Context, id int) (*models.PokemonCard, error)
	GetByPokedexID(ctx context.Context, pokedexID int) (*models.PokemonCard, error)
	Create(ctx context.Context, c *models.PokemonCard) error
	Update(ctx context.Context, c *models.PokemonCard) error
	Delete(ctx context.Context, id int) error
}

// GormCardStore implements CardStore on a GORM connection.
type GormCardStore struct {
	db *gorm.DB
}

// NewCardStore wraps an injected GORM handle.
func NewCardStore(db *gorm.DB) *GormCardStore {
	return &GormCardStore{db: db}
}

func (s *GormCardStore) List(ctx context.Context) ([]models.PokemonCard, error) {
	var cards []models.PokemonCard
	err := s.db.WithContext(ctx).Preload("Type").Order("id").Find(&cards).Error
	if err != nil {
		return nil, fmt.Errorf("error listing cards: %w", err)
	}
	return cards, nil
}

func (s *GormCardStore) ListPage(ctx context.Context, limit, offset int) ([]models.PokemonCard, int, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.PokemonCard{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("error counting cards: %w", err)
	}

	var cards []models.PokemonCard
	err := s.db.WithContext(ctx).Preload("Type").Order("id").Limit(limit).Offset(offset).Find(&cards).Error
	if err != nil {
		return nil, 0, fmt.Errorf("error listing cards page: %w", err)
	}
	return cards, int(total), nil
}

func (s *GormCardStore) GetByID(ctx context.Context, id int) (*models.PokemonCard, error) {
	var c models.PokemonCard
	err := s.db.WithContext(ctx).Preload("Type").First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error getting card by id: %w", err)
	}
	return &c, nil
}

func (s *GormCardStore) GetByPokedexID(ctx context.Context, pokedexID int) (*models.PokemonCard, error) {
	var c models.PokemonCard
	err := s.db.WithContext(ctx).Preload("Type").Where("pokedex_id = ?", pokedexID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error getting card by pokedex id: %w", err)
	}
	return &c, nil
}

// Create inserts the card and reloads it so the Type relation is populated in
// the response. The Type association itself is never written from here.
func (s *GormCardStore) Create(ctx context.Context, c *models.PokemonCard) error {
	if err := s.db.WithContext(ctx).Omit("Type").Create(c).Error; err != nil {
		return fmt.Errorf("error inserting card: %w", err)
	}
	if err := s.db.WithContext(ctx).Preload("Type").First(c, c.ID).Error; err != nil {
		return fmt.Errorf("error reloading card: %w", err)
	}
	return nil
}

func (s *GormCardStore) Update(ctx context.Context, c *models.PokemonCard) error {
	if err := s.db.WithContext(ctx).Omit("Type").Save(c).Error; err != nil {
		return fmt.Errorf("error updating card: %w", err)
	}
	if err := s.db.WithContext(ctx).Preload("Type").First(c, c.ID).Error; err != nil {
		return fmt.Errorf("error reloading card: %w", err)
	}
	return nil
}

func (s *GormCardStore) Delete(ctx context.Context, id int) error {
	if err := s.db.WithContext(ctx).Delete(&models.PokemonCard{}, id).Error; err != nil {
		return fmt.Errorf("error deleting card: %w", err)
	}
	return nil
}
