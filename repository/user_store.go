// Package repository is the persistence gateway: store interfaces consumed by
// the controllers and their GORM implementations. Stores return (nil, nil)
// when a single-record lookup matches nothing; errors are reserved for
// persistence faults.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kborsotti/pokecard-api/models"
)

// UserStore is the data-access contract for user records.
type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	ListPage(ctx context.Context, limit, offset int) ([]models.User, int, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id int) error
}

// GormUserStore implements UserStore on a GORM connection.
type GormUserStore struct {
	db *gorm.DB
}

// NewUserStore wraps an injected GORM handle.
func NewUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

func (s *GormUserStore) ListPage(ctx context.Context, limit, offset int) ([]models.User, int, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("error counting users: %w", err)
	}

	var users []models.User
	err := s.db.WithContext(ctx).Order("id").Limit(limit).Offset(offset).Find(&users).Error
	if err != nil {
		return nil, 0, fmt.Errorf("error listing users page: %w", err)
	}
	return users, int(total), nil
}

func (s *GormUserStore) GetByID(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error getting user by id: %w", err)
	}
	return &u, nil
}

func (s *GormUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}
	return &u, nil
}

func (s *GormUserStore) Create(ctx context.Context, u *models.User) error {
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("error inserting user: %w", err)
	}
	return nil
}

func (s *GormUserStore) Update(ctx context.Context, u *models.User) error {
	if err := s.db.WithContext(ctx).Save(u).Error; err != nil {
		return fmt.Errorf("error updating user: %w", err)
	}
	return nil
}

func (s *GormUserStore) Delete(ctx context.Context, id int) error {
	if err := s.db.WithContext(ctx).Delete(&models.User{}, id).Error; err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}
