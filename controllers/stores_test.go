package controllers

import (
	"context"

	"github.com/kborsotti/pokecard-api/models"
)

// fakeUserStore implements repository.UserStore for handler tests.
type fakeUserStore struct {
	users   []models.User
	failAll error

	created []models.User
	updated []models.User
	deleted []int
}

func (f *fakeUserStore) List(ctx context.Context) ([]models.User, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	return f.users, nil
}

func (f *fakeUserStore) ListPage(ctx context.Context, limit, offset int) ([]models.User, int, error) {
	if f.failAll != nil {
		return nil, 0, f.failAll
	}
	total := len(f.users)
	if offset >= total {
		return []models.User{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return f.users[offset:end], total, nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int) (*models.User, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Create(ctx context.Context, u *models.User) error {
	if f.failAll != nil {
		return f.failAll
	}
	if u.ID == 0 {
		u.ID = len(f.users) + 1
	}
	f.users = append(f.users, *u)
	f.created = append(f.created, *u)
	return nil
}

func (f *fakeUserStore) Update(ctx context.Context, u *models.User) error {
	if f.failAll != nil {
		return f.failAll
	}
	for i := range f.users {
		if f.users[i].ID == u.ID {
			f.users[i] = *u
		}
	}
	f.updated = append(f.updated, *u)
	return nil
}

func (f *fakeUserStore) Delete(ctx context.Context, id int) error {
	if f.failAll != nil {
		return f.failAll
	}
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeCardStore implements repository.CardStore for handler tests.
type fakeCardStore struct {
	cards   []models.PokemonCard
	failAll error

	created []models.PokemonCard
	updated []models.PokemonCard
	deleted []int
}

func (f *fakeCardStore) List(ctx context.Context) ([]models.PokemonCard, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	return f.cards, nil
}

func (f *fakeCardStore) ListPage(ctx context.Context, limit, offset int) ([]models.PokemonCard, int, error) {
	if f.failAll != nil {
		return nil, 0, f.failAll
	}
	total := len(f.cards)
	if offset >= total {
		return []models.PokemonCard{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return f.cards[offset:end], total, nil
}

func (f *fakeCardStore) GetByID(ctx context.Context, id int) (*models.PokemonCard, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	for i := range f.cards {
		if f.cards[i].ID == id {
			c := f.cards[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCardStore) GetByPokedexID(ctx context.Context, pokedexID int) (*models.PokemonCard, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	for i := range f.cards {
		if f.cards[i].PokedexID == pokedexID {
			c := f.cards[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCardStore) Create(ctx context.Context, c *models.PokemonCard) error {
	if f.failAll != nil {
		return f.failAll
	}
	if c.ID == 0 {
		c.ID = len(f.cards) + 1
	}
	f.cards = append(f.cards, *c)
	f.created = append(f.created, *c)
	return nil
}

func (f *fakeCardStore) Update(ctx context.Context, c *models.PokemonCard) error {
	if f.failAll != nil {
		return f.failAll
	}
	for i := range f.cards {
		if f.cards[i].ID == c.ID {
			f.cards[i] = *c
		}
	}
	f.updated = append(f.updated, *c)
	return nil
}

func (f *fakeCardStore) Delete(ctx context.Context, id int) error {
	if f.failAll != nil {
		return f.failAll
	}
	f.deleted = append(f.deleted, id)
	return nil
}
