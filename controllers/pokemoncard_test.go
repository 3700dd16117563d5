package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kborsotti/pokecard-api/models"
)

func flamiaou() models.PokemonCard {
	return models.PokemonCard{
		ID:         1,
		Name:       "Flamiaou",
		PokedexID:  725,
		TypeID:     2,
		Type:       models.Type{ID: 2, Name: "Fire"},
		LifePoints: 70,
		Size:       0.7,
		Weight:     4,
		ImageURL:   "https://www.pokepedia.fr/images/thumb/6/6c/Flamiaou-USUL.png/800px-Flamiaou-USUL.png",
	}
}

const flamiaouBody = `{"name":"Flamiaou","pokedexId":725,"typeId":2,"lifePoints":70,"size":0.7,"weight":4,"imageUrl":"https://www.pokepedia.fr/images/thumb/6/6c/Flamiaou-USUL.png/800px-Flamiaou-USUL.png"}`

func TestGetPokemonCardsHandler(t *testing.T) {
	store := &fakeCardStore{cards: []models.PokemonCard{flamiaou()}}
	handler := GetPokemonCardsHandler(store, zap.NewNop())

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("GET", "/pokemons-cards", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []models.PokemonCard
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	// The type relation rides along on every read.
	assert.Equal(t, "Fire", got[0].Type.Name)
}

func TestGetPokemonCardsHandler_Empty(t *testing.T) {
	handler := GetPokemonCardsHandler(&fakeCardStore{}, zap.NewNop())

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("GET", "/pokemons-cards", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestGetPokemonCardHandler(t *testing.T) {
	tests := []struct {
		name      string
		pathID    string
		store     *fakeCardStore
		wantCode  int
		wantError string
	}{
		{
			name:      "invalid id",
			pathID:    "char",
			store:     &fakeCardStore{},
			wantCode:  http.StatusBadRequest,
			wantError: MsgInvalidID,
		},
		{
			name:      "not found",
			pathID:    "999",
			store:     &fakeCardStore{},
			wantCode:  http.StatusNotFound,
			wantError: MsgPokemonNotFound,
		},
		{
			name:     "found",
			pathID:   "1",
			store:    &fakeCardStore{cards: []models.PokemonCard{flamiaou()}},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := GetPokemonCardHandler(tt.store, zap.NewNop())
			req := mux.SetURLVars(httptest.NewRequest("GET", "/pokemons-cards/"+tt.pathID, nil), map[string]string{"id": tt.pathID})
			rec := httptest.NewRecorder()
			handler(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rec))
			}
		})
	}
}

func TestCreatePokemonCardHandler(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		store := &fakeCardStore{}
		handler := CreatePokemonCardHandler(store, zap.NewNop())

		req := httptest.NewRequest("POST", "/pokemons-cards", strings.NewReader(`{"pokedexId":725,"typeId":2}`))
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, MsgMissingFields, decodeError(t, rec))
		assert.Empty(t, store.created)
	})

	t.Run("duplicate pokedex id", func(t *testing.T) {
		store := &fakeCardStore{cards: []models.PokemonCard{flamiaou()}}
		handler := CreatePokemonCardHandler(store, zap.NewNop())

		req := httptest.NewRequest("POST", "/pokemons-cards", strings.NewReader(flamiaouBody))
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, MsgPokemonExists, decodeError(t, rec))
		assert.Empty(t, store.created)
	})

	t.Run("success", func(t *testing.T) {
		store := &fakeCardStore{}
		handler := CreatePokemonCardHandler(store, zap.NewNop())

		req := httptest.NewRequest("POST", "/pokemons-cards", strings.NewReader(flamiaouBody))
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		require.Len(t, store.created, 1)
		assert.Equal(t, "Flamiaou", store.created[0].Name)
		assert.Equal(t, 725, store.created[0].PokedexID)

		var got models.PokemonCard
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.NotZero(t, got.ID)
	})
}

func TestUpdatePokemonCardHandler(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		handler := UpdatePokemonCardHandler(&fakeCardStore{}, zap.NewNop())
		req := mux.SetURLVars(httptest.NewRequest("PATCH", "/pokemons-cards/char", strings.NewReader(flamiaouBody)), map[string]string{"id": "char"})
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, MsgInvalidID, decodeError(t, rec))
	})

	t.Run("not found", func(t *testing.T) {
		store := &fakeCardStore{}
		handler := UpdatePokemonCardHandler(store, zap.NewNop())
		req := mux.SetURLVars(httptest.NewRequest("PATCH", "/pokemons-cards/999", strings.NewReader(flamiaouBody)), map[string]string{"id": "999"})
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, MsgPokemonNotFound, decodeError(t, rec))
		assert.Empty(t, store.updated)
	})

	t.Run("success overwrites every field", func(t *testing.T) {
		store := &fakeCardStore{cards: []models.PokemonCard{flamiaou()}}
		handler := UpdatePokemonCardHandler(store, zap.NewNop())

		body := strings.Replace(flamiaouBody, `"lifePoints":70`, `"lifePoints":90`, 1)
		req := mux.SetURLVars(httptest.NewRequest("PATCH", "/pokemons-cards/1", strings.NewReader(body)), map[string]string{"id": "1"})
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, store.updated, 1)
		assert.Equal(t, 90, store.updated[0].LifePoints)
		assert.Equal(t, 1, store.updated[0].ID)
	})
}

func TestDeletePokemonCardHandler(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		store := &fakeCardStore{}
		handler := DeletePokemonCardHandler(store, zap.NewNop())
		req := mux.SetURLVars(httptest.NewRequest("DELETE", "/pokemons-cards/char", nil), map[string]string{"id": "char"})
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, MsgInvalidID, decodeError(t, rec))
		assert.Empty(t, store.deleted)
	})

	t.Run("not found", func(t *testing.T) {
		store := &fakeCardStore{}
		handler := DeletePokemonCardHandler(store, zap.NewNop())
		req := mux.SetURLVars(httptest.NewRequest("DELETE", "/pokemons-cards/999", nil), map[string]string{"id": "999"})
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, store.deleted)
	})

	t.Run("success", func(t *testing.T) {
		store := &fakeCardStore{cards: []models.PokemonCard{flamiaou()}}
		handler := DeletePokemonCardHandler(store, zap.NewNop())
		req := mux.SetURLVars(httptest.NewRequest("DELETE", "/pokemons-cards/1", nil), map[string]string{"id": "1"})
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []int{1}, store.deleted)

		var body models.MessageResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, MsgPokemonDeleted, body.Message)
	})
}
