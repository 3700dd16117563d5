package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/kborsotti/pokecard-api/models"
	"github.com/kborsotti/pokecard-api/repository"
	"github.com/kborsotti/pokecard-api/utils"
)

// Response messages of the pokemon card routes.
const (
	MsgPokemonNotFound = "Pokemon non trouvé"
	MsgPokemonExists   = "Pokemon déjà existant"
	MsgPokemonDeleted  = "Pokemon supprimé"
)

func cardInputComplete(c *models.PokemonCard) bool {
	return c.Name != "" && c.PokedexID > 0 && c.TypeID > 0 &&
		c.LifePoints > 0 && c.Size > 0 && c.Weight > 0 && c.ImageURL != ""
}

// GetPokemonCardsHandler handles fetching every card with its type populated.
// With page or limit query parameters the result is wrapped in a pagination
// envelope; the plain array is the default.
func GetPokemonCardsHandler(store repository.CardStore, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if utils.HasPaginationParams(r) {
			page, limit := utils.GetPaginationParams(r)
			cards, totalItems, err := store.ListPage(r.Context(), limit, (page-1)*limit)
			if err != nil {
				logger.Error("listing cards", zap.Error(err))
				respondError(w, http.StatusInternalServerError, MsgInternalError)
				return
			}
			respondJSON(w, http.StatusOK, models.PaginatedResponse{
				Data:       cards,
				Pagination: paginationMetadata(totalItems, page, limit),
			})
			return
		}

		cards, err := store.List(r.Context())
		if err != nil {
			logger.Error("listing cards", zap.Error(err))
			respondError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}
		if cards == nil {
			cards = []models.PokemonCard{}
		}
		respondJSON(w, http.StatusOK, cards)
	}
}

// GetPokemonCardHandler handles fetching a single card by its primary key.
func GetPokemonCardHandler(store repository.CardStore, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			respondError(w, http.StatusBadRequest, MsgInvalidID)
			return
		}

		card, err := store.GetByID(r.Context(), id)
		if err != nil {
			logger.Error("getting card", zap.Error(err))
			respondError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}
		if card == nil {
			respondError(w, http.StatusNotFound, MsgPokemonNotFound)
			return
		}
		respondJSON(w, http.StatusOK, card)
	}
}

// CreatePokemonCardHandler handles card creation. A card is a duplicate when
// one with the same pokedexId already exists.
func CreatePokemonCardHandler(store repository.CardStore, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var card models.PokemonCard
		if err := json.NewDecoder(r.Body).Decode(&card); err != nil || !cardInputComplete(&card) {
			respondError(w, http.StatusBadRequest, MsgMissingFields)
			return
		}

		existing, err := store.GetByPokedexID(r.Context(), card.PokedexID)
		if err != nil {
			logger.Error("checking existing card", zap.Error(err))
			respondError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}
		if existing != nil {
			respondError(w, http.StatusBadRequest, MsgPokemonExists)
			return
		}

		card.ID = 0
		card.Type = models.Type{}
		if err := store.Create(r.Context(), &card); err != nil {
			logger.Error("creating card", zap.Error(err))
			respondError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}
		respondJSON(w, http.StatusCreated, card)
	}
}

// UpdatePokemonCardHandler handles a full-field overwrite of an existing card,
// looked up by its primary key.
func UpdatePokemonCardHandler(store repository.CardStore, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			respondError(w, http.StatusBadRequest, MsgInvalidID)
			return
		}

		var input models.PokemonCard
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil || !cardInputComplete(&input) {
			respondError(w, http.StatusBadRequest, MsgMissingFields)
			return
		}

		card, err := store.GetByID(r.Context(), id)
		if err != nil {
			logger.Error("getting card for update", zap.Error(err))
			respondError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}
		if card == nil {
			respondError(w, http.StatusNotFound, MsgPokemonNotFound)
			return
		}

		card.Name = input.Name
		card.PokedexID = input.PokedexID
		card.TypeID = input.TypeID
		card.LifePoints = input.LifePoints
		card.Size = input.Size
		card.Weight = input.Weight
		card.ImageURL = input.ImageURL
		if err := store.Update(r.Context(), card); err != nil {
			logger.Error("updating card", zap.Error(err))
			respondError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}
		respondJSON(w, http.StatusOK, card)
	}
}

// DeletePokemonCardHandler handles deleting a card by its primary key.
func DeletePokemonCardHandler(store repository.CardStore, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			respondError(w, http.StatusBadRequest, MsgInvalidID)
			return
		}

		card, err := store.GetByID(r.Context(), id)
		if err != nil {
			logger.Error("getting card for delete", zap.Error(err))
			respondError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}
		if card == nil {
			respondError(w, http.StatusNotFound, MsgPokemonNotFound)
			return
		}

		if err := store.Delete(r.Context(), id); err != nil {
			logger.Error("deleting card", zap.Error(err))
			respondError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}
		respondJSON(w, http.StatusOK, models.MessageResponse{Message: MsgPokemonDeleted})
	}
}
