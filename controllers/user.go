package controllers

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/kborsotti/pokecard-api/auth"
	"github.com/kborsotti/pokecard-api/middleware"
	"github.com/kborsotti/pokecard-api/models"
	"github.com/kborsotti/pokecard-api/repository"
	"github.com/kborsotti/pokecard-api/utils"
)

// Response messages of the user routes.
const (
	MsgMissingFields = "Propriétés manquantes : Veuillez renseigner tous les champs"
	MsgInvalidID     = "ID invalide"
	MsgUserNotFound  = "Utilisateur non trouvé"
	MsgUserExists    = "Utilisateur déjà existant"
	MsgWrongPassword = "Mot de passe incorrect"
	MsgForbidden     = "Accès interdit : ce n’est pas votre compte"
	MsgUserDeleted   = "Utilisateur supprimé"
	MsgInternalError = "Erreur interne du serveur"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, models.ErrorResponse{Error: message})
}

func paginationMetadata(totalItems, page, limit int) models.PaginationMetadata {
	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(limit)))
	}
	return models.PaginationMetadata{
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: page,
		Limit:       limit,
	}
}

// GetUsersHandler handles fetching every user record. With page or limit
// query parameters the result is wrapped in a pagination envelope; the plain
// array is the default.
func GetUsersHandler(store repository.UserStore, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if utils.HasPaginationParams(r) {
			page, limit := utils.GetPaginationParams(r)
			users, totalItems, err := store.ListPage(r.Context(), limit, (page-1)*limit)
			if err != nil {
				logger.Error("listing users", zap.Error(err))
				respondError(w, http.StatusInternalServerError, MsgInternalError)
				return
			}
			respondJSON(w, http.StatusOK, models.PaginatedResponse{
				Data:       users,
				Pagination: paginationMetadata(totalItems, page, limit),
			})
			return
		}

		users, err := store.List(r.Context())
		if err != nil {
			logger.Error("listing users", zap.Error(err))
			respondError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}
		if users == nil {
			users = []models.User{}
		}
		respondJSON(w, http.StatusOK, users)
	}
}

// GetUserHandler handles fetching a single user by id.
func GetUserHandler(store repository.UserStore, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			respondError(w, http.StatusBadRequest, MsgInvalidID)
			return
		}

		user, err := store.GetByID(r.Context(), id)
		if err != nil {
			logger.Error("getting user", zap.Error(err))
			respondError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}
		if user == nil {
			respondError(w, http.StatusNotFound, MsgUserNotFound)
			return
		}
		respondJSON(w, http.StatusOK, user)
	}
}

// RegisterHandler handles user registration. The duplicate check is on email
// only; the password is hashed before the record is stored.
func RegisterHandler(store repository.UserStore, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Email == "" || creds.Password == "" {
			respondError(w, http.StatusBadRequest, MsgMissingFields)
			return
		}

		existing, err := store.GetByEmail(r.Context(), creds.Email)
		if err != nil {
			logger.Error("checking existing user", zap.Error(err))
			respondError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}
		if existing != nil {
			respondError(w, http.StatusBadRequest, MsgUserExists)
			return
		}

		hashed, err := repository.HashPassword(creds.Password)
		if err != nil {
			logger.Error("hashing password", zap.Error(err))
			respondError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}

		user := &models.User{Email: creds.Email, Password: hashed}
		if err := store.Create(r.Context(), user); err != nil {
			logger.Error("creating user", zap.Error(err))
			respondError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}

		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, "Utilisateur %s enregistré", user.Email)
	}
}

// LoginHandler handles login and token issuance.
func LoginHandler(store repository.UserStore, tokens *auth.TokenService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Email == "" || creds.Password == "" {
			respondError(w, http.StatusBadRequest, MsgMissingFields)
			return
		}

		user, err := store.GetByEmail(r.Context(), creds.Email)
		if err != nil {
			logger.Error("fetching user for login", zap.Error(err))
			respondError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}
		if user == nil {
			respondError(w, http.StatusNotFound, MsgUserNotFound)
			return
		}

		if !repository.CheckPasswordHash(creds.Password, user.Password) {
			respondError(w, http.StatusBadRequest, MsgWrongPassword)
			return
		}

		token, err := tokens.Generate(user)
		if err != nil {
			logger.Error("signing token", zap.Error(err))
			respondError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}

		respondJSON(w, http.StatusCreated, models.LoginResponse{
			Message: "Connexion réussie, bienvenue " + user.Email,
			Token:   token,
		})
	}
}

// UpdateUserHandler handles the protected email+password overwrite. Only the
// account owner may update the record: the token's id must equal the path id.
func UpdateUserHandler(store repository.UserStore, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			respondError(w, http.StatusBadRequest, MsgInvalidID)
			return
		}

		user, err := store.GetByID(r.Context(), id)
		if err != nil {
			logger.Error("getting user for update", zap.Error(err))
			respondError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}
		if user == nil {
			respondError(w, http.StatusNotFound, MsgUserNotFound)
			return
		}

		// Ownership is decided before the body is even looked at.
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, middleware.MsgInvalidToken)
			return
		}
		if claims.ID != id {
			respondError(w, http.StatusForbidden, MsgForbidden)
			return
		}

		var creds models.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Email == "" || creds.Password == "" {
			respondError(w, http.StatusBadRequest, MsgMissingFields)
			return
		}

		hashed, err := repository.HashPassword(creds.Password)
		if err != nil {
			logger.Error("hashing password", zap.Error(err))
			respondError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}

		user.Email = creds.Email
		user.Password = hashed
		if err := store.Update(r.Context(), user); err != nil {
			logger.Error("updating user", zap.Error(err))
			respondError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}
		respondJSON(w, http.StatusOK, user)
	}
}

// DeleteUserHandler handles the protected account deletion with the same
// numeric, existence and ownership checks as the update.
func DeleteUserHandler(store repository.UserStore, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			respondError(w, http.StatusBadRequest, MsgInvalidID)
			return
		}

		user, err := store.GetByID(r.Context(), id)
		if err != nil {
			logger.Error("getting user for delete", zap.Error(err))
			respondError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}
		if user == nil {
			respondError(w, http.StatusNotFound, MsgUserNotFound)
			return
		}

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, middleware.MsgInvalidToken)
			return
		}
		if claims.ID != id {
			respondError(w, http.StatusForbidden, MsgForbidden)
			return
		}

		if err := store.Delete(r.Context(), id); err != nil {
			logger.Error("deleting user", zap.Error(err))
			respondError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}
		respondJSON(w, http.StatusOK, models.MessageResponse{Message: MsgUserDeleted})
	}
}
