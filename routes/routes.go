package routes

import (
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/kborsotti/pokecard-api/auth"
	"github.com/kborsotti/pokecard-api/controllers"
	"github.com/kborsotti/pokecard-api/docs"
	"github.com/kborsotti/pokecard-api/middleware"
	"github.com/kborsotti/pokecard-api/repository"
)

// Deps carries the injected collaborators of the route table.
type Deps struct {
	Users  repository.UserStore
	Cards  repository.CardStore
	Tokens *auth.TokenService
	Logger *zap.Logger

	// ProtectCardRoutes puts the mutating card routes behind the same bearer
	// gate as the user mutations. Uniform: either all three or none.
	ProtectCardRoutes bool
}

// SetupRoutes configures the application routes.
func SetupRoutes(deps Deps) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogging(deps.Logger))

	// --- User routes (public) ---
	r.HandleFunc("/users", controllers.GetUsersHandler(deps.Users, deps.Logger)).Methods("GET")
	r.HandleFunc("/users", controllers.RegisterHandler(deps.Users, deps.Logger)).Methods("POST")
	r.HandleFunc("/users/login", controllers.LoginHandler(deps.Users, deps.Tokens, deps.Logger)).Methods("POST")
	r.HandleFunc("/users/{id}", controllers.GetUserHandler(deps.Users, deps.Logger)).Methods("GET")

	// --- User routes (bearer token required) ---
	userAuthRouter := r.PathPrefix("").Subrouter()
	userAuthRouter.Use(middleware.Auth(deps.Tokens))
	userAuthRouter.HandleFunc("/users/{id}", controllers.UpdateUserHandler(deps.Users, deps.Logger)).Methods("PATCH")
	userAuthRouter.HandleFunc("/users/{id}", controllers.DeleteUserHandler(deps.Users, deps.Logger)).Methods("DELETE")

	// --- Pokemon card routes ---
	r.HandleFunc("/pokemons-cards", controllers.GetPokemonCardsHandler(deps.Cards, deps.Logger)).Methods("GET")
	r.HandleFunc("/pokemons-cards/{id}", controllers.GetPokemonCardHandler(deps.Cards, deps.Logger)).Methods("GET")

	cardMutRouter := r.PathPrefix("").Subrouter()
	if deps.ProtectCardRoutes {
		cardMutRouter.Use(middleware.Auth(deps.Tokens))
	}
	cardMutRouter.HandleFunc("/pokemons-cards", controllers.CreatePokemonCardHandler(deps.Cards, deps.Logger)).Methods("POST")
	cardMutRouter.HandleFunc("/pokemons-cards/{id}", controllers.UpdatePokemonCardHandler(deps.Cards, deps.Logger)).Methods("PATCH")
	cardMutRouter.HandleFunc("/pokemons-cards/{id}", controllers.DeletePokemonCardHandler(deps.Cards, deps.Logger)).Methods("DELETE")

	// --- API documentation (static OpenAPI document) ---
	r.HandleFunc("/api-doc", docs.Handler).Methods("GET")

	return r
}
