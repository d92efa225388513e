package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(h *Handler, newLogger LoggerFactory, allowedOrigins []string) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(func(next http.Handler) http.Handler {
		return LoggerHTTP(next, newLogger)
	})

	router.Get("/", h.Root)
	router.Get("/health", h.Health)

	router.Post("/auth/register", h.Register)
	router.Post("/auth/login", h.Login)

	router.Post("/chat", h.Chat)

	router.Route("/conversations", func(r chi.Router) {
		r.Post("/", h.CreateConversation)
		r.Get("/user/{userID}", h.UserConversations)
		r.Get("/{conversationID}", h.GetConversation)
		r.Delete("/{conversationID}", h.DeleteConversation)
		r.Get("/{conversationID}/messages", h.ConversationMessages)
	})

	router.Route("/movies", func(r chi.Router) {
		r.Get("/search", h.SearchMovies)
		r.Post("/semantic-search", h.SemanticSearch)
		r.Get("/{feed:(popular|top-rated|upcoming)}", h.MovieFeed)
		r.Get("/{movieID}", h.MovieDetails)
		r.Get("/{movieID}/credits", h.MovieCredits)
		r.Get("/{movieID}/similar", h.SimilarMovies)
		r.Get("/{movieID}/recommendations", h.MovieRecommendations)
	})

	router.Get("/person/search", h.SearchPeople)
	router.Get("/person/{personID}/credits", h.PersonCredits)

	router.Group(func(r chi.Router) {
		r.Use(h.Authenticate)

		r.Get("/auth/me", h.CurrentUser)
		r.Get("/watchlist", h.Watchlist)
		r.Post("/watchlist", h.AddToWatchlist)
		r.Delete("/watchlist/{itemID}", h.RemoveFromWatchlist)
		r.Patch("/watchlist/{itemID}/rating", h.RateWatchlistItem)
		r.Patch("/watchlist/{itemID}/watched", h.SetWatched)
	})

	return router
}
