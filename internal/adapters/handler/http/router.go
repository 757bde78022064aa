package http

import (
	"net/http"

	"github.com/churn/api/internal/core/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(authHandler *AuthHandler, predictHandler *PredictHandler, tokens ports.TokenService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Churn Predictor is live"})
	})

	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	r.With(BearerAuth(tokens)).Post("/predict", predictHandler.Predict)

	return r
}
