package handlers

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func RegisterRoutes(r *chi.Mux, logger *zap.Logger, reservationHandler *ReservationHandler) {
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	huma.NewError = NewAPIError

	// Initialize Huma API
	config := huma.DefaultConfig("Zonebook API", "1.0.0")
	api := humachi.New(r, config)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	huma.Get(api, "/reservations", reservationHandler.HandleList)
	huma.Post(api, "/reservations", reservationHandler.HandleCreate, func(o *huma.Operation) {
		o.DefaultStatus = http.StatusCreated
	})
	huma.Put(api, "/reservations/{id}", reservationHandler.HandleUpdate)
	huma.Delete(api, "/reservations/{id}", reservationHandler.HandleDelete, func(o *huma.Operation) {
		o.DefaultStatus = http.StatusNoContent
	})
}

// requestLogger logs one structured line per request.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
