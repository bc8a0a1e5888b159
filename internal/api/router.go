package api

import (
	"github.com/gorilla/mux"

	"github.com/wellnessio/wellness-backend/internal/api/recovery"
	"github.com/wellnessio/wellness-backend/internal/quotes"
	"github.com/wellnessio/wellness-backend/internal/services"
)

// NewRouter creates the HTTP router with all API routes.
func NewRouter(svc *services.EntryService, quoteProvider *quotes.Provider) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares
	router.Use(recovery.Middleware)

	entryHandler := NewEntryHandler(svc)
	quoteHandler := NewQuoteHandler(quoteProvider)
	healthHandler := NewHealthHandler()

	// Health endpoint
	router.HandleFunc("/health", healthHandler.CheckHealth).Methods("GET")

	// Entry endpoints
	router.HandleFunc("/entries", entryHandler.ListEntries).Methods("GET")
	router.HandleFunc("/entries", entryHandler.CreateEntry).Methods("POST")
	router.HandleFunc("/entries/{entryId}", entryHandler.UpdateEntry).Methods("PUT")
	router.HandleFunc("/entries/{entryId}", entryHandler.DeleteEntry).Methods("DELETE")

	// Quote proxy
	router.HandleFunc("/quote", quoteHandler.GetQuote).Methods("GET")

	return router
}
