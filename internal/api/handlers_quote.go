package api

import (
	"net/http"

	respond "github.com/wellnessio/wellness-backend/internal/api/respond"
	"github.com/wellnessio/wellness-backend/internal/quotes"
)

type QuoteHandler struct {
	provider *quotes.Provider
}

func NewQuoteHandler(provider *quotes.Provider) *QuoteHandler {
	return &QuoteHandler{provider: provider}
}

// GetQuote GET /quote
// Forwards to the upstream quote provider and returns its payload
// verbatim; any upstream failure or malformed shape becomes a 500 with
// a diagnostic message. The mobile client falls back to a locally held
// quote on its side.
func (h *QuoteHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	q, err := h.provider.Random(r.Context())
	if err != nil {
		respond.WriteInternalError(w, "unable to fetch quote: "+err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, q)
}
