package handlers

import (
	"net/http"

	"github.com/psecuresystem/NFT-Marketplace/pkg/errhttp"
	"github.com/psecuresystem/NFT-Marketplace/pkg/httpx"
	appsvcs "github.com/psecuresystem/NFT-Marketplace/services/marketplace/application/services"
)

// QuoteResponse is the buyer-facing total for an item.
type QuoteResponse struct {
	ItemID     uint64 `json:"item_id"     example:"1"`
	Total      uint64 `json:"total"       example:"202"`
	FeePercent uint64 `json:"fee_percent" example:"1"`
} // @name QuoteResponse

// GetQuoteHandler handles GET /marketplace/items/{id}/quote requests.
type GetQuoteHandler struct {
	svc *appsvcs.Services
}

// NewGetQuoteHandler returns a GetQuoteHandler backed by the given services.
func NewGetQuoteHandler(svc *appsvcs.Services) *GetQuoteHandler {
	return &GetQuoteHandler{svc: svc}
}

// Execute quotes the total price for an item.
//
//	@Summary		Quote item
//	@Description	Returns the amount a buyer must pay, price plus the flat fee
//	@Tags			marketplace
//	@Produce		json
//	@Param			id	path		int	true	"Item ID"
//	@Success		200	{object}	QuoteResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/marketplace/items/{id}/quote [get]
func (h *GetQuoteHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDParam(w, r)
	if !ok {
		return
	}

	total, err := h.svc.Marketplace.Quote(r.Context(), itemID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, QuoteResponse{
		ItemID:     itemID,
		Total:      uint64(total),
		FeePercent: h.svc.Marketplace.FeePercent(),
	})
}
