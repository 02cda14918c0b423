package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/psecuresystem/NFT-Marketplace/pkg/errhttp"
	"github.com/psecuresystem/NFT-Marketplace/pkg/httpx"
	pkgvalidator "github.com/psecuresystem/NFT-Marketplace/pkg/validator"
	appsvcs "github.com/psecuresystem/NFT-Marketplace/services/marketplace/application/services"
	"github.com/psecuresystem/NFT-Marketplace/services/marketplace/domain/models"
)

// PurchaseRequest is the request body for POST /marketplace/items/{id}/purchase.
// Paid carries no required tag: a zero payment is a legal request that the
// ledger rejects with 402.
type PurchaseRequest struct {
	Paid  uint64    `json:"paid"  example:"202"`
	Buyer uuid.UUID `json:"buyer" validate:"required" example:"770e8400-e29b-41d4-a716-446655440000"`
} // @name PurchaseRequest

// PurchaseResponse is returned on successful purchase.
type PurchaseResponse struct {
	Item  ListingResponse `json:"item"`
	Buyer uuid.UUID       `json:"buyer" example:"770e8400-e29b-41d4-a716-446655440000"`
} // @name PurchaseResponse

// PostPurchaseHandler handles POST /marketplace/items/{id}/purchase requests.
type PostPurchaseHandler struct {
	svc *appsvcs.Services
}

// NewPostPurchaseHandler returns a PostPurchaseHandler backed by the given services.
func NewPostPurchaseHandler(svc *appsvcs.Services) *PostPurchaseHandler {
	return &PostPurchaseHandler{svc: svc}
}

// Execute purchases a listed item.
//
//	@Summary		Purchase item
//	@Description	Settles a sale: pays the seller and fee account, refunds overpayment, and releases the token to the buyer
//	@Tags			marketplace
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int				true	"Item ID"
//	@Param			request	body		PurchaseRequest	true	"Purchase request"
//	@Success		200		{object}	PurchaseResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		402		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/marketplace/items/{id}/purchase [post]
func (h *PostPurchaseHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDParam(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[PurchaseRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Marketplace.Purchase(r.Context(), itemID, models.Amount(req.Paid), req.Buyer)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, PurchaseResponse{
		Item:  listingResponse(item),
		Buyer: req.Buyer,
	})
}

// itemIDParam parses the {id} path parameter. Writes a 400 and returns
// false on malformed input; range checking is the ledger's job.
func itemIDParam(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "item id must be a positive integer")
		return 0, false
	}
	return id, true
}
