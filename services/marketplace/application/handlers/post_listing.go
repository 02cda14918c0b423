package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/psecuresystem/NFT-Marketplace/pkg/errhttp"
	"github.com/psecuresystem/NFT-Marketplace/pkg/httpx"
	pkgvalidator "github.com/psecuresystem/NFT-Marketplace/pkg/validator"
	appsvcs "github.com/psecuresystem/NFT-Marketplace/services/marketplace/application/services"
	"github.com/psecuresystem/NFT-Marketplace/services/marketplace/domain/models"
)

// CreateListingRequest is the request body for POST /marketplace/items.
type CreateListingRequest struct {
	Collection uuid.UUID `json:"collection" validate:"required"            example:"550e8400-e29b-41d4-a716-446655440000"`
	TokenID    uint64    `json:"token_id"   validate:"required"            example:"1"`
	Price      uint64    `json:"price"      validate:"required,gte=1"      example:"200"`
	Seller     uuid.UUID `json:"seller"     validate:"required"            example:"660e8400-e29b-41d4-a716-446655440000"`
} // @name CreateListingRequest

// ListingResponse is returned for a single marketplace item.
type ListingResponse struct {
	ItemID     uint64    `json:"item_id"    example:"1"`
	Collection uuid.UUID `json:"collection" example:"550e8400-e29b-41d4-a716-446655440000"`
	TokenID    uint64    `json:"token_id"   example:"1"`
	Price      uint64    `json:"price"      example:"200"`
	Seller     uuid.UUID `json:"seller"     example:"660e8400-e29b-41d4-a716-446655440000"`
	Sold       bool      `json:"sold"       example:"false"`
	ListedAt   time.Time `json:"listed_at"  example:"2024-01-15T10:30:00Z"`
} // @name ListingResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

// PostListingHandler handles POST /marketplace/items requests.
type PostListingHandler struct {
	svc *appsvcs.Services
}

// NewPostListingHandler returns a PostListingHandler backed by the given services.
func NewPostListingHandler(svc *appsvcs.Services) *PostListingHandler {
	return &PostListingHandler{svc: svc}
}

// Execute lists a token for sale.
//
//	@Summary		List item
//	@Description	Escrows a token with the marketplace and records a new listing
//	@Tags			marketplace
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateListingRequest	true	"Listing request"
//	@Success		201		{object}	ListingResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/marketplace/items [post]
func (h *PostListingHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateListingRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Marketplace.ListItem(r.Context(), req.Collection, req.TokenID, models.Amount(req.Price), req.Seller)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, listingResponse(item))
}

// listingResponse maps a domain item to its API representation.
func listingResponse(item models.Item) ListingResponse {
	return ListingResponse{
		ItemID:     item.ID,
		Collection: item.Collection,
		TokenID:    item.TokenID,
		Price:      uint64(item.Price.Amount()),
		Seller:     item.Seller,
		Sold:       item.Sold,
		ListedAt:   item.ListedAt,
	}
}
