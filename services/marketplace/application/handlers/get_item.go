package handlers

import (
	"net/http"

	"github.com/psecuresystem/NFT-Marketplace/pkg/errhttp"
	"github.com/psecuresystem/NFT-Marketplace/pkg/httpx"
	appsvcs "github.com/psecuresystem/NFT-Marketplace/services/marketplace/application/services"
)

// ItemsResponse is returned for the full item table snapshot.
type ItemsResponse struct {
	Items []ListingResponse `json:"items"`
	Total int               `json:"total" example:"2"`
} // @name ItemsResponse

// GetItemHandler handles GET /marketplace/items/{id} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute fetches one item.
//
//	@Summary		Get item
//	@Description	Returns one listing by item id
//	@Tags			marketplace
//	@Produce		json
//	@Param			id	path		int	true	"Item ID"
//	@Success		200	{object}	ListingResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/marketplace/items/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDParam(w, r)
	if !ok {
		return
	}

	item, err := h.svc.Marketplace.GetItem(r.Context(), itemID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, listingResponse(item))
}

// GetItemsHandler handles GET /marketplace/items requests.
type GetItemsHandler struct {
	svc *appsvcs.Services
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given services.
func NewGetItemsHandler(svc *appsvcs.Services) *GetItemsHandler {
	return &GetItemsHandler{svc: svc}
}

// Execute returns the whole item table in listing order.
//
//	@Summary		List items
//	@Description	Returns all listings, oldest first
//	@Tags			marketplace
//	@Produce		json
//	@Success		200	{object}	ItemsResponse
//	@Router			/marketplace/items [get]
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items := h.svc.Marketplace.ListItems(r.Context())

	resp := ItemsResponse{Items: make([]ListingResponse, len(items)), Total: len(items)}
	for i, item := range items {
		resp.Items[i] = listingResponse(item)
	}
	httpx.JSON(w, http.StatusOK, resp)
}
