package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/psecuresystem/NFT-Marketplace/pkg/httpx"
	pkgvalidator "github.com/psecuresystem/NFT-Marketplace/pkg/validator"
	appsvcs "github.com/psecuresystem/NFT-Marketplace/services/marketplace/application/services"
)

// The registry endpoints drive the reference in-memory asset registry. A
// deployment backed by a real token service would not mount them.

// MintTokenRequest is the request body for POST /registry/tokens.
type MintTokenRequest struct {
	Collection uuid.UUID `json:"collection" validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	TokenID    uint64    `json:"token_id"   validate:"required" example:"1"`
	Owner      uuid.UUID `json:"owner"      validate:"required" example:"660e8400-e29b-41d4-a716-446655440000"`
} // @name MintTokenRequest

// ApprovalRequest is the request body for POST /registry/approvals.
type ApprovalRequest struct {
	Collection uuid.UUID `json:"collection" validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Owner      uuid.UUID `json:"owner"      validate:"required" example:"660e8400-e29b-41d4-a716-446655440000"`
	Approved   bool      `json:"approved"   example:"true"`
} // @name ApprovalRequest

// RegistryHandler handles the reference asset-registry endpoints.
type RegistryHandler struct {
	svc *appsvcs.Services
}

// NewRegistryHandler returns a RegistryHandler backed by the given services.
func NewRegistryHandler(svc *appsvcs.Services) *RegistryHandler {
	return &RegistryHandler{svc: svc}
}

// Mint assigns initial custody of a token.
//
//	@Summary		Mint token
//	@Description	Registers a token with its initial custodian in the reference registry
//	@Tags			registry
//	@Accept			json
//	@Produce		json
//	@Param			request	body	MintTokenRequest	true	"Mint request"
//	@Success		201
//	@Failure		409	{object}	ErrorResponse
//	@Router			/registry/tokens [post]
func (h *RegistryHandler) Mint(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[MintTokenRequest](w, r)
	if !ok {
		return
	}

	if err := h.svc.Marketplace.MintToken(r.Context(), req.Collection, req.TokenID, req.Owner); err != nil {
		httpx.JSONError(w, http.StatusConflict, err.Error())
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// Approve grants or revokes the marketplace's escrow approval.
//
//	@Summary		Set marketplace approval
//	@Description	Grants or revokes the marketplace's right to escrow the owner's tokens in a collection
//	@Tags			registry
//	@Accept			json
//	@Produce		json
//	@Param			request	body	ApprovalRequest	true	"Approval request"
//	@Success		204
//	@Router			/registry/approvals [post]
func (h *RegistryHandler) Approve(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ApprovalRequest](w, r)
	if !ok {
		return
	}

	h.svc.Marketplace.ApproveMarketplace(r.Context(), req.Collection, req.Owner, req.Approved)
	w.WriteHeader(http.StatusNoContent)
}
