package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/SscSPs/backoffice_governance/internal/apperrors"
	portssvc "github.com/SscSPs/backoffice_governance/internal/core/ports/services"
	"github.com/SscSPs/backoffice_governance/internal/dto"
	"github.com/gin-gonic/gin"
)

type identityHandler struct {
	identityService portssvc.IdentitySvc
}

// RegisterIdentityRoutes registers the deterministic identity route.
func RegisterIdentityRoutes(rg *gin.RouterGroup, identityService portssvc.IdentitySvc) {
	h := &identityHandler{identityService: identityService}
	rg.POST("/identities", h.buildIdentity)
}

// buildIdentity godoc
// @Summary Derive a deterministic identity
// @Description Canonicalizes a parameter object (sorted keys, normalized numbers) and returns its SHA-256 hash and stable entity id. firstSeen is false when the same identity was already issued for the tenant.
// @Tags identities
// @Accept json
// @Produce json
// @Param request body dto.IdentityRequest true "Parameter object"
// @Success 200 {object} dto.IdentityResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 422 {object} dto.ErrorResponse "Parameters cannot be canonicalized"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /identities [post]
func (h *identityHandler) buildIdentity(c *gin.Context) {
	_, tenantID, ok := principal(c)
	if !ok {
		return
	}
	var req dto.IdentityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if !bytes.HasPrefix(bytes.TrimSpace(req.Params), []byte("{")) {
		respondError(c, fmt.Errorf("%w: params must be a JSON object", apperrors.ErrValidation))
		return
	}

	id, firstSeen, err := h.identityService.BuildIdentity(c.Request.Context(), tenantID, req.Params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.IdentityResponse{
		EntityID:        id.EntityID,
		CanonicalString: id.CanonicalString,
		Hash:            id.Hash,
		FirstSeen:       firstSeen,
	})
}
