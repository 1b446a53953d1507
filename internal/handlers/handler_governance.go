package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/backoffice_governance/internal/core/ports/services"
	"github.com/SscSPs/backoffice_governance/internal/dto"
	"github.com/SscSPs/backoffice_governance/internal/middleware"
	"github.com/gin-gonic/gin"
)

// governanceHandler handles lifecycle transitions, creation checks and ledger validation.
type governanceHandler struct {
	governanceService portssvc.GovernanceSvcFacade
}

// RegisterGovernanceRoutes registers the document and ledger routes.
func RegisterGovernanceRoutes(rg *gin.RouterGroup, governanceService portssvc.GovernanceSvcFacade) {
	h := &governanceHandler{governanceService: governanceService}

	documents := rg.Group("/documents")
	{
		documents.POST("/create-checks", h.checkCreate)
		documents.POST("/:documentID/transitions", h.transitionDocument)
	}
	rg.POST("/ledger/validate", h.validateLedger)
}

// transitionDocument godoc
// @Summary Run a lifecycle transition
// @Description Applies SUBMIT, REVIEW, APPROVE, REJECT, RETURN, POST or REVERSE to a document after permission, segregation-of-duties, period and ledger checks.
// @Tags documents
// @Accept json
// @Produce json
// @Param documentID path string true "Document ID"
// @Param request body dto.TransitionRequest true "Transition"
// @Success 200 {object} dto.TransitionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Access denied or SoD violation"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Failure 409 {object} dto.ErrorResponse "Period not open, invalid transition or concurrent update"
// @Failure 422 {object} dto.ErrorResponse "Ledger or tax validation failed"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /documents/{documentID}/transitions [post]
func (h *governanceHandler) transitionDocument(c *gin.Context) {
	userID, tenantID, ok := principal(c)
	if !ok {
		return
	}
	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	documentID := c.Param("documentID")

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received transition request", slog.String("document_id", documentID), slog.String("action", req.Action))

	result, err := h.governanceService.TransitionDocument(c.Request.Context(), tenantID, userID, documentID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransitionResponse(*result))
}

// checkCreate godoc
// @Summary Check whether a document may be created
// @Description Runs the create permission and, for period-gated document types, the open-period check.
// @Tags documents
// @Accept json
// @Produce json
// @Param request body dto.CreateCheckRequest true "Document type and period"
// @Success 200 {object} dto.CreateCheckResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 409 {object} dto.ErrorResponse "Period not open"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /documents/create-checks [post]
func (h *governanceHandler) checkCreate(c *gin.Context) {
	userID, tenantID, ok := principal(c)
	if !ok {
		return
	}
	var req dto.CreateCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.governanceService.CheckCreate(c.Request.Context(), tenantID, userID, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CreateCheckResponse{Allowed: true})
}

// validateLedger godoc
// @Summary Validate a candidate posting
// @Description Dry run of the balance, account, dimension and tax integrity checks. Nothing is persisted.
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body dto.ValidateLedgerRequest true "Candidate lines"
// @Success 200 {object} dto.ValidateLedgerResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 422 {object} dto.ErrorResponse "Unbalanced, missing dimension, account not postable or tax mismatch"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /ledger/validate [post]
func (h *governanceHandler) validateLedger(c *gin.Context) {
	_, tenantID, ok := principal(c)
	if !ok {
		return
	}
	var req dto.ValidateLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	balance, err := h.governanceService.ValidateLedger(c.Request.Context(), tenantID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ValidateLedgerResponse{Balanced: true, Balance: dto.ToBalanceResponse(*balance)})
}
