package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/backoffice_governance/internal/core/ports/services"
	"github.com/SscSPs/backoffice_governance/internal/dto"
	"github.com/gin-gonic/gin"
)

type auditHandler struct {
	auditService portssvc.AuditReaderSvc
}

// RegisterAuditRoutes registers the audit record listing.
func RegisterAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditReaderSvc) {
	h := &auditHandler{auditService: auditService}
	rg.GET("/audit-records", h.listAuditRecords)
}

// listAuditRecords godoc
// @Summary List audit records
// @Description Lists governance decisions of the caller's tenant, newest first.
// @Tags audit
// @Produce json
// @Param documentId query string false "Filter by document"
// @Param actorId query string false "Filter by actor"
// @Param kind query string false "PERMISSION, SOD, PERIOD, LEDGER, TAX or LIFECYCLE"
// @Param outcome query string false "ALLOWED or DENIED"
// @Param limit query int false "Page size (1-100, default 20)"
// @Param nextToken query string false "Cursor returned by the previous page"
// @Success 200 {object} dto.ListAuditRecordsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /audit-records [get]
func (h *auditHandler) listAuditRecords(c *gin.Context) {
	_, tenantID, ok := principal(c)
	if !ok {
		return
	}
	var params dto.ListAuditRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.auditService.ListAuditRecords(c.Request.Context(), tenantID, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
