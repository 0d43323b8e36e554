package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
	portssvc "github.com/sunrisehms/folio_ledger_app/internal/core/ports/services"
	"github.com/sunrisehms/folio_ledger_app/internal/dto"
	"github.com/sunrisehms/folio_ledger_app/internal/middleware"
)

// auditHandler serves the compliance view of the audit trail.
type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

// newAuditHandler creates a new auditHandler.
func newAuditHandler(auditService portssvc.AuditSvcFacade) *auditHandler {
	return &auditHandler{auditService: auditService}
}

// registerAuditRoutes wires the audit routes into the authenticated group.
// Restricted to managers and admins.
func registerAuditRoutes(rg *gin.RouterGroup, auditSvc portssvc.AuditSvcFacade) {
	h := newAuditHandler(auditSvc)
	rg.GET("/audit-logs", middleware.RequireRole(domain.RoleManager, domain.RoleAdmin), h.listAuditLogs)
}

// listAuditLogs godoc
// @Summary List audit trail entries
// @Description Retrieves audit entries newest first with token pagination, optionally filtered to one entity. Managers and admins only.
// @Tags audit
// @Produce  json
// @Param   entityId query string false "Filter to one entity"
// @Param   limit query int false "Page size (default 50)"
// @Param   nextToken query string false "Continuation token"
// @Success 200 {object} dto.ListAuditLogsResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Failure 500 {object} map[string]string "Failed to list audit logs"
// @Router /audit-logs [get]
func (h *auditHandler) listAuditLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params := dto.ListAuditLogsParams{}
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.auditService.ListAuditLogs(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list audit logs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list audit logs"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
