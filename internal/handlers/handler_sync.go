package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sunrisehms/folio_ledger_app/internal/core/ports/services"
	"github.com/sunrisehms/folio_ledger_app/internal/middleware"
)

// syncHandler exposes the offline queue state and a manual replay trigger.
type syncHandler struct {
	syncService portssvc.SyncSvcFacade
}

// newSyncHandler creates a new syncHandler.
func newSyncHandler(syncService portssvc.SyncSvcFacade) *syncHandler {
	return &syncHandler{syncService: syncService}
}

// registerSyncRoutes wires the sync routes into the authenticated group.
func registerSyncRoutes(rg *gin.RouterGroup, syncSvc portssvc.SyncSvcFacade) {
	h := newSyncHandler(syncSvc)

	sync := rg.Group("/sync")
	{
		sync.GET("/status", h.status)
		sync.POST("/replay", h.replay)
	}
}

// status godoc
// @Summary Report offline queue status
// @Description Reports how many captured operations are waiting to sync and the age of the oldest.
// @Tags sync
// @Produce  json
// @Success 200 {object} dto.SyncStatusResponse
// @Failure 500 {object} map[string]string "Failed to read queue status"
// @Router /sync/status [get]
func (h *syncHandler) status(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	status, err := h.syncService.Status(c.Request.Context())
	if err != nil {
		logger.Error("Failed to read sync status", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read queue status"})
		return
	}

	c.JSON(http.StatusOK, status)
}

// replay godoc
// @Summary Replay queued offline operations
// @Description Pushes captured operations to the store in strict enqueue order, halting at the first failure. The background replayer does the same on an interval; this endpoint forces a pass now.
// @Tags sync
// @Produce  json
// @Success 200 {object} dto.ReplayResultResponse
// @Failure 500 {object} map[string]string "Replay pass failed"
// @Router /sync/replay [post]
func (h *syncHandler) replay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	result, err := h.syncService.Replay(c.Request.Context())
	if err != nil {
		logger.Error("Replay pass failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Replay pass failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}
