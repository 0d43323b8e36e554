package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunrisehms/folio_ledger_app/internal/apperrors"
	portssvc "github.com/sunrisehms/folio_ledger_app/internal/core/ports/services"
	"github.com/sunrisehms/folio_ledger_app/internal/dto"
	"github.com/sunrisehms/folio_ledger_app/internal/middleware"
)

// folioHandler handles HTTP requests related to folios.
type folioHandler struct {
	folioService portssvc.FolioSvcFacade
	syncService  portssvc.SyncSvcFacade
}

// newFolioHandler creates a new folioHandler.
func newFolioHandler(folioService portssvc.FolioSvcFacade, syncService portssvc.SyncSvcFacade) *folioHandler {
	return &folioHandler{
		folioService: folioService,
		syncService:  syncService,
	}
}

// registerFolioRoutes wires the folio routes into the authenticated group.
func registerFolioRoutes(rg *gin.RouterGroup, folioSvc portssvc.FolioSvcFacade, syncSvc portssvc.SyncSvcFacade) {
	h := newFolioHandler(folioSvc, syncSvc)

	folios := rg.Group("/folios")
	{
		folios.POST("/bar-sale", h.createBarSale)
		folios.POST("/room", h.createRoomFolio)
		folios.POST("/bar", h.openBarFolio)
		folios.GET("", h.listFolios)
		folios.GET("/:folioID", h.getFolio)
		folios.POST("/:folioID/items", h.addLineItem)
		folios.POST("/:folioID/void", h.voidFolio)
		folios.POST("/:folioID/legacy-links", h.linkSale)
	}
	rg.GET("/rooms/:roomID/folio", h.getActiveFolioForRoom)
}

// createBarSale godoc
// @Summary Record an instant bar sale
// @Description Creates a settled BAR folio with its line items, payment and invoice. Idempotent on saleId; captured locally when the store is unreachable.
// @Tags folios
// @Accept  json
// @Produce  json
// @Param   sale body dto.CreateBarSaleRequest true "Bar sale"
// @Success 200 {object} dto.CreateFolioResponse "Existing records returned for a replayed saleId"
// @Success 201 {object} dto.CreateFolioResponse
// @Success 202 {object} dto.CreateFolioResponse "Captured for later sync"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 500 {object} map[string]string "Failed to record bar sale"
// @Router /folios/bar-sale [post]
func (h *folioHandler) createBarSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.CreateBarSaleRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createBarSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, queued, err := h.syncService.SubmitBarSale(c.Request.Context(), req, actor)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recording bar sale", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record bar sale", slog.String("sale_id", req.SaleID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record bar sale"})
		}
		return
	}

	if queued {
		c.JSON(http.StatusAccepted, dto.CreateFolioResponse{
			FolioID: "FOLIO-BAR-" + req.SaleID,
			Queued:  true,
		})
		return
	}

	resp := dto.CreateFolioResponse{
		FolioID:     result.Folio.FolioID,
		FolioNumber: result.Folio.FolioNumber,
	}
	if result.Invoice != nil {
		resp.InvoiceID = &result.Invoice.InvoiceID
		resp.InvoiceNumber = &result.Invoice.InvoiceNumber
	}

	status := http.StatusCreated
	if !result.Created {
		status = http.StatusOK
	}
	logger.Info("Bar sale recorded", slog.String("folio_id", resp.FolioID), slog.Bool("created", result.Created))
	c.JSON(status, resp)
}

// createRoomFolio godoc
// @Summary Open a room folio at check-in
// @Description Opens a ROOM folio with the initial room charge (nights x rate). Fails if the room already has an active folio.
// @Tags folios
// @Accept  json
// @Produce  json
// @Param   folio body dto.CreateRoomFolioRequest true "Check-in details"
// @Success 201 {object} dto.CreateFolioResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 409 {object} map[string]string "Room already has an active folio"
// @Failure 500 {object} map[string]string "Failed to create room folio"
// @Router /folios/room [post]
func (h *folioHandler) createRoomFolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.CreateRoomFolioRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createRoomFolio", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.folioService.CreateRoomFolio(c.Request.Context(), req, actor)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrConflict):
			logger.Warn("Room already occupied", slog.String("room_id", req.RoomID))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create room folio", slog.String("room_id", req.RoomID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create room folio"})
		}
		return
	}

	logger.Info("Room folio created", slog.String("folio_id", result.Folio.FolioID), slog.String("room_id", req.RoomID))
	c.JSON(http.StatusCreated, dto.CreateFolioResponse{
		FolioID:     result.Folio.FolioID,
		FolioNumber: result.Folio.FolioNumber,
		LineItemIDs: []string{result.RoomChargeItemID},
	})
}

// openBarFolio godoc
// @Summary Open a running-tab bar folio
// @Description Opens an empty BAR folio for a tab that settles later.
// @Tags folios
// @Accept  json
// @Produce  json
// @Param   folio body dto.OpenBarFolioRequest true "Tab details"
// @Success 201 {object} dto.CreateFolioResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 500 {object} map[string]string "Failed to open folio"
// @Router /folios/bar [post]
func (h *folioHandler) openBarFolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.OpenBarFolioRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for openBarFolio", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	folio, err := h.folioService.OpenBarFolio(c.Request.Context(), req, actor)
	if err != nil {
		logger.Error("Failed to open bar folio", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open folio"})
		return
	}

	logger.Info("Bar folio opened", slog.String("folio_id", folio.FolioID))
	c.JSON(http.StatusCreated, dto.CreateFolioResponse{
		FolioID:     folio.FolioID,
		FolioNumber: folio.FolioNumber,
	})
}

// listFolios godoc
// @Summary List folios
// @Description Retrieves a filtered, token-paginated folio list, newest first.
// @Tags folios
// @Produce  json
// @Param   status query string false "Filter by folio status"
// @Param   folioType query string false "Filter by folio type"
// @Param   serviceCenter query string false "Filter by service center"
// @Param   limit query int false "Page size (default 20)"
// @Param   nextToken query string false "Continuation token"
// @Success 200 {object} dto.ListFoliosResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Failed to list folios"
// @Router /folios [get]
func (h *folioHandler) listFolios(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params := dto.ListFoliosParams{}
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.folioService.ListFolios(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list folios", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list folios"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getFolio godoc
// @Summary Get a folio with its line items and payments
// @Tags folios
// @Produce  json
// @Param   folioID path string true "Folio ID"
// @Success 200 {object} dto.FolioDetailResponse
// @Failure 404 {object} map[string]string "Folio not found"
// @Failure 500 {object} map[string]string "Failed to retrieve folio"
// @Router /folios/{folioID} [get]
func (h *folioHandler) getFolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	folioID := c.Param("folioID")

	folio, items, payments, err := h.folioService.GetFolioDetail(c.Request.Context(), folioID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Folio not found"})
			return
		}
		logger.Error("Failed to get folio", slog.String("folio_id", folioID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve folio"})
		return
	}

	c.JSON(http.StatusOK, dto.FolioDetailResponse{
		Folio:     dto.ToFolioResponse(folio),
		LineItems: dto.ToLineItemResponses(items),
		Payments:  dto.ToPaymentResponses(payments),
	})
}

// addLineItem godoc
// @Summary Append a charge to a folio
// @Description Adds a line item to an OPEN or PART_PAID folio. Derived amounts are recomputed server-side. Captured locally when the store is unreachable.
// @Tags folios
// @Accept  json
// @Produce  json
// @Param   folioID path string true "Folio ID"
// @Param   item body dto.AddLineItemRequest true "Charge"
// @Success 201 {object} dto.LineItemResponse
// @Success 202 {object} map[string]bool "Captured for later sync"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Folio not found"
// @Failure 409 {object} map[string]string "Folio no longer accepts charges"
// @Failure 500 {object} map[string]string "Failed to add line item"
// @Router /folios/{folioID}/items [post]
func (h *folioHandler) addLineItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	folioID := c.Param("folioID")

	req := dto.AddLineItemRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for addLineItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	item, queued, err := h.syncService.SubmitCharge(c.Request.Context(), folioID, req, actor)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Folio not found"})
		case errors.Is(err, apperrors.ErrConflict):
			logger.Warn("Charge rejected on settled folio", slog.String("folio_id", folioID))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to add line item", slog.String("folio_id", folioID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add line item"})
		}
		return
	}

	if queued {
		c.JSON(http.StatusAccepted, gin.H{"queued": true})
		return
	}

	logger.Info("Line item added", slog.String("folio_id", folioID), slog.String("item_id", item.ItemID))
	c.JSON(http.StatusCreated, dto.ToLineItemResponse(*item))
}

// voidFolio godoc
// @Summary Void an open folio
// @Description Cancels an OPEN folio before any payment was taken. Irreversible; no invoice is produced.
// @Tags folios
// @Accept  json
// @Produce  json
// @Param   folioID path string true "Folio ID"
// @Param   void body dto.VoidFolioRequest true "Void reason"
// @Success 200 {object} map[string]string
// @Success 202 {object} map[string]bool "Captured for later sync"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Folio not found"
// @Failure 409 {object} map[string]string "Folio is not OPEN"
// @Failure 500 {object} map[string]string "Failed to void folio"
// @Router /folios/{folioID}/void [post]
func (h *folioHandler) voidFolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	folioID := c.Param("folioID")

	req := dto.VoidFolioRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	queued, err := h.syncService.SubmitVoid(c.Request.Context(), folioID, req, actor)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Folio not found"})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to void folio", slog.String("folio_id", folioID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to void folio"})
		}
		return
	}

	if queued {
		c.JSON(http.StatusAccepted, gin.H{"queued": true})
		return
	}

	logger.Info("Folio voided", slog.String("folio_id", folioID))
	c.JSON(http.StatusOK, gin.H{"status": "voided"})
}

// linkSale godoc
// @Summary Link a legacy sale to a folio
// @Description Stamps a legacy v1 sales record with the folio that absorbed it. Migration-period bridge.
// @Tags folios
// @Accept  json
// @Produce  json
// @Param   folioID path string true "Folio ID"
// @Param   link body dto.LinkSaleRequest true "Sale to link"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Folio not found"
// @Failure 500 {object} map[string]string "Failed to link sale"
// @Router /folios/{folioID}/legacy-links [post]
func (h *folioHandler) linkSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	folioID := c.Param("folioID")

	req := dto.LinkSaleRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	if err := h.folioService.LinkSaleToFolio(c.Request.Context(), req.SalesID, folioID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Folio not found"})
			return
		}
		logger.Error("Failed to link sale", slog.String("sales_id", req.SalesID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to link sale"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "linked"})
}

// getActiveFolioForRoom godoc
// @Summary Get the active folio for a room
// @Description Returns the single OPEN ROOM folio for a room, if any.
// @Tags folios
// @Produce  json
// @Param   roomID path string true "Room ID"
// @Success 200 {object} dto.FolioResponse
// @Failure 404 {object} map[string]string "No active folio for room"
// @Failure 500 {object} map[string]string "Failed to retrieve folio"
// @Router /rooms/{roomID}/folio [get]
func (h *folioHandler) getActiveFolioForRoom(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	roomID := c.Param("roomID")

	folio, err := h.folioService.GetActiveFolioForRoom(c.Request.Context(), roomID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active folio for room"})
			return
		}
		logger.Error("Failed to get active folio for room", slog.String("room_id", roomID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve folio"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFolioResponse(folio))
}
