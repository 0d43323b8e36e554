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

// paymentHandler handles HTTP requests related to payments.
type paymentHandler struct {
	syncService portssvc.SyncSvcFacade
}

// newPaymentHandler creates a new paymentHandler.
func newPaymentHandler(syncService portssvc.SyncSvcFacade) *paymentHandler {
	return &paymentHandler{syncService: syncService}
}

// registerPaymentRoutes wires the payment routes into the authenticated group.
func registerPaymentRoutes(rg *gin.RouterGroup, syncSvc portssvc.SyncSvcFacade) {
	h := newPaymentHandler(syncSvc)
	rg.POST("/folios/:folioID/payments", h.addPayment)
}

// addPayment godoc
// @Summary Record a payment against a folio
// @Description Records a payment on an OPEN or PART_PAID folio. A payment that settles the balance closes the folio and emits its invoice in the same transaction. Captured locally when the store is unreachable.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   folioID path string true "Folio ID"
// @Param   payment body dto.AddPaymentRequest true "Payment"
// @Success 200 {object} dto.PaymentResultResponse
// @Success 202 {object} dto.PaymentResultResponse "Captured for later sync"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Folio not found"
// @Failure 409 {object} map[string]string "Folio is already settled"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Router /folios/{folioID}/payments [post]
func (h *paymentHandler) addPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	folioID := c.Param("folioID")

	req := dto.AddPaymentRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for addPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	outcome, queued, err := h.syncService.SubmitPayment(c.Request.Context(), folioID, req, actor)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Folio not found"})
		case errors.Is(err, apperrors.ErrConflict):
			logger.Warn("Payment rejected on settled folio", slog.String("folio_id", folioID))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to record payment", slog.String("folio_id", folioID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}

	if queued {
		c.JSON(http.StatusAccepted, dto.PaymentResultResponse{Queued: true})
		return
	}

	resp := dto.PaymentResultResponse{
		PaymentID:     outcome.Payment.PaymentID,
		NewStatus:     outcome.NewStatus,
		PaymentStatus: outcome.PaymentStatus,
		Balance:       outcome.Balance,
	}
	if outcome.Invoice != nil {
		resp.InvoiceID = &outcome.Invoice.InvoiceID
		resp.InvoiceNumber = &outcome.Invoice.InvoiceNumber
	}

	logger.Info("Payment recorded", slog.String("folio_id", folioID), slog.String("new_status", string(outcome.NewStatus)))
	c.JSON(http.StatusOK, resp)
}
