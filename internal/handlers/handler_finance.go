package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rumahamal/ref26-backend/internal/apperrors"
	portssvc "github.com/rumahamal/ref26-backend/internal/core/ports/services"
	"github.com/rumahamal/ref26-backend/internal/dto"
	"github.com/rumahamal/ref26-backend/internal/middleware"
)

// financeHandler handles the ledger upload, listing and validation endpoints.
type financeHandler struct {
	ingestService   portssvc.IngestSvcFacade
	donationService portssvc.DonationSvcFacade
}

func newFinanceHandler(is portssvc.IngestSvcFacade, ds portssvc.DonationSvcFacade) *financeHandler {
	return &financeHandler{ingestService: is, donationService: ds}
}

// registerFinanceRoutes registers the ledger routes. Uploading needs the
// finance desk session; the validation operations need the validation desk
// session.
func registerFinanceRoutes(rg *gin.RouterGroup, ingestService portssvc.IngestSvcFacade, donationService portssvc.DonationSvcFacade, validasiOnly, uploadOnly gin.HandlerFunc) {
	h := newFinanceHandler(ingestService, donationService)

	rg.POST("/upload", uploadOnly, h.uploadCSV)
	rg.GET("/all-finance-data", h.listFinanceData)
	rg.POST("/edit-transaction", validasiOnly, h.editTransaction)
	rg.POST("/submit-validation", validasiOnly, h.submitValidation)
	rg.POST("/reject-transaction", validasiOnly, h.rejectTransaction)
}

// uploadCSV godoc
// @Summary Upload a ledger CSV
// @Description Parses a bank export CSV and inserts its rows as pending donations.
// @Tags finance
// @Accept mpfd
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} dto.UploadCSVResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /upload [post]
func (h *financeHandler) uploadCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "No file uploaded"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	inserted, err := h.ingestService.IngestCSV(c.Request.Context(), file)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyFile) || errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Rejected CSV upload", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid CSV file", Details: err.Error()})
			return
		}
		logger.Error("Failed to ingest CSV", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to process CSV", Details: err.Error()})
		return
	}

	logger.Info("CSV ingested", slog.Int("rows_inserted", inserted), slog.String("file_name", fileHeader.Filename))
	c.JSON(http.StatusOK, dto.UploadCSVResponse{Message: "CSV processed successfully", RowsInserted: inserted})
}

// listFinanceData godoc
// @Summary List the donation ledger
// @Description Returns every ledger row with its validation state, newest first.
// @Tags finance
// @Produce json
// @Success 200 {array} dto.FinanceRowResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /all-finance-data [get]
func (h *financeHandler) listFinanceData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	donations, err := h.donationService.ListDonations(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list donations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch finance data", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToFinanceRowResponses(donations))
}

// editTransaction godoc
// @Summary Edit a ledger row
// @Description Overwrites the date, donor, description and amount of one row.
// @Tags finance
// @Accept json
// @Produce json
// @Param transaction body dto.EditTransactionRequest true "Row fields"
// @Success 200 {object} dto.SimpleResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /edit-transaction [post]
func (h *financeHandler) editTransaction(c *gin.Context) {
	var req dto.EditTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	err := h.donationService.EditDonation(c.Request.Context(), req)
	h.respondMutation(c, err, "Transaction updated")
}

// submitValidation godoc
// @Summary Validate a ledger row
// @Description Applies the classification fields and marks the row validated.
// @Tags finance
// @Accept json
// @Produce json
// @Param validation body dto.SubmitValidationRequest true "Classification fields"
// @Success 200 {object} dto.SimpleResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /submit-validation [post]
func (h *financeHandler) submitValidation(c *gin.Context) {
	var req dto.SubmitValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	err := h.donationService.SubmitValidation(c.Request.Context(), req)
	h.respondMutation(c, err, "Validation saved")
}

// rejectTransaction godoc
// @Summary Reject a ledger row
// @Description Marks the row rejected, or with undo returns it to pending.
// @Tags finance
// @Accept json
// @Produce json
// @Param rejection body dto.RejectTransactionRequest true "Row id and undo flag"
// @Success 200 {object} dto.SimpleResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reject-transaction [post]
func (h *financeHandler) rejectTransaction(c *gin.Context) {
	var req dto.RejectTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	err := h.donationService.RejectDonation(c.Request.Context(), req.ID, req.Undo)
	h.respondMutation(c, err, "Transaction status updated")
}

// respondMutation maps a validation desk mutation result onto the wire.
func (h *financeHandler) respondMutation(c *gin.Context, err error, message string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.SimpleResultResponse{Success: true, Message: message})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Rejected ledger mutation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Ledger row not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Transaction not found"})
	default:
		logger.Error("Ledger mutation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update transaction", Details: err.Error()})
	}
}
