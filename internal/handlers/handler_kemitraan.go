package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/rumahamal/ref26-backend/internal/core/ports/services"
	"github.com/rumahamal/ref26-backend/internal/dto"
	"github.com/rumahamal/ref26-backend/internal/middleware"
)

// kemitraanHandler handles partnership submission and listing.
type kemitraanHandler struct {
	kemitraanService portssvc.KemitraanSvcFacade
}

func newKemitraanHandler(ks portssvc.KemitraanSvcFacade) *kemitraanHandler {
	return &kemitraanHandler{kemitraanService: ks}
}

// registerKemitraanRoutes registers the kemitraan routes. Submitting needs
// the finance desk session; the listing stays open.
func registerKemitraanRoutes(rg *gin.RouterGroup, kemitraanService portssvc.KemitraanSvcFacade, uploadOnly gin.HandlerFunc) {
	h := newKemitraanHandler(kemitraanService)

	rg.POST("/submit-kemitraan", uploadOnly, h.submitKemitraan)
	rg.GET("/all-kemitraan-data", h.listKemitraan)
}

// submitKemitraan godoc
// @Summary Log a partnership
// @Description Stores a kemitraan record with its PKS contract and documentation attachments. Attachments are uploaded best-effort; the response lists the per-file outcome.
// @Tags kemitraan
// @Accept mpfd
// @Produce json
// @Param nama_mitra formData string true "Partner name"
// @Param tanggal_kerjasama formData string false "Agreement date"
// @Param pelaksana_event formData string false "Executing organ"
// @Param pic_report formData string false "Reporting PIC"
// @Param jumlah_pks formData int false "Number of pks_N file fields"
// @Param jumlah_dokumentasi formData int false "Number of dokumentasi_N file fields"
// @Success 200 {object} dto.SubmitRecordResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /submit-kemitraan [post]
func (h *kemitraanHandler) submitKemitraan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SubmitKemitraanRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid form data: nama_mitra is required"})
		return
	}

	pksFiles, err := readIndexedFiles(c, "pks", "jumlah_pks")
	if err != nil {
		logger.Warn("Failed to read PKS attachments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid attachment", Details: err.Error()})
		return
	}
	dokFiles, err := readIndexedFiles(c, "dokumentasi", "jumlah_dokumentasi")
	if err != nil {
		logger.Warn("Failed to read documentation attachments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid attachment", Details: err.Error()})
		return
	}

	results, err := h.kemitraanService.SubmitKemitraan(c.Request.Context(), req, pksFiles, dokFiles)
	if err != nil {
		logger.Error("Failed to save kemitraan record", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to save kemitraan record", Details: err.Error()})
		return
	}

	logger.Info("Kemitraan recorded", slog.String("nama_mitra", req.NamaMitra), slog.Int("attachments", len(results)))
	c.JSON(http.StatusOK, dto.SubmitRecordResponse{
		Message:     "Kemitraan recorded",
		Success:     true,
		Attachments: results,
	})
}

// listKemitraan godoc
// @Summary List logged partnerships
// @Description Returns every kemitraan record, newest first.
// @Tags kemitraan
// @Produce json
// @Success 200 {array} dto.KemitraanResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /all-kemitraan-data [get]
func (h *kemitraanHandler) listKemitraan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	partnerships, err := h.kemitraanService.ListPartnerships(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list kemitraan records", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch kemitraan data", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToKemitraanResponses(partnerships))
}
