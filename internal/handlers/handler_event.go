package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/rumahamal/ref26-backend/internal/core/ports/services"
	"github.com/rumahamal/ref26-backend/internal/dto"
	"github.com/rumahamal/ref26-backend/internal/middleware"
)

// eventHandler handles event submission and listing.
type eventHandler struct {
	eventService portssvc.EventSvcFacade
}

func newEventHandler(es portssvc.EventSvcFacade) *eventHandler {
	return &eventHandler{eventService: es}
}

// registerEventRoutes registers the event routes. Submitting needs the
// finance desk session; the listing stays open.
func registerEventRoutes(rg *gin.RouterGroup, eventService portssvc.EventSvcFacade, uploadOnly gin.HandlerFunc) {
	h := newEventHandler(eventService)

	rg.POST("/submit-event", uploadOnly, h.submitEvent)
	rg.GET("/all-event-data", h.listEvents)
}

// submitEvent godoc
// @Summary Log a fundraising event
// @Description Stores an event record with its documentation attachments. Attachments are uploaded best-effort; the response lists the per-file outcome.
// @Tags events
// @Accept mpfd
// @Produce json
// @Param nama_event formData string true "Event name"
// @Param lokasi formData string false "Location"
// @Param tanggal_pelaksanaan formData string false "Event date"
// @Param peserta formData string false "Participants"
// @Param pelaksana_event formData string false "Executing organ"
// @Param pic_report formData string false "Reporting PIC"
// @Param jumlah_dokumentasi formData int false "Number of dokumentasi_N file fields"
// @Success 200 {object} dto.SubmitRecordResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /submit-event [post]
func (h *eventHandler) submitEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SubmitEventRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid form data: nama_event is required"})
		return
	}

	files, err := readIndexedFiles(c, "dokumentasi", "jumlah_dokumentasi")
	if err != nil {
		logger.Warn("Failed to read event attachments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid attachment", Details: err.Error()})
		return
	}

	results, err := h.eventService.SubmitEvent(c.Request.Context(), req, files)
	if err != nil {
		logger.Error("Failed to save event", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to save event", Details: err.Error()})
		return
	}

	logger.Info("Event recorded", slog.String("nama_event", req.NamaEvent), slog.Int("attachments", len(results)))
	c.JSON(http.StatusOK, dto.SubmitRecordResponse{
		Message:     "Event recorded",
		Success:     true,
		Attachments: results,
	})
}

// listEvents godoc
// @Summary List logged events
// @Description Returns every event record, newest first.
// @Tags events
// @Produce json
// @Success 200 {array} dto.EventResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /all-event-data [get]
func (h *eventHandler) listEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	events, err := h.eventService.ListEvents(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list events", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch event data", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}
