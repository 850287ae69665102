package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/crime_radar/internal/config"
	"github.com/shenikar/crime_radar/internal/models"
	"github.com/shenikar/crime_radar/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	reportService service.ReportService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(reportService service.ReportService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		reportService: reportService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// @Summary Create a new incident report
// @Description Create a new incident report. The severity category is assigned by the external classifier. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param report body CreateReportRequest true "Report creation request"
// @Success 201 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [post]
func (h *Handler) createReport(c *gin.Context) {
	var input CreateReportRequest
	log := h.logger.WithField("method", "createReport")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportService.CreateReport(c.Request.Context(), DTOToCreateInput(input))
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			log.WithError(err).Warn("Report rejected by service validation")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to create report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToReportResponse(report))
}

// @Summary Query the current report collection
// @Description Evaluate a one-off filtered and sorted view over the current in-memory projection.
// @Tags Reports
// @Accept json
// @Produce json
// @Param q query string false "Case-insensitive substring over title and description"
// @Param sort query string false "Sort key" Enums(upvotes, downvotes, severity) default(upvotes)
// @Param mode query string false "Spatial mode" Enums(nearby, unbounded) default(unbounded)
// @Param range_km query number false "Range in kilometers for nearby mode" default(5)
// @Param lat query number false "Reference latitude, required for nearby mode"
// @Param lng query number false "Reference longitude, required for nearby mode"
// @Success 200 {array} ReportResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.logger.WithField("method", "listReports")

	query := models.DefaultQueryState()
	query.Search = c.Query("q")
	if sortBy := c.Query("sort"); sortBy != "" {
		query.SortBy = models.SortKey(sortBy)
	}
	if mode := c.Query("mode"); mode != "" {
		query.Mode = models.SpatialMode(mode)
	}
	if rangeKm := c.Query("range_km"); rangeKm != "" {
		v, err := strconv.ParseFloat(rangeKm, 64)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid range_km"})
			return
		}
		query.RangeKm = v
	}

	var ref *models.Coordinate
	if query.Mode == models.SpatialNearby {
		point, err := parsePoint(c.Query("lat"), c.Query("lng"))
		if err != nil {
			log.WithError(err).Warn("Invalid reference point for nearby query")
			c.JSON(http.StatusBadRequest, gin.H{"error": "nearby mode requires valid lat and lng"})
			return
		}
		ref = &point
	}

	reports := h.reportService.Query(query, ref)
	c.JSON(http.StatusOK, ModelsToReportResponses(reports))
}

// @Summary Vote for a report
// @Description Apply an up or down vote with at-most-one-vote-per-user semantics. The voter identity is taken from the X-User-ID header. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Param X-User-ID header string true "Voter identity"
// @Param vote body VoteRequest true "Vote request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid report ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized or missing user identity"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 409 {object} map[string]string "User has already voted"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /reports/{id}/vote [post]
func (h *Handler) voteReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "voteReport").WithField("id", id)

	var input VoteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetHeader("X-User-ID")
	err = h.reportService.Vote(c.Request.Context(), userID, id, models.VoteDirection(input.Direction))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user identity required"})
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		case errors.Is(err, service.ErrAlreadyVoted):
			// Отдельный код, чтобы интерфейс мог заблокировать кнопку
			c.JSON(http.StatusConflict, gin.H{"error": "already voted"})
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrUnavailable):
			log.WithError(err).Error("Vote failed, storage unavailable")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable"})
		default:
			log.WithError(err).Error("Failed to apply vote in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get the current view snapshot
// @Description Get the latest published immutable view snapshot.
// @Tags Snapshot
// @Accept json
// @Produce json
// @Success 200 {object} SnapshotResponse
// @Router /snapshot [get]
func (h *Handler) getSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, SnapshotToResponse(h.reportService.Snapshot()))
}

// @Summary Update the active query state
// @Description Apply a partial update to the sticky query state and reference point. Triggers a view recomputation. Requires API key.
// @Tags Snapshot
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param query body QueryStateRequest true "Query state patch"
// @Success 200 {object} SnapshotResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /query [put]
func (h *Handler) setQuery(c *gin.Context) {
	var input QueryStateRequest
	log := h.logger.WithField("method", "setQuery")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch, ref := DTOToQueryPatch(input)
	if ref != nil {
		h.reportService.SetReference(ref)
	}
	h.reportService.SetQuery(patch)

	c.JSON(http.StatusOK, SnapshotToResponse(h.reportService.Snapshot()))
}

// @Summary Get risk assessment for a point
// @Description Compute both risk figures (category-weighted and stored-probability average) for an arbitrary point.
// @Tags Risk
// @Accept json
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {object} RiskResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Router /risk [get]
func (h *Handler) getRisk(c *gin.Context) {
	point, err := parsePoint(c.Query("lat"), c.Query("lng"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
		return
	}

	c.JSON(http.StatusOK, RiskToResponse(h.reportService.RiskAt(point)))
}

// @Summary Stream view snapshots
// @Description Server-sent events stream of published view snapshots. The subscription is dropped when the client disconnects.
// @Tags Snapshot
// @Produce text/event-stream
// @Success 200 {object} SnapshotResponse
// @Router /reports/stream [get]
func (h *Handler) streamSnapshots(c *gin.Context) {
	id, ch := h.reportService.SubscribeSnapshots()
	defer h.reportService.UnsubscribeSnapshots(id)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	// Текущее состояние отправляется сразу, далее - по мере публикаций
	c.SSEvent("snapshot", SnapshotToResponse(h.reportService.Snapshot()))
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case snapshot, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("snapshot", SnapshotToResponse(snapshot))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// @Summary Get projection statistics
// @Description Get report totals per category and current snapshot state. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /reports/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	c.JSON(http.StatusOK, StatsToResponse(h.reportService.Stats()))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parsePoint разбирает координаты из строковых параметров запроса
func parsePoint(latStr, lngStr string) (models.Coordinate, error) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return models.Coordinate{}, err
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return models.Coordinate{}, err
	}
	point := models.Coordinate{Latitude: lat, Longitude: lng}
	if !point.Valid() {
		return models.Coordinate{}, errors.New("coordinates out of range")
	}
	return point, nil
}
