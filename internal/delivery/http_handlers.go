package delivery

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"adsdash/internal/domain"
	"adsdash/internal/usecase"
	"adsdash/pkg/logger"
	"adsdash/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// handles HTTP requests
type HTTPHandlers struct {
	authService   *usecase.AuthService
	reportService *usecase.ReportService
	logger        *logger.Logger
	metrics       *metrics.Metrics
}

// creates new HTTP handlers
func NewHTTPHandlers(
	authService *usecase.AuthService,
	reportService *usecase.ReportService,
	logger *logger.Logger,
	metrics *metrics.Metrics,
) *HTTPHandlers {
	return &HTTPHandlers{
		authService:   authService,
		reportService: reportService,
		logger:        logger,
		metrics:       metrics,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies credentials and returns a session token
func (h *HTTPHandlers) Login(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Username and password are required.",
		})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid username or password.",
			})
			return
		}
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Login failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "An internal server error occurred during login.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}

// GetAds proxies the raw analytics feed to the client
func (h *HTTPHandlers) GetAds(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	raw, err := h.reportService.RawFeed(c.Request.Context())
	if err != nil {
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Feed proxy failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve ads data from external source.",
		})
		return
	}

	c.JSON(http.StatusOK, raw)
}

// GetReport returns the filtered, sorted, paginated detail view
func (h *HTTPHandlers) GetReport(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	query, err := parseReportQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid parameters",
			"message": err.Error(),
		})
		return
	}

	result, err := h.reportService.DetailReport(c.Request.Context(), query)
	if err != nil {
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to compute detail report")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve ads data from external source.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":   result.Rows,
		"paging": result.Paging,
		"totals": result.Totals,
	})
}

// GetReportSummary returns the campaign-grouped view
func (h *HTTPHandlers) GetReportSummary(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	query, err := parseReportQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid parameters",
			"message": err.Error(),
		})
		return
	}

	result, err := h.reportService.SummaryReport(c.Request.Context(), query.Criteria, query.Sort)
	if err != nil {
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to compute summary report")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve ads data from external source.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":   result.Groups,
		"totals": result.Totals,
	})
}

// ExportReport streams a view as a delimiter-separated attachment
func (h *HTTPHandlers) ExportReport(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	query, err := parseReportQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid parameters",
			"message": err.Error(),
		})
		return
	}

	view := usecase.ExportViewDetail
	if c.Query("view") == string(usecase.ExportViewSummary) {
		view = usecase.ExportViewSummary
	}
	format := usecase.ExportFormatCSV
	if c.Query("format") == string(usecase.ExportFormatExcel) {
		format = usecase.ExportFormatExcel
	}

	result, err := h.reportService.Export(c.Request.Context(), view, format, query.Criteria, query.Sort)
	if err != nil {
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to render export")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve ads data from external source.",
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, []byte(result.Content))
}

// HealthCheck returns the health status of the service
func (h *HTTPHandlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "ads-dashboard",
		"version":   "1.0.0",
	})
}

// parseReportQuery reads the shared filter/sort/page query parameters.
func parseReportQuery(c *gin.Context) (usecase.ReportQuery, error) {
	q := usecase.ReportQuery{
		Criteria: domain.FilterCriteria{
			CampaignSearch: c.Query("campaign"),
			AdsNameSearch:  c.Query("ads_name"),
			Platform:       c.DefaultQuery("platform", domain.FilterAll),
			Objective:      c.DefaultQuery("objective", domain.FilterAll),
			Range:          domain.DateRange(c.DefaultQuery("range", string(domain.DateRangeAll))),
		},
		Sort: domain.SortState{
			Key:       domain.SortKey(c.Query("sort")),
			Direction: domain.SortAscending,
		},
	}

	if c.Query("dir") == "desc" {
		q.Sort.Direction = domain.SortDescending
	}

	if startStr := c.Query("start"); startStr != "" {
		start, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
		if err != nil {
			return usecase.ReportQuery{}, err
		}
		q.Criteria.CustomStart = start
	}
	if endStr := c.Query("end"); endStr != "" {
		end, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
		if err != nil {
			return usecase.ReportQuery{}, err
		}
		q.Criteria.CustomEnd = end
	}

	if pageStr := c.Query("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return usecase.ReportQuery{}, err
		}
		q.Page = page
	}
	q.Rows = 10
	if rowsStr := c.Query("rows"); rowsStr != "" {
		rows, err := strconv.Atoi(rowsStr)
		if err != nil {
			return usecase.ReportQuery{}, err
		}
		q.Rows = rows
	}

	return q, nil
}
