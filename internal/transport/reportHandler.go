package transport

import (
	"net/http"
	"strconv"
	"time"

	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetSummary builds the report for a month/year, defaulting to the
// current one.
func (h *ReportHandler) GetSummary(c *gin.Context) {
	now := time.Now()

	month := int(now.Month())
	if monthStr := c.Query("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil || parsed < 1 || parsed > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be a number between 1 and 12"})
			return
		}
		month = parsed
	}

	year := now.Year()
	if yearStr := c.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a valid number"})
			return
		}
		year = parsed
	}

	summary, err := h.reportService.Summary(c.Request.Context(), time.Month(month), year)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
