package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// reportWindow resolves the reporting window from the optional ?days=
// query parameter, defaulting to the configured lookback.
func (b *BackOffice) reportWindow(c *gin.Context) (time.Time, time.Time, bool) {
	days := b.ReportWindowDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return time.Time{}, time.Time{}, false
		}
		days = parsed
	}
	to := time.Now()
	return to.AddDate(0, 0, -days), to, true
}

func (b *BackOffice) GetSalesReport(c *gin.Context) {
	from, to, ok := b.reportWindow(c)
	if !ok {
		return
	}

	summary, err := b.Reports.Summarize(from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (b *BackOffice) GetInsights(c *gin.Context) {
	from, to, ok := b.reportWindow(c)
	if !ok {
		return
	}

	summary, err := b.Reports.Summarize(from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	text := b.Insights.Generate(c.Request.Context(), summary)
	c.JSON(http.StatusOK, gin.H{
		"from":     summary.From,
		"to":       summary.To,
		"insights": text,
	})
}

// GetMetricsSnapshot serves the in-process metrics snapshot (allocation
// outcome counts, uptime). Prometheus scraping lives on the separate
// metrics port; this is the quick JSON view for dashboards.
func (b *BackOffice) GetMetricsSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, b.Monitor.GetMetrics())
}
