package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stockdash/internal/aggregator"
	"github.com/guttosm/stockdash/internal/domain/dto"
	"github.com/guttosm/stockdash/internal/export"
	"github.com/guttosm/stockdash/internal/middleware"
	"github.com/guttosm/stockdash/internal/service"
)

// Handler provides the HTTP handlers for the dashboard endpoints.
//
// Responsibilities:
//   - Validate and normalize incoming query parameters
//   - Translate service results into response DTOs
//   - Return structured JSON (or file attachments) with appropriate codes
type Handler struct {
	svc service.DashboardService
}

// NewHandler constructs a Handler around the dashboard service.
func NewHandler(svc service.DashboardService) *Handler {
	return &Handler{svc: svc}
}

const dateLayout = "2006-01-02"

// parseRequest validates the query parameters shared by every endpoint and
// builds the aggregation request. On failure it writes the 400 response
// itself and returns ok=false.
//
// Parameters:
//   - tickers:   required, comma-separated symbols.
//   - start/end: required, YYYY-MM-DD, start must not exceed end.
//   - ma:        optional bool, default false.
//   - ma_window: optional positive int, default 20.
func (h *Handler) parseRequest(c *gin.Context) (aggregator.Request, bool) {
	var req aggregator.Request

	req.Tickers = aggregator.NormalizeTickers(strings.Split(c.Query("tickers"), ","))
	if len(req.Tickers) == 0 {
		middleware.AbortWithError(c, http.StatusBadRequest, "tickers is required", nil)
		return req, false
	}

	start, err := time.Parse(dateLayout, c.Query("start"))
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid start format, expected YYYY-MM-DD", err)
		return req, false
	}
	end, err := time.Parse(dateLayout, c.Query("end"))
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid end format, expected YYYY-MM-DD", err)
		return req, false
	}
	if end.Before(start) {
		middleware.AbortWithError(c, http.StatusBadRequest, "start date must not be after end date", nil)
		return req, false
	}
	req.Start = start
	req.End = end

	if s := c.Query("ma"); s != "" {
		ma, err := strconv.ParseBool(s)
		if err != nil {
			middleware.AbortWithError(c, http.StatusBadRequest, "invalid ma, expected true or false", err)
			return req, false
		}
		req.ComputeMA = ma
	}

	req.MAWindow = aggregator.DefaultMAWindow
	if s := c.Query("ma_window"); s != "" {
		w, err := strconv.Atoi(s)
		if err != nil || w < 1 {
			middleware.AbortWithError(c, http.StatusBadRequest, "invalid ma_window, expected positive integer", err)
			return req, false
		}
		req.MAWindow = w
	}

	return req, true
}

// GetPrices handles GET /api/v1/prices.
//
// GetPrices godoc
// @Summary      Get combined price table
// @Description  Returns the daily OHLCV rows of every requested ticker, grouped by ticker in request order, with an optional trailing moving average of the close
// @Tags         prices
// @Produce      json
// @Param        tickers    query     string  true   "Comma-separated tickers" example(PETR4.SA,VALE3.SA)
// @Param        start      query     string  true   "Start date YYYY-MM-DD" example(2024-01-01)
// @Param        end        query     string  true   "End date YYYY-MM-DD" example(2024-06-30)
// @Param        ma         query     bool    false  "Compute moving average"
// @Param        ma_window  query     int     false  "Moving-average window, default 20"
// @Success      200  {object}  dto.PriceTableResponse  "Success"
// @Failure      400  {object}  dto.ErrorResponse       "Bad Request"
// @Failure      404  {object}  dto.ErrorResponse       "Not Found"
// @Failure      500  {object}  dto.ErrorResponse       "Internal Error"
// @Router       /api/v1/prices [get]
func (h *Handler) GetPrices(c *gin.Context) {
	req, ok := h.parseRequest(c)
	if !ok {
		return
	}

	table, warnings, err := h.svc.PriceTable(c.Request.Context(), req)
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to fetch price data", err)
		return
	}
	if len(table.Rows) == 0 {
		middleware.AbortWithError(c, http.StatusNotFound, "no data found for requested tickers", nil)
		return
	}

	c.JSON(http.StatusOK, dto.PriceTableResponse{
		Rows:     table.Rows,
		HasMA:    table.HasMA,
		Warnings: warnings,
	})
}

// GetMetrics handles GET /api/v1/metrics.
//
// GetMetrics godoc
// @Summary      Get per-ticker metrics
// @Description  Returns last price and period variation for every requested ticker; undefined metrics are omitted and reported as warnings
// @Tags         metrics
// @Produce      json
// @Param        tickers  query     string  true  "Comma-separated tickers" example(PETR4.SA,VALE3.SA)
// @Param        start    query     string  true  "Start date YYYY-MM-DD" example(2024-01-01)
// @Param        end      query     string  true  "End date YYYY-MM-DD" example(2024-06-30)
// @Success      200  {object}  dto.MetricsResponse  "Success"
// @Failure      400  {object}  dto.ErrorResponse    "Bad Request"
// @Failure      500  {object}  dto.ErrorResponse    "Internal Error"
// @Router       /api/v1/metrics [get]
func (h *Handler) GetMetrics(c *gin.Context) {
	req, ok := h.parseRequest(c)
	if !ok {
		return
	}

	metrics, warnings, err := h.svc.Metrics(c.Request.Context(), req)
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to compute metrics", err)
		return
	}

	c.JSON(http.StatusOK, dto.MetricsResponse{
		Metrics:  metrics,
		Warnings: warnings,
	})
}

// ExportCSV handles GET /api/v1/export/csv.
//
// ExportCSV godoc
// @Summary      Download the price table as CSV
// @Description  Returns the full table as dados_acoes.csv (comma-delimited, UTF-8, header row, no index column)
// @Tags         export
// @Produce      text/csv
// @Param        tickers    query  string  true   "Comma-separated tickers" example(PETR4.SA,VALE3.SA)
// @Param        start      query  string  true   "Start date YYYY-MM-DD"
// @Param        end        query  string  true   "End date YYYY-MM-DD"
// @Param        ma         query  bool    false  "Compute moving average"
// @Param        ma_window  query  int     false  "Moving-average window, default 20"
// @Success      200  {string}  string             "CSV file"
// @Failure      400  {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/export/csv [get]
func (h *Handler) ExportCSV(c *gin.Context) {
	req, ok := h.parseRequest(c)
	if !ok {
		return
	}

	data, err := h.svc.ExportCSV(c.Request.Context(), req)
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to export data", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.CSVFileName+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// ExportXLSX handles GET /api/v1/export/xlsx.
//
// ExportXLSX godoc
// @Summary      Download the price table as a spreadsheet
// @Description  Returns the full table as dados_acoes.xlsx (single sheet, same rows and columns as the CSV export)
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        tickers    query  string  true   "Comma-separated tickers" example(PETR4.SA,VALE3.SA)
// @Param        start      query  string  true   "Start date YYYY-MM-DD"
// @Param        end        query  string  true   "End date YYYY-MM-DD"
// @Param        ma         query  bool    false  "Compute moving average"
// @Param        ma_window  query  int     false  "Moving-average window, default 20"
// @Success      200  {string}  string             "XLSX file"
// @Failure      400  {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/export/xlsx [get]
func (h *Handler) ExportXLSX(c *gin.Context) {
	req, ok := h.parseRequest(c)
	if !ok {
		return
	}

	data, err := h.svc.ExportXLSX(c.Request.Context(), req)
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to export data", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.XLSXFileName+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
