package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jmanzanog/borsa-alphavantage/internal/domain"
	"github.com/jmanzanog/borsa-alphavantage/internal/infrastructure/marketdata"
)

const (
	defaultKind     = domain.AssetKindEquity
	defaultInterval = domain.Interval1d
	defaultRange    = domain.Range1mo
)

type Handler struct {
	connector marketdata.Connector
}

func NewHandler(connector marketdata.Connector) *Handler {
	return &Handler{
		connector: connector,
	}
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind"`
	RequestID string `json:"request_id,omitempty"`
}

type IntervalsResponse struct {
	Kind      domain.AssetKind  `json:"kind"`
	Intervals []domain.Interval `json:"intervals"`
}

var statusByKind = map[domain.ErrorKind]int{
	domain.KindNotFound:    http.StatusNotFound,
	domain.KindInvalidArg:  http.StatusBadRequest,
	domain.KindUnsupported: http.StatusUnprocessableEntity,
	domain.KindConnector:   http.StatusBadGateway,
	domain.KindData:        http.StatusBadGateway,
	domain.KindOther:       http.StatusInternalServerError,
}

func (h *Handler) respondError(c *gin.Context, msg string, err error, attrs ...any) {
	kind := domain.KindOf(err)
	status, ok := statusByKind[kind]
	if !ok {
		status = http.StatusInternalServerError
	}
	requestID := c.GetString(requestIDKey)

	args := append([]any{"error", err, "status", status, "request_id", requestID}, attrs...)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), msg, args...)
	} else {
		slog.WarnContext(c.Request.Context(), msg, args...)
	}
	c.JSON(status, ErrorResponse{Error: err.Error(), Kind: kind.String(), RequestID: requestID})
}

// instrument resolves the :symbol path parameter and ?kind= against what the
// connector serves. Kinds it does not support are rejected here.
func (h *Handler) instrument(c *gin.Context) (domain.Instrument, error) {
	kind, err := h.kind(c)
	if err != nil {
		return domain.Instrument{}, err
	}
	return domain.NewInstrument(c.Param("symbol"), kind)
}

func (h *Handler) kind(c *gin.Context) (domain.AssetKind, error) {
	kind := defaultKind
	if raw := c.Query("kind"); raw != "" {
		parsed, err := domain.ParseAssetKind(raw)
		if err != nil {
			return "", err
		}
		kind = parsed
	}
	if !h.connector.SupportsKind(kind) {
		return "", domain.Unsupported(fmt.Sprintf("asset kind %s for %s", kind, h.connector.Vendor()))
	}
	return kind, nil
}

func (h *Handler) GetQuote(c *gin.Context) {
	inst, err := h.instrument(c)
	if err != nil {
		h.respondError(c, "Invalid quote request", err, "symbol", c.Param("symbol"))
		return
	}

	quote, err := h.connector.Quote(c.Request.Context(), inst)
	if err != nil {
		h.respondError(c, "Failed to get quote", err, "symbol", inst.Symbol())
		return
	}

	c.JSON(http.StatusOK, quote)
}

func (h *Handler) GetHistory(c *gin.Context) {
	inst, err := h.instrument(c)
	if err != nil {
		h.respondError(c, "Invalid history request", err, "symbol", c.Param("symbol"))
		return
	}

	req, err := historyRequest(c)
	if err != nil {
		h.respondError(c, "Invalid history request", err, "symbol", inst.Symbol())
		return
	}

	history, err := h.connector.History(c.Request.Context(), inst, req)
	if err != nil {
		h.respondError(c, "Failed to get history", err, "symbol", inst.Symbol(), "interval", req.Interval())
		return
	}

	c.JSON(http.StatusOK, history)
}

// historyRequest reads ?interval=&adjust= plus either ?start=&end= or
// ?range=. A period takes precedence over a range.
func historyRequest(c *gin.Context) (domain.HistoryRequest, error) {
	interval := defaultInterval
	if raw := c.Query("interval"); raw != "" {
		parsed, err := domain.ParseInterval(raw)
		if err != nil {
			return domain.HistoryRequest{}, err
		}
		interval = parsed
	}

	var (
		req domain.HistoryRequest
		err error
	)
	start, end := c.Query("start"), c.Query("end")
	switch {
	case start != "" || end != "":
		if start == "" || end == "" {
			return domain.HistoryRequest{}, domain.InvalidArg("start and end must be given together")
		}
		from, perr := parseTime("start", start)
		if perr != nil {
			return domain.HistoryRequest{}, perr
		}
		to, perr := parseTime("end", end)
		if perr != nil {
			return domain.HistoryRequest{}, perr
		}
		req, err = domain.NewHistoryRequestFromPeriod(from, to, interval)
	default:
		rng := defaultRange
		if raw := c.Query("range"); raw != "" {
			parsed, perr := domain.ParseRange(raw)
			if perr != nil {
				return domain.HistoryRequest{}, perr
			}
			rng = parsed
		}
		req, err = domain.NewHistoryRequestFromRange(rng, interval)
	}
	if err != nil {
		return domain.HistoryRequest{}, err
	}

	if raw := c.Query("adjust"); raw != "" {
		adjust, perr := strconv.ParseBool(raw)
		if perr != nil {
			return domain.HistoryRequest{}, domain.InvalidArg(fmt.Sprintf("invalid adjust flag: '%s'", raw))
		}
		req = req.WithAutoAdjust(adjust)
	}
	return req, nil
}

// parseTime accepts RFC 3339 timestamps and bare dates (UTC midnight).
func parseTime(name, raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.InvalidArg(fmt.Sprintf("invalid %s time: '%s'", name, raw))
}

func (h *Handler) Search(c *gin.Context) {
	var opts []domain.SearchOption
	if raw := c.Query("kind"); raw != "" {
		kind, err := domain.ParseAssetKind(raw)
		if err != nil {
			h.respondError(c, "Invalid search request", err)
			return
		}
		opts = append(opts, domain.WithKind(kind))
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			h.respondError(c, "Invalid search request", domain.InvalidArg(fmt.Sprintf("invalid limit: '%s'", raw)))
			return
		}
		opts = append(opts, domain.WithLimit(limit))
	}

	req, err := domain.NewSearchRequest(c.Query("q"), opts...)
	if err != nil {
		h.respondError(c, "Invalid search request", err)
		return
	}

	results, err := h.connector.Search(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, "Failed to search", err, "query", req.Query())
		return
	}

	c.JSON(http.StatusOK, results)
}

func (h *Handler) GetEarnings(c *gin.Context) {
	inst, err := h.instrument(c)
	if err != nil {
		h.respondError(c, "Invalid earnings request", err, "symbol", c.Param("symbol"))
		return
	}

	earnings, err := h.connector.Earnings(c.Request.Context(), inst)
	if err != nil {
		h.respondError(c, "Failed to get earnings", err, "symbol", inst.Symbol())
		return
	}

	c.JSON(http.StatusOK, earnings)
}

func (h *Handler) GetIntervals(c *gin.Context) {
	kind, err := h.kind(c)
	if err != nil {
		h.respondError(c, "Invalid intervals request", err)
		return
	}

	c.JSON(http.StatusOK, IntervalsResponse{
		Kind:      kind,
		Intervals: h.connector.SupportedIntervals(kind),
	})
}

// Health reports the connector identity.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"connector": h.connector.Name(),
		"vendor":    h.connector.Vendor(),
	})
}

func (h *Handler) NoRoute(c *gin.Context) {
	h.respondError(c, "Unknown route", domain.NotFound("route "+c.Request.URL.Path))
}
