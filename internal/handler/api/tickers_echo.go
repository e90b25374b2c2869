package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"TickerGate/internal/domain/models"
	"TickerGate/internal/usecase"
	xhttp "TickerGate/pkg/http"
	"TickerGate/pkg/http/middleware"
	xlogger "TickerGate/pkg/logger"

	"github.com/labstack/echo/v4"
)

// TickerHandler exposes the ticker façade over Echo. Response bodies keep
// the upstream-compatible shapes: bare payloads on single-symbol routes,
// symbol-keyed maps on batch routes, {"detail": ...} on request-level errors.
type TickerHandler struct {
	logger *xlogger.Logger
	uc     *usecase.TickerUseCase
	apiKey string
}

func NewTickerHandler(logger *xlogger.Logger, uc *usecase.TickerUseCase, apiKey string) *TickerHandler {
	return &TickerHandler{logger: logger, uc: uc, apiKey: apiKey}
}

func (h *TickerHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("", middleware.APIKey(h.apiKey))
	g.GET("/", h.Root)
	g.GET("/quote/:symbol", h.Quote)
	g.GET("/quotes", h.Quotes)
	g.GET("/recommendation/:symbol", h.Recommendation)
	g.GET("/recommendations", h.Recommendations)
	g.GET("/data/:method", h.Data)
}

// Root is the liveness endpoint.
func (h *TickerHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":           "TickerGate is live",
		"dynamic_endpoint": "/data/{method}?symbols=... or &symbol=...",
		"note":             "`method` is one of: info, recommendations, upgrades_downgrades, history",
	})
}

// Quote serves one symbol's quote payload, unwrapped.
func (h *TickerHandler) Quote(c echo.Context) error {
	symbol, ok := pathSymbol(c)
	if !ok {
		return badRequest(c, "symbol must be non-empty")
	}

	v, err := h.uc.Quote(c.Request().Context(), symbol)
	if err != nil {
		h.logger.Error("quote fetch failed", xlogger.String("symbol", symbol), xlogger.Error(err))
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

// Quotes serves a batch of quote payloads keyed by symbol.
func (h *TickerHandler) Quotes(c echo.Context) error {
	symbols, err := h.batchSymbols(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	results, err := h.uc.QuoteBatch(c.Request().Context(), symbols)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusOK, results)
}

// Recommendation serves one symbol's normalized rating-change history.
func (h *TickerHandler) Recommendation(c echo.Context) error {
	symbol, ok := pathSymbol(c)
	if !ok {
		return badRequest(c, "symbol must be non-empty")
	}

	recs, err := h.uc.Recommendations(c.Request().Context(), symbol)
	if err != nil {
		h.logger.Error("recommendation fetch failed", xlogger.String("symbol", symbol), xlogger.Error(err))
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, recs)
}

// Recommendations serves a batch of normalized histories keyed by symbol.
func (h *TickerHandler) Recommendations(c echo.Context) error {
	symbols, err := h.batchSymbols(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	results, err := h.uc.RecommendationsBatch(c.Request().Context(), symbols)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusOK, results)
}

// Data dispatches an enumerated method over `symbol` or `symbols`, always
// returning a symbol-keyed map.
func (h *TickerHandler) Data(c echo.Context) error {
	req := &models.DataRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"detail": "invalid request",
			"errors": verr,
		})
	}

	var symbols []string
	switch {
	case req.Symbol != "":
		symbols = []string{req.Symbol}
	case req.Symbols != "":
		symbols = xhttp.SplitCSV(req.Symbols)
	default:
		return badRequest(c, "must provide either `symbol` or `symbols` query parameter")
	}

	p := usecase.DataParams{
		Method:  c.Param("method"),
		Symbols: symbols,
		From:    xhttp.ParseTimeDefault(req.From, time.Time{}),
		To:      xhttp.ParseTimeDefault(req.To, time.Time{}),
	}
	results, err := h.uc.Data(c.Request().Context(), p)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusOK, results)
}

// batchSymbols binds and validates the `symbols` query parameter.
func (h *TickerHandler) batchSymbols(c echo.Context) ([]string, error) {
	req := &models.BatchRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return nil, errNoSymbolsParam
	}
	return xhttp.SplitCSV(req.Symbols), nil
}

var errNoSymbolsParam = errors.New("must provide `symbols` query parameter")

func pathSymbol(c echo.Context) (string, bool) {
	s := strings.TrimSpace(c.Param("symbol"))
	return s, s != ""
}

func badRequest(c echo.Context, detail string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"detail": detail})
}

func internalError(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
}
