package router

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"kainan/internal/config"
	apperrors "kainan/internal/errors"
	"kainan/internal/handler"
	"kainan/internal/metrics"
	"kainan/internal/monitor"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	accountHandler *handler.AccountHandler,
	catalogHandler *handler.CatalogHandler,
	reservationHandler *handler.ReservationHandler,
	monitorHandler *handler.MonitorHandler,
	m *monitor.Monitor,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())
	e.Use(m.Track())
	e.Use(metrics.Middleware())

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = HTTPErrorHandler

	e.GET("/api/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Server is alive"})
	})

	e.GET("/ulams", catalogHandler.ListUlams)

	e.POST("/signup", accountHandler.Signup)
	e.POST("/login", accountHandler.Login)
	e.GET("/account", accountHandler.GetAccount)

	e.POST("/reserve", reservationHandler.Reserve)
	e.GET("/history", reservationHandler.History)

	e.GET("/api/system-status", monitorHandler.SystemStatus)
	e.GET("/api/queue-status", monitorHandler.QueueStatus)

	e.Static("/images", cfg.ImagesDir)

	e.GET("/metrics", metrics.Handler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// HTTPErrorHandler renders every failure as a JSON {message} body. Domain
// errors go through the taxonomy mapping; 404s raised by the router itself
// (unmatched routes, missing static files) additionally carry the request
// path, so clients never see an HTML error page.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var resp apperrors.ErrorResponse
	var code int

	var echoErr *echo.HTTPError
	if stderrors.As(err, &echoErr) {
		code = echoErr.Code
		resp.Message = fmt.Sprintf("%v", echoErr.Message)
		if code == http.StatusNotFound {
			resp.Message = "Route not found"
			resp.Path = c.Request().URL.Path
		}
	} else {
		httpErr := apperrors.MapErrorToHTTP(err)
		code = httpErr.StatusCode
		resp.Message = httpErr.Message
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	if jsonErr := c.JSON(code, resp); jsonErr != nil {
		c.Logger().Error(jsonErr)
	}
}
