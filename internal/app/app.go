package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alimikegami/point-of-sales/product-form-service/config"
	"github.com/alimikegami/point-of-sales/product-form-service/internal/controller"
	localmiddleware "github.com/alimikegami/point-of-sales/product-form-service/internal/middleware"
	"github.com/alimikegami/point-of-sales/product-form-service/internal/service"
	"github.com/alimikegami/point-of-sales/product-form-service/pkg/response"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
)

type App struct {
	Config  *config.Config
	Service service.FormService
	Server  *echo.Echo
	Metrics *echo.Echo
}

// Routes builds the API router without binding any port.
func (app *App) Routes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	tracer := otel.Tracer(app.Config.ServiceName)

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// span creation and naming
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	e.Use(localmiddleware.RequestID)

	g := e.Group("/api/v1")
	g.Use(localmiddleware.AccessLog())

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	controller.CreateFormController(g, app.Service)

	return e
}

// Start serves the API and the metrics endpoint and blocks until the API
// server stops.
func (app *App) Start() error {
	e := app.Routes()

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	metrics := echo.New()
	metrics.HideBanner = true
	metrics.GET("/metrics", echoprometheus.NewHandler())

	app.Server = e
	app.Metrics = metrics

	go func() {
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	if err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	if app.Metrics != nil {
		err = app.Metrics.Shutdown(ctx)
	}
	if app.Server != nil {
		err = errors.Join(err, app.Server.Shutdown(ctx))
	}

	return err
}
