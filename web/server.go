// Package web exposes diagram building over HTTP: clients post a
// statement-script document and get back layout-ready data or a rendered
// textual format.
package web

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/vellum-dev/vellum/diagram"
	"github.com/vellum-dev/vellum/layout"
	"github.com/vellum-dev/vellum/loader"
	"github.com/vellum-dev/vellum/viz"
)

// Server serves the diagram API on one address.
type Server struct {
	Address string

	echo *echo.Echo
}

// RenderResponse is the body returned by the render endpoint.
type RenderResponse struct {
	Diagram        string       `json:"diagram"`
	Title          string       `json:"title,omitempty"`
	AccTitle       string       `json:"accTitle,omitempty"`
	AccDescription string       `json:"accDescription,omitempty"`
	Data           *layout.Data `json:"data"`
}

// NewServer wires the routes and middleware for one server instance.
func NewServer(address string) *Server {
	s := &Server{Address: address}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				slog.Error("request", "method", v.Method, "uri", v.URI, "status", v.Status, "error", v.Error)
			} else {
				slog.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status)
			}
			return nil
		},
	}))

	e.GET("/healthz", s.handleHealth)
	api := e.Group("/api")
	api.POST("/render", s.handleRender)
	api.POST("/export", s.handleExport)
	api.GET("/types", s.handleTypes)

	s.echo = e
	return s
}

// Handler exposes the underlying handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.echo }

// Start serves until ctx is cancelled or an interrupt arrives, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("serving diagram API", "address", s.Address)
		if err := s.echo.Start(s.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.echo.Shutdown(shutdownCtx)
}

// buildFromBody decodes the posted document and builds its store.
func (s *Server) buildFromBody(c echo.Context) (*loader.Document, diagram.DB, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "reading request body")
	}
	doc, err := loader.Load(bytes.NewReader(body))
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	db, err := loader.Build(doc)
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return doc, db, nil
}

func (s *Server) handleRender(c echo.Context) error {
	doc, db, err := s.buildFromBody(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, RenderResponse{
		Diagram:        doc.Diagram,
		Title:          db.DiagramTitle(),
		AccTitle:       db.AccTitle(),
		AccDescription: db.AccDescription(),
		Data:           db.Data(),
	})
}

func (s *Server) handleExport(c echo.Context) error {
	format := c.QueryParam("format")
	gen, err := viz.ForFormat(format)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, db, err := s.buildFromBody(c)
	if err != nil {
		return err
	}
	out, err := gen.Generate(db.Data())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.String(http.StatusOK, out)
}

func (s *Server) handleTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{"types": diagram.Types()})
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
