// Package main implements a mock Best Buy API server for local development.
// It serves canned product responses from a JSON fixture so the client and
// CLI can be exercised without a real API key or network access.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bestbuyapis/bestbuy-go/pkg/logger"
)

type productsResponse struct {
	From        int               `json:"from"`
	To          int               `json:"to"`
	Total       int               `json:"total"`
	CurrentPage int               `json:"currentPage"`
	TotalPages  int               `json:"totalPages"`
	Products    []json.RawMessage `json:"products"`
}

type fixture struct {
	Products []json.RawMessage `json:"products"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/products.json", "path to products fixture")
	flag.Parse()

	log := logger.NewWithWriter(os.Stdout, "debug", "text")

	fx, err := loadFixture(*fixtureFile)
	if err != nil {
		log.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	log.Info("loaded fixture", "products", len(fx.Products))

	e := newServer(log, fx)

	addr := fmt.Sprintf(":%d", *port)
	log.Info("starting mock Best Buy server", "addr", addr)
	if err := e.Start(addr); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newServer(log *slog.Logger, fx *fixture) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(requestLog(log))

	e.GET("/version.txt", versionHandler)

	// The real API nests queries in the path, for example
	// /v1/products(sku in(6354884)), so everything under a version prefix
	// routes to the catch-all products handler.
	products := productsHandler(log, fx)
	e.GET("/v1/*", products, requireAPIKey(log))
	e.GET("/beta/*", products, requireAPIKey(log))

	return e
}

func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &fx, nil
}

func requestLog(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			log.Info("request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return err
		}
	}
}

// requireAPIKey rejects requests without an apiKey query parameter, the way
// the real API does. The key value itself is not verified.
func requireAPIKey(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.QueryParam("apiKey") == "" {
				log.Warn("request missing apiKey", "path", c.Request().URL.Path)
				return c.JSON(http.StatusForbidden, map[string]any{
					"error": map[string]string{
						"code":    "403",
						"message": "An API Key is required",
					},
				})
			}
			return next(c)
		}
	}
}

func versionHandler(c echo.Context) error {
	return c.String(http.StatusOK, "6.99\n")
}

func productsHandler(log *slog.Logger, fx *fixture) echo.HandlerFunc {
	return func(c echo.Context) error {
		page := 1
		if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
			page = v
		}
		pageSize := 10
		if v, err := strconv.Atoi(c.QueryParam("pageSize")); err == nil && v > 0 {
			pageSize = v
		}

		total := len(fx.Products)
		totalPages := (total + pageSize - 1) / pageSize

		start := min((page-1)*pageSize, total)
		end := min(start+pageSize, total)
		items := fx.Products[start:end]

		resp := productsResponse{
			From:        start + 1,
			To:          end,
			Total:       total,
			CurrentPage: page,
			TotalPages:  totalPages,
			Products:    items,
		}
		if end == 0 {
			resp.From = 0
		}
		// Return empty array instead of null when the page is out of range.
		if resp.Products == nil {
			resp.Products = []json.RawMessage{}
		}

		log.Info("products", "page", page, "pageSize", pageSize, "returned", len(items), "total", total)
		return c.JSON(http.StatusOK, resp)
	}
}
