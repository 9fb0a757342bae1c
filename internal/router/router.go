// Package router wires handlers, middleware and route groups onto the Echo
// instance. Public browse routes get response caching and rate limiting;
// admin routes sit behind JWT auth plus an active-account check.
package router

import (
	"database/sql"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/yoonsol/coffee-franchise-site/internal/handler"
)

// RegisterHealth exposes the liveness endpoint used by load balancers.
func RegisterHealth(e *echo.Echo, db *sql.DB, rdb *redis.Client) {
	e.GET("/healthz", handler.Health(db, rdb))
}
