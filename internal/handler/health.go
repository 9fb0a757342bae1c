package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Health reports process liveness plus the state of the DB and Redis. The
// endpoint stays 200 when Redis is down since the API degrades gracefully
// without it; a dead DB returns 503.
func Health(db *sql.DB, rdb *redis.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		out := echo.Map{"status": "ok"}
		status := http.StatusOK

		if err := db.PingContext(ctx); err != nil {
			out["status"] = "degraded"
			out["database"] = "down"
			status = http.StatusServiceUnavailable
		} else {
			out["database"] = "up"
		}

		if rdb == nil {
			out["redis"] = "disabled"
		} else if err := rdb.Ping(ctx).Err(); err != nil {
			out["redis"] = "down"
		} else {
			out["redis"] = "up"
		}

		return c.JSON(status, out)
	}
}
