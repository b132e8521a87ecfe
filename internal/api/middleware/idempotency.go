package middleware

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/paqueteria/logistics-api/internal/api/metrics"
	"github.com/paqueteria/logistics-api/internal/core/ports"
)

const (
	HeaderIdempotencyKey   = "Idempotency-Key"
	HeaderIdempotentReplay = "Idempotent-Replay"
)

// Idempotency replays the first successful response stored for an
// Idempotency-Key. Keys are scoped per user, so two users never share one.
// Store failures are logged and the request is processed normally.
func Idempotency(store ports.IdempotencyStore, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Header.Get(HeaderIdempotencyKey)
			if key == "" || store == nil {
				return next(c)
			}

			scope := c.Path()
			if claims, ok := ClaimsFrom(c); ok {
				scope += ":" + strconv.FormatInt(claims.UserID, 10)
			}
			ctx := c.Request().Context()

			stored, found, err := store.Lookup(ctx, scope, key)
			if err != nil {
				log.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency lookup failed, processing anyway")
			} else if found {
				metrics.IdempotentReplaysTotal.Inc()
				c.Response().Header().Set(HeaderIdempotentReplay, "true")
				return c.JSONBlob(stored.Status, stored.Body)
			}

			rec := &capturingWriter{ResponseWriter: c.Response().Writer}
			c.Response().Writer = rec

			if err := next(c); err != nil {
				return err
			}

			status := c.Response().Status
			if status < http.StatusOK || status >= http.StatusMultipleChoices {
				return nil
			}
			if err := store.Save(ctx, scope, key, ports.StoredResponse{Status: status, Body: rec.body.Bytes()}); err != nil {
				log.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency save failed")
			}
			return nil
		}
	}
}

// capturingWriter copies the response body while it is written to the client.
type capturingWriter struct {
	http.ResponseWriter
	body bytes.Buffer
}

func (w *capturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}
