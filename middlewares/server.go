// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package middlewares

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/worknest-dev/worknest/monitoring"
	"github.com/worknest-dev/worknest/shared"
)

func registerMiddlewares(e *echo.Echo) {
	e.Pre(middleware.AddTrailingSlash())

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins:     []string{frontendURL},
			AllowHeaders:     middleware.DefaultCORSConfig.AllowHeaders,
			AllowMethods:     middleware.DefaultCORSConfig.AllowMethods,
			AllowCredentials: true,
		},
	))

	e.Use(logger())
	e.Use(monitoring.RequestMiddleware())
	e.Use(recoverMiddleware())

	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		// log straight inside the error handler - keeps the controllers clean
		slog.Error(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL)

		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(http.StatusInternalServerError)

		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		}

		if ctx.Request().Method == http.MethodHead {
			if err := ctx.NoContent(code); err != nil {
				slog.Error("could not send error response", "err", err)
			}
			return
		}

		if err := ctx.JSON(code, shared.APIResponse{Success: false, Error: message, Status: code}); err != nil {
			slog.Error("could not send error response", "err", err)
		}
	}
}

func Server() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(99)
	registerMiddlewares(e)
	return e
}

func recoverMiddleware() echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(ctx echo.Context, err error, stack []byte) error {
			slog.Error("panic during request", "err", err, "stack", string(stack))
			return err
		},
	})
}
