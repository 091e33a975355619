// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package router

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/worknest-dev/worknest/controllers"
	"github.com/worknest-dev/worknest/database"
	"github.com/worknest-dev/worknest/middlewares"
	"github.com/worknest-dev/worknest/shared"
)

type APIV1Router struct {
	*echo.Group
}

// SessionRouter is the group below the session and user middlewares: every
// route registered on it sees an authenticated caller with a local user row.
type SessionRouter struct {
	*echo.Group
}

func NewAPIV1Router(
	e *echo.Echo,
	db shared.DB,
	pool *pgxpool.Pool,
	authClient shared.AdminClient,
) APIV1Router {
	apiV1Router := e.Group("/api/v1")

	apiV1Router.GET("/health/", func(ctx echo.Context) error {
		if err := pool.Ping(ctx.Request().Context()); err != nil {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "database unreachable").WithInternal(err)
		}
		return shared.Ok(ctx, http.StatusOK, map[string]string{"status": "ok"})
	})

	apiV1Router.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))

	apiV1Router.GET("/migration-status/", func(ctx echo.Context) error {
		version, dirty, err := database.GetMigrationVersionWithDB(db)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "could not read migration status").WithInternal(err)
		}
		return shared.Ok(ctx, http.StatusOK, map[string]any{"version": version, "dirty": dirty})
	})

	apiV1Router.Use(middlewares.SessionMiddleware(authClient))

	return APIV1Router{apiV1Router}
}

func NewSessionRouter(
	apiV1Router APIV1Router,
	userRepository shared.UserRepository,
	userService shared.UserService,
	authController *controllers.AuthController,
) SessionRouter {
	// sign-in sync only needs the session, not a resolved user row
	authRouter := apiV1Router.Group.Group("/auth", middlewares.RequireSession)
	authRouter.POST("/session/", authController.SyncSession)

	sessionRouter := apiV1Router.Group.Group("",
		middlewares.RequireSession,
		middlewares.UserMiddleware(userRepository, userService),
	)

	sessionRouter.POST("/auth/otp/send/", authController.SendOTP)
	sessionRouter.POST("/auth/otp/verify/", authController.VerifyOTP)

	return SessionRouter{sessionRouter}
}
