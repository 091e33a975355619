// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"github.com/worknest-dev/worknest/controllers"
	"github.com/worknest-dev/worknest/database"
	"github.com/worknest-dev/worknest/database/repositories"
	"github.com/worknest-dev/worknest/mail"
	"github.com/worknest-dev/worknest/middlewares"
	"github.com/worknest-dev/worknest/router"
	"github.com/worknest-dev/worknest/services"
	"github.com/worknest-dev/worknest/shared"
)

var release string // Will be filled at build time

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	rootCmd := &cobra.Command{
		Use:   "worknest",
		Short: "worknest collaboration backend",
	}
	rootCmd.AddCommand(newServeCommand(), newMigrateCommand())

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run pending database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := connectDatabase()
			if err != nil {
				return err
			}
			return database.RunMigrationsWithDB(db)
		},
	}
}

func connectDatabase() (pool *pgxpool.Pool, db shared.DB, err error) {
	cfg := database.GetPoolConfigFromEnv()

	pool, err = database.NewPgxConnPool(cfg)
	if err != nil {
		return nil, nil, err
	}

	db, err = database.NewGormDB(pool)
	if err != nil {
		return nil, nil, err
	}
	return pool, db, nil
}

func serve() error {
	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	pool, db, err := connectDatabase()
	if err != nil {
		slog.Error("could not setup database connection", "err", err)
		return errors.New("failed to setup database connection")
	}

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("could not run database migrations", "err", err)
			return errors.New("failed to run database migrations")
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	// repositories
	userRepository := repositories.NewUserRepository(db)
	orgRepository := repositories.NewOrgRepository(db)
	orgMemberRepository := repositories.NewOrgMemberRepository(db)
	orgInvitationRepository := repositories.NewOrgInvitationRepository(db)
	projectRepository := repositories.NewProjectRepository(db)
	projectMemberRepository := repositories.NewProjectMemberRepository(db)
	projectInvitationRepository := repositories.NewProjectInvitationRepository(db)
	otpRepository := repositories.NewOTPRepository(db)

	// services
	mailer := mail.NewSMTPMailerFromEnv()
	orgService := services.NewOrgService(orgRepository, orgMemberRepository)
	projectService := services.NewProjectService(projectRepository, projectMemberRepository)
	orgInvitationService := services.NewOrgInvitationService(orgInvitationRepository, orgMemberRepository, userRepository, mailer)
	projectInvitationService := services.NewProjectInvitationService(projectInvitationRepository, projectMemberRepository, orgMemberRepository, userRepository, mailer)
	userService := services.NewUserService(userRepository, orgRepository, orgMemberRepository)
	otpService := services.NewOTPService(otpRepository, userRepository, mailer)

	// controllers
	authController := controllers.NewAuthController(userService, otpService)
	orgController := controllers.NewOrgController(orgService, orgMemberRepository, orgInvitationRepository)
	orgInvitationController := controllers.NewOrgInvitationController(orgInvitationService, orgInvitationRepository)
	projectController := controllers.NewProjectController(projectService, projectMemberRepository)
	projectMemberController := controllers.NewProjectMemberController(projectMemberRepository)
	projectInvitationController := controllers.NewProjectInvitationController(projectInvitationService, projectInvitationRepository)
	userInvitationController := controllers.NewUserInvitationController(orgInvitationService, projectInvitationService, orgInvitationRepository, projectInvitationRepository)

	authClient := shared.NewAdminClient(shared.GetOryAPIClient(os.Getenv("ORY_KRATOS_PUBLIC")))

	server := middlewares.Server()
	apiV1Router := router.NewAPIV1Router(server, db, pool, authClient)
	sessionRouter := router.NewSessionRouter(apiV1Router, userRepository, userService, authController)
	orgRouter := router.NewOrgRouter(sessionRouter, orgController, orgInvitationController, orgRepository, orgMemberRepository)
	router.NewProjectRouter(orgRouter, projectController, projectMemberController, projectInvitationController, projectRepository, projectMemberRepository)
	router.NewUserRouter(sessionRouter, userInvitationController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return server.Start(":" + port)
}

func initSentry() {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              os.Getenv("ERROR_TRACKING_DSN"),
		Environment:      environment,
		Release:          release,
		Debug:            environment == "dev",
		AttachStacktrace: true,
		SendDefaultPII:   false,
	})
	if err != nil {
		slog.Error("could not init error tracking", "err", err)
	}
}
