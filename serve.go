package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"ats-backend/config"
	apiv1 "ats-backend/controllers/v1"
	"ats-backend/db"
	_ "ats-backend/docs"
	"ats-backend/fiberlog"
	"ats-backend/initializers"
	dbhealthworker "ats-backend/lib/db-health"
	"ats-backend/lib/ws"
	"ats-backend/middleware"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	initializers.InitBase()
	if err := db.CheckSchema(db.DB); err != nil {
		return err
	}
	initializers.InitAllServices(ctx)
	dbhealthworker.Check(ctx, db.DB)

	app := newApp()

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-c:
		case <-ctx.Done():
			return
		}
		log.Info("gracefully shutting down")
		cancel()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("error while shutting down")
		}
		db.Close()
		log.Info("gracefully shutting down finished")
	}()

	addr := fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)
	if err := app.Listen(addr); err != nil {
		cancel()
		wg.Wait()
		return errors.Wrap(err, "http server failed")
	}
	wg.Wait()
	log.Info("HTTP server successfully stopped")
	return nil
}

func newApp() *fiber.App {
	bodyLimit := config.Conf.App.BodyLimitMb * 1024 * 1024
	app := fiber.New(fiber.Config{
		BodyLimit: bodyLimit,
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New())
	app.Use(swagger.New(swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins(config.Conf.App.CorsOrigins),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PATCH, DELETE, PUT",
		AllowCredentials: true,
	}))
	app.Use(middleware.WithBodyLimit(int64(bodyLimit)))
	if config.Conf.Notify.ErrorsURL != "" {
		app.Use(middleware.ErrNotify(config.Conf.Notify.ErrorsURL, time.Duration(config.Conf.Notify.TimeoutSec)*time.Second))
	}

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiv1.InitHealthRouters(apiV1)
	apiv1.InitAuthApiRouters(apiV1)

	//ws
	wsApp := fiber.New()
	apiV1.Mount("/ws", wsApp)
	wsApp.Use(middleware.AuthorizationRequired(), middleware.RbacMiddleware())
	ws.InitWs(wsApp)

	//protected
	protected := apiV1.Group("", middleware.AuthorizationRequired(), middleware.RbacMiddleware())
	apiv1.InitUsersApiRouters(protected)
	apiv1.InitClientApiRouters(protected)
	apiv1.InitRequirementApiRouters(protected)
	apiv1.InitCandidateApiRouters(protected)
	apiv1.InitPipelineApiRouters(protected)
	apiv1.InitInterviewApiRouters(protected)
	apiv1.InitScreeningApiRouters(protected)
	apiv1.InitAiApiRouters(protected)
	apiv1.InitReportsApiRouters(protected)
	return app
}

// "a, b" -> "a,b"
func corsOrigins(value string) string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return strings.Join(result, ",")
}
