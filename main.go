package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
	"komreq-backend/config"
	apiv1 "komreq-backend/controllers/v1"
	"komreq-backend/fiberlog"
	"komreq-backend/initializers"
	"komreq-backend/lib/ws"
	"komreq-backend/middleware"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	bodyLimit := config.Conf.App.BodyLimitMb * 1024 * 1024
	app := fiber.New(fiber.Config{
		BodyLimit: bodyLimit,
	})
	app.Use(fiberRecover.New())
	app.Use(middleware.WithBodyLimit(int64(bodyLimit)))

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	if _, err := os.Stat(swaggerCfg.FilePath); err == nil {
		app.Use(swagger.New(swaggerCfg))
	} else {
		log.Warn("swagger.json не найден, документация API недоступна")
	}

	//api
	apiV1 := fiber.New(fiber.Config{
		BodyLimit: bodyLimit,
	})
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, DELETE, PUT",
	}))
	apiV1.Use(middleware.ErrNotify(config.Conf.App.ErrNotifyAddr))

	// регистрация и вход без токена, остальное в группе auth под авторизацией
	apiv1.InitAuthApiRouters(apiV1)

	apiV1.Use(middleware.AuthorizationRequired(), middleware.RbacMiddleware())
	apiv1.InitRequestApiRouters(apiV1)
	apiv1.InitEquipmentTypeApiRouters(apiV1)
	apiv1.InitAuditLogApiRouters(apiV1)
	apiv1.InitNotificationApiRouters(apiV1)
	apiv1.InitReportApiRouters(apiV1)
	apiv1.InitRequestStatusApiRouters(apiV1)
	ws.InitWs(apiV1)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-c
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
