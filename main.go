package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"survey-form/config"
	"survey-form/initializers"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	services := initializers.InitAllServices(ctx)

	app := newApp(appConfig{
		BodyLimit:     config.Conf.App.BodyLimit,
		ErrNotifyAddr: config.Conf.App.ErrNotifyAddr,
		SwaggerFile:   "./docs/swagger.json",
		Logger:        services.LoggerConfig,
	}, services.Question, services.DB)

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
		log.Info("Gracefully shutting down...")
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port))
	if err != nil {
		log.WithError(err).Error("HTTP server stopped with error")
	}
	cancel()
	wg.Wait()

	disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if dErr := services.DB.Disconnect(disconnectCtx); dErr != nil {
		log.WithError(dErr).Warn("ошибка отключения от БД")
	}
	disconnectCancel()
	log.Info("HTTP server successfully stopped")
	if err != nil {
		os.Exit(1)
	}
}
