package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"moneta/internal/config"
	"moneta/internal/database"
	"moneta/internal/logger"
	"moneta/internal/notify"
	"moneta/internal/services"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	client, err := notify.NewClient(appConfig.AMQPURL, appConfig.AMQPExchange, appConfig.AMQPQueue)
	if err != nil {
		return fmt.Errorf("failed to connect to AMQP broker: %w", err)
	}
	defer client.Close()

	reminderService := services.NewReminderService(dbManager.DB())
	dispatcher := notify.NewDispatcher(reminderService, client, appConfig.NotifyScanInterval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return dispatcher.Run(ctx)
	})

	g.Go(func() error {
		return client.ConsumeReminderDue(ctx, func(msg *notify.ReminderDueMessage) error {
			log.Infow("reminder due",
				"reminder_id", msg.ReminderID,
				"type", msg.Type,
				"title", msg.Title,
				"due_date", msg.DueDate,
			)
			return nil
		})
	})

	log.Infow("notifier started",
		"scan_interval", appConfig.NotifyScanInterval,
		"queue", appConfig.AMQPQueue,
	)

	return g.Wait()
}
