package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"orderflow/cmd"

	"github.com/go-faster/errors"
	"github.com/labstack/gommon/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("orderflow: %v", err)
	}
}

func run() error {
	cfg, err := cmd.LoadConfig(".env", "config.yaml", "/etc/orderflow/config.yaml")
	if err != nil {
		return err
	}

	logger, err := cmd.NewLogger(cfg, os.Stdout)
	if err != nil {
		return errors.Wrap(err, "build logger")
	}

	app, err := cmd.NewCompositionRoot(cfg, logger)
	if err != nil {
		return errors.Wrap(err, "compose application")
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return errors.Wrap(err, "start jobs")
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Demo {
		if err = cmd.RunDemo(ctx, app); err != nil {
			return errors.Wrap(err, "run demo")
		}
	}

	if cfg.Once {
		return nil
	}

	logger.InfoContext(ctx, "Order service running, press Ctrl+C to stop")
	<-ctx.Done()
	logger.InfoContext(context.Background(), "Shutting down")
	return nil
}
