package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"horde-arena/internal/commons/logger_config"
	"horde-arena/internal/config"
	"horde-arena/internal/telemetry"
	"horde-arena/internal/tui"
)

func main() {
	cfgPath := flag.String("config", "", "path to a YAML tuning file")
	logPath := flag.String("log", "arena-tui.log", "log file (the terminal is busy drawing)")
	flag.Parse()

	if err := run(*cfgPath, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "arena-tui: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath, logPath string) error {
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	logger_config.SetOutput(logFile)

	settings, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	logger_config.SetLevel(settings.LogLevel)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	sink := telemetry.NewSink()
	defer sink.Close()

	app, err := tui.NewApp(screen, settings.World, telemetry.NewRecorder(sink))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx)
}
