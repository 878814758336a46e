package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/genome-annotator/internal/app"
	"github.com/genome-annotator/internal/config"
)

func main() {
	// Optional .env for local development; environment wins otherwise.
	_ = godotenv.Load()

	genomePath := flag.String("genome", "", "path to the raw genotyping export (overrides configuration)")
	reportDir := flag.String("report-dir", "", "directory for generated reports (overrides configuration)")
	flag.Usage = usage
	flag.Parse()

	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if *genomePath != "" {
		configManager.GetGenomeConfig().Path = *genomePath
	}
	if *reportDir != "" {
		configManager.GetReportConfig().Dir = *reportDir
	}

	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	application, err := app.New(configManager)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		application.Logger().Info("Shutdown signal received")
		cancel()
	}()

	args := flag.Args()
	command := "run"
	if len(args) > 0 {
		command = args[0]
	}

	switch command {
	case "run":
		path, err := application.Run(ctx)
		if err != nil {
			application.Logger().WithError(err).Fatal("Annotation run failed")
		}
		fmt.Println(path)

	case "kb":
		if len(args) < 2 {
			usage()
			os.Exit(2)
		}
		if err := runKB(ctx, application, args[1:]); err != nil {
			application.Logger().WithError(err).Fatal("Knowledge base command failed")
		}

	default:
		usage()
		os.Exit(2)
	}
}

func runKB(ctx context.Context, application *app.App, args []string) error {
	switch args[0] {
	case "export":
		return application.ExportMarkers(ctx, os.Stdout)

	case "import":
		if len(args) < 2 {
			return fmt.Errorf("kb import requires a JSON file argument")
		}
		f, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("opening import file: %w", err)
		}
		defer f.Close()
		return application.ImportMarkers(ctx, f)

	default:
		return fmt.Errorf("unknown kb command %q", args[0])
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: annotator [flags] [command]

Commands:
  run                 annotate the configured genome file (default)
  kb export           write the marker store as JSON to stdout
  kb import <file>    load a JSON marker export into the marker store

Flags:
`)
	flag.PrintDefaults()
}
