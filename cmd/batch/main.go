package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/woozymasta/geodoc/internal/config"
	"github.com/woozymasta/geodoc/internal/logger"
	"github.com/woozymasta/geodoc/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile  string   `short:"c" long:"config"      env:"CONFIG_FILE" description:"Path to configuration file" default:"config.yaml"`
	Limit       []string `short:"l" long:"limit"       env:"LIMIT_JOBS"  description:"Limit processing to specific job names"`
	Concurrency int      `short:"p" long:"concurrency" env:"CONCURRENCY" description:"Concurrency, overrides the configuration"`
	Force       bool     `short:"f" long:"force"       description:"Force overwrite of existing files"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if opts.Concurrency > 0 {
		cfg.Defaults.Concurrency = opts.Concurrency
	}

	jobs, missing := cfg.Select(opts.Limit)
	for _, name := range missing {
		log.Error().
			Str("name", name).
			Msg("Job specified in --limit not found in configuration")
	}

	log.Info().
		Int("jobs_total", len(cfg.Jobs)).
		Int("jobs_queued", len(jobs)).
		Int("concurrency", cfg.Defaults.Concurrency).
		Bool("force", opts.Force).
		Msg("Starting batch")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	failed := 0
	for _, res := range processor.ProcessJobs(ctx, processor.NewHTTPClient(), jobs, cfg.Defaults, opts.Force) {
		if res.Err != nil {
			failed++
		}
	}

	if failed > 0 {
		log.Fatal().Int("failed", failed).Msg("Batch finished with errors")
	}
	log.Info().Msg("Batch finished successfully")
}
