package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mordilloSan/go-sinklog/logger"
	"github.com/urfave/cli/v3"
)

// Example binary: logs its arguments through the console or file sink.
//
// Usage: ./go-sinklog [--stream file] [--file app.log] [--color] word...
func main() {
	app := &cli.Command{
		Name:      "go-sinklog",
		Usage:     "Log the given words through the console or file sink",
		ArgsUsage: "[word...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "TOML configuration file",
				Value: "sinklog.toml",
			},
			&cli.StringFlag{
				Name:  "stream",
				Usage: "Output stream: console or file",
			},
			&cli.StringFlag{
				Name:  "file",
				Usage: "Log file used by the file stream",
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "Colorize console tags",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "Keep running and reload the config file when it changes",
			},
		},
		Action: run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.ErrorHere(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	cfg, err := logger.LoadConfig(configPath)
	if err != nil {
		return err
	}
	flags, err := flagOverrides(cmd)
	if err != nil {
		return err
	}
	flags(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Init(cfg)
	defer logger.Close() // Don't forget to close the log file!

	words := cmd.Args().Slice()
	values := make([]any, len(words))
	for i, w := range words {
		values[i] = w
	}
	logger.LogInfo(values...)
	logger.DebugHere("stream=", logger.Stream(), "words=", len(words))
	logger.SuccessHere()

	if !cmd.Bool("watch") {
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.LogInfo("watching", configPath, "for changes")
	return logger.Watch(ctx, configPath, logger.Default(), flags)
}

// flagOverrides returns a function that applies the flags given on the
// command line on top of a loaded config, so they also hold after reloads.
func flagOverrides(cmd *cli.Command) (func(*logger.Config), error) {
	var mode logger.SinkMode
	if cmd.IsSet("stream") {
		var err error
		if mode, err = logger.ParseSinkMode(cmd.String("stream")); err != nil {
			return nil, err
		}
	}
	return func(cfg *logger.Config) {
		if cmd.IsSet("stream") {
			cfg.Stream = mode
		}
		if cmd.IsSet("file") {
			cfg.FilePath = cmd.String("file")
		}
		if cmd.IsSet("color") {
			cfg.Colorize = cmd.Bool("color")
		}
	}, nil
}
