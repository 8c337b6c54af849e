package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/pawarnirmal/portfolio/internal/config"
	"github.com/pawarnirmal/portfolio/internal/logger"
)

func main() {
	app := &cli.App{
		Name:  "portfolio",
		Usage: "Personal portfolio site",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "json",
				Usage:   "Log format (json, console)",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "database-url",
				Aliases: []string{"d"},
				Value:   config.DefaultDatabaseURL,
				Usage:   "SQLite file or postgres:// URL",
				EnvVars: []string{"DATABASE_URL"},
			},
			&cli.StringFlag{
				Name:    "content-file",
				Aliases: []string{"c"},
				Usage:   "Portfolio content (.toml, .yaml or .json); built-in content when empty",
				EnvVars: []string{"CONTENT_FILE"},
			},
		},
		Before: func(c *cli.Context) error {
			_, err := logger.Setup(logger.ParseLevel(c.String("log-level")), c.String("log-format"))
			return err
		},
		After: func(c *cli.Context) error {
			_ = zap.L().Sync()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the web server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Value:   config.DefaultPort,
						Usage:   "HTTP server port",
						EnvVars: []string{"PORT"},
					},
				},
				Action: runServe,
			},
			{
				Name:   "migrate",
				Usage:  "Apply database migrations",
				Action: runMigrate,
			},
			{
				Name:  "export",
				Usage: "Write a static build of the site",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Value:   "dist",
						Usage:   "Output directory",
					},
				},
				Action: runExport,
			},
			{
				Name:   "deliver",
				Usage:  "Send queued contact messages once",
				Action: runDeliver,
			},
			{
				Name:   "cleanup",
				Usage:  "Delete visitor records past the retention period",
				Action: runCleanup,
			},
		},
		Action: runServe,
	}

	if err := app.Run(os.Args); err != nil {
		if log := zap.L(); log.Core().Enabled(zap.ErrorLevel) {
			log.Error("application error", zap.Error(err))
			_ = log.Sync()
		} else {
			// The logger itself failed to build.
			fmt.Fprintln(os.Stderr, "portfolio:", err)
		}
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies the global flags on top.
func loadConfig(c *cli.Context) *config.Config {
	cfg := config.FromEnv()
	cfg.DatabaseURL = c.String("database-url")
	cfg.ContentFile = c.String("content-file")
	cfg.LogLevel = c.String("log-level")
	cfg.LogFormat = c.String("log-format")
	if port := c.String("port"); port != "" {
		cfg.Port = port
	}
	return cfg
}
