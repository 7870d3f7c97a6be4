package app

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli"
	"go.uber.org/zap"

	"wikiguess/internal/config"
	"wikiguess/internal/logging"
	"wikiguess/internal/server"
	"wikiguess/wikiguess"
)

// Run executes the CLI and writes JSON documents to stdout.
// If the page argument of info is missing, it prints help and returns nil.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, client *http.Client) error {
	defaults := config.Default()

	app := cli.NewApp()
	app.Name = "wikiguess"
	app.Usage = "extract country data from Wikipedia"
	app.UsageText = "wikiguess [global options] command [command options] [page]"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "endpoint",
			Usage:  "MediaWiki api.php URL",
			Value:  defaults.Wiki.Endpoint,
			EnvVar: "WIKIGUESS_ENDPOINT",
		},
		cli.DurationFlag{
			Name:   "timeout",
			Usage:  "per-request timeout",
			Value:  defaults.Wiki.Timeout,
			EnvVar: "WIKIGUESS_TIMEOUT",
		},
		cli.StringFlag{
			Name:   "user-agent",
			Usage:  "custom user agent",
			Value:  defaults.Wiki.UserAgent,
			EnvVar: "WIKIGUESS_USER_AGENT",
		},
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "log level written to stderr (debug, info, warn, error)",
			Value:  "warn",
			EnvVar: "WIKIGUESS_LOG_LEVEL",
		},
		cli.BoolFlag{
			Name:   "compact",
			Usage:  "print JSON without indentation",
			EnvVar: "WIKIGUESS_COMPACT",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "countries",
			Usage: "list the UN member states and their pages",
			Action: func(c *cli.Context) error {
				options, err := optionsFromCLI(c, client, stderr)
				if err != nil {
					return err
				}

				return write(stdout, func() ([]byte, error) {
					return wikiguess.Countries(ctx, options)
				})
			},
		},
		{
			Name:      "info",
			Usage:     "print the grouped infobox of a page",
			ArgsUsage: "<page>",
			Action: func(c *cli.Context) error {
				page := c.Args().First()
				if page == "" {
					_ = cli.ShowCommandHelp(c, "info")

					return nil
				}

				options, err := optionsFromCLI(c, client, stderr)
				if err != nil {
					return err
				}

				return write(stdout, func() ([]byte, error) {
					return wikiguess.CountryInfo(ctx, options, page)
				})
			},
		},
		{
			Name:  "serve",
			Usage: "serve the extractor over HTTP until interrupted",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "addr",
					Usage: "listen address, overrides HOST and PORT",
				},
			},
			Action: func(c *cli.Context) error {
				return serve(ctx, c, client, stderr)
			},
		},
	}

	err := app.Run(args)
	if err != nil {
		return err
	}

	return nil
}

func serve(ctx context.Context, c *cli.Context, client *http.Client, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if c.GlobalIsSet("log-level") {
		level = c.GlobalString("log-level")
	}

	logger, err := logging.New(logging.Config{Level: level, Development: cfg.Logging.Development}, stderr)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	options := wikiguess.Options{
		Endpoint:   cfg.Wiki.Endpoint,
		Timeout:    cfg.Wiki.Timeout,
		UserAgent:  cfg.Wiki.UserAgent,
		HTTPClient: client,
	}
	if c.GlobalIsSet("endpoint") {
		options.Endpoint = c.GlobalString("endpoint")
	}
	if c.GlobalIsSet("timeout") {
		options.Timeout = c.GlobalDuration("timeout")
	}
	if c.GlobalIsSet("user-agent") {
		options.UserAgent = c.GlobalString("user-agent")
	}

	addr := cfg.Server.Addr()
	if c.IsSet("addr") {
		addr = c.String("addr")
	}

	logger.Info("configured upstream",
		zap.String("endpoint", options.Endpoint),
		zap.Duration("timeout", options.Timeout),
	)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	return server.New(options, logger).Run(ctx, addr, cfg.Server.ShutdownTimeout)
}

func optionsFromCLI(c *cli.Context, client *http.Client, stderr io.Writer) (wikiguess.Options, error) {
	logger, err := logging.New(logging.Config{Level: c.GlobalString("log-level")}, stderr)
	if err != nil {
		return wikiguess.Options{}, fmt.Errorf("invalid log level: %w", err)
	}

	return wikiguess.Options{
		Endpoint:   c.GlobalString("endpoint"),
		Timeout:    c.GlobalDuration("timeout"),
		UserAgent:  c.GlobalString("user-agent"),
		IndentJSON: !c.GlobalBool("compact"),
		HTTPClient: client,
		Logger:     logger,
	}, nil
}

func write(stdout io.Writer, produce func() ([]byte, error)) error {
	data, err := produce()
	if err != nil {
		return err
	}

	_, err = stdout.Write(data)

	return err
}
