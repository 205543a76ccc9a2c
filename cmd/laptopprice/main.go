// laptopprice - interactive client for the laptop price scoring service
//
// Usage:
//
//	laptopprice [--url URL --token TOKEN]
//	laptopprice score --cpu i5 --ghz 2.4 --gpu nvidia --ram 16 --ram-type ddr4 \
//	    --screen 15.6 --storage 512 --ssd=true --weight 1.8
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"laptop-price/internal/prompt"
	"laptop-price/internal/report"
	"laptop-price/internal/scoring"
	"laptop-price/internal/session"
	"laptop-price/pkg/platform"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := platform.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load .env: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// After the first signal, restore default handling so a second one kills.
	go func() {
		<-ctx.Done()
		stop()
	}()

	app := newApp(os.Stdin, os.Stdout)
	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newApp(in io.Reader, out io.Writer) *cli.App {
	return &cli.App{
		Name:      "laptopprice",
		Usage:     "Predict a laptop's price from its hardware configuration",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Reader:    in,
		Writer:    out,
		ErrWriter: os.Stderr,

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "url",
				Usage:   "Scoring service request/response URL",
				EnvVars: []string{"LAPTOPPRICE_URL"},
			},
			&cli.StringFlag{
				Name:    "token",
				Usage:   "Scoring service API token (sent as a bearer credential)",
				EnvVars: []string{"LAPTOPPRICE_TOKEN"},
			},
			&cli.StringFlag{
				Name:    "price-column",
				Value:   report.DefaultPriceColumn,
				Usage:   "Output column holding the predicted price (empty: 10th column)",
				EnvVars: []string{"LAPTOPPRICE_PRICE_COLUMN"},
			},
			&cli.StringFlag{
				Name:    "currency",
				Value:   report.DefaultCurrency,
				Usage:   "Currency marker printed before the price",
				EnvVars: []string{"LAPTOPPRICE_CURRENCY"},
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "Request timeout (0 waits indefinitely)",
				EnvVars: []string{"LAPTOPPRICE_TIMEOUT"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LAPTOPPRICE_LOG_LEVEL"},
			},
		},

		Commands: []*cli.Command{
			scoreCommand(),
		},
		Action: runInteractive,
	}
}

// =============================================================================
// INTERACTIVE SESSION
// =============================================================================

func runInteractive(c *cli.Context) error {
	logger := platform.InitLogger(c.String("log-level"))

	client, err := newScoringClient(c, logger)
	if err != nil {
		return err
	}

	s := session.New(
		prompt.NewCollector(c.App.Reader, c.App.Writer, logger),
		client,
		report.NewPresenter(c.App.Writer, presenterOptions(c)),
		logger,
	)
	return s.Run(c.Context)
}

// =============================================================================
// SCORE COMMAND
// =============================================================================

func scoreCommand() *cli.Command {
	return &cli.Command{
		Name:  "score",
		Usage: "Score a single configuration given as flags",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "cpu", Usage: "CPU (i3, i5, i7)", Required: true},
			&cli.StringFlag{Name: "ghz", Usage: "CPU speed in GHz", Required: true},
			&cli.StringFlag{Name: "gpu", Usage: "GPU (intel, nvidia, amd)", Required: true},
			&cli.StringFlag{Name: "ram", Usage: "RAM size in GB", Required: true},
			&cli.StringFlag{Name: "ram-type", Usage: "RAM type (ddr3, ddr4)", Required: true},
			&cli.StringFlag{Name: "screen", Usage: "Screen size in inches", Required: true},
			&cli.StringFlag{Name: "storage", Usage: "Storage size in GB", Required: true},
			&cli.BoolFlag{Name: "ssd", Usage: "Storage is an SSD"},
			&cli.StringFlag{Name: "weight", Usage: "Weight in kg", Required: true},
		},
		Action: runScore,
	}
}

func runScore(c *cli.Context) error {
	logger := platform.InitLogger(c.String("log-level"))

	params, err := prompt.ParseParams([]string{
		c.String("cpu"),
		c.String("ghz"),
		c.String("gpu"),
		c.String("ram"),
		c.String("ram-type"),
		c.String("screen"),
		c.String("storage"),
		strconv.FormatBool(c.Bool("ssd")),
		c.String("weight"),
	})
	if err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}

	client, err := newScoringClient(c, logger)
	if err != nil {
		return err
	}

	resp, err := client.Predict(c.Context, params.Request())
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}
	if resp == nil {
		return errors.New("no prediction received")
	}

	if err := report.NewPresenter(c.App.Writer, presenterOptions(c)).Present(resp); err != nil {
		logger.Warn().Err(err).Msg("Prediction presented incompletely")
	}
	return nil
}

func newScoringClient(c *cli.Context, logger zerolog.Logger) (*scoring.Client, error) {
	client, err := scoring.NewClient(&scoring.Config{
		URL:         c.String("url"),
		Token:       c.String("token"),
		Timeout:     c.Duration("timeout"),
		Logger:      logger,
		Diagnostics: c.App.Writer,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return client, nil
}

func presenterOptions(c *cli.Context) report.Options {
	return report.Options{
		PriceColumn: c.String("price-column"),
		Currency:    c.String("currency"),
	}
}
