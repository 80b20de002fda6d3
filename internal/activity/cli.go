package activity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/briangreenhill/extrack/internal/config"
)

type CLI struct {
	writer          io.Writer
	logger          *slog.Logger
	activityService *Service
	cfg             config.Config
	version         string
	now             func() time.Time
}

func NewCLI(w io.Writer, logger *slog.Logger, activityService *Service, cfg config.Config, version string) *CLI {
	return &CLI{
		writer:          w,
		logger:          logger,
		activityService: activityService,
		cfg:             cfg,
		version:         version,
		now:             time.Now,
	}
}

func (c *CLI) Run(args []string) error {
	root := c.Command()
	root.SetArgs(args)
	return root.Execute()
}

// Command builds the cobra command tree. With no subcommand it prints the
// demonstration summaries.
func (c *CLI) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "extrack",
		Short:         "Summarise running, cycling and swimming sessions",
		Version:       c.version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.PrintSummaries(cmd.Context())
		},
	}
	root.SetOut(c.writer)

	var addr string
	api := &cobra.Command{
		Use:   "api",
		Short: "Serve the sample activities over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.RunAPI(cmd.Context(), addr)
		},
	}
	api.Flags().StringVar(&addr, "addr", c.cfg.APIAddress, "listen address")
	root.AddCommand(api)

	return root
}

func (c *CLI) PrintSummaries(ctx context.Context) error {
	entries, err := c.seed(ctx)
	if err != nil {
		return err
	}

	activities := make([]Activity, 0, len(entries))
	for _, e := range entries {
		activities = append(activities, e.Activity)
	}

	return WriteSummaries(c.writer, activities)
}

func (c *CLI) RunAPI(ctx context.Context, addr string) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	if _, err := c.seed(ctx); err != nil {
		return err
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      NewAPI(c.logger, c.activityService),
		ReadTimeout:  c.cfg.ReadTimeout,
		WriteTimeout: c.cfg.WriteTimeout,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		c.logger.Info("Shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), c.cfg.ShutdownTimeout)
		defer shutdownCancel()
		shutdownErr <- server.Shutdown(shutdownCtx)
	}()

	c.logger.Info("Starting server", slog.String("addr", addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		c.logger.Error("Error starting server", slog.Any("error", err))
		cancel()
		<-shutdownErr
		return err
	}

	// ListenAndServe returns as soon as Shutdown starts; wait for it to drain.
	if err := <-shutdownErr; err != nil {
		c.logger.Error("Error shutting down server", slog.Any("error", err))
		return err
	}

	return nil
}

// seed adds the sample activities to the tracker, dated today.
func (c *CLI) seed(ctx context.Context) ([]Entry, error) {
	samples, err := Samples(c.now())
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(samples))
	for _, a := range samples {
		e, err := c.activityService.Add(ctx, a)
		if err != nil {
			return nil, fmt.Errorf("tracking %s: %w", a.Kind(), err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}
