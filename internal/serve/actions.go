package serve

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dtnitsch/og-preview/internal/common"
	"github.com/dtnitsch/og-preview/internal/inspect"
	"github.com/urfave/cli/v2"
)

// Flags returns the flags accepted by the serve command. Inspection flags
// are shared with the inspect command; url, format and output do not apply.
func Flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "addr", Value: "127.0.0.1:8080", Usage: "listen address"},
	}
	for _, f := range inspect.Flags() {
		switch f.Names()[0] {
		case "url", "format", "output", "fail-on-error", "live-file":
			continue
		}
		flags = append(flags, f)
	}
	return flags
}

// ServeAction runs the web UI until interrupted.
func ServeAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))
	config := inspect.ConfigFromContext(c)

	srv := &http.Server{
		Addr:              c.String("addr"),
		Handler:           NewServer(inspect.NewInspector(config, logger), config.Timeout, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
