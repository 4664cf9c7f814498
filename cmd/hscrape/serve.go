package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	hshttp "github.com/fwojciec/hscrape/http"
)

// shutdownTimeout bounds how long in-flight requests may finish on exit.
const shutdownTimeout = 5 * time.Second

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ln, err := net.Listen("tcp", c.Addr)
	if err != nil {
		return fail(deps, err)
	}

	srv := &http.Server{
		Handler:           hshttp.NewServer(deps.Scraper, deps.Origin, deps.Logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	deps.Logger.Info("listening", "addr", ln.Addr().String(), "origin", deps.Origin)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fail(deps, err)
	case <-deps.Ctx.Done():
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fail(deps, err)
	}
	deps.Logger.Info("stopped")
	return nil
}
