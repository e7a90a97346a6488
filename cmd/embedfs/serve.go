package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/meigma/embedfs"
)

const addrFlag = "addr"

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve <container>",
		Short: "Serve the files of a container over HTTP",
		Long: `Serve answers HTTP GET requests from the container the way an embedded
web server would, without unpacking it first. Stops on interrupt.`,
		Args: cobra.ExactArgs(1),
		RunE: runServe,
	}
	cmd.Flags().String(addrFlag, "127.0.0.1:8080", "Listen address")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, err := cmd.Flags().GetString(addrFlag)
	if err != nil {
		return err
	}
	handler, err := newServeHandler(args[0])
	if err != nil {
		return err
	}

	log := logger(cmd)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Info("serving container", "path", args[0], "addr", addr)
	return serve(cmd.Context(), srv)
}

// serve runs srv until ctx is done or the listener fails. Both goroutines
// have exited when it returns.
func serve(ctx context.Context, srv *http.Server) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx) //nolint:errcheck // server is exiting anyway
		return nil
	})
	return g.Wait()
}

// newServeHandler loads the container at path into memory and returns a
// file server over it.
func newServeHandler(path string) (http.Handler, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided path is intentional
	if err != nil {
		return nil, fmt.Errorf("read container: %w", err)
	}
	fsys, err := embedfs.NewFS(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return http.FileServerFS(fsys), nil
}
