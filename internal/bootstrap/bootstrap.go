package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"httplite/internal/config"
	"httplite/internal/log"
	"httplite/internal/router"
	"httplite/internal/storage"
	"httplite/internal/transport"

	"golang.org/x/sync/errgroup"
)

type Bootstrap struct {
	Config     config.Config
	Store      storage.Store
	Router     *router.Router
	Transport  transport.Transport
	SignalChan chan os.Signal
}

// New wires storage, router and transport from config. A configured base
// directory that cannot be opened is a startup error.
func New(conf config.Config) (*Bootstrap, error) {
	var store storage.Store
	if dir := conf.Directory(); dir != "" {
		s, err := storage.NewDirStore(dir)
		if err != nil {
			return nil, fmt.Errorf("open directory: %w", err)
		}
		store = s
	}

	r := router.New(store)
	httpServer := transport.NewHTTPServer(conf.ListenAddr(), r,
		transport.WithMaxRequestSize(conf.MaxRequestSize()),
		transport.WithReadTimeout(conf.ReadTimeout()),
		transport.WithLineJoinedBody(conf.LineJoinedBody()),
	)

	return &Bootstrap{
		Config:     conf,
		Store:      store,
		Router:     r,
		Transport:  httpServer,
		SignalChan: make(chan os.Signal, 1),
	}, nil
}

// Run serves until a signal arrives or the server fails, then drains
// in-flight connections for at most the configured shutdown timeout.
func (b *Bootstrap) Run() error {
	if b.Store != nil {
		defer func() {
			if err := b.Store.Close(); err != nil {
				log.Errorf("Failed to close store: %v", err)
			}
		}()
	}

	ln, err := b.Transport.Listen()
	if err != nil {
		return fmt.Errorf("failed to start http server: %w", err)
	}

	signal.Notify(b.SignalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(b.SignalChan)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		if err := b.Transport.Serve(ln); err != nil && !errors.Is(err, net.ErrClosed) {
			return fmt.Errorf("error when serving http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		select {
		case sig := <-b.SignalChan:
			log.Infof("Received signal %s, initiating graceful shutdown", sig)
		case <-gctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), b.Config.ShutdownTimeout())
		defer shutdownCancel()
		if err := b.Transport.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		log.Infof("All connections drained")
		return nil
	})

	return g.Wait()
}
