// Package server hosts the instviz visualization: a WebSocket session per
// browser tab, static chart assets, and the load-once dataset shared
// read-only across all sessions.
package server

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/sse-mib/instviz/catalog"
	"github.com/sse-mib/instviz/config"
	"github.com/sse-mib/instviz/errors"
	"github.com/sse-mib/instviz/logger"
)

// Dataset pairs the axis registry with the reading catalog loaded from it.
// Both are immutable; reloads swap the whole pair atomically.
type Dataset struct {
	Registry *catalog.Registry
	Catalog  *catalog.Catalog
}

// LoadDataset loads and cross-validates the two JSON documents.
// Any failure here is fatal at startup.
func LoadDataset(cfg *config.Config) (*Dataset, error) {
	reg, err := catalog.LoadAxes(cfg.Data.AxesPath)
	if err != nil {
		return nil, errors.Wrap(err, "load axis definitions")
	}
	cat, err := catalog.LoadReadings(cfg.Data.ReadingsPath, reg)
	if err != nil {
		return nil, errors.Wrap(err, "load readings")
	}
	return &Dataset{Registry: reg, Catalog: cat}, nil
}

// Server owns the dataset, the connected clients, and the HTTP surface
type Server struct {
	cfg    *config.Config
	logger *zap.SugaredLogger

	dataset atomic.Pointer[Dataset]

	mu      sync.RWMutex
	clients map[*Client]bool

	watcher *DatasetWatcher
}

// New creates a Server around an already-loaded dataset
func New(cfg *config.Config, ds *Dataset) *Server {
	s := &Server{
		cfg:     cfg,
		logger:  logger.ComponentLogger("server"),
		clients: make(map[*Client]bool),
	}
	s.dataset.Store(ds)
	return s
}

// Dataset returns the current dataset snapshot. Handlers read this once per
// request so a mid-request reload cannot mix registry and catalog versions.
func (s *Server) Dataset() *Dataset {
	return s.dataset.Load()
}

// SwapDataset atomically replaces the dataset and pushes fresh state to
// every connected client.
func (s *Server) SwapDataset(ds *Dataset) {
	s.dataset.Store(ds)
	s.logger.Infow("Dataset reloaded",
		logger.FieldCount, ds.Catalog.Len(),
		"axes", ds.Registry.Len(),
	)
	s.refreshClients(ds)
}

// refreshClients re-sends init and chart state after a dataset swap.
// Sessions whose selected axes vanished in the reload fall back to the new
// dataset's default selection rather than erroring on every render.
func (s *Server) refreshClients(ds *Dataset) {
	for _, client := range s.clientList() {
		client.refresh(ds)
	}
}

func (s *Server) addClient(c *Client) {
	s.mu.Lock()
	s.clients[c] = true
	count := len(s.clients)
	s.mu.Unlock()
	s.logger.Infow("Client connected",
		logger.FieldClientID, c.id,
		logger.FieldCount, count,
	)
}

func (s *Server) removeClient(c *Client) {
	s.mu.Lock()
	if _, ok := s.clients[c]; ok {
		delete(s.clients, c)
		c.closeSend()
	}
	count := len(s.clients)
	s.mu.Unlock()
	s.logger.Infow("Client disconnected",
		logger.FieldClientID, c.id,
		logger.FieldCount, count,
	)
}

func (s *Server) clientList() []*Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clients := make([]*Client, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	return clients
}

// Serve runs the HTTP server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context) error {
	if s.cfg.Data.Watch {
		watcher, err := NewDatasetWatcher(s)
		if err != nil {
			return errors.Wrap(err, "start dataset watcher")
		}
		s.watcher = watcher
		s.watcher.Start()
		defer s.watcher.Stop()
	}

	httpServer := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infow("Server listening",
			logger.FieldAddress, httpServer.Addr,
			logger.FieldCount, s.Dataset().Catalog.Len(),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "http server")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	s.logger.Infow("Server stopped")
	return nil
}
