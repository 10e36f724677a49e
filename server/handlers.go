package server

import (
	"embed"
	"encoding/json"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/sse-mib/instviz/logger"
	"github.com/sse-mib/instviz/version"
)

//go:embed web
var webFiles embed.FS

// upgrader validates origins before upgrading. Empty origins (direct
// WebSocket clients, tests) and localhost are accepted.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	CheckOrigin:     checkOrigin,
}

func checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, prefix := range []string{
		"http://localhost", "https://localhost",
		"http://127.0.0.1", "https://127.0.0.1",
	} {
		if strings.HasPrefix(origin, prefix) {
			return true
		}
	}
	// Same-host origins (deployed behind a hostname)
	return strings.Contains(origin, r.Host)
}

// routes configures the HTTP surface
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.HandleWebSocket)
	mux.HandleFunc("/health", s.HandleHealth)

	static, err := fs.Sub(webFiles, "web")
	if err != nil {
		// The embed is part of the binary; a missing subtree is a build defect
		panic(err)
	}
	mux.Handle("/", http.FileServer(http.FS(static)))

	return mux
}

// HandleWebSocket upgrades the connection and starts a visualization session
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Errorw("WebSocket upgrade failed",
			logger.FieldError, err.Error(),
		)
		return
	}

	ds := s.Dataset()
	client := newClient(s, conn, ds)

	// Send version and initial UI state BEFORE starting writePump to avoid
	// concurrent writes on the connection.
	if err := conn.WriteJSON(versionMessage{Type: "version", Info: version.Get()}); err != nil {
		s.logger.Debugw("Failed to send version info",
			logger.FieldClientID, client.id,
			logger.FieldError, err.Error(),
		)
	}
	if err := conn.WriteJSON(buildInit(ds, client.view)); err != nil {
		s.logger.Debugw("Failed to send init state",
			logger.FieldClientID, client.id,
			logger.FieldError, err.Error(),
		)
	}

	s.addClient(client)

	go client.writePump()
	go client.readPump()

	// First chart render with the default view, queued through the pump
	client.stateMu.Lock()
	chart := buildChart(ds, client.view, client.filters)
	client.stateMu.Unlock()
	client.trySend(chart)
}

// HandleHealth reports process and dataset status
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ds := s.Dataset()
	s.mu.RLock()
	clients := len(s.clients)
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":   "ok",
		"version":  version.Get().Version,
		"readings": ds.Catalog.Len(),
		"axes":     ds.Registry.Len(),
		"clients":  clients,
	})
}
