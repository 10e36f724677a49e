package server

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/sse-mib/instviz/catalog"
	"github.com/sse-mib/instviz/logger"
	"github.com/sse-mib/instviz/view"
)

// WebSocket timeout constants following Gorilla best practices
// See: https://github.com/gorilla/websocket/blob/master/examples/chat/client.go
const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = 54 * time.Second

	// Maximum message size allowed from peer
	maxMessageSize = 64 * 1024
)

// Client is one browser session: a WebSocket connection plus its private
// view state. Interaction events for a session are handled one at a time by
// readPump; stateMu only guards against dataset-reload pushes arriving from
// the watcher goroutine.
type Client struct {
	server  *Server
	conn    *websocket.Conn
	send    chan interface{}
	id      string
	limiter *rate.Limiter

	// sendMu orders trySend against closeSend so a dataset-refresh push
	// racing a disconnect can never write to a closed channel.
	sendMu sync.Mutex
	closed bool

	stateMu sync.Mutex
	view    *view.State
	filters catalog.FilterState
}

func newClient(s *Server, conn *websocket.Conn, ds *Dataset) *Client {
	return &Client{
		server:  s,
		conn:    conn,
		send:    make(chan interface{}, 64),
		id:      uuid.NewString(),
		limiter: rate.NewLimiter(rate.Limit(s.cfg.Server.RequestsPerSecond), s.cfg.Server.RequestBurst),
		view:    view.NewState(ds.Registry),
		filters: catalog.FilterState{Section: catalog.FilterAll, Author: catalog.FilterAll},
	}
}

// trySend queues a message without blocking; a slow client loses updates
// rather than stalling the sender. Messages to a disconnected client are
// silently dropped.
func (c *Client) trySend(msg interface{}) {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- msg:
	default:
		c.server.logger.Debugw("Send channel full, dropping message",
			logger.FieldClientID, c.id,
		)
	}
}

// closeSend closes the send channel exactly once, excluding concurrent
// trySend callers. Safe to call from any goroutine.
func (c *Client) closeSend() {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

func (c *Client) readPump() {
	defer func() {
		c.server.removeClient(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	c.server.logger.Debugw("Read pump started", logger.FieldClientID, c.id)

	for {
		_, messageBytes, err := c.conn.ReadMessage()
		if err != nil {
			c.handleReadError(err)
			break
		}

		if !c.limiter.Allow() {
			c.trySend(errorMessage{Type: "error", Message: "Too many requests, slow down."})
			continue
		}

		var msg clientMessage
		if err := json.Unmarshal(messageBytes, &msg); err != nil {
			c.server.logger.Warnw("JSON unmarshal error",
				logger.FieldError, err.Error(),
				logger.FieldClientID, c.id,
			)
			c.trySend(errorMessage{Type: "error", Message: "Malformed request."})
			continue
		}

		c.routeMessage(&msg)
	}
}

// handleReadError logs unexpected WebSocket read errors.
// Expected closure codes (going away, abnormal, no status) are silently ignored.
func (c *Client) handleReadError(err error) {
	if websocket.IsUnexpectedCloseError(err,
		websocket.CloseGoingAway,
		websocket.CloseAbnormalClosure,
		websocket.CloseNoStatusReceived,
	) {
		c.server.logger.Warnw("WebSocket read error",
			logger.FieldError, err.Error(),
			logger.FieldClientID, c.id,
		)
	}
}

// routeMessage dispatches incoming WebSocket messages to the right handler
func (c *Client) routeMessage(msg *clientMessage) {
	switch msg.Type {
	case "render":
		c.handleRender(msg)
	case "camera":
		c.handleCamera(msg.Camera)
	case "detail":
		c.handleDetail(msg.Title)
	case "ping":
		// Deadline refresh is handled by the pong handler
	default:
		c.server.logger.Debugw("Unknown message type",
			logger.FieldRequestType, msg.Type,
			logger.FieldClientID, c.id,
		)
		c.trySend(errorMessage{Type: "error", Message: "Unknown request type."})
	}
}

// writePump writes queued messages and keepalive pings to the connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	c.server.logger.Debugw("Write pump started", logger.FieldClientID, c.id)

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				c.server.logger.Debugw("Message write error",
					logger.FieldError, err.Error(),
					logger.FieldClientID, c.id,
				)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// refresh rebuilds the client's session state against a freshly swapped
// dataset and pushes new init + chart payloads. The selection survives the
// reload when its axes still exist; otherwise the session falls back to the
// new dataset's defaults. Filter values that vanished reset to "all".
func (c *Client) refresh(ds *Dataset) {
	c.stateMu.Lock()

	old := c.view
	next := view.NewState(ds.Registry)
	sel := old.Selection()
	if err := next.SetAxes(sel.X, sel.Y, sel.Z); err != nil {
		c.server.logger.Debugw("Selection invalid after reload, using defaults",
			logger.FieldClientID, c.id,
			logger.FieldError, err.Error(),
		)
	}
	// Preset table is fixed, so the old preset is always valid
	_ = next.SetCamera(old.CameraPreset())
	c.view = next

	if !contains(ds.Catalog.Sections(), c.filters.Section) {
		c.filters.Section = catalog.FilterAll
	}
	if !contains(ds.Catalog.Authors(), c.filters.Author) {
		c.filters.Author = catalog.FilterAll
	}

	init := buildInit(ds, c.view)
	chart := buildChart(ds, c.view, c.filters)
	c.stateMu.Unlock()

	c.trySend(init)
	c.trySend(chart)
}

func contains(values []string, v string) bool {
	if v == "" || v == catalog.FilterAll {
		return true
	}
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// handleRender applies any filter/axis/camera updates and recomputes the
// chart. Invalid updates reject the whole request and keep prior state.
func (c *Client) handleRender(msg *clientMessage) {
	ds := c.server.Dataset()

	c.stateMu.Lock()
	if msg.Axes != nil {
		if err := c.view.SetAxes(msg.Axes.X, msg.Axes.Y, msg.Axes.Z); err != nil {
			c.stateMu.Unlock()
			c.rejectRequest("render", err)
			return
		}
	}
	if msg.Camera != "" {
		if err := c.view.SetCamera(msg.Camera); err != nil {
			c.stateMu.Unlock()
			c.rejectRequest("render", err)
			return
		}
	}
	if msg.Filters != nil {
		c.filters = *msg.Filters
	}
	response := buildChart(ds, c.view, c.filters)
	sel := c.view.Selection()
	c.stateMu.Unlock()

	c.server.logger.Debugw("Render request",
		logger.FieldClientID, c.id,
		logger.FieldAxis, []string{sel.X, sel.Y, sel.Z},
	)
	c.trySend(response)
}

// handleCamera is a pure view-state change: no data is recomputed
func (c *Client) handleCamera(preset string) {
	c.stateMu.Lock()
	err := c.view.SetCamera(preset)
	cam := c.view.CurrentCamera()
	active := c.view.CameraPreset()
	c.stateMu.Unlock()

	if err != nil {
		c.rejectRequest("camera", err)
		return
	}
	c.server.logger.Debugw("Camera preset changed",
		logger.FieldClientID, c.id,
		logger.FieldPreset, active,
	)
	c.trySend(cameraMessage{Type: "camera", Preset: active, Camera: cam})
}

// handleDetail recovers the full record behind a clicked point
func (c *Client) handleDetail(title string) {
	ds := c.server.Dataset()
	c.server.logger.Debugw("Detail request",
		logger.FieldClientID, c.id,
		logger.FieldReading, title,
	)
	c.trySend(buildDetail(ds, title))
}

// rejectRequest converts a recoverable request error into an error payload.
// The session keeps its prior state; the UI keeps its prior chart.
func (c *Client) rejectRequest(requestType string, err error) {
	c.server.logger.Warnw("Rejected request",
		logger.FieldRequestType, requestType,
		logger.FieldClientID, c.id,
		logger.FieldError, err.Error(),
	)
	c.trySend(errorMessage{Type: "error", Message: userMessage(err)})
}
