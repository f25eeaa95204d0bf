package websocket

import (
	"net/http"
	"nomad/config"
	"nomad/infras/jwt"
	"nomad/infras/nats"
	"nomad/infras/otel"
	"nomad/shared/constant"
	"nomad/shared/failure"
	"nomad/transport/http/response"
	"slices"
	"strings"
	"sync"
	"time"

	ws "github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	defaultWriteWait  = 10 * time.Second
	defaultPongWait   = 60 * time.Second
	defaultSendBuffer = 16
	maxMessageSize    = 512
)

// Hub pushes notification events to the websocket connections of their recipient.
type Hub interface {
	Start() error
	Serve(w http.ResponseWriter, r *http.Request)
	Connections(userID string) int
	Close()
}

type hub struct {
	mu          sync.RWMutex
	clients     map[string]map[*client]struct{}
	bus         nats.Bus
	jwt         jwt.JWT
	otel        otel.Otel
	upgrader    ws.Upgrader
	unsubscribe func()
	writeWait   time.Duration
	pongWait    time.Duration
	sendBuffer  int
}

type client struct {
	userID string
	conn   *ws.Conn
	send   chan []byte
}

func New(bus nats.Bus, jwtService jwt.JWT, cfg *config.Config, otel otel.Otel) Hub {
	h := &hub{
		clients:    map[string]map[*client]struct{}{},
		bus:        bus,
		jwt:        jwtService,
		otel:       otel,
		writeWait:  defaultWriteWait,
		pongWait:   defaultPongWait,
		sendBuffer: defaultSendBuffer,
	}

	if cfg.Websocket.WriteWaitSeconds > 0 {
		h.writeWait = time.Duration(cfg.Websocket.WriteWaitSeconds) * time.Second
	}

	if cfg.Websocket.PongWaitSeconds > 0 {
		h.pongWait = time.Duration(cfg.Websocket.PongWaitSeconds) * time.Second
	}

	if cfg.Websocket.SendBufferSize > 0 {
		h.sendBuffer = cfg.Websocket.SendBufferSize
	}

	origins := cfg.Websocket.AllowedOrigins
	h.upgrader = ws.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")

			return len(origins) == 0 || origin == "" || slices.Contains(origins, constant.Asterix) || slices.Contains(origins, origin)
		},
	}

	return h
}

// Start subscribes to every recipient subject on the bus.
func (h *hub) Start() error {
	unsubscribe, err := h.bus.Subscribe(h.bus.Subject(constant.Asterix), h.dispatch)
	if err != nil {
		return err //nolint:wrapcheck
	}

	h.unsubscribe = unsubscribe

	return nil
}

func (h *hub) dispatch(subject string, data []byte) {
	userID := subject[strings.LastIndex(subject, ".")+1:]

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients[userID] {
		select {
		case c.send <- data:
		default:
			log.Warn().Str("user_id", userID).Msg("websocket client is too slow, dropping event")
		}
	}
}

// Serve authenticates the access token passed as ?token= and upgrades the connection.
func (h *hub) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelRealtimeScopeName, constant.OtelRealtimeScopeName+".Serve")
	defer scope.End()

	token := r.URL.Query().Get(constant.RequestParamToken)
	if token == "" {
		response.WithError(w, failure.Unauthorized("Missing token"))

		return
	}

	claims, err := h.jwt.ValidateToken(ctx, token, jwt.AccessToken)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.Unauthorized("Invalid token"))

		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upgrade websocket connection")

		return
	}

	c := &client{
		userID: claims.UserID,
		conn:   conn,
		send:   make(chan []byte, h.sendBuffer),
	}

	h.register(c)

	go h.writePump(c)
	go h.readPump(c)
}

func (h *hub) Connections(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients[userID])
}

func (h *hub) Close() {
	if h.unsubscribe != nil {
		h.unsubscribe()
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for userID, clients := range h.clients {
		for c := range clients {
			close(c.send)
		}

		delete(h.clients, userID)
	}
}

func (h *hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[c.userID] == nil {
		h.clients[c.userID] = map[*client]struct{}{}
	}

	h.clients[c.userID][c] = struct{}{}

	log.Debug().Str("user_id", c.userID).Msg("websocket client connected")
}

func (h *hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[c.userID]
	if !ok {
		return
	}

	if _, ok = clients[c]; !ok {
		return
	}

	delete(clients, c)
	close(c.send)

	if len(clients) == 0 {
		delete(h.clients, c.userID)
	}

	log.Debug().Str("user_id", c.userID).Msg("websocket client disconnected")
}

// readPump only drains control frames; clients never send events.
func (h *hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(h.pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(h.pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if ws.IsUnexpectedCloseError(err, ws.CloseGoingAway, ws.CloseNormalClosure) {
				log.Warn().Err(err).Str("user_id", c.userID).Msg("websocket closed unexpectedly")
			}

			return
		}
	}
}

func (h *hub) writePump(c *client) {
	ticker := time.NewTicker(h.pongWait * 9 / 10)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.writeWait))

			if !ok {
				_ = c.conn.WriteMessage(ws.CloseMessage, []byte{})

				return
			}

			if err := c.conn.WriteMessage(ws.TextMessage, message); err != nil {
				log.Error().Err(err).Str("user_id", c.userID).Msg("failed to write websocket message")

				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.writeWait))

			if err := c.conn.WriteMessage(ws.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
