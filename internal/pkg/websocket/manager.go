package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/senyum/internal/pkg/constants"
	jwtpkg "github.com/piresc/senyum/internal/pkg/jwt"
	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/piresc/senyum/internal/pkg/models"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	maxMessage = 4096
)

// Client is one open socket of an authenticated user
type Client struct {
	UserID uuid.UUID
	Role   string

	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *Client) write(msg models.Frame) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(msg)
}

func (c *Client) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// Manager tracks live sockets per user; a user may hold several
type Manager struct {
	sync.RWMutex
	clients  map[uuid.UUID]map[*Client]struct{}
	secret   string
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[uuid.UUID]map[*Client]struct{}),
		secret:  jwtConfig.Secret,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates, upgrades and serves the socket until the
// peer goes away
func (m *Manager) HandleConnection(c echo.Context) error {
	userID, role, err := m.authenticate(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := &Client{UserID: userID, Role: role, conn: ws}
	m.AddClient(client)
	defer func() {
		m.RemoveClient(client)
		ws.Close()
	}()

	logger.Info("WebSocket client connected", logger.String("user_id", userID.String()))

	done := make(chan struct{})
	defer close(done)
	go m.keepAlive(client, done)

	m.readLoop(client)
	return nil
}

// authenticate accepts a bearer header or, for browsers, a token query param
func (m *Manager) authenticate(c echo.Context) (uuid.UUID, string, error) {
	token := c.QueryParam("token")
	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return uuid.Nil, "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}
		token = parts[1]
	}
	if token == "" {
		return uuid.Nil, "", echo.NewHTTPError(http.StatusUnauthorized, "Authorization is required")
	}

	claims, err := jwtpkg.ValidateToken(token, m.secret)
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return uuid.Nil, "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}
	return userID, claims.Role, nil
}

func (m *Manager) readLoop(client *Client) {
	client.conn.SetReadLimit(maxMessage)
	_ = client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg models.Frame
		if err := client.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("WebSocket read failed",
					logger.String("user_id", client.UserID.String()),
					logger.Err(err))
			}
			if _, ok := err.(*json.SyntaxError); ok {
				_ = m.sendError(client, constants.ErrorInvalidFormat, "Invalid message format")
				continue
			}
			return
		}

		switch msg.Event {
		case constants.EventPing:
			_ = m.send(client, constants.EventPong, map[string]int64{"ts": time.Now().UnixMilli()})
		default:
			_ = m.sendError(client, constants.ErrorInvalidFormat, fmt.Sprintf("Unsupported event %q", msg.Event))
		}
	}
}

func (m *Manager) keepAlive(client *Client, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := client.ping(); err != nil {
				return
			}
		}
	}
}

// AddClient registers client under its user
func (m *Manager) AddClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	set, ok := m.clients[client.UserID]
	if !ok {
		set = make(map[*Client]struct{})
		m.clients[client.UserID] = set
	}
	set[client] = struct{}{}
}

// RemoveClient forgets client
func (m *Manager) RemoveClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	set := m.clients[client.UserID]
	delete(set, client)
	if len(set) == 0 {
		delete(m.clients, client.UserID)
	}
}

// IsOnline reports whether the user has at least one open socket
func (m *Manager) IsOnline(userID uuid.UUID) bool {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients[userID]) > 0
}

func (m *Manager) send(client *Client, event string, data interface{}) error {
	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}
	return client.write(models.Frame{Event: event, Data: rawData, SentAt: time.Now().UTC()})
}

func (m *Manager) sendError(client *Client, code, message string) error {
	return m.send(client, constants.EventError, models.FrameError{Code: code, Message: message})
}

// NotifyClient pushes event to every socket of userID; offline users are skipped
func (m *Manager) NotifyClient(userID uuid.UUID, event string, data interface{}) {
	m.RLock()
	targets := make([]*Client, 0, len(m.clients[userID]))
	for client := range m.clients[userID] {
		targets = append(targets, client)
	}
	m.RUnlock()

	logger.Debug("Notifying client",
		logger.String("user_id", userID.String()),
		logger.String("event", event),
		logger.Int("sockets", len(targets)))

	for _, client := range targets {
		if err := m.send(client, event, data); err != nil {
			logger.Warn("Error sending message to client",
				logger.String("user_id", userID.String()),
				logger.Err(err))
		}
	}
}
