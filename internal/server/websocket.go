// Package server exposes the game engine over a JSON websocket API.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/pantheon-tcg/pantheon-server-go/internal/config"
	"github.com/pantheon-tcg/pantheon-server-go/internal/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message is the websocket envelope. Data carries the type-specific payload.
type Message struct {
	Type     string          `json:"type"`
	GameID   string          `json:"game_id,omitempty"`
	PlayerID string          `json:"player_id,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
}

type response struct {
	Type   string `json:"type"`
	GameID string `json:"game_id,omitempty"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

type createGameRequest struct {
	Players       []game.PlayerSetup `json:"players"`
	FirstPlayerID string             `json:"first_player_id,omitempty"`
}

type playCardRequest struct {
	CardID string `json:"card_id"`
	Zone   string `json:"zone"`
}

type cardRequest struct {
	CardID string `json:"card_id"`
}

type spendChargesRequest struct {
	Amount int `json:"amount"`
}

type combatRequest struct {
	DefendingPlayerID string                  `json:"defending_player_id"`
	Assignments       []game.AttackAssignment `json:"assignments"`
}

// Client is one websocket connection bound to a player in a game.
type Client struct {
	conn     *websocket.Conn
	send     chan []byte
	playerID string
	gameID   string
}

// Hub routes messages between clients and the engine. The clients map and
// every close of a client's send channel happen under mu: handleMessage runs
// on each client's read goroutine while Run registers and unregisters on its
// own, so unguarded access is a concurrent map write and a possible send on a
// closed channel.
type Hub struct {
	engine *game.Engine
	logger *zap.Logger

	mu         sync.Mutex
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
}

// NewHub creates a hub in front of the engine.
func NewHub(engine *game.Engine, logger *zap.Logger) *Hub {
	return &Hub{
		engine:     engine,
		logger:     logger,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run processes client registration until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Debug("client registered")

		case client := <-h.unregister:
			h.mu.Lock()
			removed := h.clients[client]
			if removed {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			if removed {
				h.logger.Debug("client unregistered",
					zap.String("player_id", client.playerID),
					zap.String("game_id", client.gameID),
				)
			}

		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			return
		}
	}
}

func (h *Hub) handleMessage(client *Client, msg Message) {
	var err error

	switch msg.Type {
	case "create_game":
		var req createGameRequest
		if err = json.Unmarshal(msg.Data, &req); err != nil {
			break
		}
		gameID := msg.GameID
		if gameID == "" {
			gameID = uuid.New().String()
		}
		if err = h.engine.StartGame(gameID, req.Players, req.FirstPlayerID); err != nil {
			break
		}
		client.gameID = gameID
		client.playerID = msg.PlayerID

	case "join_game":
		client.gameID = msg.GameID
		client.playerID = msg.PlayerID

	case "get_state":
		// View is sent below like any other outcome.

	case "advance_turn":
		err = h.engine.AdvanceTurn(client.gameID)

	case "play_card":
		var req playCardRequest
		if err = json.Unmarshal(msg.Data, &req); err != nil {
			break
		}
		err = h.playCard(client, req)

	case "send_to_crypt":
		var req cardRequest
		if err = json.Unmarshal(msg.Data, &req); err != nil {
			break
		}
		err = h.engine.SendToCrypt(client.gameID, client.playerID, req.CardID)

	case "send_to_null":
		var req cardRequest
		if err = json.Unmarshal(msg.Data, &req); err != nil {
			break
		}
		err = h.engine.SendToNull(client.gameID, client.playerID, req.CardID)

	case "spend_god_charges":
		var req spendChargesRequest
		if err = json.Unmarshal(msg.Data, &req); err != nil {
			break
		}
		err = h.engine.SpendGodCharges(client.gameID, client.playerID, req.Amount)

	case "resolve_combat":
		var req combatRequest
		if err = json.Unmarshal(msg.Data, &req); err != nil {
			break
		}
		err = h.engine.ResolveCombat(client.gameID, client.playerID, req.DefendingPlayerID, req.Assignments)

	default:
		h.sendError(client, "unknown message type: "+msg.Type)
		return
	}

	if err != nil {
		h.logger.Debug("request rejected",
			zap.String("type", msg.Type),
			zap.String("game_id", client.gameID),
			zap.String("player_id", client.playerID),
			zap.Error(err),
		)
		h.sendError(client, err.Error())
		return
	}

	h.broadcastGameState(client.gameID)
}

func (h *Hub) playCard(client *Client, req playCardRequest) error {
	switch req.Zone {
	case "domain":
		return h.engine.PlayDomain(client.gameID, client.playerID, req.CardID)
	case "shard":
		return h.engine.PlayShard(client.gameID, client.playerID, req.CardID)
	case "avatar":
		return h.engine.PlayAvatar(client.gameID, client.playerID, req.CardID)
	case "relic_support":
		return h.engine.PlayRelicOrSupport(client.gameID, client.playerID, req.CardID)
	default:
		return fmt.Errorf("unknown play zone %q", req.Zone)
	}
}

func (h *Hub) sendError(client *Client, reason string) {
	payload, err := json.Marshal(response{Type: "error", Error: reason})
	if err != nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.clients[client] {
		return
	}
	select {
	case client.send <- payload:
	default:
	}
}

// broadcastGameState sends every client in the game its own redacted view.
// Holding mu across the fan-out keeps every send channel open for its
// duration; unregistration closes channels under the same lock.
func (h *Hub) broadcastGameState(gameID string) {
	if gameID == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if client.gameID != gameID {
			continue
		}
		view, err := h.engine.GetGameView(gameID, client.playerID)
		if err != nil {
			h.logger.Warn("failed to build game view",
				zap.String("game_id", gameID),
				zap.String("player_id", client.playerID),
				zap.Error(err),
			)
			continue
		}
		payload, err := json.Marshal(response{Type: "game_state", GameID: gameID, Data: view})
		if err != nil {
			continue
		}
		select {
		case client.send <- payload:
		default:
		}
	}
}

func (c *Client) readPump(h *Hub) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			h.logger.Debug("malformed message", zap.Error(err))
			continue
		}
		h.handleMessage(c, msg)
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

// WebSocketServer serves the hub over HTTP.
type WebSocketServer struct {
	hub        *Hub
	httpServer *http.Server
	logger     *zap.Logger
	cancel     context.CancelFunc
}

// NewWebSocketServer builds the websocket server for the engine.
func NewWebSocketServer(cfg config.WebSocketConfig, engine *game.Engine, logger *zap.Logger) *WebSocketServer {
	hub := NewHub(engine, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn("websocket upgrade failed", zap.Error(err))
			return
		}
		client := &Client{
			conn: conn,
			send: make(chan []byte, 256),
		}
		hub.register <- client
		go client.writePump()
		go client.readPump(hub)
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return &WebSocketServer{
		hub:    hub,
		logger: logger,
		httpServer: &http.Server{
			Addr:    cfg.Address,
			Handler: mux,
		},
	}
}

// Start runs the hub and blocks serving HTTP until Shutdown.
func (s *WebSocketServer) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go s.hub.Run(ctx)

	s.logger.Info("websocket server listening", zap.String("address", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP listener and the hub.
func (s *WebSocketServer) Shutdown(ctx context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}
	return s.httpServer.Shutdown(ctx)
}
