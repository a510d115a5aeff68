package main

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"shelterBack/internal/models"
)

const (
	readLimit     = 1 << 20
	readDeadline  = 120 * time.Second
	writeDeadline = 5 * time.Second
	pingInterval  = 15 * time.Second
)

// ListingEvent is pushed to every connected viewer when an accommodation
// is created or updated.
type ListingEvent struct {
	Event         string               `json:"event"`
	Accommodation models.Accommodation `json:"accommodation"`
}

type Client struct {
	ID     string
	Socket *websocket.Conn
}

type unreg struct {
	clientID string
	conn     *websocket.Conn
}

type WebSocketManager struct {
	clients    map[string]*websocket.Conn
	broadcast  chan ListingEvent
	register   chan Client
	unregister chan unreg
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[string]*websocket.Conn),
		broadcast:  make(chan ListingEvent, 32),
		register:   make(chan Client),
		unregister: make(chan unreg),
	}
}

// NotifyListing queues a lifecycle event for delivery to all viewers. The
// event is dropped when the broadcast queue is full so a slow socket never
// stalls an HTTP handler.
func (ws *WebSocketManager) NotifyListing(event string, acc models.Accommodation) {
	select {
	case ws.broadcast <- ListingEvent{Event: event, Accommodation: acc}:
	default:
		log.Printf("listing event dropped: %s %s", event, acc.ID)
	}
}

// All operations on clients happen here.
func (ws *WebSocketManager) Run() {
	for {
		select {
		case client := <-ws.register:
			if old, ok := ws.clients[client.ID]; ok && old != nil && old != client.Socket {
				_ = old.Close()
			}
			ws.clients[client.ID] = client.Socket
			log.Printf("WS register viewer=%s", client.ID)

		case u := <-ws.unregister:
			if cur, ok := ws.clients[u.clientID]; ok && cur == u.conn {
				_ = cur.Close()
				delete(ws.clients, u.clientID)
				log.Printf("WS unregister viewer=%s", u.clientID)
			}

		case ev := <-ws.broadcast:
			for id, conn := range ws.clients {
				_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("broadcast error to=%s: %v", id, err)
					_ = conn.Close()
					delete(ws.clients, id)
				}
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin:       func(r *http.Request) bool { return true },
	ReadBufferSize:    1024,
	WriteBufferSize:   1024,
	EnableCompression: true,
}

// ListingEventsHandler upgrades the connection and streams listing events
// until the viewer leaves.
func (app *application) ListingEventsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	conn.SetReadLimit(readLimit)
	conn.SetReadDeadline(time.Now().Add(readDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	client := Client{ID: uuid.New().String(), Socket: conn}
	app.wsManager.register <- client

	go pingLoop(app.wsManager, conn, client.ID)
	go readLoop(conn, client.ID, app.wsManager)
}

func pingLoop(ws *WebSocketManager, conn *websocket.Conn, clientID string) {
	t := time.NewTicker(pingInterval)
	defer t.Stop()
	for range t.C {
		_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
		if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			_ = writeClose(conn, websocket.CloseGoingAway, "ping error")
			ws.unregister <- unreg{clientID: clientID, conn: conn}
			return
		}
	}
}

// readLoop drains incoming frames; viewers only listen, so anything other
// than control frames is discarded.
func readLoop(conn *websocket.Conn, clientID string, wsManager *WebSocketManager) {
	defer func() {
		wsManager.unregister <- unreg{clientID: clientID, conn: conn}
		_ = conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writeClose(conn *websocket.Conn, code int, reason string) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	return conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason),
		time.Now().Add(writeDeadline),
	)
}
