// Package notify fans match events out to interested sinks: the console, and
// an optional websocket feed for a spectator scoreboard on the local network.
package notify

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

const (
	writeTimeout = 5 * time.Second

	// sendBuffer is how many events a spectator may fall behind before it
	// is dropped. The notification port forbids blocking the sender, so a
	// full buffer costs the spectator its connection, never the match a
	// stall.
	sendBuffer = 64
)

// Event is one spectator-feed message.
type Event struct {
	Type        string `json:"type"`
	PlayerIndex int    `json:"player_index,omitempty"`
	PlayerName  string `json:"player_name,omitempty"`
	Points      int    `json:"points,omitempty"`
	SetWon      bool   `json:"set_won,omitempty"`
}

// spectator is one connected client. Writes go through the send channel so a
// stalled connection only backs up its own writer goroutine.
type spectator struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub broadcasts match events to connected websocket spectators. Spectators
// are read-only; anything they send is discarded. Broadcast never blocks.
type Hub struct {
	upgrader websocket.Upgrader
	mu       sync.Mutex
	clients  map[*spectator]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			// The feed is score-only and meant for any device on the LAN.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[*spectator]struct{}),
	}
}

// ServeHTTP upgrades the request and registers the spectator until its
// connection drops.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		fmt.Printf("Spectator upgrade failed: %v\n", err)
		return
	}

	s := &spectator{conn: conn, send: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	h.clients[s] = struct{}{}
	h.mu.Unlock()

	go h.writeLoop(s)

	// Reads only serve to detect the close; payloads are ignored.
	go func() {
		defer h.drop(s)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// writeLoop delivers queued events to one spectator and exits when the send
// channel closes.
func (h *Hub) writeLoop(s *spectator) {
	for payload := range s.send {
		s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.drop(s)
		}
	}
	s.conn.Close()
}

// drop unregisters a spectator. The send channel is closed under the lock,
// and only while the spectator is still registered, so Broadcast can never
// send on a closed channel.
func (h *Hub) drop(s *spectator) {
	h.mu.Lock()
	if _, ok := h.clients[s]; ok {
		delete(h.clients, s)
		close(s.send)
	}
	h.mu.Unlock()
	s.conn.Close()
}

// ClientCount reports the number of connected spectators.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast queues the event for every spectator without waiting on any of
// them. A spectator whose buffer is full is dropped.
func (h *Hub) Broadcast(ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		fmt.Printf("Failed to encode spectator event: %v\n", err)
		return
	}

	var stalled []*websocket.Conn
	h.mu.Lock()
	for s := range h.clients {
		select {
		case s.send <- payload:
		default:
			delete(h.clients, s)
			close(s.send)
			stalled = append(stalled, s.conn)
		}
	}
	h.mu.Unlock()

	for _, conn := range stalled {
		fmt.Println("Dropping stalled spectator")
		conn.Close()
	}
}

// Listen serves the spectator feed at /watch on addr. It blocks, so callers
// run it in a goroutine; a closed listener just ends the feed.
func (h *Hub) Listen(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/watch", h)
	fmt.Printf("Spectator feed listening on %s/watch\n", addr)
	return http.ListenAndServe(addr, mux)
}

// MatchStarted implements the match notification port.
func (h *Hub) MatchStarted() {
	h.Broadcast(Event{Type: "match_started"})
}

func (h *Hub) TurnSwitched(playerIndex int) {
	h.Broadcast(Event{Type: "turn", PlayerIndex: playerIndex})
}

func (h *Hub) Scored(points int) {
	h.Broadcast(Event{Type: "score", Points: points})
}

func (h *Hub) Bust() {
	h.Broadcast(Event{Type: "bust"})
}

func (h *Hub) LegWon(playerName string, setWon bool) {
	h.Broadcast(Event{Type: "leg_won", PlayerName: playerName, SetWon: setWon})
}

func (h *Hub) MatchWon(playerName string) {
	h.Broadcast(Event{Type: "match_won", PlayerName: playerName})
}
