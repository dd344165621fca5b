package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/lazharichir/tribulation/encounters"
	domainevents "github.com/lazharichir/tribulation/events"
	"github.com/lazharichir/tribulation/items"
	"github.com/lazharichir/tribulation/save"
	"github.com/lazharichir/tribulation/server/connection"
	"github.com/lazharichir/tribulation/server/events"
	"github.com/lazharichir/tribulation/server/handlers"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // In production, implement proper origin checks
	},
}

// Server represents the WebSocket server.
type Server struct {
	connMgr    *connection.Manager
	cmdRouter  *handlers.CommandRouter
	dispatcher *events.Dispatcher
	eventStore domainevents.EventStore
}

// Options configures the server.
type Options struct {
	SaveDir string // Empty disables persistence
	Debug   bool   // Dumps every run event to stdout
}

// corsMiddleware adds CORS headers to all responses.
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// NewServer creates a new game WebSocket server.
func NewServer(opts Options) (*Server, error) {
	connMgr := connection.NewManager()

	var saves *save.Store
	if opts.SaveDir != "" {
		var err error
		saves, err = save.NewStore(opts.SaveDir)
		if err != nil {
			return nil, err
		}
	}

	dispatcher := events.NewDispatcher(connMgr, opts.Debug)
	cmdRouter := handlers.NewCommandRouter(connMgr, saves)
	eventStore := domainevents.NewInMemoryEventStore()

	// Every run event is recorded before it goes out to the client.
	cmdRouter.SetEventHandler(func(event domainevents.Event) {
		if err := eventStore.Append(event); err != nil {
			log.Printf("Failed to record event %s: %v", event.EventName(), err)
		}
		dispatcher.HandleEvent(event)
	})

	return &Server{
		connMgr:    connMgr,
		cmdRouter:  cmdRouter,
		dispatcher: dispatcher,
		eventStore: eventStore,
	}, nil
}

// Start begins the server on the specified port.
func (s *Server) Start(port string) error {
	// Start connection manager in its own goroutine
	go s.connMgr.Start()

	http.HandleFunc("/ws", s.handleWebSocket)
	http.HandleFunc("/api/artifacts", corsMiddleware(s.handleGetArtifacts))
	http.HandleFunc("/api/consumables", corsMiddleware(s.handleGetConsumables))
	http.HandleFunc("/api/realms", corsMiddleware(s.handleGetRealms))
	http.HandleFunc("/api/history", corsMiddleware(s.handleGetHistory))

	log.Printf("Starting server on port %s", port)
	return http.ListenAndServe("0.0.0.0:"+port, nil)
}

// handleWebSocket handles incoming WebSocket connections.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error upgrading to WebSocket: %v", err)
		return
	}

	clientID := uuid.NewString()
	log.Printf("New client connected: %s with ID: %s", r.RemoteAddr, clientID)

	client := &connection.Client{
		ID:   clientID,
		Conn: conn,
		Send: make(chan []byte, 256),
	}

	s.connMgr.Register <- client

	go s.readPump(client)
	go s.writePump(client)
}

// readPump reads messages from the WebSocket connection.
func (s *Server) readPump(client *connection.Client) {
	defer func() {
		s.cmdRouter.DropClient(client.ID)
		s.connMgr.Unregister <- client
		client.Conn.Close()
	}()

	for {
		_, message, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Error: %v", err)
			}
			break
		}

		if err := s.cmdRouter.HandleCommand(client, message); err != nil {
			log.Printf("Error handling command: %v", err)
			s.sendError(client, err)
		}
	}
}

// writePump sends messages to the WebSocket connection.
func (s *Server) writePump(client *connection.Client) {
	defer func() {
		client.Conn.Close()
	}()

	for {
		message, ok := <-client.Send
		if !ok {
			client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		err := client.Conn.WriteMessage(websocket.TextMessage, message)
		if err != nil {
			log.Printf("Error writing message: %v", err)
			return
		}
	}
}

// sendError pushes a command failure back to the client.
func (s *Server) sendError(client *connection.Client, cmdErr error) {
	envelope, err := json.Marshal(struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}{Name: "command-error", Message: cmdErr.Error()})
	if err != nil {
		return
	}
	s.connMgr.SendToClient(client.ID, envelope)
}

// handleGetArtifacts returns the full artifact catalog.
func (s *Server) handleGetArtifacts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items.ArtifactCatalog())
}

// handleGetConsumables returns the full consumable catalog.
func (s *Server) handleGetConsumables(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items.ConsumableCatalog())
}

// RealmResponse describes one realm of the progression ladder.
type RealmResponse struct {
	Realm int    `json:"realm"`
	Name  string `json:"name"`
}

// handleGetRealms returns the eight-realm progression ladder.
func (s *Server) handleGetRealms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	realms := make([]RealmResponse, 0, 8)
	for realm := 1; realm <= 8; realm++ {
		realms = append(realms, RealmResponse{Realm: realm, Name: encounters.RealmName(realm)})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(realms)
}

// HistoryEntry is one recorded run event in API responses.
type HistoryEntry struct {
	Name  string            `json:"name"`
	Event domainevents.Event `json:"event"`
}

// handleGetHistory returns the recorded event log for a run.
func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	runID := r.URL.Query().Get("runId")
	if runID == "" {
		http.Error(w, "runId query parameter is required", http.StatusBadRequest)
		return
	}

	recorded, err := s.eventStore.LoadEvents(runID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	entries := make([]HistoryEntry, 0, len(recorded))
	for _, event := range recorded {
		entries = append(entries, HistoryEntry{Name: event.EventName(), Event: event})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}
