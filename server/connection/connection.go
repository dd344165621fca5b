package connection

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Client represents a connected player.
type Client struct {
	ID    string
	Conn  *websocket.Conn
	Send  chan []byte
	RunID string // The run this client currently owns, if any
}

// Manager handles all client connections.
type Manager struct {
	clients    map[string]*Client // Map connection IDs to clients
	runMap     map[string]string  // Map run IDs to connection IDs
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

// NewManager creates a new connection manager.
func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		runMap:     make(map[string]string),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start begins processing connection events.
func (m *Manager) Start() {
	for {
		select {
		case client := <-m.Register:
			m.mutex.Lock()
			m.clients[client.ID] = client
			if client.RunID != "" {
				m.runMap[client.RunID] = client.ID
			}
			m.mutex.Unlock()
		case client := <-m.Unregister:
			m.mutex.Lock()
			if _, ok := m.clients[client.ID]; ok {
				if client.RunID != "" {
					delete(m.runMap, client.RunID)
				}
				delete(m.clients, client.ID)
				close(client.Send)
			}
			m.mutex.Unlock()
		}
	}
}

// AttachRun binds a run to a client so events can find their way back.
// Any previous run binding for the client is dropped.
func (m *Manager) AttachRun(clientID string, runID string) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	client, ok := m.clients[clientID]
	if !ok {
		return false
	}

	if client.RunID != "" {
		delete(m.runMap, client.RunID)
	}
	client.RunID = runID
	m.runMap[runID] = clientID
	return true
}

// SendToClient sends a message to a specific client.
func (m *Manager) SendToClient(clientID string, message []byte) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if client, ok := m.clients[clientID]; ok {
		client.Send <- message
		return true
	}
	return false
}

// SendToRun sends a message to the client that owns a run.
func (m *Manager) SendToRun(runID string, message []byte) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if connID, exists := m.runMap[runID]; exists {
		if client, ok := m.clients[connID]; ok {
			client.Send <- message
			return true
		}
	}
	return false
}

// ClientForRun returns the connection ID that owns a run.
func (m *Manager) ClientForRun(runID string) (string, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	connID, ok := m.runMap[runID]
	return connID, ok
}
