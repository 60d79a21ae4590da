package lcu

import (
	"crypto/tls"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// EventType represents LCU WebSocket event types
type EventType int

const (
	EventTypeSubscribe   EventType = 5
	EventTypeUnsubscribe EventType = 6
	EventTypeEvent       EventType = 8
)

const gameflowEvent = "OnJsonApiEvent_lol-gameflow_v1_gameflow-phase"

// PhaseHandler is called when the gameflow phase changes
// (e.g. "Lobby", "ChampSelect", "InProgress", "EndOfGame")
type PhaseHandler func(phase string)

// WebSocketClient listens to the LCU event socket for gameflow changes
type WebSocketClient struct {
	conn         *websocket.Conn
	credentials  *Credentials
	mu           sync.Mutex
	isConnected  bool
	stopChan     chan struct{}
	phaseHandler PhaseHandler
}

// NewWebSocketClient creates a new WebSocket client
func NewWebSocketClient() *WebSocketClient {
	return &WebSocketClient{
		stopChan: make(chan struct{}),
	}
}

// Connect establishes WebSocket connection to LCU
func (w *WebSocketClient) Connect(creds *Credentials) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isConnected {
		return nil
	}

	w.credentials = creds

	dialer := websocket.Dialer{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: true,
		},
	}

	url := fmt.Sprintf("wss://127.0.0.1:%s", creds.Port)
	header := http.Header{}
	auth := base64.StdEncoding.EncodeToString([]byte("riot:" + creds.Password))
	header.Set("Authorization", "Basic "+auth)

	conn, _, err := dialer.Dial(url, header)
	if err != nil {
		return fmt.Errorf("failed to connect to LCU WebSocket: %w", err)
	}

	w.conn = conn
	w.isConnected = true

	// Subscribe to gameflow phase events
	if err := w.subscribe(gameflowEvent); err != nil {
		w.conn.Close()
		w.isConnected = false
		return fmt.Errorf("failed to subscribe to gameflow: %w", err)
	}

	// Start listening for messages
	go w.listen()

	return nil
}

// subscribe sends a subscription message for an event
func (w *WebSocketClient) subscribe(event string) error {
	msg := []interface{}{EventTypeSubscribe, event}
	return w.conn.WriteJSON(msg)
}

// listen reads messages from the WebSocket
func (w *WebSocketClient) listen() {
	defer func() {
		w.mu.Lock()
		w.isConnected = false
		if w.conn != nil {
			w.conn.Close()
		}
		w.mu.Unlock()
	}()

	for {
		select {
		case <-w.stopChan:
			return
		default:
			_, message, err := w.conn.ReadMessage()
			if err != nil {
				return
			}

			w.handleMessage(message)
		}
	}
}

// handleMessage processes incoming WebSocket messages
func (w *WebSocketClient) handleMessage(data []byte) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return
	}

	if len(raw) < 3 {
		return
	}

	var eventType EventType
	if err := json.Unmarshal(raw[0], &eventType); err != nil {
		return
	}

	if eventType != EventTypeEvent {
		return
	}

	var eventName string
	if err := json.Unmarshal(raw[1], &eventName); err != nil {
		return
	}

	if eventName == gameflowEvent {
		w.handleGameflowEvent(raw[2])
	}
}

// handleGameflowEvent extracts the phase string from the event payload
func (w *WebSocketClient) handleGameflowEvent(payload json.RawMessage) {
	var eventData struct {
		EventType string          `json:"eventType"`
		URI       string          `json:"uri"`
		Data      json.RawMessage `json:"data"`
	}

	if err := json.Unmarshal(payload, &eventData); err != nil {
		return
	}

	if w.phaseHandler == nil {
		return
	}

	var phase string
	if err := json.Unmarshal(eventData.Data, &phase); err != nil {
		return
	}

	w.phaseHandler(phase)
}

// SetPhaseHandler sets the callback for gameflow phase events
func (w *WebSocketClient) SetPhaseHandler(handler PhaseHandler) {
	w.phaseHandler = handler
}

// Disconnect closes the WebSocket connection
func (w *WebSocketClient) Disconnect() {
	w.mu.Lock()
	defer w.mu.Unlock()

	close(w.stopChan)
	if w.conn != nil {
		w.conn.Close()
		w.conn = nil
	}
	w.isConnected = false
	w.stopChan = make(chan struct{})
}

// IsConnected returns whether the WebSocket is connected
func (w *WebSocketClient) IsConnected() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isConnected
}
