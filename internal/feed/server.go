package feed

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"sync/atomic"

	"github.com/gorilla/websocket"
)

// maxRequestBytes bounds a single client request.
const maxRequestBytes = 4096

// Server hands scene descriptions to external renderers over websockets.
// Every connection is served by its own goroutine; the core generators share
// no state, so connections never coordinate.
type Server struct {
	Limits Limits

	logger   *log.Logger
	upgrader websocket.Upgrader
	served   atomic.Int64
}

// NewServer returns a Server logging to logger (stderr when nil).
func NewServer(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(os.Stderr, "feed: ", log.LstdFlags)
	}
	return &Server{
		Limits: DefaultLimits,
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // renderers are loaded from any origin
			},
		},
	}
}

// Served reports how many replies have been sent, errors included.
func (s *Server) Served() int64 { return s.served.Load() }

// Handler returns the HTTP routes of the feed.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/scenes", s.serveScenes)
	mux.HandleFunc("/ws", s.serveWS)
	return mux
}

func (s *Server) serveScenes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(Scenes); err != nil {
		s.logger.Printf("scenes: %v", err)
	}
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("upgrade %s: %v", r.RemoteAddr, err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxRequestBytes)
	s.logger.Printf("client %s connected", r.RemoteAddr)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Printf("client %s: read: %v", r.RemoteAddr, err)
			}
			return
		}
		var req Request
		var msg Message
		if err := json.Unmarshal(data, &req); err != nil {
			msg = Message{Type: TypeError, Error: "malformed request: " + err.Error()}
		} else {
			msg = Describe(req, s.Limits)
		}
		if msg.Type == TypeError {
			s.logger.Printf("client %s: %s: %s", r.RemoteAddr, req.Scene, msg.Error)
		}
		out, err := json.Marshal(msg)
		if err != nil {
			out, _ = json.Marshal(Message{Type: TypeError, ID: req.ID, Scene: req.Scene, Error: "encode: " + err.Error()})
		}
		s.served.Add(1)
		if err := conn.WriteMessage(websocket.TextMessage, out); err != nil {
			s.logger.Printf("client %s: write: %v", r.RemoteAddr, err)
			return
		}
	}
}
