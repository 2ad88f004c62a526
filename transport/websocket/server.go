package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

const (
	outboundQueueSize = 32
	writeTimeout      = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

var errOutboundQueueFull = errors.New("outbound queue is full")

type gameEngine interface {
	HandleMessage(ctx context.Context, sessionID string, raw []byte)
	HandleDisconnect(sessionID string)
}

// session is one live connection: its socket, a buffered outbound queue
// drained by a dedicated writer goroutine, and a done channel closed exactly
// once on teardown.
type session struct {
	conn *websocket.Conn
	out  chan []byte
	done chan struct{}

	closeOnce sync.Once
}

func (that *session) close() {
	that.closeOnce.Do(func() {
		close(that.done)
	})
}

// Server accepts WebSocket connections, issues an opaque session ID per
// connection and shuttles messages between the socket and the game engine.
// It implements the engine's Sender interface.
type Server struct {
	logger *slog.Logger
	engine gameEngine

	mu       sync.RWMutex
	sessions map[string]*session
}

func New(logger *slog.Logger) *Server {
	return &Server{
		logger:   logger,
		sessions: make(map[string]*session),
	}
}

// AttachEngine wires the message dispatcher. Must be called before Start;
// split from New because the engine needs the server as its Sender.
func (that *Server) AttachEngine(engine gameEngine) {
	that.engine = engine
}

// Start - starts the WebSocket server and blocks until the context is
// canceled or the listener fails.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.handleConnection(ctx, w, r)
	})

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down websocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) handleConnection(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleConnection")

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Error("failed to accept websocket connection", "error", err)
		return
	}

	sessionID := uuid.NewString()
	sess := &session{
		conn: conn,
		out:  make(chan []byte, outboundQueueSize),
		done: make(chan struct{}),
	}

	that.mu.Lock()
	that.sessions[sessionID] = sess
	that.mu.Unlock()

	log = log.With("sessionID", sessionID)
	log.Info("websocket connection established")

	defer func() {
		that.mu.Lock()
		delete(that.sessions, sessionID)
		that.mu.Unlock()

		sess.close()
		that.engine.HandleDisconnect(sessionID)
		conn.Close(websocket.StatusNormalClosure, "")

		log.Info("websocket connection closed")
	}()

	go that.writeLoop(ctx, sess)

	that.readLoop(ctx, sessionID, sess)
}

func (that *Server) readLoop(ctx context.Context, sessionID string, sess *session) {
	for {
		_, data, err := sess.conn.Read(ctx)
		if err != nil {
			return
		}

		that.engine.HandleMessage(ctx, sessionID, data)
	}
}

func (that *Server) writeLoop(ctx context.Context, sess *session) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-sess.done:
			return
		case data := <-sess.out:
			writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := sess.conn.Write(writeCtx, websocket.MessageText, data)
			cancel()

			if err != nil {
				that.logger.Error("failed to write message", "error", err)
				return
			}
		}
	}
}

// Send queues an outbound message for a session. A session that is already
// gone is a safe no-op; a full queue drops the message with an error so the
// engine can log it.
func (that *Server) Send(sessionID string, message any) error {
	that.mu.RLock()
	sess, ok := that.sessions[sessionID]
	that.mu.RUnlock()

	if !ok {
		return nil
	}

	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	select {
	case <-sess.done:
		return nil
	case sess.out <- data:
		return nil
	default:
		return fmt.Errorf("session %s: %w", sessionID, errOutboundQueueFull)
	}
}
