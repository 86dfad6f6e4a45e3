package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/aretw0/fluix"
	"github.com/aretw0/fluix/internal/logging"
	"github.com/aretw0/fluix/pkg/attrs"
	"github.com/aretw0/fluix/pkg/domain"
	"github.com/aretw0/fluix/pkg/machine"
	"github.com/aretw0/fluix/pkg/spring"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go openapi.yaml

// Server exposes a lifecycle machine over HTTP.
type Server struct {
	Machine *machine.Machine
	Streams *StreamManager

	logger      *slog.Logger
	preset      *spring.CSS
	upgrader    websocket.Upgrader
	unsubscribe func()
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for request failures and stream events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithCheckOrigin overrides the origin check of WebSocket upgrades. The
// default accepts every origin.
func WithCheckOrigin(check func(*http.Request) bool) Option {
	return func(s *Server) {
		s.upgrader.CheckOrigin = check
	}
}

// WithSpring sets the spring served by GET /spring when no parameter is given.
func WithSpring(cfg spring.Config) Option {
	return func(s *Server) {
		s.preset = spring.ToCSS(cfg)
	}
}

// New creates a Server and starts broadcasting every snapshot change of m to
// the stream clients. Call Close to stop.
func New(m *machine.Machine, opts ...Option) *Server {
	s := &Server{
		Machine: m,
		logger:  logging.NewNop(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.preset == nil {
		s.preset = spring.DefaultCSS()
	}
	s.Streams = NewStreamManager(s.logger)
	s.unsubscribe = m.Subscribe(s.broadcast)
	return s
}

// NewHandler is a shorthand for New(m, opts...).Handler().
func NewHandler(m *machine.Machine, opts ...Option) http.Handler {
	return New(m, opts...).Handler()
}

// Close stops broadcasting snapshots. Connected stream clients stay open
// until they disconnect.
func (s *Server) Close() {
	s.unsubscribe()
}

// Handler returns the HTTP handler serving every operation plus the
// OpenAPI document and its Swagger UI.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			s.logger.Error("Failed to load OpenAPI spec", "error", err)
			return
		}
		w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	handler := HandlerFromMux(s, r)
	return enableCORS(handler)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Fluix API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}

	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":         "fluix-http",
		"version":     strings.TrimSpace(fluix.Version),
		"api_version": apiVersion,
	})
}

// ListToasts handles the GET /toasts request.
func (s *Server) ListToasts(w http.ResponseWriter, r *http.Request, params ListToastsParams) {
	snap := s.Machine.Snapshot()
	if params.Position != nil {
		position := domain.Position(*params.Position)
		if !position.Valid() {
			http.Error(w, fmt.Sprintf("%v: %q", domain.ErrInvalidPosition, position), http.StatusBadRequest)
			return
		}
		snap = &domain.Snapshot{Toasts: snap.At(position), Config: snap.Config}
	}
	s.writeJSON(w, http.StatusOK, snap)
}

// CreateToast handles the POST /toasts request.
func (s *Server) CreateToast(w http.ResponseWriter, r *http.Request) {
	opts, ok := s.decodeOptions(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusCreated, Created{Id: s.Machine.Create(opts)})
}

// UpdateToast handles the PUT /toasts/{id} request.
func (s *Server) UpdateToast(w http.ResponseWriter, r *http.Request, id ToastID) {
	opts, ok := s.decodeOptions(w, r)
	if !ok {
		return
	}
	s.Machine.Update(id, opts)
	w.WriteHeader(http.StatusNoContent)
}

// DismissToast handles the DELETE /toasts/{id} request.
func (s *Server) DismissToast(w http.ResponseWriter, r *http.Request, id ToastID) {
	s.Machine.Dismiss(id)
	w.WriteHeader(http.StatusAccepted)
}

// ClearToasts handles the DELETE /toasts request.
func (s *Server) ClearToasts(w http.ResponseWriter, r *http.Request, params ClearToastsParams) {
	if params.Position == nil {
		s.Machine.Clear()
		w.WriteHeader(http.StatusNoContent)
		return
	}
	position := domain.Position(*params.Position)
	if !position.Valid() {
		http.Error(w, fmt.Sprintf("%v: %q", domain.ErrInvalidPosition, position), http.StatusBadRequest)
		return
	}
	s.Machine.Clear(position)
	w.WriteHeader(http.StatusNoContent)
}

type attrsResponse struct {
	attrs.Toast
	ViewportStyle attrs.Attrs `json:"viewport_style"`
}

// GetToastAttrs handles the GET /toasts/{id}/attrs request.
func (s *Server) GetToastAttrs(w http.ResponseWriter, r *http.Request, id ToastID, params GetToastAttrsParams) {
	snap := s.Machine.Snapshot()
	item, ok := snap.Find(id)
	if !ok {
		http.Error(w, fmt.Sprintf("toast %q not found", id), http.StatusNotFound)
		return
	}

	ctx := attrs.Context{
		Ready:    params.Ready != nil && *params.Ready,
		Expanded: params.Expanded != nil && *params.Expanded,
	}
	resp := attrsResponse{
		Toast:         attrs.ForToast(item, ctx),
		ViewportStyle: attrs.ViewportOffsetStyle(snap.Config.Offset, item.Position),
	}
	resp.Viewport = attrs.Viewport(item.Position, snap.Config.Layout)
	s.writeJSON(w, http.StatusOK, resp)
}

// Configure handles the PATCH /config request.
func (s *Server) Configure(w http.ResponseWriter, r *http.Request) {
	var patch domain.Config
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("Configure: Invalid request body", "error", err)
		return
	}
	if err := validateConfig(patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.Machine.Configure(patch)
	s.writeJSON(w, http.StatusOK, s.Machine.Snapshot().Config)
}

func validateConfig(c domain.Config) error {
	if c.Position != "" && !c.Position.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidPosition, c.Position)
	}
	if c.Layout != "" && !c.Layout.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidLayout, c.Layout)
	}
	return nil
}

// GetSpring handles the GET /spring request.
func (s *Server) GetSpring(w http.ResponseWriter, r *http.Request, params GetSpringParams) {
	if params.Stiffness == nil && params.Damping == nil && params.Mass == nil {
		s.writeJSON(w, http.StatusOK, s.preset)
		return
	}

	var cfg spring.Config
	for _, p := range []struct {
		name string
		src  *float64
		dst  *float64
	}{
		{"stiffness", params.Stiffness, &cfg.Stiffness},
		{"damping", params.Damping, &cfg.Damping},
		{"mass", params.Mass, &cfg.Mass},
	} {
		if p.src == nil {
			continue
		}
		if *p.src < 0 {
			http.Error(w, fmt.Sprintf("%s must not be negative", p.name), http.StatusBadRequest)
			return
		}
		*p.dst = *p.src
	}
	s.writeJSON(w, http.StatusOK, spring.ToCSS(cfg))
}

// SubscribeEvents handles the GET /events request (SSE). Every message is a
// full snapshot; the first one is sent right after the connection opens.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	ch, cancel := s.Streams.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	if initial, err := json.Marshal(s.Machine.Snapshot()); err == nil {
		fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", initial)
	}
	flusher.Flush()
	s.logger.Debug("SSE client connected")

	for {
		select {
		case <-r.Context().Done():
			s.logger.Debug("SSE client disconnected")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

// SubscribeSocket handles the GET /ws request. Every text message is a full
// snapshot; incoming messages are ignored.
func (s *Server) SubscribeSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("WebSocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	ch, cancel := s.Streams.Subscribe()
	defer cancel()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					s.logger.Debug("WebSocket closed unexpectedly", "error", err)
				}
				return
			}
		}
	}()

	initial, err := json.Marshal(s.Machine.Snapshot())
	if err == nil {
		err = conn.WriteMessage(websocket.TextMessage, initial)
	}
	if err != nil {
		s.logger.Warn("WebSocket initial write failed", "error", err)
		return
	}

	for {
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				if !errors.Is(err, websocket.ErrCloseSent) {
					s.logger.Debug("WebSocket write failed", "error", err)
				}
				return
			}
		}
	}
}

// broadcast encodes the current snapshot for the stream clients.
func (s *Server) broadcast() {
	if s.Streams.Len() == 0 {
		return
	}
	msg, err := json.Marshal(s.Machine.Snapshot())
	if err != nil {
		s.logger.Error("snapshot encode failed", "error", err)
		return
	}
	s.Streams.Broadcast(msg)
}

// -- Helpers --

func (s *Server) decodeOptions(w http.ResponseWriter, r *http.Request) (domain.Options, bool) {
	var body domain.OptionsPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("Invalid request body", "error", err, "path", r.URL.Path)
		return domain.Options{}, false
	}
	opts, err := body.Options()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return domain.Options{}, false
	}
	return opts, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}
