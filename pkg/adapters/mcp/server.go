package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/fluix"
	"github.com/aretw0/fluix/internal/logging"
	"github.com/aretw0/fluix/pkg/domain"
	"github.com/aretw0/fluix/pkg/machine"
	"github.com/aretw0/fluix/pkg/spring"
)

// SnapshotURI is the resource exposing the current snapshot.
const SnapshotURI = "fluix://snapshot"

// ShowArgs are the arguments of the show_toast tool.
type ShowArgs struct {
	ID          string          `json:"id,omitempty"`
	Title       string          `json:"title,omitempty"`
	Description string          `json:"description,omitempty"`
	State       domain.State    `json:"state,omitempty"`
	Position    domain.Position `json:"position,omitempty"`
	DurationMs  *int64          `json:"duration_ms,omitempty"`
	Persistent  bool            `json:"persistent,omitempty"`
	ButtonTitle string          `json:"button_title,omitempty"`
}

// ShowResult is returned by show_toast.
type ShowResult struct {
	ID string `json:"id" jsonschema_description:"The id of the created or replaced toast"`
}

// DismissArgs are the arguments of the dismiss_toast tool.
type DismissArgs struct {
	ID string `json:"id"`
}

// PositionArgs filter clear_toasts and list_toasts by anchor.
type PositionArgs struct {
	Position domain.Position `json:"position,omitempty"`
}

// SpringArgs are the arguments of the spring_css tool. Zero values take the
// spring defaults; all zero selects the toaster preset.
type SpringArgs struct {
	Stiffness float64 `json:"stiffness,omitempty"`
	Damping   float64 `json:"damping,omitempty"`
	Mass      float64 `json:"mass,omitempty"`
}

// CountResult reports how many toasts an operation affected.
type CountResult struct {
	Count int `json:"count" jsonschema_description:"Number of toasts affected"`
}

// Server exposes a lifecycle machine as an MCP server.
type Server struct {
	machine   *machine.Machine
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger of the server.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(m *machine.Machine, opts ...Option) *Server {
	s := &Server{
		machine:   m,
		logger:    logging.NewNop(),
		mcpServer: server.NewMCPServer("fluix-mcp", strings.TrimSpace(fluix.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the MCP SSE transport on addr until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, addr, baseURL string) error {
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func positionNames() []string {
	names := make([]string, len(domain.Positions))
	for i, p := range domain.Positions {
		names[i] = string(p)
	}
	return names
}

func (s *Server) registerTools() {
	positions := positionNames()

	showTool := mcp.NewTool("show_toast",
		mcp.WithDescription("Show a toast. Reusing an id replaces the toast in place; omitting it uses the shared default id."),
		mcp.WithString("id", mcp.Description("Toast id (optional)")),
		mcp.WithString("title", mcp.Description("Headline text")),
		mcp.WithString("description", mcp.Description("Body text revealed when the toast expands")),
		mcp.WithString("state", mcp.Enum("success", "loading", "error", "warning", "info", "action"), mcp.Description("Visual state, success by default")),
		mcp.WithString("position", mcp.Enum(positions...), mcp.Description("Screen anchor")),
		mcp.WithNumber("duration_ms", mcp.Description("Auto-dismiss delay in milliseconds")),
		mcp.WithBoolean("persistent", mcp.Description("Never auto-dismiss")),
		mcp.WithString("button_title", mcp.Description("Label of the action button")),
		mcp.WithOutputSchema[ShowResult](),
	)
	s.mcpServer.AddTool(showTool, mcp.NewStructuredToolHandler(s.handleShow))

	dismissTool := mcp.NewTool("dismiss_toast",
		mcp.WithDescription("Start the exit of the live toast with the given id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Toast id")),
		mcp.WithOutputSchema[CountResult](),
	)
	s.mcpServer.AddTool(dismissTool, mcp.NewStructuredToolHandler(s.handleDismiss))

	clearTool := mcp.NewTool("clear_toasts",
		mcp.WithDescription("Remove every toast immediately, or only those at a position."),
		mcp.WithString("position", mcp.Enum(positions...), mcp.Description("Restrict to this anchor (optional)")),
		mcp.WithOutputSchema[CountResult](),
	)
	s.mcpServer.AddTool(clearTool, mcp.NewStructuredToolHandler(s.handleClear))

	s.mcpServer.AddTool(mcp.NewTool("list_toasts",
		mcp.WithDescription("Get the current toasts and configuration."),
		mcp.WithString("position", mcp.Enum(positions...), mcp.Description("Restrict to this anchor (optional)")),
	), mcp.NewStructuredToolHandler(s.handleList))

	springTool := mcp.NewTool("spring_css",
		mcp.WithDescription("Encode a spring as a CSS linear() easing and its duration."),
		mcp.WithNumber("stiffness", mcp.Description("Spring stiffness")),
		mcp.WithNumber("damping", mcp.Description("Damping coefficient")),
		mcp.WithNumber("mass", mcp.Description("Mass of the animated object")),
		mcp.WithOutputSchema[spring.CSS](),
	)
	s.mcpServer.AddTool(springTool, mcp.NewStructuredToolHandler(s.handleSpring))
}

// Handler methods for structured tools

func (s *Server) handleShow(ctx context.Context, request mcp.CallToolRequest, args ShowArgs) (ShowResult, error) {
	if args.Position != "" && !args.Position.Valid() {
		return ShowResult{}, fmt.Errorf("%w: %q", domain.ErrInvalidPosition, args.Position)
	}

	opts := domain.Options{
		ID:       args.ID,
		Title:    args.Title,
		State:    args.State,
		Position: args.Position,
	}
	if args.Description != "" {
		opts.Description = args.Description
	}
	if args.ButtonTitle != "" {
		opts.Button = &domain.Button{Title: args.ButtonTitle}
	}
	switch {
	case args.Persistent:
		opts.Duration = domain.DurationOf(domain.Persistent)
	case args.DurationMs != nil:
		opts.Duration = domain.DurationOf(time.Duration(*args.DurationMs) * time.Millisecond)
	}

	id := s.machine.Create(opts)
	s.logger.Debug("MCP: toast shown", "id", id)
	return ShowResult{ID: id}, nil
}

func (s *Server) handleDismiss(ctx context.Context, request mcp.CallToolRequest, args DismissArgs) (CountResult, error) {
	if args.ID == "" {
		return CountResult{}, errors.New("id is required")
	}
	if _, ok := s.machine.Snapshot().Find(args.ID); !ok {
		return CountResult{}, nil
	}
	s.machine.Dismiss(args.ID)
	return CountResult{Count: 1}, nil
}

func (s *Server) handleClear(ctx context.Context, request mcp.CallToolRequest, args PositionArgs) (CountResult, error) {
	if args.Position == "" {
		n := len(s.machine.Snapshot().Toasts)
		s.machine.Clear()
		return CountResult{Count: n}, nil
	}
	if !args.Position.Valid() {
		return CountResult{}, fmt.Errorf("%w: %q", domain.ErrInvalidPosition, args.Position)
	}
	n := len(s.machine.Snapshot().At(args.Position))
	s.machine.Clear(args.Position)
	return CountResult{Count: n}, nil
}

func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest, args PositionArgs) (json.RawMessage, error) {
	snap := s.machine.Snapshot()
	if args.Position != "" {
		if !args.Position.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPosition, args.Position)
		}
		snap = &domain.Snapshot{Toasts: snap.At(args.Position), Config: snap.Config}
	}
	return json.Marshal(snap)
}

func (s *Server) handleSpring(ctx context.Context, request mcp.CallToolRequest, args SpringArgs) (spring.CSS, error) {
	if args.Stiffness < 0 || args.Damping < 0 || args.Mass < 0 {
		return spring.CSS{}, errors.New("spring parameters must not be negative")
	}
	if args == (SpringArgs{}) {
		return *spring.DefaultCSS(), nil
	}
	return *spring.ToCSS(spring.Config{
		Stiffness: args.Stiffness,
		Damping:   args.Damping,
		Mass:      args.Mass,
	}), nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(SnapshotURI, "Current Toasts",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.machine.Snapshot())
		if err != nil {
			return nil, fmt.Errorf("failed to encode snapshot: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      SnapshotURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
