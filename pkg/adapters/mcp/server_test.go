package mcp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/fluix/pkg/domain"
	"github.com/aretw0/fluix/pkg/machine"
	"github.com/aretw0/fluix/pkg/scheduler"
	"github.com/aretw0/fluix/pkg/spring"
)

func newTestServer(t *testing.T) (*Server, *scheduler.Manual) {
	t.Helper()
	clock := scheduler.NewManual()
	m := machine.New(machine.WithScheduler(clock))
	t.Cleanup(m.Destroy)
	return NewServer(m), clock
}

func call[A, R any](t *testing.T, handler func(context.Context, mcp.CallToolRequest, A) (R, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	res, err := mcp.NewStructuredToolHandler[A, R](handler)(context.Background(), req)
	require.NoError(t, err)
	return res
}

func TestTools_Registered(t *testing.T) {
	s, _ := newTestServer(t)

	resp := s.MCPServer().HandleMessage(context.Background(),
		json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var rpc struct {
		Result mcp.ListToolsResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(raw, &rpc), string(raw))
	result := rpc.Result

	var names []string
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"show_toast", "dismiss_toast", "clear_toasts", "list_toasts", "spring_css"}, names)
}

func TestShowToast(t *testing.T) {
	s, _ := newTestServer(t)

	res := call(t, s.handleShow, map[string]any{
		"id":           "deploy",
		"title":        "Deploying",
		"state":        "loading",
		"position":     "bottom-center",
		"persistent":   true,
		"button_title": "Cancel",
	})
	require.False(t, res.IsError)
	assert.Equal(t, ShowResult{ID: "deploy"}, res.StructuredContent)

	item, ok := s.machine.Snapshot().Find("deploy")
	require.True(t, ok)
	assert.Equal(t, domain.StateLoading, item.State)
	assert.Equal(t, domain.PositionBottomCenter, item.Position)
	assert.True(t, item.IsPersistent())
	require.NotNil(t, item.Button)
	assert.Equal(t, "Cancel", item.Button.Title)

	res = call(t, s.handleShow, map[string]any{"title": "Saved", "duration_ms": 1500})
	require.False(t, res.IsError)
	assert.Equal(t, ShowResult{ID: domain.Defaults.ID}, res.StructuredContent)
	item, _ = s.machine.Snapshot().Find(domain.Defaults.ID)
	assert.Equal(t, domain.StateSuccess, item.State)
	assert.Equal(t, int64(1500), item.Duration.Milliseconds())

	res = call(t, s.handleShow, map[string]any{"position": "middle"})
	assert.True(t, res.IsError)
}

func TestDismissToast(t *testing.T) {
	s, clock := newTestServer(t)
	s.machine.Create(domain.Options{ID: "a"})

	res := call(t, s.handleDismiss, map[string]any{"id": "a"})
	require.False(t, res.IsError)
	assert.Equal(t, CountResult{Count: 1}, res.StructuredContent)

	res = call(t, s.handleDismiss, map[string]any{"id": "a"})
	assert.Equal(t, CountResult{Count: 0}, res.StructuredContent, "already exiting")

	clock.Advance(domain.ExitDuration)
	assert.Empty(t, s.machine.Snapshot().Toasts)

	res = call(t, s.handleDismiss, map[string]any{})
	assert.True(t, res.IsError)
}

func TestClearAndListToasts(t *testing.T) {
	s, _ := newTestServer(t)
	s.machine.Create(domain.Options{ID: "a", Position: domain.PositionTopLeft})
	s.machine.Create(domain.Options{ID: "b", Position: domain.PositionBottomRight})
	s.machine.Create(domain.Options{ID: "c", Position: domain.PositionBottomRight})

	res := call(t, s.handleList, map[string]any{"position": "bottom-right"})
	require.False(t, res.IsError)
	raw, ok := res.StructuredContent.(json.RawMessage)
	require.True(t, ok)
	var snap domain.Snapshot
	require.NoError(t, json.Unmarshal(raw, &snap))
	assert.Len(t, snap.Toasts, 2)

	res = call(t, s.handleClear, map[string]any{"position": "bottom-right"})
	assert.Equal(t, CountResult{Count: 2}, res.StructuredContent)
	assert.Len(t, s.machine.Snapshot().Toasts, 1)

	res = call(t, s.handleClear, map[string]any{})
	assert.Equal(t, CountResult{Count: 1}, res.StructuredContent)
	assert.Empty(t, s.machine.Snapshot().Toasts)

	res = call(t, s.handleList, map[string]any{"position": "nowhere"})
	assert.True(t, res.IsError)
}

func TestSpringCSS(t *testing.T) {
	s, _ := newTestServer(t)

	res := call(t, s.handleSpring, map[string]any{})
	require.False(t, res.IsError)
	assert.Equal(t, *spring.DefaultCSS(), res.StructuredContent)

	res = call(t, s.handleSpring, map[string]any{"stiffness": 100, "damping": 10, "mass": 1})
	require.False(t, res.IsError)
	css, ok := res.StructuredContent.(spring.CSS)
	require.True(t, ok)
	assert.Equal(t, spring.ToCSS(spring.DefaultConfig).Easing, css.Easing)

	res = call(t, s.handleSpring, map[string]any{"mass": -1})
	assert.True(t, res.IsError)
}

func TestShowToast_AutoDismissAfterDuration(t *testing.T) {
	clock := scheduler.NewManual()
	m := machine.New(machine.WithScheduler(clock), machine.WithAutoDismiss(true))
	t.Cleanup(m.Destroy)
	s := NewServer(m)

	call(t, s.handleShow, map[string]any{"id": "build", "title": "Built", "duration_ms": 1500})
	call(t, s.handleShow, map[string]any{"id": "pinned", "title": "Pinned", "persistent": true})

	clock.Advance(1500 * time.Millisecond)
	snap := m.Snapshot()
	require.Len(t, snap.Toasts, 2)
	assert.True(t, snap.Toasts[0].Exiting)
	assert.False(t, snap.Toasts[1].Exiting)

	clock.Advance(domain.ExitDuration)
	_, ok := m.Snapshot().Find("build")
	assert.False(t, ok)
	_, ok = m.Snapshot().Find("pinned")
	assert.True(t, ok)
	assert.Len(t, m.Snapshot().Toasts, 1)
}
