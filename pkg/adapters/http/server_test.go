package http

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/fluix/pkg/domain"
	"github.com/aretw0/fluix/pkg/machine"
	"github.com/aretw0/fluix/pkg/scheduler"
	"github.com/aretw0/fluix/pkg/spring"
)

func newTestServer(t *testing.T) (*Server, *scheduler.Manual, http.Handler) {
	t.Helper()
	clock := scheduler.NewManual()
	m := machine.New(machine.WithScheduler(clock))
	s := New(m)
	t.Cleanup(func() {
		s.Close()
		m.Destroy()
	})
	return s, clock, s.Handler()
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeSnapshot(t *testing.T, w *httptest.ResponseRecorder) domain.Snapshot {
	t.Helper()
	var snap domain.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	return snap
}

func TestGetSwagger_Valid(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)
	require.NotNil(t, doc.Info)
	assert.Equal(t, "1.0.0", doc.Info.Version)
	require.NoError(t, doc.Validate(context.Background()))
	assert.NotNil(t, doc.Paths.Find("/toasts/{id}/attrs"))
}

func TestHealthAndInfo(t *testing.T) {
	_, _, h := newTestServer(t)

	w := do(t, h, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = do(t, h, "GET", "/info", "")
	require.Equal(t, http.StatusOK, w.Code)
	var info map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "fluix-http", info["app"])
	assert.Equal(t, "1.0.0", info["api_version"])
	assert.NotEmpty(t, info["version"])

	w = do(t, h, "GET", "/openapi.yaml", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"openapi":"3.0.3"`)

	w = do(t, h, "OPTIONS", "/toasts", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestToastLifecycle(t *testing.T) {
	_, clock, h := newTestServer(t)

	w := do(t, h, "POST", "/toasts", `{"id":"upload","title":"Uploading","state":"loading","duration_ms":null}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.JSONEq(t, `{"id":"upload"}`, w.Body.String())

	w = do(t, h, "POST", "/toasts", `{"title":"Saved!","position":"bottom-left"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":"fluix-default"}`, w.Body.String())

	snap := decodeSnapshot(t, do(t, h, "GET", "/toasts", ""))
	require.Len(t, snap.Toasts, 2)
	assert.True(t, snap.Toasts[0].IsPersistent())
	assert.Equal(t, domain.StateLoading, snap.Toasts[0].State)
	assert.Equal(t, domain.DefaultDuration, snap.Toasts[1].Duration)

	filtered := decodeSnapshot(t, do(t, h, "GET", "/toasts?position=bottom-left", ""))
	require.Len(t, filtered.Toasts, 1)
	assert.Equal(t, "Saved!", filtered.Toasts[0].Title)

	w = do(t, h, "PUT", "/toasts/upload", `{"title":"Uploaded","state":"success"}`)
	assert.Equal(t, http.StatusNoContent, w.Code)
	snap = decodeSnapshot(t, do(t, h, "GET", "/toasts", ""))
	item, ok := snap.Find("upload")
	require.True(t, ok)
	assert.Equal(t, domain.StateSuccess, item.State)
	assert.Equal(t, "Uploaded", item.Title)

	w = do(t, h, "DELETE", "/toasts/upload", "")
	assert.Equal(t, http.StatusAccepted, w.Code)
	snap = decodeSnapshot(t, do(t, h, "GET", "/toasts", ""))
	require.Len(t, snap.Toasts, 2)
	assert.True(t, snap.Toasts[0].Exiting)

	clock.Advance(domain.ExitDuration)
	snap = decodeSnapshot(t, do(t, h, "GET", "/toasts", ""))
	require.Len(t, snap.Toasts, 1)
	assert.Equal(t, "fluix-default", snap.Toasts[0].ID)

	w = do(t, h, "DELETE", "/toasts?position=bottom-left", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, decodeSnapshot(t, do(t, h, "GET", "/toasts", "")).Toasts)
}

func TestBadRequests(t *testing.T) {
	_, _, h := newTestServer(t)

	cases := []struct {
		name, method, target, body string
	}{
		{"malformed body", "POST", "/toasts", `{`},
		{"unknown position", "POST", "/toasts", `{"position":"middle"}`},
		{"bad duration", "POST", "/toasts", `{"duration_ms":"soon"}`},
		{"list filter", "GET", "/toasts?position=middle", ""},
		{"clear filter", "DELETE", "/toasts?position=middle", ""},
		{"bad bool", "GET", "/toasts/x/attrs?ready=maybe", ""},
		{"bad layout", "PATCH", "/config", `{"layout":"grid"}`},
		{"bad float", "GET", "/spring?stiffness=stiff", ""},
		{"negative spring", "GET", "/spring?mass=-1", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, h, tc.method, tc.target, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestGetToastAttrs(t *testing.T) {
	s, _, h := newTestServer(t)
	s.Machine.Configure(domain.Config{Layout: domain.LayoutNotch, Offset: domain.OffsetPx(24)})
	s.Machine.Create(domain.Options{ID: "a", State: domain.StateError, Position: domain.PositionBottomRight})

	w := do(t, h, "GET", "/toasts/a/attrs?ready=true&expanded=true", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp["root"]["data-state"])
	assert.Equal(t, "true", resp["root"]["data-ready"])
	assert.Equal(t, "top", resp["root"]["data-edge"])
	assert.Equal(t, "true", resp["content"]["data-visible"])
	assert.Equal(t, "notch", resp["viewport"]["data-layout"])
	assert.Equal(t, map[string]string{"bottom": "24px", "right": "24px"}, resp["viewport_style"])

	w = do(t, h, "GET", "/toasts/missing/attrs", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConfigure(t *testing.T) {
	s, _, h := newTestServer(t)

	w := do(t, h, "PATCH", "/config", `{"position":"bottom-center","offset":{"uniform":"8px"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var cfg domain.Config
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
	assert.Equal(t, domain.PositionBottomCenter, cfg.Position)
	assert.Equal(t, domain.LayoutStack, cfg.Layout)
	assert.Equal(t, domain.PositionBottomCenter, s.Machine.Snapshot().Config.Position)

	w = do(t, h, "PATCH", "/config", `{"defaults":{"fill":"#000000","duration_ms":null}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	s.Machine.Create(domain.Options{ID: "d"})
	item, ok := s.Machine.Snapshot().Find("d")
	require.True(t, ok)
	assert.Equal(t, "#000000", item.Fill)
	assert.True(t, item.IsPersistent())

	w = do(t, h, "PATCH", "/config", `{"defaults":{"position":"middle"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSpring(t *testing.T) {
	_, _, h := newTestServer(t)

	var css spring.CSS
	w := do(t, h, "GET", "/spring", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &css))
	assert.Equal(t, spring.DefaultCSS().Easing, css.Easing)

	w = do(t, h, "GET", "/spring?stiffness=100&damping=10", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &css))
	assert.Equal(t, spring.ToCSS(spring.DefaultConfig).DurationMs, css.DurationMs)
}

func TestSubscribeEvents_StreamsSnapshots(t *testing.T) {
	s, _, h := newTestServer(t)
	srv := httptest.NewServer(h)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", srv.URL+"/events", nil)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	lines := make(chan string, 16)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			if data, ok := strings.CutPrefix(scanner.Text(), "data: "); ok {
				lines <- data
			}
		}
	}()

	next := func() string {
		select {
		case line := <-lines:
			return line
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for SSE data")
			return ""
		}
	}

	assert.Equal(t, "connected", next())
	assert.JSONEq(t, `{"toasts":[],"config":{"position":"top-right","layout":"stack"}}`, next())

	require.Eventually(t, func() bool { return s.Streams.Len() == 1 }, time.Second, 5*time.Millisecond)
	s.Machine.Create(domain.Options{ID: "hello", Title: "Hello"})

	var snap domain.Snapshot
	require.NoError(t, json.Unmarshal([]byte(next()), &snap))
	item, ok := snap.Find("hello")
	require.True(t, ok)
	assert.Equal(t, "Hello", item.Title)
}

func TestSubscribeSocket_StreamsSnapshots(t *testing.T) {
	s, _, h := newTestServer(t)
	srv := httptest.NewServer(h)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var snap domain.Snapshot
	require.NoError(t, conn.ReadJSON(&snap))
	assert.Empty(t, snap.Toasts)

	require.Eventually(t, func() bool { return s.Streams.Len() == 1 }, time.Second, 5*time.Millisecond)
	s.Machine.Create(domain.Options{ID: "ws", Title: "Over the wire"})

	require.NoError(t, conn.ReadJSON(&snap))
	item, ok := snap.Find("ws")
	require.True(t, ok)
	assert.Equal(t, "Over the wire", item.Title)
}

func TestStreamManager(t *testing.T) {
	s, _, _ := newTestServer(t)
	sm := s.Streams

	ch, cancel := sm.Subscribe()
	assert.Equal(t, 1, sm.Len())

	sm.Broadcast([]byte("one"))
	assert.Equal(t, []byte("one"), <-ch)

	for range 20 {
		sm.Broadcast([]byte("flood"))
	}
	assert.Len(t, ch, 10, "a full buffer drops instead of blocking")

	cancel()
	cancel()
	assert.Zero(t, sm.Len())
}

func TestGetSpring_Preset(t *testing.T) {
	m := machine.New(machine.WithScheduler(scheduler.NewManual()))
	s := New(m, WithSpring(spring.DefaultConfig))
	defer s.Close()

	var css spring.CSS
	w := do(t, s.Handler(), "GET", "/spring", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &css))
	assert.Equal(t, spring.ToCSS(spring.DefaultConfig).DurationMs, css.DurationMs)
}
