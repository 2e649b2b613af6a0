package spectate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/wvoliveira/pong/game"
)

func startHub(t *testing.T) (*Hub, *httptest.Server, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	h := NewHub()
	go h.Run(ctx)
	srv := httptest.NewServer(h.Router())
	return h, srv, cancel
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func testSnapshot(tick uint64) game.Snapshot {
	return game.Snapshot{
		Tick:    tick,
		Arena:   game.Arena{W: 960, H: 540},
		Ball:    game.Ball{X: 480, Y: 270, R: 9, VX: 6},
		Score:   game.Score{Left: 2, Right: 5},
		Mode:    game.ModePlaying,
		Variant: game.TwoPlayer,
	}
}

func TestHub_BroadcastsToSpectators(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	h, srv, cancel := startHub(t)
	defer srv.Close()
	defer cancel()

	frames := make(chan Frame, 16)
	watchCtx, stopWatch := context.WithCancel(context.Background())
	watchErr := make(chan error, 1)
	go func() {
		watchErr <- Watch(watchCtx, wsURL(srv), func(f Frame) { frames <- f })
	}()

	require.Eventually(t, func() bool { return h.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	h.Publish(testSnapshot(7))

	select {
	case f := <-frames:
		assert.Equal(t, h.MatchID(), f.MatchID)
		assert.Equal(t, uint64(7), f.Snapshot.Tick)
		assert.Equal(t, game.ModePlaying, f.Snapshot.Mode)
		assert.Equal(t, game.TwoPlayer, f.Snapshot.Variant)
		assert.Equal(t, game.Score{Left: 2, Right: 5}, f.Snapshot.Score)
	case <-time.After(2 * time.Second):
		t.Fatal("no frame received")
	}

	stopWatch()
	select {
	case err := <-watchErr:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
	require.Eventually(t, func() bool { return h.Clients() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_LateJoinerGetsLatestFrame(t *testing.T) {
	h, srv, cancel := startHub(t)
	defer srv.Close()
	defer cancel()

	h.Publish(testSnapshot(3))

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	got := make(chan Frame, 1)
	go Watch(ctx, wsURL(srv), func(f Frame) {
		select {
		case got <- f:
		default:
		}
	})

	select {
	case f := <-got:
		assert.Equal(t, uint64(3), f.Snapshot.Tick)
	case <-time.After(2 * time.Second):
		t.Fatal("late joiner got nothing")
	}
}

func TestHub_ShutdownClosesSpectators(t *testing.T) {
	h, srv, cancel := startHub(t)
	defer srv.Close()

	watchErr := make(chan error, 1)
	go func() {
		watchErr <- Watch(context.Background(), wsURL(srv), func(Frame) {})
	}()
	require.Eventually(t, func() bool { return h.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-watchErr:
		assert.NoError(t, err, "going-away close is a clean end")
	case <-time.After(2 * time.Second):
		t.Fatal("watcher not closed on shutdown")
	}
}

func TestHub_JoinAfterShutdownIsReleased(t *testing.T) {
	h := NewHub()
	queued := &client{id: "queued", send: make(chan []byte, sendBuffer)}
	require.NoError(t, h.enqueue(hubEvent{Type: EventJoin, Client: queued}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h.Run(ctx)

	_, open := <-queued.send
	assert.False(t, open, "a join left in the queue must not keep its writer waiting")

	late := &client{id: "late", send: make(chan []byte, sendBuffer)}
	assert.ErrorIs(t, h.enqueue(hubEvent{Type: EventJoin, Client: late}), ErrHubClosed)
	assert.ErrorIs(t, h.enqueue(hubEvent{Type: EventLeave, Client: late}), ErrHubClosed)
}

func TestHub_NewMatchChangesID(t *testing.T) {
	h := NewHub()
	first := h.MatchID()
	second := h.NewMatch()

	assert.NotEqual(t, first, second)
	assert.Equal(t, second, h.MatchID())
	assert.Len(t, second, 26)
}

func TestHub_PublishWithoutRunDoesNotBlock(t *testing.T) {
	h := NewHub()
	for i := 0; i < 500; i++ {
		h.Publish(testSnapshot(uint64(i)))
	}
	f, ok := h.Latest()
	require.True(t, ok)
	assert.Equal(t, uint64(499), f.Snapshot.Tick)
}

func TestRouter_State(t *testing.T) {
	h := NewHub()
	router := h.Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/state", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	h.Publish(testSnapshot(9))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/state", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		MatchID  string `json:"match_id"`
		Snapshot struct {
			Tick    uint64 `json:"tick"`
			Mode    string `json:"mode"`
			Variant string `json:"variant"`
		} `json:"snapshot"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, h.MatchID(), body.MatchID)
	assert.Equal(t, uint64(9), body.Snapshot.Tick)
	assert.Equal(t, "playing", body.Snapshot.Mode)
	assert.Equal(t, "2p", body.Snapshot.Variant)
}

func TestRouter_Health(t *testing.T) {
	h := NewHub()
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(0), body["spectators"])
}
