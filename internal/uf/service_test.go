package uf

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, upstream *httptest.Server) (*Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })
	log := slog.New(slog.NewTextHandler(testWriter{t}, nil))
	return NewService(upstream.Client(), cache, upstream.URL, time.Hour, log), mr
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func TestCurrentFetchesAndCaches(t *testing.T) {
	var hits atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"serie":[{"valor":37500.5}]}`))
	}))
	defer upstream.Close()

	svc, _ := newTestService(t, upstream)

	body, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(body), "37500.5")

	// second call is served from the cache
	_, err = svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestCurrentServesStaleOnUpstreamFailure(t *testing.T) {
	var fail atomic.Bool
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"serie":[{"valor":37500.5}]}`))
	}))
	defer upstream.Close()

	svc, mr := newTestService(t, upstream)

	_, err := svc.Current(context.Background())
	require.NoError(t, err)

	// expire the fresh copy and break the upstream
	mr.FastForward(2 * time.Hour)
	fail.Store(true)

	body, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(body), "37500.5")
}

func TestCurrentColdCacheFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	svc, _ := newTestService(t, upstream)

	_, err := svc.Current(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
