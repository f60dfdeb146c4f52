package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSnapshot = `{"generatedAt": "2026-10-18T06:00:00Z", "funds": []}`

func TestFileSnapshotSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fund-directory.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleSnapshot), 0o644))

	source := NewFileSnapshotSource(path)
	raw, err := source.Fetch(context.Background())

	require.NoError(t, err)
	assert.JSONEq(t, sampleSnapshot, string(raw))
	assert.Equal(t, "file:"+path, source.Name())
}

func TestFileSnapshotSource_Missing(t *testing.T) {
	source := NewFileSnapshotSource(filepath.Join(t.TempDir(), "nope.json"))

	_, err := source.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestFileSnapshotSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSnapshotSource("unused.json").Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestURLSnapshotSource(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/fund-directory.json", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleSnapshot))
	})
	mux.HandleFunc("/broken.json", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	ctx := context.Background()

	raw, err := NewURLSnapshotSource(server.URL+"/fund-directory.json", time.Second).Fetch(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, sampleSnapshot, string(raw))

	_, err = NewURLSnapshotSource(server.URL+"/missing.json", time.Second).Fetch(ctx)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	_, err = NewURLSnapshotSource(server.URL+"/broken.json", time.Second).Fetch(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSnapshotNotFound)
	assert.Contains(t, err.Error(), "502")
}

func TestURLSnapshotSource_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	_, err := NewURLSnapshotSource(server.URL, 50*time.Millisecond).Fetch(context.Background())
	assert.Error(t, err)
}

func TestRedisSnapshotSource_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	source := NewRedisSnapshotSource(client, "fund-directory:snapshot")
	_, err := source.Fetch(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSnapshotNotFound)
	assert.Equal(t, "redis:fund-directory:snapshot", source.Name())
}

func TestRedisSnapshotPublisher_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	publisher := NewRedisSnapshotPublisher(client, "fund-directory:snapshot")
	err := publisher.Publish(context.Background(), []byte(sampleSnapshot), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish snapshot to redis")
}
