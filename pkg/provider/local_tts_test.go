package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeTTSServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/emotions", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"emotions":["neutral","happy","sad"]}`))
	})
	mux.HandleFunc("/synthesize", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("RIFFfakewavdata"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestTTSLifecycle(t *testing.T) {
	srv := newFakeTTSServer(t)
	p := NewLocalTTSProvider(srv.URL, t.TempDir())

	status, _ := p.PollStatus()
	assert.Equal(t, StatusUninitialized, status)

	require.NoError(t, p.AwaitReady(5*time.Second))

	status, err := p.PollStatus()
	require.NoError(t, err)
	assert.Equal(t, StatusReady, status)
	assert.Equal(t, []string{"neutral", "happy", "sad"}, p.AvailableEmotions())
}

func TestTTSInitializationFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model load failed", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	p := NewLocalTTSProvider(srv.URL, t.TempDir())
	err := p.AwaitReady(5 * time.Second)
	require.Error(t, err)

	status, initErr := p.PollStatus()
	assert.Equal(t, StatusFailed, status)
	assert.Error(t, initErr)
}

func TestGenerateSpeechWritesFile(t *testing.T) {
	srv := newFakeTTSServer(t)
	p := NewLocalTTSProvider(srv.URL, t.TempDir())
	require.NoError(t, p.AwaitReady(5*time.Second))

	path, err := p.GenerateSpeech(context.Background(), `"Hello!"`, "happy", true)
	require.NoError(t, err)
	assert.NotEmpty(t, path)
	assert.FileExists(t, path)
}

func TestGenerateSpeechNoDialogue(t *testing.T) {
	srv := newFakeTTSServer(t)
	p := NewLocalTTSProvider(srv.URL, t.TempDir())
	require.NoError(t, p.AwaitReady(5*time.Second))

	path, err := p.GenerateSpeech(context.Background(), "Only narration here.", "neutral", true)
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestGenerateSpeechRequiresReady(t *testing.T) {
	p := NewLocalTTSProvider("http://127.0.0.1:1", t.TempDir())
	_, err := p.GenerateSpeech(context.Background(), `"hi"`, "neutral", true)
	assert.Error(t, err)
}
