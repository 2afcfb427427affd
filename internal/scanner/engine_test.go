package scanner

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/SpaceLeam/spring-security-scanner/internal/models"
	"github.com/SpaceLeam/spring-security-scanner/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hitCounter records how many requests each path received
type hitCounter struct {
	mu   sync.Mutex
	hits map[string]int
}

func (h *hitCounter) add(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.hits == nil {
		h.hits = make(map[string]int)
	}
	h.hits[path]++
}

func (h *hitCounter) get(path string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hits[path]
}

func newTestEngine(t *testing.T, handler http.HandlerFunc) (*Engine, *bytes.Buffer, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	var logs bytes.Buffer
	engine := NewEngine(models.ScanConfig{
		TargetURL:      server.URL + "/",
		RequestTimeout: time.Second,
		CommandTimeout: time.Second,
	}, utils.NewLoggerTo(&logs, true))
	return engine, &logs, server
}

func notFound(w http.ResponseWriter, r *http.Request) {
	http.NotFound(w, r)
}

func TestNewEngineNormalizesTarget(t *testing.T) {
	engine := NewEngine(models.ScanConfig{TargetURL: "http://localhost:8080//"}, nil)
	assert.Equal(t, "http://localhost:8080", engine.Config.TargetURL)
	assert.Equal(t, models.DefaultRequestTimeout, engine.Config.RequestTimeout)
	assert.Equal(t, models.DefaultCommandTimeout, engine.Config.CommandTimeout)
	assert.NotEmpty(t, engine.ScanID)
}

func TestRunAllOnCleanTarget(t *testing.T) {
	engine, _, _ := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			for _, h := range RequiredSecurityHeaders {
				w.Header().Set(h.Name, h.Description)
			}
			w.Write([]byte("welcome"))
			return
		}
		notFound(w, r)
	})

	result, err := engine.RunAll(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, result.ExposedEndpoints)
	assert.Empty(t, result.ExposedEndpoints)
	assert.NotNil(t, result.XSSVulnerabilities)
	assert.Empty(t, result.XSSVulnerabilities)
	assert.NotNil(t, result.SQLInjections)
	assert.Empty(t, result.SQLInjections)
	assert.NotNil(t, result.MissingHeaders)
	assert.Empty(t, result.MissingHeaders)
}

func TestRunAllAggregatesFindings(t *testing.T) {
	engine, logs, _ := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/actuator/health":
			w.Write([]byte(`{"status":"UP"}`))
		case "/api/search":
			w.Write([]byte("results for " + r.URL.Query().Get("q")))
		case "/api/login":
			w.Write([]byte(`{"token":"eyJ"}`))
		case "/api/export":
			w.WriteHeader(http.StatusInternalServerError)
		case "/":
			w.Write([]byte("home"))
		default:
			notFound(w, r)
		}
	})

	result, err := engine.RunAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []models.ExposedEndpoint{{Path: "/actuator/health", StatusCode: 200}}, result.ExposedEndpoints)
	assert.Len(t, result.XSSVulnerabilities, 1)
	assert.Equal(t, []string{"Login SQL Injection"}, result.SQLInjections)
	assert.Len(t, result.MissingHeaders, 5)
	// command injection is reported in the log only
	assert.Contains(t, logs.String(), "Possible command injection in /api/export")
}

func TestRunAllSendsBearerToken(t *testing.T) {
	var mu sync.Mutex
	var missing []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret" {
			mu.Lock()
			missing = append(missing, r.URL.Path)
			mu.Unlock()
		}
		notFound(w, r)
	}))
	defer server.Close()

	engine := NewEngine(models.ScanConfig{
		TargetURL:      server.URL,
		Token:          "secret",
		RequestTimeout: time.Second,
		CommandTimeout: time.Second,
	}, utils.NewLoggerTo(&bytes.Buffer{}, false))

	_, err := engine.RunAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestRunAllCancelledBeforeStart(t *testing.T) {
	engine, _, _ := newTestEngine(t, notFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := engine.RunAll(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInterrupted))
	assert.Nil(t, result.ExposedEndpoints)
}

func TestRunAllInterruptedMidCheck(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hits := &hitCounter{}
	engine, _, _ := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		hits.add(r.URL.Path)
		if r.URL.Path == "/actuator/env" {
			cancel()
		}
		w.Write([]byte("ok"))
	})

	_, err := engine.RunAll(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInterrupted))
	assert.Zero(t, hits.get("/actuator/metrics"))
	assert.Zero(t, hits.get("/api/search"))
}

func TestRunAllDeadlineIsNotAnInterrupt(t *testing.T) {
	engine, _, _ := newTestEngine(t, notFound)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := engine.RunAll(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrScanFailed))
	assert.False(t, errors.Is(err, ErrInterrupted))
}

func TestRunAllInterruptedDuringLastCheck(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	engine, _, _ := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			cancel()
			<-r.Context().Done()
			return
		}
		notFound(w, r)
	})

	result, err := engine.RunAll(ctx)
	assert.ErrorIs(t, err, ErrInterrupted)
	assert.Nil(t, result.MissingHeaders)
	assert.Nil(t, result.ExposedEndpoints)
}
