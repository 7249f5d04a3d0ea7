package chatkit

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	coreerrors "chatkit/core/errors"
	"chatkit/core/interfaces"
	"chatkit/infrastructure/cache/gocache"
	"chatkit/infrastructure/cache/noop"
	"chatkit/infrastructure/transport/retry"
	"chatkit/pkg/config"

	"github.com/bool64/stats"
)

type mockTransport struct {
	postFunc   func(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error)
	patchFunc  func(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error)
	deleteFunc func(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error)
}

func (m *mockTransport) Post(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error) {
	return m.postFunc(ctx, route, opts)
}

func (m *mockTransport) Patch(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error) {
	return m.patchFunc(ctx, route, opts)
}

func (m *mockTransport) Delete(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error) {
	return m.deleteFunc(ctx, route, opts)
}

type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int { return m.statusCode }

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(bytes.NewReader([]byte(m.body)))
}

func (m *mockResponse) Header(key string) string { return "" }

type closeRecorderCache struct {
	noop.NoopCache
	closed bool
}

func (c *closeRecorderCache) Close() error {
	c.closed = true
	return nil
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient()
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer client.Close()

	if client.Cache() == nil {
		t.Error("expected default cache")
	}
	if client.Logger() == nil {
		t.Error("expected default logger")
	}
	if _, ok := client.Transport().(*retry.RetryTransport); !ok {
		t.Errorf("expected retry transport by default, got %T", client.Transport())
	}

	deps := client.Dependencies()
	if deps.Cache != client.Cache() || deps.Logger != client.Logger() || deps.Transport != client.Transport() {
		t.Error("Dependencies does not match the accessors")
	}
}

func TestNewClient_WithCache_KeepsOwnership(t *testing.T) {
	injected := &closeRecorderCache{}

	client, err := NewClient(WithCache(injected), WithoutRetry())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if client.Cache() != interfaces.Cache(injected) {
		t.Error("expected the injected cache to be used")
	}

	if err := client.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if injected.closed {
		t.Error("Close must not close an injected cache")
	}
}

func TestNewClient_WithoutCache(t *testing.T) {
	client, err := NewClient(WithoutCache())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	if err := client.Cache().Set(ctx, "key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, err := client.Cache().Get(ctx, "key"); !errors.Is(err, coreerrors.ErrCacheMiss) {
		t.Errorf("expected ErrCacheMiss from disabled cache, got %v", err)
	}
}

func TestNewClient_WithoutRetry(t *testing.T) {
	wantErr := errors.New("connection reset")
	calls := 0
	transport := &mockTransport{
		postFunc: func(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error) {
			calls++
			return nil, wantErr
		},
	}

	client, err := NewClient(WithTransport(transport), WithoutRetry(), WithoutCache())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer client.Close()

	_, err = client.Post(context.Background(), "/channels/81384788765712384/messages", interfaces.RequestOptions{})
	if err != wantErr {
		t.Errorf("expected the transport error unchanged, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call without retrying, got %d", calls)
	}
}

func TestNewClient_RetriesTransientFailures(t *testing.T) {
	calls := 0
	transport := &mockTransport{
		postFunc: func(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error) {
			calls++
			if calls == 1 {
				return nil, &coreerrors.ExternalAPIError{StatusCode: 502, Message: "bad gateway", API: route}
			}
			return &mockResponse{statusCode: 200}, nil
		},
	}

	client, err := NewClient(
		WithTransport(transport),
		WithRetryConfig(2, time.Millisecond),
		WithoutCache(),
	)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer client.Close()

	resp, err := client.Post(context.Background(), "/channels/81384788765712384/messages", interfaces.RequestOptions{})
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}
	if resp.StatusCode() != 200 {
		t.Errorf("expected 200, got %d", resp.StatusCode())
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}

func TestNewClient_WithClassifier(t *testing.T) {
	calls := 0
	transport := &mockTransport{
		deleteFunc: func(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error) {
			calls++
			return nil, errors.New("always fatal")
		},
	}

	client, err := NewClient(
		WithTransport(transport),
		WithClassifier(func(err error) retry.Classification { return retry.Fatal }),
		WithoutCache(),
	)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer client.Close()

	_, err = client.Delete(context.Background(), "/channels/81384788765712384/messages/123", interfaces.RequestOptions{})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("expected 1 call with an all-fatal classifier, got %d", calls)
	}
}

func TestNewClient_WithStats(t *testing.T) {
	tracker := &stats.TrackerMock{}
	transport := &mockTransport{
		postFunc: func(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error) {
			return nil, &coreerrors.ExternalAPIError{StatusCode: 503, Message: "unavailable", API: route}
		},
	}

	client, err := NewClient(
		WithTransport(transport),
		WithStats(tracker),
		WithRetryConfig(1, time.Millisecond),
		WithoutCache(),
	)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer client.Close()

	_, _ = client.Post(context.Background(), "/guilds/81384788765712384", interfaces.RequestOptions{})

	if got := tracker.Int(retry.MetricRetry); got != 1 {
		t.Errorf("expected 1 retry metric, got %d", got)
	}
	if got := tracker.Int(retry.MetricExhausted); got != 1 {
		t.Errorf("expected 1 exhaustion metric, got %d", got)
	}
}

func TestNewClient_WithConfig_SelectsCacheBackend(t *testing.T) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv failed: %v", err)
	}
	cfg.Cache.Type = config.CacheTypeGoCache

	client, err := NewClient(WithConfig(cfg))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer client.Close()

	if _, ok := client.Cache().(*gocache.GoCache); !ok {
		t.Errorf("expected gocache backend, got %T", client.Cache())
	}
}

func TestNewClient_WithConfig_Invalid(t *testing.T) {
	cfg := &config.Config{
		Retry: config.RetryConfig{MaxRetries: -2},
		Cache: config.CacheConfig{Type: config.CacheTypeMemory},
	}

	_, err := NewClient(WithConfig(cfg))
	if err == nil {
		t.Fatal("expected error for invalid config")
	}
	if !coreerrors.IsValidation(err) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestNewClient_LaterOptionWins(t *testing.T) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv failed: %v", err)
	}

	client, err := NewClient(WithConfig(cfg), WithoutCache())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer client.Close()

	if _, ok := client.Cache().(noop.NoopCache); !ok {
		t.Errorf("expected the later option to win, got %T", client.Cache())
	}
}

func TestClient_DelegatesAllMethods(t *testing.T) {
	var gotMethod, gotRoute string
	var gotOpts interfaces.RequestOptions

	record := func(method string) func(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error) {
		return func(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error) {
			gotMethod = method
			gotRoute = route
			gotOpts = opts
			return &mockResponse{statusCode: 204}, nil
		}
	}
	transport := &mockTransport{
		postFunc:   record("POST"),
		patchFunc:  record("PATCH"),
		deleteFunc: record("DELETE"),
	}

	client, err := NewClient(WithTransport(transport), WithoutRetry(), WithoutCache())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	opts := interfaces.RequestOptions{
		Body:    []byte(`{"content":"hello"}`),
		Headers: map[string]string{"Authorization": "Bot token"},
	}

	calls := []struct {
		method string
		send   func() (interfaces.Response, error)
	}{
		{"POST", func() (interfaces.Response, error) { return client.Post(ctx, "/route", opts) }},
		{"PATCH", func() (interfaces.Response, error) { return client.Patch(ctx, "/route", opts) }},
		{"DELETE", func() (interfaces.Response, error) { return client.Delete(ctx, "/route", opts) }},
	}

	for _, call := range calls {
		resp, err := call.send()
		if err != nil {
			t.Fatalf("%s failed: %v", call.method, err)
		}
		if resp.StatusCode() != 204 {
			t.Errorf("%s: expected 204, got %d", call.method, resp.StatusCode())
		}
		if gotMethod != call.method {
			t.Errorf("expected %s to reach the transport, got %s", call.method, gotMethod)
		}
		if gotRoute != "/route" {
			t.Errorf("%s: route not passed through, got %s", call.method, gotRoute)
		}
		if string(gotOpts.Body) != string(opts.Body) || gotOpts.Headers["Authorization"] != "Bot token" {
			t.Errorf("%s: options not passed through unchanged", call.method)
		}
	}
}
