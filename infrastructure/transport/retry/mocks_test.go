package retry

import (
	"context"
	"io"
	"strings"

	"chatkit/core/interfaces"
)

// mockTransport is a mock implementation of the Transport interface
type mockTransport struct {
	postFunc   func(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error)
	patchFunc  func(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error)
	deleteFunc func(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error)
}

func (m *mockTransport) Post(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error) {
	if m.postFunc != nil {
		return m.postFunc(ctx, route, opts)
	}
	return nil, nil
}

func (m *mockTransport) Patch(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error) {
	if m.patchFunc != nil {
		return m.patchFunc(ctx, route, opts)
	}
	return nil, nil
}

func (m *mockTransport) Delete(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, route, opts)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	debugFunc func(msg string, fields map[string]interface{})
	infoFunc  func(msg string, fields map[string]interface{})
	warnFunc  func(msg string, fields map[string]interface{})
	errorFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {
	if m.debugFunc != nil {
		m.debugFunc(msg, fields)
	}
}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {
	if m.infoFunc != nil {
		m.infoFunc(msg, fields)
	}
}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	if m.warnFunc != nil {
		m.warnFunc(msg, fields)
	}
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	if m.errorFunc != nil {
		m.errorFunc(msg, fields)
	}
}
