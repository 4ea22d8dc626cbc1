package translate

import (
	"context"
	"time"
)

// mockProvider is a mock implementation of the TranslationProvider interface
type mockProvider struct {
	target        string
	translateFunc func(ctx context.Context, text string) (string, error)
}

func (m *mockProvider) Translate(ctx context.Context, text string) (string, error) {
	if m.translateFunc != nil {
		return m.translateFunc(ctx, text)
	}
	return "", nil
}

func (m *mockProvider) Target() string {
	return m.target
}

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	getFunc func(ctx context.Context, key string) ([]byte, error)
	setFunc func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	return nil
}

// mockLogger records log calls for assertions
type mockLogger struct {
	warnCalls int
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.warnCalls++ }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
