package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/alexanderramin/steward/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "execute",
		Duration: 12 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"plan_id": "p-1"},
	})

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "use_case=execute")
	assert.Contains(t, out, "duration_ms=12")
	assert.Contains(t, out, "plan_id=p-1")
}

func TestLogUseCaseObserver_ErrorLevels(t *testing.T) {
	tests := []struct {
		err   error
		level string
		code  string
	}{
		{domain.ErrTokenMismatch, "level=WARN", "TOKEN_MISMATCH"},
		{domain.ErrUnrecognized, "level=WARN", "UNRECOGNIZED"},
		{domain.ErrActionNotPermitted, "level=ERROR", "POLICY_DENIED"},
		{domain.NewExecutionError(domain.IntentOpenFile, fmt.Errorf("read: %w", domain.ErrPathEscapesRoot)), "level=ERROR", "EXECUTION_FAILED"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			var buf bytes.Buffer
			obs := NewSlogUseCaseObserver(slog.New(slog.NewTextHandler(&buf, nil)))
			obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "plan", Err: tt.err})
			assert.Contains(t, buf.String(), tt.level)
			assert.Contains(t, buf.String(), "error_code="+tt.code)
		})
	}
}

func TestNewLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
	assert.IsType(t, NoopUseCaseObserver{}, NewSlogUseCaseObserver(nil))
}
