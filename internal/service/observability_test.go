package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/roster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func TestLogUseCaseObserver_JSON(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, LogOptions{Level: "info", Format: "json"})

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "generate-plan",
		Duration: 12 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"strategy": "balanced"},
	})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "service_use_case", line["message"])
	assert.Equal(t, "generate-plan", line["use_case"])
	assert.Equal(t, "balanced", line["strategy"])
	assert.Equal(t, "info", line["level"])
}

func TestLogUseCaseObserver_ErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, LogOptions{Level: "error", Format: "json"})

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "ok", Success: true})
	assert.Empty(t, buf.String(), "info events are below the error level")

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "bad", Err: errors.New("boom")})
	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil, LogOptions{}))
}

func TestServices_ReportUseCases(t *testing.T) {
	env := newTestEnv(t)
	rec := &recordingObserver{}
	svc := NewRegistryService(env.registries, "ATC", rec)

	_, err := svc.Add(context.Background(), domain.RegistryBoards, "SWN")
	require.NoError(t, err)

	require.Len(t, rec.events, 1)
	assert.Equal(t, "registry-add", rec.events[0].Name)
	assert.True(t, rec.events[0].Success)
	assert.Equal(t, false, rec.events[0].Fields["applied"])
}
