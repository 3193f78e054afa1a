package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/douhashi/coincidence/pkg/values"
)

// debugEnabled はDEBUGにtokenを設定したときにdebugログが出力されるかを返す
func debugEnabled(t *testing.T, token string) bool {
	t.Helper()
	t.Setenv("DEBUG", token)
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	var buf bytes.Buffer
	log, err := NewFromEnv(WithOutput(&buf), WithFormat("json"))
	require.NoError(t, err)

	log.Debug("probe decision", "reason", "marker")
	return strings.Contains(buf.String(), "probe decision")
}

func TestIntegration_DebugEnvTokens(t *testing.T) {
	values.Run(t, values.MustTruthyValues(), func(t *testing.T, v any) {
		assert.True(t, debugEnabled(t, fmt.Sprint(v)))
	})

	values.Run(t, values.MustFalsyValues(values.WithExtra("", "maybe")), func(t *testing.T, v any) {
		assert.False(t, debugEnabled(t, fmt.Sprint(v)))
	})
}

func TestIntegration_WithOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(WithLevel("info"), WithFormat("json"), WithOutput(&buf))
	require.NoError(t, err)

	log.WithFields("component", "dockerenv").Info("tokens generated", "kind", "truthy", "count", 14)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "tokens generated", entry["msg"])
	assert.Equal(t, "dockerenv", entry["component"])
	assert.Equal(t, float64(14), entry["count"])
}

func TestIntegration_NopDiscardsEverything(t *testing.T) {
	log := NewNop()
	assert.NotPanics(t, func() {
		log.WithFields("k", "v").Error("dropped", "error", io.EOF)
	})
}

func TestIntegration_ConcurrentLogging(t *testing.T) {
	log, err := New(WithLevel("info"), WithOutput(io.Discard))
	require.NoError(t, err)

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func(id int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				log.Info("concurrent log", "goroutine", id, "iteration", j)
			}
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}

func BenchmarkLogger_DebugFiltered(b *testing.B) {
	log, _ := New(WithLevel("info"), WithOutput(io.Discard))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log.Debug("filtered message", "iteration", i)
	}
}
