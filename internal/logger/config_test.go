package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearLogEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DEBUG", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
}

func TestNewFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
	}{
		{
			name:    "デフォルト設定（環境変数なし）",
			envVars: map[string]string{},
		},
		{
			name:    "DEBUG=trueでデバッグレベル",
			envVars: map[string]string{"DEBUG": "true"},
		},
		{
			name:    "LOG_FORMAT=json",
			envVars: map[string]string{"LOG_FORMAT": "json"},
		},
		{
			name:    "無効なLOG_LEVEL",
			envVars: map[string]string{"LOG_LEVEL": "invalid"},
			wantErr: true,
		},
		{
			name:    "無効なLOG_FORMAT",
			envVars: map[string]string{"LOG_FORMAT": "xml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearLogEnv(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			logger, err := NewFromEnv()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NotPanics(t, func() {
				logger.Debug("test debug")
				logger.Info("test info")
			})
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	tests := []struct {
		name       string
		envVars    map[string]string
		wantLevel  string
		wantFormat string
	}{
		{
			name:       "環境変数なし",
			envVars:    map[string]string{},
			wantLevel:  "info",
			wantFormat: "text",
		},
		{
			name:       "DEBUG=Yes",
			envVars:    map[string]string{"DEBUG": "Yes"},
			wantLevel:  "debug",
			wantFormat: "text",
		},
		{
			name:       "DEBUG=ON",
			envVars:    map[string]string{"DEBUG": "ON"},
			wantLevel:  "debug",
			wantFormat: "text",
		},
		{
			name:       "DEBUG=y",
			envVars:    map[string]string{"DEBUG": "y"},
			wantLevel:  "debug",
			wantFormat: "text",
		},
		{
			name:       "DEBUG=off（デフォルトと同じ）",
			envVars:    map[string]string{"DEBUG": "off"},
			wantLevel:  "info",
			wantFormat: "text",
		},
		{
			name:       "DEBUG=maybe は無視",
			envVars:    map[string]string{"DEBUG": "maybe"},
			wantLevel:  "info",
			wantFormat: "text",
		},
		{
			name: "DEBUGとLOG_LEVELの両方指定（LOG_LEVELが優先）",
			envVars: map[string]string{
				"DEBUG":     "1",
				"LOG_LEVEL": "ERROR",
			},
			wantLevel:  "error",
			wantFormat: "text",
		},
		{
			name:       "LOG_FORMAT=JSON",
			envVars:    map[string]string{"LOG_FORMAT": "JSON"},
			wantLevel:  "info",
			wantFormat: "json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearLogEnv(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			config := ConfigFromEnv()

			assert.Equal(t, tt.wantLevel, config.Level)
			assert.Equal(t, tt.wantFormat, config.Format)
			assert.NotNil(t, config.Output)
		})
	}
}
