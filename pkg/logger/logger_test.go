package logger_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/panaderia-api/pkg/logger"
)

func TestNew_NivelConfigurable(t *testing.T) {
	cases := []struct {
		level string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		l := logger.New(logger.Config{Env: "production", Level: tc.level})
		assert.Equal(t, tc.want, l.Zerolog().GetLevel(), "nivel %q", tc.level)
	}
}

func TestNew_EmiteCampoService(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "info", Service: "panaderia-pos"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("arrancando")

	assert.Contains(t, buf.String(), `"service":"panaderia-pos"`)
	assert.Contains(t, buf.String(), `"message":"arrancando"`)
}

func TestNew_SinService_NoEmiteCampo(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "info"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("arrancando")

	assert.NotContains(t, buf.String(), `"service"`)
}
