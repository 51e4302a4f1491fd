package docxjson

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"chatty", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLogLevel(tt.in); got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "warn")

	l.Info().Msg("info message")
	l.Warn().Str("file", "a.docx").Msg("warn message")

	out := buf.String()
	if strings.Contains(out, "info message") {
		t.Errorf("info message should be filtered at warn level: %s", out)
	}
	for _, want := range []string{`"level":"warn"`, `"file":"a.docx"`, `"message":"warn message"`, `"time":`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %s, got %s", want, out)
		}
	}
}

func TestSetLogger(t *testing.T) {
	prev := *GetLogger()
	defer SetLogger(prev)

	var buf bytes.Buffer
	SetLogger(NewLogger(&buf, "debug"))
	GetLogger().Debug().Msg("through package logger")

	if !strings.Contains(buf.String(), "through package logger") {
		t.Errorf("expected message in replaced logger output, got %q", buf.String())
	}
}
