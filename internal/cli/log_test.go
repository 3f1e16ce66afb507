package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level     log.Level
		wantDebug bool
	}{
		{log.InfoLevel, false},
		{log.DebugLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			l := newLogger(&buf, tt.level)
			l.Debug("font registered", "family", "Caveat")
			if got := buf.Len() > 0; got != tt.wantDebug {
				t.Errorf("debug written = %v, want %v", got, tt.wantDebug)
			}
			l.Info("rendered sheet")
			if !strings.Contains(buf.String(), "rendered sheet") {
				t.Errorf("info line missing from %q", buf.String())
			}
		})
	}
}

func TestNewLogger_TimestampFormat(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, log.InfoLevel).Info("hello")
	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `).MatchString(buf.String()) {
		t.Errorf("line %q does not start with a short timestamp", buf.String())
	}
}

func TestProgress_Done(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, log.InfoLevel))
	p.done("Fetched 2 of 2 fonts")

	if !regexp.MustCompile(`Fetched 2 of 2 fonts \(\d+(\.\d+)?m?s\)`).MatchString(buf.String()) {
		t.Errorf("progress line = %q", buf.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("empty context should yield log.Default()")
	}

	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), l)
	if got := loggerFromContext(ctx); got != l {
		t.Errorf("loggerFromContext() = %p, want %p", got, l)
	}
}
