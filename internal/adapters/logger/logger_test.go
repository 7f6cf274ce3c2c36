package logger_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.trai.ch/nobs/internal/adapters/logger"
)

func TestLogger_Info(t *testing.T) {
	l, ok := logger.New().(*logger.Logger)
	if !ok {
		t.Fatal("New should return *logger.Logger")
	}

	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Info("building target app")

	out := buf.String()
	if !strings.Contains(out, "building target app") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "level=INFO") {
		t.Errorf("expected INFO level, got %q", out)
	}
}

func TestLogger_Warn(t *testing.T) {
	l := logger.New().(*logger.Logger)

	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Warn("self rebuild active")

	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("expected WARN level, got %q", buf.String())
	}
}

func TestLogger_Error(t *testing.T) {
	l := logger.New().(*logger.Logger)

	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Error(errors.New("link step exploded"))

	out := buf.String()
	if !strings.Contains(out, "level=ERROR") {
		t.Errorf("expected ERROR level, got %q", out)
	}
	if !strings.Contains(out, "link step exploded") {
		t.Errorf("expected error text in output, got %q", out)
	}
}
