package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew_DefaultLevelIsWarn(t *testing.T) {
	t.Setenv(LevelEnv, "")
	var buf bytes.Buffer
	log := New(&buf, false)

	if log.GetLevel() != logrus.WarnLevel {
		t.Errorf("expected warn level, got %s", log.GetLevel())
	}

	log.Debug("hidden")
	log.Warn("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("debug record should be filtered, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "msg=shown") {
		t.Errorf("expected warn record, got %q", buf.String())
	}
}

func TestNew_DebugFlagWins(t *testing.T) {
	t.Setenv(LevelEnv, "error")
	log := New(&bytes.Buffer{}, true)
	if log.GetLevel() != logrus.DebugLevel {
		t.Errorf("expected debug level, got %s", log.GetLevel())
	}
}

func TestNew_LevelFromEnv(t *testing.T) {
	t.Setenv(LevelEnv, "info")
	log := New(&bytes.Buffer{}, false)
	if log.GetLevel() != logrus.InfoLevel {
		t.Errorf("expected info level, got %s", log.GetLevel())
	}
}

func TestNew_InvalidEnvIgnored(t *testing.T) {
	t.Setenv(LevelEnv, "loud")
	log := New(&bytes.Buffer{}, false)
	if log.GetLevel() != logrus.WarnLevel {
		t.Errorf("expected warn level, got %s", log.GetLevel())
	}
}
