package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/webpix/internal/config"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	l.Info("test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(dir, "logs", "webpix.log")
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("to file")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("[INFO] to file")) {
		t.Errorf("log file content: %s", string(b))
	}
}

func TestLogger_Streams(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	if _, err := NewLogger(&cfg); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	l := New(&out, &errOut)
	l.Info("info %d", 1)
	l.Warn("warn")
	l.Success("ok")
	l.Error("bad %s", "thing")
	l.Debug("hidden")

	if !strings.Contains(out.String(), "[INFO] info 1") || !strings.Contains(out.String(), "[WARN] warn") {
		t.Errorf("stdout = %q", out.String())
	}
	if strings.Contains(out.String(), "bad thing") {
		t.Error("ERROR line written to stdout")
	}
	if !strings.Contains(errOut.String(), "[ERROR] bad thing") {
		t.Errorf("stderr = %q", errOut.String())
	}
	if strings.Contains(out.String(), "hidden") {
		t.Error("Debug printed while not verbose")
	}

	l.SetVerbose(true)
	l.Debug("shown")
	if !strings.Contains(out.String(), "[DEBUG] shown") {
		t.Error("Debug not printed while verbose")
	}
}
