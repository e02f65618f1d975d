package logging

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// setupTestDir points the package at a temp log directory and resets the
// session state, restoring everything on cleanup.
func setupTestDir(t *testing.T) {
	t.Helper()

	origLogDir := logDir
	origInitOnce := initOnce
	origInitErr := initErr
	origSessionID := sessionID
	origSessionIDOnce := sessionIDOnce

	logDir = t.TempDir()
	initOnce = new(sync.Once)
	initErr = nil
	sessionID = ""
	sessionIDOnce = new(sync.Once)

	t.Cleanup(func() {
		logDir = origLogDir
		initOnce = origInitOnce
		initErr = origInitErr
		sessionID = origSessionID
		sessionIDOnce = origSessionIDOnce
	})
}

func TestNewLogger(t *testing.T) {
	setupTestDir(t)

	logger, err := NewLogger("carousel")
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	defer logger.Close()

	if logger.component != "carousel" {
		t.Errorf("component = %q, want carousel", logger.component)
	}
	if logger.SessionID() == "" {
		t.Error("expected a non-empty session id")
	}
	if !strings.HasSuffix(logger.LogPath(), "-slidekit.log") {
		t.Errorf("unexpected log path %q", logger.LogPath())
	}
}

func TestLoggersShareSessionFile(t *testing.T) {
	setupTestDir(t)

	a, err := NewLogger("carousel")
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	defer a.Close()

	b, err := NewLogger("page")
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	defer b.Close()

	if a.LogPath() != b.LogPath() {
		t.Errorf("components write to different files: %q vs %q", a.LogPath(), b.LogPath())
	}

	a.Infof("hello from %s", "carousel")
	b.Warnf("hello from page")

	data, err := os.ReadFile(a.LogPath())
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	content := string(data)

	for _, want := range []string{"[carousel] [INFO] hello from carousel", "[page] [WARN] hello from page"} {
		if !strings.Contains(content, want) {
			t.Errorf("log file missing %q; got:\n%s", want, content)
		}
	}
}

func TestFallbackLoggerWhenDirUnavailable(t *testing.T) {
	setupTestDir(t)

	// Make the log path unopenable by placing a file where the directory
	// should be.
	base := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(base, []byte("x"), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	logDir = filepath.Join(base, "logs")

	logger, err := NewLogger("carousel")
	if err == nil {
		t.Fatal("expected an error when the log directory is unusable")
	}
	if logger == nil {
		t.Fatal("expected a fallback logger, got nil")
	}
	if logger.LogPath() != "" {
		t.Errorf("fallback logger has log path %q, want empty", logger.LogPath())
	}

	// Must not panic.
	logger.Errorf("still usable")
}

func TestCloseIsIdempotent(t *testing.T) {
	setupTestDir(t)

	logger, err := NewLogger("carousel")
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	if err := logger.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
