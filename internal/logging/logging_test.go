package logging_test

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/edp1096/spicelab/internal/logging"
)

func TestSetupFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "spicelab.log")
	cleanup, err := logging.Setup(fn, false)
	if err != nil {
		t.Fatal(err)
	}
	log.Printf("hello %d", 42)
	cleanup()

	b, err := os.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "logging_test.go") || !strings.Contains(string(b), "hello 42") {
		t.Errorf("log = %q", b)
	}
}

func TestSetupBadPath(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "missing", "spicelab.log")
	if _, err := logging.Setup(fn, false); err == nil {
		t.Error("Setup accepted a file in a missing directory")
	}
}
