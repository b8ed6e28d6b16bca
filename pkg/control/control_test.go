package control_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/edp1096/spicelab/pkg/control"
)

func TestControl(t *testing.T) {
	now := time.Date(2024, 3, 5, 10, 4, 5, 0, time.UTC)
	c := control.New(now)
	c.Insert("op", "print line all > out/op.txt")

	lines := c.Lines()
	if lines[0] != ".control" || lines[len(lines)-1] != ".endc" || lines[len(lines)-2] != "quit" {
		t.Fatalf("framing wrong: %q", lines)
	}
	if lines[1] != "* Timestamp: Tue Mar  5 10:04:05 2024" {
		t.Errorf("timestamp line = %q", lines[1])
	}
	if lines[4] != "op" || lines[5] != "print line all > out/op.txt" {
		t.Errorf("inserted lines misplaced: %q", lines)
	}

	frag := c.Netlist()
	if frag.Len() != len(lines) {
		t.Errorf("Netlist() has %d lines, want %d", frag.Len(), len(lines))
	}

	fn := filepath.Join(t.TempDir(), "cntl.cir")
	if err := c.WriteFile(fn); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(b), "quit\n.endc\n") {
		t.Errorf("file tail = %q", b)
	}
}
