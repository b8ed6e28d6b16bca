package simulate_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/edp1096/spicelab/pkg/simulate"
	"github.com/pkg/errors"
)

func script(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not available")
	}
	fn := filepath.Join(t.TempDir(), "fake-sim")
	if err := os.WriteFile(fn, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestRunTranscript(t *testing.T) {
	exe := script(t, `echo "simulated $1"`)
	transcript := filepath.Join(t.TempDir(), "transcript.txt")
	sim := &simulate.Simulator{Exe: exe, Netlist: "top.cir", Transcript: transcript, Timeout: 10 * time.Second}

	if got := sim.Command(); got != exe+" top.cir" {
		t.Errorf("Command = %q", got)
	}
	for i := 0; i < 2; i++ {
		if err := sim.Run(context.Background()); err != nil {
			t.Fatal(err)
		}
	}
	b, err := os.ReadFile(transcript)
	if err != nil {
		t.Fatal(err)
	}
	out := string(b)
	if strings.Count(out, "=== ") != 2 || strings.Count(out, "simulated top.cir\n") != 2 {
		t.Errorf("transcript =\n%s", out)
	}
}

func TestRunFailure(t *testing.T) {
	exe := script(t, "echo boom >&2; exit 3")
	sim := &simulate.Simulator{Exe: exe, Netlist: "top.cir"}
	err := sim.Run(context.Background())
	if err == nil || errors.Is(err, simulate.ErrTimeout) {
		t.Errorf("err = %v, want exit error", err)
	}
}

func TestRunTimeout(t *testing.T) {
	exe := script(t, "exec sleep 5")
	transcript := filepath.Join(t.TempDir(), "transcript.txt")
	sim := &simulate.Simulator{Exe: exe, Netlist: "top.cir", Transcript: transcript, Timeout: 100 * time.Millisecond}

	start := time.Now()
	err := sim.Run(context.Background())
	if !errors.Is(err, simulate.ErrTimeout) {
		t.Fatalf("err = %v, want ErrTimeout", err)
	}
	if time.Since(start) > 4*time.Second {
		t.Error("timeout did not stop the process")
	}
	if _, err := os.Stat(transcript); err != nil {
		t.Errorf("transcript not written on timeout: %v", err)
	}
}

func TestKicadArgs(t *testing.T) {
	k := &simulate.KicadNetlist{Exe: "kicad-cli", Schematic: "amp.kicad_sch", Netlist: "amp.cir"}
	want := "kicad-cli sch export netlist --output amp.cir --format spice amp.kicad_sch"
	if got := k.String(); got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}
