// Package simulate launches the external simulator and schematic netlist
// exporter as subprocesses.
package simulate

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrTimeout is returned when a run exceeds its timeout. The run is not
// retried and its result files must not be trusted.
var ErrTimeout = errors.New("simulation timed out")

// Simulator runs one netlist through the simulator binary.
type Simulator struct {
	Exe        string
	Netlist    string
	Transcript string        // appended with the process output; empty to skip
	Timeout    time.Duration // zero means no limit
}

func (s *Simulator) Args() []string {
	return []string{s.Exe, s.Netlist}
}

// Command is the command line as it would be typed.
func (s *Simulator) Command() string {
	return strings.Join(s.Args(), " ")
}

func (s *Simulator) String() string { return s.Command() }

// Run blocks until the simulator exits or the timeout expires.
func (s *Simulator) Run(ctx context.Context) error {
	return run(ctx, s.Args(), s.Timeout, s.Transcript)
}

func run(ctx context.Context, args []string, timeout time.Duration, transcript string) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.WaitDelay = time.Second
	out, err := cmd.CombinedOutput()

	if terr := appendTranscript(transcript, args, out); terr != nil {
		return terr
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errors.Wrapf(ErrTimeout, "%s: after %v", strings.Join(args, " "), timeout)
	}
	if err != nil {
		return errors.Wrapf(err, "run %s", strings.Join(args, " "))
	}
	return nil
}

func appendTranscript(filename string, args []string, out []byte) error {
	if filename == "" {
		return nil
	}
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(err, "open transcript")
	}
	defer f.Close()

	var b bytes.Buffer
	fmt.Fprintf(&b, "=== %s %s\n", time.Now().Format(time.ANSIC), strings.Join(args, " "))
	b.Write(out)
	if len(out) > 0 && out[len(out)-1] != '\n' {
		b.WriteByte('\n')
	}
	if _, err := f.Write(b.Bytes()); err != nil {
		return errors.Wrap(err, "write transcript")
	}
	return nil
}
