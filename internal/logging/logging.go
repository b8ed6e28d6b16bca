package logging

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
)

// Setup configures the stdlib logger.
// Empty filename: logs are discarded unless verbose, which sends them to stderr.
// With a filename, logs are appended there, and also to stderr when verbose.
func Setup(filename string, verbose bool) (cleanup func(), err error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if filename == "" {
		if verbose {
			log.SetOutput(os.Stderr)
		} else {
			log.SetOutput(io.Discard)
		}
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}

	var w io.Writer = f
	if verbose {
		w = io.MultiWriter(f, os.Stderr)
	}
	log.SetOutput(w)

	cleanup = func() {
		log.SetOutput(io.Discard)
		f.Close()
	}
	return cleanup, nil
}
