// Package netlist manipulates SPICE netlist fragments as lists of lines.
// The text is never interpreted; fragments are lower-cased and joined into
// the deck handed to the simulator.
package netlist

import (
	"os"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

type Netlist struct {
	lines []string
}

// New makes a fragment from text, one entry per line.
func New(text string) *Netlist {
	return &Netlist{lines: strings.Split(strings.ToLower(text), "\n")}
}

// Verbatim makes a fragment without lower-casing, for generated lines
// that carry file paths.
func Verbatim(text string) *Netlist {
	return &Netlist{lines: strings.Split(text, "\n")}
}

// Load reads a fragment from a file.
func Load(filename string) (*Netlist, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "read netlist")
	}
	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return New(text), nil
}

// Concat joins fragments in order into a new netlist.
func Concat(parts ...*Netlist) *Netlist {
	n := &Netlist{}
	for _, p := range parts {
		if p == nil {
			continue
		}
		n.lines = append(n.lines, p.lines...)
	}
	return n
}

func (n *Netlist) String() string {
	return strings.Join(n.lines, "\n")
}

func (n *Netlist) Lines() []string {
	return append([]string(nil), n.lines...)
}

func (n *Netlist) Len() int { return len(n.lines) }

// WriteFile writes the netlist text, newline separated.
func (n *Netlist) WriteFile(filename string) error {
	if err := os.WriteFile(filename, []byte(n.String()), 0644); err != nil {
		return errors.Wrap(err, "write netlist")
	}
	return nil
}

func (n *Netlist) DeleteLine(index int) error {
	if index < 0 || index >= len(n.lines) {
		return errors.Errorf("line index %d out of range [0,%d)", index, len(n.lines))
	}
	n.lines = append(n.lines[:index], n.lines[index+1:]...)
	return nil
}

// LineStartsWith returns the index of the first line starting with prefix,
// or -1.
func (n *Netlist) LineStartsWith(prefix string) int {
	for i, line := range n.lines {
		if strings.HasPrefix(line, prefix) {
			return i
		}
	}
	return -1
}

// DeleteLineStartsWith deletes the first line starting with prefix, if any.
func (n *Netlist) DeleteLineStartsWith(prefix string) {
	if i := n.LineStartsWith(prefix); i >= 0 {
		n.lines = append(n.lines[:i], n.lines[i+1:]...)
	}
}

// InsertLine inserts a lower-cased line before index. index == Len appends.
func (n *Netlist) InsertLine(index int, line string) error {
	if index < 0 || index > len(n.lines) {
		return errors.Errorf("line index %d out of range [0,%d]", index, len(n.lines))
	}
	n.lines = append(n.lines, "")
	copy(n.lines[index+1:], n.lines[index:])
	n.lines[index] = strings.ToLower(line)
	return nil
}

// DelSlash removes '/' from element lines. Schematic exporters prefix
// hierarchical net names with a slash that the simulator rejects.
func (n *Netlist) DelSlash() {
	for i, line := range n.lines {
		if line != "" && unicode.IsLetter(rune(line[0])) {
			n.lines[i] = strings.ReplaceAll(line, "/", "")
		}
	}
}
