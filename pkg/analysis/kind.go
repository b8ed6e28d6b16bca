package analysis

import (
	"strings"

	"github.com/pkg/errors"
)

// Kind is the simulator analysis mode. It decides the shape of the result
// file: a name = value table or a header plus numeric rows.
type Kind int

const (
	OP Kind = iota
	DC
	AC
	Disto
	Noise
	PZ
	Sens
	SP
	TF
	Tran
)

var kindNames = [...]string{
	OP:    "op",
	DC:    "dc",
	AC:    "ac",
	Disto: "disto",
	Noise: "noise",
	PZ:    "pz",
	Sens:  "sens",
	SP:    "sp",
	TF:    "tf",
	Tran:  "tran",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind maps a tag such as "tran" or ".ac" to its Kind.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, errors.Wrapf(ErrCommand, "unknown analysis kind %q", s)
}

// IsTable reports kinds whose results are single name = value lines.
func (k Kind) IsTable() bool {
	return k == OP || k == Sens || k == TF
}

// IsPlot reports kinds whose results are a header and numeric rows.
func (k Kind) IsPlot() bool {
	return !k.IsTable() && k.String() != "unknown"
}

// IsFrequency reports kinds written as complex (real, imaginary) pairs.
func (k Kind) IsFrequency() bool {
	return k == AC || k == Noise
}

func (k Kind) IsTime() bool  { return k == Tran }
func (k Kind) IsSweep() bool { return k == DC }
