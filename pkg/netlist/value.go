package netlist

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var unitMap = map[string]float64{
	"T":   1e12,  // tera
	"G":   1e9,   // giga
	"meg": 1e6,   // mega
	"K":   1e3,   // kilo
	"k":   1e3,   // kilo
	"m":   1e-3,  // milli
	"u":   1e-6,  // micro
	"n":   1e-9,  // nano
	"p":   1e-12, // pico
	"f":   1e-15, // femto
}

var valueRe = regexp.MustCompile(`^([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)((?i:meg)|[TGKkmunpf])?[a-zA-Z]*$`)

// ParseValue - Parse value and factor. 1k -> 1000, 10us -> 1e-5
func ParseValue(val string) (float64, error) {
	matches := valueRe.FindStringSubmatch(strings.TrimSpace(val))
	if matches == nil {
		return 0, errors.Errorf("invalid value format: %s", val)
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid value %s", val)
	}

	// factor
	if suffix := matches[2]; suffix != "" {
		if strings.EqualFold(suffix, "meg") {
			suffix = "meg"
		}
		if multiplier, ok := unitMap[suffix]; ok {
			num *= multiplier
		}
	}

	return num, nil
}
