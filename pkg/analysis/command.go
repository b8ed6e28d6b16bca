package analysis

import (
	"strconv"
	"strings"

	"github.com/edp1096/spicelab/pkg/netlist"
	"github.com/pkg/errors"
)

// ErrCommand is returned for a malformed or unsupported analysis command.
var ErrCommand = errors.New("invalid analysis command")

// Command is a parsed analysis control line. Only the parameter block
// matching Kind is filled; Fields keeps the raw words.
type Command struct {
	Kind      Kind
	Fields    []string
	TranParam struct {
		TStep  float64 // timestep
		TStop  float64 // stop time
		TStart float64 // start time
		TMax   float64 // max timestep
		UIC    bool    // Use Initial Conditions
	}
	ACParam struct {
		Sweep  string  // DEC, OCT, LIN
		Points int     // points per decade/octave or total
		FStart float64 // start frequency
		FStop  float64 // stop frequency
	}
	DCParam struct {
		Source1    string
		Start1     float64
		Stop1      float64
		Increment1 float64
		Source2    string
		Start2     float64
		Stop2      float64
		Increment2 float64
	}
}

// ParseCommand parses "tran 1u 10m", ".ac dec 10 1 1meg", "op", ...
// The leading dot is optional so both netlist and control forms work.
func ParseCommand(line string) (*Command, error) {
	var err error

	fields := strings.Fields(line)
	if len(fields) < 1 {
		return nil, errors.Wrap(ErrCommand, "empty command")
	}

	kind, err := ParseKind(fields[0])
	if err != nil {
		return nil, err
	}
	cmd := &Command{Kind: kind, Fields: fields}

	switch kind {
	case OP:
		if len(fields) != 1 {
			return nil, errors.Wrapf(ErrCommand, "op takes no parameters: %q", line)
		}

	case Tran:
		if len(fields) < 3 {
			return nil, errors.Wrap(ErrCommand, "insufficient tran parameters, need at least tstep and tstop")
		}
		if cmd.TranParam.TStep, err = parseParam("tstep", fields[1]); err != nil {
			return nil, err
		}
		if cmd.TranParam.TStop, err = parseParam("tstop", fields[2]); err != nil {
			return nil, err
		}
		for i := 3; i < len(fields); i++ {
			if strings.ToLower(fields[i]) == "uic" {
				cmd.TranParam.UIC = true
				continue
			}
			switch i {
			case 3:
				if cmd.TranParam.TStart, err = parseParam("tstart", fields[i]); err != nil {
					return nil, err
				}
			case 4:
				if cmd.TranParam.TMax, err = parseParam("tmax", fields[i]); err != nil {
					return nil, err
				}
			}
		}
		if cmd.TranParam.TMax == 0 {
			cmd.TranParam.TMax = cmd.TranParam.TStep
		}
		if cmd.TranParam.TStop <= cmd.TranParam.TStart {
			return nil, errors.Wrapf(ErrCommand, "tstop %g not after tstart %g", cmd.TranParam.TStop, cmd.TranParam.TStart)
		}

	case AC:
		if len(fields) < 5 {
			return nil, errors.Wrap(ErrCommand, "insufficient AC parameters, need sweep type, points, fstart, and fstop")
		}
		// DEC, OCT, LIN
		cmd.ACParam.Sweep = strings.ToUpper(fields[1])
		if cmd.ACParam.Sweep != "DEC" && cmd.ACParam.Sweep != "OCT" && cmd.ACParam.Sweep != "LIN" {
			return nil, errors.Wrapf(ErrCommand, "invalid sweep type: %s", cmd.ACParam.Sweep)
		}
		if cmd.ACParam.Points, err = strconv.Atoi(fields[2]); err != nil || cmd.ACParam.Points < 1 {
			return nil, errors.Wrapf(ErrCommand, "invalid points number: %s", fields[2])
		}
		if cmd.ACParam.FStart, err = parseParam("fstart", fields[3]); err != nil {
			return nil, err
		}
		if cmd.ACParam.FStop, err = parseParam("fstop", fields[4]); err != nil {
			return nil, err
		}

	case DC:
		if len(fields) != 5 && len(fields) != 9 {
			return nil, errors.Wrap(ErrCommand, "insufficient DC sweep parameters")
		}
		// First source sweep
		cmd.DCParam.Source1 = fields[1]
		if cmd.DCParam.Start1, err = parseParam("start", fields[2]); err != nil {
			return nil, err
		}
		if cmd.DCParam.Stop1, err = parseParam("stop", fields[3]); err != nil {
			return nil, err
		}
		if cmd.DCParam.Increment1, err = parseParam("increment", fields[4]); err != nil {
			return nil, err
		}
		// Nested sweep
		if len(fields) == 9 {
			cmd.DCParam.Source2 = fields[5]
			if cmd.DCParam.Start2, err = parseParam("start2", fields[6]); err != nil {
				return nil, err
			}
			if cmd.DCParam.Stop2, err = parseParam("stop2", fields[7]); err != nil {
				return nil, err
			}
			if cmd.DCParam.Increment2, err = parseParam("increment2", fields[8]); err != nil {
				return nil, err
			}
		}
	}

	return cmd, nil
}

func parseParam(name, field string) (float64, error) {
	v, err := netlist.ParseValue(field)
	if err != nil {
		return 0, errors.Wrapf(ErrCommand, "invalid %s: %v", name, err)
	}
	return v, nil
}
