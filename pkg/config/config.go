// Package config loads simulator and project paths from a TOML file.
//
//	[GLOBAL]
//	NGSPICE_EXE_STR = "/usr/bin/ngspice"
//	NETLISTS_DIR_STR = "netlists"
//	RESULTS_DIR_STR = "results"
//	SIM_TRANSCRIPT_STR = "sim_transcript.txt"
//	KICAD_CMD_STR = "kicad-cli"   # optional
//	TIMEOUT_SEC = 30              # optional
//
//	[SEC_1_04_01]
//	PROJ_PATH_STR = "/home/me/circuits/dividers"
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/edp1096/spicelab/internal/consts"
)

var ErrConfig = errors.New("invalid configuration")

const GlobalSection = "GLOBAL"

type global struct {
	NgspiceExe    string `toml:"NGSPICE_EXE_STR"`
	NetlistsDir   string `toml:"NETLISTS_DIR_STR"`
	ResultsDir    string `toml:"RESULTS_DIR_STR"`
	SimTranscript string `toml:"SIM_TRANSCRIPT_STR"`
	KicadCmd      string `toml:"KICAD_CMD_STR"`
	TimeoutSec    int    `toml:"TIMEOUT_SEC"`
}

type project struct {
	ProjPath string `toml:"PROJ_PATH_STR"`
}

// Paths is the resolved location of everything an experiment touches.
// NetlistsDir and ResultsDir are relative to ProjectPath, the transcript
// lives in ResultsDir.
type Paths struct {
	NgspiceExe  string
	KicadCmd    string
	ProjectPath string
	NetlistsDir string
	ResultsDir  string
	Transcript  string
	Timeout     time.Duration
}

// Load reads the global table and the named project table.
func Load(filename, section string) (*Paths, error) {
	var raw map[string]toml.Primitive
	md, err := toml.DecodeFile(filename, &raw)
	if err != nil {
		return nil, errors.Wrapf(ErrConfig, "%s: %v", filename, err)
	}

	gp, ok := raw[GlobalSection]
	if !ok {
		return nil, errors.Wrapf(ErrConfig, "%s: missing [%s]", filename, GlobalSection)
	}
	pp, ok := raw[section]
	if !ok {
		return nil, errors.Wrapf(ErrConfig, "%s: missing [%s]", filename, section)
	}

	var g global
	if err := md.PrimitiveDecode(gp, &g); err != nil {
		return nil, errors.Wrapf(ErrConfig, "%s: [%s]: %v", filename, GlobalSection, err)
	}
	var p project
	if err := md.PrimitiveDecode(pp, &p); err != nil {
		return nil, errors.Wrapf(ErrConfig, "%s: [%s]: %v", filename, section, err)
	}

	return resolve(g, p, filename, section)
}

func resolve(g global, p project, filename, section string) (*Paths, error) {
	required := []struct{ key, val string }{
		{"NGSPICE_EXE_STR", g.NgspiceExe},
		{"NETLISTS_DIR_STR", g.NetlistsDir},
		{"RESULTS_DIR_STR", g.ResultsDir},
		{"SIM_TRANSCRIPT_STR", g.SimTranscript},
	}
	for _, r := range required {
		if r.val == "" {
			return nil, errors.Wrapf(ErrConfig, "%s: [%s] %s not set", filename, GlobalSection, r.key)
		}
	}
	if p.ProjPath == "" {
		return nil, errors.Wrapf(ErrConfig, "%s: [%s] PROJ_PATH_STR not set", filename, section)
	}
	if g.TimeoutSec < 0 {
		return nil, errors.Wrapf(ErrConfig, "%s: negative TIMEOUT_SEC %d", filename, g.TimeoutSec)
	}

	timeout := g.TimeoutSec
	if timeout == 0 {
		timeout = consts.DefaultTimeout
	}

	results := filepath.Join(p.ProjPath, g.ResultsDir)
	return &Paths{
		NgspiceExe:  g.NgspiceExe,
		KicadCmd:    g.KicadCmd,
		ProjectPath: p.ProjPath,
		NetlistsDir: filepath.Join(p.ProjPath, g.NetlistsDir),
		ResultsDir:  results,
		Transcript:  filepath.Join(results, g.SimTranscript),
		Timeout:     time.Duration(timeout) * time.Second,
	}, nil
}

// Prepare creates the results directory and leaves an empty transcript.
func (p *Paths) Prepare() error {
	if err := os.MkdirAll(p.ResultsDir, 0755); err != nil {
		return errors.Wrap(err, "create results directory")
	}
	if err := os.WriteFile(p.Transcript, nil, 0644); err != nil {
		return errors.Wrap(err, "reset transcript")
	}
	return nil
}

// Netlist returns the path of a file in the netlists directory.
func (p *Paths) Netlist(name string) string {
	return filepath.Join(p.NetlistsDir, name)
}
