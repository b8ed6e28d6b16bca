package analysis

import (
	"fmt"
	"path/filepath"

	"github.com/edp1096/spicelab/pkg/vectors"
	"github.com/pkg/errors"
)

// Analysis is one simulator run request: the control command plus the
// vectors to write and where the result file goes.
type Analysis struct {
	Name       string
	Kind       Kind
	Cmd        string
	Vectors    vectors.Set
	ResultsDir string
}

// New validates cmd and derives the analysis kind from it.
func New(name, cmd string, vecs vectors.Set, resultsDir string) (*Analysis, error) {
	if name == "" {
		return nil, errors.Wrap(ErrCommand, "analysis name is empty")
	}
	parsed, err := ParseCommand(cmd)
	if err != nil {
		return nil, errors.Wrapf(err, "analysis %s", name)
	}
	return &Analysis{
		Name:       name,
		Kind:       parsed.Kind,
		Cmd:        cmd,
		Vectors:    vecs,
		ResultsDir: resultsDir,
	}, nil
}

// ResultsFile is <ResultsDir>/<Name>.txt.
func (a *Analysis) ResultsFile() string {
	return filepath.Join(a.ResultsDir, a.Name+".txt")
}

// VecOutput is the control line that writes the vectors to ResultsFile.
func (a *Analysis) VecOutput() string {
	if a.Kind.IsTable() {
		return fmt.Sprintf("print line %s > %s", a.Vectors, a.ResultsFile())
	}
	return fmt.Sprintf("wrdata %s %s", a.ResultsFile(), a.Vectors)
}

// ControlLines returns the command followed by its output line.
func (a *Analysis) ControlLines() []string {
	return []string{a.Cmd, a.VecOutput()}
}
