package results

import (
	"fmt"
	"strings"

	"github.com/edp1096/spicelab/pkg/analysis"
	"github.com/edp1096/spicelab/pkg/util"
)

// Table holds scalar results keyed by signal name, in file order.
type Table struct {
	kind   analysis.Kind
	keys   []string
	values map[string]float64
}

func newTable(kind analysis.Kind) *Table {
	return &Table{kind: kind, values: make(map[string]float64)}
}

// A repeated name keeps its first position and takes the later value.
func (t *Table) set(name string, value float64) {
	if _, ok := t.values[name]; !ok {
		t.keys = append(t.keys, name)
	}
	t.values[name] = value
}

func (t *Table) Kind() analysis.Kind { return t.kind }
func (t *Table) isResult()           {}

func (t *Table) Len() int { return len(t.keys) }

func (t *Table) Keys() []string {
	return append([]string(nil), t.keys...)
}

func (t *Table) Get(name string) (float64, bool) {
	v, ok := t.values[name]
	return v, ok
}

// Values returns a copy of the name to value map.
func (t *Table) Values() map[string]float64 {
	out := make(map[string]float64, len(t.values))
	for k, v := range t.values {
		out[k] = v
	}
	return out
}

// Format lines up names and engineering formatted values, one per line.
// Negative values start one column earlier so digits stay aligned.
func (t *Table) Format() string {
	maxKeyLen := 0
	for _, k := range t.keys {
		maxKeyLen = max(maxKeyLen, len(k))
	}

	var b strings.Builder
	for _, k := range t.keys {
		v := t.values[k]
		padding := maxKeyLen + 2
		if v < 0 {
			padding = maxKeyLen + 1
		}
		fmt.Fprintf(&b, "%-*s%s\n", padding, k, util.FormatEng(v, 3))
	}
	return b.String()
}

func (t *Table) String() string {
	return fmt.Sprintf("analysis_type: %s\n\n%s", t.kind, t.Format())
}
