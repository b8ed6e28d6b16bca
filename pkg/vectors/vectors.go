// Package vectors holds sets of simulator signal names ("vectors").
package vectors

import (
	"fmt"
	"sort"
	"strings"
)

// Set is a deduplicated list of signal names. The first occurrence of a
// name fixes its position.
type Set struct {
	names []string
}

// New builds a Set from strings and numbers. Strings holding several
// space separated names are split.
func New(tokens ...any) Set {
	var names []string
	for _, t := range tokens {
		switch v := t.(type) {
		case string:
			names = append(names, strings.Fields(v)...)
		case []string:
			for _, s := range v {
				names = append(names, strings.Fields(s)...)
			}
		case Set:
			names = append(names, v.names...)
		default:
			names = append(names, strings.Fields(fmt.Sprint(v))...)
		}
	}
	return Set{names: dedup(names)}
}

// Parse splits a space separated vector list.
func Parse(s string) Set {
	return Set{names: dedup(strings.Fields(s))}
}

func dedup(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, n := range in {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// String joins the names with single spaces, the form the simulator expects
// after wrdata/print.
func (s Set) String() string {
	return strings.Join(s.names, " ")
}

// List returns a copy of the names.
func (s Set) List() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s Set) Len() int { return len(s.names) }

func (s Set) Contains(name string) bool {
	for _, n := range s.names {
		if n == name {
			return true
		}
	}
	return false
}

// Union returns a new set holding s followed by the names of others not
// already present.
func (s Set) Union(others ...Set) Set {
	names := append([]string(nil), s.names...)
	for _, o := range others {
		names = append(names, o.names...)
	}
	return Set{names: dedup(names)}
}

// Difference returns a new set without the names found in other.
func (s Set) Difference(other Set) Set {
	out := make([]string, 0, len(s.names))
	for _, n := range s.names {
		if !other.Contains(n) {
			out = append(out, n)
		}
	}
	return Set{names: out}
}

// Sorted returns a copy with the names in lexical order.
func (s Set) Sorted() Set {
	names := s.List()
	sort.Strings(names)
	return Set{names: names}
}

// Equal compares as sets, ignoring order.
func (s Set) Equal(other Set) bool {
	if len(s.names) != len(other.names) {
		return false
	}
	for _, n := range s.names {
		if !other.Contains(n) {
			return false
		}
	}
	return true
}
