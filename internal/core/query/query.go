// Package query turns subject attributes into the lookup query string
package query

import (
	"net/url"
	"slices"
	"strings"

	"tzdetect/internal/core/subject"

	"golang.org/x/text/unicode/norm"
)

// DefaultFields are read when no mapping is configured
var DefaultFields = []string{"city", "state", "country", "zip"}

// Alias maps a subject field to the query parameter it is sent as
type Alias struct {
	Local string `validate:"required"`
	Param string `validate:"required,param_name"`
}

// Using is an ordered attribute mapping. Build it with Names, Aliases or FromMap
type Using struct {
	entries []Alias
	aliased bool
}

// Names maps each field to a parameter of the same name
func Names(names ...string) Using {
	u := Using{entries: make([]Alias, 0, len(names))}
	for _, n := range names {
		u.entries = append(u.entries, Alias{Local: n, Param: n})
	}
	return u
}

// Aliases keeps the given order
func Aliases(as ...Alias) Using {
	return Using{entries: slices.Clone(as), aliased: true}
}

// FromMap builds an alias mapping ordered by local name so the URL is stable
func FromMap(m map[string]string) Using {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	as := make([]Alias, 0, len(keys))
	for _, k := range keys {
		as = append(as, Alias{Local: k, Param: m[k]})
	}
	return Using{entries: as, aliased: true}
}

// Parse reads "city,province:state" style entries; any "local:param" entry makes the mapping aliased
func Parse(entries []string) Using {
	u := Using{}
	for _, e := range entries {
		local, param, found := strings.Cut(e, ":")
		local, param = strings.TrimSpace(local), strings.TrimSpace(param)
		if !found {
			param = local
		} else {
			u.aliased = true
		}
		u.entries = append(u.entries, Alias{Local: local, Param: param})
	}
	return u
}

// Entries returns a copy of the mapping in order
func (u Using) Entries() []Alias { return slices.Clone(u.entries) }

// IsZero reports an empty mapping
func (u Using) IsZero() bool { return len(u.entries) == 0 }

// Aliased reports whether the mapping was built as local->param pairs
func (u Using) Aliased() bool { return u.aliased }

// String renders the mapping in the Parse format
func (u Using) String() string {
	parts := make([]string, 0, len(u.entries))
	for _, e := range u.entries {
		if e.Local == e.Param && !u.aliased {
			parts = append(parts, e.Local)
			continue
		}
		parts = append(parts, e.Local+":"+e.Param)
	}
	return strings.Join(parts, ",")
}

// OrDefault returns u, or DefaultFields when u is empty
func (u Using) OrDefault() Using {
	if u.IsZero() {
		return Names(DefaultFields...)
	}
	return u
}

// Pair is one query parameter; Value holds the raw (unescaped) normalized value
type Pair struct {
	Param string
	Value string
}

// Resolve reads each mapped field from subj in mapping order.
// Absent or blank fields are skipped; the rest keep their relative order
func Resolve(subj subject.FieldReadable, using Using) []Pair {
	out := make([]Pair, 0, len(using.entries))
	for _, e := range using.entries {
		v, ok := read(subj, e.Local)
		if !ok {
			continue
		}
		out = append(out, Pair{Param: e.Param, Value: v})
	}
	return out
}

// read trims and NFC-normalizes so equivalent input yields the same cache key
func read(subj subject.FieldReadable, name string) (string, bool) {
	raw, ok := subj.Field(name)
	if !ok {
		return "", false
	}
	v := norm.NFC.String(strings.TrimSpace(raw))
	return v, v != ""
}

// Encode renders pairs as param=value joined by &, escaping values
func Encode(pairs []Pair) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.Param)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// BuildURL appends the encoded pairs to base after "?"
func BuildURL(base string, pairs []Pair) string {
	return base + "?" + Encode(pairs)
}
