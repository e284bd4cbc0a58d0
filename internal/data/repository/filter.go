package repository

import (
	"fmt"
	"strings"
)

// Filter incrementally assembles a query predicate and its positional
// parameter list. Each condition carries a `$%d` verb that is numbered
// in the order conditions are added, so the predicate text and the
// args slice stay index-aligned. Values are always bound, never
// interpolated into the query text.
type Filter struct {
	sb   strings.Builder
	args []any
}

// NewFilter seeds the builder with the unconstrained base query. The
// base must end at a point where " AND <cond>" can be appended, so it
// carries its own WHERE 1=1 (or an always-true equivalent).
func NewFilter(base string) *Filter {
	f := &Filter{}
	f.sb.WriteString(base)
	return f
}

// AddIfPresent appends one AND-ed condition when value is present.
// Optional criteria arrive as typed pointers; a nil pointer means the
// criterion is absent and leaves the query untouched.
func (f *Filter) AddIfPresent(cond string, value any) {
	switch v := value.(type) {
	case nil:
		return
	case *float64:
		if v == nil {
			return
		}
		value = *v
	case *int:
		if v == nil {
			return
		}
		value = *v
	case *int64:
		if v == nil {
			return
		}
		value = *v
	case *string:
		if v == nil {
			return
		}
		value = *v
	}

	f.args = append(f.args, value)
	f.sb.WriteString(" AND ")
	f.sb.WriteString(fmt.Sprintf(cond, len(f.args)))
}

// Append adds a raw trailing fragment (ORDER BY, LIMIT) untouched.
func (f *Filter) Append(fragment string) {
	f.sb.WriteString(fragment)
}

func (f *Filter) SQL() string {
	return f.sb.String()
}

func (f *Filter) Args() []any {
	return f.args
}
