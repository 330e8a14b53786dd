package query

import (
	"fmt"
	"strings"
)

// Builder assembles a parameterized SELECT statement from optional filter
// criteria. Caller-supplied values always travel as bound parameters; no
// value is ever formatted into the SQL text. A builder with no predicates
// produces an unconditional select.
type Builder struct {
	distinct bool
	cols     string
	from     string
	where    []string
	args     []interface{}
	idx      int
	groupBy  string
	having   string
	orderBy  string
}

// New creates a Builder selecting cols from the given FROM clause, which may
// include JOINs.
func New(cols, from string) *Builder {
	return &Builder{cols: cols, from: from, idx: 1}
}

// Distinct marks the select DISTINCT.
func (b *Builder) Distinct() { b.distinct = true }

// bind registers a value and returns its placeholder.
func (b *Builder) bind(v interface{}) string {
	b.args = append(b.args, v)
	p := fmt.Sprintf("$%d", b.idx)
	b.idx++
	return p
}

// Eq returns an equality fragment with v bound.
func (b *Builder) Eq(col string, v interface{}) string {
	return fmt.Sprintf("%s = %s", col, b.bind(v))
}

// Gte returns a greater-or-equal fragment with v bound. The column side may
// be an aggregate expression for use in HAVING.
func (b *Builder) Gte(col string, v interface{}) string {
	return fmt.Sprintf("%s >= %s", col, b.bind(v))
}

// Fold returns a case-insensitive equality fragment with v bound.
func (b *Builder) Fold(col, v string) string {
	return fmt.Sprintf("LOWER(%s) = LOWER(%s)", col, b.bind(v))
}

// ContainsFold returns a case-insensitive substring fragment. The %-wrapping
// happens here so callers never touch pattern syntax.
func (b *Builder) ContainsFold(col, term string) string {
	return fmt.Sprintf("LOWER(%s) LIKE LOWER(%s)", col, b.bind("%"+term+"%"))
}

// Where appends a predicate; multiple calls combine with AND.
func (b *Builder) Where(frag string) {
	b.where = append(b.where, frag)
}

// WhereAny appends a single predicate that is the OR of all fragments,
// for search-across-fields filters.
func (b *Builder) WhereAny(frags ...string) {
	if len(frags) == 0 {
		return
	}
	b.where = append(b.where, "("+strings.Join(frags, " OR ")+")")
}

// GroupBy sets the GROUP BY columns.
func (b *Builder) GroupBy(cols string) { b.groupBy = cols }

// Having sets the HAVING predicate; use Eq/Fold/ContainsFold to bind values.
func (b *Builder) Having(frag string) { b.having = frag }

// OrderBy sets the ORDER BY clause (without the keyword). Every query keeps
// a fixed ordering so result sequences are deterministic.
func (b *Builder) OrderBy(order string) { b.orderBy = order }

// SQL renders the statement.
func (b *Builder) SQL() string {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	if b.distinct {
		sb.WriteString("DISTINCT ")
	}
	sb.WriteString(b.cols)
	sb.WriteString(" FROM ")
	sb.WriteString(b.from)
	if len(b.where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(b.where, " AND "))
	}
	if b.groupBy != "" {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(b.groupBy)
	}
	if b.having != "" {
		sb.WriteString(" HAVING ")
		sb.WriteString(b.having)
	}
	if b.orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(b.orderBy)
	}
	return sb.String()
}

// Args returns the bound values in placeholder order.
func (b *Builder) Args() []interface{} {
	return b.args
}
