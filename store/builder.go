package store

import "strings"

// UpdateBuilder assembles a partial UPDATE statement from a closed set of
// column assignments. Handlers call Set once per field present in the patch;
// the column names are literals in the handler, never derived from input, so
// the updatable column set stays statically known per resource.
type UpdateBuilder struct {
	table   string
	columns []string
	args    []interface{}
}

// NewUpdate starts a builder for the given table.
func NewUpdate(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

// Set adds one column assignment. The value is bound, not interpolated.
func (b *UpdateBuilder) Set(column string, value interface{}) *UpdateBuilder {
	b.columns = append(b.columns, column)
	b.args = append(b.args, value)
	return b
}

// Empty reports whether no assignment was added.
func (b *UpdateBuilder) Empty() bool {
	return len(b.columns) == 0
}

// Build renders "UPDATE <table> SET c1 = ?, c2 = ? WHERE <cond>" and the full
// argument list (assignments first, then the WHERE args). ErrNoFields is
// returned when the patch carried nothing.
func (b *UpdateBuilder) Build(where string, whereArgs ...interface{}) (string, []interface{}, error) {
	if b.Empty() {
		return "", nil, ErrNoFields
	}

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(b.table)
	sb.WriteString(" SET ")
	for i, col := range b.columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(col)
		sb.WriteString(" = ?")
	}
	sb.WriteString(" WHERE ")
	sb.WriteString(where)

	args := append(append([]interface{}{}, b.args...), whereArgs...)
	return sb.String(), args, nil
}
