// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

package database

import (
	"bytes"
	"database/sql"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Row is one result record: column names with their values, in the order
// the database returned them. It encodes to a JSON object with the same
// key order.
type Row struct {
	cols []string
	vals []any
}

// NewRow builds a Row from parallel column and value slices. A column name
// that appears twice keeps its first position and its last value.
func NewRow(cols []string, vals []any) Row {
	r := Row{
		cols: make([]string, 0, len(cols)),
		vals: make([]any, 0, len(cols)),
	}
	for i, c := range cols {
		var v any
		if i < len(vals) {
			v = vals[i]
		}
		r.Set(c, v)
	}
	return r
}

// Columns returns the column names in order.
func (r Row) Columns() []string { return r.cols }

// Values returns the values in column order.
func (r Row) Values() []any { return r.vals }

// Len returns the number of columns.
func (r Row) Len() int { return len(r.cols) }

// At returns the value at position i, or nil when out of range.
func (r Row) At(i int) any {
	if i < 0 || i >= len(r.vals) {
		return nil
	}
	return r.vals[i]
}

// Get returns the value for column name.
func (r Row) Get(name string) (any, bool) {
	for i, c := range r.cols {
		if c == name {
			return r.vals[i], true
		}
	}
	return nil, false
}

// Set replaces the value of an existing column or appends a new one.
func (r *Row) Set(name string, v any) {
	for i, c := range r.cols {
		if c == name {
			r.vals[i] = v
			return
		}
	}
	r.cols = append(r.cols, name)
	r.vals = append(r.vals, v)
}

// MarshalJSON encodes the row as an object preserving column order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.cols {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.vals[i])
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", c, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// scanRows materializes every remaining row of rs.
func scanRows(rs *sql.Rows) ([]Row, error) {
	cols, err := rs.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}
	types, err := rs.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("read column types: %w", err)
	}
	dbTypes := make([]string, len(types))
	for i, t := range types {
		dbTypes[i] = strings.ToUpper(t.DatabaseTypeName())
	}

	out := make([]Row, 0)
	for rs.Next() {
		raw := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rs.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(out)+1, err)
		}
		for i := range raw {
			raw[i] = normalizeValue(raw[i], dbTypes[i])
		}
		out = append(out, NewRow(cols, raw))
	}
	if err := rs.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}

// normalizeValue converts driver values to JSON-friendly scalars.
// NUMERIC arrives as text from both drivers and becomes a float64;
// DATE becomes YYYY-MM-DD; remaining byte slices become strings.
func normalizeValue(v any, dbType string) any {
	switch x := v.(type) {
	case nil:
		return nil
	case []byte:
		if isNumericType(dbType) {
			return parseNumeric(string(x))
		}
		return string(x)
	case string:
		if isNumericType(dbType) {
			return parseNumeric(x)
		}
		return x
	case float32:
		return finiteOrNil(float64(x))
	case float64:
		return finiteOrNil(x)
	case int32:
		return int64(x)
	case int16:
		return int64(x)
	case time.Time:
		if dbType == "DATE" {
			return x.Format(time.DateOnly)
		}
		return x
	default:
		return v
	}
}

func isNumericType(dbType string) bool {
	return dbType == "NUMERIC" || dbType == "DECIMAL"
}

func parseNumeric(s string) any {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return s
	}
	return finiteOrNil(f)
}

// finiteOrNil maps NaN and infinities, which JSON cannot carry, to null.
func finiteOrNil(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return f
}

// AsFloat converts a normalized value to float64. Nil and unparseable
// values yield 0.
func AsFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int64:
		return float64(x)
	case int:
		return float64(x)
	case int32:
		return float64(x)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	case bool:
		if x {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// AsInt converts a normalized value to int64. Floats are truncated; nil
// and unparseable values yield 0.
func AsInt(v any) int64 {
	switch x := v.(type) {
	case int64:
		return x
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64); err == nil {
			return n
		}
		return int64(AsFloat(x))
	default:
		return int64(AsFloat(v))
	}
}
