// Copyright 2026 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dataset

import (
	"math"
	"reflect"

	"github.com/juju/errors"
	"github.com/samber/lo"
	"modernc.org/strutil"
)

// Column is a named sequence of values. Values must be comparable; a table rejects
// columns holding slices, maps or funcs. A nil value is missing.
type Column struct {
	Name   string
	Values []any
}

func NewColumn(name string, values ...any) *Column {
	return &Column{Name: name, Values: values}
}

// ColumnOf creates a column from a typed slice.
func ColumnOf[T any](name string, values []T) *Column {
	return &Column{Name: name, Values: lo.Map(values, func(v T, _ int) any {
		return v
	})}
}

func (c *Column) Len() int {
	return len(c.Values)
}

func (c *Column) Value(i int) any {
	return c.Values[i]
}

func (c *Column) IsMissing(i int) bool {
	return isMissing(c.Values[i])
}

// Int returns the i-th value as an int. The second result is false if the value is
// missing, not an integer or overflows int.
func (c *Column) Int(i int) (int, bool) {
	v := c.Values[i]
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if u := rv.Uint(); u <= math.MaxInt {
			return int(u), true
		}
	}
	return 0, false
}

// Float returns the i-th value as a float64. The second result is false if the value
// is missing or not a number.
func (c *Column) Float(i int) (float64, bool) {
	v := c.Values[i]
	if isMissing(v) {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func (c *Column) validate() error {
	for i, v := range c.Values {
		if err := validateValue(v); err != nil {
			return errors.Annotatef(err, "column %q row %d", c.Name, i)
		}
	}
	return nil
}

// Table is an ordered collection of uniquely named columns sharing a row count.
// A Table must not be modified concurrently.
type Table struct {
	names   *strutil.Pool
	columns []*Column
	index   map[string]int
}

func NewTable(columns ...*Column) (*Table, error) {
	if dup := lo.FindDuplicates(lo.Map(columns, func(c *Column, _ int) string {
		return c.Name
	})); len(dup) > 0 {
		return nil, errors.NotValidf("duplicate columns %v", dup)
	}
	t := &Table{
		names:   strutil.NewPool(),
		columns: make([]*Column, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for _, c := range columns {
		if err := t.SetColumn(c); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// NumRows returns the row count, zero for a table without columns.
func (t *Table) NumRows() int {
	if len(t.columns) == 0 {
		return 0
	}
	return t.columns[0].Len()
}

func (t *Table) NumColumns() int {
	return len(t.columns)
}

// Dims returns the number of rows and columns.
func (t *Table) Dims() (int, int) {
	return t.NumRows(), t.NumColumns()
}

// Names returns column names in order.
func (t *Table) Names() []string {
	return lo.Map(t.columns, func(c *Column, _ int) string {
		return c.Name
	})
}

func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the column with the given name, or a NotFound error.
func (t *Table) Column(name string) (*Column, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, errors.NotFoundf("column %q", name)
	}
	return t.columns[i], nil
}

// Columns returns all columns in order.
func (t *Table) Columns() []*Column {
	return t.columns
}

// SetColumn replaces the column of the same name in place, or appends it.
func (t *Table) SetColumn(c *Column) error {
	if len(t.columns) > 0 && c.Len() != t.NumRows() {
		return errors.NotValidf("column %q has %d rows but table has %d", c.Name, c.Len(), t.NumRows())
	}
	if err := c.validate(); err != nil {
		return err
	}
	c.Name = t.names.Align(c.Name)
	if i, ok := t.index[c.Name]; ok {
		t.columns[i] = c
		return nil
	}
	t.index[c.Name] = len(t.columns)
	t.columns = append(t.columns, c)
	return nil
}

// Copy returns a deep copy of the table.
func (t *Table) Copy() *Table {
	c := &Table{
		names:   strutil.NewPool(),
		columns: make([]*Column, len(t.columns)),
		index:   make(map[string]int, len(t.index)),
	}
	for i, col := range t.columns {
		values := make([]any, len(col.Values))
		copy(values, col.Values)
		c.columns[i] = &Column{Name: c.names.Align(col.Name), Values: values}
		c.index[col.Name] = i
	}
	return c
}
