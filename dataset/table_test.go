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
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	table, err := NewTable(
		NewColumn("name", "Alice", "Bob", "Charlie"),
		ColumnOf("age", []int{25, 30, 35}),
	)
	require.NoError(t, err)
	rows, cols := table.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, []string{"name", "age"}, table.Names())
	assert.True(t, table.HasColumn("age"))
	assert.False(t, table.HasColumn("salary"))
	assert.Len(t, table.Columns(), 2)

	age, err := table.Column("age")
	require.NoError(t, err)
	assert.Equal(t, []any{25, 30, 35}, age.Values)

	_, err = table.Column("salary")
	assert.True(t, errors.Is(err, errors.NotFound))

	empty, err := NewTable()
	require.NoError(t, err)
	assert.Equal(t, 0, empty.NumRows())
	assert.Equal(t, 0, empty.NumColumns())
}

func TestNewTable_Invalid(t *testing.T) {
	// duplicate columns
	_, err := NewTable(NewColumn("a", 1), NewColumn("a", 2))
	assert.True(t, errors.Is(err, errors.NotValid))
	// row count mismatch
	_, err = NewTable(NewColumn("a", 1, 2), NewColumn("b", 1))
	assert.True(t, errors.Is(err, errors.NotValid))
	// non-scalar value
	_, err = NewTable(NewColumn("a", []int{1}))
	assert.True(t, errors.Is(err, errors.NotSupported))
	_, err = NewTable(NewColumn("a", map[string]int{}))
	assert.True(t, errors.Is(err, errors.NotSupported))
	_, err = NewTable(NewColumn("a", struct{ v any }{[]int{1}}))
	assert.True(t, errors.Is(err, errors.NotSupported))
}

type point struct {
	X, Y int
}

func TestNewTable_Comparable(t *testing.T) {
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	table, err := NewTable(
		NewColumn("day", day, day, nil),
		NewColumn("point", point{1, 2}, point{3, 4}, point{1, 2}),
		NewColumn("array", [2]int{1, 2}, [2]int{1, 2}, [2]int{0, 0}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"day", "point", "array"}, table.Names())
}

func TestTable_SetColumn(t *testing.T) {
	table, err := NewTable(NewColumn("a", 1, 2), NewColumn("b", "x", "y"))
	require.NoError(t, err)

	// append
	require.NoError(t, table.SetColumn(NewColumn("c", true, false)))
	assert.Equal(t, []string{"a", "b", "c"}, table.Names())
	// replace in place
	require.NoError(t, table.SetColumn(NewColumn("a", 3, 4)))
	assert.Equal(t, []string{"a", "b", "c"}, table.Names())
	assert.Equal(t, []any{3, 4}, mustColumn(table, "a").Values)
	// row count mismatch
	err = table.SetColumn(NewColumn("d", 1))
	assert.True(t, errors.Is(err, errors.NotValid))
	err = table.SetColumn(NewColumn("a", 1, 2, 3))
	assert.True(t, errors.Is(err, errors.NotValid))
	assert.Equal(t, []string{"a", "b", "c"}, table.Names())

	// the only column keeps the row count
	single, err := NewTable(NewColumn("a", 1))
	require.NoError(t, err)
	err = single.SetColumn(NewColumn("a", 1, 2, 3))
	assert.True(t, errors.Is(err, errors.NotValid))
	assert.Equal(t, 1, single.NumRows())
}

func TestTable_Copy(t *testing.T) {
	table, err := NewTable(NewColumn("a", 1, 2), NewColumn("b", "x", nil))
	require.NoError(t, err)
	copied := table.Copy()
	assert.Equal(t, table.Names(), copied.Names())
	mustColumn(copied, "a").Values[0] = 100
	require.NoError(t, copied.SetColumn(NewColumn("c", 0, 0)))
	assert.Equal(t, []any{1, 2}, mustColumn(table, "a").Values)
	assert.False(t, table.HasColumn("c"))
	assert.Equal(t, []any{"x", nil}, mustColumn(copied, "b").Values)
}

func TestColumn(t *testing.T) {
	column := NewColumn("v", 1, uint8(2), 3.5, "s", nil, math.NaN(), true)
	assert.Equal(t, 7, column.Len())
	assert.Equal(t, "s", column.Value(3))

	i, ok := column.Int(0)
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	i, ok = column.Int(1)
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = column.Int(2)
	assert.False(t, ok)
	_, ok = column.Int(4)
	assert.False(t, ok)
	// overflow
	_, ok = NewColumn("u", uint64(math.MaxUint64)).Int(0)
	assert.False(t, ok)
	i, ok = NewColumn("u", uint64(math.MaxInt)).Int(0)
	assert.True(t, ok)
	assert.Equal(t, math.MaxInt, i)

	f, ok := column.Float(2)
	assert.True(t, ok)
	assert.Equal(t, 3.5, f)
	f, ok = column.Float(0)
	assert.True(t, ok)
	assert.Equal(t, 1.0, f)
	_, ok = column.Float(3)
	assert.False(t, ok)
	_, ok = column.Float(5)
	assert.False(t, ok)
	_, ok = column.Float(6)
	assert.False(t, ok)

	assert.False(t, column.IsMissing(0))
	assert.True(t, column.IsMissing(4))
	assert.True(t, column.IsMissing(5))
}
