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
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"
)

// FreqDict counts occurrences of distinct values. Ids are assigned in order of first
// appearance.
type FreqDict struct {
	si    map[any]int
	is    []any
	cnt   []int
	total int
}

// ValueCount is a distinct value with its number of occurrences.
type ValueCount struct {
	Value any
	Count int
}

func NewFreqDict() (d *FreqDict) {
	d = &FreqDict{map[any]int{}, []any{}, []int{}, 0}
	return
}

// CountValues builds the frequency dictionary of values. Missing values (nil and NaN)
// are skipped if dropMissing is set, otherwise they are counted as one category. Values
// must be hashable, see Add.
func CountValues(values []any, dropMissing bool) *FreqDict {
	d := NewFreqDict()
	for _, v := range values {
		if dropMissing && isMissing(v) {
			continue
		}
		d.Add(v)
	}
	return d
}

// Count returns the number of distinct values.
func (d *FreqDict) Count() int {
	return len(d.is)
}

// Total returns the number of counted values.
func (d *FreqDict) Total() int {
	return d.total
}

// Add counts one occurrence of v and returns its id. It panics if v is not hashable;
// CountValues callers validate columns first.
func (d *FreqDict) Add(v any) (y int) {
	k := key(v)
	d.total++
	if y, ok := d.si[k]; ok {
		d.cnt[y]++
		return y
	}

	y = len(d.is)
	d.si[k] = y
	d.is = append(d.is, v)
	d.cnt = append(d.cnt, 1)
	return
}

func (d *FreqDict) Id(v any) (int, bool) {
	if !hashable(v) {
		return 0, false
	}
	y, ok := d.si[key(v)]
	return y, ok
}

// Value returns the first seen representation of the value with the given id.
func (d *FreqDict) Value(id int) (v any, ok bool) {
	if id < 0 || id >= len(d.is) {
		return nil, false
	}
	return d.is[id], true
}

// Freq returns the number of occurrences of v. The second result is false if v has
// never been counted.
func (d *FreqDict) Freq(v any) (int, bool) {
	if !hashable(v) {
		return 0, false
	}
	y, ok := d.si[key(v)]
	if !ok {
		return 0, false
	}
	return d.cnt[y], true
}

// MostCommon returns all values ordered by descending count. Ties keep the order of
// first appearance.
func (d *FreqDict) MostCommon() []ValueCount {
	counts := lo.Map(d.is, func(v any, i int) ValueCount {
		return ValueCount{Value: v, Count: d.cnt[i]}
	})
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// Unseen returns the keys of hashable values that have never been counted.
func (d *FreqDict) Unseen(values []any) mapset.Set[any] {
	unseen := mapset.NewThreadUnsafeSet[any]()
	for _, v := range values {
		if !hashable(v) {
			continue
		}
		k := key(v)
		if _, ok := d.si[k]; !ok {
			unseen.Add(k)
		}
	}
	return unseen
}
