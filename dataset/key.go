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
)

// key maps a cell value to the map key used for counting. Integers of any width and
// integral floats collapse to int64 (uint64 above math.MaxInt64), so 1, uint8(1) and
// 1.0 are the same value. NaN and nil share the nil key. Other comparable values are
// their own key. v must be hashable.
func key(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u <= math.MaxInt64 {
			return int64(u)
		}
		return u
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) {
			return nil
		}
		if f == math.Trunc(f) {
			if f >= math.MinInt64 && f < math.MaxInt64 {
				return int64(f)
			}
			if f >= 0 && f < math.MaxUint64 {
				return uint64(f)
			}
		}
		return f
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	default:
		return v
	}
}

// isMissing reports whether a cell holds no value: nil or a NaN float.
func isMissing(v any) bool {
	if v == nil {
		return true
	}
	switch f := v.(type) {
	case float64:
		return math.IsNaN(f)
	case float32:
		return math.IsNaN(float64(f))
	}
	return false
}

// hashable reports whether v can be used as a map key without panicking.
func hashable(v any) bool {
	return v == nil || reflect.ValueOf(v).Comparable()
}

func validateValue(v any) error {
	if !hashable(v) {
		return errors.NotSupportedf("value %v of type %T", v, v)
	}
	return nil
}
