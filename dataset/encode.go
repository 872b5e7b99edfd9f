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
	"github.com/gorse-io/freqenc/base/log"
	"github.com/gorse-io/freqenc/config"
	"github.com/juju/errors"
	"go.uber.org/zap"
)

// FrequencyEncoder adds frequency encoded columns to tables.
type FrequencyEncoder struct {
	suffix      string
	dropMissing bool
	normalize   bool
}

// NewFrequencyEncoder creates an encoder. A nil config uses the defaults.
func NewFrequencyEncoder(cfg *config.EncoderConfig) *FrequencyEncoder {
	if cfg == nil {
		cfg = config.GetDefaultEncoderConfig()
	}
	suffix := cfg.Suffix
	if suffix == "" {
		suffix = config.DefaultSuffix
	}
	return &FrequencyEncoder{
		suffix:      suffix,
		dropMissing: cfg.DropMissing,
		normalize:   cfg.Normalize,
	}
}

// AddTotalValueCounts adds a column <name>_FREQ to target for each name in columns.
// Each row holds the number of times the row's value appears in the same column of
// reference, or nil if it never appears. See FrequencyEncoder.Encode.
func AddTotalValueCounts(target, reference *Table, columns ...string) (*Table, error) {
	return NewFrequencyEncoder(nil).Encode(target, reference, columns...)
}

// Encode counts the values of each named column in reference and maps the counts onto
// the same column of target, in a new column named with the encoder's suffix. An
// existing derived column is overwritten in place. Values absent from reference map to
// nil. Target and reference may be the same table.
//
// Columns are processed in order. If a column is missing from either table, a NotFound
// error is returned and columns derived before it are kept. A NotSupported error is
// returned if a column holds a value that cannot be counted.
func (e *FrequencyEncoder) Encode(target, reference *Table, columns ...string) (*Table, error) {
	for _, name := range columns {
		referenceColumn, err := reference.Column(name)
		if err != nil {
			return nil, err
		}
		targetColumn, err := target.Column(name)
		if err != nil {
			return nil, err
		}
		// values may have been modified since the columns were added
		if err = referenceColumn.validate(); err != nil {
			return nil, err
		}
		if err = targetColumn.validate(); err != nil {
			return nil, err
		}
		dict := CountValues(referenceColumn.Values, e.dropMissing)
		derived := make([]any, targetColumn.Len())
		unseen := 0
		for i, v := range targetColumn.Values {
			freq, ok := dict.Freq(v)
			if !ok {
				unseen++
				continue
			}
			if e.normalize {
				derived[i] = float64(freq) / float64(dict.Total())
			} else {
				derived[i] = freq
			}
		}
		if err = target.SetColumn(NewColumn(name+e.suffix, derived...)); err != nil {
			return nil, errors.Trace(err)
		}
		if ce := log.Logger().Check(zap.DebugLevel, "encode column frequency"); ce != nil {
			ce.Write(
				zap.String("column", name),
				zap.Int("distinct_values", dict.Count()),
				zap.Int("unseen_rows", unseen),
				zap.Int("unseen_values", dict.Unseen(targetColumn.Values).Cardinality()))
		}
	}
	return target, nil
}
