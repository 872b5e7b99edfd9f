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

/*
Package dataset provides column-oriented tables and frequency encoding of their columns.

A frequency encoded column replaces each categorical value by the number of times it
appears in a reference table:

	reference: city = [Paris, Paris, Oslo]
	target:    city = [Paris, Oslo, Rome]
	encoded:   city_FREQ = [2, 1, nil]

Values never seen in the reference are encoded as nil.
*/
package dataset
