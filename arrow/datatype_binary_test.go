// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package arrow_test

import (
	"testing"

	"github.com/datafuse-extras/arrow2/arrow"
	"github.com/stretchr/testify/assert"
)

func TestBinaryTypes(t *testing.T) {
	for _, tc := range []struct {
		dt     arrow.BinaryDataType
		id     arrow.Type
		name   string
		utf8   bool
		offset int
	}{
		{&arrow.BinaryType{}, arrow.BINARY, "binary", false, 32},
		{&arrow.StringType{}, arrow.STRING, "utf8", true, 32},
		{&arrow.LargeBinaryType{}, arrow.LARGE_BINARY, "large_binary", false, 64},
		{&arrow.LargeStringType{}, arrow.LARGE_STRING, "large_utf8", true, 64},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got, want := tc.dt.ID(), tc.id; got != want {
				t.Fatalf("invalid type id. got=%v, want=%v", got, want)
			}
			if got, want := tc.dt.Name(), tc.name; got != want {
				t.Fatalf("invalid type name. got=%v, want=%v", got, want)
			}
			if got, want := tc.dt.String(), tc.name; got != want {
				t.Fatalf("invalid type stringer. got=%v, want=%v", got, want)
			}
			assert.Equal(t, tc.utf8, tc.dt.IsUtf8())
			assert.Equal(t, tc.offset, tc.dt.(arrow.OffsetsDataType).OffsetBitWidth())
		})
	}
}

func TestBinaryTypesSingletons(t *testing.T) {
	assert.True(t, arrow.TypeEqual(arrow.BinaryTypes.Binary, &arrow.BinaryType{}))
	assert.True(t, arrow.TypeEqual(arrow.BinaryTypes.String, &arrow.StringType{}))
	assert.True(t, arrow.TypeEqual(arrow.BinaryTypes.LargeBinary, &arrow.LargeBinaryType{}))
	assert.True(t, arrow.TypeEqual(arrow.BinaryTypes.LargeString, &arrow.LargeStringType{}))
	assert.NotEqual(t, arrow.BinaryTypes.String.Fingerprint(), arrow.BinaryTypes.LargeString.Fingerprint())
}
