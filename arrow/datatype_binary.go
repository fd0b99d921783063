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

package arrow

// OffsetsDataType is implemented by the variable-length types whose
// values are addressed through an offsets buffer.
type OffsetsDataType interface {
	DataType
	// OffsetBitWidth is 32 for the regular layouts and 64 for the large ones.
	OffsetBitWidth() int
}

type BinaryType struct{}

func (t *BinaryType) ID() Type            { return BINARY }
func (t *BinaryType) Name() string        { return "binary" }
func (t *BinaryType) String() string      { return "binary" }
func (t *BinaryType) binary()             {}
func (t *BinaryType) Fingerprint() string { return typeFingerprint(t) }
func (t *BinaryType) OffsetBitWidth() int { return 32 }
func (BinaryType) IsUtf8() bool           { return false }

type StringType struct{}

func (t *StringType) ID() Type            { return STRING }
func (t *StringType) Name() string        { return "utf8" }
func (t *StringType) String() string      { return "utf8" }
func (t *StringType) binary()             {}
func (t *StringType) Fingerprint() string { return typeFingerprint(t) }
func (t *StringType) OffsetBitWidth() int { return 32 }
func (StringType) IsUtf8() bool           { return true }

type LargeBinaryType struct{}

func (t *LargeBinaryType) ID() Type            { return LARGE_BINARY }
func (t *LargeBinaryType) Name() string        { return "large_binary" }
func (t *LargeBinaryType) String() string      { return "large_binary" }
func (t *LargeBinaryType) binary()             {}
func (t *LargeBinaryType) Fingerprint() string { return typeFingerprint(t) }
func (t *LargeBinaryType) OffsetBitWidth() int { return 64 }
func (LargeBinaryType) IsUtf8() bool           { return false }

type LargeStringType struct{}

func (t *LargeStringType) ID() Type            { return LARGE_STRING }
func (t *LargeStringType) Name() string        { return "large_utf8" }
func (t *LargeStringType) String() string      { return "large_utf8" }
func (t *LargeStringType) binary()             {}
func (t *LargeStringType) Fingerprint() string { return typeFingerprint(t) }
func (t *LargeStringType) OffsetBitWidth() int { return 64 }
func (LargeStringType) IsUtf8() bool           { return true }

var (
	BinaryTypes = struct {
		Binary      BinaryDataType
		String      BinaryDataType
		LargeBinary BinaryDataType
		LargeString BinaryDataType
	}{
		Binary:      &BinaryType{},
		String:      &StringType{},
		LargeBinary: &LargeBinaryType{},
		LargeString: &LargeStringType{},
	}

	_ BinaryDataType  = (*BinaryType)(nil)
	_ BinaryDataType  = (*StringType)(nil)
	_ BinaryDataType  = (*LargeBinaryType)(nil)
	_ BinaryDataType  = (*LargeStringType)(nil)
	_ OffsetsDataType = (*BinaryType)(nil)
	_ OffsetsDataType = (*StringType)(nil)
	_ OffsetsDataType = (*LargeBinaryType)(nil)
	_ OffsetsDataType = (*LargeStringType)(nil)
)
