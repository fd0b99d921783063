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

import "fmt"

// EncodedType is implemented by types whose values are stored through an
// encoding of another data type.
type EncodedType interface {
	DataType
	Encoded() DataType
}

// DictionaryType represents categorical or dictionary-encoded data:
// each slot is an index of IndexType into a dictionary of ValueType.
//
// IndexType is conventionally a fixed-width integer type; this is not
// enforced.
type DictionaryType struct {
	IndexType DataType
	ValueType DataType
}

// DictionaryOf returns the dictionary type with the given index and
// value types. It panics if either is nil.
func DictionaryOf(index, value DataType) *DictionaryType {
	if index == nil || value == nil {
		panic("arrow: nil DataType")
	}
	return &DictionaryType{IndexType: index, ValueType: value}
}

func (*DictionaryType) ID() Type     { return DICTIONARY }
func (*DictionaryType) Name() string { return "dictionary" }

func (d *DictionaryType) String() string {
	return fmt.Sprintf("%s<values=%s, indices=%s>", d.Name(), d.ValueType, d.IndexType)
}

func (d *DictionaryType) Fingerprint() string {
	return typeFingerprint(d) + "{" + fingerprintOf(d.IndexType) + ";" + fingerprintOf(d.ValueType) + "}"
}

// Encoded returns the value type of the dictionary.
func (d *DictionaryType) Encoded() DataType { return d.ValueType }

var _ EncodedType = (*DictionaryType)(nil)
