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

import (
	"strconv"

	"github.com/datafuse-extras/arrow2/arrow/internal/debug"
)

// PhysicalID identifies the in-memory representation family a logical
// type is stored as. Many logical types share one physical id.
type PhysicalID int8

const (
	PhysicalNull PhysicalID = iota
	PhysicalBool
	PhysicalInt8
	PhysicalInt16
	PhysicalInt32
	PhysicalInt64
	PhysicalInt128
	PhysicalUint8
	PhysicalUint16
	PhysicalUint32
	PhysicalUint64
	PhysicalFloat16
	PhysicalFloat32
	PhysicalFloat64
	// PhysicalDaysMs is a pair of 32-bit integers, days then milliseconds.
	PhysicalDaysMs
	PhysicalBinary
	PhysicalFixedSizeBinary
	PhysicalLargeBinary
	PhysicalString
	PhysicalLargeString
	PhysicalList
	PhysicalFixedSizeList
	PhysicalLargeList
	PhysicalStruct
	PhysicalUnion
	PhysicalDictionary
)

var physicalNames = [...]string{
	PhysicalNull:            "null",
	PhysicalBool:            "bool",
	PhysicalInt8:            "int8",
	PhysicalInt16:           "int16",
	PhysicalInt32:           "int32",
	PhysicalInt64:           "int64",
	PhysicalInt128:          "int128",
	PhysicalUint8:           "uint8",
	PhysicalUint16:          "uint16",
	PhysicalUint32:          "uint32",
	PhysicalUint64:          "uint64",
	PhysicalFloat16:         "float16",
	PhysicalFloat32:         "float32",
	PhysicalFloat64:         "float64",
	PhysicalDaysMs:          "days_ms",
	PhysicalBinary:          "binary",
	PhysicalFixedSizeBinary: "fixed_size_binary",
	PhysicalLargeBinary:     "large_binary",
	PhysicalString:          "utf8",
	PhysicalLargeString:     "large_utf8",
	PhysicalList:            "list",
	PhysicalFixedSizeList:   "fixed_size_list",
	PhysicalLargeList:       "large_list",
	PhysicalStruct:          "struct",
	PhysicalUnion:           "union",
	PhysicalDictionary:      "dictionary",
}

func (p PhysicalID) String() string {
	if p < 0 || int(p) >= len(physicalNames) {
		return "PhysicalID(" + strconv.Itoa(int(p)) + ")"
	}
	return physicalNames[p]
}

// PhysicalType is the result of classifying a logical type.
//
// Width-parametric and nested physical types keep the logical type they
// were derived from as their carrier, so byte widths, list sizes, child
// fields, union codes and dictionary key/value types stay available.
// Scalar leaves have no carrier.
type PhysicalType struct {
	id      PhysicalID
	carrier DataType
}

func (p PhysicalType) ID() PhysicalID    { return p.id }
func (p PhysicalType) Carrier() DataType { return p.carrier }

// Equal reports whether both are the same physical id with exactly equal
// carriers.
func (p PhysicalType) Equal(o PhysicalType) bool {
	switch {
	case p.id != o.id:
		return false
	case p.carrier == nil || o.carrier == nil:
		return p.carrier == nil && o.carrier == nil
	}
	return TypeEqual(p.carrier, o.carrier)
}

func (p PhysicalType) String() string {
	if p.carrier != nil {
		return p.carrier.String()
	}
	return p.id.String()
}

func leaf(id PhysicalID) PhysicalType { return PhysicalType{id: id} }

// ToPhysicalType classifies dt. Temporal and decimal types collapse onto
// integer leaves; binary and nested types keep their shape. Extension
// types are classified through their storage type, following chains of
// extensions over extensions.
//
// ToPhysicalType panics if dt, or the storage type of an extension, is nil.
func ToPhysicalType(dt DataType) PhysicalType {
	for {
		ext, ok := dt.(ExtensionType)
		if !ok {
			break
		}
		debug.Log(func() string { return "arrow: classifying extension " + ext.ExtensionName() })
		dt = ext.StorageType()
	}
	if dt == nil {
		panic("arrow: nil DataType")
	}

	switch dt := dt.(type) {
	case *NullType:
		return leaf(PhysicalNull)
	case *BooleanType:
		return leaf(PhysicalBool)
	case *Int8Type:
		return leaf(PhysicalInt8)
	case *Int16Type:
		return leaf(PhysicalInt16)
	case *Int32Type, *Date32Type, *Time32Type:
		return leaf(PhysicalInt32)
	case *Int64Type, *Date64Type, *Time64Type, *TimestampType, *DurationType:
		return leaf(PhysicalInt64)
	case *Uint8Type:
		return leaf(PhysicalUint8)
	case *Uint16Type:
		return leaf(PhysicalUint16)
	case *Uint32Type:
		return leaf(PhysicalUint32)
	case *Uint64Type:
		return leaf(PhysicalUint64)
	case *Float16Type:
		return leaf(PhysicalFloat16)
	case *Float32Type:
		return leaf(PhysicalFloat32)
	case *Float64Type:
		return leaf(PhysicalFloat64)
	case *DecimalType:
		return leaf(PhysicalInt128)
	case *IntervalType:
		if dt.Unit == DayTime {
			return leaf(PhysicalDaysMs)
		}
		return leaf(PhysicalInt32)
	case *BinaryType:
		return leaf(PhysicalBinary)
	case *LargeBinaryType:
		return leaf(PhysicalLargeBinary)
	case *StringType:
		return leaf(PhysicalString)
	case *LargeStringType:
		return leaf(PhysicalLargeString)
	case *FixedSizeBinaryType:
		return PhysicalType{id: PhysicalFixedSizeBinary, carrier: dt}
	case *ListType:
		return PhysicalType{id: PhysicalList, carrier: dt}
	case *LargeListType:
		return PhysicalType{id: PhysicalLargeList, carrier: dt}
	case *FixedSizeListType:
		return PhysicalType{id: PhysicalFixedSizeList, carrier: dt}
	case *StructType:
		return PhysicalType{id: PhysicalStruct, carrier: dt}
	case *UnionType:
		return PhysicalType{id: PhysicalUnion, carrier: dt}
	case *DictionaryType:
		return PhysicalType{id: PhysicalDictionary, carrier: dt}
	}

	// concrete types outside the catalog that still report a catalog id
	return physicalFromID(dt)
}

func physicalFromID(dt DataType) PhysicalType {
	switch dt.ID() {
	case NULL:
		return leaf(PhysicalNull)
	case BOOL:
		return leaf(PhysicalBool)
	case INT8:
		return leaf(PhysicalInt8)
	case INT16:
		return leaf(PhysicalInt16)
	case INT32, DATE32, TIME32:
		return leaf(PhysicalInt32)
	case INT64, DATE64, TIME64, TIMESTAMP, DURATION:
		return leaf(PhysicalInt64)
	case UINT8:
		return leaf(PhysicalUint8)
	case UINT16:
		return leaf(PhysicalUint16)
	case UINT32:
		return leaf(PhysicalUint32)
	case UINT64:
		return leaf(PhysicalUint64)
	case FLOAT16:
		return leaf(PhysicalFloat16)
	case FLOAT32:
		return leaf(PhysicalFloat32)
	case FLOAT64:
		return leaf(PhysicalFloat64)
	case DECIMAL:
		return leaf(PhysicalInt128)
	case BINARY:
		return leaf(PhysicalBinary)
	case LARGE_BINARY:
		return leaf(PhysicalLargeBinary)
	case STRING:
		return leaf(PhysicalString)
	case LARGE_STRING:
		return leaf(PhysicalLargeString)
	case FIXED_SIZE_BINARY:
		return PhysicalType{id: PhysicalFixedSizeBinary, carrier: dt}
	case LIST:
		return PhysicalType{id: PhysicalList, carrier: dt}
	case LARGE_LIST:
		return PhysicalType{id: PhysicalLargeList, carrier: dt}
	case FIXED_SIZE_LIST:
		return PhysicalType{id: PhysicalFixedSizeList, carrier: dt}
	case STRUCT:
		return PhysicalType{id: PhysicalStruct, carrier: dt}
	case UNION:
		return PhysicalType{id: PhysicalUnion, carrier: dt}
	case DICTIONARY:
		return PhysicalType{id: PhysicalDictionary, carrier: dt}
	}
	panic("arrow: cannot classify data type " + dt.String())
}

// IsPhysicalType reports whether dt is already expressed in the physical
// catalog. This is a fixed membership list, not the preimage of
// ToPhysicalType: day-time intervals and decimals are physical while
// dates, times, timestamps, durations and year-month intervals are not,
// although they all classify onto integer leaves.
func IsPhysicalType(dt DataType) bool {
	if dt == nil {
		return false
	}
	switch dt.ID() {
	case NULL, BOOL,
		INT8, INT16, INT32, INT64, UINT8, UINT16, UINT32, UINT64,
		FLOAT16, FLOAT32, FLOAT64,
		BINARY, LARGE_BINARY, FIXED_SIZE_BINARY, STRING, LARGE_STRING,
		LIST, LARGE_LIST, FIXED_SIZE_LIST, STRUCT, UNION, DICTIONARY,
		DECIMAL:
		return true
	case INTERVAL:
		it, ok := dt.(*IntervalType)
		return ok && it.Unit == DayTime
	default:
		return false
	}
}
