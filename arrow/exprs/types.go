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

// Package exprs converts between Arrow data types and Substrait types.
package exprs

import (
	"strconv"

	"github.com/datafuse-extras/arrow2/arrow"
	"github.com/datafuse-extras/arrow2/arrow/extensions"
	"github.com/substrait-io/substrait-go/types"
	"golang.org/x/xerrors"
)

// TimestampTzTimezone is the time zone given to timestamps read from a
// Substrait timestamp_tz, which is always normalized to UTC.
const TimestampTzTimezone = "UTC"

func nullability(nullable bool) types.Nullability {
	if nullable {
		return types.NullabilityNullable
	}
	return types.NullabilityRequired
}

// IsNullable reports whether t accepts nulls.
func IsNullable(t types.Type) bool {
	return t.GetNullability() != types.NullabilityRequired
}

// ToSubstraitType returns the Substrait type for dt. Only microsecond
// timestamps and times have a Substrait equivalent; any time zone maps to
// timestamp_tz. Types without an equivalent return an error wrapping
// arrow.ErrNotImplemented.
func ToSubstraitType(dt arrow.DataType, nullable bool) (types.Type, error) {
	n := nullability(nullable)

	switch dt := dt.(type) {
	case *arrow.BooleanType:
		return &types.BooleanType{Nullability: n}, nil
	case *arrow.Int8Type:
		return &types.Int8Type{Nullability: n}, nil
	case *arrow.Int16Type:
		return &types.Int16Type{Nullability: n}, nil
	case *arrow.Int32Type:
		return &types.Int32Type{Nullability: n}, nil
	case *arrow.Int64Type:
		return &types.Int64Type{Nullability: n}, nil
	case *arrow.Float32Type:
		return &types.Float32Type{Nullability: n}, nil
	case *arrow.Float64Type:
		return &types.Float64Type{Nullability: n}, nil
	case *arrow.StringType:
		return &types.StringType{Nullability: n}, nil
	case *arrow.BinaryType:
		return &types.BinaryType{Nullability: n}, nil
	case *arrow.Date32Type:
		return &types.DateType{Nullability: n}, nil
	case *arrow.Time64Type:
		if dt.Unit == arrow.Microsecond {
			return &types.TimeType{Nullability: n}, nil
		}
	case *arrow.TimestampType:
		if dt.Unit != arrow.Microsecond {
			break
		}
		if dt.TimeZone == "" {
			return &types.TimestampType{Nullability: n}, nil
		}
		return &types.TimestampTzType{Nullability: n}, nil
	case *arrow.FixedSizeBinaryType:
		return &types.FixedBinaryType{Nullability: n, Length: int32(dt.ByteWidth)}, nil
	case *arrow.DecimalType:
		return &types.DecimalType{Nullability: n, Precision: dt.Precision, Scale: dt.Scale}, nil
	case *arrow.StructType:
		fields := dt.Fields()
		out := &types.StructType{Nullability: n, Types: make([]types.Type, len(fields))}
		for i, f := range fields {
			t, err := ToSubstraitType(f.Type, f.Nullable)
			if err != nil {
				return nil, xerrors.Errorf("exprs: struct field %q: %w", f.Name, err)
			}
			out.Types[i] = t
		}
		return out, nil
	case *arrow.ListType:
		elem := dt.ElemField()
		t, err := ToSubstraitType(elem.Type, elem.Nullable)
		if err != nil {
			return nil, err
		}
		return &types.ListType{Nullability: n, Type: t}, nil
	case *extensions.UUIDType:
		return &types.UUIDType{Nullability: n}, nil
	}

	return nil, xerrors.Errorf("exprs: no substrait type for %s: %w", dt, arrow.ErrNotImplemented)
}

// FromSubstraitType returns the Arrow data type for t along with its
// nullability. Struct fields are named by their 1-based position.
func FromSubstraitType(t types.Type) (arrow.DataType, bool, error) {
	nullable := IsNullable(t)

	switch t := t.(type) {
	case *types.BooleanType:
		return arrow.FixedWidthTypes.Boolean, nullable, nil
	case *types.Int8Type:
		return arrow.PrimitiveTypes.Int8, nullable, nil
	case *types.Int16Type:
		return arrow.PrimitiveTypes.Int16, nullable, nil
	case *types.Int32Type:
		return arrow.PrimitiveTypes.Int32, nullable, nil
	case *types.Int64Type:
		return arrow.PrimitiveTypes.Int64, nullable, nil
	case *types.Float32Type:
		return arrow.PrimitiveTypes.Float32, nullable, nil
	case *types.Float64Type:
		return arrow.PrimitiveTypes.Float64, nullable, nil
	case *types.StringType:
		return arrow.BinaryTypes.String, nullable, nil
	case *types.BinaryType:
		return arrow.BinaryTypes.Binary, nullable, nil
	case *types.TimestampType:
		return &arrow.TimestampType{Unit: arrow.Microsecond}, nullable, nil
	case *types.TimestampTzType:
		return &arrow.TimestampType{Unit: arrow.Microsecond, TimeZone: TimestampTzTimezone}, nullable, nil
	case *types.DateType:
		return arrow.FixedWidthTypes.Date32, nullable, nil
	case *types.TimeType:
		return arrow.FixedWidthTypes.Time64us, nullable, nil
	case *types.UUIDType:
		return extensions.NewUUIDType(), nullable, nil
	case *types.FixedBinaryType:
		return &arrow.FixedSizeBinaryType{ByteWidth: int(t.Length)}, nullable, nil
	case *types.DecimalType:
		return &arrow.DecimalType{Precision: t.Precision, Scale: t.Scale}, nullable, nil
	case *types.StructType:
		fields, err := FieldsFromSubstrait(t.Types)
		if err != nil {
			return nil, false, err
		}
		return arrow.StructOf(fields...), nullable, nil
	case *types.ListType:
		elem, elemNullable, err := FromSubstraitType(t.Type)
		if err != nil {
			return nil, false, err
		}
		return arrow.ListOfField(arrow.Field{Name: "item", Type: elem, Nullable: elemNullable}), nullable, nil
	}

	return nil, false, xerrors.Errorf("exprs: no arrow type for %s: %w", t, arrow.ErrNotImplemented)
}

// FieldsFromSubstrait converts a list of Substrait types to fields named
// "1", "2", and so on.
func FieldsFromSubstrait(typeList []types.Type) ([]arrow.Field, error) {
	out := make([]arrow.Field, len(typeList))
	for i, t := range typeList {
		dt, nullable, err := FromSubstraitType(t)
		if err != nil {
			return nil, err
		}
		out[i] = arrow.Field{Name: strconv.Itoa(i + 1), Type: dt, Nullable: nullable}
	}
	return out, nil
}
