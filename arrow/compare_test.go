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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeEqual(t *testing.T) {
	md := NewMetadata([]string{"k"}, []string{"v"})

	tests := []struct {
		left, right DataType
		want        bool
	}{
		{nil, nil, false},
		{nil, PrimitiveTypes.Uint8, false},
		{PrimitiveTypes.Float32, nil, false},
		{PrimitiveTypes.Float64, PrimitiveTypes.Int32, false},
		{Null, Null, true},
		{Null, &NullType{}, true},
		{PrimitiveTypes.Int32, &Int32Type{}, true},
		{BinaryTypes.String, BinaryTypes.LargeString, false},
		{BinaryTypes.Binary, BinaryTypes.String, false},
		{&Time32Type{Unit: Second}, &Time32Type{Unit: Second}, true},
		{&Time32Type{Unit: Millisecond}, &Time32Type{Unit: Second}, false},
		{&Time64Type{Unit: Nanosecond}, &Time64Type{Unit: Nanosecond}, true},
		{&Time64Type{Unit: Nanosecond}, &Time64Type{Unit: Microsecond}, false},
		{&Time32Type{Unit: Millisecond}, &Time64Type{Unit: Millisecond}, false},
		{&DurationType{Unit: Second}, &DurationType{Unit: Second}, true},
		{&DurationType{Unit: Second}, &DurationType{Unit: Nanosecond}, false},
		{&TimestampType{Unit: Second, TimeZone: "UTC"}, &TimestampType{Unit: Second, TimeZone: "UTC"}, true},
		{&TimestampType{Unit: Microsecond, TimeZone: "UTC"}, &TimestampType{Unit: Millisecond, TimeZone: "UTC"}, false},
		{&TimestampType{Unit: Second, TimeZone: "UTC"}, &TimestampType{Unit: Second, TimeZone: "CET"}, false},
		{&TimestampType{Unit: Second, TimeZone: "UTC"}, &TimestampType{Unit: Second}, false},
		{&IntervalType{Unit: DayTime}, FixedWidthTypes.DayTimeInterval, true},
		{&IntervalType{Unit: DayTime}, &IntervalType{Unit: YearMonth}, false},
		{&FixedSizeBinaryType{ByteWidth: 16}, &FixedSizeBinaryType{ByteWidth: 16}, true},
		{&FixedSizeBinaryType{ByteWidth: 16}, &FixedSizeBinaryType{ByteWidth: 8}, false},
		{&DecimalType{Precision: 10, Scale: 2}, &DecimalType{Precision: 10, Scale: 2}, true},
		{&DecimalType{Precision: 10, Scale: 2}, &DecimalType{Precision: 10, Scale: 3}, false},
		{&DecimalType{Precision: 10, Scale: 2}, &DecimalType{Precision: 11, Scale: 2}, false},
		{ListOf(PrimitiveTypes.Uint64), ListOf(PrimitiveTypes.Uint64), true},
		{ListOf(PrimitiveTypes.Uint64), ListOf(PrimitiveTypes.Uint32), false},
		{ListOf(PrimitiveTypes.Uint64), ListOfNonNullable(PrimitiveTypes.Uint64), false},
		{ListOf(PrimitiveTypes.Uint64), LargeListOf(PrimitiveTypes.Uint64), false},
		{ListOf(&Time32Type{Unit: Millisecond}), ListOf(&Time32Type{Unit: Millisecond}), true},
		{ListOf(&Time32Type{Unit: Millisecond}), ListOf(&Time32Type{Unit: Second}), false},
		{ListOf(ListOf(PrimitiveTypes.Uint16)), ListOf(ListOf(PrimitiveTypes.Uint16)), true},
		{ListOf(ListOf(PrimitiveTypes.Uint16)), ListOf(ListOf(PrimitiveTypes.Uint32)), false},
		{
			ListOfField(Field{Name: "a", Type: PrimitiveTypes.Int32, Nullable: true}),
			ListOfField(Field{Name: "b", Type: PrimitiveTypes.Int32, Nullable: true}),
			false,
		},
		{
			ListOfField(Field{Name: "a", Type: PrimitiveTypes.Int32, Metadata: md}),
			ListOfField(Field{Name: "a", Type: PrimitiveTypes.Int32}),
			false,
		},
		{LargeListOf(BinaryTypes.String), LargeListOf(BinaryTypes.String), true},
		{FixedSizeListOf(3, PrimitiveTypes.Int8), FixedSizeListOf(3, PrimitiveTypes.Int8), true},
		{FixedSizeListOf(3, PrimitiveTypes.Int8), FixedSizeListOf(4, PrimitiveTypes.Int8), false},
		{FixedSizeListOf(3, PrimitiveTypes.Int8), FixedSizeListOfNonNullable(3, PrimitiveTypes.Int8), false},
		{
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint16, Nullable: true}),
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint16, Nullable: true}),
			true,
		},
		{
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint16, Nullable: true}),
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: true}),
			false,
		},
		{
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint16, Nullable: true}),
			StructOf(Field{Name: "f2", Type: PrimitiveTypes.Uint16, Nullable: true}),
			false,
		},
		{
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint16, Nullable: true}),
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint16, Nullable: false}),
			false,
		},
		{
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint16}),
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint16}, Field{Name: "f2", Type: PrimitiveTypes.Float32}),
			false,
		},
		{
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint16, Metadata: md}),
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint16, Metadata: md}),
			true,
		},
		{
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint16, Metadata: md}),
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint16}),
			false,
		},
		{
			SparseUnionOf([]Field{{Name: "a", Type: PrimitiveTypes.Int32}}, []int32{5}),
			SparseUnionOf([]Field{{Name: "a", Type: PrimitiveTypes.Int32}}, []int32{5}),
			true,
		},
		{
			SparseUnionOf([]Field{{Name: "a", Type: PrimitiveTypes.Int32}}, []int32{5}),
			DenseUnionOf([]Field{{Name: "a", Type: PrimitiveTypes.Int32}}, []int32{5}),
			false,
		},
		{
			SparseUnionOf([]Field{{Name: "a", Type: PrimitiveTypes.Int32}}, []int32{5}),
			SparseUnionOf([]Field{{Name: "a", Type: PrimitiveTypes.Int32}}, []int32{6}),
			false,
		},
		{
			SparseUnionOf([]Field{{Name: "a", Type: PrimitiveTypes.Int32}}, []int32{0}),
			SparseUnionOf([]Field{{Name: "a", Type: PrimitiveTypes.Int32}}, nil),
			false,
		},
		{
			SparseUnionOf([]Field{{Name: "a", Type: PrimitiveTypes.Int32}}, nil),
			SparseUnionOf([]Field{{Name: "a", Type: PrimitiveTypes.Int32}}, nil),
			true,
		},
		{
			DictionaryOf(PrimitiveTypes.Int32, BinaryTypes.String),
			DictionaryOf(PrimitiveTypes.Int32, BinaryTypes.String),
			true,
		},
		{
			DictionaryOf(PrimitiveTypes.Int32, BinaryTypes.String),
			DictionaryOf(PrimitiveTypes.Int16, BinaryTypes.String),
			false,
		},
		{
			DictionaryOf(PrimitiveTypes.Int32, BinaryTypes.String),
			DictionaryOf(PrimitiveTypes.Int32, BinaryTypes.LargeString),
			false,
		},
	}

	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			got := TypeEqual(test.left, test.right)
			if got != test.want {
				t.Fatalf("TypeEqual(%v, %v): got=%v, want=%v", test.left, test.right, got, test.want)
			}
			assert.Equal(t, got, TypeEqual(test.right, test.left), "symmetry")
		})
	}
}

func TestTypeEqualPayloadFree(t *testing.T) {
	types := []DataType{
		Null, FixedWidthTypes.Boolean,
		PrimitiveTypes.Int8, PrimitiveTypes.Int16, PrimitiveTypes.Int32, PrimitiveTypes.Int64,
		PrimitiveTypes.Uint8, PrimitiveTypes.Uint16, PrimitiveTypes.Uint32, PrimitiveTypes.Uint64,
		FixedWidthTypes.Float16, PrimitiveTypes.Float32, PrimitiveTypes.Float64,
		BinaryTypes.String, BinaryTypes.LargeString, BinaryTypes.Binary, BinaryTypes.LargeBinary,
		FixedWidthTypes.Date32, FixedWidthTypes.Date64,
	}
	fresh := []DataType{
		&NullType{}, &BooleanType{},
		&Int8Type{}, &Int16Type{}, &Int32Type{}, &Int64Type{},
		&Uint8Type{}, &Uint16Type{}, &Uint32Type{}, &Uint64Type{},
		&Float16Type{}, &Float32Type{}, &Float64Type{},
		&StringType{}, &LargeStringType{}, &BinaryType{}, &LargeBinaryType{},
		&Date32Type{}, &Date64Type{},
	}

	for i, a := range types {
		for j, b := range fresh {
			assert.Equalf(t, i == j, TypeEqual(a, b), "%s vs %s", a, b)
			assert.Equalf(t, i == j, ShapeEqual(a, b), "%s vs %s", a, b)
		}
	}
}

func TestShapeEqual(t *testing.T) {
	md := NewMetadata([]string{"doc"}, []string{"a column"})

	tests := []struct {
		name        string
		left, right DataType
		want        bool
	}{
		{"nil", nil, nil, false},
		{"nil-left", nil, PrimitiveTypes.Int32, false},
		{"primitive", PrimitiveTypes.Int32, PrimitiveTypes.Int32, true},
		{"primitive-mismatch", PrimitiveTypes.Int32, PrimitiveTypes.Int64, false},
		{"decimal", &DecimalType{Precision: 10, Scale: 2}, &DecimalType{Precision: 10, Scale: 2}, true},
		{"decimal-mismatch", &DecimalType{Precision: 10, Scale: 2}, &DecimalType{Precision: 12, Scale: 2}, false},
		{
			"list-renamed",
			ListOfField(Field{Name: "a", Type: PrimitiveTypes.Int32, Nullable: true}),
			ListOfField(Field{Name: "b", Type: PrimitiveTypes.Int32, Nullable: true}),
			true,
		},
		{
			"list-nullability",
			ListOfField(Field{Name: "a", Type: PrimitiveTypes.Int32, Nullable: true}),
			ListOfField(Field{Name: "b", Type: PrimitiveTypes.Int32, Nullable: false}),
			false,
		},
		{
			"list-metadata",
			ListOfField(Field{Name: "a", Type: PrimitiveTypes.Int32, Metadata: md}),
			ListOfField(Field{Name: "a", Type: PrimitiveTypes.Int32}),
			true,
		},
		{"list-vs-large-list", ListOf(PrimitiveTypes.Int32), LargeListOf(PrimitiveTypes.Int32), false},
		{
			"large-list-renamed",
			LargeListOfField(Field{Name: "a", Type: BinaryTypes.String}),
			LargeListOfField(Field{Name: "z", Type: BinaryTypes.String}),
			true,
		},
		{
			"fixed-size-list-renamed",
			FixedSizeListOfField(2, Field{Name: "a", Type: PrimitiveTypes.Float64}),
			FixedSizeListOfField(2, Field{Name: "b", Type: PrimitiveTypes.Float64}),
			true,
		},
		{
			"fixed-size-list-len",
			FixedSizeListOfField(2, Field{Name: "a", Type: PrimitiveTypes.Float64}),
			FixedSizeListOfField(3, Field{Name: "a", Type: PrimitiveTypes.Float64}),
			false,
		},
		{
			"struct-renamed",
			StructOf(
				Field{Name: "x", Type: PrimitiveTypes.Int32},
				Field{Name: "y", Type: BinaryTypes.String, Nullable: true},
			),
			StructOf(
				Field{Name: "p", Type: PrimitiveTypes.Int32},
				Field{Name: "q", Type: BinaryTypes.String, Nullable: true, Metadata: md},
			),
			true,
		},
		{
			"struct-reordered",
			StructOf(
				Field{Name: "x", Type: PrimitiveTypes.Int32},
				Field{Name: "y", Type: BinaryTypes.String, Nullable: true},
			),
			StructOf(
				Field{Name: "y", Type: BinaryTypes.String, Nullable: true},
				Field{Name: "x", Type: PrimitiveTypes.Int32},
			),
			false,
		},
		{
			"struct-count",
			StructOf(Field{Name: "x", Type: PrimitiveTypes.Int32}),
			StructOf(),
			false,
		},
		{
			"nested-renamed",
			ListOf(StructOf(Field{Name: "x", Type: ListOfField(Field{Name: "inner", Type: PrimitiveTypes.Int8})})),
			ListOf(StructOf(Field{Name: "y", Type: ListOfField(Field{Name: "other", Type: PrimitiveTypes.Int8})})),
			true,
		},
		{
			"nested-leaf-mismatch",
			ListOf(StructOf(Field{Name: "x", Type: ListOf(PrimitiveTypes.Int8)})),
			ListOf(StructOf(Field{Name: "x", Type: ListOf(PrimitiveTypes.Uint8)})),
			false,
		},
		{
			"union-names-compared",
			SparseUnionOf([]Field{{Name: "a", Type: PrimitiveTypes.Int32}}, nil),
			SparseUnionOf([]Field{{Name: "b", Type: PrimitiveTypes.Int32}}, nil),
			false,
		},
		{
			"union-equal",
			DenseUnionOf([]Field{{Name: "a", Type: PrimitiveTypes.Int32}}, []int32{1}),
			DenseUnionOf([]Field{{Name: "a", Type: PrimitiveTypes.Int32}}, []int32{1}),
			true,
		},
		{
			"dictionary-exact",
			DictionaryOf(PrimitiveTypes.Int8, StructOf(Field{Name: "a", Type: PrimitiveTypes.Int32})),
			DictionaryOf(PrimitiveTypes.Int8, StructOf(Field{Name: "b", Type: PrimitiveTypes.Int32})),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShapeEqual(tt.left, tt.right))
			assert.Equal(t, tt.want, ShapeEqual(tt.right, tt.left))
			if tt.left != nil {
				assert.True(t, ShapeEqual(tt.left, tt.left))
			}
			if TypeEqual(tt.left, tt.right) {
				assert.True(t, tt.want, "exact equality implies shape equality")
			}
		})
	}
}

func TestShapeEqualDeepNesting(t *testing.T) {
	var left, right DataType = PrimitiveTypes.Int64, PrimitiveTypes.Int64
	for i := 0; i < 100000; i++ {
		left = ListOfField(Field{Name: "l", Type: left, Nullable: true})
		right = ListOfField(Field{Name: "r", Type: right, Nullable: true})
	}
	assert.True(t, ShapeEqual(left, right))
}

func TestCompareAndHashTypes(t *testing.T) {
	a := StructOf(Field{Name: "a", Type: ListOf(PrimitiveTypes.Int32), Nullable: true})
	b := StructOf(Field{Name: "a", Type: ListOf(&Int32Type{}), Nullable: true})
	c := StructOf(Field{Name: "b", Type: ListOf(PrimitiveTypes.Int32), Nullable: true})

	assert.True(t, TypeEqual(a, b))
	assert.Zero(t, CompareTypes(a, b))
	assert.Equal(t, HashType(42, a), HashType(42, b))

	assert.NotZero(t, CompareTypes(a, c))
	assert.Equal(t, -CompareTypes(a, c), CompareTypes(c, a))
	assert.NotEqual(t, HashType(42, a), HashType(42, c))

	assert.Negative(t, CompareTypes(PrimitiveTypes.Int8, PrimitiveTypes.Int64))
	assert.Positive(t, CompareTypes(BinaryTypes.String, PrimitiveTypes.Int64))
	assert.Negative(t, CompareTypes(nil, Null))
	assert.Zero(t, CompareTypes(nil, nil))

	assert.Negative(t, CompareTypes(&TimestampType{Unit: Second}, &TimestampType{Unit: Second, TimeZone: "UTC"}))
	assert.NotZero(t, CompareTypes(&DecimalType{Precision: 10, Scale: 2}, &DecimalType{Precision: 10, Scale: 3}))
}

// outOfCatalog reports a catalog id from a concrete type the catalog does
// not define.
type outOfCatalog struct {
	id Type
	fp string
}

func (o outOfCatalog) ID() Type            { return o.id }
func (o outOfCatalog) Name() string        { return "custom" }
func (o outOfCatalog) String() string      { return "custom" }
func (o outOfCatalog) Fingerprint() string { return o.fp }

func TestTypeEqualOutOfCatalog(t *testing.T) {
	ts := outOfCatalog{id: TIMESTAMP, fp: "ts-ms"}
	list := outOfCatalog{id: LIST, fp: "list-int32"}
	i32 := outOfCatalog{id: INT32}

	assert.Equal(t, PhysicalInt64, ToPhysicalType(ts).ID())

	tests := []struct {
		name        string
		left, right DataType
		want        bool
	}{
		{"timestamp vs custom", FixedWidthTypes.Timestamp_ms, ts, false},
		{"custom vs timestamp", ts, FixedWidthTypes.Timestamp_ms, false},
		{"list vs custom", ListOf(PrimitiveTypes.Int32), list, false},
		{"custom vs list", list, ListOf(PrimitiveTypes.Int32), false},
		{"struct vs custom", StructOf(), outOfCatalog{id: STRUCT}, false},
		{"union vs custom", SparseUnionOf(nil, nil), outOfCatalog{id: UNION}, false},
		{"dictionary vs custom", &DictionaryType{IndexType: PrimitiveTypes.Int8, ValueType: BinaryTypes.String}, outOfCatalog{id: DICTIONARY}, false},
		{"decimal vs custom", &DecimalType{Precision: 10, Scale: 2}, outOfCatalog{id: DECIMAL}, false},
		{"same custom", ts, outOfCatalog{id: TIMESTAMP, fp: "ts-ms"}, true},
		{"custom with other payload", ts, outOfCatalog{id: TIMESTAMP, fp: "ts-us"}, false},
		{"custom without fingerprint", outOfCatalog{id: TIMESTAMP}, outOfCatalog{id: TIMESTAMP}, false},
		{"payload-free custom", PrimitiveTypes.Int32, i32, true},
		{"payload-free custom reversed", i32, PrimitiveTypes.Int32, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tc.want, TypeEqual(tc.left, tc.right))
				assert.Equal(t, tc.want, ShapeEqual(tc.left, tc.right))
			})
		})
	}
}

func TestTypeEqualBareExtensionBase(t *testing.T) {
	a := &ExtensionBase{Storage: PrimitiveTypes.Int32}
	b := &ExtensionBase{Storage: BinaryTypes.String}

	assert.False(t, TypeEqual(a, b))
	assert.False(t, TypeEqual(a, a))
	assert.False(t, ShapeEqual(a, b))
}
