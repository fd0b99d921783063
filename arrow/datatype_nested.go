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
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// ListType describes a nested type in which each array slot contains
// a variable-size sequence of values, all having the same relative type.
type ListType struct {
	elem Field
}

// ListOfField returns the list type whose element is described by f.
// The field, including its metadata, is copied.
func ListOfField(f Field) *ListType {
	return &ListType{elem: ownedField(f)}
}

// ListOf returns the list type with element type t.
// For example, if t represents int32, ListOf(t) represents []int32.
//
// ListOf panics if t is nil. NullableElem defaults to true
func ListOf(t DataType) *ListType {
	return ListOfField(Field{Name: "item", Type: t, Nullable: true})
}

// ListOfNonNullable is like ListOf but NullableElem defaults to false, indicating
// that the child type should be marked as non-nullable.
func ListOfNonNullable(t DataType) *ListType {
	return ListOfField(Field{Name: "item", Type: t, Nullable: false})
}

func (*ListType) ID() Type     { return LIST }
func (*ListType) Name() string { return "list" }

func (t *ListType) String() string { return listString(t.Name(), t.elem) }

func (t *ListType) Fingerprint() string {
	return typeFingerprint(t) + "{" + t.elem.Fingerprint() + "}"
}

// Elem returns the ListType's element type.
func (t *ListType) Elem() DataType { return t.elem.Type }

func (t *ListType) ElemField() Field { return ownedField(t.elem) }

func (t *ListType) Fields() []Field { return []Field{t.ElemField()} }

// LargeListType is a ListType addressed through 64-bit offsets.
type LargeListType struct {
	ListType
}

// LargeListOfField returns the large list type whose element is described by f.
func LargeListOfField(f Field) *LargeListType {
	return &LargeListType{ListType{elem: ownedField(f)}}
}

// LargeListOf is like ListOf but with 64-bit offsets.
func LargeListOf(t DataType) *LargeListType {
	return LargeListOfField(Field{Name: "item", Type: t, Nullable: true})
}

// LargeListOfNonNullable is like ListOfNonNullable but with 64-bit offsets.
func LargeListOfNonNullable(t DataType) *LargeListType {
	return LargeListOfField(Field{Name: "item", Type: t, Nullable: false})
}

func (*LargeListType) ID() Type     { return LARGE_LIST }
func (*LargeListType) Name() string { return "large_list" }

func (t *LargeListType) String() string { return listString(t.Name(), t.elem) }

func (t *LargeListType) Fingerprint() string {
	return typeFingerprint(t) + "{" + t.elem.Fingerprint() + "}"
}

// FixedSizeListType describes a nested type in which each array slot contains
// a fixed-size sequence of values, all having the same relative type.
type FixedSizeListType struct {
	n    int32 // number of elements in the list
	elem Field
}

// FixedSizeListOfField returns the fixed size list type of n elements
// described by f. n is carried as given.
func FixedSizeListOfField(n int32, f Field) *FixedSizeListType {
	return &FixedSizeListType{n: n, elem: ownedField(f)}
}

// FixedSizeListOf returns the list type with element type t.
// For example, if t represents int32, FixedSizeListOf(10, t) represents [10]int32.
//
// FixedSizeListOf panics if t is nil.
// NullableElem defaults to true
func FixedSizeListOf(n int32, t DataType) *FixedSizeListType {
	return FixedSizeListOfField(n, Field{Name: "item", Type: t, Nullable: true})
}

// FixedSizeListOfNonNullable is like FixedSizeListOf but NullableElem defaults to false
// indicating that the child type should be marked as non-nullable.
func FixedSizeListOfNonNullable(n int32, t DataType) *FixedSizeListType {
	return FixedSizeListOfField(n, Field{Name: "item", Type: t, Nullable: false})
}

func (*FixedSizeListType) ID() Type     { return FIXED_SIZE_LIST }
func (*FixedSizeListType) Name() string { return "fixed_size_list" }
func (t *FixedSizeListType) String() string {
	return listString(t.Name(), t.elem) + "[" + strconv.Itoa(int(t.n)) + "]"
}

// Elem returns the FixedSizeListType's element type.
func (t *FixedSizeListType) Elem() DataType { return t.elem.Type }

// Len returns the FixedSizeListType's size.
func (t *FixedSizeListType) Len() int32 { return t.n }

func (t *FixedSizeListType) ElemField() Field { return ownedField(t.elem) }

func (t *FixedSizeListType) Fields() []Field { return []Field{t.ElemField()} }

func (t *FixedSizeListType) Fingerprint() string {
	return fmt.Sprintf("%s[%d]{%s}", typeFingerprint(t), t.n, t.elem.Fingerprint())
}

func listString(name string, elem Field) string {
	if elem.Nullable {
		return fmt.Sprintf("%s<%s: %s, nullable>", name, elem.Name, elem.Type)
	}
	return fmt.Sprintf("%s<%s: %s not null>", name, elem.Name, elem.Type)
}

// StructType describes a nested type parameterized by an ordered sequence
// of relative types, called its fields.
type StructType struct {
	fields []Field
	index  map[string][]int
}

// StructOf returns the struct type with fields fs.
//
// Duplicated field names are allowed; FieldIndices reports every match.
// StructOf panics if there is a field with a nil DataType.
func StructOf(fs ...Field) *StructType {
	n := len(fs)
	if n == 0 {
		return &StructType{}
	}

	t := &StructType{
		fields: make([]Field, n),
		index:  make(map[string][]int, n),
	}
	for i, f := range fs {
		t.fields[i] = ownedField(f)
		t.index[f.Name] = append(t.index[f.Name], i)
	}

	return t
}

func (*StructType) ID() Type     { return STRUCT }
func (*StructType) Name() string { return "struct" }

func (t *StructType) String() string {
	o := new(strings.Builder)
	o.WriteString("struct<")
	writeFieldList(o, t.fields)
	o.WriteString(">")
	return o.String()
}

// Fields method provides a copy of StructType fields
// so it can be safely mutated and will not result in updating the StructType.
func (t *StructType) Fields() []Field { return ownedFields(t.fields) }
func (t *StructType) NumFields() int  { return len(t.fields) }
func (t *StructType) Field(i int) Field {
	return ownedField(t.fields[i])
}

// FieldByName gets the field with the given name.
//
// If there are multiple fields with the given name, FieldByName
// returns the first such field.
func (t *StructType) FieldByName(name string) (Field, bool) {
	i, ok := t.index[name]
	if !ok {
		return Field{}, false
	}
	return ownedField(t.fields[i[0]]), true
}

// FieldIdx gets the index of the field with the given name.
//
// If there are multiple fields with the given name, FieldIdx returns
// the index of the first such field.
func (t *StructType) FieldIdx(name string) (int, bool) {
	i, ok := t.index[name]
	if ok {
		return i[0], true
	}
	return -1, false
}

// FieldIndices returns indices of all fields with the given name, or nil.
func (t *StructType) FieldIndices(name string) []int {
	return slices.Clone(t.index[name])
}

func (t *StructType) Fingerprint() string {
	var b strings.Builder
	b.WriteString(typeFingerprint(t))
	b.WriteByte('{')
	for _, c := range t.fields {
		b.WriteString(c.Fingerprint())
		b.WriteByte(';')
	}
	b.WriteByte('}')
	return b.String()
}

// UnionMode selects the memory layout of a union: sparse unions give every
// child the full length of the array, dense unions address their children
// through an offsets buffer.
type UnionMode int8

const (
	SparseMode UnionMode = iota
	DenseMode
)

func (m UnionMode) String() string {
	switch m {
	case SparseMode:
		return "sparse"
	case DenseMode:
		return "dense"
	default:
		return "UnionMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// UnionType describes a nested type whose slots each hold a value of one
// of its child fields.
//
// The type codes identifying each child are optional: when absent, child i
// is identified by code i. Whether the codes agree in number with the
// fields is not checked.
type UnionType struct {
	mode      UnionMode
	fields    []Field
	typeCodes []int32
	explicit  bool
}

// UnionOf returns a union type of the given mode. A nil typeCodes leaves
// the type codes implicit; a non-nil (even empty) slice is carried as an
// explicit sequence.
func UnionOf(mode UnionMode, fields []Field, typeCodes []int32) *UnionType {
	t := &UnionType{
		mode:     mode,
		fields:   ownedFields(fields),
		explicit: typeCodes != nil,
	}
	if t.explicit {
		t.typeCodes = slices.Clone(typeCodes)
	}
	return t
}

func SparseUnionOf(fields []Field, typeCodes []int32) *UnionType {
	return UnionOf(SparseMode, fields, typeCodes)
}

func DenseUnionOf(fields []Field, typeCodes []int32) *UnionType {
	return UnionOf(DenseMode, fields, typeCodes)
}

func (*UnionType) ID() Type { return UNION }
func (t *UnionType) Name() string {
	return t.mode.String() + "_union"
}

func (t *UnionType) Mode() UnionMode   { return t.mode }
func (t *UnionType) IsSparse() bool    { return t.mode == SparseMode }
func (t *UnionType) Fields() []Field   { return ownedFields(t.fields) }
func (t *UnionType) NumFields() int    { return len(t.fields) }
func (t *UnionType) Field(i int) Field { return ownedField(t.fields[i]) }

// TypeCodes returns the explicit type codes, reporting false when the
// union was built without them.
func (t *UnionType) TypeCodes() ([]int32, bool) {
	if !t.explicit {
		return nil, false
	}
	return slices.Clone(t.typeCodes), true
}

func (t *UnionType) String() string {
	o := new(strings.Builder)
	o.WriteString(t.Name())
	o.WriteByte('<')
	writeFieldList(o, t.fields)
	o.WriteByte('>')
	if t.explicit {
		o.WriteByte('[')
		for i, c := range t.typeCodes {
			if i > 0 {
				o.WriteString(", ")
			}
			o.WriteString(strconv.Itoa(int(c)))
		}
		o.WriteByte(']')
	}
	return o.String()
}

func (t *UnionType) Fingerprint() string {
	var b strings.Builder
	b.WriteString(typeFingerprint(t))
	switch t.mode {
	case SparseMode:
		b.WriteString("[s")
	case DenseMode:
		b.WriteString("[d")
	}
	if t.explicit {
		b.WriteByte(':')
		for _, c := range t.typeCodes {
			b.WriteString(strconv.Itoa(int(c)))
			b.WriteByte(',')
		}
	}
	b.WriteString("]{")
	for _, c := range t.fields {
		b.WriteString(c.Fingerprint())
		b.WriteByte(';')
	}
	b.WriteByte('}')
	return b.String()
}

func writeFieldList(o *strings.Builder, fields []Field) {
	for i, f := range fields {
		if i > 0 {
			o.WriteString(", ")
		}
		fmt.Fprintf(o, "%s: %v", f.Name, f.Type)
		if !f.Nullable {
			o.WriteString(" not null")
		}
	}
}

type Field struct {
	Name     string   // Field name
	Type     DataType // The field's data type
	Nullable bool     // Fields can be nullable
	Metadata Metadata // The field's metadata, if any
}

// ownedField returns a copy of f that shares no mutable state with it.
func ownedField(f Field) Field {
	if f.Type == nil {
		panic("arrow: nil DataType")
	}
	return Field{
		Name:     f.Name,
		Type:     f.Type,
		Nullable: f.Nullable,
		Metadata: f.Metadata.clone(),
	}
}

func ownedFields(fs []Field) []Field {
	if fs == nil {
		return nil
	}
	out := make([]Field, len(fs))
	for i, f := range fs {
		out[i] = ownedField(f)
	}
	return out
}

func (f Field) Fingerprint() string {
	var b strings.Builder
	b.WriteByte('F')
	if f.Nullable {
		b.WriteByte('n')
	} else {
		b.WriteByte('N')
	}
	b.WriteString(strconv.Itoa(len(f.Name)))
	b.WriteByte(':')
	b.WriteString(f.Name)
	b.WriteByte('{')
	b.WriteString(fingerprintOf(f.Type))
	b.WriteByte('}')
	if f.HasMetadata() {
		b.WriteString(f.Metadata.fingerprint())
	}
	return b.String()
}

func (f Field) HasMetadata() bool { return f.Metadata.Len() != 0 }

// Equal reports whether f and o are exactly equal: same name, same
// nullability, TypeEqual data types and equal metadata.
func (f Field) Equal(o Field) bool {
	switch {
	case f.Name != o.Name:
		return false
	case f.Nullable != o.Nullable:
		return false
	case !TypeEqual(f.Type, o.Type):
		return false
	case !f.Metadata.Equal(o.Metadata):
		return false
	}
	return true
}

func (f Field) String() string {
	o := new(strings.Builder)
	nullable := ""
	if f.Nullable {
		nullable = ", nullable"
	}
	fmt.Fprintf(o, "%s: type=%v%v", f.Name, f.Type, nullable)
	if f.HasMetadata() {
		fmt.Fprintf(o, "\n%*.smetadata: %v", len(f.Name)+2, "", f.Metadata)
	}
	return o.String()
}

var (
	_ NestedType = (*ListType)(nil)
	_ NestedType = (*LargeListType)(nil)
	_ NestedType = (*FixedSizeListType)(nil)
	_ NestedType = (*StructType)(nil)
	_ NestedType = (*UnionType)(nil)
)
