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

// Metadata is an ordered list of key/value pairs attached to a field or
// a schema. It does not take part in shape comparisons.
type Metadata struct {
	keys   []string
	values []string
}

func NewMetadata(keys, values []string) Metadata {
	if len(keys) != len(values) {
		panic("arrow: len mismatch")
	}

	n := len(keys)
	if n == 0 {
		return Metadata{}
	}

	md := Metadata{
		keys:   make([]string, n),
		values: make([]string, n),
	}
	copy(md.keys, keys)
	copy(md.values, values)
	return md
}

// MetadataFrom builds metadata from a map, with keys in sorted order.
func MetadataFrom(kv map[string]string) Metadata {
	if len(kv) == 0 {
		return Metadata{}
	}

	md := Metadata{
		keys:   make([]string, 0, len(kv)),
		values: make([]string, 0, len(kv)),
	}
	for k := range kv {
		md.keys = append(md.keys, k)
	}
	slices.Sort(md.keys)
	for _, k := range md.keys {
		md.values = append(md.values, kv[k])
	}
	return md
}

func (md Metadata) Len() int         { return len(md.keys) }
func (md Metadata) Keys() []string   { return md.keys }
func (md Metadata) Values() []string { return md.values }
func (md Metadata) ToMap() map[string]string {
	m := make(map[string]string, len(md.keys))
	for i := range md.keys {
		m[md.keys[i]] = md.values[i]
	}
	return m
}

func (md Metadata) String() string {
	o := new(strings.Builder)
	o.WriteString("[")
	for i := range md.keys {
		if i > 0 {
			o.WriteString(", ")
		}
		o.WriteString(strconv.Quote(md.keys[i]))
		o.WriteString(": ")
		o.WriteString(strconv.Quote(md.values[i]))
	}
	o.WriteString("]")
	return o.String()
}

// FindKey returns the index of the key-value pair with the provided key name,
// or -1 if such a key does not exist.
func (md Metadata) FindKey(k string) int {
	for i, v := range md.keys {
		if v == k {
			return i
		}
	}
	return -1
}

// GetValue returns the value associated with the provided key name.
// If the key does not exist, the second return value is false.
func (md Metadata) GetValue(k string) (string, bool) {
	i := md.FindKey(k)
	if i < 0 {
		return "", false
	}
	return md.values[i], true
}

func (md Metadata) clone() Metadata {
	if len(md.keys) == 0 {
		return Metadata{}
	}

	o := Metadata{
		keys:   make([]string, len(md.keys)),
		values: make([]string, len(md.values)),
	}
	copy(o.keys, md.keys)
	copy(o.values, md.values)

	return o
}

func (md Metadata) sortedIndices() []int {
	idxes := make([]int, len(md.keys))
	for i := range idxes {
		idxes[i] = i
	}

	slices.SortStableFunc(idxes, func(i, j int) int {
		return strings.Compare(md.keys[i], md.keys[j])
	})
	return idxes
}

// Equal reports whether both hold the same key/value pairs, in any order.
func (md Metadata) Equal(rhs Metadata) bool {
	if md.Len() != rhs.Len() {
		return false
	}

	idxes := md.sortedIndices()
	rhsIdxes := rhs.sortedIndices()
	for i := range idxes {
		j := idxes[i]
		k := rhsIdxes[i]
		if md.keys[j] != rhs.keys[k] || md.values[j] != rhs.values[k] {
			return false
		}
	}
	return true
}

func (md Metadata) fingerprint() string {
	var b strings.Builder
	b.WriteByte('M')
	b.WriteByte('{')
	for _, i := range md.sortedIndices() {
		b.WriteString(strconv.Itoa(len(md.keys[i])))
		b.WriteByte(':')
		b.WriteString(md.keys[i])
		b.WriteString(strconv.Itoa(len(md.values[i])))
		b.WriteByte(':')
		b.WriteString(md.values[i])
	}
	b.WriteByte('}')
	return b.String()
}

// Schema is a sequence of Field values, describing the columns of a table or
// a record batch.
//
// A Schema is immutable once built, so a *Schema may be shared freely
// between record batches, readers and goroutines.
type Schema struct {
	fields []Field
	index  map[string][]int
	meta   Metadata
}

// NewSchema returns a new Schema value from the slice of fields and metadata.
//
// NewSchema panics if there is a field with a nil DataType.
func NewSchema(fields []Field, metadata *Metadata) *Schema {
	sc := &Schema{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string][]int, len(fields)),
	}
	if metadata != nil {
		sc.meta = metadata.clone()
	}
	for i, field := range fields {
		if field.Type == nil {
			panic("arrow: field with nil DataType")
		}
		sc.fields = append(sc.fields, ownedField(field))
		sc.index[field.Name] = append(sc.index[field.Name], i)
	}
	return sc
}

func (sc *Schema) Metadata() Metadata { return sc.meta }

// Fields returns a copy of the schema fields.
func (sc *Schema) Fields() []Field { return ownedFields(sc.fields) }

func (sc *Schema) Field(i int) Field { return ownedField(sc.fields[i]) }
func (sc *Schema) NumFields() int    { return len(sc.fields) }

func (sc *Schema) FieldsByName(n string) ([]Field, bool) {
	indices, ok := sc.index[n]
	if !ok {
		return nil, ok
	}
	fields := make([]Field, 0, len(indices))
	for _, v := range indices {
		fields = append(fields, ownedField(sc.fields[v]))
	}
	return fields, ok
}

// FieldIndices returns the indices of the named field or nil.
func (sc *Schema) FieldIndices(n string) []int {
	return slices.Clone(sc.index[n])
}

func (sc *Schema) HasField(n string) bool { return len(sc.FieldIndices(n)) > 0 }
func (sc *Schema) HasMetadata() bool      { return len(sc.meta.keys) > 0 }

// AddField returns a new schema with the field inserted at position i,
// leaving sc untouched.
func (sc *Schema) AddField(i int, field Field) (*Schema, error) {
	if i < 0 || i > len(sc.fields) {
		return nil, fmt.Errorf("%w: arrow: invalid field index %d", ErrIndex, i)
	}

	fields := make([]Field, 0, len(sc.fields)+1)
	fields = append(fields, sc.fields[:i]...)
	fields = append(fields, field)
	fields = append(fields, sc.fields[i:]...)
	return NewSchema(fields, &sc.meta), nil
}

// Equal returns whether two schema are equal.
// Equal does not compare the metadata.
func (sc *Schema) Equal(o *Schema) bool {
	switch {
	case sc == o:
		return true
	case sc == nil || o == nil:
		return false
	case len(sc.fields) != len(o.fields):
		return false
	}

	for i := range sc.fields {
		if !sc.fields[i].Equal(o.fields[i]) {
			return false
		}
	}
	return true
}

// ShapeEqual reports whether both schemas describe the same storage shape:
// the same number of fields with pairwise equal nullability and ShapeEqual
// types. Field names and metadata are ignored.
func (sc *Schema) ShapeEqual(o *Schema) bool {
	switch {
	case sc == o:
		return true
	case sc == nil || o == nil:
		return false
	case len(sc.fields) != len(o.fields):
		return false
	}

	for i := range sc.fields {
		if sc.fields[i].Nullable != o.fields[i].Nullable {
			return false
		}
		if !ShapeEqual(sc.fields[i].Type, o.fields[i].Type) {
			return false
		}
	}
	return true
}

func (sc *Schema) String() string {
	o := new(strings.Builder)
	fmt.Fprintf(o, "schema:\n  fields: %d\n", len(sc.fields))
	for i, f := range sc.fields {
		if i > 0 {
			o.WriteString("\n")
		}
		fmt.Fprintf(o, "    - %v", f)
	}
	if meta := sc.Metadata(); meta.Len() > 0 {
		fmt.Fprintf(o, "\n  metadata: %v", meta)
	}
	return o.String()
}

// Fingerprint identifies the schema fields. Schema metadata is not part of
// it, consistently with Equal.
func (sc *Schema) Fingerprint() string {
	if sc == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("S{")
	for _, f := range sc.fields {
		b.WriteString(f.Fingerprint())
		b.WriteByte(';')
	}
	b.WriteString("}")
	return b.String()
}
