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

package avro

import (
	"fmt"
	"strings"
	"testing"

	"github.com/datafuse-extras/arrow2/arrow"
	"github.com/datafuse-extras/arrow2/arrow/extensions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleSchema = `{
  "type": "record",
  "name": "Example",
  "namespace": "org.example",
  "fields": [
    {"name": "inheritNull", "type": {"type": "enum", "name": "Simple", "symbols": ["a", "b"]}},
    {"name": "explicitNamespace", "type": {"type": "fixed", "name": "test", "namespace": "org.hamba.avro", "size": 12}},
    {"name": "fullName", "type": {
      "type": "record",
      "name": "fullName_data",
      "namespace": "ignored",
      "fields": [
        {"name": "inheritNamespace", "type": {"type": "enum", "name": "inheritNamespace", "symbols": ["d", "e"]}},
        {"name": "md5", "type": {"name": "md5_data", "type": "fixed", "size": 16, "namespace": "ignored"}}
      ]
    }},
    {"name": "id", "type": "int"},
    {"name": "bigId", "type": "long"},
    {"name": "temperature", "type": ["null", "float"]},
    {"name": "fraction", "type": ["double", "null"]},
    {"name": "is_emergency", "type": "boolean"},
    {"name": "remote_ip", "type": ["null", "bytes"]},
    {"name": "person", "type": {
      "type": "record",
      "name": "person_data",
      "fields": [
        {"name": "lastname", "type": "string"},
        {"name": "address", "type": {
          "type": "record",
          "name": "AddressUSRecord",
          "fields": [
            {"name": "streetaddress", "type": "string"},
            {"name": "city", "type": "string"}
          ]
        }},
        {"name": "mapfield", "type": {"type": "map", "values": "long"}},
        {"name": "arrayField", "type": {"type": "array", "items": "string"}}
      ]
    }},
    {"name": "decimalField", "type": {"type": "bytes", "logicalType": "decimal", "precision": 4, "scale": 2}},
    {"name": "decimalFixed", "type": {"type": "fixed", "name": "dec16", "size": 16, "logicalType": "decimal", "precision": 20, "scale": 5}},
    {"name": "uuidField", "type": {"type": "string", "logicalType": "uuid"}},
    {"name": "timemillis", "type": {"type": "int", "logicalType": "time-millis"}},
    {"name": "timemicros", "type": {"type": "long", "logicalType": "time-micros"}},
    {"name": "timestampmillis", "type": {"type": "long", "logicalType": "timestamp-millis"}},
    {"name": "timestampmicros", "type": {"type": "long", "logicalType": "timestamp-micros"}},
    {"name": "localtimestampmillis", "type": {"type": "long", "logicalType": "local-timestamp-millis"}},
    {"name": "date", "type": {"type": "int", "logicalType": "date"}},
    {"name": "choice", "type": ["int", "string", "null"]},
    {"name": "reused", "type": "org.example.Simple"}
  ]
}`

func TestArrowSchemaFromAvro(t *testing.T) {
	got, err := ArrowSchemaFromAvro([]byte(exampleSchema))
	require.NoError(t, err)

	enum := arrow.DictionaryOf(arrow.PrimitiveTypes.Uint8, arrow.BinaryTypes.String)
	want := arrow.NewSchema([]arrow.Field{
		{Name: "inheritNull", Type: enum, Metadata: arrow.NewMetadata([]string{"0", "1"}, []string{"a", "b"})},
		{Name: "explicitNamespace", Type: &arrow.FixedSizeBinaryType{ByteWidth: 12}},
		{Name: "fullName", Type: arrow.StructOf(
			arrow.Field{Name: "inheritNamespace", Type: enum, Metadata: arrow.NewMetadata([]string{"0", "1"}, []string{"d", "e"})},
			arrow.Field{Name: "md5", Type: &arrow.FixedSizeBinaryType{ByteWidth: 16}},
		)},
		{Name: "id", Type: arrow.PrimitiveTypes.Int32},
		{Name: "bigId", Type: arrow.PrimitiveTypes.Int64},
		{Name: "temperature", Type: arrow.PrimitiveTypes.Float32, Nullable: true},
		{Name: "fraction", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		{Name: "is_emergency", Type: arrow.FixedWidthTypes.Boolean},
		{Name: "remote_ip", Type: arrow.BinaryTypes.Binary, Nullable: true},
		{Name: "person", Type: arrow.StructOf(
			arrow.Field{Name: "lastname", Type: arrow.BinaryTypes.String},
			arrow.Field{Name: "address", Type: arrow.StructOf(
				arrow.Field{Name: "streetaddress", Type: arrow.BinaryTypes.String},
				arrow.Field{Name: "city", Type: arrow.BinaryTypes.String},
			)},
			arrow.Field{Name: "mapfield", Type: arrow.ListOfField(arrow.Field{Name: "entries", Type: arrow.StructOf(
				arrow.Field{Name: "key", Type: arrow.BinaryTypes.String},
				arrow.Field{Name: "value", Type: arrow.PrimitiveTypes.Int64},
			)})},
			arrow.Field{Name: "arrayField", Type: arrow.ListOfNonNullable(arrow.BinaryTypes.String)},
		)},
		{Name: "decimalField", Type: &arrow.DecimalType{Precision: 4, Scale: 2}},
		{Name: "decimalFixed", Type: &arrow.DecimalType{Precision: 20, Scale: 5}},
		{Name: "uuidField", Type: extensions.NewUUIDType()},
		{Name: "timemillis", Type: arrow.FixedWidthTypes.Time32ms},
		{Name: "timemicros", Type: arrow.FixedWidthTypes.Time64us},
		{Name: "timestampmillis", Type: arrow.FixedWidthTypes.Timestamp_ms},
		{Name: "timestampmicros", Type: arrow.FixedWidthTypes.Timestamp_us},
		{Name: "localtimestampmillis", Type: &arrow.TimestampType{Unit: arrow.Millisecond}},
		{Name: "date", Type: arrow.FixedWidthTypes.Date32},
		{Name: "choice", Type: arrow.DenseUnionOf([]arrow.Field{
			{Name: "int", Type: arrow.PrimitiveTypes.Int32},
			{Name: "string", Type: arrow.BinaryTypes.String},
			{Name: "null", Type: arrow.Null, Nullable: true},
		}, nil), Nullable: true},
		{Name: "reused", Type: enum, Metadata: arrow.NewMetadata([]string{"0", "1"}, []string{"a", "b"})},
	}, nil)

	require.Equal(t, want.NumFields(), got.NumFields())
	for i, f := range want.Fields() {
		assert.Truef(t, f.Equal(got.Field(i)), "field %d:\n got=%v\nwant=%v", i, got.Field(i), f)
	}
	assert.True(t, want.Equal(got))
}

func TestArrowSchemaFromAvroTopLevel(t *testing.T) {
	tests := []struct {
		schema string
		want   arrow.Field
	}{
		{`"string"`, arrow.Field{Name: "value", Type: arrow.BinaryTypes.String}},
		{`{"type": "array", "items": ["null", "long"]}`, arrow.Field{Name: "value", Type: arrow.ListOf(arrow.PrimitiveTypes.Int64)}},
		{`["null", "double"]`, arrow.Field{Name: "value", Type: arrow.PrimitiveTypes.Float64, Nullable: true}},
		{`{"type": "fixed", "name": "hash", "size": 8}`, arrow.Field{Name: "hash", Type: &arrow.FixedSizeBinaryType{ByteWidth: 8}}},
	}
	for _, tc := range tests {
		t.Run(tc.schema, func(t *testing.T) {
			got, err := ArrowSchemaFromAvro([]byte(tc.schema))
			require.NoError(t, err)
			require.Equal(t, 1, got.NumFields())
			assert.Truef(t, tc.want.Equal(got.Field(0)), "got=%v", got.Field(0))
		})
	}
}

func TestEnumIndexWidth(t *testing.T) {
	for _, tc := range []struct {
		n    int
		want arrow.DataType
	}{
		{1, arrow.PrimitiveTypes.Uint8},
		{256, arrow.PrimitiveTypes.Uint8},
		{257, arrow.PrimitiveTypes.Uint16},
		{1 << 16, arrow.PrimitiveTypes.Uint16},
		{1<<16 + 1, arrow.PrimitiveTypes.Uint32},
	} {
		symbols := make([]string, tc.n)
		for i := range symbols {
			symbols[i] = fmt.Sprintf("%q", fmt.Sprintf("S%d", i))
		}
		schema := `{"type": "enum", "name": "E", "symbols": [` + strings.Join(symbols, ",") + `]}`

		got, err := ArrowSchemaFromAvro([]byte(schema))
		require.NoError(t, err)
		dict, ok := got.Field(0).Type.(*arrow.DictionaryType)
		require.True(t, ok)
		assert.Truef(t, arrow.TypeEqual(tc.want, dict.IndexType), "%d symbols: %v", tc.n, dict.IndexType)
		assert.Equal(t, tc.n, got.Field(0).Metadata.Len())
	}
}

func TestArrowSchemaFromAvroErrors(t *testing.T) {
	_, err := ArrowSchemaFromAvro([]byte(`{"type": "recordz"}`))
	assert.ErrorIs(t, err, arrow.ErrInvalid)

	_, err = ArrowSchemaFromAvro([]byte(`not json`))
	assert.ErrorIs(t, err, arrow.ErrInvalid)

	_, err = ArrowSchemaFromAvro([]byte(`{
  "type": "record",
  "name": "Node",
  "fields": [
    {"name": "value", "type": "long"},
    {"name": "next", "type": ["null", "Node"]}
  ]
}`))
	assert.ErrorIs(t, err, arrow.ErrNotImplemented)

	_, err = ArrowSchemaFromAvro([]byte(`{"type": "fixed", "name": "big", "size": 32, "logicalType": "decimal", "precision": 60}`))
	assert.ErrorIs(t, err, arrow.ErrNotImplemented)
}
