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

// Package avro converts Avro schemas into Arrow schemas.
package avro

import (
	"strconv"

	"github.com/datafuse-extras/arrow2/arrow"
	"github.com/datafuse-extras/arrow2/arrow/extensions"
	"github.com/hamba/avro/v2"
	"golang.org/x/xerrors"
)

const defaultFieldName = "value"

// ArrowSchemaFromAvro returns a new Arrow schema from an Avro schema JSON.
//
// A top-level record becomes the schema's fields; any other top-level
// type becomes a single field named after the type, or "value" for
// unnamed types. Errors wrap arrow.ErrInvalid for schemas that do not
// parse and arrow.ErrNotImplemented for constructs with no Arrow
// equivalent, such as recursive records.
func ArrowSchemaFromAvro(avroSchema []byte) (*arrow.Schema, error) {
	schema, err := avro.Parse(string(avroSchema))
	if err != nil {
		return nil, xerrors.Errorf("avro: could not parse schema: %v: %w", err, arrow.ErrInvalid)
	}

	c := converter{visiting: make(map[string]bool)}
	if rec, ok := schema.(*avro.RecordSchema); ok {
		fields, err := c.recordFields(rec)
		if err != nil {
			return nil, err
		}
		return arrow.NewSchema(fields, nil), nil
	}

	name := defaultFieldName
	if named, ok := schema.(avro.NamedSchema); ok {
		name = named.Name()
	}
	f, err := c.field(name, schema)
	if err != nil {
		return nil, err
	}
	return arrow.NewSchema([]arrow.Field{f}, nil), nil
}

type converter struct {
	visiting map[string]bool
}

func (c *converter) recordFields(rec *avro.RecordSchema) ([]arrow.Field, error) {
	name := rec.FullName()
	if c.visiting[name] {
		return nil, xerrors.Errorf("avro: recursive record %s: %w", name, arrow.ErrNotImplemented)
	}
	c.visiting[name] = true
	defer delete(c.visiting, name)

	fields := make([]arrow.Field, len(rec.Fields()))
	for i, f := range rec.Fields() {
		af, err := c.field(f.Name(), f.Type())
		if err != nil {
			return nil, xerrors.Errorf("avro: field %s.%s: %w", rec.Name(), f.Name(), err)
		}
		fields[i] = af
	}
	return fields, nil
}

// field converts an Avro schema to a field. Unions of null and one other
// type become a nullable field of that type.
func (c *converter) field(name string, schema avro.Schema) (arrow.Field, error) {
	if u, ok := schema.(*avro.UnionSchema); ok && u.Nullable() {
		types := u.Types()
		inner := types[0]
		if inner.Type() == avro.Null {
			inner = types[1]
		}
		f, err := c.field(name, inner)
		f.Nullable = true
		return f, err
	}

	dt, md, err := c.dataType(schema)
	if err != nil {
		return arrow.Field{}, err
	}
	_, isUnion := dt.(*arrow.UnionType)
	return arrow.Field{
		Name:     name,
		Type:     dt,
		Nullable: isUnion || dt.ID() == arrow.NULL,
		Metadata: md,
	}, nil
}

func (c *converter) dataType(schema avro.Schema) (arrow.DataType, arrow.Metadata, error) {
	switch s := schema.(type) {
	case *avro.NullSchema:
		return arrow.Null, arrow.Metadata{}, nil
	case *avro.PrimitiveSchema:
		dt, err := primitiveType(s)
		return dt, arrow.Metadata{}, err
	case *avro.FixedSchema:
		dt, err := fixedType(s)
		return dt, arrow.Metadata{}, err
	case *avro.EnumSchema:
		return enumType(s)
	case *avro.ArraySchema:
		elem, err := c.field("item", s.Items())
		if err != nil {
			return nil, arrow.Metadata{}, err
		}
		return arrow.ListOfField(elem), arrow.Metadata{}, nil
	case *avro.MapSchema:
		value, err := c.field("value", s.Values())
		if err != nil {
			return nil, arrow.Metadata{}, err
		}
		entries := arrow.StructOf(arrow.Field{Name: "key", Type: arrow.BinaryTypes.String}, value)
		return arrow.ListOfField(arrow.Field{Name: "entries", Type: entries}), arrow.Metadata{}, nil
	case *avro.RecordSchema:
		fields, err := c.recordFields(s)
		if err != nil {
			return nil, arrow.Metadata{}, err
		}
		return arrow.StructOf(fields...), arrow.Metadata{}, nil
	case *avro.UnionSchema:
		dt, err := c.unionType(s)
		return dt, arrow.Metadata{}, err
	case *avro.RefSchema:
		return c.dataType(s.Schema())
	}
	return nil, arrow.Metadata{}, xerrors.Errorf("avro: unsupported schema type %s: %w", schema.Type(), arrow.ErrNotImplemented)
}

// unionType maps a general union to a dense union whose children are
// named after the branch types.
func (c *converter) unionType(u *avro.UnionSchema) (arrow.DataType, error) {
	types := u.Types()
	fields := make([]arrow.Field, len(types))
	for i, t := range types {
		f, err := c.field(branchName(t), t)
		if err != nil {
			return nil, err
		}
		fields[i] = f
	}
	return arrow.DenseUnionOf(fields, nil), nil
}

func branchName(s avro.Schema) string {
	if named, ok := s.(avro.NamedSchema); ok {
		return named.FullName()
	}
	return string(s.Type())
}

func primitiveType(s *avro.PrimitiveSchema) (arrow.DataType, error) {
	if ls := s.Logical(); ls != nil {
		switch ls.Type() {
		case avro.Decimal:
			return decimalType(ls)
		case avro.UUID:
			return extensions.NewUUIDType(), nil
		case avro.Date:
			return arrow.FixedWidthTypes.Date32, nil
		case avro.TimeMillis:
			return arrow.FixedWidthTypes.Time32ms, nil
		case avro.TimeMicros:
			return arrow.FixedWidthTypes.Time64us, nil
		case avro.TimestampMillis:
			return arrow.FixedWidthTypes.Timestamp_ms, nil
		case avro.TimestampMicros:
			return arrow.FixedWidthTypes.Timestamp_us, nil
		case avro.LocalTimestampMillis:
			return &arrow.TimestampType{Unit: arrow.Millisecond}, nil
		case avro.LocalTimestampMicros:
			return &arrow.TimestampType{Unit: arrow.Microsecond}, nil
		}
	}

	switch s.Type() {
	case avro.Boolean:
		return arrow.FixedWidthTypes.Boolean, nil
	case avro.Int:
		return arrow.PrimitiveTypes.Int32, nil
	case avro.Long:
		return arrow.PrimitiveTypes.Int64, nil
	case avro.Float:
		return arrow.PrimitiveTypes.Float32, nil
	case avro.Double:
		return arrow.PrimitiveTypes.Float64, nil
	case avro.Bytes:
		return arrow.BinaryTypes.Binary, nil
	case avro.String:
		return arrow.BinaryTypes.String, nil
	case avro.Null:
		return arrow.Null, nil
	}
	return nil, xerrors.Errorf("avro: unsupported primitive type %s: %w", s.Type(), arrow.ErrNotImplemented)
}

func fixedType(s *avro.FixedSchema) (arrow.DataType, error) {
	if ls := s.Logical(); ls != nil && ls.Type() == avro.Decimal {
		return decimalType(ls)
	}
	return &arrow.FixedSizeBinaryType{ByteWidth: s.Size()}, nil
}

func decimalType(ls avro.LogicalSchema) (arrow.DataType, error) {
	dec, ok := ls.(*avro.DecimalLogicalSchema)
	if !ok {
		return nil, xerrors.Errorf("avro: malformed decimal logical type %s: %w", ls, arrow.ErrInvalid)
	}
	if dec.Precision() > 38 {
		return nil, xerrors.Errorf("avro: decimal precision %d exceeds 38: %w", dec.Precision(), arrow.ErrNotImplemented)
	}
	return &arrow.DecimalType{Precision: int32(dec.Precision()), Scale: int32(dec.Scale())}, nil
}

// enumType encodes an enum as a dictionary of strings whose index is the
// smallest unsigned type able to address every symbol. The symbols are
// kept in the field metadata, keyed by ordinal.
func enumType(s *avro.EnumSchema) (arrow.DataType, arrow.Metadata, error) {
	symbols := s.Symbols()
	keys := make([]string, len(symbols))
	for i := range symbols {
		keys[i] = strconv.Itoa(i)
	}

	var index arrow.DataType
	switch n := len(symbols); {
	case n <= 1<<8:
		index = arrow.PrimitiveTypes.Uint8
	case n <= 1<<16:
		index = arrow.PrimitiveTypes.Uint16
	default:
		index = arrow.PrimitiveTypes.Uint32
	}
	return arrow.DictionaryOf(index, arrow.BinaryTypes.String), arrow.NewMetadata(keys, symbols), nil
}
