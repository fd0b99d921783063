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

package util

import (
	"github.com/datafuse-extras/arrow2/arrow"
	"github.com/huandu/xstrings"
	"golang.org/x/xerrors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Well-known message types with a dedicated Arrow mapping.
const (
	timestampName protoreflect.FullName = "google.protobuf.Timestamp"
	durationName  protoreflect.FullName = "google.protobuf.Duration"
)

// wrapperNames are the google.protobuf wrapper messages. Each maps to the
// nullable type of its single value field.
var wrapperNames = map[protoreflect.FullName]struct{}{
	"google.protobuf.DoubleValue": {},
	"google.protobuf.FloatValue":  {},
	"google.protobuf.Int64Value":  {},
	"google.protobuf.UInt64Value": {},
	"google.protobuf.Int32Value":  {},
	"google.protobuf.UInt32Value": {},
	"google.protobuf.BoolValue":   {},
	"google.protobuf.StringValue": {},
	"google.protobuf.BytesValue":  {},
}

var kindTypes = map[protoreflect.Kind]arrow.DataType{
	// Numeric
	protoreflect.Int32Kind:    arrow.PrimitiveTypes.Int32,
	protoreflect.Int64Kind:    arrow.PrimitiveTypes.Int64,
	protoreflect.Sint32Kind:   arrow.PrimitiveTypes.Int32,
	protoreflect.Sint64Kind:   arrow.PrimitiveTypes.Int64,
	protoreflect.Uint32Kind:   arrow.PrimitiveTypes.Uint32,
	protoreflect.Uint64Kind:   arrow.PrimitiveTypes.Uint64,
	protoreflect.Fixed32Kind:  arrow.PrimitiveTypes.Uint32,
	protoreflect.Fixed64Kind:  arrow.PrimitiveTypes.Uint64,
	protoreflect.Sfixed32Kind: arrow.PrimitiveTypes.Int32,
	protoreflect.Sfixed64Kind: arrow.PrimitiveTypes.Int64,
	protoreflect.FloatKind:    arrow.PrimitiveTypes.Float32,
	protoreflect.DoubleKind:   arrow.PrimitiveTypes.Float64,
	// Binary
	protoreflect.StringKind: arrow.BinaryTypes.String,
	protoreflect.BytesKind:  arrow.BinaryTypes.Binary,
	// Fixed Width
	protoreflect.BoolKind: arrow.FixedWidthTypes.Boolean,
}

type SchemaOptions struct {
	exclusionPolicy    func(fd protoreflect.FieldDescriptor) bool
	fieldNameFormatter func(str string) string
	enumsAsDictionary  bool
}

// ProtobufStructReflection derives Arrow fields from a protobuf message
// descriptor. Only the descriptor is consulted, so the schema of a message
// type does not depend on the contents of any particular message.
type ProtobufStructReflection struct {
	descriptor protoreflect.MessageDescriptor
	SchemaOptions
}

type Option func(*ProtobufStructReflection)

// NewProtobufStructReflection returns the reflection of msg's message type.
func NewProtobufStructReflection(msg proto.Message, options ...Option) *ProtobufStructReflection {
	return NewDescriptorReflection(msg.ProtoReflect().Descriptor(), options...)
}

// NewDescriptorReflection returns the reflection of the message type md.
func NewDescriptorReflection(md protoreflect.MessageDescriptor, options ...Option) *ProtobufStructReflection {
	psr := &ProtobufStructReflection{
		descriptor: md,
		SchemaOptions: SchemaOptions{
			exclusionPolicy:    func(protoreflect.FieldDescriptor) bool { return false },
			fieldNameFormatter: func(str string) string { return str },
		},
	}

	for _, opt := range options {
		opt(psr)
	}

	return psr
}

// WithExclusionPolicy skips every field for which ex returns true.
func WithExclusionPolicy(ex func(fd protoreflect.FieldDescriptor) bool) Option {
	return func(psr *ProtobufStructReflection) {
		psr.exclusionPolicy = ex
	}
}

// WithExcludedFields skips the named fields at any nesting depth. Names
// may be given in camel case, they are compared in snake case.
func WithExcludedFields(names ...string) Option {
	excluded := make(map[string]struct{}, len(names))
	for _, n := range names {
		excluded[xstrings.ToSnakeCase(n)] = struct{}{}
	}
	return WithExclusionPolicy(func(fd protoreflect.FieldDescriptor) bool {
		_, ok := excluded[string(fd.Name())]
		return ok
	})
}

// WithFieldNameFormatter rewrites the name of every derived field.
func WithFieldNameFormatter(formatter func(str string) string) Option {
	return func(psr *ProtobufStructReflection) {
		psr.fieldNameFormatter = formatter
	}
}

// WithEnumsAsDictionary maps enum fields to dictionary<values=utf8,
// indices=int32> instead of their int32 number.
func WithEnumsAsDictionary() Option {
	return func(psr *ProtobufStructReflection) {
		psr.enumsAsDictionary = true
	}
}

// GetArrowFields returns one field per message field in declaration
// order. Fields with explicit presence (messages, oneof members and
// proto3 optional scalars) are nullable. A message type that contains
// itself returns an error wrapping arrow.ErrNotImplemented.
func (psr ProtobufStructReflection) GetArrowFields() ([]arrow.Field, error) {
	return psr.structFields(psr.descriptor, map[protoreflect.FullName]bool{})
}

func (psr ProtobufStructReflection) GetSchema() (*arrow.Schema, error) {
	fields, err := psr.GetArrowFields()
	if err != nil {
		return nil, err
	}
	return arrow.NewSchema(fields, nil), nil
}

func (psr ProtobufStructReflection) structFields(md protoreflect.MessageDescriptor, visiting map[protoreflect.FullName]bool) ([]arrow.Field, error) {
	if visiting[md.FullName()] {
		return nil, xerrors.Errorf("arrow/util: recursive message %s: %w", md.FullName(), arrow.ErrNotImplemented)
	}
	visiting[md.FullName()] = true
	defer delete(visiting, md.FullName())

	fds := md.Fields()
	fields := make([]arrow.Field, 0, fds.Len())
	for i := 0; i < fds.Len(); i++ {
		fd := fds.Get(i)
		if psr.exclusionPolicy(fd) {
			continue
		}
		dt, nullable, err := psr.fieldType(fd, visiting)
		if err != nil {
			return nil, err
		}
		fields = append(fields, arrow.Field{
			Name:     psr.fieldNameFormatter(string(fd.Name())),
			Type:     dt,
			Nullable: nullable,
		})
	}
	return fields, nil
}

func (psr ProtobufStructReflection) fieldType(fd protoreflect.FieldDescriptor, visiting map[protoreflect.FullName]bool) (arrow.DataType, bool, error) {
	switch {
	case fd.IsMap():
		key, _, err := psr.valueType(fd.MapKey(), visiting)
		if err != nil {
			return nil, false, err
		}
		value, _, err := psr.valueType(fd.MapValue(), visiting)
		if err != nil {
			return nil, false, err
		}
		entries := arrow.StructOf(
			arrow.Field{Name: psr.fieldNameFormatter("key"), Type: key},
			arrow.Field{Name: psr.fieldNameFormatter("value"), Type: value},
		)
		return arrow.ListOfField(arrow.Field{Name: "entries", Type: entries}), false, nil
	case fd.IsList():
		elem, _, err := psr.valueType(fd, visiting)
		if err != nil {
			return nil, false, err
		}
		return arrow.ListOfNonNullable(elem), false, nil
	}

	dt, wrapped, err := psr.valueType(fd, visiting)
	return dt, wrapped || fd.HasPresence(), err
}

// valueType maps a single value of fd, ignoring its cardinality. The
// boolean reports a wrapper message whose value may be absent.
func (psr ProtobufStructReflection) valueType(fd protoreflect.FieldDescriptor, visiting map[protoreflect.FullName]bool) (arrow.DataType, bool, error) {
	switch fd.Kind() {
	case protoreflect.EnumKind:
		if psr.enumsAsDictionary {
			return &arrow.DictionaryType{IndexType: arrow.PrimitiveTypes.Int32, ValueType: arrow.BinaryTypes.String}, false, nil
		}
		return arrow.PrimitiveTypes.Int32, false, nil
	case protoreflect.MessageKind, protoreflect.GroupKind:
		md := fd.Message()
		switch name := md.FullName(); {
		case name == timestampName:
			return arrow.FixedWidthTypes.Timestamp_ns, false, nil
		case name == durationName:
			return arrow.FixedWidthTypes.Duration_ns, false, nil
		default:
			if _, ok := wrapperNames[name]; ok {
				dt, _, err := psr.valueType(md.Fields().ByName("value"), visiting)
				return dt, true, err
			}
		}
		fields, err := psr.structFields(md, visiting)
		if err != nil {
			return nil, false, err
		}
		return arrow.StructOf(fields...), false, nil
	}

	dt, ok := kindTypes[fd.Kind()]
	if !ok {
		return nil, false, xerrors.Errorf("arrow/util: field %s of kind %s: %w", fd.FullName(), fd.Kind(), arrow.ErrNotImplemented)
	}
	return dt, false, nil
}
