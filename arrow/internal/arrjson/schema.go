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

package arrjson

import (
	"github.com/datafuse-extras/arrow2/arrow"
	"github.com/datafuse-extras/arrow2/arrow/internal/debug"
	"golang.org/x/xerrors"
)

type schemaEncoder struct {
	nextDictID int64
}

func schemaToJSON(schema *arrow.Schema) (Schema, error) {
	var enc schemaEncoder
	out := Schema{
		Fields:   make([]Field, schema.NumFields()),
		Metadata: metadataToJSON(schema.Metadata()),
	}
	for i, f := range schema.Fields() {
		jf, err := enc.field(f)
		if err != nil {
			return Schema{}, err
		}
		out.Fields[i] = jf
	}
	return out, nil
}

// FieldToJSON returns the JSON descriptor of a single field.
func FieldToJSON(f arrow.Field) (Field, error) {
	var enc schemaEncoder
	return enc.field(f)
}

func (enc *schemaEncoder) field(f arrow.Field) (Field, error) {
	out := Field{
		Name:     f.Name,
		Nullable: f.Nullable,
		Children: []Field{},
	}

	typ, md := f.Type, f.Metadata
	if dict, ok := typ.(*arrow.DictionaryType); ok {
		index, err := dtypeToJSON(dict.IndexType)
		if err != nil {
			return Field{}, xerrors.Errorf("arrjson: dictionary index of field %q: %w", f.Name, err)
		}
		out.Dictionary = &dictInfo{ID: enc.nextDictID, Index: index}
		enc.nextDictID++
		typ = dict.ValueType
	}

	if ext, ok := typ.(arrow.ExtensionType); ok {
		typ = ext.StorageType()
		switch typ.(type) {
		case arrow.ExtensionType, *arrow.DictionaryType:
			return Field{}, xerrors.Errorf("arrjson: field %q: extension %s over %s: %w",
				f.Name, ext.ExtensionName(), typ, arrow.ErrNotImplemented)
		}
		keys := make([]string, 0, md.Len()+2)
		values := make([]string, 0, md.Len()+2)
		keys = append(append(keys, md.Keys()...), extensionNameKey, extensionMetadataKey)
		values = append(append(values, md.Values()...), ext.ExtensionName(), ext.Serialize())
		md = arrow.NewMetadata(keys, values)
	}

	if _, ok := typ.(*arrow.DictionaryType); ok {
		return Field{}, xerrors.Errorf("arrjson: field %q: nested dictionary: %w", f.Name, arrow.ErrNotImplemented)
	}

	dt, err := dtypeToJSON(typ)
	if err != nil {
		return Field{}, xerrors.Errorf("arrjson: field %q: %w", f.Name, err)
	}
	out.Type = dt
	out.Metadata = metadataToJSON(md)

	if nested, ok := typ.(arrow.NestedType); ok {
		children := nested.Fields()
		out.Children = make([]Field, len(children))
		for i, c := range children {
			if out.Children[i], err = enc.field(c); err != nil {
				return Field{}, err
			}
		}
	}
	return out, nil
}

func schemaFromJSON(schema Schema, cfg *config) (*arrow.Schema, error) {
	fields := make([]arrow.Field, len(schema.Fields))
	for i, f := range schema.Fields {
		af, err := fieldFromJSON(f, cfg)
		if err != nil {
			return nil, err
		}
		fields[i] = af
	}
	md := metadataFromJSON(schema.Metadata)
	return arrow.NewSchema(fields, &md), nil
}

// FieldFromJSON rebuilds a field from its JSON descriptor, resolving
// extension types through the process-wide registry.
func FieldFromJSON(f Field) (arrow.Field, error) {
	return fieldFromJSON(f, newConfig())
}

func fieldFromJSON(f Field, cfg *config) (arrow.Field, error) {
	children := make([]arrow.Field, len(f.Children))
	for i, c := range f.Children {
		child, err := fieldFromJSON(c, cfg)
		if err != nil {
			return arrow.Field{}, err
		}
		children[i] = child
	}

	typ, err := dtypeFromJSON(f.Type, children)
	if err != nil {
		return arrow.Field{}, xerrors.Errorf("arrjson: field %q: %w", f.Name, err)
	}

	md := metadataFromJSON(f.Metadata)
	if typ, md, err = extensionFromJSON(typ, md, cfg); err != nil {
		return arrow.Field{}, xerrors.Errorf("arrjson: field %q: %w", f.Name, err)
	}

	if f.Dictionary != nil {
		index, err := dtypeFromJSON(f.Dictionary.Index, nil)
		if err != nil {
			return arrow.Field{}, xerrors.Errorf("arrjson: dictionary index of field %q: %w", f.Name, err)
		}
		typ = arrow.DictionaryOf(index, typ)
	}

	return arrow.Field{Name: f.Name, Type: typ, Nullable: f.Nullable, Metadata: md}, nil
}

func extensionFromJSON(storage arrow.DataType, md arrow.Metadata, cfg *config) (arrow.DataType, arrow.Metadata, error) {
	nameIdx := md.FindKey(extensionNameKey)
	if nameIdx < 0 {
		return storage, md, nil
	}

	name := md.Values()[nameIdx]
	extType := cfg.lookup(name)
	if extType == nil {
		if cfg.strict {
			return nil, md, xerrors.Errorf("unknown extension type %q: %w", name, arrow.ErrNotFound)
		}
		debug.Log("arrjson: unknown extension type " + name + ", keeping its storage type")
		return storage, md, nil
	}

	var serialized string
	metaIdx := md.FindKey(extensionMetadataKey)
	if metaIdx >= 0 {
		serialized = md.Values()[metaIdx]
	}

	typ, err := extType.Deserialize(storage, serialized)
	if err != nil {
		return nil, md, xerrors.Errorf("extension type %q: %w", name, err)
	}

	keys := make([]string, 0, md.Len())
	values := make([]string, 0, md.Len())
	for i, k := range md.Keys() {
		if i == nameIdx || i == metaIdx {
			continue
		}
		keys = append(keys, k)
		values = append(values, md.Values()[i])
	}
	return typ, arrow.NewMetadata(keys, values), nil
}
