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

// Package types holds user-defined extension types exercised by the tests
// of the arrow packages.
package types

import (
	"encoding/binary"
	"fmt"

	"github.com/datafuse-extras/arrow2/arrow"
	"golang.org/x/xerrors"
)

// UUIDType stands in for a fixed_size_binary[16].
type UUIDType struct {
	arrow.ExtensionBase
}

// NewUUIDType returns a UUIDType with its fixed_size_binary[16] storage.
func NewUUIDType() *UUIDType {
	return &UUIDType{ExtensionBase: arrow.ExtensionBase{
		Storage: &arrow.FixedSizeBinaryType{ByteWidth: 16}}}
}

func (*UUIDType) ExtensionName() string { return "uuid" }
func (t *UUIDType) String() string      { return "extension<" + t.ExtensionName() + ">" }

// Serialize returns "uuid-serialized" so that tests can check the metadata
// is carried through.
func (*UUIDType) Serialize() string { return "uuid-serialized" }

func (*UUIDType) Deserialize(storageType arrow.DataType, data string) (arrow.ExtensionType, error) {
	if data != "uuid-serialized" {
		return nil, xerrors.Errorf("type identifier did not match: '%s'", data)
	}
	if !arrow.TypeEqual(storageType, &arrow.FixedSizeBinaryType{ByteWidth: 16}) {
		return nil, xerrors.Errorf("invalid storage type for UUIDType: %s", storageType)
	}
	return NewUUIDType(), nil
}

// ExtensionEquals only accepts another *UUIDType.
func (*UUIDType) ExtensionEquals(other arrow.ExtensionType) bool {
	_, ok := other.(*UUIDType)
	return ok
}

// OtherUUIDType has the same storage as UUIDType but is a distinct kind.
type OtherUUIDType struct {
	arrow.ExtensionBase
}

func NewOtherUUIDType() *OtherUUIDType {
	return &OtherUUIDType{ExtensionBase: arrow.ExtensionBase{
		Storage: &arrow.FixedSizeBinaryType{ByteWidth: 16}}}
}

func (*OtherUUIDType) ExtensionName() string { return "other-uuid" }
func (*OtherUUIDType) Serialize() string     { return "" }
func (t *OtherUUIDType) String() string      { return "extension<" + t.ExtensionName() + ">" }

func (*OtherUUIDType) Deserialize(storageType arrow.DataType, _ string) (arrow.ExtensionType, error) {
	if !arrow.TypeEqual(storageType, &arrow.FixedSizeBinaryType{ByteWidth: 16}) {
		return nil, xerrors.Errorf("invalid storage type for OtherUUIDType: %s", storageType)
	}
	return NewOtherUUIDType(), nil
}

func (*OtherUUIDType) ExtensionEquals(other arrow.ExtensionType) bool {
	_, ok := other.(*OtherUUIDType)
	return ok
}

// Parametric1Type is an int32 backed type whose name does not depend on
// its parameter: one registration serves every parameter.
type Parametric1Type struct {
	arrow.ExtensionBase

	param int32
}

func NewParametric1Type(p int32) *Parametric1Type {
	ret := &Parametric1Type{param: p}
	ret.ExtensionBase.Storage = arrow.PrimitiveTypes.Int32
	return ret
}

func (p *Parametric1Type) Param() int32   { return p.param }
func (p *Parametric1Type) String() string { return "extension<" + p.ExtensionName() + ">" }

// ExtensionEquals returns true if other is a *Parametric1Type and has the same param
func (p *Parametric1Type) ExtensionEquals(other arrow.ExtensionType) bool {
	o, ok := other.(*Parametric1Type)
	if !ok {
		return false
	}
	return p.param == o.param
}

func (*Parametric1Type) ExtensionName() string { return "parametric-type-1" }

// Serialize returns the param as 4 little endian bytes
func (p *Parametric1Type) Serialize() string {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(p.param))
	return string(buf[:])
}

func (*Parametric1Type) Deserialize(storage arrow.DataType, data string) (arrow.ExtensionType, error) {
	param, err := decodeParam(storage, data)
	if err != nil {
		return nil, xerrors.Errorf("parametric1type: %w", err)
	}
	return NewParametric1Type(param), nil
}

// Parametric2Type carries its parameter in its extension name, so each
// parameter is registered separately.
type Parametric2Type struct {
	arrow.ExtensionBase

	param int32
}

func NewParametric2Type(p int32) *Parametric2Type {
	ret := &Parametric2Type{param: p}
	ret.ExtensionBase.Storage = arrow.PrimitiveTypes.Int32
	return ret
}

func (p *Parametric2Type) String() string { return "extension<" + p.ExtensionName() + ">" }

func (p *Parametric2Type) ExtensionEquals(other arrow.ExtensionType) bool {
	o, ok := other.(*Parametric2Type)
	if !ok {
		return false
	}
	return p.param == o.param
}

func (p *Parametric2Type) ExtensionName() string {
	return fmt.Sprintf("parametric-type-2<param=%d>", p.param)
}

func (p *Parametric2Type) Serialize() string {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(p.param))
	return string(buf[:])
}

func (*Parametric2Type) Deserialize(storage arrow.DataType, data string) (arrow.ExtensionType, error) {
	param, err := decodeParam(storage, data)
	if err != nil {
		return nil, xerrors.Errorf("parametric2type: %w", err)
	}
	return NewParametric2Type(param), nil
}

func decodeParam(storage arrow.DataType, data string) (int32, error) {
	if len(data) != 4 {
		return 0, xerrors.Errorf("invalid serialized data size: %d", len(data))
	}
	if storage.ID() != arrow.INT32 {
		return 0, xerrors.New("must have int32 as underlying storage type")
	}
	return int32(binary.LittleEndian.Uint32([]byte(data))), nil
}

// ExtStructType is backed by struct<a: int64, b: float64>.
type ExtStructType struct {
	arrow.ExtensionBase
}

func NewExtStructType() *ExtStructType {
	return &ExtStructType{
		ExtensionBase: arrow.ExtensionBase{Storage: arrow.StructOf(
			arrow.Field{Name: "a", Type: arrow.PrimitiveTypes.Int64},
			arrow.Field{Name: "b", Type: arrow.PrimitiveTypes.Float64},
		)},
	}
}

func (p *ExtStructType) String() string { return "extension<" + p.ExtensionName() + ">" }

func (*ExtStructType) ExtensionName() string { return "ext-struct-type" }
func (*ExtStructType) Serialize() string     { return "ext-struct-type-unique-code" }

func (*ExtStructType) ExtensionEquals(other arrow.ExtensionType) bool {
	return other.ExtensionName() == "ext-struct-type"
}

func (*ExtStructType) Deserialize(storage arrow.DataType, serialized string) (arrow.ExtensionType, error) {
	if serialized != "ext-struct-type-unique-code" {
		return nil, xerrors.New("type identifier did not match")
	}
	if !arrow.TypeEqual(storage, NewExtStructType().StorageType()) {
		return nil, xerrors.Errorf("invalid storage type for ExtStructType: %s", storage)
	}
	return NewExtStructType(), nil
}

// WrappedType is an extension backed by another extension, used to check
// classification through chains of extensions.
type WrappedType struct {
	arrow.ExtensionBase
}

func NewWrappedType(inner arrow.ExtensionType) *WrappedType {
	return &WrappedType{ExtensionBase: arrow.ExtensionBase{Storage: inner}}
}

func (w *WrappedType) String() string {
	return "extension<" + w.ExtensionName() + "[" + w.Storage.String() + "]>"
}

func (*WrappedType) ExtensionName() string { return "wrapped" }
func (*WrappedType) Serialize() string     { return "" }

func (w *WrappedType) ExtensionEquals(other arrow.ExtensionType) bool {
	o, ok := other.(*WrappedType)
	return ok && arrow.TypeEqual(w.Storage, o.Storage)
}

func (*WrappedType) Deserialize(storage arrow.DataType, _ string) (arrow.ExtensionType, error) {
	inner, ok := storage.(arrow.ExtensionType)
	if !ok {
		return nil, xerrors.Errorf("wrapped type needs an extension storage, got %s", storage)
	}
	return NewWrappedType(inner), nil
}

var (
	_ arrow.ExtensionType = (*UUIDType)(nil)
	_ arrow.ExtensionType = (*OtherUUIDType)(nil)
	_ arrow.ExtensionType = (*Parametric1Type)(nil)
	_ arrow.ExtensionType = (*Parametric2Type)(nil)
	_ arrow.ExtensionType = (*ExtStructType)(nil)
	_ arrow.ExtensionType = (*WrappedType)(nil)
)
