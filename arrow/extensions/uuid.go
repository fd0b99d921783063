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

package extensions

import (
	"fmt"

	"github.com/datafuse-extras/arrow2/arrow"
	"github.com/google/uuid"
)

const ExtensionNameUUID = "arrow.uuid"

// UUIDType is a simple extension type that represents a FixedSizeBinary(16)
// to be used for representing UUIDs
type UUIDType struct {
	arrow.ExtensionBase
}

// NewUUIDType is a convenience function to create an instance of UUIDType
// with the correct storage type
func NewUUIDType() *UUIDType {
	return &UUIDType{ExtensionBase: arrow.ExtensionBase{Storage: uuidStorage()}}
}

func uuidStorage() *arrow.FixedSizeBinaryType {
	return &arrow.FixedSizeBinaryType{ByteWidth: len(uuid.Nil)}
}

func (*UUIDType) ExtensionName() string { return ExtensionNameUUID }

func (e *UUIDType) String() string { return fmt.Sprintf("extension<%s>", e.ExtensionName()) }

func (*UUIDType) Serialize() string { return "" }

// Deserialize expects a fixed_size_binary[16] storage and no metadata.
func (*UUIDType) Deserialize(storageType arrow.DataType, data string) (arrow.ExtensionType, error) {
	if data != "" {
		return nil, fmt.Errorf("%w: uuid takes no metadata, found %q", arrow.ErrInvalid, data)
	}
	if !arrow.TypeEqual(storageType, uuidStorage()) {
		return nil, fmt.Errorf("%w: invalid storage type for UUIDType: %s", arrow.ErrInvalid, storageType)
	}
	return NewUUIDType(), nil
}

// ExtensionEquals only accepts another *UUIDType.
func (*UUIDType) ExtensionEquals(other arrow.ExtensionType) bool {
	_, ok := other.(*UUIDType)
	return ok
}

var _ arrow.ExtensionType = (*UUIDType)(nil)
