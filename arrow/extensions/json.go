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
	"github.com/datafuse-extras/arrow2/internal/json"
	"golang.org/x/exp/slices"
)

const ExtensionNameJSON = "arrow.json"

var jsonSupportedStorageTypes = []arrow.Type{
	arrow.STRING,
	arrow.LARGE_STRING,
}

// JSONType represents a UTF-8 encoded JSON string as specified in RFC8259.
type JSONType struct {
	arrow.ExtensionBase
}

// NewJSONType creates a new JSONType with the specified storage type.
// storageType must be one of String, LargeString.
func NewJSONType(storageType arrow.DataType) (*JSONType, error) {
	if storageType == nil || !slices.Contains(jsonSupportedStorageTypes, storageType.ID()) {
		return nil, fmt.Errorf("%w: unsupported storage type for JSON extension type: %v", arrow.ErrInvalid, storageType)
	}
	return &JSONType{ExtensionBase: arrow.ExtensionBase{Storage: storageType}}, nil
}

// Deserialize accepts either no metadata or an empty JSON object.
func (*JSONType) Deserialize(storageType arrow.DataType, data string) (arrow.ExtensionType, error) {
	if data != "" {
		var params map[string]interface{}
		if err := json.Unmarshal([]byte(data), &params); err != nil || len(params) != 0 {
			return nil, fmt.Errorf("%w: serialized metadata for JSON extension type must be '' or '{}', found: %s",
				arrow.ErrInvalid, data)
		}
	}
	return NewJSONType(storageType)
}

// ExtensionEquals requires another *JSONType over the same storage.
func (b *JSONType) ExtensionEquals(other arrow.ExtensionType) bool {
	o, ok := other.(*JSONType)
	return ok && arrow.TypeEqual(b.Storage, o.Storage)
}

func (*JSONType) ExtensionName() string { return ExtensionNameJSON }

func (*JSONType) Serialize() string { return "" }

func (b *JSONType) String() string {
	return fmt.Sprintf("extension<%s[storage_type=%s]>", b.ExtensionName(), b.Storage)
}

var _ arrow.ExtensionType = (*JSONType)(nil)
