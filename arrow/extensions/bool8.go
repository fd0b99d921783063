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
)

const ExtensionNameBool8 = "arrow.bool8"

// Bool8Type represents a logical boolean that is stored using 8 bits.
type Bool8Type struct {
	arrow.ExtensionBase
}

func NewBool8Type() *Bool8Type {
	return &Bool8Type{ExtensionBase: arrow.ExtensionBase{Storage: arrow.PrimitiveTypes.Int8}}
}

func (*Bool8Type) Deserialize(storageType arrow.DataType, data string) (arrow.ExtensionType, error) {
	if data != "" {
		return nil, fmt.Errorf("%w: bool8 takes no metadata, found %q", arrow.ErrInvalid, data)
	}
	if !arrow.TypeEqual(storageType, arrow.PrimitiveTypes.Int8) {
		return nil, fmt.Errorf("%w: invalid storage type for Bool8Type: %s", arrow.ErrInvalid, storageType)
	}
	return NewBool8Type(), nil
}

func (*Bool8Type) ExtensionEquals(other arrow.ExtensionType) bool {
	_, ok := other.(*Bool8Type)
	return ok
}

func (*Bool8Type) ExtensionName() string { return ExtensionNameBool8 }
func (*Bool8Type) Serialize() string     { return "" }
func (b *Bool8Type) String() string      { return fmt.Sprintf("extension<%s>", b.ExtensionName()) }

var _ arrow.ExtensionType = (*Bool8Type)(nil)
