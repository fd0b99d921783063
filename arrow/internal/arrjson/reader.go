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
	"bytes"
	"io"

	"github.com/datafuse-extras/arrow2/arrow"
	"github.com/datafuse-extras/arrow2/internal/json"
	"golang.org/x/xerrors"
)

// Reader decodes the schema of an integration JSON document. Record
// batches and dictionaries, if any, are skipped.
type Reader struct {
	schema *arrow.Schema
}

func NewReader(r io.Reader, opts ...Option) (*Reader, error) {
	var raw struct {
		Schema *Schema `json:"schema"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, xerrors.Errorf("arrjson: could not decode JSON document: %w", err)
	}
	if raw.Schema == nil {
		return nil, xerrors.Errorf("arrjson: document has no schema: %w", arrow.ErrInvalid)
	}

	schema, err := schemaFromJSON(*raw.Schema, newConfig(opts...))
	if err != nil {
		return nil, err
	}
	return &Reader{schema: schema}, nil
}

func (r *Reader) Schema() *arrow.Schema { return r.schema }

// DecodeSchema decodes a bare schema object, {"fields": [...]}.
func DecodeSchema(data []byte, opts ...Option) (*arrow.Schema, error) {
	var raw Schema
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, xerrors.Errorf("arrjson: could not decode schema: %w", err)
	}
	return schemaFromJSON(raw, newConfig(opts...))
}
