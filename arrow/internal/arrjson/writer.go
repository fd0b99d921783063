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
	"io"

	"github.com/datafuse-extras/arrow2/arrow"
	"github.com/datafuse-extras/arrow2/internal/json"
)

type rawJSON struct {
	Schema Schema `json:"schema"`
}

// Writer writes a schema as an integration JSON document once closed.
type Writer struct {
	w   io.Writer
	cfg *config
	raw rawJSON
}

func NewWriter(w io.Writer, schema *arrow.Schema, opts ...Option) (*Writer, error) {
	js, err := schemaToJSON(schema)
	if err != nil {
		return nil, err
	}
	return &Writer{w: w, cfg: newConfig(opts...), raw: rawJSON{Schema: js}}, nil
}

func (w *Writer) Close() error {
	if w.w == nil {
		return nil
	}

	enc := json.NewEncoder(w.w)
	enc.SetIndent(w.cfg.prefix, w.cfg.indent)
	// type names such as fixed_size_list<...> end up in metadata values,
	// keep them readable.
	enc.SetEscapeHTML(false)
	err := enc.Encode(w.raw)
	w.w = nil
	return err
}

// EncodeSchema returns the bare schema object, {"fields": [...]}.
func EncodeSchema(schema *arrow.Schema, opts ...Option) ([]byte, error) {
	js, err := schemaToJSON(schema)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	if cfg.indent == "" && cfg.prefix == "" {
		return json.Marshal(js)
	}
	return json.MarshalIndent(js, cfg.prefix, cfg.indent)
}
