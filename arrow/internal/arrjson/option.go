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
)

type config struct {
	prefix, indent string
	lookup         func(name string) arrow.ExtensionType
	strict         bool
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		indent: "  ",
		lookup: arrow.GetExtensionType,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// Option is a functional option to configure how schemas are encoded and
// decoded.
type Option func(*config)

// WithIndent sets the prefix and indentation of the written JSON. An empty
// indent produces compact output.
func WithIndent(prefix, indent string) Option {
	return func(cfg *config) {
		cfg.prefix, cfg.indent = prefix, indent
	}
}

// WithExtensionLookup replaces the process-wide extension registry when
// resolving extension names while decoding.
func WithExtensionLookup(lookup func(name string) arrow.ExtensionType) Option {
	return func(cfg *config) {
		cfg.lookup = lookup
	}
}

// WithStrictExtensions makes decoding fail on extension names that cannot
// be resolved, instead of keeping the storage type and its metadata.
func WithStrictExtensions(strict bool) Option {
	return func(cfg *config) {
		cfg.strict = strict
	}
}
