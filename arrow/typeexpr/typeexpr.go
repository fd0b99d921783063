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

// Package typeexpr parses textual data type expressions such as
// "list<item: int32 not null>" or "timestamp[ms, tz=UTC]" into
// arrow.DataType values.
//
// The accepted forms are:
//
//	null bool int8 int16 int32 int64 uint8 uint16 uint32 uint64
//	float16 float32 float64 utf8 large_utf8 binary large_binary
//	date32 date64
//	timestamp[unit] timestamp[unit, tz=ZONE]
//	time32[unit] time64[unit] duration[unit]
//	interval[year_month] interval[day_time]
//	fixed_size_binary[n] decimal(precision, scale)
//	list<field> large_list<field> fixed_size_list<field>[n]
//	struct<field, ...>
//	sparse_union<field, ...>[code, ...] dense_union<field, ...>[code, ...]
//	dictionary<values=type, indices=type>
//	extension<name>
//
// where unit is one of s, ms, us or ns and a field is written
// "name: type", optionally followed by "not null". A field without a name
// is called "item"; fields are nullable unless marked otherwise. The
// element of a list may also carry a trailing ", nullable" as printed by
// the list types' String methods. The type code list of a union is
// optional. Time zones are identifiers such as Europe/Paris or offsets
// such as +07:30; names and zones that are neither can be double-quoted.
//
// The String form of a type parses back to an equal type, provided it
// holds no extension types, field metadata or field names that need
// quoting.
package typeexpr

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/datafuse-extras/arrow2/arrow"
	"golang.org/x/xerrors"
)

var exprLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
		{Name: "Offset", Pattern: `[+-][0-9]{2}:[0-9]{2}`},
		{Name: "Int", Pattern: `[0-9]+`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_./\-]*`},
		{Name: "Punct", Pattern: `[<>\[\](),:=]`},
	},
})

type typeNode struct {
	Pos lexer.Position

	Name     string       `parser:"@Ident"`
	Angle    bool         `parser:"( @\"<\""`
	Children []*fieldNode `parser:"  ( @@ ( \",\" @@ )* )? \">\" )?"`
	Bracket  bool         `parser:"( @\"[\""`
	Args     []*argNode   `parser:"  ( @@ ( \",\" @@ )* )? \"]\" )?"`
	Params   []int        `parser:"( \"(\" @Int ( \",\" @Int )* \")\" )?"`
}

type fieldNode struct {
	Pos lexer.Position

	Name    string    `parser:"( @( Ident | String )"`
	Sep     string    `parser:"  @( \":\" | \"=\" ) )?"`
	Type    *typeNode `parser:"@@"`
	NotNull bool      `parser:"@( \"not\" \"null\" )?"`
}

type argNode struct {
	Pos lexer.Position

	Key   string `parser:"( @Ident \"=\" )?"`
	Value string `parser:"@( Ident | Int | String | Offset )"`
}

var parser = participle.MustBuild[typeNode](
	participle.Lexer(exprLexer),
	participle.Elide("Whitespace"),
	participle.Unquote("String"),
	participle.UseLookahead(2),
)

// Parse returns the data type described by expr.
//
// Syntax errors and semantic errors, such as an unknown type name or a
// malformed parameter list, wrap arrow.ErrInvalid. Naming an extension
// that is not registered wraps arrow.ErrNotFound.
func Parse(expr string) (arrow.DataType, error) {
	node, err := parser.ParseString("", expr)
	if err != nil {
		return nil, xerrors.Errorf("typeexpr: %v: %w", err, arrow.ErrInvalid)
	}
	return build(node)
}

// MustParse is like Parse but panics if expr cannot be parsed.
func MustParse(expr string) arrow.DataType {
	dt, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return dt
}
