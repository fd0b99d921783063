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

// Package sqlschema derives Arrow schemas from SQLite table declarations
// and query result columns.
//
// Declared column types are mapped through SQLite's type affinity rules,
// refined for a few common declarations: BOOLEAN becomes bool,
// DECIMAL(p, s) and NUMERIC(p, s) become decimal and DATE stays text as
// SQLite stores it.
package sqlschema

import (
	"context"
	"database/sql"
	"reflect"
	"strconv"
	"strings"

	"github.com/datafuse-extras/arrow2/arrow"
	"golang.org/x/xerrors"
	sqlite3 "modernc.org/sqlite/lib"
)

// Column metadata keys, following the Flight SQL column metadata names.
const (
	TypeNameKey  = "ARROW:FLIGHT:SQL:TYPE_NAME"
	TableNameKey = "ARROW:FLIGHT:SQL:TABLE_NAME"
	PrecisionKey = "ARROW:FLIGHT:SQL:PRECISION"
	ScaleKey     = "ARROW:FLIGHT:SQL:SCALE"
)

// sqliteNumeric is the NUMERIC affinity, which has no storage class of
// its own in the sqlite3 constants.
const sqliteNumeric = 0

// affinity returns the storage class a column declared as decl prefers.
func affinity(decl string) int {
	decl = strings.ToUpper(decl)
	switch {
	case strings.Contains(decl, "INT"):
		return sqlite3.SQLITE_INTEGER
	case strings.Contains(decl, "CHAR"), strings.Contains(decl, "CLOB"), strings.Contains(decl, "TEXT"):
		return sqlite3.SQLITE_TEXT
	case decl == "", strings.Contains(decl, "BLOB"):
		return sqlite3.SQLITE_BLOB
	case strings.Contains(decl, "REAL"), strings.Contains(decl, "FLOA"), strings.Contains(decl, "DOUB"):
		return sqlite3.SQLITE_FLOAT
	}
	return sqliteNumeric
}

func precisionOf(storage int) int {
	switch storage {
	case sqlite3.SQLITE_INTEGER:
		return 10
	case sqlite3.SQLITE_FLOAT:
		return 15
	}
	return 0
}

// ArrowType returns the Arrow type of a column declared as decl.
func ArrowType(decl string) arrow.DataType {
	switch aff := affinity(decl); aff {
	case sqlite3.SQLITE_INTEGER:
		return arrow.PrimitiveTypes.Int64
	case sqlite3.SQLITE_TEXT:
		return arrow.BinaryTypes.String
	case sqlite3.SQLITE_BLOB:
		return arrow.BinaryTypes.Binary
	case sqlite3.SQLITE_FLOAT:
		return arrow.PrimitiveTypes.Float64
	}

	name, params := splitDecl(decl)
	switch name {
	case "BOOL", "BOOLEAN":
		return arrow.FixedWidthTypes.Boolean
	case "DATE":
		return arrow.BinaryTypes.String
	case "DECIMAL", "NUMERIC":
		if len(params) == 2 {
			return &arrow.DecimalType{Precision: params[0], Scale: params[1]}
		}
		if len(params) == 1 {
			return &arrow.DecimalType{Precision: params[0]}
		}
	}
	return arrow.PrimitiveTypes.Float64
}

// splitDecl splits "DECIMAL(10, 2)" into its name and integer parameters.
// Malformed parameter lists are dropped.
func splitDecl(decl string) (string, []int32) {
	decl = strings.ToUpper(strings.TrimSpace(decl))
	open := strings.IndexByte(decl, '(')
	if open < 0 || !strings.HasSuffix(decl, ")") {
		return decl, nil
	}

	name := strings.TrimSpace(decl[:open])
	parts := strings.Split(decl[open+1:len(decl)-1], ",")
	params := make([]int32, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return name, nil
		}
		params[i] = int32(v)
	}
	return name, params
}

func columnMetadata(decl, table string) arrow.Metadata {
	keys := []string{TypeNameKey}
	values := []string{decl}
	if table != "" {
		keys = append(keys, TableNameKey)
		values = append(values, table)
	}
	if p := precisionOf(affinity(decl)); p > 0 {
		keys = append(keys, PrecisionKey)
		values = append(values, strconv.Itoa(p))
	}
	if dec, ok := ArrowType(decl).(*arrow.DecimalType); ok {
		keys = append(keys, PrecisionKey, ScaleKey)
		values = append(values, strconv.Itoa(int(dec.Precision)), strconv.Itoa(int(dec.Scale)))
	}
	return arrow.NewMetadata(keys, values)
}

const tableInfoQuery = `SELECT name, type, [notnull] FROM pragma_table_info(?)`

// FromTable returns the schema of table as declared in db's catalog.
// Columns declared NOT NULL are not nullable. An unknown table returns an
// error wrapping arrow.ErrNotFound.
func FromTable(ctx context.Context, db *sql.DB, table string) (*arrow.Schema, error) {
	rows, err := db.QueryContext(ctx, tableInfoQuery, table)
	if err != nil {
		return nil, xerrors.Errorf("sqlschema: table info of %q: %w", table, err)
	}
	defer rows.Close()

	var fields []arrow.Field
	for rows.Next() {
		var (
			name, decl string
			notNull    int
		)
		if err := rows.Scan(&name, &decl, &notNull); err != nil {
			return nil, xerrors.Errorf("sqlschema: table info of %q: %w", table, err)
		}
		fields = append(fields, arrow.Field{
			Name:     name,
			Type:     ArrowType(decl),
			Nullable: notNull == 0,
			Metadata: columnMetadata(decl, table),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, xerrors.Errorf("sqlschema: table info of %q: %w", table, err)
	}
	if len(fields) == 0 {
		return nil, xerrors.Errorf("sqlschema: no such table %q: %w", table, arrow.ErrNotFound)
	}
	return arrow.NewSchema(fields, nil), nil
}

// FromColumnTypes returns the schema of a query result. Columns computed
// by expressions carry no declared type; their type follows the driver's
// scan type instead.
func FromColumnTypes(cols []*sql.ColumnType) *arrow.Schema {
	fields := make([]arrow.Field, len(cols))
	for i, c := range cols {
		nullable, ok := c.Nullable()
		decl := c.DatabaseTypeName()
		fields[i] = arrow.Field{
			Name:     c.Name(),
			Type:     columnType(decl, c.ScanType()),
			Nullable: nullable || !ok,
			Metadata: columnMetadata(decl, ""),
		}
	}
	return arrow.NewSchema(fields, nil)
}

func columnType(decl string, scan reflect.Type) arrow.DataType {
	if decl == "" && scan != nil {
		switch scan.Kind() {
		case reflect.Int, reflect.Int64, reflect.Uint64:
			return arrow.PrimitiveTypes.Int64
		case reflect.Float32, reflect.Float64:
			return arrow.PrimitiveTypes.Float64
		case reflect.String:
			return arrow.BinaryTypes.String
		case reflect.Bool:
			return arrow.FixedWidthTypes.Boolean
		}
	}
	return ArrowType(decl)
}
