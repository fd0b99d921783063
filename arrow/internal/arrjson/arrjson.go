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

// Package arrjson encodes and decodes Arrow schemas to and from the JSON
// format of the Arrow integration tests.
package arrjson

import (
	"strconv"

	"github.com/datafuse-extras/arrow2/arrow"
	"github.com/datafuse-extras/arrow2/internal/json"
	"golang.org/x/xerrors"
)

const (
	extensionNameKey     = "ARROW:extension:name"
	extensionMetadataKey = "ARROW:extension:metadata"
)

type Schema struct {
	Fields   []Field  `json:"fields"`
	Metadata []metaKV `json:"metadata,omitempty"`
}

type Field struct {
	Name       string    `json:"name"`
	Type       dataType  `json:"type"`
	Nullable   bool      `json:"nullable"`
	Children   []Field   `json:"children"`
	Dictionary *dictInfo `json:"dictionary,omitempty"`
	Metadata   []metaKV  `json:"metadata,omitempty"`
}

type dictInfo struct {
	ID        int64    `json:"id"`
	Index     dataType `json:"indexType"`
	IsOrdered bool     `json:"isOrdered"`
}

type metaKV struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type dataType struct {
	Name      string          `json:"name"`
	Signed    bool            `json:"isSigned,omitempty"`
	BitWidth  int             `json:"bitWidth,omitempty"`
	Precision json.RawMessage `json:"precision,omitempty"`
	Scale     int32           `json:"scale,omitempty"`
	ByteWidth int             `json:"byteWidth,omitempty"`
	ListSize  int32           `json:"listSize,omitempty"`
	Unit      string          `json:"unit,omitempty"`
	TimeZone  string          `json:"timezone,omitempty"`
	Mode      string          `json:"mode,omitempty"`
	TypeIDs   *[]int32        `json:"typeIds,omitempty"`
}

func floatPrecision(p string) json.RawMessage { return json.RawMessage(strconv.Quote(p)) }

var timeUnits = [...]string{
	arrow.Second:      "SECOND",
	arrow.Millisecond: "MILLISECOND",
	arrow.Microsecond: "MICROSECOND",
	arrow.Nanosecond:  "NANOSECOND",
}

func unitToJSON(u arrow.TimeUnit) (string, error) {
	if u < 0 || int(u) >= len(timeUnits) {
		return "", xerrors.Errorf("arrjson: unknown time unit %d: %w", u, arrow.ErrInvalid)
	}
	return timeUnits[u], nil
}

func unitFromJSON(s string) (arrow.TimeUnit, error) {
	for u, name := range timeUnits {
		if name == s {
			return arrow.TimeUnit(u), nil
		}
	}
	return 0, xerrors.Errorf("arrjson: unknown time unit %q: %w", s, arrow.ErrInvalid)
}

func metadataToJSON(md arrow.Metadata) []metaKV {
	if md.Len() == 0 {
		return nil
	}
	kvs := make([]metaKV, md.Len())
	for i, k := range md.Keys() {
		kvs[i] = metaKV{Key: k, Value: md.Values()[i]}
	}
	return kvs
}

func metadataFromJSON(kvs []metaKV) arrow.Metadata {
	if len(kvs) == 0 {
		return arrow.Metadata{}
	}
	keys := make([]string, len(kvs))
	values := make([]string, len(kvs))
	for i, kv := range kvs {
		keys[i], values[i] = kv.Key, kv.Value
	}
	return arrow.NewMetadata(keys, values)
}

func dtypeToJSON(dt arrow.DataType) (dataType, error) {
	switch dt := dt.(type) {
	case *arrow.NullType:
		return dataType{Name: "null"}, nil
	case *arrow.BooleanType:
		return dataType{Name: "bool"}, nil
	case *arrow.Int8Type:
		return dataType{Name: "int", Signed: true, BitWidth: 8}, nil
	case *arrow.Int16Type:
		return dataType{Name: "int", Signed: true, BitWidth: 16}, nil
	case *arrow.Int32Type:
		return dataType{Name: "int", Signed: true, BitWidth: 32}, nil
	case *arrow.Int64Type:
		return dataType{Name: "int", Signed: true, BitWidth: 64}, nil
	case *arrow.Uint8Type:
		return dataType{Name: "int", BitWidth: 8}, nil
	case *arrow.Uint16Type:
		return dataType{Name: "int", BitWidth: 16}, nil
	case *arrow.Uint32Type:
		return dataType{Name: "int", BitWidth: 32}, nil
	case *arrow.Uint64Type:
		return dataType{Name: "int", BitWidth: 64}, nil
	case *arrow.Float16Type:
		return dataType{Name: "floatingpoint", Precision: floatPrecision("HALF")}, nil
	case *arrow.Float32Type:
		return dataType{Name: "floatingpoint", Precision: floatPrecision("SINGLE")}, nil
	case *arrow.Float64Type:
		return dataType{Name: "floatingpoint", Precision: floatPrecision("DOUBLE")}, nil
	case *arrow.BinaryType:
		return dataType{Name: "binary"}, nil
	case *arrow.LargeBinaryType:
		return dataType{Name: "largebinary"}, nil
	case *arrow.StringType:
		return dataType{Name: "utf8"}, nil
	case *arrow.LargeStringType:
		return dataType{Name: "largeutf8"}, nil
	case *arrow.Date32Type:
		return dataType{Name: "date", Unit: "DAY"}, nil
	case *arrow.Date64Type:
		return dataType{Name: "date", Unit: "MILLISECOND"}, nil
	case *arrow.Time32Type:
		unit, err := unitToJSON(dt.Unit)
		return dataType{Name: "time", Unit: unit, BitWidth: dt.BitWidth()}, err
	case *arrow.Time64Type:
		unit, err := unitToJSON(dt.Unit)
		return dataType{Name: "time", Unit: unit, BitWidth: dt.BitWidth()}, err
	case *arrow.TimestampType:
		unit, err := unitToJSON(dt.Unit)
		return dataType{Name: "timestamp", Unit: unit, TimeZone: dt.TimeZone}, err
	case *arrow.DurationType:
		unit, err := unitToJSON(dt.Unit)
		return dataType{Name: "duration", Unit: unit}, err
	case *arrow.IntervalType:
		switch dt.Unit {
		case arrow.YearMonth:
			return dataType{Name: "interval", Unit: "YEAR_MONTH"}, nil
		case arrow.DayTime:
			return dataType{Name: "interval", Unit: "DAY_TIME"}, nil
		}
	case *arrow.DecimalType:
		return dataType{
			Name:      "decimal",
			BitWidth:  dt.BitWidth(),
			Precision: json.RawMessage(strconv.Itoa(int(dt.Precision))),
			Scale:     dt.Scale,
		}, nil
	case *arrow.FixedSizeBinaryType:
		return dataType{Name: "fixedsizebinary", ByteWidth: dt.ByteWidth}, nil
	case *arrow.ListType:
		return dataType{Name: "list"}, nil
	case *arrow.LargeListType:
		return dataType{Name: "largelist"}, nil
	case *arrow.FixedSizeListType:
		return dataType{Name: "fixedsizelist", ListSize: dt.Len()}, nil
	case *arrow.StructType:
		return dataType{Name: "struct"}, nil
	case *arrow.UnionType:
		out := dataType{Name: "union", Mode: "SPARSE"}
		if dt.Mode() == arrow.DenseMode {
			out.Mode = "DENSE"
		}
		if codes, ok := dt.TypeCodes(); ok {
			out.TypeIDs = &codes
		}
		return out, nil
	}
	return dataType{}, xerrors.Errorf("arrjson: unsupported data type %v: %w", dt, arrow.ErrNotImplemented)
}

func dtypeFromJSON(dt dataType, children []arrow.Field) (arrow.DataType, error) {
	switch dt.Name {
	case "null":
		return arrow.Null, nil
	case "bool":
		return arrow.FixedWidthTypes.Boolean, nil
	case "int":
		switch {
		case dt.Signed && dt.BitWidth == 8:
			return arrow.PrimitiveTypes.Int8, nil
		case dt.Signed && dt.BitWidth == 16:
			return arrow.PrimitiveTypes.Int16, nil
		case dt.Signed && dt.BitWidth == 32:
			return arrow.PrimitiveTypes.Int32, nil
		case dt.Signed && dt.BitWidth == 64:
			return arrow.PrimitiveTypes.Int64, nil
		case dt.BitWidth == 8:
			return arrow.PrimitiveTypes.Uint8, nil
		case dt.BitWidth == 16:
			return arrow.PrimitiveTypes.Uint16, nil
		case dt.BitWidth == 32:
			return arrow.PrimitiveTypes.Uint32, nil
		case dt.BitWidth == 64:
			return arrow.PrimitiveTypes.Uint64, nil
		}
	case "floatingpoint":
		var precision string
		if err := json.Unmarshal(dt.Precision, &precision); err != nil {
			return nil, xerrors.Errorf("arrjson: invalid floating point precision %s: %w", dt.Precision, arrow.ErrInvalid)
		}
		switch precision {
		case "HALF":
			return arrow.FixedWidthTypes.Float16, nil
		case "SINGLE":
			return arrow.PrimitiveTypes.Float32, nil
		case "DOUBLE":
			return arrow.PrimitiveTypes.Float64, nil
		}
	case "binary":
		return arrow.BinaryTypes.Binary, nil
	case "largebinary":
		return arrow.BinaryTypes.LargeBinary, nil
	case "utf8":
		return arrow.BinaryTypes.String, nil
	case "largeutf8":
		return arrow.BinaryTypes.LargeString, nil
	case "date":
		switch dt.Unit {
		case "DAY":
			return arrow.FixedWidthTypes.Date32, nil
		case "MILLISECOND":
			return arrow.FixedWidthTypes.Date64, nil
		}
	case "time":
		unit, err := unitFromJSON(dt.Unit)
		if err != nil {
			return nil, err
		}
		switch dt.BitWidth {
		case 32:
			return &arrow.Time32Type{Unit: unit}, nil
		case 64:
			return &arrow.Time64Type{Unit: unit}, nil
		}
	case "timestamp":
		unit, err := unitFromJSON(dt.Unit)
		if err != nil {
			return nil, err
		}
		return &arrow.TimestampType{Unit: unit, TimeZone: dt.TimeZone}, nil
	case "duration":
		unit, err := unitFromJSON(dt.Unit)
		if err != nil {
			return nil, err
		}
		return &arrow.DurationType{Unit: unit}, nil
	case "interval":
		switch dt.Unit {
		case "YEAR_MONTH":
			return &arrow.IntervalType{Unit: arrow.YearMonth}, nil
		case "DAY_TIME":
			return &arrow.IntervalType{Unit: arrow.DayTime}, nil
		}
	case "decimal":
		var precision int32
		if err := json.Unmarshal(dt.Precision, &precision); err != nil {
			return nil, xerrors.Errorf("arrjson: invalid decimal precision %s: %w", dt.Precision, arrow.ErrInvalid)
		}
		if dt.BitWidth != 0 && dt.BitWidth != 128 {
			return nil, xerrors.Errorf("arrjson: %d-bit decimals: %w", dt.BitWidth, arrow.ErrNotImplemented)
		}
		return &arrow.DecimalType{Precision: precision, Scale: dt.Scale}, nil
	case "fixedsizebinary":
		return &arrow.FixedSizeBinaryType{ByteWidth: dt.ByteWidth}, nil
	case "list", "largelist", "fixedsizelist":
		if len(children) != 1 {
			return nil, xerrors.Errorf("arrjson: %s needs exactly one child, got %d: %w", dt.Name, len(children), arrow.ErrInvalid)
		}
		switch dt.Name {
		case "list":
			return arrow.ListOfField(children[0]), nil
		case "largelist":
			return arrow.LargeListOfField(children[0]), nil
		default:
			return arrow.FixedSizeListOfField(dt.ListSize, children[0]), nil
		}
	case "struct":
		return arrow.StructOf(children...), nil
	case "union":
		var codes []int32
		if dt.TypeIDs != nil {
			codes = append([]int32{}, *dt.TypeIDs...)
		}
		switch dt.Mode {
		case "SPARSE":
			return arrow.SparseUnionOf(children, codes), nil
		case "DENSE":
			return arrow.DenseUnionOf(children, codes), nil
		}
	}
	return nil, xerrors.Errorf("arrjson: unknown data type %q: %w", dt.Name, arrow.ErrInvalid)
}
