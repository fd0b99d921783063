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

package typeexpr

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/datafuse-extras/arrow2/arrow"
	"golang.org/x/xerrors"
)

var simpleTypes = map[string]arrow.DataType{
	"null":         arrow.Null,
	"bool":         arrow.FixedWidthTypes.Boolean,
	"int8":         arrow.PrimitiveTypes.Int8,
	"int16":        arrow.PrimitiveTypes.Int16,
	"int32":        arrow.PrimitiveTypes.Int32,
	"int64":        arrow.PrimitiveTypes.Int64,
	"uint8":        arrow.PrimitiveTypes.Uint8,
	"uint16":       arrow.PrimitiveTypes.Uint16,
	"uint32":       arrow.PrimitiveTypes.Uint32,
	"uint64":       arrow.PrimitiveTypes.Uint64,
	"float16":      arrow.FixedWidthTypes.Float16,
	"float32":      arrow.PrimitiveTypes.Float32,
	"float64":      arrow.PrimitiveTypes.Float64,
	"utf8":         arrow.BinaryTypes.String,
	"large_utf8":   arrow.BinaryTypes.LargeString,
	"binary":       arrow.BinaryTypes.Binary,
	"large_binary": arrow.BinaryTypes.LargeBinary,
	"date32":       arrow.FixedWidthTypes.Date32,
	"date64":       arrow.FixedWidthTypes.Date64,
}

var timeUnits = map[string]arrow.TimeUnit{
	"s":  arrow.Second,
	"ms": arrow.Millisecond,
	"us": arrow.Microsecond,
	"ns": arrow.Nanosecond,
}

func errorf(pos lexer.Position, format string, args ...interface{}) error {
	return xerrors.Errorf("typeexpr: %s: %s: %w", pos, fmt.Sprintf(format, args...), arrow.ErrInvalid)
}

func build(n *typeNode) (arrow.DataType, error) {
	if dt, ok := simpleTypes[n.Name]; ok {
		if n.Angle || n.Bracket || len(n.Params) > 0 {
			return nil, errorf(n.Pos, "%s takes no parameters", n.Name)
		}
		return dt, nil
	}

	switch n.Name {
	case "timestamp":
		if n.Angle || len(n.Params) > 0 || len(n.Args) < 1 || len(n.Args) > 2 {
			return nil, errorf(n.Pos, "expected timestamp[unit] or timestamp[unit, tz=ZONE]")
		}
		unit, err := unitArg(n.Args[0])
		if err != nil {
			return nil, err
		}
		ts := &arrow.TimestampType{Unit: unit}
		if len(n.Args) == 2 {
			if n.Args[1].Key != "tz" {
				return nil, errorf(n.Args[1].Pos, "expected tz=ZONE")
			}
			ts.TimeZone = n.Args[1].Value
		}
		return ts, nil
	case "time32", "time64", "duration":
		if n.Angle || len(n.Params) > 0 || len(n.Args) != 1 {
			return nil, errorf(n.Pos, "expected %s[unit]", n.Name)
		}
		unit, err := unitArg(n.Args[0])
		if err != nil {
			return nil, err
		}
		switch n.Name {
		case "time32":
			if unit != arrow.Second && unit != arrow.Millisecond {
				return nil, errorf(n.Args[0].Pos, "time32 unit must be s or ms, got %s", unit)
			}
			return &arrow.Time32Type{Unit: unit}, nil
		case "time64":
			if unit != arrow.Microsecond && unit != arrow.Nanosecond {
				return nil, errorf(n.Args[0].Pos, "time64 unit must be us or ns, got %s", unit)
			}
			return &arrow.Time64Type{Unit: unit}, nil
		default:
			return &arrow.DurationType{Unit: unit}, nil
		}
	case "interval":
		if n.Angle || len(n.Params) > 0 || len(n.Args) != 1 || n.Args[0].Key != "" {
			return nil, errorf(n.Pos, "expected interval[year_month] or interval[day_time]")
		}
		switch n.Args[0].Value {
		case "year_month":
			return arrow.FixedWidthTypes.YearMonthInterval, nil
		case "day_time":
			return arrow.FixedWidthTypes.DayTimeInterval, nil
		}
		return nil, errorf(n.Args[0].Pos, "unknown interval unit %q", n.Args[0].Value)
	case "fixed_size_binary":
		if n.Angle || len(n.Params) > 0 || len(n.Args) != 1 {
			return nil, errorf(n.Pos, "expected fixed_size_binary[n]")
		}
		width, err := intArg(n.Args[0])
		if err != nil {
			return nil, err
		}
		return &arrow.FixedSizeBinaryType{ByteWidth: int(width)}, nil
	case "decimal":
		if n.Angle || n.Bracket || len(n.Params) != 2 {
			return nil, errorf(n.Pos, "expected decimal(precision, scale)")
		}
		return &arrow.DecimalType{Precision: int32(n.Params[0]), Scale: int32(n.Params[1])}, nil
	case "list", "large_list", "fixed_size_list":
		children := n.Children
		marked := len(children) == 2 && isNullableMarker(children[1])
		if marked {
			children = children[:1]
		}
		if len(children) != 1 || len(n.Params) > 0 {
			return nil, errorf(n.Pos, "%s needs exactly one element field", n.Name)
		}
		elem, err := buildField(children[0])
		if err != nil {
			return nil, err
		}
		if marked && !elem.Nullable {
			return nil, errorf(n.Children[1].Pos, "element is both not null and nullable")
		}
		switch n.Name {
		case "list":
			if n.Bracket {
				return nil, errorf(n.Pos, "list takes no size")
			}
			return arrow.ListOfField(elem), nil
		case "large_list":
			if n.Bracket {
				return nil, errorf(n.Pos, "large_list takes no size")
			}
			return arrow.LargeListOfField(elem), nil
		default:
			if len(n.Args) != 1 {
				return nil, errorf(n.Pos, "expected fixed_size_list<field>[n]")
			}
			size, err := intArg(n.Args[0])
			if err != nil {
				return nil, err
			}
			return arrow.FixedSizeListOfField(size, elem), nil
		}
	case "struct":
		if n.Bracket || len(n.Params) > 0 {
			return nil, errorf(n.Pos, "expected struct<field, ...>")
		}
		fields, err := buildFields(n.Children)
		if err != nil {
			return nil, err
		}
		return arrow.StructOf(fields...), nil
	case "sparse_union", "dense_union":
		if len(n.Params) > 0 {
			return nil, errorf(n.Pos, "expected %s<field, ...>[code, ...]", n.Name)
		}
		fields, err := buildFields(n.Children)
		if err != nil {
			return nil, err
		}
		var codes []int32
		if n.Bracket {
			codes = make([]int32, len(n.Args))
			for i, a := range n.Args {
				if codes[i], err = intArg(a); err != nil {
					return nil, err
				}
			}
		}
		if n.Name == "sparse_union" {
			return arrow.SparseUnionOf(fields, codes), nil
		}
		return arrow.DenseUnionOf(fields, codes), nil
	case "dictionary":
		return buildDictionary(n)
	case "extension":
		if n.Bracket || len(n.Params) > 0 || len(n.Children) != 1 {
			return nil, errorf(n.Pos, "expected extension<name>")
		}
		c := n.Children[0]
		if c.Sep != "" || c.NotNull || c.Type.Angle || c.Type.Bracket || len(c.Type.Params) > 0 {
			return nil, errorf(c.Pos, "expected an extension name")
		}
		ext := arrow.GetExtensionType(c.Type.Name)
		if ext == nil {
			return nil, xerrors.Errorf("typeexpr: %s: extension %q: %w", c.Pos, c.Type.Name, arrow.ErrNotFound)
		}
		return ext, nil
	}
	return nil, errorf(n.Pos, "unknown data type %q", n.Name)
}

func buildDictionary(n *typeNode) (arrow.DataType, error) {
	if n.Bracket || len(n.Params) > 0 || len(n.Children) != 2 {
		return nil, errorf(n.Pos, "expected dictionary<values=type, indices=type>")
	}
	var values, indices arrow.DataType
	for _, c := range n.Children {
		if c.Sep != "=" || c.NotNull {
			return nil, errorf(c.Pos, "expected values=type or indices=type")
		}
		dt, err := build(c.Type)
		if err != nil {
			return nil, err
		}
		switch c.Name {
		case "values":
			values = dt
		case "indices":
			indices = dt
		default:
			return nil, errorf(c.Pos, "unknown dictionary parameter %q", c.Name)
		}
	}
	if values == nil || indices == nil {
		return nil, errorf(n.Pos, "dictionary needs both values and indices")
	}
	switch indices.ID() {
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64:
	default:
		return nil, errorf(n.Pos, "dictionary indices must be an integer type, got %s", indices)
	}
	return arrow.DictionaryOf(indices, values), nil
}

func buildFields(nodes []*fieldNode) ([]arrow.Field, error) {
	fields := make([]arrow.Field, len(nodes))
	for i, c := range nodes {
		f, err := buildField(c)
		if err != nil {
			return nil, err
		}
		fields[i] = f
	}
	return fields, nil
}

func buildField(n *fieldNode) (arrow.Field, error) {
	if n.Sep == "=" {
		return arrow.Field{}, errorf(n.Pos, "expected name: type, got %s=", n.Name)
	}
	dt, err := build(n.Type)
	if err != nil {
		return arrow.Field{}, err
	}
	name := n.Name
	if n.Sep == "" {
		name = "item"
	}
	return arrow.Field{Name: name, Type: dt, Nullable: !n.NotNull}, nil
}

// isNullableMarker reports whether n is the bare "nullable" that follows
// the element of a printed list type.
func isNullableMarker(n *fieldNode) bool {
	t := n.Type
	return n.Sep == "" && !n.NotNull && t.Name == "nullable" &&
		!t.Angle && !t.Bracket && len(t.Params) == 0
}

func unitArg(a *argNode) (arrow.TimeUnit, error) {
	unit, ok := timeUnits[a.Value]
	if !ok || a.Key != "" {
		return 0, errorf(a.Pos, "unknown time unit %q", a.Value)
	}
	return unit, nil
}

func intArg(a *argNode) (int32, error) {
	v, err := strconv.ParseInt(a.Value, 10, 32)
	if err != nil || a.Key != "" {
		return 0, errorf(a.Pos, "expected an integer, got %q", a.Value)
	}
	return int32(v), nil
}
