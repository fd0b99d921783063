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

package arrow

import (
	"reflect"

	"golang.org/x/exp/slices"
)

// TypeEqual reports whether left and right are exactly the same logical
// type, parameters, nested field names, nullability and metadata included.
//
// A nil type is never equal to anything, not even to another nil.
func TypeEqual(left, right DataType) bool {
	switch {
	case left == nil || right == nil:
		return false
	case left.ID() != right.ID():
		return false
	}

	switch l := left.(type) {
	case ExtensionType:
		r, ok := right.(ExtensionType)
		return ok && l.ExtensionEquals(r)
	case *TimestampType:
		r, ok := right.(*TimestampType)
		return ok && l.Unit == r.Unit && l.TimeZone == r.TimeZone
	case *Time32Type:
		r, ok := right.(*Time32Type)
		return ok && l.Unit == r.Unit
	case *Time64Type:
		r, ok := right.(*Time64Type)
		return ok && l.Unit == r.Unit
	case *DurationType:
		r, ok := right.(*DurationType)
		return ok && l.Unit == r.Unit
	case *IntervalType:
		r, ok := right.(*IntervalType)
		return ok && l.Unit == r.Unit
	case *FixedSizeBinaryType:
		r, ok := right.(*FixedSizeBinaryType)
		return ok && l.ByteWidth == r.ByteWidth
	case *DecimalType:
		r, ok := right.(*DecimalType)
		return ok && l.Precision == r.Precision && l.Scale == r.Scale
	case *ListType:
		r, ok := right.(*ListType)
		return ok && l.elem.Equal(r.elem)
	case *LargeListType:
		r, ok := right.(*LargeListType)
		return ok && l.elem.Equal(r.elem)
	case *FixedSizeListType:
		r, ok := right.(*FixedSizeListType)
		return ok && l.n == r.n && l.elem.Equal(r.elem)
	case *StructType:
		r, ok := right.(*StructType)
		return ok && fieldsEqual(l.fields, r.fields)
	case *UnionType:
		r, ok := right.(*UnionType)
		switch {
		case !ok:
			return false
		case l.mode != r.mode:
			return false
		case l.explicit != r.explicit:
			return false
		case !slices.Equal(l.typeCodes, r.typeCodes):
			return false
		}
		return fieldsEqual(l.fields, r.fields)
	case *DictionaryType:
		r, ok := right.(*DictionaryType)
		return ok && TypeEqual(l.IndexType, r.IndexType) && TypeEqual(l.ValueType, r.ValueType)
	}

	switch id := left.ID(); {
	case id == EXTENSION:
		// an extension id without the ExtensionType methods
		return false
	case hasPayload(id):
		// implementations outside the catalog reporting a parametric id
		if reflect.TypeOf(left) != reflect.TypeOf(right) {
			return false
		}
		fp := left.Fingerprint()
		return fp != "" && fp == right.Fingerprint()
	}
	return true
}

// hasPayload reports whether types with the given id carry parameters or
// children, so that two of them cannot be compared by id alone.
func hasPayload(id Type) bool {
	switch id {
	case TIMESTAMP, TIME32, TIME64, DURATION, INTERVAL, FIXED_SIZE_BINARY,
		DECIMAL, LIST, LARGE_LIST, FIXED_SIZE_LIST, STRUCT, UNION,
		DICTIONARY, EXTENSION:
		return true
	}
	return false
}

func fieldsEqual(left, right []Field) bool {
	if len(left) != len(right) {
		return false
	}
	for i := range left {
		if !left[i].Equal(right[i]) {
			return false
		}
	}
	return true
}

// ShapeEqual reports whether left and right describe the same storage
// shape. Lists, fixed size lists and structs are compared by child
// nullability and child shape, ignoring child field names and metadata.
// Every other pair falls back to TypeEqual, so field names nested inside
// union and dictionary types still matter.
//
// Nesting depth is bounded only by memory: children are walked with an
// explicit stack rather than by recursion.
func ShapeEqual(left, right DataType) bool {
	type pair struct{ l, r DataType }

	stack := []pair{{left, right}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch l := p.l.(type) {
		case *ListType:
			r, ok := p.r.(*ListType)
			if !ok || l.elem.Nullable != r.elem.Nullable {
				return false
			}
			stack = append(stack, pair{l.elem.Type, r.elem.Type})
		case *LargeListType:
			r, ok := p.r.(*LargeListType)
			if !ok || l.elem.Nullable != r.elem.Nullable {
				return false
			}
			stack = append(stack, pair{l.elem.Type, r.elem.Type})
		case *FixedSizeListType:
			r, ok := p.r.(*FixedSizeListType)
			if !ok || l.n != r.n || l.elem.Nullable != r.elem.Nullable {
				return false
			}
			stack = append(stack, pair{l.elem.Type, r.elem.Type})
		case *StructType:
			r, ok := p.r.(*StructType)
			if !ok || len(l.fields) != len(r.fields) {
				return false
			}
			for i := len(l.fields) - 1; i >= 0; i-- {
				if l.fields[i].Nullable != r.fields[i].Nullable {
					return false
				}
				stack = append(stack, pair{l.fields[i].Type, r.fields[i].Type})
			}
		default:
			if !TypeEqual(p.l, p.r) {
				return false
			}
		}
	}
	return true
}
