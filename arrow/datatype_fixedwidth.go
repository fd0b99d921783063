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
	"fmt"
	"strconv"
	"time"
)

type BooleanType struct{}

func (t *BooleanType) ID() Type            { return BOOL }
func (t *BooleanType) Name() string        { return "bool" }
func (t *BooleanType) String() string      { return "bool" }
func (t *BooleanType) Fingerprint() string { return typeFingerprint(t) }

// BitWidth returns the number of bits required to store a single element of this data type in memory.
func (t *BooleanType) BitWidth() int { return 1 }

type FixedSizeBinaryType struct {
	ByteWidth int
}

func (*FixedSizeBinaryType) ID() Type        { return FIXED_SIZE_BINARY }
func (*FixedSizeBinaryType) Name() string    { return "fixed_size_binary" }
func (t *FixedSizeBinaryType) BitWidth() int { return 8 * t.ByteWidth }
func (t *FixedSizeBinaryType) Fingerprint() string {
	return typeFingerprint(t) + "[" + strconv.Itoa(t.ByteWidth) + "]"
}
func (t *FixedSizeBinaryType) String() string {
	return "fixed_size_binary[" + strconv.Itoa(t.ByteWidth) + "]"
}

// TimeUnit is the granularity of timestamps, times of day and durations.
type TimeUnit int

const (
	Nanosecond TimeUnit = iota
	Microsecond
	Millisecond
	Second
)

func (u TimeUnit) Multiplier() time.Duration {
	return [...]time.Duration{time.Nanosecond, time.Microsecond, time.Millisecond, time.Second}[uint(u)&3]
}

func (u TimeUnit) String() string { return [...]string{"ns", "us", "ms", "s"}[uint(u)&3] }

// IntervalUnit is the granularity of a calendar interval.
type IntervalUnit int

const (
	// YearMonth counts elapsed whole months, stored as a 4-byte integer.
	YearMonth IntervalUnit = iota
	// DayTime counts elapsed days and milliseconds, stored as two
	// contiguous 32-bit integers.
	DayTime
)

func (u IntervalUnit) String() string { return [...]string{"year_month", "day_time"}[uint(u)&1] }

type Date32Type struct{}

func (t *Date32Type) ID() Type            { return DATE32 }
func (t *Date32Type) Name() string        { return "date32" }
func (t *Date32Type) String() string      { return "date32" }
func (t *Date32Type) BitWidth() int       { return 32 }
func (t *Date32Type) Fingerprint() string { return typeFingerprint(t) }

type Date64Type struct{}

func (t *Date64Type) ID() Type            { return DATE64 }
func (t *Date64Type) Name() string        { return "date64" }
func (t *Date64Type) String() string      { return "date64" }
func (t *Date64Type) BitWidth() int       { return 64 }
func (t *Date64Type) Fingerprint() string { return typeFingerprint(t) }

// TimestampType is encoded as a 64-bit signed integer since the UNIX epoch (1970-01-01T00:00:00Z).
// The zero-value is a nanosecond and time zone neutral. Time zone neutral can be
// considered UTC without having "UTC" as a time zone.
//
// TimeZone is either a name from the Olson tz database, such as
// "America/New_York", or an absolute offset of the form +XX:XX or -XX:XX.
// An empty TimeZone means the timestamp has no zone.
type TimestampType struct {
	Unit     TimeUnit
	TimeZone string
}

func (*TimestampType) ID() Type     { return TIMESTAMP }
func (*TimestampType) Name() string { return "timestamp" }
func (t *TimestampType) String() string {
	switch len(t.TimeZone) {
	case 0:
		return "timestamp[" + t.Unit.String() + "]"
	default:
		return "timestamp[" + t.Unit.String() + ", tz=" + t.TimeZone + "]"
	}
}

func (t *TimestampType) Fingerprint() string {
	return fmt.Sprintf("%s%d:%s", typeFingerprint(t)+string(timeUnitFingerprint(t.Unit)), len(t.TimeZone), t.TimeZone)
}

// BitWidth returns the number of bits required to store a single element of this data type in memory.
func (*TimestampType) BitWidth() int { return 64 }

// Time32Type is encoded as a 32-bit signed integer, representing either seconds or milliseconds since midnight.
type Time32Type struct {
	Unit TimeUnit
}

func (*Time32Type) ID() Type         { return TIME32 }
func (*Time32Type) Name() string     { return "time32" }
func (*Time32Type) BitWidth() int    { return 32 }
func (t *Time32Type) String() string { return "time32[" + t.Unit.String() + "]" }
func (t *Time32Type) Fingerprint() string {
	return typeFingerprint(t) + string(timeUnitFingerprint(t.Unit))
}

// Time64Type is encoded as a 64-bit signed integer, representing either microseconds or nanoseconds since midnight.
type Time64Type struct {
	Unit TimeUnit
}

func (*Time64Type) ID() Type         { return TIME64 }
func (*Time64Type) Name() string     { return "time64" }
func (*Time64Type) BitWidth() int    { return 64 }
func (t *Time64Type) String() string { return "time64[" + t.Unit.String() + "]" }
func (t *Time64Type) Fingerprint() string {
	return typeFingerprint(t) + string(timeUnitFingerprint(t.Unit))
}

// DurationType is encoded as a 64-bit signed integer, representing an amount
// of elapsed time without any relation to a calendar artifact.
type DurationType struct {
	Unit TimeUnit
}

func (*DurationType) ID() Type         { return DURATION }
func (*DurationType) Name() string     { return "duration" }
func (*DurationType) BitWidth() int    { return 64 }
func (t *DurationType) String() string { return "duration[" + t.Unit.String() + "]" }
func (t *DurationType) Fingerprint() string {
	return typeFingerprint(t) + string(timeUnitFingerprint(t.Unit))
}

// Float16Type represents a floating point value encoded with a 16-bit precision.
type Float16Type struct{}

func (t *Float16Type) ID() Type            { return FLOAT16 }
func (t *Float16Type) Name() string        { return "float16" }
func (t *Float16Type) String() string      { return "float16" }
func (t *Float16Type) Fingerprint() string { return typeFingerprint(t) }

// BitWidth returns the number of bits required to store a single element of this data type in memory.
func (t *Float16Type) BitWidth() int { return 16 }

// DecimalType represents a fixed-size 128-bit decimal type.
//
// Precision is the number of digits in the number and Scale the number
// of decimal places: 999.99 has a precision of 5 and a scale of 2.
// Neither is checked against the bounds of a 128-bit decimal.
type DecimalType struct {
	Precision int32
	Scale     int32
}

func (*DecimalType) ID() Type      { return DECIMAL }
func (*DecimalType) Name() string  { return "decimal" }
func (*DecimalType) BitWidth() int { return 128 }
func (t *DecimalType) String() string {
	return fmt.Sprintf("%s(%d, %d)", t.Name(), t.Precision, t.Scale)
}
func (t *DecimalType) Fingerprint() string {
	return fmt.Sprintf("%s[%d,%d,%d]", typeFingerprint(t), t.BitWidth(), t.Precision, t.Scale)
}

// IntervalType is a "calendar" interval which models types that don't
// necessarily have a precise duration without the context of a base
// timestamp (e.g. days can differ in length during day light savings
// time transitions).
type IntervalType struct {
	Unit IntervalUnit
}

func (*IntervalType) ID() Type     { return INTERVAL }
func (*IntervalType) Name() string { return "interval" }
func (t *IntervalType) String() string {
	return "interval[" + t.Unit.String() + "]"
}
func (t *IntervalType) Fingerprint() string {
	switch t.Unit {
	case DayTime:
		return typeFingerprint(t) + "d"
	default:
		return typeFingerprint(t) + "M"
	}
}

// BitWidth returns the number of bits required to store a single element of this data type in memory.
func (t *IntervalType) BitWidth() int {
	if t.Unit == DayTime {
		return 64
	}
	return 32
}

var (
	FixedWidthTypes = struct {
		Boolean           FixedWidthDataType
		Date32            FixedWidthDataType
		Date64            FixedWidthDataType
		DayTimeInterval   FixedWidthDataType
		Duration_s        FixedWidthDataType
		Duration_ms       FixedWidthDataType
		Duration_us       FixedWidthDataType
		Duration_ns       FixedWidthDataType
		Float16           FixedWidthDataType
		YearMonthInterval FixedWidthDataType
		Time32s           FixedWidthDataType
		Time32ms          FixedWidthDataType
		Time64us          FixedWidthDataType
		Time64ns          FixedWidthDataType
		Timestamp_s       FixedWidthDataType
		Timestamp_ms      FixedWidthDataType
		Timestamp_us      FixedWidthDataType
		Timestamp_ns      FixedWidthDataType
	}{
		Boolean:           &BooleanType{},
		Date32:            &Date32Type{},
		Date64:            &Date64Type{},
		DayTimeInterval:   &IntervalType{Unit: DayTime},
		Duration_s:        &DurationType{Unit: Second},
		Duration_ms:       &DurationType{Unit: Millisecond},
		Duration_us:       &DurationType{Unit: Microsecond},
		Duration_ns:       &DurationType{Unit: Nanosecond},
		Float16:           &Float16Type{},
		YearMonthInterval: &IntervalType{Unit: YearMonth},
		Time32s:           &Time32Type{Unit: Second},
		Time32ms:          &Time32Type{Unit: Millisecond},
		Time64us:          &Time64Type{Unit: Microsecond},
		Time64ns:          &Time64Type{Unit: Nanosecond},
		Timestamp_s:       &TimestampType{Unit: Second, TimeZone: "UTC"},
		Timestamp_ms:      &TimestampType{Unit: Millisecond, TimeZone: "UTC"},
		Timestamp_us:      &TimestampType{Unit: Microsecond, TimeZone: "UTC"},
		Timestamp_ns:      &TimestampType{Unit: Nanosecond, TimeZone: "UTC"},
	}

	_ FixedWidthDataType = (*FixedSizeBinaryType)(nil)
	_ FixedWidthDataType = (*DecimalType)(nil)
	_ FixedWidthDataType = (*IntervalType)(nil)
)
