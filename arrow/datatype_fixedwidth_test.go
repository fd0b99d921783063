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

package arrow_test

import (
	"testing"
	"time"

	"github.com/datafuse-extras/arrow2/arrow"
	"github.com/stretchr/testify/assert"
)

// TestTimeUnit_String verifies each time unit matches its string representation.
func TestTimeUnit_String(t *testing.T) {
	tests := []struct {
		u   arrow.TimeUnit
		exp string
		mul time.Duration
	}{
		{arrow.Nanosecond, "ns", time.Nanosecond},
		{arrow.Microsecond, "us", time.Microsecond},
		{arrow.Millisecond, "ms", time.Millisecond},
		{arrow.Second, "s", time.Second},
	}
	for _, test := range tests {
		t.Run(test.exp, func(t *testing.T) {
			assert.Equal(t, test.exp, test.u.String())
			assert.Equal(t, test.mul, test.u.Multiplier())
		})
	}
}

func TestTimeUnitOrder(t *testing.T) {
	assert.Less(t, arrow.Nanosecond, arrow.Microsecond)
	assert.Less(t, arrow.Microsecond, arrow.Millisecond)
	assert.Less(t, arrow.Millisecond, arrow.Second)
	assert.Less(t, arrow.YearMonth, arrow.DayTime)
}

func TestIntervalType(t *testing.T) {
	for _, tc := range []struct {
		unit  arrow.IntervalUnit
		str   string
		width int
	}{
		{arrow.YearMonth, "interval[year_month]", 32},
		{arrow.DayTime, "interval[day_time]", 64},
	} {
		t.Run(tc.str, func(t *testing.T) {
			dt := &arrow.IntervalType{Unit: tc.unit}
			assert.Equal(t, arrow.INTERVAL, dt.ID())
			assert.Equal(t, "interval", dt.Name())
			assert.Equal(t, tc.str, dt.String())
			assert.Equal(t, tc.width, dt.BitWidth())
		})
	}
	assert.NotEqual(t, arrow.FixedWidthTypes.DayTimeInterval.Fingerprint(),
		arrow.FixedWidthTypes.YearMonthInterval.Fingerprint())
}

func TestDecimalType(t *testing.T) {
	for _, tc := range []struct {
		precision int32
		scale     int32
		want      string
	}{
		{1, 10, "decimal(1, 10)"},
		{10, 10, "decimal(10, 10)"},
		{10, 1, "decimal(10, 1)"},
		{-1, 99, "decimal(-1, 99)"},
	} {
		t.Run(tc.want, func(t *testing.T) {
			dt := arrow.DecimalType{Precision: tc.precision, Scale: tc.scale}
			if got, want := dt.BitWidth(), 128; got != want {
				t.Fatalf("invalid bitwidth: got=%d, want=%d", got, want)
			}

			if got, want := dt.ID(), arrow.DECIMAL; got != want {
				t.Fatalf("invalid type ID: got=%v, want=%v", got, want)
			}

			if got, want := dt.String(), tc.want; got != want {
				t.Fatalf("invalid stringer: got=%q, want=%q", got, want)
			}
		})
	}
}

func TestTemporalTypes(t *testing.T) {
	for _, tc := range []struct {
		dt    arrow.FixedWidthDataType
		id    arrow.Type
		str   string
		width int
	}{
		{&arrow.Date32Type{}, arrow.DATE32, "date32", 32},
		{&arrow.Date64Type{}, arrow.DATE64, "date64", 64},
		{&arrow.Time32Type{Unit: arrow.Second}, arrow.TIME32, "time32[s]", 32},
		{&arrow.Time32Type{Unit: arrow.Millisecond}, arrow.TIME32, "time32[ms]", 32},
		{&arrow.Time64Type{Unit: arrow.Microsecond}, arrow.TIME64, "time64[us]", 64},
		{&arrow.Time64Type{Unit: arrow.Nanosecond}, arrow.TIME64, "time64[ns]", 64},
		{&arrow.DurationType{Unit: arrow.Millisecond}, arrow.DURATION, "duration[ms]", 64},
		{&arrow.TimestampType{Unit: arrow.Nanosecond}, arrow.TIMESTAMP, "timestamp[ns]", 64},
		{&arrow.TimestampType{Unit: arrow.Millisecond, TimeZone: "UTC"}, arrow.TIMESTAMP, "timestamp[ms, tz=UTC]", 64},
		{&arrow.TimestampType{Unit: arrow.Second, TimeZone: "+07:30"}, arrow.TIMESTAMP, "timestamp[s, tz=+07:30]", 64},
		{&arrow.FixedSizeBinaryType{ByteWidth: 7}, arrow.FIXED_SIZE_BINARY, "fixed_size_binary[7]", 56},
		{&arrow.BooleanType{}, arrow.BOOL, "bool", 1},
		{&arrow.Float16Type{}, arrow.FLOAT16, "float16", 16},
	} {
		t.Run(tc.str, func(t *testing.T) {
			assert.Equal(t, tc.id, tc.dt.ID())
			assert.Equal(t, tc.str, tc.dt.String())
			assert.Equal(t, tc.width, tc.dt.BitWidth())
		})
	}
}

func TestFixedWidthFingerprints(t *testing.T) {
	seen := make(map[string]arrow.DataType)
	for _, dt := range []arrow.DataType{
		arrow.FixedWidthTypes.Boolean,
		arrow.FixedWidthTypes.Date32,
		arrow.FixedWidthTypes.Date64,
		arrow.FixedWidthTypes.DayTimeInterval,
		arrow.FixedWidthTypes.YearMonthInterval,
		arrow.FixedWidthTypes.Duration_s,
		arrow.FixedWidthTypes.Duration_ns,
		arrow.FixedWidthTypes.Time32s,
		arrow.FixedWidthTypes.Time32ms,
		arrow.FixedWidthTypes.Time64us,
		arrow.FixedWidthTypes.Time64ns,
		arrow.FixedWidthTypes.Timestamp_s,
		arrow.FixedWidthTypes.Timestamp_ns,
		&arrow.TimestampType{Unit: arrow.Second},
		&arrow.DecimalType{Precision: 1, Scale: 23},
		&arrow.DecimalType{Precision: 12, Scale: 3},
		&arrow.FixedSizeBinaryType{ByteWidth: 1},
		&arrow.FixedSizeBinaryType{ByteWidth: 12},
		arrow.PrimitiveTypes.Int32,
		arrow.PrimitiveTypes.Uint32,
	} {
		fp := dt.Fingerprint()
		if prev, ok := seen[fp]; ok {
			t.Fatalf("fingerprint %q shared by %s and %s", fp, prev, dt)
		}
		seen[fp] = dt
	}
}
