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

/*
Package arrow defines the logical type domain of a columnar in-memory data
representation.

The catalog is closed: every DataType is one of the concrete types in this
package, or a user defined ExtensionType standing in for one of them. Type
values are immutable once constructed and may be shared freely between
goroutines.

# Equality

TypeEqual compares two types exactly, nested field names, nullability and
metadata included. ShapeEqual compares the storage shape only, ignoring the
names and metadata of list and struct children. It is the comparison used to
match schemas coming from different sources.

# Physical types

Many logical types are stored the same way: dates, times and timestamps are
plain integers, decimals are 128-bit integers. ToPhysicalType maps every
logical type onto the smaller PhysicalID catalog, and IsPhysicalType reports
whether a logical type needs no conversion at all.

# Extension types

Types outside the catalog implement ExtensionType by embedding
ExtensionBase. Registered extensions are resolved by name when decoding
schemas.
*/
package arrow

//go:generate stringer -type=Type
