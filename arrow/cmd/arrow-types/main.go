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

// Command arrow-types inspects Arrow data types and schemas.
//
// Examples:
//
//	$> arrow-types physical 'timestamp[ms, tz=UTC]' 'list<date32>'
//	timestamp[ms, tz=UTC]: physical=int64 is_physical=false
//	list<item: date32, nullable>: physical=list<item: date32, nullable> is_physical=true
//
//	$> arrow-types compare 'list<a: int32>' 'list<b: int32>'
//	equal=false shape_equal=true
//
//	$> arrow-types schema --avro ./testdata/example.avsc
//	./testdata/example.avsc:
//	  id: int32 -> int32
//	  name: utf8 -> utf8, nullable
//
//	$> arrow-types schema --proto=example.Event ./events.pb
//	$> arrow-types sqlite ./app.db users
package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/datafuse-extras/arrow2/arrow"
	"github.com/datafuse-extras/arrow2/arrow/avro"
	_ "github.com/datafuse-extras/arrow2/arrow/extensions"
	"github.com/datafuse-extras/arrow2/arrow/internal/arrjson"
	"github.com/datafuse-extras/arrow2/arrow/sqlschema"
	"github.com/datafuse-extras/arrow2/arrow/typeexpr"
	"github.com/datafuse-extras/arrow2/arrow/util"
	"github.com/docopt/docopt-go"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	_ "modernc.org/sqlite"
)

const usage = `Arrow data type inspector.
Usage:
  arrow-types physical <type>...
  arrow-types compare <left> <right>
  arrow-types schema [--avro | --proto=<message>] <file>...
  arrow-types sqlite <db> <table>...
  arrow-types -h | --help
Options:
  -h --help          Show this screen.
  --avro             Read Avro schemas instead of Arrow JSON schemas.
  --proto=<message>  Read protobuf FileDescriptorSets and convert the named message.`

func main() {
	log.SetPrefix("arrow-types: ")
	log.SetFlags(0)

	args, err := docopt.ParseArgs(usage, os.Args[1:], "")
	if err != nil {
		log.Fatal(err)
	}

	switch {
	case isSet(args, "physical"):
		err = processPhysical(os.Stdout, args["<type>"].([]string))
	case isSet(args, "compare"):
		err = processCompare(os.Stdout, args["<left>"].(string), args["<right>"].(string))
	case isSet(args, "schema"):
		err = processSchemas(context.Background(), os.Stdout, args["<file>"].([]string), schemaLoader(args))
	case isSet(args, "sqlite"):
		err = processSQLite(context.Background(), os.Stdout, args["<db>"].(string), args["<table>"].([]string))
	}
	if err != nil {
		log.Fatal(err)
	}
}

func isSet(args docopt.Opts, key string) bool {
	v, _ := args.Bool(key)
	return v
}

func schemaLoader(args docopt.Opts) loader {
	if isSet(args, "--avro") {
		return loadAvro
	}
	if msg, err := args.String("--proto"); err == nil && msg != "" {
		return protoLoader(protoreflect.FullName(msg))
	}
	return loadJSON
}

func processPhysical(w io.Writer, exprs []string) error {
	for _, expr := range exprs {
		dt, err := typeexpr.Parse(expr)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s: physical=%s is_physical=%v\n", dt, arrow.ToPhysicalType(dt), arrow.IsPhysicalType(dt))
	}
	return nil
}

func processCompare(w io.Writer, left, right string) error {
	l, err := typeexpr.Parse(left)
	if err != nil {
		return err
	}
	r, err := typeexpr.Parse(right)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "equal=%v shape_equal=%v\n", arrow.TypeEqual(l, r), arrow.ShapeEqual(l, r))
	return nil
}

// loader reads the schema stored in a file.
type loader func(fname string) (*arrow.Schema, error)

func loadJSON(fname string) (*arrow.Schema, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return arrjson.DecodeSchema(data)
}

func loadAvro(fname string) (*arrow.Schema, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return avro.ArrowSchemaFromAvro(data)
}

// protoLoader reads binary FileDescriptorSets, as written by
// protoc --include_imports --descriptor_set_out, and converts msg.
func protoLoader(msg protoreflect.FullName) loader {
	return func(fname string) (*arrow.Schema, error) {
		data, err := os.ReadFile(fname)
		if err != nil {
			return nil, err
		}
		var set descriptorpb.FileDescriptorSet
		if err := proto.Unmarshal(data, &set); err != nil {
			return nil, err
		}
		files, err := protodesc.NewFiles(&set)
		if err != nil {
			return nil, err
		}
		desc, err := files.FindDescriptorByName(msg)
		if err != nil {
			return nil, err
		}
		md, ok := desc.(protoreflect.MessageDescriptor)
		if !ok {
			return nil, fmt.Errorf("%s is not a message: %w", msg, arrow.ErrInvalid)
		}
		return util.NewDescriptorReflection(md).GetSchema()
	}
}

// processSchemas loads every file concurrently and prints them in the
// order they were given.
func processSchemas(ctx context.Context, w io.Writer, fnames []string, load loader) error {
	schemas := make([]*arrow.Schema, len(fnames))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, fname := range fnames {
		i, fname := i, fname
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			schema, err := load(fname)
			if err != nil {
				return fmt.Errorf("%s: %w", fname, err)
			}
			schemas[i] = schema
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, schema := range schemas {
		printSchema(w, fnames[i], schema)
	}
	return nil
}

func processSQLite(ctx context.Context, w io.Writer, dsn string, tables []string) error {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, table := range tables {
		schema, err := sqlschema.FromTable(ctx, db, table)
		if err != nil {
			return err
		}
		printSchema(w, table, schema)
	}
	return nil
}

func printSchema(w io.Writer, name string, schema *arrow.Schema) {
	fmt.Fprintf(w, "%s:\n", name)
	for _, f := range schema.Fields() {
		nullable := ""
		if f.Nullable {
			nullable = ", nullable"
		}
		fmt.Fprintf(w, "  %s: %s -> %s%s\n", f.Name, f.Type, arrow.ToPhysicalType(f.Type), nullable)
	}
}
