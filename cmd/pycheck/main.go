package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pycore "github.com/samuelcolvin/pydantic-core"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "validate":
		validateCmd(os.Args[2:])
	case "check-schema":
		checkSchemaCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "pycheck CLI\n\nUsage:\n  pycheck validate -schema schema.yaml [-strict] [-title NAME] file.json [file.json...]\n  pycheck check-schema schema.yaml\n\nSchema files may be YAML or JSON (by extension).")
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var schemaPath, title string
	var strict bool
	fs.StringVar(&schemaPath, "schema", "", "schema definition file (YAML or JSON)")
	fs.StringVar(&title, "title", "", "schema title used in error output")
	fs.BoolVar(&strict, "strict", false, "force strict coercion")
	_ = fs.Parse(args)
	if schemaPath == "" || fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}

	v, err := loadValidator(schemaPath, title, strict)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pycheck: %v\n", err)
		os.Exit(2)
	}

	failed := false
	for _, path := range fs.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "pycheck: %v\n", err)
			os.Exit(2)
		}
		if _, err := v.ValidateJSON(data); err != nil {
			failed = true
			report(path, err)
			continue
		}
		fmt.Printf("%s: ok\n", path)
	}
	if failed {
		os.Exit(1)
	}
}

func checkSchemaCmd(args []string) {
	if len(args) != 1 {
		usage()
		os.Exit(2)
	}
	v, err := loadValidator(args[0], "", false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pycheck: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(v.String())
}

func loadValidator(path, title string, strict bool) (*pycore.SchemaValidator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema *pycore.Schema
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		schema, err = pycore.SchemaFromJSON(data)
	default:
		schema, err = pycore.SchemaFromYAML(data)
	}
	if err != nil {
		return nil, err
	}
	if title == "" {
		title = filepath.Base(path)
	}
	return pycore.NewSchemaValidator(schema, &pycore.Config{Title: title, Strict: strict})
}

func report(path string, err error) {
	ve, ok := pycore.AsValidationError(err)
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %d error(s)\n", path, len(ve.Errors))
	for _, d := range ve.Details() {
		loc := "(root)"
		if len(d.Loc) > 0 {
			parts := make([]string, len(d.Loc))
			for i, it := range d.Loc {
				parts[i] = fmt.Sprint(it)
			}
			loc = strings.Join(parts, ".")
		}
		fmt.Fprintf(os.Stderr, "  %s: %s [kind=%s]\n", loc, d.Message, d.Kind)
	}
}
