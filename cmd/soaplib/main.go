package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	soaplib "github.com/luckyluke/soaplib"
	"github.com/luckyluke/soaplib/dsl"
	"github.com/luckyluke/soaplib/xsdschema"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "schema":
		schemaCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "soaplib CLI\n\nUsage:\n  soaplib schema -manifest types.yaml -tns urn:example:ns [-o out.xsd]\n\nNotes:\n  - Builds customized type descriptors from a YAML manifest and prints the generated XSD.")
}

// typeDef is one manifest entry. Base selects the primitive; the remaining
// fields customize it the same way the dsl options do.
type typeDef struct {
	Name      string   `yaml:"name"`
	Base      string   `yaml:"base"`
	Array     bool     `yaml:"array"`
	Nillable  *bool    `yaml:"nillable"`
	MinOccurs *int     `yaml:"minoccurs"`
	MaxOccurs *int     `yaml:"maxoccurs"`
	MinLen    *int     `yaml:"minlen"`
	MaxLen    *int     `yaml:"maxlen"`
	Pattern   string   `yaml:"pattern"`
	Values    []string `yaml:"values"`
}

type manifest struct {
	Types []typeDef `yaml:"types"`
}

func schemaCmd(args []string) {
	fs := flag.NewFlagSet("schema", flag.ExitOnError)
	var path, tns, out string
	fs.StringVar(&path, "manifest", "", "YAML manifest of customized types")
	fs.StringVar(&tns, "tns", "", "target namespace for the generated schema")
	fs.StringVar(&out, "o", "", "output filename (default stdout)")
	_ = fs.Parse(args)
	if path == "" || tns == "" {
		fs.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fatalf("read manifest: %v", err)
	}
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		fatalf("parse manifest: %v", err)
	}

	reg := xsdschema.NewEntries()
	for _, def := range m.Types {
		d, err := buildDescriptor(def)
		if err != nil {
			fatalf("type %q: %v", def.Name, err)
		}
		d.ResolveNamespace(tns)
		d.AddToSchema(reg)
	}

	doc := reg.Document(tns)
	doc.Indent(2)
	w := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			fatalf("create output: %v", err)
		}
		defer f.Close()
		w = f
	}
	if _, err := doc.WriteTo(w); err != nil {
		fatalf("write schema: %v", err)
	}
}

func buildDescriptor(def typeDef) (soaplib.Descriptor, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("missing name")
	}
	opts := defOptions(def)

	var d soaplib.Descriptor
	switch def.Base {
	case "string", "":
		d = dsl.String(opts...)
	case "integer":
		d = dsl.Integer(opts...)
	case "decimal":
		d = dsl.Decimal(opts...)
	case "double":
		d = dsl.Double(opts...)
	case "float":
		d = dsl.Float(opts...)
	case "boolean":
		d = dsl.Boolean(opts...)
	case "date":
		d = dsl.Date(opts...)
	case "datetime":
		d = dsl.DateTime(opts...)
	default:
		return nil, fmt.Errorf("unknown base type %q", def.Base)
	}
	if def.Array {
		d = dsl.Array(d)
	}
	return d, nil
}

func defOptions(def typeDef) []dsl.Option {
	opts := []dsl.Option{dsl.TypeName(def.Name)}
	if def.Nillable != nil {
		opts = append(opts, dsl.Nillable(*def.Nillable))
	}
	if def.MinOccurs != nil {
		opts = append(opts, dsl.MinOccurs(*def.MinOccurs))
	}
	if def.MaxOccurs != nil {
		opts = append(opts, dsl.MaxOccurs(soaplib.Occurs(*def.MaxOccurs)))
	}
	if def.MinLen != nil {
		opts = append(opts, dsl.MinLen(*def.MinLen))
	}
	if def.MaxLen != nil {
		opts = append(opts, dsl.MaxLen(soaplib.Occurs(*def.MaxLen)))
	}
	if def.Pattern != "" {
		opts = append(opts, dsl.Pattern(def.Pattern))
	}
	if len(def.Values) > 0 {
		opts = append(opts, dsl.Values(def.Values...))
	}
	return opts
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "soaplib: "+format+"\n", args...)
	os.Exit(1)
}
