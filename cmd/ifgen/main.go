// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Command ifgen renders an ietf-interfaces document as JSON, as RESTCONF
// requests or as a gNMI SetRequest. It is a debug tool and never contacts
// a device.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	// Set runtime concurrency to match CPU limit imposed by Kubernetes
	_ "go.uber.org/automaxprocs"

	"go.uber.org/zap/zapcore"
	"google.golang.org/protobuf/encoding/prototext"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	"sigs.k8s.io/yaml"

	"github.com/ironcore-dev/ietf-interfaces/api/ietf"
	"github.com/ironcore-dev/ietf-interfaces/internal/payload"
)

const (
	FormatJSON     = "json"
	FormatRESTCONF = "restconf"
	FormatGNMI     = "gnmi"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, "", os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1) //nolint:gocritic
	}
}

// run executes the command with the given arguments. Relative file paths
// are resolved against dir.
func run(ctx context.Context, dir string, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("ifgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("file", "", "Path to a YAML or JSON ietf-interfaces document. If unset, a demo interface is rendered.")
	format := fs.String("format", FormatJSON, "Output format, one of: "+strings.Join([]string{FormatJSON, FormatRESTCONF, FormatGNMI}, ", "))
	compact := fs.Bool("compact", true, "Omit leafs that are equal to their default value.")
	indent := fs.Bool("indent", false, "Indent JSON output.")
	method := fs.String("method", http.MethodPatch, "RESTCONF method, one of: PATCH, PUT, POST.")
	split := fs.Bool("split", false, "Render one RESTCONF request per interface.")
	replace := fs.Bool("replace", false, "Replace instead of update interfaces in the gNMI SetRequest.")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: ifgen [flags]\n\n")
		fmt.Fprintf(stderr, "Renders an ietf-interfaces document as JSON, RESTCONF requests or a gNMI SetRequest.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExample:\n")
		fmt.Fprintf(stderr, "  ifgen -file=interfaces.yaml -format=restconf -method=PUT\n")
	}
	opts := zap.Options{
		Development: true,
		TimeEncoder: zapcore.ISO8601TimeEncoder,
	}
	opts.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	log := zap.New(zap.UseFlagOptions(&opts), zap.WriteTo(stderr)).WithName("ifgen")

	m := demo()
	if *file != "" {
		path := *file
		if dir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		var err error
		if m, err = load(path); err != nil {
			return err
		}
		log.Info("Loaded document", "file", *file)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	switch *format {
	case FormatJSON:
		mopts := []ietf.MarshalOption{ietf.WithLogger(log)}
		if *compact {
			mopts = append(mopts, ietf.Compact())
		}
		if *indent {
			mopts = append(mopts, ietf.WithIndent("", "  "))
		}
		b, err := ietf.Marshal(m, mopts...)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(stdout, "%s\n", b)
		return err

	case FormatRESTCONF:
		render := payload.RESTCONF
		if *split {
			render = payload.InterfaceRequests
		}
		reqs, err := render(m, strings.ToUpper(*method), payload.WithLogger(log), payload.WithCompact(*compact))
		if err != nil {
			return err
		}
		for i, r := range reqs {
			body := r.Body
			if *indent {
				var buf bytes.Buffer
				if err := json.Indent(&buf, body, "", "  "); err != nil {
					return fmt.Errorf("failed to indent payload: %w", err)
				}
				body = buf.Bytes()
			}
			if i > 0 {
				fmt.Fprintln(stdout)
			}
			fmt.Fprintf(stdout, "%s\nContent-Type: %s\n\n%s\n", r, r.ContentType, body)
		}
		return nil

	case FormatGNMI:
		popts := []payload.Option{payload.WithLogger(log), payload.WithCompact(*compact)}
		if *replace {
			popts = append(popts, payload.WithReplace())
		}
		r, err := payload.SetRequest(m, popts...)
		if err != nil {
			return err
		}
		b, err := prototext.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal set request: %w", err)
		}
		_, err = stdout.Write(b)
		return err

	default:
		return fmt.Errorf("unsupported format %q", *format)
	}
}

// load reads an ietf-interfaces document from a YAML or JSON file.
func load(path string) (*ietf.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	b, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML to JSON: %w", err)
	}
	m, err := ietf.Unmarshal(b)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return m, nil
}

// demo returns a model with a single, minimal ethernet interface.
func demo() *ietf.Model {
	return &ietf.Model{
		Interfaces: &ietf.Interfaces{
			Interface: []*ietf.Interface{
				{
					Name:        "eth1",
					Type:        ietf.TypeEthernetCsmacd,
					Enabled:     ptr.To(true),
					AdminStatus: ietf.AdminStatusUp,
					OperStatus:  ietf.OperStatusUp,
					IfIndex:     1,
				},
			},
		},
	}
}
