package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/woozymasta/geodoc/internal/convert"
	"github.com/woozymasta/geodoc/internal/logger"
	"github.com/woozymasta/geodoc/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input       string `short:"i" long:"in"           description:"Input file path (.json or .yaml). Reads from stdin if empty"`
	Output      string `short:"o" long:"out"          description:"Output file path. Writes to stdout if empty"`
	Kind        string `short:"k" long:"kind"         description:"Shape kind of the input documents" choice:"auto" choice:"point" choice:"box" choice:"circle" choice:"sphere" choice:"polygon" choice:"geojson" default:"auto"`
	Dialect     string `short:"d" long:"to"           description:"Output dialect" choice:"legacy" choice:"geojson" default:"legacy"`
	Format      string `short:"f" long:"format"       description:"Output format" choice:"json" choice:"yaml" choice:"bson" choice:"wkt" choice:"wkb" default:"json"`
	Command     string `short:"c" long:"command"      description:"Wrap shapes into a geo command, 'default' picks the operator per shape"`
	Indent      string `long:"indent"                 description:"JSON indent" default:"  "`
	Preview     string `short:"p" long:"preview"      description:"Write a webp preview of the shapes to this path"`
	PreviewSize int    `long:"preview-size"           description:"Preview size in pixels" default:"512"`
	StdinYAML   bool   `short:"y" long:"yaml"         description:"Read stdin as YAML"`
	Minify      bool   `short:"m" long:"minify"       description:"Minify JSON output"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	if err := run(opts); err != nil {
		log.Fatal().Err(err).Msg("Conversion failed")
	}
}

func run(opts Options) error {
	kind, err := convert.ParseKind(opts.Kind)
	if err != nil {
		return err
	}
	dialect, err := convert.ParseDialect(opts.Dialect)
	if err != nil {
		return err
	}
	format, err := processor.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	// Read Input
	var sources []any
	if opts.Input != "" {
		sources, err = processor.ReadFile(opts.Input)
	} else {
		sources, err = processor.ReadAll(os.Stdin, opts.StdinYAML)
	}
	if err != nil {
		return err
	}

	items, err := processor.ConvertAll(sources, processor.Options{
		Kind:    kind,
		Dialect: dialect,
		Command: opts.Command,
	})
	if err != nil {
		return err
	}

	var out bytes.Buffer
	err = processor.Write(&out, items, processor.WriteOptions{
		Format: format,
		Indent: opts.Indent,
		Minify: opts.Minify,
	})
	if err != nil {
		return err
	}

	if opts.Preview != "" {
		f, err := os.Create(opts.Preview)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()

		if err := processor.WritePreview(f, processor.Shapes(items), opts.PreviewSize); err != nil {
			return err
		}
	}

	if opts.Output == "" {
		_, err = os.Stdout.Write(out.Bytes())
		return err
	}

	if err := os.WriteFile(opts.Output, out.Bytes(), 0644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Successfully converted %d documents to %s (format: %s)\n", len(items), opts.Output, format)
	return nil
}
