package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	dialect "github.com/openvocab/dialect"
)

// manifest declares which local documents to preload into the meta-schema
// registry before resolving.
type manifest struct {
	MetaSchemas []metaSchemaEntry `toml:"metaschema"`
}

type metaSchemaEntry struct {
	URI  string `toml:"uri"`
	Path string `toml:"path"`
}

func main() {
	fs := flag.NewFlagSet("dialect", flag.ExitOnError)
	manifestPath := fs.String("manifest", "", "TOML manifest mapping meta-schema URIs to local documents")
	draftFlag := fs.String("draft", "", "explicit draft override used when chain resolution cannot complete (6, 7, 2019-09, 2020-12)")
	verbose := fs.Bool("v", false, "verbose diagnostics on stderr")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:\n  dialect [-manifest registry.toml] [-draft 2020-12] [-v] schema.json\n\nResolves the draft dialect governing the schema document and prints its applicable keywords.")
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*verbose {
		logger = logger.Level(zerolog.WarnLevel)
	}

	override, err := dialect.ParseDraft(*draftFlag)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid -draft value")
	}

	reg := dialect.NewRegistry()
	if *manifestPath != "" {
		if err := loadManifest(*manifestPath, reg, logger); err != nil {
			logger.Fatal().Err(err).Str("manifest", *manifestPath).Msg("manifest load failed")
		}
	}

	path := fs.Arg(0)
	s, err := loadSchema(path)
	if err != nil {
		logger.Fatal().Err(err).Str("schema", path).Msg("schema parse failed")
	}

	res, err := dialect.Filter(s, dialect.FilterOpt{Draft: override, Registry: reg})
	if err != nil {
		logger.Fatal().Err(err).Str("schema", path).Msg("filtering failed")
	}

	for _, w := range res.Warnings {
		logger.Warn().Str("code", w.Code).Str("at", w.Path).Msg(w.Message)
	}
	logger.Info().
		Stringer("draft", res.Draft).
		Stringer("source", res.Source).
		Int("keywords", len(res.Keywords)).
		Msg("resolved")

	fmt.Printf("draft: %s (%s)\n", res.Draft, res.Source)
	for _, kw := range res.Keywords {
		fmt.Println(kw.Name)
	}
}

func loadManifest(path string, reg *dialect.Registry, logger zerolog.Logger) error {
	var m manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return err
	}
	base := filepath.Dir(path)
	for _, e := range m.MetaSchemas {
		if e.URI == "" || e.Path == "" {
			return fmt.Errorf("manifest entry needs both uri and path (uri=%q path=%q)", e.URI, e.Path)
		}
		doc := e.Path
		if !filepath.IsAbs(doc) {
			doc = filepath.Join(base, doc)
		}
		s, err := loadSchema(doc)
		if err != nil {
			return fmt.Errorf("meta-schema %s: %w", e.URI, err)
		}
		reg.Register(e.URI, s)
		logger.Debug().Str("uri", e.URI).Str("path", doc).Msg("registered meta-schema")
	}
	return nil
}

func loadSchema(path string) (*dialect.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return dialect.ParseSchemaYAML(data)
	default:
		return dialect.ParseSchema(data)
	}
}
