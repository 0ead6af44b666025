package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/sdoxsee/dgs-codegen/internal/config"
	"github.com/sdoxsee/dgs-codegen/internal/console"
	"github.com/sdoxsee/dgs-codegen/internal/gen"
)

const (
	configFlag              = "config"
	schemaFlag              = "schema"
	outputFlag              = "output"
	packageNameFlag         = "packageName"
	typeMappingFlag         = "typeMapping"
	typeMappingFileFlag     = "typeMappingFile"
	generateBoxedTypesFlag  = "generateBoxedTypes"
	generateInterfacesFlag  = "generateInterfaces"
	covariantListBoundsFlag = "covariantListBounds"
	debugFlag               = "debug"
)

var generateFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    configFlag,
		Aliases: []string{"c"},
		Usage:   "YAML config file; flags below override its values",
	},
	&cli.StringFlag{
		Name:    schemaFlag,
		Aliases: []string{"s"},
		Usage:   "GraphQL schema files to parse, comma separated",
	},
	&cli.StringFlag{
		Name:    outputFlag,
		Aliases: []string{"o"},
		Value:   "./generated",
		Usage:   "Output directory for the generated Java sources",
	},
	&cli.StringFlag{
		Name:    packageNameFlag,
		Aliases: []string{"p"},
		Usage:   "Java package for generated types",
	},
	&cli.StringSliceFlag{
		Name:    typeMappingFlag,
		Aliases: []string{"m"},
		Usage:   "Explicit type mapping 'SchemaType=java.type.Name', repeatable",
	},
	&cli.StringFlag{
		Name:  typeMappingFileFlag,
		Value: config.DefaultMappingsFile,
		Usage: "File to read type mappings from",
	},
	&cli.BoolFlag{
		Name:  generateBoxedTypesFlag,
		Usage: "Use boxed wrappers for non-null fields instead of raw primitives",
	},
	&cli.BoolFlag{
		Name:  generateInterfacesFlag,
		Usage: "Generate an interface per object type",
	},
	&cli.BoolFlag{
		Name:  covariantListBoundsFlag,
		Usage: "Emit 'List<? extends IFoo>' for lists of generated interface types",
	},
	&cli.BoolFlag{
		Name:  debugFlag,
		Usage: "Enable debug mode, disabled by default",
	},
}

func generateAction(ctx *cli.Context) error {
	cfg := &config.Config{}

	if path := ctx.String(configFlag); path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if schemas := ctx.String(schemaFlag); schemas != "" {
		cfg.SchemaPaths = nil
		for _, path := range strings.Split(schemas, ",") {
			if path = strings.TrimSpace(path); path != "" {
				cfg.SchemaPaths = append(cfg.SchemaPaths, path)
			}
		}
	}

	if cfg.TypeMapping == nil {
		cfg.TypeMapping = make(map[string]string)
	}

	if path := ctx.String(typeMappingFileFlag); path != "" {
		file, err := os.Open(path)
		if err != nil {
			// Don't bother reporting if the default file is missing; assume
			// there are no mappings.
			if !(path == config.DefaultMappingsFile && os.IsNotExist(err)) {
				return fmt.Errorf("could not open type mappings file: %w", err)
			}
		} else {
			defer file.Close()
			console.Logger.Debug("Using type mappings from %s", path)

			mappings, err := config.ParseTypeMappings(file)
			if err != nil {
				return err
			}
			for name, target := range mappings {
				cfg.TypeMapping[name] = target
			}
		}
	}

	for _, mapping := range ctx.StringSlice(typeMappingFlag) {
		name, target, ok := strings.Cut(mapping, "=")
		if !ok {
			return fmt.Errorf("could not parse type mapping: '%s'", mapping)
		}
		cfg.TypeMapping[strings.TrimSpace(name)] = strings.TrimSpace(target)
	}

	if ctx.IsSet(outputFlag) || cfg.OutputDir == "" {
		cfg.OutputDir = ctx.String(outputFlag)
	}
	if ctx.IsSet(packageNameFlag) {
		cfg.PackageName = ctx.String(packageNameFlag)
	}
	if ctx.IsSet(generateBoxedTypesFlag) {
		cfg.GenerateBoxedTypes = ctx.Bool(generateBoxedTypesFlag)
	}
	if ctx.IsSet(generateInterfacesFlag) {
		cfg.GenerateInterfaces = ctx.Bool(generateInterfacesFlag)
	}
	if ctx.IsSet(covariantListBoundsFlag) {
		cfg.CovariantListBounds = ctx.Bool(covariantListBoundsFlag)
	}
	if ctx.IsSet(debugFlag) {
		cfg.Debug = ctx.Bool(debugFlag)
		console.Logger.DebugLevel = 1
	}

	return gen.New().Build(cfg)
}

func main() {
	app := cli.NewApp()
	app.Version = gen.Version
	app.Usage = "Generate Java types from GraphQL schemas."
	app.Commands = []*cli.Command{
		{
			Name:    "generate",
			Aliases: []string{"g"},
			Usage:   "Generate Java sources from the configured schemas",
			Action:  generateAction,
			Flags:   generateFlags,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
