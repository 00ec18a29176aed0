package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-taghelpers/pkg/config"
	"github.com/goliatone/go-taghelpers/pkg/engine"
	"github.com/goliatone/go-taghelpers/pkg/render/template/pongo"
)

func main() {
	var (
		configFlag    = flag.String("config", "", "Optional JSON/YAML configuration file")
		templateFlag  = flag.String("template", "", "Template name (with -templates) or template file; stdin when empty")
		templatesFlag = flag.String("templates", "", "Template directory, overrides templateDir from -config")
		dataFlag      = flag.String("data", "", "Optional JSON/YAML file with template data")
		outputFlag    = flag.String("output", "", "Output file (stdout if empty)")
		sanitizeFlag  = flag.Bool("sanitize", false, "Sanitize the rendered document")
		promptFlag    = flag.Bool("prompt", false, "Prompt for datalist values before rendering")
		listKeyFlag   = flag.String("list-key", "values", "Data key the prompted values are stored under")
		timeoutFlag   = flag.Duration("timeout", 30*time.Second, "Render timeout")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(os.DirFS(filepath.Dir(*configFlag)), filepath.Base(*configFlag))
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *templatesFlag != "" {
		cfg.TemplateDir = *templatesFlag
	}
	if *sanitizeFlag {
		cfg.Sanitize = true
	}

	data, err := loadData(*dataFlag)
	if err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}

	if *promptFlag {
		values, err := promptValues(ctx, *listKeyFlag)
		if err != nil {
			log.Fatalf("Failed to read values: %v", err)
		}
		data[*listKeyFlag] = values
	}

	registry, err := cfg.Registry()
	if err != nil {
		log.Fatalf("Failed to build registry: %v", err)
	}

	templateOptions := []pongo.Option{pongo.WithExtension(cfg.TemplateExtension)}
	if cfg.TemplateDir != "" {
		templateOptions = append(templateOptions, pongo.WithBaseDir(cfg.TemplateDir))
	}
	templates, err := pongo.New(templateOptions...)
	if err != nil {
		log.Fatalf("Failed to create template engine: %v", err)
	}

	options := []engine.Option{engine.WithTemplate(templates)}
	if cfg.Sanitize {
		options = append(options, engine.WithSanitizer(engine.DefaultPolicy()))
	}
	processor, err := engine.New(registry, options...)
	if err != nil {
		log.Fatalf("Failed to create processor: %v", err)
	}

	var out strings.Builder
	switch {
	case *templateFlag != "" && cfg.TemplateDir != "":
		err = processor.Render(ctx, *templateFlag, data, &out)
	default:
		var content string
		content, err = readTemplate(*templateFlag)
		if err != nil {
			log.Fatalf("Failed to read template: %v", err)
		}
		err = processor.RenderString(ctx, content, data, &out)
	}
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if *outputFlag != "" {
		if err := os.WriteFile(*outputFlag, []byte(out.String()), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Document written to %s\n", *outputFlag)
		return
	}
	fmt.Print(out.String())
}

func readTemplate(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func loadData(path string) (map[string]any, error) {
	out := map[string]any{}
	if strings.TrimSpace(path) == "" {
		return out, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &out); err == nil {
		return out, nil
	}
	out = map[string]any{}
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return out, nil
}
