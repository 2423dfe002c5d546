package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-gridkit/internal/config"
	"github.com/goliatone/go-gridkit/internal/prompt"
	"github.com/goliatone/go-gridkit/pkg/orchestrator"
	"github.com/goliatone/go-gridkit/pkg/render"
)

func main() {
	configPath := flag.String("config", "", "config file (YAML, JSON or TOML)")
	layoutID := flag.String("layout", "", "layout ID to render")
	dir := flag.String("dir", "", "directory of layout documents (embedded samples if empty)")
	renderer := flag.String("renderer", "html", "renderer to use (html, terminal)")
	output := flag.String("output", "", "output file (stdout if empty)")
	prefix := flag.String("prefix", "w", "class prefix")
	css := flag.Bool("css", false, "print the grid stylesheet instead of a layout")
	viewport := flag.Int("viewport", 1200, "viewport width in px for the terminal preview")
	width := flag.Int("width", 96, "terminal preview width in characters")
	interactive := flag.Bool("interactive", false, "prompt for the layout when none is given and before overwriting -output")
	themeManifest := flag.String("theme", "", "theme manifest file or directory")
	themeVariant := flag.String("variant", "", "theme variant")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "layout":
			cfg.Layout = *layoutID
		case "dir":
			cfg.Dir = *dir
		case "renderer":
			cfg.Renderer = *renderer
		case "output":
			cfg.Output = *output
		case "prefix":
			cfg.Prefix = *prefix
		case "css":
			cfg.CSS = *css
		case "viewport":
			cfg.Viewport = *viewport
		case "width":
			cfg.Width = *width
		case "interactive":
			cfg.Interactive = *interactive
		case "theme":
			cfg.Theme.Manifest = *themeManifest
		case "variant":
			cfg.Theme.Variant = *themeVariant
		}
	})

	ctx := context.Background()

	options := []orchestrator.Option{orchestrator.WithPrefix(cfg.Prefix)}
	if cfg.Dir != "" {
		options = append(options, orchestrator.WithLayoutFS(os.DirFS(cfg.Dir)))
	}
	if cfg.Theme.Manifest != "" {
		manifest, err := config.LoadManifest(cfg.Theme.Manifest)
		if err != nil {
			log.Fatalf("Failed to load theme: %v", err)
		}
		themes := theme.NewRegistry()
		if err := themes.Register(manifest); err != nil {
			log.Fatalf("Failed to register theme: %v", err)
		}
		options = append(options, orchestrator.WithThemeProvider(themes, manifest.Name, cfg.Theme.Variant))
	}
	gen := orchestrator.New(options...)

	var driver prompt.Driver
	if cfg.Interactive {
		driver = prompt.NewSurveyDriver()
	}

	if cfg.CSS {
		sheet, err := gen.Stylesheet(ctx, orchestrator.Request{})
		if err != nil {
			log.Fatalf("Failed to build stylesheet: %v", err)
		}
		write(ctx, driver, cfg.Output, []byte(sheet.String()), "Stylesheet")
		return
	}

	if strings.TrimSpace(cfg.Layout) == "" {
		if !cfg.Interactive {
			log.Fatalf("No layout given; available layouts: %s", strings.Join(gen.Layouts(), ", "))
		}
		picked, err := prompt.Choose(ctx, driver, "Layout", gen.Layouts(), "")
		if errors.Is(err, prompt.ErrAborted) {
			os.Exit(130)
		}
		if err != nil {
			log.Fatalf("Failed to pick layout: %v", err)
		}
		cfg.Layout = picked
	}

	out, err := gen.Generate(ctx, orchestrator.Request{
		LayoutID: cfg.Layout,
		Renderer: cfg.Renderer,
		RenderOptions: render.RenderOptions{
			Viewport:         cfg.Viewport,
			Width:            cfg.Width,
			InlineStylesheet: cfg.Output != "",
		},
	})
	if err != nil {
		log.Fatalf("Failed to generate layout: %v", err)
	}
	write(ctx, driver, cfg.Output, out, "Layout")
}

// write prints data or stores it at path. With a driver an existing file is
// only replaced after confirmation.
func write(ctx context.Context, driver prompt.Driver, path string, data []byte, what string) {
	if path == "" {
		fmt.Println(string(data))
		return
	}
	if driver != nil {
		ok, err := prompt.ConfirmOverwrite(ctx, driver, path)
		if errors.Is(err, prompt.ErrAborted) {
			os.Exit(130)
		}
		if err != nil {
			log.Fatalf("Failed to confirm overwrite: %v", err)
		}
		if !ok {
			fmt.Printf("%s not written; %s left unchanged\n", what, path)
			return
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	fmt.Printf("%s written to %s\n", what, path)
}
