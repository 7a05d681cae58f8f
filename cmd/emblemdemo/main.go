// Command emblemdemo renders an emblem design from a stencil catalog.
//
// With -code it decodes a shared design token; otherwise it randomizes a
// design from the catalog's shapes. The rendered emblem is written as PNG
// and the design's share token is printed.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/guildforge/emblem"
	"github.com/guildforge/emblem/asset"
)

func main() {
	var (
		manifestPath = flag.String("manifest", "assets/manifest.toml", "stencil catalog manifest")
		size         = flag.Int("size", 512, "output size in pixels")
		output       = flag.String("output", "emblem.png", "output file")
		code         = flag.String("code", "", "design token to render (random design if empty)")
		seed         = flag.Int64("seed", 0, "random seed (0 uses current time)")
		flat         = flag.Bool("flat", false, "disable brightness modulation")
		verbose      = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		emblem.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	catalog, err := asset.LoadCatalog(*manifestPath, *size)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	design := emblem.DefaultDesign()
	if *code != "" {
		if err := design.Decode(*code); err != nil {
			log.Fatalf("Failed to decode design: %v", err)
		}
	} else {
		s := *seed
		if s == 0 {
			s = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(s))
		design = emblem.Randomize(rng, catalog.BackgroundIDs(), catalog.ForegroundIDs())
	}

	var opts []emblem.RenderOption
	if *flat {
		opts = append(opts, emblem.WithBrightnessDisabled())
	}

	pm, err := emblem.Render(design, catalog, *size, opts...)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if err := pm.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Emblem saved to %s (%dx%d)\n", *output, *size, *size)
	fmt.Println(emblem.Encode(design))
}
