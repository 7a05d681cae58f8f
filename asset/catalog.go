// Package asset loads emblem stencil catalogs from disk.
//
// A catalog is described by a TOML manifest listing shapes and their
// stencil layer files, relative to the manifest's directory:
//
//	[[shape]]
//	id = "crest-round"
//	kind = "background"
//	layers = ["backgrounds/crest-round.png"]
//
//	[[shape]]
//	id = "dragon"
//	kind = "foreground"
//	layers = ["foregrounds/dragon-shading.png", "foregrounds/dragon-1.png", "foregrounds/dragon-2.png"]
//
// Foreground layers follow the fixed engine order: brightness control
// channel first, then the two visible shape masks. Stencils are resampled
// to the catalog size on load, so everything handed to the renderer has
// uniform dimensions.
package asset

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // stencil sources are PNG
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	xdraw "golang.org/x/image/draw"

	"github.com/guildforge/emblem"
)

// Manifest errors.
var (
	// ErrInvalidSize is returned when the catalog size is non-positive.
	ErrInvalidSize = errors.New("asset: catalog size must be positive")

	// ErrBadManifest is returned for structurally invalid manifests
	// (duplicate ids, unknown kinds, wrong layer counts).
	ErrBadManifest = errors.New("asset: invalid manifest")
)

const maxForegroundLayers = 3

type manifest struct {
	Shapes []shapeEntry `toml:"shape"`
}

type shapeEntry struct {
	ID     string   `toml:"id"`
	Kind   string   `toml:"kind"`
	Layers []string `toml:"layers"`
}

// Catalog holds the decoded stencil sets for every shape in a manifest,
// all resampled to one square size. It implements emblem.Assets.
// A loaded catalog is immutable and safe for concurrent use.
type Catalog struct {
	size        int
	backgrounds map[string]*emblem.Stencil
	foregrounds map[string][]*emblem.Stencil
}

var _ emblem.Assets = (*Catalog)(nil)

// LoadCatalog reads a manifest and decodes every referenced stencil,
// resampling each to size×size. Layer paths resolve relative to the
// manifest's directory.
func LoadCatalog(manifestPath string, size int) (*Catalog, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	var m manifest
	if _, err := toml.DecodeFile(manifestPath, &m); err != nil {
		return nil, fmt.Errorf("asset: read manifest: %w", err)
	}

	c := &Catalog{
		size:        size,
		backgrounds: make(map[string]*emblem.Stencil),
		foregrounds: make(map[string][]*emblem.Stencil),
	}

	dir := filepath.Dir(manifestPath)
	for _, sh := range m.Shapes {
		if sh.ID == "" {
			return nil, fmt.Errorf("%w: shape with empty id", ErrBadManifest)
		}
		switch sh.Kind {
		case "background":
			if _, dup := c.backgrounds[sh.ID]; dup {
				return nil, fmt.Errorf("%w: duplicate background %q", ErrBadManifest, sh.ID)
			}
			if len(sh.Layers) != 1 {
				return nil, fmt.Errorf("%w: background %q needs exactly one layer, got %d",
					ErrBadManifest, sh.ID, len(sh.Layers))
			}
			st, err := loadStencil(filepath.Join(dir, sh.Layers[0]), size)
			if err != nil {
				return nil, err
			}
			c.backgrounds[sh.ID] = st
		case "foreground":
			if _, dup := c.foregrounds[sh.ID]; dup {
				return nil, fmt.Errorf("%w: duplicate foreground %q", ErrBadManifest, sh.ID)
			}
			if len(sh.Layers) > maxForegroundLayers {
				return nil, fmt.Errorf("%w: foreground %q has %d layers, max %d",
					ErrBadManifest, sh.ID, len(sh.Layers), maxForegroundLayers)
			}
			layers := make([]*emblem.Stencil, 0, len(sh.Layers))
			for _, rel := range sh.Layers {
				if rel == "" {
					// An empty path keeps the slot's position in the
					// fixed layer order without providing a stencil.
					layers = append(layers, nil)
					continue
				}
				st, err := loadStencil(filepath.Join(dir, rel), size)
				if err != nil {
					return nil, err
				}
				layers = append(layers, st)
			}
			c.foregrounds[sh.ID] = layers
		default:
			return nil, fmt.Errorf("%w: shape %q has unknown kind %q", ErrBadManifest, sh.ID, sh.Kind)
		}
	}

	emblem.Logger().Info("catalog loaded",
		"manifest", manifestPath,
		"backgrounds", len(c.backgrounds),
		"foregrounds", len(c.foregrounds),
		"size", size)

	return c, nil
}

// loadStencil decodes one stencil image and resamples it to size×size
// when its dimensions differ.
func loadStencil(path string, size int) (*emblem.Stencil, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("asset: open stencil: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("asset: decode stencil %s: %w", path, err)
	}

	b := img.Bounds()
	if b.Dx() != size || b.Dy() != size {
		emblem.Logger().Warn("resampling stencil",
			"path", path, "from", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()), "to", size)
		dst := image.NewNRGBA(image.Rect(0, 0, size, size))
		xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		img = dst
	}

	return emblem.NewStencilFromImage(img), nil
}

// Size returns the uniform stencil dimension of the catalog.
func (c *Catalog) Size() int { return c.size }

// Background implements emblem.Assets.
func (c *Catalog) Background(id string) *emblem.Stencil {
	return c.backgrounds[id]
}

// Foreground implements emblem.Assets.
func (c *Catalog) Foreground(id string) []*emblem.Stencil {
	return c.foregrounds[id]
}

// BackgroundIDs returns the background shape ids in sorted order.
func (c *Catalog) BackgroundIDs() []string {
	return sortedKeys(c.backgrounds)
}

// ForegroundIDs returns the foreground shape ids in sorted order.
func (c *Catalog) ForegroundIDs() []string {
	return sortedKeys(c.foregrounds)
}

func sortedKeys[V any](m map[string]V) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
