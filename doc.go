// Package emblem composes two-part guild emblems from grayscale stencil
// images and a fixed color palette.
//
// # Overview
//
// An emblem is built from one background shape and one foreground shape.
// Each shape resolves to a set of stencils: single-channel intensity+alpha
// images whose alpha defines the silhouette. The background has one stencil;
// the foreground has up to three layers in a fixed order: layer 0 is a
// brightness control channel, layer 1 and layer 2 are the two visible shape
// masks. Rendering tints each visible mask with its slot color, optionally
// modulates foreground brightness through the control channel, and
// composites the result with standard alpha-over.
//
// # Quick Start
//
//	import "github.com/guildforge/emblem"
//
//	design := emblem.DefaultDesign()
//	design.Background = "crest-round"
//	design.BackgroundColor = emblem.Default[0]
//
//	pm, err := emblem.Render(design, catalog, 512)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pm.SavePNG("emblem.png")
//
// # Design Codes
//
// A complete design (shape ids, slot colors, flip flags) serializes to a
// compact paste-safe token via Encode, and a token hydrates an existing
// design via its Decode method. See codec.go.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Flip flags
// mirror stencil sampling about the buffer center.
//
// # Concurrency
//
// Render is a pure function: stencils are immutable after construction and
// every call allocates its own output buffer, so independent renders may
// run concurrently without synchronization.
package emblem
