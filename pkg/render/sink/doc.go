// Package sink turns a [render.Frame] into output artifacts.
//
// Every renderer takes a frame and functional options and returns the encoded
// bytes. Renderers never modify the frame and are safe to call concurrently.
//
//   - [RenderJSON]: pretty-printed geometry for other tools
//   - [RenderSVG]: vector drawing with one rect and label per component
//   - [RenderPNG]: raster drawing using the built-in bitmap font
//   - [RenderText]: box-drawing characters for terminals
//
// Colors come from a [Theme]. [Themes] lists the named ones.
package sink
