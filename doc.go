// Package gallery is the raster engine behind nanogallery, a scrollable
// photo gallery that renders into an in-memory pixel buffer.
//
// # Overview
//
// A [Buffer] owns a width×height array of packed 0xAARRGGBB pixels. The
// read-only [BufferView] capability (size plus pixel lookup) is shared by
// buffers and decoded images ([ImageView]); derived operations are written
// once against it:
//
//   - [Scale]: separable tent-filter resampling, see [ComputeWeights]
//   - [Rotate]: 90° clockwise
//   - [FlipH], [FlipV]: mirrors
//   - [Clone]: deep copy
//
// Buffers also support alpha-blended drawing ([Buffer.SetTransparent],
// [Buffer.Line]) and sub-buffer compositing ([Buffer.CopyFrom]).
//
// # Quick Start
//
//	screen := gallery.NewBuffer(gallery.V2(800, 600))
//	screen.Clear(0xFF1A1A1A)
//
//	thumb := gallery.Scale(gallery.NewImageView(img), gallery.V2(320, 240))
//	screen.CopyFrom(thumb, 20, 20)
//	screen.Line(790, 0, 790, 120, 10, 0xFF4B4B4B)
//
// # Packages
//
//   - library: image discovery and the lazily decoded per-image cache entry
//   - config: the key;value configuration file
//   - text: file-name captions
//   - gui: UI state, gallery layout, scrolling and input actions
//
// # Coordinate System
//
// Origin (0,0) is the top-left pixel; X grows right, Y grows down.
package gallery
