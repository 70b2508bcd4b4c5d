// Package text renders the file-name captions shown under gallery tiles.
//
// A Face pairs two views of one font: golang.org/x/image/font/opentype
// rasterizes glyphs into a gallery.Buffer (through Buffer.Canvas), and
// github.com/go-text/typesetting shapes strings with HarfBuzz to measure
// them, so kerning is accounted for when a name is ellipsized to fit a
// thumbnail.
//
// # Example usage
//
//	face, err := text.Default(14)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer face.Close()
//
//	captions := text.NewCaptioner(face, 0xFFEEEEEE, 0xFF1A1A1A)
//	strip := captions.Render("IMG_2041.jpg", 320)
//	screen.CopyFrom(strip, x, y)
//
// Captions are cached by (name, width), so scrolling does not re-rasterize
// names every frame.
package text
