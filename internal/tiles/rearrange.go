package tiles

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Codec decodes images from and encodes images to the filesystem.
//
// Encode must not leave a partial file at path when it fails.
type Codec interface {
	Decode(path string) (image.Image, error)
	Encode(path string, img image.Image) error
}

// Rearrange decodes the image at imagePath, moves its tiles according to
// ordering and writes the result to outPath as PNG.
//
// Nothing is written when validation fails. Errors from codec are returned
// as is.
func Rearrange(codec Codec, imagePath string, tileSize Size, ordering []int, outPath string) error {
	src, err := codec.Decode(imagePath)
	if err != nil {
		return err
	}
	dst, err := RearrangeImage(src, tileSize, ordering)
	if err != nil {
		return err
	}
	return codec.Encode(outPath, dst)
}

// RearrangeImage returns a new image with the same bounds and color model as
// src where the tile at ordering[i] of src is placed at position i.
// Pixels are copied verbatim.
func RearrangeImage(src image.Image, tileSize Size, ordering []int) (draw.Image, error) {
	bounds := src.Bounds()
	moves, err := Plan(Size{Width: bounds.Dx(), Height: bounds.Dy()}, tileSize, ordering)
	if err != nil {
		return nil, err
	}

	dst := newCanvas(src, bounds)
	srcBuf, srcOK := pixelsOf(src)
	dstBuf, dstOK := pixelsOf(dst)
	for _, m := range moves {
		sr := m.Source.Add(bounds.Min)
		dp := m.Dest.Min.Add(bounds.Min)
		if srcOK && dstOK {
			copyRows(dstBuf, dp, srcBuf, sr)
			continue
		}
		draw.Copy(dst, dp, src, sr, draw.Src, nil)
	}
	return dst, nil
}

// pixBuffer is the raw pixel storage of one of the standard image types.
type pixBuffer struct {
	pix    []uint8
	stride int
	bpp    int
	offset func(x, y int) int
}

// pixelsOf returns the pixel storage of img for exactly the types newCanvas
// reproduces, so a source and its canvas either both have one or neither does.
func pixelsOf(img image.Image) (pixBuffer, bool) {
	switch m := img.(type) {
	case *image.RGBA:
		return pixBuffer{m.Pix, m.Stride, 4, m.PixOffset}, true
	case *image.NRGBA:
		return pixBuffer{m.Pix, m.Stride, 4, m.PixOffset}, true
	case *image.RGBA64:
		return pixBuffer{m.Pix, m.Stride, 8, m.PixOffset}, true
	case *image.NRGBA64:
		return pixBuffer{m.Pix, m.Stride, 8, m.PixOffset}, true
	case *image.Gray:
		return pixBuffer{m.Pix, m.Stride, 1, m.PixOffset}, true
	case *image.Gray16:
		return pixBuffer{m.Pix, m.Stride, 2, m.PixOffset}, true
	case *image.Alpha:
		return pixBuffer{m.Pix, m.Stride, 1, m.PixOffset}, true
	case *image.Alpha16:
		return pixBuffer{m.Pix, m.Stride, 2, m.PixOffset}, true
	case *image.CMYK:
		return pixBuffer{m.Pix, m.Stride, 4, m.PixOffset}, true
	case *image.Paletted:
		return pixBuffer{m.Pix, m.Stride, 1, m.PixOffset}, true
	default:
		return pixBuffer{}, false
	}
}

// copyRows copies the block sr of src to dst at dp byte for byte. Both
// buffers must share a pixel layout.
func copyRows(dst pixBuffer, dp image.Point, src pixBuffer, sr image.Rectangle) {
	n := sr.Dx() * src.bpp
	so := src.offset(sr.Min.X, sr.Min.Y)
	do := dst.offset(dp.X, dp.Y)
	for y := 0; y < sr.Dy(); y++ {
		copy(dst.pix[do:do+n], src.pix[so:so+n])
		so += src.stride
		do += dst.stride
	}
}

// newCanvas allocates a blank image of the same concrete type as src where the
// type supports drawing. Other types, such as *image.YCbCr from JPEG, get NRGBA.
func newCanvas(src image.Image, r image.Rectangle) draw.Image {
	switch s := src.(type) {
	case *image.RGBA:
		return image.NewRGBA(r)
	case *image.NRGBA:
		return image.NewNRGBA(r)
	case *image.RGBA64:
		return image.NewRGBA64(r)
	case *image.NRGBA64:
		return image.NewNRGBA64(r)
	case *image.Gray:
		return image.NewGray(r)
	case *image.Gray16:
		return image.NewGray16(r)
	case *image.Alpha:
		return image.NewAlpha(r)
	case *image.Alpha16:
		return image.NewAlpha16(r)
	case *image.CMYK:
		return image.NewCMYK(r)
	case *image.Paletted:
		return image.NewPaletted(r, append(color.Palette(nil), s.Palette...))
	default:
		return image.NewNRGBA(r)
	}
}
