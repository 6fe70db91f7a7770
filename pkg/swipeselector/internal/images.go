package internal

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// RasterizeSVG renders SVG markup into an RGBA image of exactly w by h
// pixels, scaling the drawing to fit.
func RasterizeSVG(data []byte, w, h int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1)

	return rgba, nil
}

// TextureFromRGBA uploads an RGBA image as a blendable texture.
func TextureFromRGBA(renderer *sdl.Renderer, rgba *image.RGBA) (*sdl.Texture, error) {
	bounds := rgba.Bounds()
	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(bounds.Dx()), int32(bounds.Dy()),
		32, int32(rgba.Stride),
		sdl.PIXELFORMAT_ABGR8888,
	)
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

// SVGTexture rasterizes SVG markup straight to a texture.
func SVGTexture(renderer *sdl.Renderer, data []byte, w, h int32) (*sdl.Texture, error) {
	rgba, err := RasterizeSVG(data, int(w), int(h))
	if err != nil {
		return nil, err
	}
	return TextureFromRGBA(renderer, rgba)
}

// IsSVGPath reports whether path names an SVG file.
func IsSVGPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".svg")
}

// LoadImageTexture loads an item image. SVG files are rasterized at w by h;
// raster formats load at their own size and are scaled when drawn.
func LoadImageTexture(renderer *sdl.Renderer, path string, w, h int32) (*sdl.Texture, error) {
	if IsSVGPath(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return SVGTexture(renderer, data, w, h)
	}

	texture, err := img.LoadTexture(renderer, path)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	return texture, nil
}
