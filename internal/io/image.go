package ioutils

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// ImageService prepares artist images for saving into the lyrics folder.
//
// Genius artist images come in arbitrary sizes and formats; ImageService
// scales them down to a maximum dimension and re-encodes them as JPEG so the
// folder image is predictable.
//
// Example usage:
//
//	svc := NewImageService()
//	data, _ := client.ArtistImage(ctx, artist)
//	resized, _ := svc.Resize(data, 1000, 1000)
//	jpg, _ := svc.ConvertToJPEG(resized)
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// Resize scales an image to fit within maxWidth x maxHeight, preserving the
// aspect ratio. Images already inside the bounds are re-encoded unchanged in
// size. Returns JPEG-encoded bytes; Catmull-Rom is used for scaling quality.
func (s *ImageService) Resize(data []byte, maxWidth, maxHeight int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > maxWidth || height > maxHeight {
		ratio := float64(width) / float64(height)
		if float64(maxWidth)/float64(maxHeight) > ratio {
			width = int(float64(maxHeight) * ratio)
			height = maxHeight
		} else {
			height = int(float64(maxWidth) / ratio)
			width = maxWidth
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ConvertToJPEG re-encodes an image (JPEG, PNG, ...) as JPEG with 90%
// quality without changing its dimensions.
func (s *ImageService) ConvertToJPEG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
