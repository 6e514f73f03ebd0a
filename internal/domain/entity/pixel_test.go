package entity

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPixelBuffer_RejectsWrongLength(t *testing.T) {
	_, err := NewPixelBuffer(2, 2, make([]byte, 11))
	require.Error(t, err)

	_, err = NewPixelBuffer(0, 2, nil)
	require.Error(t, err)

	p, err := NewPixelBuffer(2, 2, make([]byte, 12))
	require.NoError(t, err)
	require.Equal(t, 6, p.Stride())
}

func TestFromImage_StoresBGR(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	src.Set(1, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	p := FromImage(src)
	require.Equal(t, 2, p.Width)
	require.Equal(t, 1, p.Height)
	require.Equal(t, []byte{30, 20, 10, 50, 100, 200}, p.Pix)
}

func TestFromImage_HandlesOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 8, 7))
	p := FromImage(src)
	require.Equal(t, 3, p.Width)
	require.Equal(t, 2, p.Height)
	require.Len(t, p.Pix, 18)
}

func TestPixelBuffer_At(t *testing.T) {
	p, err := NewPixelBuffer(1, 1, []byte{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, color.RGBA{R: 3, G: 2, B: 1, A: 255}, p.At(0, 0))
	require.Equal(t, color.RGBA{}, p.At(1, 0))
	require.Equal(t, image.Rect(0, 0, 1, 1), p.Bounds())
}
