package entity

import (
	"fmt"
	"image"
	"image/color"
)

// PixelBuffer — декодированное изображение: 3 байта на пиксель в порядке BGR,
// строки идут подряд без выравнивания. После декодирования не изменяется.
type PixelBuffer struct {
	Width  int    // ширина в пикселях
	Height int    // высота в пикселях
	Pix    []byte // данные BGR, длина Width*Height*3
}

// NewPixelBuffer проверяет размеры и оборачивает готовые BGR-данные.
func NewPixelBuffer(width, height int, pix []byte) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if len(pix) != width*height*3 {
		return nil, fmt.Errorf("pixel data has %d bytes, want %d", len(pix), width*height*3)
	}
	return &PixelBuffer{Width: width, Height: height, Pix: pix}, nil
}

// FromImage переводит произвольное изображение в BGR, альфа-канал отбрасывается.
func FromImage(img image.Image) *PixelBuffer {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}

	pix := make([]byte, w*h*3)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pix[i] = c.B
			pix[i+1] = c.G
			pix[i+2] = c.R
			i += 3
		}
	}

	return &PixelBuffer{Width: w, Height: h, Pix: pix}
}

// Stride возвращает длину строки в байтах.
func (p *PixelBuffer) Stride() int {
	return p.Width * 3
}

func (p *PixelBuffer) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.Width, p.Height)
}

func (p *PixelBuffer) At(x, y int) color.Color {
	if !image.Pt(x, y).In(p.Bounds()) {
		return color.RGBA{}
	}
	i := y*p.Stride() + x*3
	return color.RGBA{R: p.Pix[i+2], G: p.Pix[i+1], B: p.Pix[i], A: 255}
}

// Проверка реализации интерфейса
var _ image.Image = (*PixelBuffer)(nil)
