package imageutil

import (
	"fmt"
	"image"
	"image/color"
)

// FromImage は image.Image をBGR順の3チャンネル8ビット Mat に変換する
// グレースケール画像は輝度をB・G・Rの全てに複製する（アルファは捨てる）
func FromImage(img image.Image) *Mat[uint8] {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	m := &Mat[uint8]{Rows: h, Cols: w, Channels: 3, Pix: make([]uint8, w*h*3)}
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			m.Pix[i+ChannelBlue] = c.B
			m.Pix[i+ChannelGreen] = c.G
			m.Pix[i+ChannelRed] = c.R
			i += 3
		}
	}
	return m
}

// FromGray は image.Image を1チャンネル8ビットの Mat に変換する
func FromGray(img image.Image) *Mat[uint8] {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	m := &Mat[uint8]{Rows: h, Cols: w, Channels: 1, Pix: make([]uint8, w*h)}

	if gray, ok := img.(*image.Gray); ok {
		for y := 0; y < h; y++ {
			start := gray.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(m.Pix[y*w:(y+1)*w], gray.Pix[start:start+w])
		}
		return m
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			m.Pix[i] = color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
			i++
		}
	}
	return m
}

// fromImageChannels は channels に応じて FromGray か FromImage で変換する
func fromImageChannels(img image.Image, channels int) *Mat[uint8] {
	if channels == 1 {
		return FromGray(img)
	}
	return FromImage(img)
}

// ToImage は8ビットの Mat を image.Image に変換する
// 1チャンネルは *image.Gray、3チャンネル（BGR）は不透明な *image.NRGBA を返す
func ToImage(m *Mat[uint8]) (image.Image, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	rect := image.Rect(0, 0, m.Cols, m.Rows)
	switch m.Channels {
	case 1:
		img := image.NewGray(rect)
		copy(img.Pix, m.Pix)
		return img, nil
	case 3:
		img := image.NewNRGBA(rect)
		for i, j := 0, 0; i < len(m.Pix); i, j = i+3, j+4 {
			img.Pix[j+0] = m.Pix[i+ChannelRed]
			img.Pix[j+1] = m.Pix[i+ChannelGreen]
			img.Pix[j+2] = m.Pix[i+ChannelBlue]
			img.Pix[j+3] = 0xff
		}
		return img, nil
	default:
		return nil, fmt.Errorf("%w: cannot convert %d-channel image", ErrInvalidShape, m.Channels)
	}
}
