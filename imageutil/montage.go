package imageutil

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// RenderMontage は複数の画像を左から右へ並べ、白枠で囲んだ1枚の画像を作成する
// 全ての画像は同じ高さ・同じチャンネル数である必要がある
func RenderMontage(mats []*Mat[uint8], borderThickness int) (*Mat[uint8], error) {
	if len(mats) == 0 {
		return nil, fmt.Errorf("%w: no images to render", ErrInvalidShape)
	}
	if borderThickness < 0 {
		borderThickness = 0
	}

	// 出力サイズを計算
	var rows, channels int
	width := borderThickness
	for i, m := range mats {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("image %d: %w", i, err)
		}
		if i == 0 {
			rows, channels = m.Rows, m.Channels
		}
		if m.Rows != rows || m.Channels != channels {
			return nil, fmt.Errorf("%w: image %d is (%d, _, %d), want (%d, _, %d)",
				ErrInvalidShape, i, m.Rows, m.Channels, rows, channels)
		}
		width += m.Cols + borderThickness
	}
	height := rows + 2*borderThickness

	rect := image.Rect(0, 0, width, height)
	var canvas draw.Image
	if channels == 1 {
		canvas = image.NewGray(rect)
	} else {
		canvas = image.NewNRGBA(rect)
	}

	// 背景（枠）を白で塗りつぶす
	draw.Draw(canvas, rect, image.NewUniform(color.White), image.Point{}, draw.Src)

	x := borderThickness
	for _, m := range mats {
		src, err := ToImage(m)
		if err != nil {
			return nil, err
		}
		dstRect := image.Rect(x, borderThickness, x+m.Cols, borderThickness+m.Rows)
		draw.Draw(canvas, dstRect, src, image.Point{}, draw.Src)
		x += m.Cols + borderThickness
	}

	return fromImageChannels(canvas, channels), nil
}
