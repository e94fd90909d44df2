package imageutil

import (
	"fmt"
	"image"
	"strings"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Interpolation はリサイズ時の補間方式
type Interpolation int

const (
	InterpolationBilinear Interpolation = iota
	InterpolationNearest
	InterpolationCatmullRom
	InterpolationLanczos3
)

func (i Interpolation) String() string {
	switch i {
	case InterpolationBilinear:
		return "bilinear"
	case InterpolationNearest:
		return "nearest"
	case InterpolationCatmullRom:
		return "catmullrom"
	case InterpolationLanczos3:
		return "lanczos3"
	default:
		return fmt.Sprintf("Interpolation(%d)", int(i))
	}
}

// ParseInterpolation は名前から補間方式を取得する
func ParseInterpolation(name string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "bilinear", "linear":
		return InterpolationBilinear, nil
	case "nearest":
		return InterpolationNearest, nil
	case "catmullrom", "cubic":
		return InterpolationCatmullRom, nil
	case "lanczos3", "lanczos":
		return InterpolationLanczos3, nil
	default:
		return InterpolationBilinear, fmt.Errorf("unknown interpolation: %q", name)
	}
}

// ScaleDown は幅・高さをそれぞれ半分（切り捨て）にした新しい画像を返す
func ScaleDown(m *Mat[uint8], interp Interpolation) (*Mat[uint8], error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return Resize(m, m.Cols/2, m.Rows/2, interp)
}

// Resize は指定サイズにリサイズした新しい画像を返す
// チャンネル数は入力と同じ
func Resize(m *Mat[uint8], width, height int, interp Interpolation) (*Mat[uint8], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: cannot resize to %dx%d", ErrInvalidShape, width, height)
	}
	src, err := ToImage(m)
	if err != nil {
		return nil, err
	}

	if interp == InterpolationLanczos3 {
		return fromImageChannels(resize.Resize(uint(width), uint(height), src, resize.Lanczos3), m.Channels), nil
	}

	var scaler draw.Scaler
	switch interp {
	case InterpolationNearest:
		scaler = draw.NearestNeighbor
	case InterpolationCatmullRom:
		scaler = draw.CatmullRom
	default:
		scaler = draw.ApproxBiLinear
	}

	rect := image.Rect(0, 0, width, height)
	var dst draw.Image
	if m.Channels == 1 {
		dst = image.NewGray(rect)
	} else {
		dst = image.NewNRGBA(rect)
	}
	scaler.Scale(dst, rect, src, src.Bounds(), draw.Src, nil)
	return fromImageChannels(dst, m.Channels), nil
}
