//go:build gocv

package imageutil

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gocv.io/x/gocv"
)

// ShowImages は画像ごとにウィンドウを開いて表示する
// 各ウィンドウでキーが押されるまでブロックし、次の画像に進む
func ShowImages(mats []*Mat[uint8], names []string) error {
	if len(mats) != len(names) {
		return fmt.Errorf("%w: %d images, %d names", ErrLengthMismatch, len(mats), len(names))
	}

	for i, m := range mats {
		if err := showImage(m, names[i]); err != nil {
			return fmt.Errorf("image %d (%s): %w", i, names[i], err)
		}
	}
	return nil
}

// showImage は1枚の画像をウィンドウに表示し、キー入力を待つ
func showImage(m *Mat[uint8], name string) error {
	if err := m.Validate(); err != nil {
		return err
	}

	var matType gocv.MatType
	switch m.Channels {
	case 1:
		matType = gocv.MatTypeCV8UC1
	case 3:
		// Mat はBGR順なので OpenCV にそのまま渡せる
		matType = gocv.MatTypeCV8UC3
	default:
		return fmt.Errorf("%w: cannot display %d-channel image", ErrInvalidShape, m.Channels)
	}

	mat, err := gocv.NewMatFromBytes(m.Rows, m.Cols, matType, m.Pix)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDisplayUnavailable, err)
	}
	defer mat.Close()

	window := gocv.NewWindow(name)
	defer window.Close()

	log.Debug().Str("window", name).Msg("waiting for key press")
	window.IMShow(mat)
	window.WaitKey(0)
	return nil
}
