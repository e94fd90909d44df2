//go:build !gocv

package imageutil

import "fmt"

// ShowImages はウィンドウ表示機能なしのビルドでは常に ErrDisplayUnavailable を返す
func ShowImages(mats []*Mat[uint8], names []string) error {
	if len(mats) != len(names) {
		return fmt.Errorf("%w: %d images, %d names", ErrLengthMismatch, len(mats), len(names))
	}
	return ErrDisplayUnavailable
}
