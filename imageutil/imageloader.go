package imageutil

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // webp のデコーダを登録
)

// SaveOptions は画像保存時のエンコード設定
type SaveOptions struct {
	JPEGQuality int // JPEGの品質 (1-100)
}

// DefaultSaveOptions はデフォルトの保存設定を返す
func DefaultSaveOptions() SaveOptions {
	return SaveOptions{JPEGQuality: 90}
}

// LoadImage 指定されたパスから画像を読み込む
// フォーマットはファイル内容から判定する（png, jpeg, gif, bmp, tiff, webp）
func LoadImage(filePath string) (*Mat[uint8], error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open file: %w", ErrIO, err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filePath)
		}
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	m := FromImage(img)
	log.Debug().
		Str("path", filePath).
		Str("format", format).
		Int("rows", m.Rows).
		Int("cols", m.Cols).
		Int("channels", m.Channels).
		Msg("image loaded")
	return m, nil
}

// SaveImage 画像をファイルに保存する
// フォーマットは拡張子から決定する。保存先ディレクトリは事前に存在している必要がある
func SaveImage(m *Mat[uint8], outputPath string, opts SaveOptions) error {
	img, err := ToImage(m)
	if err != nil {
		return err
	}

	encode, err := encoderFor(outputPath, opts)
	if err != nil {
		return err
	}

	startTime := time.Now()

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("%w: failed to create output file: %w", ErrIO, err)
	}

	if err := encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("%w: failed to save image: %w", ErrIO, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: failed to close output file: %w", ErrIO, err)
	}

	log.Debug().
		Str("path", outputPath).
		Dur("elapsed", time.Since(startTime)).
		Msg("image saved")
	return nil
}

// SaveImages 複数の画像をそれぞれのパスに順番に保存する
// 最初に失敗した時点で中断し、そのエラーを返す
func SaveImages(mats []*Mat[uint8], outputPaths []string, opts SaveOptions) error {
	if len(mats) != len(outputPaths) {
		return fmt.Errorf("%w: %d images, %d paths", ErrLengthMismatch, len(mats), len(outputPaths))
	}
	for i, m := range mats {
		if err := SaveImage(m, outputPaths[i], opts); err != nil {
			return fmt.Errorf("image %d (%s): %w", i, outputPaths[i], err)
		}
	}
	return nil
}

type encodeFunc func(w io.Writer, img image.Image) error

// encoderFor は拡張子に対応するエンコーダを返す
func encoderFor(outputPath string, opts SaveOptions) (encodeFunc, error) {
	ext := strings.ToLower(filepath.Ext(outputPath))

	switch ext {
	case ".png":
		return png.Encode, nil
	case ".jpg", ".jpeg":
		quality := opts.JPEGQuality
		if quality <= 0 {
			quality = DefaultSaveOptions().JPEGQuality
		}
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
		}, nil
	case ".gif":
		return func(w io.Writer, img image.Image) error {
			return gif.Encode(w, img, nil)
		}, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
