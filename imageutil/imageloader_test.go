package imageutil

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadImage(t *testing.T) {
	// テスト用の一時ディレクトリを作成
	tempDir := t.TempDir()

	// テスト用PNGファイルを作成
	pngPath := filepath.Join(tempDir, "test.png")
	createTestImageFile(t, pngPath, "png")

	// テスト用JPEGファイルを作成
	jpegPath := filepath.Join(tempDir, "test.jpg")
	createTestImageFile(t, jpegPath, "jpeg")

	// 存在しないファイルパス
	nonExistentPath := filepath.Join(tempDir, "non_existent.png")

	// 画像ではないファイル
	unsupportedPath := filepath.Join(tempDir, "test.txt")
	createEmptyFile(t, unsupportedPath)

	tests := []struct {
		name     string
		filePath string
		wantErr  error
	}{
		{
			name:     "正常系: PNG画像を読み込む",
			filePath: pngPath,
		},
		{
			name:     "正常系: JPEG画像を読み込む",
			filePath: jpegPath,
		},
		{
			name:     "異常系: 存在しないファイル",
			filePath: nonExistentPath,
			wantErr:  ErrIO,
		},
		{
			name:     "異常系: サポートされていないフォーマット",
			filePath: unsupportedPath,
			wantErr:  ErrUnsupportedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadImage(tt.filePath)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadImage() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadImage() unexpected error = %v", err)
			}
			if got.Rows != 100 || got.Cols != 100 || got.Channels != 3 {
				t.Errorf("LoadImage() shape = (%d, %d, %d), want (100, 100, 3)", got.Rows, got.Cols, got.Channels)
			}
		})
	}
}

func TestLoadImage_GrayscaleAlwaysBGR(t *testing.T) {
	tempDir := t.TempDir()

	gray8 := image.NewGray(image.Rect(0, 0, 4, 3))
	gray16 := image.NewGray16(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			v := uint8(x*40 + y*10)
			gray8.SetGray(x, y, color.Gray{Y: v})
			gray16.SetGray16(x, y, color.Gray16{Y: uint16(v) * 0x101})
		}
	}

	tests := []struct {
		name string
		img  image.Image
	}{
		{"正常系: 8ビットグレースケールPNG", gray8},
		{"正常系: 16ビットグレースケールPNG", gray16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tempDir, "gray.png")
			writePNG(t, path, tt.img)

			m, err := LoadImage(path)
			if err != nil {
				t.Fatalf("LoadImage() error = %v", err)
			}
			if m.Rows != 3 || m.Cols != 4 || m.Channels != 3 {
				t.Fatalf("LoadImage() shape = (%d, %d, %d), want (3, 4, 3)", m.Rows, m.Cols, m.Channels)
			}

			// 輝度がB・G・Rの全てに複製される
			want := uint8(3*40 + 2*10)
			for c := 0; c < 3; c++ {
				if got := m.At(2, 3, c); got != want {
					t.Errorf("At(2, 3, %d) = %d, want %d", c, got, want)
				}
			}

			blue, green, red, err := SeparateChannels(m)
			if err != nil {
				t.Fatalf("SeparateChannels() error = %v", err)
			}
			if blue.At(2, 3, ChannelBlue) != want || green.At(2, 3, ChannelGreen) != want || red.At(2, 3, ChannelRed) != want {
				t.Errorf("SeparateChannels() did not keep the gray value in each channel")
			}
		})
	}
}

func TestSaveImage(t *testing.T) {
	// テスト用の一時ディレクトリを作成
	tempDir := t.TempDir()

	// テスト用の画像を作成
	m := FromImage(generateTestImageData())

	tests := []struct {
		name       string
		outputPath string
		wantErr    error
	}{
		{
			name:       "正常系: PNG画像を保存",
			outputPath: filepath.Join(tempDir, "output.png"),
		},
		{
			name:       "正常系: JPEG画像を保存",
			outputPath: filepath.Join(tempDir, "output.jpg"),
		},
		{
			name:       "正常系: BMP画像を保存",
			outputPath: filepath.Join(tempDir, "output.bmp"),
		},
		{
			name:       "正常系: TIFF画像を保存",
			outputPath: filepath.Join(tempDir, "output.tiff"),
		},
		{
			name:       "正常系: GIF画像を保存",
			outputPath: filepath.Join(tempDir, "output.gif"),
		},
		{
			name:       "異常系: サポートされていないフォーマット",
			outputPath: filepath.Join(tempDir, "output.txt"),
			wantErr:    ErrUnsupportedFormat,
		},
		{
			name:       "異常系: 存在しないディレクトリ",
			outputPath: filepath.Join(tempDir, "invalid/path/output.png"),
			wantErr:    ErrIO,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SaveImage(m, tt.outputPath, DefaultSaveOptions())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("SaveImage() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SaveImage() unexpected error = %v", err)
			}

			// ファイルが実際に作成されたか確認
			if _, err := os.Stat(tt.outputPath); os.IsNotExist(err) {
				t.Errorf("SaveImage() did not create file at %s", tt.outputPath)
			}
		})
	}
}

func TestSaveImage_LosslessRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	m := FromImage(generateTestImageData())

	for _, ext := range []string{".png", ".bmp", ".tif"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(tempDir, "roundtrip"+ext)
			if err := SaveImage(m, path, DefaultSaveOptions()); err != nil {
				t.Fatalf("SaveImage() error = %v", err)
			}

			got, err := LoadImage(path)
			if err != nil {
				t.Fatalf("LoadImage() error = %v", err)
			}
			if !got.Equal(m) {
				t.Errorf("round trip through %s changed the image", ext)
			}
		})
	}
}

func TestSaveImage_InvalidShape(t *testing.T) {
	m := &Mat[uint8]{Rows: 1, Cols: 1, Channels: 2, Pix: make([]uint8, 2)}
	err := SaveImage(m, filepath.Join(t.TempDir(), "out.png"), DefaultSaveOptions())
	if !errors.Is(err, ErrInvalidShape) {
		t.Errorf("SaveImage() error = %v, want ErrInvalidShape", err)
	}
}

func TestSaveImages(t *testing.T) {
	tempDir := t.TempDir()
	m := FromImage(generateTestImageData())

	t.Run("正常系: 複数画像を保存", func(t *testing.T) {
		paths := []string{filepath.Join(tempDir, "a.png"), filepath.Join(tempDir, "b.jpg")}
		if err := SaveImages([]*Mat[uint8]{m, m}, paths, DefaultSaveOptions()); err != nil {
			t.Fatalf("SaveImages() error = %v", err)
		}
		for _, p := range paths {
			if _, err := os.Stat(p); err != nil {
				t.Errorf("SaveImages() did not create %s: %v", p, err)
			}
		}
	})

	t.Run("異常系: 長さが不一致", func(t *testing.T) {
		err := SaveImages([]*Mat[uint8]{m}, nil, DefaultSaveOptions())
		if !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("SaveImages() error = %v, want ErrLengthMismatch", err)
		}
	})

	t.Run("異常系: 途中で失敗したら中断", func(t *testing.T) {
		paths := []string{
			filepath.Join(tempDir, "missing", "c.png"),
			filepath.Join(tempDir, "d.png"),
		}
		err := SaveImages([]*Mat[uint8]{m, m}, paths, DefaultSaveOptions())
		if !errors.Is(err, ErrIO) {
			t.Errorf("SaveImages() error = %v, want ErrIO", err)
		}
		if _, err := os.Stat(paths[1]); !os.IsNotExist(err) {
			t.Errorf("SaveImages() continued after a failure")
		}
	})
}

// テスト用の画像ファイルを作成するヘルパー関数
func createTestImageFile(t *testing.T, path string, format string) {
	img := generateTestImageData()

	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("テスト用画像ファイルの作成に失敗しました: %v", err)
	}
	defer file.Close()

	switch format {
	case "png":
		encodeErr := png.Encode(file, img)
		if encodeErr != nil {
			t.Fatalf("PNG画像のエンコードに失敗しました: %v", encodeErr)
		}
	case "jpeg":
		encodeErr := jpeg.Encode(file, img, &jpeg.Options{Quality: 90})
		if encodeErr != nil {
			t.Fatalf("JPEG画像のエンコードに失敗しました: %v", encodeErr)
		}
	default:
		t.Fatalf("サポートされていない画像フォーマット: %s", format)
	}
}

// PNGファイルを書き出すヘルパー関数
func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("PNGファイルの作成に失敗しました: %v", err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		t.Fatalf("PNG画像のエンコードに失敗しました: %v", err)
	}
}

// 空のファイルを作成するヘルパー関数
func createEmptyFile(t *testing.T, path string) {
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("空ファイルの作成に失敗しました: %v", err)
	}
	defer file.Close()
}

// テスト用の画像データを作成するヘルパー関数
func generateTestImageData() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))

	// 画像にいくつかのピクセルを設定
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(x % 256),
				G: uint8(y % 256),
				B: uint8((x + y) % 256),
				A: 255,
			})
		}
	}

	return img
}
