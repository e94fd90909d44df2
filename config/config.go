package config

import (
	"strconv"
	"strings"

	"github.com/user/go-img-split/utils"
)

// 環境変数名のプレフィックス
const EnvPrefix = "IMGSPLIT_"

// AppConfig はチャンネル分離ツールの設定を保持する構造体
type AppConfig struct {
	// 出力の設定
	OutputExt   string // 出力画像の拡張子（png, jpg, bmp, tiff, gif）
	JPEGQuality int    // JPEGの品質 (1-100)

	// 前処理の設定
	ScaleDown     bool   // 分離前に画像を半分に縮小するか
	Interpolation string // 縮小時の補間方式 (bilinear, nearest, catmullrom, lanczos3)

	// プレビューの設定
	WriteMontage  bool // 3枚を並べたプレビュー画像を保存するか
	MontageBorder int  // プレビュー画像の枠の太さ（ピクセル単位）
	ShowWindows   bool // 分離結果をウィンドウに表示するか

	// ログの設定
	Verbose bool // デバッグログを出力するか
}

// NewDefaultConfig はデフォルト設定を持つ新しいAppConfigを返す
func NewDefaultConfig() *AppConfig {
	return &AppConfig{
		OutputExt:     "png",
		JPEGQuality:   90,
		ScaleDown:     false,
		Interpolation: "bilinear",
		WriteMontage:  false,
		MontageBorder: 4,
		ShowWindows:   false,
		Verbose:       false,
	}
}

// LoadFromEnv はデフォルト設定に IMGSPLIT_* 環境変数の値を上書きした設定を返す
// 解釈できない値は無視してデフォルト値を使う
func LoadFromEnv() *AppConfig {
	cfg := NewDefaultConfig()

	cfg.OutputExt = strings.TrimPrefix(utils.GetEnvOrDefault(EnvPrefix+"OUTPUT_EXT", cfg.OutputExt), ".")
	cfg.Interpolation = utils.GetEnvOrDefault(EnvPrefix+"INTERPOLATION", cfg.Interpolation)

	cfg.JPEGQuality = utils.Clamp(envInt("JPEG_QUALITY", cfg.JPEGQuality), 1, 100)
	cfg.MontageBorder = utils.Max(envInt("MONTAGE_BORDER", cfg.MontageBorder), 0)

	cfg.ScaleDown = envBool("SCALE_DOWN", cfg.ScaleDown)
	cfg.WriteMontage = envBool("MONTAGE", cfg.WriteMontage)
	cfg.ShowWindows = envBool("SHOW", cfg.ShowWindows)
	cfg.Verbose = envBool("VERBOSE", cfg.Verbose)

	return cfg
}

func envInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(utils.GetEnvOrDefault(EnvPrefix+key, strconv.Itoa(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return v
}

func envBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(utils.GetEnvOrDefault(EnvPrefix+key, strconv.FormatBool(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return v
}
