package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// Max は2つの整数のうち大きい方を返す
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Clamp は値を指定範囲内に制限する
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// GetEnvOrDefault は環境変数の値を取得し、設定されていない場合はデフォルト値を返す
func GetEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// SuffixedPath は入力ファイル名の拡張子を除いた部分に接尾辞と新しい拡張子を付け、dir 配下のパスを返す
// 例: SuffixedPath("out", "/tmp/cat.jpg", "blue", "png") => "out/cat_blue.png"
func SuffixedPath(dir, inputPath, suffix, ext string) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+"_"+suffix+"."+strings.TrimPrefix(ext, "."))
}
