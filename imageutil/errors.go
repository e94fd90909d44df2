package imageutil

import "errors"

// エラー種別。呼び出し側は errors.Is で判定する
var (
	// ErrInvalidShape は画像の形状（高さ・幅・チャンネル数）が期待と異なる場合のエラー
	ErrInvalidShape = errors.New("invalid image shape")

	// ErrIO はファイルの作成・書き込み・読み込みに失敗した場合のエラー
	ErrIO = errors.New("image i/o failed")

	// ErrUnsupportedFormat は拡張子から画像フォーマットを決定できない場合のエラー
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrLengthMismatch は画像リストと名前（パス）リストの長さが一致しない場合のエラー
	ErrLengthMismatch = errors.New("images and names differ in length")

	// ErrDisplayUnavailable はウィンドウ表示機能なしでビルドされた場合のエラー
	ErrDisplayUnavailable = errors.New("display not available (build with -tags gocv)")
)
