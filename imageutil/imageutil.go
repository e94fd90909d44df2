// imageutil パッケージは画像の読み込み・保存・縮小・表示と、BGRチャンネル分離のためのユーティリティを提供します
package imageutil

// このファイルは、imageutil パッケージのエントリーポイントとして機能し、
// 各ファイルに分割された機能へのアクセスポイントを提供します。
//
// 機能は以下のファイルに分割されています：
// - mat.go: 画像データ（H×W×C の密なグリッド）
// - channels.go: BGRチャンネルの分離と合成
// - convert.go: image.Image との相互変換
// - imageloader.go: 画像の読み込み・保存
// - resize.go: 画像の縮小・リサイズ
// - display.go / display_stub.go: ウィンドウ表示（gocv タグ付きビルドのみ）
// - montage.go: 複数画像の並列プレビュー
// - errors.go: エラー定義
