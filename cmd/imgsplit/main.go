package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/user/go-img-split/config"
	"github.com/user/go-img-split/imageutil"
	"github.com/user/go-img-split/utils"
)

// 定数定義
const (
	UsageRequiredPrefix = "\u001B[33m(REQ)\u001B[0m "
	TimeFormat          = "2006-01-02 15:04:05.0000 [MST]"
)

// 環境変数から読み込んだデフォルト設定（フラグで上書きされる）
var defaults = config.LoadFromEnv()

// アプリケーション設定とオプション
var (
	// コマンドオプション表示に関する設定
	commandDescription      = "Split a BGR color image into blue-only, green-only and red-only images."
	commandOptionFieldWidth = "12" // フィールド幅の推奨値: 一般的に12、ブール値のみの場合は5

	// 必須オプション
	optionImageInput = flag.String("i", "", UsageRequiredPrefix+"Input image path")
	optionOutputDir  = flag.String("o", "", UsageRequiredPrefix+"Output directory (must exist)")

	// 出力設定
	optionOutputExt   = flag.String("e", defaults.OutputExt, "Output image extension (png, jpg, bmp, tiff, gif)")
	optionJPEGQuality = flag.Int("q", defaults.JPEGQuality, "JPEG quality (1-100)")

	// 前処理設定
	optionScaleDown     = flag.Bool("s", defaults.ScaleDown, "Scale the input down to half size before splitting")
	optionInterpolation = flag.String("p", defaults.Interpolation, "Interpolation for scaling (bilinear, nearest, catmullrom, lanczos3)")

	// プレビュー設定
	optionMontage     = flag.Bool("m", defaults.WriteMontage, "Also save the three channel images side by side")
	optionShowWindows = flag.Bool("w", defaults.ShowWindows, "Show the channel images in windows (requires -tags gocv build)")

	// ログ設定
	optionVerbose = flag.Bool("v", defaults.Verbose, "Enable debug logging")
)

func init() {
	// ヘルプメッセージのカスタマイズ
	customizeHelpMessage()
}

// main エントリポイント
func main() {
	// コマンドライン引数の解析
	flag.Parse()

	// ロガーの初期化
	setupLogger(*optionVerbose)

	// 必須オプションのチェック
	if err := validateRequiredOptions(); err != nil {
		log.Error().Err(err).Msg("Invalid options")
		flag.Usage()
		os.Exit(1)
	}

	// 設定オブジェクトの作成
	cfg := createAppConfig()

	// 画像処理の実行
	if err := processImage(cfg); err != nil {
		log.Error().Err(err).Msg("Processing failed")
		os.Exit(1)
	}
}

// setupLogger zerolog のコンソール出力を設定する
func setupLogger(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: TimeFormat})
}

// validateRequiredOptions 必須オプションが指定されているかチェック
func validateRequiredOptions() error {
	var missingOptions []string

	if *optionImageInput == "" {
		missingOptions = append(missingOptions, "i")
	}
	if *optionOutputDir == "" {
		missingOptions = append(missingOptions, "o")
	}

	if len(missingOptions) > 0 {
		return fmt.Errorf("missing required option(s): %s", strings.Join(missingOptions, ", "))
	}

	return nil
}

// createAppConfig アプリケーション設定オブジェクトを作成
func createAppConfig() *config.AppConfig {
	cfg := *defaults
	cfg.OutputExt = strings.TrimPrefix(*optionOutputExt, ".")
	cfg.JPEGQuality = utils.Clamp(*optionJPEGQuality, 1, 100)
	cfg.ScaleDown = *optionScaleDown
	cfg.Interpolation = *optionInterpolation
	cfg.WriteMontage = *optionMontage
	cfg.ShowWindows = *optionShowWindows
	cfg.Verbose = *optionVerbose
	return &cfg
}

// processImage 画像処理のメインフロー
func processImage(cfg *config.AppConfig) error {
	startTime := time.Now()

	interp, err := imageutil.ParseInterpolation(cfg.Interpolation)
	if err != nil {
		return err
	}

	// 1. 画像の読み込み
	img, err := imageutil.LoadImage(*optionImageInput)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	log.Info().
		Str("path", *optionImageInput).
		Msgf("Loaded image (%dx%d, %d channels)", img.Cols, img.Rows, img.Channels)

	// 2. 必要に応じて縮小
	if cfg.ScaleDown {
		img, err = imageutil.ScaleDown(img, interp)
		if err != nil {
			return fmt.Errorf("failed to scale down image: %w", err)
		}
		log.Info().Stringer("interpolation", interp).Msgf("Scaled down to %dx%d", img.Cols, img.Rows)
	}

	// 3. チャンネル分離
	blue, green, red, err := imageutil.SeparateChannels(img)
	if err != nil {
		return fmt.Errorf("failed to separate channels: %w", err)
	}

	// 4. 分離画像を保存
	mats := []*imageutil.Mat[uint8]{blue, green, red}
	paths := []string{
		utils.SuffixedPath(*optionOutputDir, *optionImageInput, "blue", cfg.OutputExt),
		utils.SuffixedPath(*optionOutputDir, *optionImageInput, "green", cfg.OutputExt),
		utils.SuffixedPath(*optionOutputDir, *optionImageInput, "red", cfg.OutputExt),
	}
	opts := imageutil.SaveOptions{JPEGQuality: cfg.JPEGQuality}
	if err := imageutil.SaveImages(mats, paths, opts); err != nil {
		return fmt.Errorf("failed to save channel images: %w", err)
	}
	for _, p := range paths {
		log.Info().Str("path", p).Msg("Saved channel image")
	}

	// 5. プレビュー画像を保存
	if cfg.WriteMontage {
		montage, err := imageutil.RenderMontage(mats, cfg.MontageBorder)
		if err != nil {
			return fmt.Errorf("failed to render montage: %w", err)
		}
		montagePath := utils.SuffixedPath(*optionOutputDir, *optionImageInput, "montage", cfg.OutputExt)
		if err := imageutil.SaveImage(montage, montagePath, opts); err != nil {
			return fmt.Errorf("failed to save montage: %w", err)
		}
		log.Info().Str("path", montagePath).Msg("Saved montage")
	}

	// 処理時間を表示
	log.Info().Msgf("Total processing completed in %.2f seconds", time.Since(startTime).Seconds())

	// 6. ウィンドウ表示（キー入力待ちのため最後に行う）
	if cfg.ShowWindows {
		err := imageutil.ShowImages(mats, []string{"blue", "green", "red"})
		if errors.Is(err, imageutil.ErrDisplayUnavailable) {
			log.Warn().Err(err).Msg("Skipping display")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to show images: %w", err)
		}
	}

	return nil
}

// customizeHelpMessage ヘルプメッセージの表示形式をカスタマイズする
func customizeHelpMessage() {
	b := new(bytes.Buffer)
	func() { flag.CommandLine.SetOutput(b); flag.Usage(); flag.CommandLine.SetOutput(os.Stderr) }()
	usage := strings.Replace(strings.Replace(b.String(), ":", " [OPTIONS] [-h, --help]\n\nDescription:\n  "+commandDescription+"\n\nOptions:\n", 1), "Usage of", "Usage:", 1)
	re := regexp.MustCompile(`[^,] +(-\S+)(?: (\S+))?\n*(\s+)(.*)\n`)
	flag.Usage = func() {
		_, _ = fmt.Fprint(flag.CommandLine.Output(), re.ReplaceAllStringFunc(usage, func(m string) string {
			return fmt.Sprintf("  %-"+commandOptionFieldWidth+"s %s\n", re.FindStringSubmatch(m)[1]+" "+strings.TrimSpace(re.FindStringSubmatch(m)[2]), re.FindStringSubmatch(m)[4])
		}))
	}
}
