package imageutil

import "fmt"

// チャンネル番号（BGR順）
const (
	ChannelBlue  = 0
	ChannelGreen = 1
	ChannelRed   = 2
)

// Sample は Mat の画素値として使える数値型
type Sample interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~float32 | ~float64
}

// Mat は高さ×幅×チャンネル数の密な画素グリッド
// Pix は行優先・チャンネルインターリーブで、(y, x, c) の値は Pix[(y*Cols+x)*Channels+c]
// 3チャンネルの場合はBGR順（0=青、1=緑、2=赤）
type Mat[T Sample] struct {
	Rows     int
	Cols     int
	Channels int
	Pix      []T
}

// NewMat はゼロで初期化された新しい Mat を作成する
func NewMat[T Sample](rows, cols, channels int) (*Mat[T], error) {
	if rows <= 0 || cols <= 0 || channels <= 0 {
		return nil, fmt.Errorf("%w: (%d, %d, %d)", ErrInvalidShape, rows, cols, channels)
	}
	return &Mat[T]{
		Rows:     rows,
		Cols:     cols,
		Channels: channels,
		Pix:      make([]T, rows*cols*channels),
	}, nil
}

// ZerosLike は m と同じ形状のゼロ画像を作成する。m が nil なら nil を返す
func ZerosLike[T Sample](m *Mat[T]) *Mat[T] {
	if m == nil {
		return nil
	}
	return &Mat[T]{
		Rows:     m.Rows,
		Cols:     m.Cols,
		Channels: m.Channels,
		Pix:      make([]T, len(m.Pix)),
	}
}

// Shape は (高さ, 幅, チャンネル数) を返す
func (m *Mat[T]) Shape() (rows, cols, channels int) {
	return m.Rows, m.Cols, m.Channels
}

// SameShape は2つの Mat の形状が一致するかを返す
func (m *Mat[T]) SameShape(o *Mat[T]) bool {
	return m.Rows == o.Rows && m.Cols == o.Cols && m.Channels == o.Channels
}

// Validate は形状と Pix の長さの整合性を検証する
func (m *Mat[T]) Validate() error {
	if m == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidShape)
	}
	if m.Rows <= 0 || m.Cols <= 0 || m.Channels <= 0 {
		return fmt.Errorf("%w: (%d, %d, %d)", ErrInvalidShape, m.Rows, m.Cols, m.Channels)
	}
	if want := m.Rows * m.Cols * m.Channels; len(m.Pix) != want {
		return fmt.Errorf("%w: pixel buffer has %d samples, shape (%d, %d, %d) needs %d",
			ErrInvalidShape, len(m.Pix), m.Rows, m.Cols, m.Channels, want)
	}
	return nil
}

// PixOffset は (y, x, c) の Pix 内のインデックスを返す
func (m *Mat[T]) PixOffset(y, x, c int) int {
	return (y*m.Cols+x)*m.Channels + c
}

// At は (y, x, c) の値を返す
func (m *Mat[T]) At(y, x, c int) T {
	return m.Pix[m.PixOffset(y, x, c)]
}

// Set は (y, x, c) に値を設定する
func (m *Mat[T]) Set(y, x, c int, v T) {
	m.Pix[m.PixOffset(y, x, c)] = v
}

// Clone は m の独立したコピーを返す。m が nil なら nil を返す
func (m *Mat[T]) Clone() *Mat[T] {
	if m == nil {
		return nil
	}
	dst := ZerosLike(m)
	copy(dst.Pix, m.Pix)
	return dst
}

// Equal は形状と全画素値が一致するかを返す
func (m *Mat[T]) Equal(o *Mat[T]) bool {
	if !m.SameShape(o) || len(m.Pix) != len(o.Pix) {
		return false
	}
	for i := range m.Pix {
		if m.Pix[i] != o.Pix[i] {
			return false
		}
	}
	return true
}
