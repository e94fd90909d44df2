package imageutil

import "fmt"

// SeparateChannels はBGRカラー画像を、1つのチャンネルだけを残した3枚の画像に分離する
// 戻り値は (青のみ, 緑のみ, 赤のみ) の順で、いずれも入力と同じ形状の新しい画像
// 入力画像は変更しない。3チャンネルでない場合は ErrInvalidShape を返す
func SeparateChannels[T Sample](m *Mat[T]) (blue, green, red *Mat[T], err error) {
	if err := m.Validate(); err != nil {
		return nil, nil, nil, err
	}
	if m.Channels != 3 {
		return nil, nil, nil, fmt.Errorf("%w: expected 3 channels (BGR), got %d", ErrInvalidShape, m.Channels)
	}

	blue, green, red = ZerosLike(m), ZerosLike(m), ZerosLike(m)
	for i := 0; i < len(m.Pix); i += 3 {
		blue.Pix[i+ChannelBlue] = m.Pix[i+ChannelBlue]
		green.Pix[i+ChannelGreen] = m.Pix[i+ChannelGreen]
		red.Pix[i+ChannelRed] = m.Pix[i+ChannelRed]
	}
	return blue, green, red, nil
}

// MergeChannels は同じ形状の画像を画素ごとに加算した新しい画像を返す
// SeparateChannels の結果を渡すと元の画像が復元される
func MergeChannels[T Sample](mats ...*Mat[T]) (*Mat[T], error) {
	if len(mats) == 0 {
		return nil, fmt.Errorf("%w: no images to merge", ErrInvalidShape)
	}
	for i, m := range mats {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("image %d: %w", i, err)
		}
		if !m.SameShape(mats[0]) {
			return nil, fmt.Errorf("%w: image %d is (%d, %d, %d), want (%d, %d, %d)",
				ErrInvalidShape, i, m.Rows, m.Cols, m.Channels,
				mats[0].Rows, mats[0].Cols, mats[0].Channels)
		}
	}

	dst := ZerosLike(mats[0])
	for _, m := range mats {
		for i, v := range m.Pix {
			dst.Pix[i] += v
		}
	}
	return dst, nil
}
