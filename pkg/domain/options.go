package domain

import (
	"fmt"
	"strings"
)

// AspectRatio は出力画像のアスペクト比です。
type AspectRatio string

// ImageSize は出力画像の解像度です。
type ImageSize string

const (
	ImageSize1K ImageSize = "1K"
	ImageSize2K ImageSize = "2K"
	ImageSize4K ImageSize = "4K"
)

// AspectRatios は API が受け付けるアスペクト比の一覧です（表示順を保持）。
var AspectRatios = []AspectRatio{
	"1:1", "2:3", "3:2", "3:4", "4:3", "4:5", "5:4", "9:16", "16:9", "21:9",
}

// ImageSizes は API が受け付ける解像度の一覧です。
var ImageSizes = []ImageSize{ImageSize1K, ImageSize2K, ImageSize4K}

// ParseAspectRatio は文字列を検証して AspectRatio に変換します。
func ParseAspectRatio(s string) (AspectRatio, error) {
	for _, ar := range AspectRatios {
		if string(ar) == s {
			return ar, nil
		}
	}
	return "", fmt.Errorf("invalid aspect ratio %q (choose from %s)", s, joinValues(AspectRatios))
}

// ParseImageSize は文字列を検証して ImageSize に変換します。
func ParseImageSize(s string) (ImageSize, error) {
	for _, size := range ImageSizes {
		if string(size) == s {
			return size, nil
		}
	}
	return "", fmt.Errorf("invalid size %q (choose from %s)", s, joinValues(ImageSizes))
}

// AspectRatioChoices は選択肢をカンマ区切りで返します。
func AspectRatioChoices() string {
	return joinValues(AspectRatios)
}

func joinValues[T ~string](values []T) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return strings.Join(out, ", ")
}
