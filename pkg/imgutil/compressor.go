package imgutil

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"strings"
)

// CompressToJPEG は画像データ（PNG, GIF, JPEG等）をJPEG形式に再エンコードします。
// quality は 1〜100 の範囲で指定します。
func CompressToJPEG(data []byte, quality int) ([]byte, error) {
	if quality < 1 || quality > 100 {
		return nil, fmt.Errorf("jpeg quality must be between 1 and 100, got %d", quality)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("画像のデコードに失敗しました: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("JPEGエンコードに失敗しました: %w", err)
	}
	return buf.Bytes(), nil
}

// DetectImageMIME はバイト列の先頭から MIME タイプを判定します。
// 画像でなければ ok は false になります。
func DetectImageMIME(data []byte) (mimeType string, ok bool) {
	if heif := sniffHEIF(data); heif != "" {
		return heif, true
	}
	mimeType = http.DetectContentType(data)
	return mimeType, strings.HasPrefix(mimeType, "image/")
}

// sniffHEIF は ISO BMFF の ftyp ボックスのブランドから HEIC/HEIF を判定します。
// http.DetectContentType はこれらを判定しません。
func sniffHEIF(data []byte) string {
	if len(data) < 12 || string(data[4:8]) != "ftyp" {
		return ""
	}
	switch string(data[8:12]) {
	case "heic", "heix", "hevc", "hevx":
		return "image/heic"
	case "mif1", "msf1", "heim", "heis":
		return "image/heif"
	}
	return ""
}
