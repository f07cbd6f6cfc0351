package imgutil

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// uploadMIMETypes は Gemini がインライン入力としてそのまま受け付ける形式です。
var uploadMIMETypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
	"image/heic": true,
	"image/heif": true,
}

// NormalizeForUpload は入力画像をアップロード可能な形式に揃えます。
// PNG/JPEG/WebP/HEIC/HEIF はそのまま返し、それ以外（BMP, GIF, TIFF など）は
// デコードして PNG に再エンコードします。デコードできなければエラーを返します。
func NormalizeForUpload(data []byte) ([]byte, string, error) {
	mimeType, _ := DetectImageMIME(data)
	if uploadMIMETypes[mimeType] {
		return data, mimeType, nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("unsupported image format (detected %s): %w", mimeType, err)
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, "", fmt.Errorf("%s からPNGへの変換に失敗しました: %w", format, err)
	}
	return buf.Bytes(), "image/png", nil
}
