package generator

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/shouni/gemini-image-edit/pkg/domain"
	"github.com/shouni/gemini-image-edit/pkg/imgutil"

	"github.com/shouni/go-remote-io/pkg/remoteio"
	"google.golang.org/genai"
)

// GeminiImageCore は入力画像の読み込みとリクエスト用パーツへの変換を担います。
type GeminiImageCore struct {
	reader remoteio.InputReader
}

// NewGeminiImageCore は依存関係を注入して GeminiImageCore を初期化します。
func NewGeminiImageCore(reader remoteio.InputReader) (*GeminiImageCore, error) {
	if reader == nil {
		return nil, fmt.Errorf("reader is required")
	}
	return &GeminiImageCore{reader: reader}, nil
}

// LoadImagePart は入力画像を読み込み、InlineData の genai.Part に変換します。
// BMP/GIF/TIFF など API が受け付けない形式は PNG に変換します。
// compressQuality が 0 より大きい場合は JPEG に再圧縮します。圧縮に失敗した場合は元のデータを使います。
func (c *GeminiImageCore) LoadImagePart(ctx context.Context, path string, compressQuality int) (*genai.Part, error) {
	data, err := c.readAll(ctx, path)
	if err != nil {
		return nil, err
	}

	data, mimeType, err := imgutil.NormalizeForUpload(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrNotImage, path, err)
	}

	if compressQuality > 0 {
		compressed, err := imgutil.CompressToJPEG(data, compressQuality)
		if err != nil {
			slog.WarnContext(ctx, "画像の圧縮に失敗したため元データのまま送信します", "path", path, "error", err)
		} else {
			slog.DebugContext(ctx, "入力画像を圧縮しました", "before", len(data), "after", len(compressed))
			data = compressed
			mimeType = "image/jpeg"
		}
	}

	return genai.NewPartFromBytes(data, mimeType), nil
}

func (c *GeminiImageCore) readAll(ctx context.Context, path string) ([]byte, error) {
	rc, err := c.reader.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("入力画像の読み込みに失敗しました: %w", err)
	}
	return data, nil
}
