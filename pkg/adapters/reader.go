package adapters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/shouni/gemini-image-edit/pkg/domain"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// InputReader は remoteio.InputReader をラップし、
// ファイルが存在しない場合のエラーを domain.ErrInputNotFound に変換します。
type InputReader struct {
	inner remoteio.InputReader
}

var _ remoteio.InputReader = (*InputReader)(nil)

// NewInputReader は InputReader を生成します。
func NewInputReader(inner remoteio.InputReader) (*InputReader, error) {
	if inner == nil {
		return nil, fmt.Errorf("inner (remoteio.InputReader) is required")
	}
	return &InputReader{inner: inner}, nil
}

// NewLocalInputReader はクラウドクライアントを持たない UniversalInputReader を使うリーダーを返します。
// gs:// や s3:// はクライアント未設定のエラーになります。
func NewLocalInputReader() *InputReader {
	return &InputReader{inner: remoteio.NewUniversalInputReader(nil, nil)}
}

// Open は指定パスを開きます。
func (r *InputReader) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	rc, err := r.inner.Open(ctx, uri)
	if err != nil {
		return nil, mapNotFound(err, uri)
	}
	return rc, nil
}

// List はパス直下のファイルを順に fn へ渡します。
func (r *InputReader) List(ctx context.Context, uri string, fn func(string) error) error {
	if err := r.inner.List(ctx, uri, fn); err != nil {
		return mapNotFound(err, uri)
	}
	return nil
}

func mapNotFound(err error, uri string) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", domain.ErrInputNotFound, uri)
	}
	return err
}
