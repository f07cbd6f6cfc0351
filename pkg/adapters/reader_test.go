package adapters

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shouni/gemini-image-edit/pkg/domain"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputReader_Open(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "in.png")
	require.NoError(t, os.WriteFile(path, []byte("image-bytes"), 0o644))

	r := NewLocalInputReader()

	t.Run("存在するファイルを読み込めるのだ", func(t *testing.T) {
		rc, err := r.Open(ctx, path)
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "image-bytes", string(data))
	})

	t.Run("存在しないファイルは ErrInputNotFound になるのだ", func(t *testing.T) {
		_, err := r.Open(ctx, filepath.Join(dir, "missing.png"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInputNotFound)
		assert.Contains(t, err.Error(), "missing.png")
	})

	t.Run("ファイル名に :// を含むローカルパスも読めるのだ", func(t *testing.T) {
		sub := filepath.Join(dir, "weird:")
		require.NoError(t, os.Mkdir(sub, 0o755))
		odd := filepath.Join(sub, "x.png")
		require.NoError(t, os.WriteFile(odd, []byte("ok"), 0o644))

		name := strings.Replace(odd, "weird:/", "weird://", 1)
		rc, err := r.Open(ctx, name)
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "ok", string(data))
	})

	t.Run("クライアント未設定の gs:// は not found 以外のエラーなのだ", func(t *testing.T) {
		_, err := r.Open(ctx, "gs://bucket/in.png")
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInputNotFound)
	})
}

func TestInputReader_List(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.png"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.jpg"), []byte("b"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	r := NewLocalInputReader()

	t.Run("ファイルだけが列挙されるのだ", func(t *testing.T) {
		var got []string
		err := r.List(ctx, dir, func(p string) error {
			got = append(got, filepath.Base(p))
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.png", "b.jpg"}, got)
	})

	t.Run("存在しないディレクトリは ErrInputNotFound になるのだ", func(t *testing.T) {
		err := r.List(ctx, filepath.Join(dir, "nope"), func(string) error { return nil })
		assert.ErrorIs(t, err, domain.ErrInputNotFound)
	})
}

func TestNewInputReader(t *testing.T) {
	_, err := NewInputReader(nil)
	assert.Error(t, err)

	r, err := NewInputReader(remoteio.NewUniversalInputReader(nil, nil))
	require.NoError(t, err)
	assert.NotNil(t, r)
}

func TestUniversalIOWriter_LocalOutput(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	out := filepath.Join(dir, "nested", "out.png")

	w := remoteio.NewUniversalIOWriter(nil, nil)
	require.NoError(t, w.Write(ctx, out, strings.NewReader("img"), "image/png"))

	rc, err := NewLocalInputReader().Open(ctx, out)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "img", string(data))
}
