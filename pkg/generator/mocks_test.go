package generator

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"github.com/shouni/gemini-image-edit/pkg/domain"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"google.golang.org/genai"
)

// --- Mocks ---

// generateCall は mockAIClient が受け取った引数を保持するのだ。
type generateCall struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

type mockAIClient struct {
	calls        []generateCall
	generateFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

func (m *mockAIClient) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	m.calls = append(m.calls, generateCall{model: model, contents: contents, config: config})
	if m.generateFunc != nil {
		return m.generateFunc(ctx, model, contents, config)
	}
	return responseWithParts(&genai.Part{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte("fake")}}), nil
}

// mockReader はメモリ上のファイルを返す remoteio.InputReader なのだ。
type mockReader struct {
	files map[string][]byte
}

func (m *mockReader) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	data, ok := m.files[uri]
	if !ok {
		return nil, domain.ErrInputNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *mockReader) List(ctx context.Context, uri string, fn func(string) error) error {
	for name := range m.files {
		if err := fn(name); err != nil {
			return err
		}
	}
	return nil
}

// mockWriter は書き込まれた内容を保持する remoteio.OutputWriter なのだ。
type mockWriter struct {
	written      map[string][]byte
	contentTypes map[string]string
	err          error
}

func (m *mockWriter) Write(ctx context.Context, uri string, contentReader io.Reader, contentType string) error {
	if m.err != nil {
		return m.err
	}
	data, err := io.ReadAll(contentReader)
	if err != nil {
		return err
	}
	if m.written == nil {
		m.written = make(map[string][]byte)
		m.contentTypes = make(map[string]string)
	}
	m.written[uri] = data
	m.contentTypes[uri] = contentType
	return nil
}

// --- Helpers ---

// pngHeader は http.DetectContentType が image/png と判定する最小のバイト列なのだ。
var pngHeader = []byte("\x89PNG\r\n\x1a\n-not-really-decodable")

func responseWithParts(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content:      &genai.Content{Parts: parts, Role: genai.RoleModel},
			FinishReason: genai.FinishReasonStop,
		}},
	}
}

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{0, 128, 255, 255})
		}
	}
	return img
}

func encodedPNG(t *testing.T) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, testImage()); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func encodedBMP(t *testing.T) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	if err := bmp.Encode(buf, testImage()); err != nil {
		t.Fatalf("failed to encode bmp: %v", err)
	}
	return buf.Bytes()
}

func encodedTIFF(t *testing.T) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	if err := tiff.Encode(buf, testImage(), nil); err != nil {
		t.Fatalf("failed to encode tiff: %v", err)
	}
	return buf.Bytes()
}

func newTestEditor(t *testing.T, files map[string][]byte, ai *mockAIClient, w *mockWriter) *GeminiEditor {
	t.Helper()
	core, err := NewGeminiImageCore(&mockReader{files: files})
	if err != nil {
		t.Fatalf("NewGeminiImageCore: %v", err)
	}
	editor, err := NewGeminiEditor(core, ai, w)
	if err != nil {
		t.Fatalf("NewGeminiEditor: %v", err)
	}
	return editor
}
