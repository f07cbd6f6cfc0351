package generator

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/shouni/gemini-image-edit/pkg/domain"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// GeminiEditor は入力画像と指示テキストを Gemini に送り、編集結果を書き出す統合エディターです。
type GeminiEditor struct {
	imgCore  *GeminiImageCore
	aiClient ContentGenerator
	writer   remoteio.OutputWriter
}

// NewGeminiEditor は GeminiEditor を初期化するのだ。
func NewGeminiEditor(core *GeminiImageCore, aiClient ContentGenerator, writer remoteio.OutputWriter) (*GeminiEditor, error) {
	if core == nil {
		return nil, fmt.Errorf("core (GeminiImageCore) is required")
	}
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient (ContentGenerator) is required")
	}
	if writer == nil {
		return nil, fmt.Errorf("writer (remoteio.OutputWriter) is required")
	}

	return &GeminiEditor{
		imgCore:  core,
		aiClient: aiClient,
		writer:   writer,
	}, nil
}

// Edit は1回の編集リクエストを実行するのだ。
// 画像が返ってこなかった場合は domain.ErrNoImage を返し、出力ファイルは作らないのだ。
func (e *GeminiEditor) Edit(ctx context.Context, req domain.EditRequest) (*domain.EditResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	imgPart, err := e.imgCore.LoadImagePart(ctx, req.InputPath, req.CompressQuality)
	if err != nil {
		return nil, err
	}

	contents := buildContents(req.Instruction, imgPart)
	cfg := buildConfig(req)

	slog.InfoContext(ctx, "Geminiに画像編集をリクエストします",
		"model", req.Model,
		"input", req.InputPath,
		"aspect_ratio", req.AspectRatio,
		"image_size", req.ImageSize)

	resp, err := e.aiClient.GenerateContent(ctx, req.Model, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("Gemini画像編集エラー: %w", err)
	}

	out, err := parseToResponse(resp)
	if err != nil {
		return nil, err
	}

	if out.ImageCount > 1 {
		slog.WarnContext(ctx, "複数の画像が返されたため最初の1枚だけを保存します",
			"images", out.ImageCount, "dropped", out.ImageCount-1)
	}

	if err := e.writer.Write(ctx, req.OutputPath, bytes.NewReader(out.Data), out.MimeType); err != nil {
		return nil, err
	}

	return &domain.EditResult{
		Data:       out.Data,
		MimeType:   out.MimeType,
		Text:       out.Text,
		ImageCount: out.ImageCount,
		OutputPath: req.OutputPath,
	}, nil
}

func validateRequest(req domain.EditRequest) error {
	switch {
	case req.InputPath == "":
		return fmt.Errorf("input path is required")
	case strings.TrimSpace(req.Instruction) == "":
		return fmt.Errorf("instruction is required and cannot be empty")
	case req.OutputPath == "":
		return fmt.Errorf("output path is required")
	case req.Model == "":
		return fmt.Errorf("model is required")
	case req.Seed != nil && (*req.Seed < math.MinInt32 || *req.Seed > math.MaxInt32):
		return fmt.Errorf("seed %d is out of range (must fit in int32)", *req.Seed)
	}
	return nil
}
