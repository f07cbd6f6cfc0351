package generator

import (
	"github.com/shouni/gemini-image-edit/pkg/domain"
	"google.golang.org/genai"
)

// buildConfig は EditRequest から生成設定を組み立てます。
// ImageConfig はアスペクト比か解像度が指定されたときだけ付与します。
func buildConfig(req domain.EditRequest) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: append([]string(nil), responseModalities...),
		Seed:               seedToPtrInt32(req.Seed),
	}

	if req.AspectRatio != "" || req.ImageSize != "" {
		cfg.ImageConfig = &genai.ImageConfig{
			AspectRatio: string(req.AspectRatio),
			ImageSize:   string(req.ImageSize),
		}
	}
	return cfg
}

// buildContents は指示テキストと入力画像を1つのユーザーコンテンツにまとめます。
func buildContents(instruction string, image *genai.Part) []*genai.Content {
	parts := []*genai.Part{genai.NewPartFromText(instruction), image}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}
