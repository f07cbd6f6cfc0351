package generator

import (
	"context"

	"github.com/shouni/gemini-image-edit/pkg/domain"
	"google.golang.org/genai"
)

// ContentGenerator は Gemini の generateContent 呼び出しを抽象化します。
// *genai.Models がそのまま満たします。
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ImageEditor は CLI 層が利用する統合窓口です。
type ImageEditor interface {
	Edit(ctx context.Context, req domain.EditRequest) (*domain.EditResult, error)
}
