package generator

import (
	"fmt"
	"strings"

	"github.com/shouni/gemini-image-edit/pkg/domain"
	"github.com/shouni/gemini-image-edit/pkg/imgutil"
	"google.golang.org/genai"
)

// partReducer はレスポンスのパーツ列を順に畳み込みます。
// テキストは最後のもの、画像は最初のものを採用します。
type partReducer struct {
	text       string
	image      *genai.Blob
	imageCount int
}

func (r *partReducer) add(part *genai.Part) {
	if part == nil || part.Thought {
		return
	}
	switch {
	case isImageBlob(part.InlineData):
		r.imageCount++
		if r.image == nil {
			r.image = part.InlineData
		}
	case part.Text != "":
		r.text = part.Text
	}
}

func (r *partReducer) output() *ImageOutput {
	out := &ImageOutput{Text: r.text, ImageCount: r.imageCount}
	if r.image != nil {
		out.Data = r.image.Data
		out.MimeType = r.image.MIMEType
		if out.MimeType == "" {
			out.MimeType, _ = imgutil.DetectImageMIME(out.Data)
		}
	}
	return out
}

func isImageBlob(b *genai.Blob) bool {
	if b == nil || len(b.Data) == 0 {
		return false
	}
	return b.MIMEType == "" || strings.HasPrefix(b.MIMEType, "image/")
}

// parseToResponse は Gemini のレスポンスを解析して ImageOutput に変換します。
// 最初の候補 (Candidate) のみを利用します。
func parseToResponse(resp *genai.GenerateContentResponse) (*ImageOutput, error) {
	if resp == nil {
		return nil, fmt.Errorf("%w: Geminiからの応答が空でした", domain.ErrNoImage)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil, noImageError(resp, nil, "")
	}

	candidate := resp.Candidates[0]
	r := &partReducer{}
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			r.add(part)
		}
	}

	out := r.output()
	if out.Data == nil {
		return nil, noImageError(resp, candidate, out.Text)
	}
	return out, nil
}

// noImageError は画像が得られなかった理由を可能な範囲で付け加えます。
func noImageError(resp *genai.GenerateContentResponse, candidate *genai.Candidate, text string) error {
	var details []string
	if pf := resp.PromptFeedback; pf != nil && pf.BlockReason != "" {
		details = append(details, fmt.Sprintf("prompt blocked: %s", pf.BlockReason))
	}
	// 安全フィルター等によるブロックの確認
	if candidate != nil && candidate.FinishReason != "" &&
		candidate.FinishReason != genai.FinishReasonUnspecified &&
		candidate.FinishReason != genai.FinishReasonStop {
		details = append(details, fmt.Sprintf("finish reason: %s", candidate.FinishReason))
	}
	if text != "" {
		details = append(details, fmt.Sprintf("model response: %s", text))
	}

	if len(details) == 0 {
		return fmt.Errorf("%w; check your instruction and try again", domain.ErrNoImage)
	}
	return fmt.Errorf("%w (%s)", domain.ErrNoImage, strings.Join(details, "; "))
}
