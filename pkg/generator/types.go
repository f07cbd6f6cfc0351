package generator

import "google.golang.org/genai"

// responseModalities はリクエストで常に要求する応答形式です。
var responseModalities = []string{
	string(genai.ModalityText),
	string(genai.ModalityImage),
}

// ImageOutput はレスポンス解析の結果です。
type ImageOutput struct {
	Data       []byte
	MimeType   string
	Text       string
	ImageCount int
}
