package domain

// EditRequest は既存画像1枚に対する編集要求です。
// CLI で一度だけ組み立てられ、以降は変更しません。
type EditRequest struct {
	InputPath   string
	Instruction string
	OutputPath  string
	Model       string
	AspectRatio AspectRatio // 空なら API のデフォルト
	ImageSize   ImageSize   // 空なら API のデフォルト
	Seed        *int64      // nil でランダム
	// CompressQuality が 1〜100 のとき、入力画像を JPEG に再圧縮してから送信します。
	CompressQuality int
}

// EditResult は編集結果の画像データとモデルのテキスト応答です。
type EditResult struct {
	Data       []byte
	MimeType   string
	Text       string // 最後に受け取ったテキストパーツ。なければ空
	ImageCount int    // レスポンスに含まれていた画像パーツの総数
	OutputPath string
}

// HasText はモデルがテキストを返したかどうかを返します。
func (r *EditResult) HasText() bool {
	return r != nil && r.Text != ""
}
