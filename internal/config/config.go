package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvAPIKey   = "GEMINI_API_KEY"
	EnvModel    = "GEMINI_MODEL"
	EnvBaseURL  = "GEMINI_BASE_URL"
	EnvLogLevel = "LOG_LEVEL"

	// DefaultModel は編集に使う既定のモデル (Nano Banana Pro) です。
	DefaultModel    = "gemini-3-pro-image-preview"
	DefaultLogLevel = "warn"
)

// DefaultEnvFiles はカレントディレクトリから読み込む env ファイルです。
var DefaultEnvFiles = []string{".env"}

// ErrMissingAPIKey は API キーが設定されていない場合の設定エラーです。
var ErrMissingAPIKey = errors.New(EnvAPIKey + " environment variable not set")

// Config は環境変数から読み込まれる実行時設定です。
type Config struct {
	APIKey   string
	Model    string
	BaseURL  string // 空なら SDK の既定エンドポイント
	LogLevel string
}

// LoadEnvFiles は存在する env ファイルだけを読み込みます。
// 既に設定されている環境変数は上書きしません。
func LoadEnvFiles(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("%s を確認できませんでした: %w", f, err)
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("%s の読み込みに失敗しました: %w", f, err)
		}
	}
	return nil
}

// LoadConfig は環境変数から設定を読み込み、未設定の項目にはデフォルト値を使います。
func LoadConfig() Config {
	return Config{
		APIKey:   strings.TrimSpace(os.Getenv(EnvAPIKey)),
		Model:    getEnv(EnvModel, DefaultModel),
		BaseURL:  os.Getenv(EnvBaseURL),
		LogLevel: getEnv(EnvLogLevel, DefaultLogLevel),
	}
}

// Validate は必須項目を検証します。
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
