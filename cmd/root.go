package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shouni/gemini-image-edit/internal/config"
	"github.com/shouni/gemini-image-edit/internal/logger"
	"github.com/shouni/gemini-image-edit/pkg/adapters"
	"github.com/shouni/gemini-image-edit/pkg/domain"
	"github.com/shouni/gemini-image-edit/pkg/generator"

	"github.com/shouni/go-remote-io/pkg/remoteio"
	"github.com/spf13/cobra"
	"google.golang.org/genai"
)

var version = "dev"

// ClientFactory は設定から Gemini クライアントを生成する関数です。
type ClientFactory func(ctx context.Context, cfg config.Config) (generator.ContentGenerator, error)

// options はコマンドラインフラグの値を保持するのだ。
type options struct {
	model           string
	aspect          aspectFlag
	size            sizeFlag
	seed            int32
	compressQuality int
	logLevel        string
}

const longDescription = `既存の画像と編集指示を Gemini に送り、編集後の画像を保存するのだ。

Examples:
  gemini-image-edit diagram.png "Add API Gateway component between client and services" edited.png
  gemini-image-edit schema.png "Highlight the foreign key relationships in red" schema_edited.png
  gemini-image-edit flowchart.png "Add error handling branch with red arrows" flowchart_v2.png -a 16:9 -s 2K

Environment:
  GEMINI_API_KEY   Required API key
  GEMINI_MODEL     Default model (overridden by --model)
  GEMINI_BASE_URL  Override the API endpoint
  LOG_LEVEL        Default log level (overridden by --log-level)`

// NewRootCmd はルートコマンドを組み立てるのだ。
// 出力先とクライアント生成関数を差し替えられるので、テストからも同じ経路で実行できるのだ。
func NewRootCmd(stdout, stderr io.Writer, newClient ClientFactory) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "gemini-image-edit <input> <instruction> <output>",
		Short:         "Edit an existing image with Gemini",
		Long:          longDescription,
		Version:       version,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args, opts, stdout, stderr, newClient)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opts.model, "model", "m", config.DefaultModel, "Model to use (default: Nano Banana Pro)")
	flags.VarP(&opts.aspect, "aspect", "a", "Output aspect ratio ("+domain.AspectRatioChoices()+")")
	flags.VarP(&opts.size, "size", "s", "Output resolution (1K, 2K, 4K)")
	flags.Int32Var(&opts.seed, "seed", 0, "Generation seed (random when omitted)")
	flags.IntVar(&opts.compressQuality, "compress-quality", 0, "Re-encode the input as JPEG with this quality (1-100) before upload; 0 disables")
	flags.StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string, opts *options, stdout, stderr io.Writer, newClient ClientFactory) error {
	if opts.compressQuality < 0 || opts.compressQuality > 100 {
		return fmt.Errorf("--compress-quality must be between 0 and 100, got %d", opts.compressQuality)
	}

	cfg := config.LoadConfig()
	if cmd.Flags().Changed("model") {
		cfg.Model = opts.model
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(logger.New(stderr, level))

	if err := cfg.Validate(); err != nil {
		return err
	}

	req := domain.EditRequest{
		InputPath:       args[0],
		Instruction:     args[1],
		OutputPath:      args[2],
		Model:           cfg.Model,
		AspectRatio:     opts.aspect.value,
		ImageSize:       opts.size.value,
		CompressQuality: opts.compressQuality,
	}
	if cmd.Flags().Changed("seed") {
		seed := int64(opts.seed)
		req.Seed = &seed
	}

	ctx := cmd.Context()
	editor, err := buildEditor(ctx, cfg, newClient)
	if err != nil {
		return err
	}

	res, err := editor.Edit(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Edited image saved to: %s\n", res.OutputPath)
	if res.HasText() {
		fmt.Fprintf(stdout, "Model response: %s\n", res.Text)
	}
	return nil
}

// buildEditor は依存関係を組み立てて ImageEditor を返すのだ。
func buildEditor(ctx context.Context, cfg config.Config, newClient ClientFactory) (generator.ImageEditor, error) {
	client, err := newClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	core, err := generator.NewGeminiImageCore(adapters.NewLocalInputReader())
	if err != nil {
		return nil, err
	}
	editor, err := generator.NewGeminiEditor(core, client, remoteio.NewUniversalIOWriter(nil, nil))
	if err != nil {
		return nil, err
	}
	return editor, nil
}

// NewGenAIClient は Gemini API バックエンドの genai クライアントを生成します。
func NewGenAIClient(ctx context.Context, cfg config.Config) (generator.ContentGenerator, error) {
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("Geminiクライアントの初期化に失敗しました: %w", err)
	}
	return client.Models, nil
}

// Execute はプロセスの引数でコマンドを実行し、終了コードを返すのだ。
func Execute() int {
	if err := config.LoadEnvFiles(config.DefaultEnvFiles...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	root := NewRootCmd(os.Stdout, os.Stderr, NewGenAIClient)
	return run(context.Background(), root, os.Args[1:], os.Stderr)
}

// run はすべてのエラーを "Error: " 付きで stderr に出し、終了コード 1 に対応付けるのだ。
func run(ctx context.Context, root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
