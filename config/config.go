package config

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultServerPort     = "8080"
	DefaultTessdataPrefix = "/usr/share/tesseract-ocr/5/tessdata/"
	DefaultDocsDir        = "data/docs"
	DefaultStorePath      = "data/w2agent.db"
	DefaultGeminiModel    = "gemini-2.5-pro"
	DefaultTopK           = 4
	DefaultMinRelevance   = 0.30
	DefaultMaxFileSize    = 10 * 1024 * 1024 // 10 MB
)

type Config struct {
	ServerPort     string
	TessdataPrefix string
	OCRServerURL   string
	DocsDir        string
	StorePath      string
	GeminiAPIKey   string
	GeminiModel    string
	TopK           int
	MinRelevance   float64
	MaxFileSize    int64
}

// Load builds the configuration from defaults overridden by W2_* environment
// variables (W2_SERVER_PORT, W2_GEMINI_API_KEY, ...).
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix("W2")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server_port", DefaultServerPort)
	v.SetDefault("tessdata_prefix", DefaultTessdataPrefix)
	v.SetDefault("ocr_server_url", "")
	v.SetDefault("docs_dir", DefaultDocsDir)
	v.SetDefault("store_path", DefaultStorePath)
	v.SetDefault("gemini_api_key", "")
	v.SetDefault("gemini_model", DefaultGeminiModel)
	v.SetDefault("top_k", DefaultTopK)
	v.SetDefault("min_relevance", DefaultMinRelevance)
	v.SetDefault("max_file_size", DefaultMaxFileSize)

	return &Config{
		ServerPort:     v.GetString("server_port"),
		TessdataPrefix: v.GetString("tessdata_prefix"),
		OCRServerURL:   v.GetString("ocr_server_url"),
		DocsDir:        v.GetString("docs_dir"),
		StorePath:      v.GetString("store_path"),
		GeminiAPIKey:   v.GetString("gemini_api_key"),
		GeminiModel:    v.GetString("gemini_model"),
		TopK:           v.GetInt("top_k"),
		MinRelevance:   v.GetFloat64("min_relevance"),
		MaxFileSize:    v.GetInt64("max_file_size"),
	}
}
