package config

import "github.com/chriscorrea/textstat/internal/counter"

const (
	defaultConfigPath  = "~/.config/textstat/config.toml"
	projectConfigName  = "textstat.toml"
	defaultTop         = 10
	defaultFormat      = "json"
	defaultLogLevel    = "error"
	defaultKeywords    = false
	defaultTokens      = false
	defaultIncludeAll  = false
	defaultMarkdownOut = false
)

// Default returns a Config populated with default values.
func Default() Config {
	return Config{
		Analysis: Analysis{
			Top:      defaultTop,
			Keywords: defaultKeywords,
		},
		Output: Output{
			Format: defaultFormat,
		},
		Tokens: Tokens{
			Enabled:  defaultTokens,
			Encoding: counter.DefaultEncoding,
		},
		Source: Source{
			IncludeAll: defaultIncludeAll,
			Markdown:   defaultMarkdownOut,
		},
		Logging: Logging{
			Level: defaultLogLevel,
		},
	}
}
