package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/chriscorrea/textstat/internal/app"
	"github.com/chriscorrea/textstat/internal/config"
	"github.com/chriscorrea/textstat/internal/counter"

	"github.com/spf13/cobra"
)

// loadConfig reads the config file named by --config (or the default locations)
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if path != "" && !exists {
		return nil, fmt.Errorf("config file %q not found", resolved)
	}
	return cfg, nil
}

// buildConfig constructs an app.Config from the config file, command flags and arguments.
// Flags that were set explicitly take precedence over the file.
func buildConfig(cmd *cobra.Command, args []string, file *config.Config) (app.Config, error) {
	flags := cmd.Flags()

	top := file.Analysis.Top
	if flags.Changed("top") {
		top, _ = flags.GetInt("top")
	}
	if top <= 0 {
		return app.Config{}, fmt.Errorf("--top must be greater than 0")
	}

	keywords := file.Analysis.Keywords
	if flags.Changed("keywords") {
		keywords, _ = flags.GetBool("keywords")
	}
	stopwords := file.Analysis.Stopwords
	if extra, _ := flags.GetStringSlice("stopword"); len(extra) > 0 {
		stopwords = append(append([]string{}, stopwords...), extra...)
	}

	countTokens := file.Tokens.Enabled
	if flags.Changed("tokens") {
		countTokens, _ = flags.GetBool("tokens")
	}
	encoding := file.Tokens.Encoding
	if flags.Changed("encoding") {
		encoding, _ = flags.GetString("encoding")
	}

	selector := file.Source.Selector
	if flags.Changed("selector") {
		selector, _ = flags.GetString("selector")
	}
	includeAll := file.Source.IncludeAll
	if flags.Changed("include-all") {
		includeAll, _ = flags.GetBool("include-all")
	}
	markdownText := file.Source.Markdown
	if flags.Changed("markdown") {
		markdownText, _ = flags.GetBool("markdown")
	}
	forceHTML, _ := flags.GetBool("html")
	quiet, _ := flags.GetBool("quiet")
	debug, _ := flags.GetBool("debug")

	// determine output format; flags win over the config file
	outputFormat, err := app.ParseOutputFormat(file.Output.Format)
	if err != nil {
		return app.Config{}, err
	}
	textFlag, _ := flags.GetBool("text")
	jsonFlag, _ := flags.GetBool("json")
	mdFlag, _ := flags.GetBool("md")
	switch {
	case textFlag:
		outputFormat = app.Text
	case jsonFlag:
		outputFormat = app.JSON
	case mdFlag:
		outputFormat = app.Markdown
	}

	// no arguments provided - use stdin
	source := "-"
	if len(args) > 0 {
		source = args[0]
	}

	return app.Config{
		Source:     source,
		ForceHTML:  forceHTML,
		Selector:   selector,
		IncludeAll: includeAll,
		Markdown:   markdownText,
		Analysis: app.Options{
			Top:         top,
			Keywords:    keywords,
			Stopwords:   stopwords,
			CountTokens: countTokens,
			Encoding:    encoding,
		},
		OutputFormat: outputFormat,
		Quiet:        quiet,
		Debug:        debug,
	}, nil
}

// setupLogger configures the default slog logger; debug mode overrides the configured level
func setupLogger(debug bool, level slog.Level) {
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// prepare loads configuration and logging shared by every command
func prepare(cmd *cobra.Command, args []string) (app.Config, error) {
	file, err := loadConfig(cmd)
	if err != nil {
		return app.Config{}, fmt.Errorf("configuration error: %w", err)
	}

	cfg, err := buildConfig(cmd, args, file)
	if err != nil {
		return app.Config{}, fmt.Errorf("configuration error: %w", err)
	}

	setupLogger(cfg.Debug, file.SlogLevel())
	slog.Debug("Configuration resolved", "source", cfg.Source, "format", cfg.OutputFormat, "top", cfg.Analysis.Top)
	return cfg, nil
}

// newRootCmd builds the textstat command tree
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "textstat [source]",
		Short: "Character counts, word frequencies and top words for a text",
		Long: `Textstat reports the character count, a case-insensitive word-frequency table and the most common words of a text. The source may be a local file, a URL, or standard input.

Examples:
  textstat notes.txt
  textstat --text --top 5 https://example.com/article
  cat essay.md | textstat --keywords`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := prepare(cmd, args)
			if err != nil {
				return err
			}

			// create context with signal handling for graceful shutdown
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			result, err := app.Run(ctx, cfg)
			if err != nil {
				return fmt.Errorf("textstat failed: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), result)
			return nil
		},
	}

	countCmd := &cobra.Command{
		Use:   "count [source]",
		Short: "Print a single total (characters, words or tokens)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := prepare(cmd, args)
			if err != nil {
				return err
			}

			by, _ := cmd.Flags().GetString("by")
			method, err := counter.ParseCountingMethod(by)
			if err != nil {
				return fmt.Errorf("configuration error: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			n, err := app.Count(ctx, cfg, method)
			if err != nil {
				return fmt.Errorf("textstat failed: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the textstat configuration file",
	}

	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a sample configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}
			if len(args) > 0 {
				path = args[0]
			}

			if err := config.CreateSample(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", path)
			return nil
		},
	}

	// shared by the root command and count
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a TOML config file (default: ~/.config/textstat/config.toml)")
	pf.Bool("html", false, "Treat the source as HTML even without an HTML content type")
	pf.StringP("selector", "s", "", "CSS selector applied to HTML sources")
	pf.BoolP("include-all", "i", false, "Analyze the whole HTML body without readability filtering")
	pf.Bool("markdown", false, "Keep Markdown structure when converting HTML")
	pf.String("encoding", counter.DefaultEncoding, "tiktoken encoding for token counts")
	pf.BoolP("quiet", "q", false, "Suppress progress output")
	pf.BoolP("debug", "D", false, "Enable debug logging")
	_ = pf.MarkHidden("debug")

	// analysis flags
	rootCmd.Flags().IntP("top", "n", app.DefaultTop, "Number of most common words to report")
	rootCmd.Flags().BoolP("keywords", "k", false, "Also rank words with English stopwords removed")
	rootCmd.Flags().StringSlice("stopword", nil, "Extra stopword for --keywords (repeatable)")
	rootCmd.Flags().BoolP("tokens", "t", false, "Include an LLM token count")

	// output format flags are mutually exclusive
	rootCmd.Flags().Bool("json", false, "Output in JSON format (default)")
	rootCmd.Flags().Bool("text", false, "Output as plain text tables")
	rootCmd.Flags().Bool("md", false, "Output as Markdown tables")
	rootCmd.MarkFlagsMutuallyExclusive("json", "text", "md")

	countCmd.Flags().String("by", "characters", "What to count: characters, words or tokens")

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(countCmd, configCmd)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
