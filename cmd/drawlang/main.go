package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/drawlang/drawlang/pkg/config"
	"github.com/drawlang/drawlang/pkg/interp"
	"github.com/drawlang/drawlang/pkg/lang/command"
	"github.com/drawlang/drawlang/pkg/lang/lexer"
	"github.com/drawlang/drawlang/pkg/lang/parser"
	"github.com/drawlang/drawlang/pkg/render"
)

var (
	configPath string
	outputPath string
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "drawlang",
		Short: "Interpreter for the drawing command language",
		Long: `drawlang tokenizes, parses, and executes drawing scripts
(draw line/circle/rectangle, set color, move, pen up/down, clear)
and renders the result to a PNG image.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newRunCmd(), newCheckCmd(), newTokensCmd(), newReplCmd())
	return root
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Execute a drawing script and render it to an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if outputPath != "" {
				cfg.Output = outputPath
			}

			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read script: %w", err)
			}

			session := uuid.NewString()
			slog.Info("executing script", "session", session, "script", args[0],
				"canvas", fmt.Sprintf("%dx%d", cfg.Canvas.Width, cfg.Canvas.Height))

			canvas := render.NewCanvas(cfg.Canvas.Width, cfg.Canvas.Height)
			results, err := interp.RunProgram(string(src), canvas, cfg.Canvas.Width, cfg.Canvas.Height)
			if err != nil {
				return err
			}
			for _, line := range results {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}

			if err := canvas.SavePNG(cfg.Output); err != nil {
				return fmt.Errorf("failed to write %s: %w", cfg.Output, err)
			}
			slog.Info("wrote image", "session", session, "output", cfg.Output, "commands", len(results))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output image path (overrides config)")
	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <script>",
		Short: "Tokenize and parse a script without executing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read script: %w", err)
			}
			cmds, err := parseSource(string(src))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d commands\n", len(cmds))
			return nil
		},
	}
}

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <script>",
		Short: "Dump the token stream of a script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read script: %w", err)
			}
			tokens, err := lexer.Tokenize(string(src))
			if err != nil {
				return err
			}
			for _, tok := range tokens {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %q line=%d col=%d\n", tok.Kind, tok.Text, tok.Line, tok.Column)
			}
			return nil
		},
	}
}

func newReplCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive session; the image is written on exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if outputPath != "" {
				cfg.Output = outputPath
			}

			canvas := render.NewCanvas(cfg.Canvas.Width, cfg.Canvas.Height)
			in := interp.New(canvas, cfg.Canvas.Width, cfg.Canvas.Height)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "drawlang repl; 'quit' to save and exit")
			scanner := bufio.NewScanner(cmd.InOrStdin())
			fmt.Fprint(out, "> ")
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "quit" || line == "exit" {
					break
				}
				cmds, err := parseSource(line)
				if err != nil {
					fmt.Fprintln(out, err)
				} else {
					for _, c := range cmds {
						fmt.Fprintln(out, in.Execute(c))
					}
				}
				fmt.Fprint(out, "> ")
			}

			if err := canvas.SavePNG(cfg.Output); err != nil {
				return fmt.Errorf("failed to write %s: %w", cfg.Output, err)
			}
			fmt.Fprintf(out, "saved %s\n", cfg.Output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output image path (overrides config)")
	return cmd
}

// parseSource runs the front half of the pipeline: tokenize, strip the
// EOF sentinel, parse.
func parseSource(src string) ([]command.Command, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	if n := len(tokens); n > 0 && tokens[n-1].Kind == lexer.KindEOF {
		tokens = tokens[:n-1]
	}
	return parser.Parse(tokens)
}
