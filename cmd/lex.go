package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/comb/lexer"
	"github.com/gnoswap-labs/comb/scanner"
)

var (
	exprInput     string
	lexJsonOutput bool
	outPath       string
)

var (
	fileStyle       = color.New(color.FgCyan, color.Bold)
	numberStyle     = color.New(color.FgGreen, color.Bold)
	identifierStyle = color.New(color.FgYellow, color.Bold)
	positionStyle   = color.New(color.FgHiBlue)
)

var lexCmd = &cobra.Command{
	Use:   "lex [paths...]",
	Short: "Tokenize files or an inline expression",
	Long: `Tokenizes numeric literals and identifiers from the given files or directories,
or from an inline expression.
Example) comb lex --expr "x1 22134HD 3.14"`,
	Run: func(cmd *cobra.Command, args []string) {
		if exprInput != "" {
			lexExpression(exprInput)
			return
		}
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths, or --expr")
			os.Exit(1)
		}
		runLexProcess(args)
	},
}

func init() {
	lexCmd.Flags().StringVarP(&exprInput, "expr", "e", "", "Tokenize an inline expression instead of files")
	lexCmd.Flags().BoolVar(&lexJsonOutput, "json", false, "Output tokens in JSON format")
	lexCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
}

// fileTokens pairs a source with the tokens lexed from it.
type fileTokens struct {
	File   string        `json:"file"`
	Tokens []lexer.Token `json:"tokens"`
}

func lexExpression(expr string) {
	tokens, err := lexer.New().Tokenize([]byte(expr))
	if err != nil {
		logger.Error("Error tokenizing expression", zap.Error(err))
	}
	printTokens([]fileTokens{{File: "<expr>", Tokens: tokens}})
	if err != nil {
		os.Exit(1)
	}
}

func runLexProcess(paths []string) {
	config, err := parseConfigurationFile(cfgFile)
	if err != nil {
		logger.Fatal("Failed to read configuration file", zap.Error(err))
	}

	files, err := scanner.New(config.Extensions...).Scan(paths...)
	if err != nil {
		logger.Error("Error scanning paths", zap.Error(err))
		os.Exit(1)
	}

	var bar *progressbar.ProgressBar
	if len(files) > 1 {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription("lexing"),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	lex := lexer.New()
	results := make([]fileTokens, 0, len(files))
	failed := false
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			logger.Error("Error reading source file", zap.String("file", file), zap.Error(err))
			failed = true
			continue
		}
		tokens, err := lex.Tokenize(content)
		if err != nil {
			logger.Error("Error tokenizing file", zap.String("file", file), zap.Error(err))
			failed = true
		}
		results = append(results, fileTokens{File: file, Tokens: tokens})
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		fmt.Println()
	}

	printTokens(results)

	if failed {
		os.Exit(1)
	}
}

func printTokens(results []fileTokens) {
	if lexJsonOutput {
		printTokensJSON(results)
		return
	}
	for _, r := range results {
		fileStyle.Printf("%s\n", r.File)
		for _, tok := range r.Tokens {
			positionStyle.Printf("  %4d  ", tok.Position)
			switch tok.Kind {
			case lexer.TokenNumber:
				numberStyle.Printf("%-10s", tok.Kind)
			default:
				identifierStyle.Printf("%-10s", tok.Kind)
			}
			fmt.Printf(" %s\n", tok.Text)
		}
	}
}

func printTokensJSON(results []fileTokens) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		logger.Error("Error marshalling tokens to JSON", zap.Error(err))
		os.Exit(1)
	}
	if outPath == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		logger.Error("Error writing JSON output file", zap.String("path", outPath), zap.Error(err))
		os.Exit(1)
	}
}
