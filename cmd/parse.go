package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/comb/lexer"
)

var traceSpans bool

var parseCmd = &cobra.Command{
	Use:   "parse [literal]",
	Short: "Parse a single numeric literal and print its value",
	Long: `Parses one floating-point literal with the combinator-built number grammar.
Example) comb parse 22134HD`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("error: Please provide exactly one literal")
			os.Exit(1)
		}

		number := lexer.New().Number
		if traceSpans {
			number = number.Trace(func(value float64, start, end int) {
				logger.Info("matched number",
					zap.Float64("value", value),
					zap.Int("start", start),
					zap.Int("end", end))
			})
		}

		value, err := number.Parse([]byte(args[0]))
		if err != nil {
			logger.Error("Failed to parse literal", zap.String("input", args[0]), zap.Error(err))
			os.Exit(1)
		}
		fmt.Println(value)
	},
}

func init() {
	parseCmd.Flags().BoolVar(&traceSpans, "trace", false, "Log matched spans")
}
