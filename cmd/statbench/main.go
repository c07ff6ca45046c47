package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCtx struct {
	verbose bool
}

var rootCmd = &cobra.Command{
	Use:   "statbench",
	Short: "вычисление статистических функций и проверка генераторов",
	Long: `
statbench даёт доступ к набору статистических функций из командной строки.

  statbench list                       список функций и их сигнатур
  statbench eval pdfNormal 0 0 1       вычислить одну функцию
  statbench eval mean 1,2,3,4          списки передаются через запятую
  statbench run --out results.csv      проверка всех генераторов методом Монте-Карло
`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootCtx.verbose, "verbose", "v", false, "подробный вывод (development-логгер)")
	rootCmd.AddCommand(listCmd, evalCmd, runCmd)
}

func newLogger() (*zap.Logger, error) {
	if rootCtx.verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Ошибка:", err)
		os.Exit(1)
	}
}
