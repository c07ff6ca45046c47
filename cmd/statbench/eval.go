package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"statfn/internal/funcs"
	"statfn/internal/rng"
)

var evalCtx struct {
	seed int64
}

var evalCmd = &cobra.Command{
	Use:   "eval <function> [args...]",
	Short: "вычислить одну функцию",
	Long: `
Вычисляет зарегистрированную функцию. Числовые аргументы передаются как есть,
списки — через запятую (пустая строка — пустой список).
`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().Int64Var(&evalCtx.seed, "seed", 0, "сид генератора случайных чисел; 0 — глобальный генератор")
}

func runEval(cmd *cobra.Command, args []string) error {
	var src rng.Source
	if evalCtx.seed != 0 {
		src = rng.New(evalCtx.seed)
	}
	reg := funcs.New(src, nil)

	name := args[0]
	spec, ok := reg.Lookup(name)
	if !ok {
		return errors.Wrapf(funcs.ErrUnknownFunction, "функция %q", name)
	}
	in, err := parseArgs(spec, args[1:])
	if err != nil {
		return err
	}
	v, err := reg.Call(name, in...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'g', -1, 64))
	return nil
}

// parseArgs преобразует аргументы командной строки в аргументы вызова.
// Нечисловые слова передаются строками, чтобы реестр сообщил об ошибке так же,
// как при вызове из вычислителя выражений.
func parseArgs(spec funcs.Spec, words []string) ([]any, error) {
	if len(words) != len(spec.Params) {
		return nil, errors.Wrapf(funcs.ErrSignature, "%s: получено аргументов: %d", spec.Signature(), len(words))
	}
	out := make([]any, len(words))
	for i, kind := range spec.Params {
		switch kind {
		case funcs.List:
			out[i] = parseList(words[i])
		default:
			out[i] = parseNumber(words[i])
		}
	}
	return out, nil
}

func parseList(s string) []any {
	s = strings.TrimSpace(s)
	if s == "" {
		return []any{}
	}
	parts := strings.Split(s, ",")
	out := make([]any, len(parts))
	for i, p := range parts {
		out[i] = parseNumber(p)
	}
	return out
}

func parseNumber(s string) any {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return v
}
