package main

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"statfn/internal/bench"
	"statfn/internal/funcs"
)

var runCtx struct {
	config        string
	out           string
	only          []string
	runs          int
	draws         int
	seed          int64
	perRunTimeout string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "проверка генераторов методом Монте-Карло",
	Long: `
Запускает каждый генератор из конфигурации несколько раз с разными сидами и
сравнивает эмпирические среднее и стандартное отклонение с теоретическими.
Результаты пишутся в CSV (со сжатием gzip, если путь оканчивается на .gz).
`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runCtx.config, "config", "", "YAML-файл с конфигурацией и списком случаев")
	f.StringVar(&runCtx.out, "out", "artifacts/results.csv", "путь к выходному CSV-файлу (.gz — со сжатием)")
	f.StringSliceVar(&runCtx.only, "cases", nil, "запускать только перечисленные случаи (через запятую)")
	f.IntVar(&runCtx.runs, "runs", 0, "количество запусков каждого случая (0 — из конфигурации)")
	f.IntVar(&runCtx.draws, "draws", 0, "количество выборок в одном запуске (0 — из конфигурации)")
	f.Int64Var(&runCtx.seed, "seed", 0, "базовый сид (0 — из конфигурации)")
	f.StringVar(&runCtx.perRunTimeout, "per_run_timeout", "", "таймаут одного запуска, например 5s; пусто — из конфигурации")
}

func loadRunConfig() (bench.Config, error) {
	cfg := bench.DefaultConfig()
	if runCtx.config != "" {
		var err error
		if cfg, err = bench.LoadConfig(runCtx.config); err != nil {
			return bench.Config{}, err
		}
	}
	if runCtx.runs != 0 {
		cfg.Runs = runCtx.runs
	}
	if runCtx.draws != 0 {
		cfg.Draws = runCtx.draws
	}
	if runCtx.seed != 0 {
		cfg.BaseSeed = runCtx.seed
	}
	if runCtx.perRunTimeout != "" {
		d, err := time.ParseDuration(runCtx.perRunTimeout)
		if err != nil {
			return bench.Config{}, err
		}
		cfg.PerRunTimeout = d
	}
	if len(runCtx.only) > 0 {
		cases, err := selectCases(cfg.Cases, runCtx.only)
		if err != nil {
			return bench.Config{}, err
		}
		cfg.Cases = cases
	}
	return cfg, cfg.Validate()
}

func selectCases(all []bench.Case, names []string) ([]bench.Case, error) {
	byName := make(map[string]bench.Case, len(all))
	for _, c := range all {
		byName[c.Name] = c
	}
	out := make([]bench.Case, 0, len(names))
	for _, n := range names {
		c, ok := byName[n]
		if !ok {
			return nil, errors.Newf("случай %q не найден в конфигурации", n)
		}
		out = append(out, c)
	}
	return out, nil
}

func runBench(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg, err := loadRunConfig()
	if err != nil {
		return errors.Wrap(err, "конфигурация")
	}

	promReg := prometheus.NewRegistry()
	metrics, err := funcs.NewMetrics(promReg)
	if err != nil {
		return err
	}
	runner := bench.NewRunner(cfg, funcs.New(nil, metrics), log)

	out := cmd.OutOrStdout()
	var records []bench.Record
	for _, c := range cfg.Cases {
		log.Info("запуск случая",
			zap.String("case", c.Name),
			zap.String("func", c.Func),
			zap.Float64s("args", c.Args),
			zap.Int("runs", cfg.Runs),
			zap.Int("draws", cfg.Draws))

		rec, err := runner.RunCase(cmd.Context(), c)
		if err != nil {
			return err
		}
		records = append(records, rec)

		fmt.Fprintf(out, "%-14s среднее=%.4f (ожидалось %.4f, z=%.2f) откл.=%.4f (ожидалось %.4f) | Время: среднее=%.2fms откл.=%.2fms\n",
			rec.Case, rec.MeanMean, rec.WantMean, rec.MeanZ, rec.StdMean, rec.WantStd,
			rec.TimeMeanMs, rec.TimeStdMs)
	}

	calls, err := totalCalls(promReg)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Всего выборок: %s\n", humanize.Comma(int64(calls)))

	if err := bench.WriteCSV(runCtx.out, records); err != nil {
		return errors.Wrap(err, "запись CSV")
	}
	log.Info("результаты сохранены", zap.String("path", runCtx.out))
	return nil
}

// totalCalls суммирует statfn_calls_total по всем функциям.
func totalCalls(g prometheus.Gatherer) (float64, error) {
	mfs, err := g.Gather()
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, mf := range mfs {
		if mf.GetName() != "statfn_calls_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total, nil
}
