package bench

import (
	"context"
	"encoding/csv"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/pgzip"
	"go.uber.org/zap"

	"statfn/internal/funcs"
	"statfn/internal/rng"
	"statfn/internal/stats"
)

// How many draws happen between context checks.
const ctxCheckEvery = 1024

type Record struct {
	Case  string
	Func  string
	Args  []float64
	Runs  int
	Draws int

	WantMean float64
	WantStd  float64

	// Across runs: the per-run empirical mean and standard deviation.
	MeanMean float64
	MeanStd  float64
	StdMean  float64

	// |MeanMean-WantMean| in units of the expected standard error of MeanMean.
	MeanZ float64

	TimeMeanMs float64
	TimeStdMs  float64
}

type Runner struct {
	Runs          int
	Draws         int
	BaseSeed      int64
	PerRunTimeout time.Duration // 0 = no timeout

	Funcs *funcs.Registry
	Log   *zap.Logger
}

// NewRunner builds a Runner from a validated config.
func NewRunner(cfg Config, reg *funcs.Registry, log *zap.Logger) Runner {
	return Runner{
		Runs:          cfg.Runs,
		Draws:         cfg.Draws,
		BaseSeed:      cfg.BaseSeed,
		PerRunTimeout: cfg.PerRunTimeout,
		Funcs:         reg,
		Log:           log,
	}
}

func (r Runner) RunCase(ctx context.Context, c Case) (Record, error) {
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}
	reg := r.Funcs
	if reg == nil {
		reg = funcs.New(nil, nil)
	}
	args := toArgs(c.Args)

	means := make([]float64, 0, r.Runs)
	stds := make([]float64, 0, r.Runs)
	timesMs := make([]float64, 0, r.Runs)
	draws := make(stats.Sample, r.Draws)

	for i := 0; i < r.Runs; i++ {
		seed := rng.SeedFor(r.BaseSeed+int64(i), c.Name)
		runReg := reg.WithSource(rng.New(seed))

		runCtx := ctx
		cancel := func() {}
		if r.PerRunTimeout > 0 {
			runCtx, cancel = context.WithTimeout(ctx, r.PerRunTimeout)
		}
		start := time.Now()
		err := fill(runCtx, runReg, c.Func, args, draws)
		dur := time.Since(start)
		ctxErr := runCtx.Err()
		cancel()

		if err != nil && ctxErr != nil {
			return Record{}, errors.Wrapf(err, "case %s run %d: cancelled/timeout", c.Name, i)
		}
		if err != nil {
			return Record{}, errors.Wrapf(err, "case %s run %d", c.Name, i)
		}

		means = append(means, stats.Mean(draws))
		stds = append(stds, stats.StandardDev(draws))
		timesMs = append(timesMs, float64(dur.Microseconds())/1000.0)

		log.Debug("run finished",
			zap.String("case", c.Name),
			zap.Int("run", i),
			zap.Int64("seed", seed),
			zap.Float64("mean", means[i]),
			zap.Duration("took", dur))
	}

	mStats := CalcFloatStats(means)
	sStats := CalcFloatStats(stds)
	tStats := CalcFloatStats(timesMs)

	wantStd := math.Sqrt(c.WantVariance)
	stdErr := wantStd / math.Sqrt(float64(r.Draws*r.Runs))

	return Record{
		Case:  c.Name,
		Func:  c.Func,
		Args:  c.Args,
		Runs:  r.Runs,
		Draws: r.Draws,

		WantMean: c.WantMean,
		WantStd:  wantStd,

		MeanMean: mStats.Mean,
		MeanStd:  mStats.Std,
		StdMean:  sStats.Mean,
		MeanZ:    math.Abs(mStats.Mean-c.WantMean) / stdErr,

		TimeMeanMs: tStats.Mean,
		TimeStdMs:  tStats.Std,
	}, nil
}

// fill overwrites out with draws of the named function.
func fill(ctx context.Context, reg *funcs.Registry, name string, args []any, out []float64) error {
	for j := range out {
		if j%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		v, err := reg.Call(name, args...)
		if err != nil {
			return err
		}
		out[j] = v
	}
	return nil
}

// WriteCSV writes records to path, gzip-compressed when path ends in ".gz".
func WriteCSV(path string, records []Record) (err error) {
	if d := dirOf(path); d != "" {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	var out io.Writer = f
	var zw *pgzip.Writer
	if strings.HasSuffix(path, ".gz") {
		zw = pgzip.NewWriter(f)
		out = zw
	}

	if err := writeRecords(out, records); err != nil {
		return err
	}
	if zw != nil {
		return zw.Close()
	}
	return nil
}

var csvHeader = []string{
	"case", "func", "args", "runs", "draws",
	"want_mean", "want_std",
	"mean_mean", "mean_std", "std_mean", "mean_z",
	"time_mean_ms", "time_std_ms",
}

func writeRecords(out io.Writer, records []Record) error {
	w := csv.NewWriter(out)
	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Case,
			r.Func,
			joinFloats(r.Args),
			itoa(r.Runs),
			itoa(r.Draws),

			ftoa(r.WantMean),
			ftoa(r.WantStd),

			ftoa(r.MeanMean),
			ftoa(r.MeanStd),
			ftoa(r.StdMean),
			ftoa(r.MeanZ),

			ftoa(r.TimeMeanMs),
			ftoa(r.TimeStdMs),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
