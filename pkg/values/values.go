package values

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidRatio is returned when a sampling ratio is outside (0, 1].
var ErrInvalidRatio = errors.New("ratio must be in (0, 1]")

var (
	truthyTokens = []any{
		true,
		"True",
		"true",
		"tRUe",
		"y",
		"Y",
		"YES",
		"yes",
		"Yes",
		"yEs",
		"ON",
		"on",
		"1",
		1,
	}

	falsyTokens = []any{
		false,
		"False",
		"false",
		"falSE",
		"n",
		"N",
		"NO",
		"no",
		"nO",
		"OFF",
		"off",
		"oFF",
		"0",
		0,
	}
)

// 共有乱数源。Seedで再初期化できる
var (
	sharedMu   sync.Mutex
	sharedRand = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Seed resets the shared random source used for sampling.
func Seed(seed int64) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	sharedRand = rand.New(rand.NewSource(seed))
}

// options は生成時のオプション
type options struct {
	extra    []any
	ratio    float64
	hasRatio bool
	rand     *rand.Rand
}

// Option は生成オプション
type Option func(*options)

// WithExtra appends caller-defined tokens after the canonical set, in the given order.
func WithExtra(extra ...any) Option {
	return func(o *options) {
		o.extra = append(o.extra, extra...)
	}
}

// WithRatio requests a shuffled sample of ceil(ratio × total) tokens.
// ratio must be in (0, 1].
func WithRatio(ratio float64) Option {
	return func(o *options) {
		o.ratio = ratio
		o.hasRatio = true
	}
}

// WithRand samples from r instead of the shared random source.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// TruthyValues returns tokens conventionally read as true.
//
// Without WithRatio the result is the canonical set in a fixed order followed by
// any WithExtra tokens. With WithRatio it is a random sample of that combined set.
func TruthyValues(opts ...Option) ([]any, error) {
	return generate(truthyTokens, newOptions(opts))
}

// FalsyValues returns tokens conventionally read as false. See TruthyValues.
func FalsyValues(opts ...Option) ([]any, error) {
	return generate(falsyTokens, newOptions(opts))
}

// MustTruthyValues is like TruthyValues but panics on an invalid ratio.
func MustTruthyValues(opts ...Option) []any {
	vals, err := TruthyValues(opts...)
	if err != nil {
		panic(err)
	}
	return vals
}

// MustFalsyValues is like FalsyValues but panics on an invalid ratio.
func MustFalsyValues(opts ...Option) []any {
	vals, err := FalsyValues(opts...)
	if err != nil {
		panic(err)
	}
	return vals
}

func generate(canonical []any, o *options) ([]any, error) {
	all := make([]any, 0, len(canonical)+len(o.extra))
	all = append(all, canonical...)
	all = append(all, o.extra...)

	if !o.hasRatio {
		return all, nil
	}
	return sample(all, o)
}

// sample はratioに従ってシャッフルされた部分集合を返す
func sample[T any](all []T, o *options) ([]T, error) {
	k, err := sampleSize(o.ratio, len(all))
	if err != nil {
		return nil, err
	}

	var perm []int
	if o.rand != nil {
		perm = o.rand.Perm(len(all))
	} else {
		sharedMu.Lock()
		perm = sharedRand.Perm(len(all))
		sharedMu.Unlock()
	}

	out := make([]T, 0, k)
	for _, idx := range perm[:k] {
		out = append(out, all[idx])
	}
	return out, nil
}

// sampleSize computes ceil(ratio × total) without binary floating point error.
func sampleSize(ratio float64, total int) (int, error) {
	if math.IsNaN(ratio) || ratio <= 0 || ratio > 1 {
		return 0, fmt.Errorf("invalid ratio %v: %w", ratio, ErrInvalidRatio)
	}
	n := decimal.NewFromFloat(ratio).Mul(decimal.NewFromInt(int64(total))).Ceil()
	return int(n.IntPart()), nil
}
