package dllist

import (
	"fmt"

	"github.com/sirkon/errors"
	"github.com/sirkon/ranklist/internal/logging"
)

// Option тип опции для создания списка.
type Option interface {
	String() string
	apply(c *config) error
}

// WithAllocator задаёт хранилище для заголовка, узлов и временного индекса.
func WithAllocator(a Allocator) Option {
	return allocatorOption{a: a}
}

// WithRandom задаёт источник случайных чисел для Shuffle.
func WithRandom(r Random) Option {
	return randomOption{r: r}
}

// WithShuffle задаёт алгоритм перемешивания.
func WithShuffle(algo ShuffleAlgorithm) Option {
	return shuffleOption(algo)
}

// WithLogger задаёт логгер.
func WithLogger(l logging.Logger) Option {
	return loggerOption{l: l}
}

type config struct {
	alloc  Allocator
	rnd    Random
	algo   ShuffleAlgorithm
	logger logging.Logger
}

func newConfig(opts []Option) (config, error) {
	c := config{
		alloc:  Unlimited(),
		algo:   ShuffleUniform,
		logger: logging.Nop(),
	}

	for _, opt := range opts {
		if err := opt.apply(&c); err != nil {
			return config{}, errors.Wrap(err, opt.String())
		}
	}

	if c.rnd == nil {
		c.rnd = defaultRandom()
	}

	return c, nil
}

type allocatorOption struct {
	a Allocator
}

func (o allocatorOption) String() string {
	return fmt.Sprintf("set allocator %T", o.a)
}

func (o allocatorOption) apply(c *config) error {
	if o.a == nil {
		return errors.New("allocator must not be nil")
	}

	c.alloc = o.a
	return nil
}

type randomOption struct {
	r Random
}

func (o randomOption) String() string {
	return fmt.Sprintf("set random source %T", o.r)
}

func (o randomOption) apply(c *config) error {
	if o.r == nil {
		return errors.New("random source must not be nil")
	}

	c.rnd = o.r
	return nil
}

type shuffleOption ShuffleAlgorithm

func (o shuffleOption) String() string {
	return "set shuffle algorithm " + ShuffleAlgorithm(o).String()
}

func (o shuffleOption) apply(c *config) error {
	switch algo := ShuffleAlgorithm(o); algo {
	case ShuffleUniform, ShuffleLegacy:
		c.algo = algo
		return nil
	default:
		return errors.Newf("unsupported shuffle algorithm %d", int(algo))
	}
}

type loggerOption struct {
	l logging.Logger
}

func (o loggerOption) String() string {
	return fmt.Sprintf("set logger %T", o.l)
}

func (o loggerOption) apply(c *config) error {
	if o.l == nil {
		return errors.New("logger must not be nil")
	}

	c.logger = o.l
	return nil
}
