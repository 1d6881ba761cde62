package safelist

import (
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/option"
)

// DefaultCursorWarnLimit is the registry size above which growth is logged as a warning.
const DefaultCursorWarnLimit = 64

type Config struct {
	// Capacity is the initial capacity of the backing store.
	Capacity int
	// Logger receives diagnostic events about cursor bookkeeping.
	// When nil, nothing is logged.
	Logger *logging.Logger
	// CursorWarnLimit is the number of cursor slots after which a registry growth is reported as a warning.
	// A registry that keeps growing usually means traversals are started but never driven to completion.
	//
	// Default: DefaultCursorWarnLimit
	CursorWarnLimit int
}

func (c *Config) Init() {
	c.CursorWarnLimit = DefaultCursorWarnLimit
}

func (c Config) Configure(t *Config) {
	t.Capacity = zerokit.Coalesce(c.Capacity, t.Capacity)
	t.Logger = zerokit.Coalesce(c.Logger, t.Logger)
	t.CursorWarnLimit = zerokit.Coalesce(c.CursorWarnLimit, t.CursorWarnLimit)
}

func (c Config) cursorWarnLimit() int {
	return zerokit.Coalesce(c.CursorWarnLimit, DefaultCursorWarnLimit)
}

type Option option.Option[Config]

// WithCapacity sets the initial capacity hint of the list.
func WithCapacity(n int) Option {
	return option.Func[Config](func(c *Config) {
		c.Capacity = n
	})
}

func WithLogger(l *logging.Logger) Option {
	return option.Func[Config](func(c *Config) {
		c.Logger = l
	})
}

func WithCursorWarnLimit(n int) Option {
	return option.Func[Config](func(c *Config) {
		c.CursorWarnLimit = n
	})
}
