package observable

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ReplacementPolicy selects the element evicted when a value is added to a
// set that is at capacity.
type ReplacementPolicy int

const (
	// FIFO evicts the element that has been a member the longest.
	FIFO ReplacementPolicy = iota
	// LIFO evicts the most recently inserted element.
	LIFO
)

func (p ReplacementPolicy) String() string {
	switch p {
	case FIFO:
		return "FIFO"
	case LIFO:
		return "LIFO"
	default:
		return "ReplacementPolicy(" + strconv.Itoa(int(p)) + ")"
	}
}

// ParseReplacementPolicy converts a policy name to a ReplacementPolicy. Names
// are case insensitive.
func ParseReplacementPolicy(name string) (ReplacementPolicy, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "FIFO", "FIRST_IN_FIRST_OUT":
		return FIFO, nil
	case "LIFO", "LAST_IN_FIRST_OUT":
		return LIFO, nil
	default:
		return 0, errors.Wrapf(ErrInvalidConfiguration, "unknown replacement policy %q", name)
	}
}

func (p ReplacementPolicy) MarshalText() ([]byte, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return []byte(p.String()), nil
}

func (p *ReplacementPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseReplacementPolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p ReplacementPolicy) validate() error {
	switch p {
	case FIFO, LIFO:
		return nil
	default:
		return errors.Wrapf(ErrInvalidConfiguration, "unknown replacement policy %d", int(p))
	}
}

// Config holds the settings of a Set. The zero value describes an unbounded
// set that keeps empty listener storage around.
type Config struct {
	// Capacity bounds the number of elements. Zero means unbounded.
	Capacity            int               `json:"capacity"`
	ReplacementPolicy   ReplacementPolicy `json:"replacement_policy"`
	FreeUnusedResources bool              `json:"free_unused_resources"`
	Logger              *log.Entry        `json:"-"`
}

func (c *Config) validate() error {
	if c.Capacity < 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "negative capacity %d", c.Capacity)
	}
	return c.ReplacementPolicy.validate()
}

// Option sets a field of Config.
type Option func(*Config)

// WithConfig replaces the whole configuration. Options applied after it
// still take effect.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

func WithCapacity(n int) Option {
	return func(c *Config) { c.Capacity = n }
}

func WithReplacementPolicy(p ReplacementPolicy) Option {
	return func(c *Config) { c.ReplacementPolicy = p }
}

// WithFreeUnusedResources makes the set discard per-value listener storage
// as soon as it no longer holds any listener.
func WithFreeUnusedResources() Option {
	return func(c *Config) { c.FreeUnusedResources = true }
}

func WithLogger(l *log.Entry) Option {
	return func(c *Config) { c.Logger = l }
}
