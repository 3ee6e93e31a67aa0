package chronic

import (
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/musicmunky/chronic/adapters/log"
	"github.com/musicmunky/chronic/blame"
	"github.com/musicmunky/chronic/utils/tag"
)

// Context is the disambiguation direction for bare relative expressions:
// "monday" can mean the one ahead or the one behind.
type Context = tag.Direction

// Context values accepted by WithContext.
const (
	ContextNone   Context = tag.None
	ContextPast   Context = tag.Past
	ContextFuture Context = tag.Future
)

// Endian selects how an ambiguous A/B/Y date is read.
type Endian int

const (
	// EndianMiddle reads slashed dates month first (month/day/year).
	EndianMiddle Endian = iota
	// EndianLittle reads slashed dates day first (day/month/year).
	EndianLittle
)

// String returns the endianness name.
func (e Endian) String() string {
	switch e {
	case EndianMiddle:
		return "middle"
	case EndianLittle:
		return "little"
	default:
		return fmt.Sprintf("endian(%d)", int(e))
	}
}

// AmbiguousTimeRangeNone disables the AM-window heuristic for bare clock
// times; the first matching 24-hour occurrence is used instead.
const AmbiguousTimeRangeNone = -1

// Options carries everything a single parse needs. The zero value is not
// usable; options are assembled by buildOptions from the defaults and the
// functional options supplied by the caller.
type Options struct {
	// Context orients bare relative expressions. Default ContextFuture.
	Context Context

	// Now is the reference instant. When zero, Clock supplies it.
	Now time.Time

	// Clock provides the reference instant when Now is not set.
	Clock func() time.Time

	// Guess collapses the matched span to a single instant. Consulted by
	// ParseWithMap; Parse and ParseSpan encode the choice in the entry point.
	Guess bool

	// AmbiguousTimeRange is the start hour of the twelve-hour window a bare
	// clock time is assumed to fall into, or AmbiguousTimeRangeNone.
	AmbiguousTimeRange int

	// EndianPrecedence orders the month-first and day-first readings of
	// slashed dates; the leading value is tried first.
	EndianPrecedence []Endian

	// AmbiguousYearFutureBias is the pivot offset for expanding two-digit years.
	AmbiguousYearFutureBias int

	// Logger receives stage-boundary debug output. Nop by default.
	Logger *log.Log

	// Debug switches the default logger from nop to a console logger.
	Debug bool

	// now is the resolved reference instant, truncated to whole seconds.
	now time.Time
}

// Option is a functional option type for configuring a parse.
type Option func(*Options)

// WithContext sets the disambiguation direction for bare relative expressions.
func WithContext(ctx Context) Option {
	return func(o *Options) {
		o.Context = ctx
	}
}

// WithNow sets the reference instant.
func WithNow(now time.Time) Option {
	return func(o *Options) {
		o.Now = now
	}
}

// WithClock sets the clock consulted when no reference instant is supplied.
func WithClock(clock func() time.Time) Option {
	return func(o *Options) {
		o.Clock = clock
	}
}

// WithGuess sets whether ParseWithMap collapses the span to an instant.
func WithGuess(guess bool) Option {
	return func(o *Options) {
		o.Guess = guess
	}
}

// WithAmbiguousTimeRange sets the start hour of the assumed window for bare
// clock times. Pass AmbiguousTimeRangeNone to disable the heuristic.
func WithAmbiguousTimeRange(hour int) Option {
	return func(o *Options) {
		o.AmbiguousTimeRange = hour
	}
}

// WithEndianPrecedence sets the order in which slashed-date readings are tried.
func WithEndianPrecedence(order ...Endian) Option {
	return func(o *Options) {
		o.EndianPrecedence = order
	}
}

// WithAmbiguousYearFutureBias sets the pivot offset for two-digit years.
func WithAmbiguousYearFutureBias(bias int) Option {
	return func(o *Options) {
		o.AmbiguousYearFutureBias = bias
	}
}

// WithLogger sets the debug sink.
func WithLogger(l *log.Log) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithDebugEnabled turns on console debug output.
func WithDebugEnabled() Option {
	return func(o *Options) {
		o.Debug = true
	}
}

func defaultOptions() *Options {
	return &Options{
		Context:                 ContextFuture,
		Clock:                   time.Now,
		Guess:                   true,
		AmbiguousTimeRange:      6,
		EndianPrecedence:        []Endian{EndianMiddle, EndianLittle},
		AmbiguousYearFutureBias: 50,
	}
}

// buildOptions assembles and validates the options for one parse.
func buildOptions(opts ...Option) (*Options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	switch o.Context {
	case ContextNone, ContextPast, ContextFuture:
	default:
		return nil, blame.NewBlame(blame.ErrInvalidOptionValue, "context must be past, future or none").
			WithField("context", int(o.Context))
	}

	if len(o.EndianPrecedence) == 0 {
		return nil, blame.NewBlame(blame.ErrInvalidOptionValue, "endian_precedence must not be empty")
	}
	switch o.EndianPrecedence[0] {
	case EndianMiddle, EndianLittle:
	default:
		return nil, blame.NewBlame(blame.ErrInvalidOptionValue, "endian_precedence must lead with middle or little").
			WithField("endian_precedence", fmt.Sprint(o.EndianPrecedence))
	}

	if o.AmbiguousTimeRange != AmbiguousTimeRangeNone && (o.AmbiguousTimeRange < 0 || o.AmbiguousTimeRange > 12) {
		return nil, blame.NewBlame(blame.ErrInvalidOptionValue, "ambiguous_time_range must be 0-12 or none").
			WithField("ambiguous_time_range", o.AmbiguousTimeRange)
	}

	if o.Logger == nil {
		if o.Debug {
			o.Logger = log.NewBasicLogger()
		} else {
			o.Logger = log.NewNopLogger()
		}
	}

	now := o.Now
	if now.IsZero() {
		now = o.Clock()
	}
	o.now = now.Truncate(time.Second)

	return o, nil
}

// withNow clones the options with a different reference instant. Handlers use
// it to resolve a time-of-day inside an already chosen day.
func (o *Options) withNow(now time.Time) *Options {
	clone := *o
	clone.now = now
	return &clone
}

// optionsPayload is the loosely-typed shape host programs hand around. Field
// names follow the option keys of the original interface.
type optionsPayload struct {
	Context                 string     `mapstructure:"context"`
	Now                     *time.Time `mapstructure:"now"`
	Guess                   *bool      `mapstructure:"guess"`
	AmbiguousTimeRange      any        `mapstructure:"ambiguous_time_range"`
	EndianPrecedence        []string   `mapstructure:"endian_precedence"`
	AmbiguousYearFutureBias *int       `mapstructure:"ambiguous_year_future_bias"`
}

// OptionsFromMap converts a string-keyed option map into functional options.
// Unknown keys and out-of-range values are invalid-argument errors.
func OptionsFromMap(m map[string]any) ([]Option, error) {
	var payload optionsPayload
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &payload,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, blame.NewBlame(blame.ErrInvalidOption, "options map is not decodable").WithCause(err)
	}
	if err := dec.Decode(m); err != nil {
		return nil, blame.NewBlame(blame.ErrInvalidOption, "unknown or malformed option").WithCause(err)
	}

	var opts []Option

	if payload.Context != "" {
		switch payload.Context {
		case "past":
			opts = append(opts, WithContext(ContextPast))
		case "future":
			opts = append(opts, WithContext(ContextFuture))
		case "none":
			opts = append(opts, WithContext(ContextNone))
		default:
			return nil, blame.NewBlame(blame.ErrInvalidOptionValue, "context must be past, future or none").
				WithField("context", payload.Context)
		}
	}

	if payload.Now != nil {
		opts = append(opts, WithNow(*payload.Now))
	}
	if payload.Guess != nil {
		opts = append(opts, WithGuess(*payload.Guess))
	}

	if payload.AmbiguousTimeRange != nil {
		switch v := payload.AmbiguousTimeRange.(type) {
		case string:
			if v != "none" {
				return nil, blame.NewBlame(blame.ErrInvalidOptionValue, "ambiguous_time_range must be 0-12 or none").
					WithField("ambiguous_time_range", v)
			}
			opts = append(opts, WithAmbiguousTimeRange(AmbiguousTimeRangeNone))
		case int:
			opts = append(opts, WithAmbiguousTimeRange(v))
		case float64:
			opts = append(opts, WithAmbiguousTimeRange(int(v)))
		default:
			return nil, blame.NewBlame(blame.ErrInvalidOptionValue, "ambiguous_time_range must be 0-12 or none").
				WithField("ambiguous_time_range", fmt.Sprintf("%T", v))
		}
	}

	if len(payload.EndianPrecedence) > 0 {
		var order []Endian
		for i, name := range payload.EndianPrecedence {
			switch name {
			case "middle":
				order = append(order, EndianMiddle)
			case "little":
				order = append(order, EndianLittle)
			default:
				if i == 0 {
					return nil, blame.NewBlame(blame.ErrInvalidOptionValue, "endian_precedence must lead with middle or little").
						WithField("endian_precedence", name)
				}
				// trailing unknown values are ignored, as in the original interface
			}
		}
		opts = append(opts, WithEndianPrecedence(order...))
	}

	if payload.AmbiguousYearFutureBias != nil {
		opts = append(opts, WithAmbiguousYearFutureBias(*payload.AmbiguousYearFutureBias))
	}

	return opts, nil
}
