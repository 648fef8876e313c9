package rcparams

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-plot-style/internal/logger"
	"github.com/MKhiriev/go-plot-style/internal/style"
)

// Target is a renderer that can take style settings.
type Target interface {
	// Recognizes reports whether the renderer knows key.
	Recognizes(key string) bool
	// Set interprets value for key and overrides the renderer default.
	Set(key, value string) error
}

// UnknownKeyPolicy decides how [Apply] treats keys the target does not
// recognize.
type UnknownKeyPolicy int

const (
	// UnknownKeysWarn records the key in the report and logs a warning.
	UnknownKeysWarn UnknownKeyPolicy = iota
	// UnknownKeysIgnore records the key in the report only.
	UnknownKeysIgnore
	// UnknownKeysError fails the apply.
	UnknownKeysError
)

func (p UnknownKeyPolicy) String() string {
	switch p {
	case UnknownKeysWarn:
		return "warn"
	case UnknownKeysIgnore:
		return "ignore"
	case UnknownKeysError:
		return "error"
	default:
		return fmt.Sprintf("UnknownKeyPolicy(%d)", int(p))
	}
}

// ParseUnknownKeyPolicy parses "warn" (or ""), "ignore" and "error".
func ParseUnknownKeyPolicy(s string) (UnknownKeyPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "warn":
		return UnknownKeysWarn, nil
	case "ignore":
		return UnknownKeysIgnore, nil
	case "error", "strict":
		return UnknownKeysError, nil
	default:
		return UnknownKeysWarn, fmt.Errorf("%w: %q", ErrUnknownKeyPolicy, s)
	}
}

// Report lists what [Apply] did.
type Report struct {
	// Applied are the keys whose values were set, in document order.
	Applied []string `json:"applied"`
	// Unknown are the keys the target did not recognize.
	Unknown []UnknownKeyWarning `json:"unknown,omitempty"`
}

// ApplyOption configures [Apply].
type ApplyOption func(*applyOptions)

type applyOptions struct {
	policy UnknownKeyPolicy
	logger *logger.Logger
}

// WithUnknownKeys sets the unknown key policy. Default is warn.
func WithUnknownKeys(p UnknownKeyPolicy) ApplyOption {
	return func(o *applyOptions) {
		o.policy = p
	}
}

// WithLogger sets the logger used for warnings.
func WithLogger(l *logger.Logger) ApplyOption {
	return func(o *applyOptions) {
		o.logger = l
	}
}

// Apply sets every setting of doc on target in document order. Coercion
// errors and, under [UnknownKeysError], unknown keys are collected and
// returned joined; the report covers all settings either way. Apply does
// not roll back a target on error; see [Params.ApplyDocument].
func Apply(doc *style.Document, target Target, opts ...ApplyOption) (Report, error) {
	o := &applyOptions{policy: UnknownKeysWarn}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logger.Nop()
	}

	report := Report{Applied: make([]string, 0, doc.Len())}
	var errs []error

	for _, s := range doc.Settings() {
		if !target.Recognizes(s.Key) {
			w := UnknownKeyWarning{Key: s.Key, Line: s.Line}
			report.Unknown = append(report.Unknown, w)

			switch o.policy {
			case UnknownKeysWarn:
				o.logger.Warn().
					Str("key", s.Key).
					Int("line", s.Line).
					Msg("style setting not recognized by renderer")
			case UnknownKeysError:
				errs = append(errs, w)
			}
			continue
		}

		if err := target.Set(s.Key, s.Value); err != nil {
			var coercionErr *TypeCoercionError
			if errors.As(err, &coercionErr) && s.Line > 0 {
				err = fmt.Errorf("line %d: %w", s.Line, err)
			}
			errs = append(errs, err)
			continue
		}
		report.Applied = append(report.Applied, s.Key)
	}

	return report, errors.Join(errs...)
}
