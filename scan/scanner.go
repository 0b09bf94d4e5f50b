package scan

import (
	"log/slog"

	"github.com/randalmurphal/fmtscan/decode"
	"github.com/randalmurphal/fmtscan/template"
)

// Scanner binds a compiled template to scanning options.
// It holds no mutable state and is safe for concurrent use.
type Scanner struct {
	tmpl   *template.Template
	kinds  []decode.Kind
	logger *slog.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger sets the logger used to report resolved spans at debug level.
// Pass nil to disable logging.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scanner) {
		s.logger = l
	}
}

// WithKinds sets the kinds used when Scan is called without any.
func WithKinds(kinds ...decode.Kind) Option {
	return func(s *Scanner) {
		s.kinds = append([]decode.Kind(nil), kinds...)
	}
}

// New creates a scanner for t. By default it logs through slog.Default().
func New(t *template.Template, opts ...Option) *Scanner {
	s := &Scanner{
		tmpl:   t,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Template returns the scanner's template.
func (s *Scanner) Template() *template.Template {
	return s.tmpl
}

// Kinds returns a copy of the kinds configured with WithKinds.
func (s *Scanner) Kinds() []decode.Kind {
	return append([]decode.Kind(nil), s.kinds...)
}

// Scan scans src with the given kinds, or with the configured kinds when
// none are given. See the package-level Scan for semantics.
func (s *Scanner) Scan(src string, kinds ...decode.Kind) (Result, error) {
	if len(kinds) == 0 {
		kinds = s.kinds
	}
	return run(s.tmpl, src, kinds, s.logger)
}

// Into scans src into the destinations. See the package-level Into.
func (s *Scanner) Into(src string, dst ...any) error {
	return into(s.tmpl, src, dst, s.logger)
}
