package lexgo

import (
	"github.com/hupe1980/lexgo/tokenizer"
)

type options struct {
	language  tokenizer.Language
	k1        float64
	b         float64
	logger    *Logger
	collector MetricsCollector
}

// Option configures Engine construction.
type Option func(*options)

// WithLanguage configures the tokenizer language profile.
// The default is tokenizer.English.
func WithLanguage(language tokenizer.Language) Option {
	return func(o *options) {
		o.language = language
	}
}

// WithK1 configures BM25 term-frequency saturation. Higher values let
// repeated occurrences of a term keep raising the score. The default is
// bm25.DefaultK1.
func WithK1(k1 float64) Option {
	return func(o *options) {
		o.k1 = k1
	}
}

// WithB configures BM25 document-length normalization, from 0 (none) to
// 1 (full). The default is bm25.DefaultB.
func WithB(b float64) Option {
	return func(o *options) {
		o.b = b
	}
}

// WithLogger configures the logger used for operation logging.
//
// If nil is passed, logging is disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures the metrics collector invoked after
// every engine operation.
//
// If nil is passed, metrics collection is disabled.
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(o *options) {
		if collector == nil {
			collector = NoopMetricsCollector{}
		}
		o.collector = collector
	}
}
