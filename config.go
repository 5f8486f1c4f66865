// config.go — capture configuration.
//
// Two switches decide whether a trace snapshot is taken when an error is
// first wrapped:
//
//   - Build mode: the `xgxnotrace` build tag compiles the pass-through
//     record (record_off.go). Capture is then always off and context is not
//     stored.
//   - Runtime toggle: the XGX_BACKTRACE environment variable, read once on
//     first use ("1", "true" or "full" enable capture). Configure overrides
//     it at any time.
package xgxunion

import (
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// EnvBacktrace names the environment variable that enables capture.
const EnvBacktrace = "XGX_BACKTRACE"

// defaultMaxDepth bounds captured frames on exceptional paths.
const defaultMaxDepth = 64

var capture struct {
	once  sync.Once
	on    atomic.Bool
	depth atomic.Int64
}

func loadCaptureEnv() {
	capture.once.Do(func() {
		capture.depth.Store(defaultMaxDepth)
		switch strings.ToLower(strings.TrimSpace(os.Getenv(EnvBacktrace))) {
		case "1", "true", "full":
			capture.on.Store(true)
		}
	})
}

// CaptureEnabled reports whether newly traced errors record a stack.
// It is always false in the xgxnotrace build.
func CaptureEnabled() bool {
	if !trackingEnabled {
		return false
	}
	loadCaptureEnv()
	return capture.on.Load()
}

func maxDepth() int {
	loadCaptureEnv()
	return int(capture.depth.Load())
}

// Option configures capture behaviour via Configure.
type Option func(*settings)

type settings struct {
	capture bool
	depth   int
}

// WithCapture turns stack capture on or off.
func WithCapture(on bool) Option { return func(s *settings) { s.capture = on } }

// WithMaxDepth bounds the number of captured frames. Values <= 0 restore
// the default.
func WithMaxDepth(n int) Option {
	return func(s *settings) {
		if n <= 0 {
			n = defaultMaxDepth
		}
		s.depth = n
	}
}

// Configure applies opts and returns a function restoring the previous
// settings, which keeps tests hermetic:
//
//	defer xgxunion.Configure(xgxunion.WithCapture(true))()
func Configure(opts ...Option) (restore func()) {
	loadCaptureEnv()
	prev := settings{capture: capture.on.Load(), depth: int(capture.depth.Load())}
	next := prev
	for _, o := range opts {
		o(&next)
	}
	capture.on.Store(next.capture)
	capture.depth.Store(int64(next.depth))
	return func() {
		capture.on.Store(prev.capture)
		capture.depth.Store(int64(prev.depth))
	}
}
