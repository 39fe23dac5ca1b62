package rebuild

import (
	"sync"

	"github.com/go-logr/logr"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"

	"github.com/solidcore/kernel/sketch"
	"github.com/solidcore/kernel/tol"
	"github.com/solidcore/kernel/topo"
)

// Option configures a SolidSession at construction.
type Option func(*SolidSession)

// WithLogger installs a structured logger for warnings the engine and
// the boolean evaluator emit. Defaults to logr.Discard().
func WithLogger(log logr.Logger) Option {
	return func(s *SolidSession) { s.log = log }
}

// WithTolerance installs the numeric context every geometric
// predicate in a rebuild is routed through. Defaults to tol.New().
func WithTolerance(tc *tol.Context) Option {
	return func(s *SolidSession) { s.tc = tc }
}

// WithSolver installs the sketch constraint solver. There is no
// default: a session built without one fails every sketch feature with
// CodeBuildError.
func WithSolver(solver sketch.Solver) Option {
	return func(s *SolidSession) { s.solver = solver }
}

// WithMeshComputation enables or disables running the tessellator
// after a rebuild. Defaults to enabled.
func WithMeshComputation(enabled bool) Option {
	return func(s *SolidSession) { s.meshEnabled = enabled }
}

// SolidSession owns one topology arena and the caches a rebuild
// accumulates across calls. It is not safe for concurrent use;
// independent rebuilds must use independent sessions.
type SolidSession struct {
	arena  *topo.Arena
	tc     *tol.Context
	solver sketch.Solver
	log    logr.Logger

	meshEnabled bool

	traceID xid.ID

	mu        sync.Mutex
	disposed  bool
	atexitTag string
}

// NewSession constructs a SolidSession and registers its Dispose with
// the process's atexit hooks, so a process that exits without calling
// Dispose explicitly (panic, os.Exit) still releases the session's
// arena-backed resources exactly once.
func NewSession(opts ...Option) *SolidSession {
	s := &SolidSession{
		arena:       topo.New(),
		tc:          tol.New(),
		log:         logr.Discard(),
		meshEnabled: true,
		traceID:     xid.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.atexitTag = "rebuild.SolidSession." + s.traceID.String()
	atexit.Register(s.disposeOnce)
	return s
}

// TraceID returns the session's opaque correlation id, for threading
// through log lines. It never appears in a body map key or a stref —
// it exists only for telling concurrent independent rebuilds apart in
// logs.
func (s *SolidSession) TraceID() string { return s.traceID.String() }

// Dispose releases the session's arena. It is idempotent; calling it
// more than once, or letting atexit call it after an explicit call,
// has no further effect.
func (s *SolidSession) Dispose() { s.disposeOnce() }

func (s *SolidSession) disposeOnce() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return
	}
	s.disposed = true
	s.arena = nil
}
