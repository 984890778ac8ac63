package lambda

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Runtime holds state that lives for one execution environment, from cold
// start until the environment is recycled
type Runtime struct {
	instanceID string
	startedAt  time.Time

	mu       sync.Mutex
	invoked  bool
	lastUsed time.Time
	count    int64
}

var (
	globalRuntime *Runtime
	runtimeOnce   sync.Once
)

// GetRuntime returns the process-wide runtime, creating it on first use
func GetRuntime() *Runtime {
	runtimeOnce.Do(func() {
		globalRuntime = NewRuntime(uuid.New().String())
	})
	return globalRuntime
}

// NewRuntime creates a runtime with the given instance identifier
func NewRuntime(instanceID string) *Runtime {
	return &Runtime{
		instanceID: instanceID,
		startedAt:  time.Now(),
	}
}

// InstanceID returns the identifier generated at cold start
func (r *Runtime) InstanceID() string {
	return r.instanceID
}

// StartedAt returns when the runtime was created
func (r *Runtime) StartedAt() time.Time {
	return r.startedAt
}

// MarkInvoked records an invocation and reports whether it is the first one
// served by this runtime
func (r *Runtime) MarkInvoked() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	coldStart := !r.invoked
	r.invoked = true
	r.lastUsed = time.Now()
	r.count++
	return coldStart
}

// Invocations returns how many invocations this runtime has served
func (r *Runtime) Invocations() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// IdleFor returns the time since the last invocation, or since start if
// nothing has been served yet
func (r *Runtime) IdleFor() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lastUsed.IsZero() {
		return time.Since(r.startedAt)
	}
	return time.Since(r.lastUsed)
}
