package event

import "time"

// Event types emitted by the simulator.
const (
	TypeExecuted = "executed"
	TypeFailed   = "failed"
	TypeCleared  = "cleared"
)

// Context identifies the run an event belongs to.
type Context struct {
	RunID       string `json:"runID" yaml:"runID"`
	EventType   string `json:"eventType" yaml:"eventType"`
	Operation   string `json:"operation" yaml:"operation"`
	Section     string `json:"section" yaml:"section"`
	Service     string `json:"service" yaml:"service"`
	Method      string `json:"method" yaml:"method"`
	Processes   int    `json:"processes" yaml:"processes"`
	TimeTakenMs int    `json:"timeTakenMs" yaml:"timeTakenMs"`
}

// Event wraps payload T with its run context.
type Event[T any] struct {
	Context   *Context               `json:"context"`
	CreatedAt time.Time              `json:"createdAt"`
	Metadata  map[string]interface{} `json:"metadata"`
	Data      T                      `json:"data"`
}

func NewEvent[T any](context *Context, data T) *Event[T] {
	return &Event[T]{
		Context:   context,
		CreatedAt: time.Now(),
		Metadata:  make(map[string]interface{}),
		Data:      data,
	}
}
