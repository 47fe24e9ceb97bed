package traversal

import (
	"fmt"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// Trace is an insertion ordered record of named test outcomes. A nil Trace records nothing.
type Trace struct {
	data *orderedmap.OrderedMap[string, any]
}

// NewTrace returns an empty trace.
func NewTrace() *Trace {
	return &Trace{data: orderedmap.NewOrderedMap[string, any]()}
}

// Set records v under key. A key set twice keeps its first position.
func (tr *Trace) Set(key string, v any) {
	if tr == nil {
		return
	}
	tr.data.Set(key, v)
}

// Get returns the value recorded under key.
func (tr *Trace) Get(key string) (any, bool) {
	if tr == nil {
		return nil, false
	}
	return tr.data.Get(key)
}

// Keys returns the recorded keys in order.
func (tr *Trace) Keys() []string {
	if tr == nil {
		return nil
	}
	return tr.data.Keys()
}

// Len returns the amount of recorded keys.
func (tr *Trace) Len() int {
	if tr == nil {
		return 0
	}
	return tr.data.Len()
}

// Reset drops everything recorded so far.
func (tr *Trace) Reset() {
	if tr == nil {
		return
	}
	tr.data = orderedmap.NewOrderedMap[string, any]()
}

// String formats the trace as [key=value key=value].
func (tr *Trace) String() string {
	if tr == nil {
		return "[]"
	}

	var sb strings.Builder
	sb.WriteByte('[')
	count := tr.data.Len()
	for _, key := range tr.data.Keys() {
		v, _ := tr.data.Get(key)
		sb.WriteString(fmt.Sprintf("%s=%v", key, v))

		count--
		if count > 0 {
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
