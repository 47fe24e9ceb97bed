package internal

import (
	"bytes"
	"sync"
)

// BufferPool holds scratch buffers used to serialise sector layouts before hashing them.
var BufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 4096))
	},
}
