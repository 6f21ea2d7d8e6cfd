// Package snowflake wraps a process-wide snowflake ID node.
package snowflake

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	mu   sync.RWMutex
	node *snowflake.Node
)

// Init configures the process node. Node IDs must be in [0, 1023].
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return err
	}
	mu.Lock()
	node = n
	mu.Unlock()
	return nil
}

// NextID returns the next unique ID. If Init was never called, node 0
// is used.
func NextID() int64 {
	mu.RLock()
	n := node
	mu.RUnlock()
	if n == nil {
		mu.Lock()
		if node == nil {
			node, _ = snowflake.NewNode(0)
		}
		n = node
		mu.Unlock()
	}
	return n.Generate().Int64()
}
