package snowflake

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	mu   sync.Mutex
	node *snowflake.Node
)

// Init creates the process-wide ID node. Node IDs must be in [0, 1023].
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return fmt.Errorf("create snowflake node: %w", err)
	}

	mu.Lock()
	node = n
	mu.Unlock()
	return nil
}

// NextID returns the next unique ID. Init must be called first.
func NextID() int64 {
	mu.Lock()
	n := node
	mu.Unlock()

	if n == nil {
		panic("snowflake: NextID called before Init")
	}
	return n.Generate().Int64()
}
