package id

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init sets up the process-wide snowflake node. Call once at startup,
// before any request is served.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New returns the next request identifier. Values sort by creation time
// and stay unique across nodes.
func New() int64 {
	return node.Generate().Int64()
}
