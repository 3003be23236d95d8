// Package id hands out the int64 identifiers used for every persisted
// entity (users, workspaces, boards, lists, cards). IDs are Snowflake
// values, so they sort by creation time and stay unique across server
// instances as long as each instance gets a distinct node ID.
package id

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init sets up the generator for this process. Safe to call more than
// once; only the first call's nodeID takes effect.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New returns the next ID. Init must have been called first.
func New() int64 {
	return node.Generate().Int64()
}
