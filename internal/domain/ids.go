package domain

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

// IDGenerator hands out line item IDs and default invoice numbers
type IDGenerator interface {
	LineItemID() string
	InvoiceNumber() string
}

type idGenerator struct {
	node   *snowflake.Node
	prefix string
}

// NewIDGenerator returns a generator whose invoice numbers look like
// "<prefix>-<snowflake>". nodeID must be in [0, 1023].
func NewIDGenerator(prefix string, nodeID int64) (IDGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create id node: %w", err)
	}
	if prefix == "" {
		prefix = "INV"
	}
	return &idGenerator{node: node, prefix: prefix}, nil
}

func (g *idGenerator) LineItemID() string {
	return uuid.NewString()
}

func (g *idGenerator) InvoiceNumber() string {
	return fmt.Sprintf("%s-%s", g.prefix, g.node.Generate().String())
}
