package escape

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plugkit/internal/core/ports"
)

// NodeID is the unique identifier for the escaper Graft node.
const NodeID graft.ID = "adapter.escape"

func init() {
	graft.Register(graft.Node[ports.Escaper]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Escaper, error) {
			return NewEscaper(), nil
		},
	})
}
