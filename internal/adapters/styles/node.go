package styles

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plugkit/internal/adapters/escape" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/plugkit/internal/core/ports"
)

// NodeID is the unique identifier for the style loader Graft node.
const NodeID graft.ID = "adapter.styles"

func init() {
	graft.Register(graft.Node[ports.StyleLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{escape.NodeID},
		Run: func(ctx context.Context) (ports.StyleLoader, error) {
			escaper, err := graft.Dep[ports.Escaper](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(escaper), nil
		},
	})
}
