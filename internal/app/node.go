package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plugkit/internal/adapters/escape"   //nolint:depguard // Wired in app layer
	"go.trai.ch/plugkit/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/plugkit/internal/adapters/resolver" //nolint:depguard // Wired in app layer
	"go.trai.ch/plugkit/internal/adapters/styles"   //nolint:depguard // Wired in app layer
	"go.trai.ch/plugkit/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components aggregates the application with its wired adapters.
type Components struct {
	App      *App
	Logger   ports.Logger
	Resolver ports.PathResolver
	Escaper  ports.Escaper
	Styles   ports.StyleLoader
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			resolver.NodeID,
			escape.NodeID,
			styles.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			pathResolver, err := graft.Dep[ports.PathResolver](ctx)
			if err != nil {
				return nil, err
			}

			escaper, err := graft.Dep[ports.Escaper](ctx)
			if err != nil {
				return nil, err
			}

			styleLoader, err := graft.Dep[ports.StyleLoader](ctx)
			if err != nil {
				return nil, err
			}

			return New(pathResolver, escaper, styleLoader), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			resolver.NodeID,
			escape.NodeID,
			styles.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	pathResolver, err := graft.Dep[ports.PathResolver](ctx)
	if err != nil {
		return nil, err
	}

	escaper, err := graft.Dep[ports.Escaper](ctx)
	if err != nil {
		return nil, err
	}

	styleLoader, err := graft.Dep[ports.StyleLoader](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      application,
		Logger:   log,
		Resolver: pathResolver,
		Escaper:  escaper,
		Styles:   styleLoader,
	}, nil
}
