package app

import (
	"context"
	"fmt"

	"github.com/vk/nodeflowgo/internal/ctxlog"
)

// Run executes the main application logic: load the graph definition,
// evaluate the requested node, and render its value.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	g, err := a.loader.Load(ctx, cfg.GraphPath)
	if err != nil {
		return fmt.Errorf("failed to load graph definition: %w", err)
	}
	a.logger.Debug("Graph definition loaded.", "node_count", g.Len())

	id, ok := g.NodeByName(cfg.NodeName)
	if !ok {
		return fmt.Errorf("graph has no node named %q", cfg.NodeName)
	}

	result, err := a.evaluator.Evaluate(ctx, g, id)
	if err != nil {
		return fmt.Errorf("evaluate node %q: %w", cfg.NodeName, err)
	}

	fmt.Fprintf(a.outW, "%s = %s\n", cfg.NodeName, result)
	a.logger.Debug("App.Run method finished.")
	return nil
}
