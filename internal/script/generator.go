package script

import (
	"context"
	"fmt"

	"blendgen/internal/artifact"

	"go.uber.org/zap"
)

// Generator drives the script-generation pipeline: for each object name,
// in input order, one synchronous completion. The first failure aborts
// the run; there is no retry and no partial-result recovery.
type Generator struct {
	client LLMClient
	logger *zap.Logger

	// Descriptions keyed by object name; when present for a name, the
	// richer description prompt is used.
	descriptions map[string]string
}

// NewGenerator returns a generator over the given client.
func NewGenerator(client LLMClient, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{client: client, logger: logger}
}

// WithDescriptions attaches entity descriptions to use in prompts.
func (g *Generator) WithDescriptions(entities []artifact.Entity) *Generator {
	g.descriptions = make(map[string]string, len(entities))
	for _, e := range entities {
		g.descriptions[e.Object] = e.Description
	}
	return g
}

// Run generates one record per name, in order. Names present in existing
// reuse the cached output instead of issuing a call, so a re-run only
// pays for names not yet generated. The returned slice always parallels
// the input order of names.
func (g *Generator) Run(ctx context.Context, names []string, existing map[string]string) ([]artifact.Result, error) {
	results := make([]artifact.Result, 0, len(names))
	generated, skipped := 0, 0

	for i, name := range names {
		if cached, ok := existing[name]; ok {
			g.logger.Info("skipping already generated object",
				zap.String("object", name),
				zap.Int("index", i+1),
				zap.Int("total", len(names)))
			results = append(results, artifact.Result{Input: name, Output: cached})
			skipped++
			continue
		}

		g.logger.Info("generating script",
			zap.String("object", name),
			zap.Int("index", i+1),
			zap.Int("total", len(names)))

		prompt := BlenderPrompt(name)
		if desc, ok := g.descriptions[name]; ok && desc != "" {
			prompt = BlenderPromptWithDescription(name, desc)
		}

		response, err := g.client.Complete(ctx, prompt)
		if err != nil {
			return nil, fmt.Errorf("script generation failed for %q: %w", name, err)
		}

		results = append(results, artifact.Result{Input: name, Output: ExtractCode(response)})
		generated++
	}

	g.logger.Info("script generation complete",
		zap.Int("generated", generated),
		zap.Int("skipped", skipped),
		zap.Int("total", len(results)))
	return results, nil
}

// Describe produces one short description per name, in order. The first
// failure aborts the run.
func (g *Generator) Describe(ctx context.Context, names []string) ([]artifact.Entity, error) {
	entities := make([]artifact.Entity, 0, len(names))
	for i, name := range names {
		g.logger.Info("describing object",
			zap.String("object", name),
			zap.Int("index", i+1),
			zap.Int("total", len(names)))

		response, err := g.client.Complete(ctx, DescribePrompt(name))
		if err != nil {
			return nil, fmt.Errorf("description failed for %q: %w", name, err)
		}
		entities = append(entities, artifact.Entity{Object: name, Description: response})
	}
	return entities, nil
}
