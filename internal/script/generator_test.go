package script

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"blendgen/internal/artifact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient returns canned responses and records the prompts it saw.
type fakeClient struct {
	prompts []string
	failOn  string
}

func (f *fakeClient) Complete(ctx context.Context, prompt string) (string, error) {
	return f.CompleteWithSystem(ctx, "", prompt)
}

func (f *fakeClient) CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if f.failOn != "" && strings.Contains(userPrompt, f.failOn) {
		return "", fmt.Errorf("service unavailable")
	}
	f.prompts = append(f.prompts, userPrompt)
	return "```python\nimport bpy  # " + userPrompt[:20] + "\n```", nil
}

func TestGeneratorRunOrder(t *testing.T) {
	client := &fakeClient{}
	g := NewGenerator(client, nil)

	names := []string{"chair", "metal chair", "table"}
	results, err := g.Run(context.Background(), names, nil)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, name := range names {
		assert.Equal(t, name, results[i].Input, "record order must match input order")
		assert.True(t, strings.HasPrefix(results[i].Output, "import bpy"), "output should be extracted code")
	}
	assert.Len(t, client.prompts, 3)
	assert.Contains(t, client.prompts[0], "chair")
}

func TestGeneratorSkipsCached(t *testing.T) {
	client := &fakeClient{}
	g := NewGenerator(client, nil)

	existing := map[string]string{"chair": "cached script"}
	results, err := g.Run(context.Background(), []string{"chair", "table"}, existing)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "cached script", results[0].Output, "cached output must be re-emitted")
	assert.Len(t, client.prompts, 1, "only the uncached name should hit the client")
	assert.Contains(t, client.prompts[0], "table")
}

func TestGeneratorFatalOnFirstError(t *testing.T) {
	client := &fakeClient{failOn: "table"}
	g := NewGenerator(client, nil)

	results, err := g.Run(context.Background(), []string{"chair", "table", "lamp"}, nil)
	require.Error(t, err)
	assert.Nil(t, results, "no partial results on failure")
	assert.Contains(t, err.Error(), "table")
	assert.Len(t, client.prompts, 1, "run must stop at the first failure")
}

func TestGeneratorUsesDescriptions(t *testing.T) {
	client := &fakeClient{}
	g := NewGenerator(client, nil).WithDescriptions([]artifact.Entity{
		{Object: "chair", Description: "four legs and a backrest"},
	})

	_, err := g.Run(context.Background(), []string{"chair", "table"}, nil)
	require.NoError(t, err)
	require.Len(t, client.prompts, 2)
	assert.Contains(t, client.prompts[0], "four legs and a backrest")
	assert.NotContains(t, client.prompts[1], "Description:")
}

func TestDescribe(t *testing.T) {
	client := &fakeClient{}
	g := NewGenerator(client, nil)

	entities, err := g.Describe(context.Background(), []string{"chair", "table"})
	require.NoError(t, err)
	require.Len(t, entities, 2)
	assert.Equal(t, "chair", entities[0].Object)
	assert.Equal(t, "table", entities[1].Object)
}

func TestDescribeFatalOnError(t *testing.T) {
	client := &fakeClient{failOn: "chair"}
	g := NewGenerator(client, nil)

	entities, err := g.Describe(context.Background(), []string{"chair", "table"})
	require.Error(t, err)
	assert.Nil(t, entities)
}
