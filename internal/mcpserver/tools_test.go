package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTools_Deterministic(t *testing.T) {
	first := Tools()
	second := Tools()

	require.Len(t, first, 6)
	assert.Equal(t, first, second, "catalog must be stable across calls")
}

func TestTools_Order(t *testing.T) {
	names := make([]string, 0, 6)
	for _, tool := range Tools() {
		names = append(names, tool.Name)
	}

	assert.Equal(t, []string{
		"list_workflows",
		"get_workflow",
		"execute_workflow",
		"get_execution",
		"activate_workflow",
		"deactivate_workflow",
	}, names)
}

func TestTools_ArgumentSchemas(t *testing.T) {
	byName := map[string]struct {
		required   []string
		properties []string
	}{
		"list_workflows":      {required: nil, properties: nil},
		"get_workflow":        {required: []string{"workflow_id"}, properties: []string{"workflow_id"}},
		"execute_workflow":    {required: []string{"workflow_id"}, properties: []string{"workflow_id", "input_data"}},
		"get_execution":       {required: []string{"execution_id"}, properties: []string{"execution_id"}},
		"activate_workflow":   {required: []string{"workflow_id"}, properties: []string{"workflow_id"}},
		"deactivate_workflow": {required: []string{"workflow_id"}, properties: []string{"workflow_id"}},
	}

	for _, tool := range Tools() {
		expected, ok := byName[tool.Name]
		require.True(t, ok, "unexpected tool %s", tool.Name)

		assert.Equal(t, "object", tool.InputSchema.Type, tool.Name)
		assert.ElementsMatch(t, expected.required, tool.InputSchema.Required, tool.Name)

		for _, property := range expected.properties {
			assert.Contains(t, tool.InputSchema.Properties, property, tool.Name)
		}
		assert.Len(t, tool.InputSchema.Properties, len(expected.properties), tool.Name)

		assert.NotEmpty(t, tool.Description, tool.Name)
	}
}
