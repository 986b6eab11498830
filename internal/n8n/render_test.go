package n8n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnwrapData(t *testing.T) {
	wrapped := map[string]any{"data": []any{"a"}}
	assert.Equal(t, []any{"a"}, unwrapData(wrapped))

	// Flat responses pass through untouched.
	flat := map[string]any{"id": "1", "name": "Foo"}
	assert.Equal(t, flat, unwrapData(flat))

	assert.Equal(t, []any{"x"}, unwrapData([]any{"x"}))
	assert.Nil(t, unwrapData(nil))
}

func TestRenderWorkflowList_Defaults(t *testing.T) {
	payload := []any{
		map[string]any{"id": "7"},
	}

	text := renderWorkflowList(nil, payload)
	assert.Contains(t, text, "Found 1 workflow(s):")
	assert.Contains(t, text, "- Unnamed (ID: 7) [Inactive]")
}

func TestRenderWorkflowList_NonListPayload(t *testing.T) {
	text := renderWorkflowList(nil, map[string]any{"unexpected": true})
	assert.Equal(t, "No workflows found in n8n.", text)
}

func TestRenderWorkflow_Full(t *testing.T) {
	payload := map[string]any{
		"name":   "Order sync",
		"id":     "wf-1",
		"active": true,
		"nodes": []any{
			map[string]any{"name": "Webhook", "type": "n8n-nodes-base.webhook"},
			map[string]any{"name": "HTTP Request", "type": "n8n-nodes-base.httpRequest"},
		},
		"connections": map[string]any{"Webhook": map[string]any{}},
		"tags": []any{
			map[string]any{"name": "prod"},
			map[string]any{"name": "sync"},
		},
	}

	text := renderWorkflow(nil, payload)
	assert.Contains(t, text, "Workflow: Order sync")
	assert.Contains(t, text, "ID: wf-1")
	assert.Contains(t, text, "Status: Active")
	assert.Contains(t, text, "Nodes: 2")
	assert.Contains(t, text, "Connections: 1")
	assert.Contains(t, text, "Nodes in workflow:")
	assert.Contains(t, text, "  - Webhook (n8n-nodes-base.webhook)")
	assert.Contains(t, text, "  - HTTP Request (n8n-nodes-base.httpRequest)")
	assert.Contains(t, text, "Tags: prod, sync")
}

func TestRenderWorkflow_Minimal(t *testing.T) {
	text := renderWorkflow(nil, map[string]any{"id": "wf-2"})
	assert.Contains(t, text, "Workflow: Unnamed")
	assert.Contains(t, text, "Status: Inactive")
	assert.Contains(t, text, "Nodes: 0")
	assert.Contains(t, text, "Connections: 0")
	assert.NotContains(t, text, "Nodes in workflow:")
	assert.NotContains(t, text, "Tags:")
}

func TestRenderExecutionStarted(t *testing.T) {
	text := renderExecutionStarted(nil, map[string]any{"id": "e-1", "finished": true})
	assert.Contains(t, text, "Workflow executed!")
	assert.Contains(t, text, "Execution ID: e-1")
	assert.Contains(t, text, "Status: Finished")

	text = renderExecutionStarted(nil, map[string]any{})
	assert.Contains(t, text, "Execution ID: unknown")
	assert.Contains(t, text, "Status: Running")
}

func TestRenderExecution(t *testing.T) {
	payload := map[string]any{
		"id":           "e-2",
		"finished":     true,
		"mode":         "trigger",
		"stoppedAt":    "2024-01-01T00:00:00.000Z",
		"workflowData": map[string]any{"name": "Order sync"},
	}

	text := renderExecution(nil, payload)
	assert.Contains(t, text, "Execution ID: e-2")
	assert.Contains(t, text, "Workflow: Order sync")
	assert.Contains(t, text, "Status: Finished")
	assert.Contains(t, text, "Mode: trigger")
	assert.Contains(t, text, "Stopped at: 2024-01-01T00:00:00.000Z")
}

func TestRenderExecution_Defaults(t *testing.T) {
	text := renderExecution(nil, map[string]any{"id": "e-3"})
	assert.Contains(t, text, "Workflow: Unknown")
	assert.Contains(t, text, "Status: Running")
	assert.Contains(t, text, "Mode: unknown")
	assert.NotContains(t, text, "Stopped at:")
}
