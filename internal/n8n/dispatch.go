package n8n

import (
	"encoding/json"
	"errors"
	"fmt"
)

// toolCall describes how one tool maps onto the n8n API: the HTTP method,
// the path template, an optional body builder and the response renderer.
// All paths are relative to {base_url}/api/v1/.
type toolCall struct {
	method   string
	requires []string
	path     func(args map[string]string) string
	body     func(args map[string]string) (any, error)
	render   func(args map[string]string, payload any) string
}

// dispatch holds the full operation catalog of the adapter. Each
// invocation resolves to exactly one entry, one request, one envelope.
var dispatch = map[string]toolCall{
	"list_workflows": {
		method: "GET",
		path:   func(map[string]string) string { return "workflows" },
		render: renderWorkflowList,
	},
	"get_workflow": {
		method:   "GET",
		requires: []string{"workflow_id"},
		path: func(args map[string]string) string {
			return fmt.Sprintf("workflows/%s", args["workflow_id"])
		},
		render: renderWorkflow,
	},
	"execute_workflow": {
		method:   "POST",
		requires: []string{"workflow_id"},
		path: func(args map[string]string) string {
			return fmt.Sprintf("workflows/%s/execute", args["workflow_id"])
		},
		body:   executionBody,
		render: renderExecutionStarted,
	},
	"get_execution": {
		method:   "GET",
		requires: []string{"execution_id"},
		path: func(args map[string]string) string {
			return fmt.Sprintf("executions/%s", args["execution_id"])
		},
		render: renderExecution,
	},
	"activate_workflow": {
		method:   "PATCH",
		requires: []string{"workflow_id"},
		path: func(args map[string]string) string {
			return fmt.Sprintf("workflows/%s", args["workflow_id"])
		},
		body: func(map[string]string) (any, error) {
			return map[string]any{"active": true}, nil
		},
		render: func(args map[string]string, _ any) string {
			return fmt.Sprintf("Workflow %s activated successfully!", args["workflow_id"])
		},
	},
	"deactivate_workflow": {
		method:   "PATCH",
		requires: []string{"workflow_id"},
		path: func(args map[string]string) string {
			return fmt.Sprintf("workflows/%s", args["workflow_id"])
		},
		body: func(map[string]string) (any, error) {
			return map[string]any{"active": false}, nil
		},
		render: func(args map[string]string, _ any) string {
			return fmt.Sprintf("Workflow %s deactivated successfully!", args["workflow_id"])
		},
	},
}

// executionBody parses the optional input_data argument. Absent or empty
// input defaults to an empty JSON object; malformed JSON fails the
// invocation before any request is sent.
func executionBody(args map[string]string) (any, error) {
	raw := args["input_data"]
	if raw == "" {
		return map[string]any{}, nil
	}
	var payload any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, errors.New("input_data must be valid JSON string")
	}
	return payload, nil
}

// acceptedStatuses returns the success statuses for an HTTP method,
// mirroring what the n8n API actually answers per verb.
func acceptedStatuses(method string) []int {
	switch method {
	case "POST":
		return []int{200, 201}
	case "DELETE":
		return []int{200, 204}
	default: // GET, PATCH
		return []int{200}
	}
}
