package n8n

import (
	"fmt"
	"strings"
)

// unwrapData applies the canonical envelope rule for n8n responses:
// unwrap a top-level "data" field when present, fall back to the raw
// payload otherwise. The n8n API is inconsistent about the wrapper
// across endpoints and versions.
func unwrapData(payload any) any {
	if m, ok := payload.(map[string]any); ok {
		if data, present := m["data"]; present {
			return data
		}
	}
	return payload
}

func strField(m map[string]any, key, fallback string) string {
	value, ok := m[key]
	if !ok || value == nil {
		return fallback
	}
	s := fmt.Sprint(value)
	if s == "" {
		return fallback
	}
	return s
}

func boolField(m map[string]any, key string) bool {
	value, _ := m[key].(bool)
	return value
}

func activeLabel(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}

func finishedLabel(finished bool) string {
	if finished {
		return "Finished"
	}
	return "Running"
}

func renderWorkflowList(_ map[string]string, payload any) string {
	workflows, ok := payload.([]any)
	if !ok || len(workflows) == 0 {
		return "No workflows found in n8n."
	}

	lines := make([]string, 0, len(workflows))
	for _, item := range workflows {
		wf, _ := item.(map[string]any)
		lines = append(lines, fmt.Sprintf("- %s (ID: %s) [%s]",
			strField(wf, "name", "Unnamed"),
			strField(wf, "id", "unknown"),
			activeLabel(boolField(wf, "active"))))
	}

	return fmt.Sprintf("Found %d workflow(s):\n", len(workflows)) + strings.Join(lines, "\n")
}

func renderWorkflow(_ map[string]string, payload any) string {
	wf, _ := payload.(map[string]any)
	nodes, _ := wf["nodes"].([]any)
	connections, _ := wf["connections"].(map[string]any)

	info := []string{
		fmt.Sprintf("Workflow: %s", strField(wf, "name", "Unnamed")),
		fmt.Sprintf("ID: %s", strField(wf, "id", "unknown")),
		fmt.Sprintf("Status: %s", activeLabel(boolField(wf, "active"))),
		fmt.Sprintf("Nodes: %d", len(nodes)),
		fmt.Sprintf("Connections: %d", len(connections)),
	}

	if len(nodes) > 0 {
		info = append(info, "\nNodes in workflow:")
		for _, item := range nodes {
			node, _ := item.(map[string]any)
			info = append(info, fmt.Sprintf("  - %s (%s)",
				strField(node, "name", "Unnamed"),
				strField(node, "type", "Unknown")))
		}
	}

	if tags, _ := wf["tags"].([]any); len(tags) > 0 {
		names := make([]string, 0, len(tags))
		for _, item := range tags {
			tag, _ := item.(map[string]any)
			names = append(names, strField(tag, "name", ""))
		}
		info = append(info, fmt.Sprintf("\nTags: %s", strings.Join(names, ", ")))
	}

	return strings.Join(info, "\n")
}

func renderExecutionStarted(_ map[string]string, payload any) string {
	execution, _ := payload.(map[string]any)
	return fmt.Sprintf("Workflow executed!\nExecution ID: %s\nStatus: %s",
		strField(execution, "id", "unknown"),
		finishedLabel(boolField(execution, "finished")))
}

func renderExecution(_ map[string]string, payload any) string {
	execution, _ := payload.(map[string]any)
	workflowData, _ := execution["workflowData"].(map[string]any)

	info := []string{
		fmt.Sprintf("Execution ID: %s", strField(execution, "id", "unknown")),
		fmt.Sprintf("Workflow: %s", strField(workflowData, "name", "Unknown")),
		fmt.Sprintf("Status: %s", finishedLabel(boolField(execution, "finished"))),
		fmt.Sprintf("Mode: %s", strField(execution, "mode", "unknown")),
	}

	if stopped := strField(execution, "stoppedAt", ""); stopped != "" {
		info = append(info, fmt.Sprintf("Stopped at: %s", stopped))
	}

	return strings.Join(info, "\n")
}
