package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tools returns the static tool catalog exposed by the server. The list
// is rebuilt on every call from the same definitions, so the order and
// content are stable; callers may hold or mutate the returned slice
// freely.
func Tools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("list_workflows",
			mcp.WithDescription("List all workflows in n8n. Returns workflow names, IDs, and active status."),
		),
		mcp.NewTool("get_workflow",
			mcp.WithDescription("Get detailed information about a specific workflow by ID."),
			mcp.WithString("workflow_id",
				mcp.Required(),
				mcp.Description("The ID of the workflow"),
			),
		),
		mcp.NewTool("execute_workflow",
			mcp.WithDescription("Execute a workflow by ID. Optionally pass input data as JSON string."),
			mcp.WithString("workflow_id",
				mcp.Required(),
				mcp.Description("The ID of the workflow to execute"),
			),
			mcp.WithString("input_data",
				mcp.Description("Optional JSON string with input data for the workflow"),
			),
		),
		mcp.NewTool("get_execution",
			mcp.WithDescription("Get the status and result of a workflow execution by execution ID."),
			mcp.WithString("execution_id",
				mcp.Required(),
				mcp.Description("The execution ID to check"),
			),
		),
		mcp.NewTool("activate_workflow",
			mcp.WithDescription("Activate (enable) a workflow by ID so it can run automatically."),
			mcp.WithString("workflow_id",
				mcp.Required(),
				mcp.Description("The ID of the workflow to activate"),
			),
		),
		mcp.NewTool("deactivate_workflow",
			mcp.WithDescription("Deactivate (disable) a workflow by ID to stop it from running automatically."),
			mcp.WithString("workflow_id",
				mcp.Required(),
				mcp.Description("The ID of the workflow to deactivate"),
			),
		),
	}
}
