package scaffold

import "embed"

//go:embed templates
var templateFS embed.FS

//go:embed schema/workflow.schema.json
var workflowSchemaBytes []byte
