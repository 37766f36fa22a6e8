package model

// DefaultWorkflowClass identifies the baseline workflow behaviour.
const DefaultWorkflowClass = "workflow"

// Group represents a named category of workflows sharing an owning entity
// type and a default behaviour implementation
type Group struct {
	ID            string `json:"id" yaml:"id"`
	Label         string `json:"label" yaml:"label"`
	EntityType    string `json:"entityType,omitempty" yaml:"entity_type,omitempty"`
	WorkflowClass string `json:"workflowClass,omitempty" yaml:"workflow_class,omitempty"`
}

// NewGroup creates a group, an empty workflow class is defaulted
func NewGroup(id, label, entityType, workflowClass string) *Group {
	if workflowClass == "" {
		workflowClass = DefaultWorkflowClass
	}
	return &Group{ID: id, Label: label, EntityType: entityType, WorkflowClass: workflowClass}
}
