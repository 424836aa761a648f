// Package projects implements the wizard state store: one row per project
// capturing the selections a user makes across the generation steps.
package projects

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a saved wizard state.
type Project struct {
	ID             uuid.UUID `json:"id"`
	OwnerID        string    `json:"owner_id"`
	Name           string    `json:"name"`
	ProductType    string    `json:"product_type"`
	ProjectStage   string    `json:"project_stage"`
	Framework      string    `json:"framework"`
	FrameworkStage string    `json:"framework_stage"`
	Tool           string    `json:"tool"`
	Context        string    `json:"context"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to create a project.
type CreateCommand struct {
	OwnerID        string `json:"owner_id"`
	Name           string `json:"name"`
	ProductType    string `json:"product_type"`
	ProjectStage   string `json:"project_stage"`
	Framework      string `json:"framework"`
	FrameworkStage string `json:"framework_stage"`
	Tool           string `json:"tool"`
	Context        string `json:"context"`
}

// UpdateCommand carries the data needed to update a project.
type UpdateCommand struct {
	Name           string `json:"name"`
	ProductType    string `json:"product_type"`
	ProjectStage   string `json:"project_stage"`
	Framework      string `json:"framework"`
	FrameworkStage string `json:"framework_stage"`
	Tool           string `json:"tool"`
	Context        string `json:"context"`
}
