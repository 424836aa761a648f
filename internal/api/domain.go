package api

import (
	"github.com/framepromptly/framepromptly/internal/documents"
	"github.com/framepromptly/framepromptly/internal/generations"
	"github.com/framepromptly/framepromptly/internal/projects"
	"github.com/framepromptly/framepromptly/internal/templates"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Templates   templates.System
	Projects    projects.System
	Generations generations.System
	Documents   documents.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	templatesSystem := templates.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	projectsSystem := projects.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	generationsSystem := generations.New(
		runtime.Database.Connection(),
		templatesSystem,
		runtime.Workflow,
		runtime.Logger,
		runtime.Pagination,
	)

	documentsSystem := documents.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Logger,
		runtime.Pagination,
	)

	return &Domain{
		Templates:   templatesSystem,
		Projects:    projectsSystem,
		Generations: generationsSystem,
		Documents:   documentsSystem,
	}
}
