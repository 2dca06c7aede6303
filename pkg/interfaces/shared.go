package _interface

import (
	"net/http"

	"github.com/sorumat/sorumat-go/pkg/configs"
)

// Service carries the dependencies shared by API clients.
type Service struct {
	Config *configs.EnvConfig
	Client *http.Client
}

// ServiceContainer holds every service instance the routes need.
type ServiceContainer struct {
	PipelineService PipelineService
	IdentityService IdentityService
}
