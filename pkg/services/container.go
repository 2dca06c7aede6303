package service

import (
	"context"

	client "github.com/sorumat/sorumat-go/pkg/clients"
	"github.com/sorumat/sorumat-go/pkg/configs"
	_interface "github.com/sorumat/sorumat-go/pkg/interfaces"
	"github.com/sorumat/sorumat-go/pkg/utils"
)

// NewServiceContainer wires the stages and clients the routes depend on.
// A Gemini client that cannot be constructed is fatal: the credential is a
// process-start requirement, not a per-request concern.
func NewServiceContainer() *_interface.ServiceContainer {
	config := configs.GetConfig()

	generator, err := NewGeminiGenerator(context.Background(), config)
	if err != nil {
		utils.Fatal("container", "failed to initialize Gemini client: %v", err)
	}

	uploadService := NewUploadService(config)
	ocrService := NewOcrService(config)
	refineService := NewRefineService(generator)
	pipelineService := NewPipelineService(uploadService, ocrService, refineService)
	identityService := client.NewIdentityClient(config)

	return &_interface.ServiceContainer{
		PipelineService: pipelineService,
		IdentityService: identityService,
	}
}
