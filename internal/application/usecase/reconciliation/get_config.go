package reconciliation

import (
	"context"

	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// GetConfigOutput represents the current matching configuration.
type GetConfigOutput struct {
	Config valueobject.MatchingConfig
}

// GetConfigUseCase returns the current matching configuration snapshot.
type GetConfigUseCase struct {
	configStore *ConfigStore
}

// NewGetConfigUseCase creates a new GetConfigUseCase instance.
func NewGetConfigUseCase(configStore *ConfigStore) *GetConfigUseCase {
	return &GetConfigUseCase{configStore: configStore}
}

// Execute returns the current configuration.
func (uc *GetConfigUseCase) Execute(_ context.Context) (*GetConfigOutput, error) {
	return &GetConfigOutput{Config: uc.configStore.Get()}, nil
}
