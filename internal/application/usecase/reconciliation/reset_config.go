package reconciliation

import (
	"context"

	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// ResetConfigOutput represents the configuration after a reset.
type ResetConfigOutput struct {
	Config valueobject.MatchingConfig
}

// ResetConfigUseCase restores the matching configuration defaults.
type ResetConfigUseCase struct {
	configStore *ConfigStore
}

// NewResetConfigUseCase creates a new ResetConfigUseCase instance.
func NewResetConfigUseCase(configStore *ConfigStore) *ResetConfigUseCase {
	return &ResetConfigUseCase{configStore: configStore}
}

// Execute restores the documented defaults.
func (uc *ResetConfigUseCase) Execute(_ context.Context) (*ResetConfigOutput, error) {
	return &ResetConfigOutput{Config: uc.configStore.Reset()}, nil
}
