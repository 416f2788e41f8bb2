package reconciliation

import (
	"context"

	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// UpdateConfigInput carries a partial configuration update.
type UpdateConfigInput struct {
	Patch valueobject.MatchingConfigPatch
}

// UpdateConfigOutput represents the configuration after a successful update.
type UpdateConfigOutput struct {
	Config valueobject.MatchingConfig
}

// UpdateConfigUseCase applies a partial update to the matching configuration.
// Validation failures leave the prior configuration unchanged.
type UpdateConfigUseCase struct {
	configStore *ConfigStore
}

// NewUpdateConfigUseCase creates a new UpdateConfigUseCase instance.
func NewUpdateConfigUseCase(configStore *ConfigStore) *UpdateConfigUseCase {
	return &UpdateConfigUseCase{configStore: configStore}
}

// Execute merges and validates the patch.
func (uc *UpdateConfigUseCase) Execute(_ context.Context, input UpdateConfigInput) (*UpdateConfigOutput, error) {
	updated, err := uc.configStore.Update(input.Patch)
	if err != nil {
		return nil, err
	}
	return &UpdateConfigOutput{Config: updated}, nil
}
