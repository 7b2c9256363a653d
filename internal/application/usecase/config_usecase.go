package usecase

import (
	"strings"

	"github.com/igcalvo/licores-api/internal/application/dto"
	"github.com/igcalvo/licores-api/internal/domain"
)

// ConfigUseCase expone la configuración visible de la aplicación: el nombre
// de la empresa (persistido en disco) y la versión compilada.
type ConfigUseCase struct {
	store   SettingsStore
	version string
}

// NewConfigUseCase construye el caso de uso.
func NewConfigUseCase(store SettingsStore, version string) *ConfigUseCase {
	return &ConfigUseCase{store: store, version: version}
}

// Get devuelve la configuración actual.
func (uc *ConfigUseCase) Get() *dto.ConfigResponse {
	return &dto.ConfigResponse{
		NombreEmpresa: uc.store.NombreEmpresa(),
		Version:       uc.version,
	}
}

// Update cambia el nombre de la empresa y lo persiste.
func (uc *ConfigUseCase) Update(in dto.UpdateConfigRequest) (*dto.ConfigResponse, error) {
	nombre := strings.TrimSpace(in.NombreEmpresa)
	if nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.store.SetNombreEmpresa(nombre); err != nil {
		return nil, err
	}
	return uc.Get(), nil
}
