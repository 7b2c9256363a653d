package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igcalvo/licores-api/internal/application/dto"
	"github.com/igcalvo/licores-api/internal/application/usecase"
	"github.com/igcalvo/licores-api/internal/domain"
)

var _ usecase.SettingsStore = (*fakeSettingsStore)(nil)

type fakeSettingsStore struct {
	nombre string
}

func (s *fakeSettingsStore) NombreEmpresa() string { return s.nombre }

func (s *fakeSettingsStore) SetNombreEmpresa(n string) error {
	s.nombre = n
	return nil
}

func TestConfigGet_DevuelveNombreYVersion(t *testing.T) {
	uc := usecase.NewConfigUseCase(&fakeSettingsStore{nombre: "Mi Bar"}, "1.2.0")

	cfg := uc.Get()

	assert.Equal(t, "Mi Bar", cfg.NombreEmpresa)
	assert.Equal(t, "1.2.0", cfg.Version)
}

func TestConfigUpdate_PersisteNombreRecortado(t *testing.T) {
	store := &fakeSettingsStore{nombre: "Mi Bar"}
	uc := usecase.NewConfigUseCase(store, "1.2.0")

	cfg, err := uc.Update(dto.UpdateConfigRequest{NombreEmpresa: "  Bar La Esquina  "})

	require.NoError(t, err)
	assert.Equal(t, "Bar La Esquina", cfg.NombreEmpresa)
	assert.Equal(t, "Bar La Esquina", store.nombre)
}

func TestConfigUpdate_NombreVacioRechazado(t *testing.T) {
	store := &fakeSettingsStore{nombre: "Mi Bar"}
	uc := usecase.NewConfigUseCase(store, "1.2.0")

	_, err := uc.Update(dto.UpdateConfigRequest{NombreEmpresa: "   "})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Mi Bar", store.nombre, "un update inválido no toca lo persistido")
}
