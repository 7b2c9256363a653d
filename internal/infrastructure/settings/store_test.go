package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igcalvo/licores-api/internal/infrastructure/settings"
)

// Caso 1: sin archivo previo, el store nace con el nombre por defecto y deja
// el archivo creado en disco.
func TestStore_PrimeraEjecucionMaterializaDefaults(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "config.json")

	store, err := settings.NewStore(ruta)
	require.NoError(t, err)

	assert.Equal(t, "Mi Bar", store.NombreEmpresa())

	_, err = os.Stat(ruta)
	assert.NoError(t, err, "el archivo de ajustes debió quedar en disco")
}

// Caso 2: lo escrito sobrevive a reabrir el store (persiste en el JSON).
func TestStore_EscrituraSobreviveReapertura(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "config.json")

	store, err := settings.NewStore(ruta)
	require.NoError(t, err)
	require.NoError(t, store.SetNombreEmpresa("Bar La Esquina"))

	reabierto, err := settings.NewStore(ruta)
	require.NoError(t, err)
	assert.Equal(t, "Bar La Esquina", reabierto.NombreEmpresa())
}

// Caso 3: un archivo editado a mano con el nombre vacío cae al valor por
// defecto en lugar de mostrar una empresa sin nombre.
func TestStore_NombreVacioCaeAlDefecto(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(ruta, []byte(`{"nombre_empresa": ""}`), 0o644))

	store, err := settings.NewStore(ruta)
	require.NoError(t, err)
	assert.Equal(t, "Mi Bar", store.NombreEmpresa())
}

// Caso 4: JSON corrupto se reporta como error en lugar de arrancar con
// ajustes fantasma.
func TestStore_JSONCorruptoFalla(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(ruta, []byte(`{nombre`), 0o644))

	_, err := settings.NewStore(ruta)
	assert.Error(t, err)
}
