// Package settings persiste los ajustes editables en caliente (hoy solo el
// nombre de la empresa) en un archivo JSON aparte de la configuración de
// arranque.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"

	appinventory "github.com/igcalvo/licores-api/internal/application/inventory"
	"github.com/igcalvo/licores-api/internal/application/usecase"
)

const (
	claveNombreEmpresa   = "nombre_empresa"
	nombreEmpresaDefecto = "Mi Bar"
)

// Store lee y escribe los ajustes vía Viper. Cada escritura reescribe el
// archivo completo; el mutex serializa lectores y escritores concurrentes.
type Store struct {
	mu   sync.RWMutex
	v    *viper.Viper
	ruta string
}

var (
	_ usecase.SettingsStore      = (*Store)(nil)
	_ appinventory.SettingsStore = (*Store)(nil)
)

// NewStore carga el archivo de ajustes; si no existe lo materializa con los
// valores por defecto para que quede editable a mano.
func NewStore(ruta string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(ruta)
	v.SetConfigType("json")
	v.SetDefault(claveNombreEmpresa, nombreEmpresaDefecto)

	if err := v.ReadInConfig(); err != nil {
		// Con SetConfigFile un archivo ausente llega como PathError, no como
		// ConfigFileNotFoundError.
		var noEncontrado viper.ConfigFileNotFoundError
		if !errors.Is(err, os.ErrNotExist) && !errors.As(err, &noEncontrado) {
			return nil, fmt.Errorf("settings: leer %s: %w", ruta, err)
		}
		if err := os.MkdirAll(filepath.Dir(ruta), 0o755); err != nil {
			return nil, fmt.Errorf("settings: crear directorio de %s: %w", ruta, err)
		}
		if err := v.WriteConfigAs(ruta); err != nil {
			return nil, fmt.Errorf("settings: crear %s: %w", ruta, err)
		}
	}

	return &Store{v: v, ruta: ruta}, nil
}

// NombreEmpresa devuelve el nombre configurado, o el valor por defecto si el
// archivo lo dejó vacío.
func (s *Store) NombreEmpresa() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if nombre := s.v.GetString(claveNombreEmpresa); nombre != "" {
		return nombre
	}
	return nombreEmpresaDefecto
}

// SetNombreEmpresa actualiza el nombre y lo persiste de inmediato.
func (s *Store) SetNombreEmpresa(nombre string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.v.Set(claveNombreEmpresa, nombre)
	if err := s.v.WriteConfigAs(s.ruta); err != nil {
		return fmt.Errorf("settings: escribir %s: %w", s.ruta, err)
	}
	return nil
}
