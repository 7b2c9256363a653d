package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/igcalvo/licores-api/internal/application/dto"
	"github.com/igcalvo/licores-api/internal/domain"
	"github.com/igcalvo/licores-api/internal/domain/entity"
	"github.com/igcalvo/licores-api/internal/domain/repository"
	"github.com/igcalvo/licores-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Login verifica credenciales y devuelve token + usuario. Todos los caminos
// de rechazo (usuario inexistente, clave errada, cuenta inactiva, local que
// no corresponde) responden el mismo error para no filtrar cuál falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarioRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrCredencialesInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrCredencialesInvalidas
	}
	if !usuario.Activo {
		return nil, domain.ErrCredencialesInvalidas
	}
	if usuario.Rol != entity.RolAdmin {
		// Las sesiones no-admin quedan confinadas a un local: la cuenta debe
		// tenerlo asignado y, si el login pide uno, debe ser el suyo.
		if usuario.LocalID == nil {
			return nil, domain.ErrCredencialesInvalidas
		}
		if in.LocalID != nil && *in.LocalID != *usuario.LocalID {
			return nil, domain.ErrCredencialesInvalidas
		}
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.LocalID,
		usuario.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUsuarioResponse(usuario),
	}, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:            u.ID,
		Username:      u.Username,
		Nombre:        u.Nombre,
		Rol:           u.Rol,
		LocalID:       u.LocalID,
		Activo:        u.Activo,
		FechaCreacion: u.FechaCreacion,
	}
}
