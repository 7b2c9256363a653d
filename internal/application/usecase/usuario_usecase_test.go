package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/igcalvo/licores-api/internal/application/dto"
	"github.com/igcalvo/licores-api/internal/application/usecase"
	"github.com/igcalvo/licores-api/internal/domain"
	"github.com/igcalvo/licores-api/internal/domain/entity"
	"github.com/igcalvo/licores-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*fakeUsuarioRepo)(nil)

type fakeUsuarioRepo struct {
	porID     map[int64]*entity.Usuario
	siguiente int64
	borrados  []int64
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{porID: make(map[int64]*entity.Usuario)}
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	for _, existente := range r.porID {
		if existente.Username == u.Username {
			return domain.ErrDuplicate
		}
	}
	r.siguiente++
	u.ID = r.siguiente
	u.FechaCreacion = time.Now()
	clon := *u
	r.porID[u.ID] = &clon
	return nil
}

func (r *fakeUsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	u, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	clon := *u
	return &clon, nil
}

func (r *fakeUsuarioRepo) GetByUsername(username string) (*entity.Usuario, error) {
	for _, u := range r.porID {
		if u.Username == username {
			clon := *u
			return &clon, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) List() ([]*entity.Usuario, error) {
	items := make([]*entity.Usuario, 0, len(r.porID))
	for _, u := range r.porID {
		clon := *u
		items = append(items, &clon)
	}
	return items, nil
}

func (r *fakeUsuarioRepo) Update(u *entity.Usuario) error {
	clon := *u
	r.porID[u.ID] = &clon
	return nil
}

func (r *fakeUsuarioRepo) Delete(id int64) error {
	delete(r.porID, id)
	r.borrados = append(r.borrados, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// UsuarioUseCase
// ──────────────────────────────────────────────────────────────────────────────

func armarUsuarioUseCase() (*usecase.UsuarioUseCase, *fakeUsuarioRepo, *fakeMovimientoRepo, *fakeTxRunner) {
	repo := newFakeUsuarioRepo()
	movRepo := newFakeMovimientoRepo()
	tx := &fakeTxRunner{mov: movRepo, usr: repo}
	return usecase.NewUsuarioUseCase(repo, tx), repo, movRepo, tx
}

func usuarioValido() dto.CreateUsuarioRequest {
	local := int64(1)
	return dto.CreateUsuarioRequest{
		Username: "mrodriguez",
		Password: "clave-segura",
		Nombre:   "María Rodríguez",
		Rol:      entity.RolEmpleado,
		LocalID:  &local,
	}
}

func TestUsuarioCreate_HasheaConBcrypt(t *testing.T) {
	uc, repo, _, _ := armarUsuarioUseCase()

	resp, err := uc.Create(usuarioValido())

	require.NoError(t, err)
	guardado := repo.porID[resp.ID]
	require.NotNil(t, guardado)
	assert.NotEqual(t, "clave-segura", guardado.PasswordHash,
		"la clave jamás se persiste en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(guardado.PasswordHash), []byte("clave-segura")))
	assert.True(t, resp.Activo, "una cuenta nueva nace activa")
}

func TestUsuarioCreate_NoAdminSinLocalRechazado(t *testing.T) {
	uc, _, _, _ := armarUsuarioUseCase()
	in := usuarioValido()
	in.LocalID = nil

	_, err := uc.Create(in)

	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"una cuenta no-admin sin local nunca podría iniciar sesión")
}

func TestUsuarioCreate_AdminSinLocalPermitido(t *testing.T) {
	uc, _, _, _ := armarUsuarioUseCase()
	in := usuarioValido()
	in.Rol = entity.RolAdmin
	in.LocalID = nil

	resp, err := uc.Create(in)

	require.NoError(t, err)
	assert.Nil(t, resp.LocalID, "el admin opera sobre todos los locales")
}

func TestUsuarioCreate_RolDesconocidoRechazado(t *testing.T) {
	uc, _, _, _ := armarUsuarioUseCase()
	in := usuarioValido()
	in.Rol = "bartender"

	_, err := uc.Create(in)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUsuarioCreate_UsernameDuplicado(t *testing.T) {
	uc, _, _, _ := armarUsuarioUseCase()
	_, err := uc.Create(usuarioValido())
	require.NoError(t, err)

	_, err = uc.Create(usuarioValido())

	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUsuarioUpdate_PasswordAusenteConservaHash(t *testing.T) {
	uc, repo, _, _ := armarUsuarioUseCase()
	resp, err := uc.Create(usuarioValido())
	require.NoError(t, err)
	hashOriginal := repo.porID[resp.ID].PasswordHash

	_, err = uc.Update(resp.ID, dto.UpdateUsuarioRequest{Nombre: ptr("María R. García")})
	require.NoError(t, err)
	assert.Equal(t, hashOriginal, repo.porID[resp.ID].PasswordHash,
		"sin password en la petición el hash no cambia")

	_, err = uc.Update(resp.ID, dto.UpdateUsuarioRequest{Password: ptr("")})
	require.NoError(t, err)
	assert.Equal(t, hashOriginal, repo.porID[resp.ID].PasswordHash,
		"password vacío también conserva el hash")

	_, err = uc.Update(resp.ID, dto.UpdateUsuarioRequest{Password: ptr("otra-clave")})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(repo.porID[resp.ID].PasswordHash), []byte("otra-clave")))
}

func TestUsuarioUpdate_DegradarAdminSinLocalRechazado(t *testing.T) {
	uc, _, _, _ := armarUsuarioUseCase()
	in := usuarioValido()
	in.Rol = entity.RolAdmin
	in.LocalID = nil
	resp, err := uc.Create(in)
	require.NoError(t, err)

	_, err = uc.Update(resp.ID, dto.UpdateUsuarioRequest{Rol: ptr(entity.RolGerente)})

	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"degradar a gerente sin asignar local dejaría la cuenta sin acceso")
}

func TestUsuarioDelete_PropiaCuentaBloqueada(t *testing.T) {
	uc, repo, _, tx := armarUsuarioUseCase()
	resp, err := uc.Create(usuarioValido())
	require.NoError(t, err)

	err = uc.Delete(context.Background(), domain.Scope{UserID: resp.ID, Rol: entity.RolAdmin}, resp.ID)

	assert.ErrorIs(t, err, domain.ErrAutoEliminacion)
	assert.Contains(t, repo.porID, resp.ID, "la cuenta debe seguir existiendo")
	assert.Zero(t, tx.corridas)
}

func TestUsuarioDelete_CascadaDeMovimientos(t *testing.T) {
	uc, repo, movRepo, tx := armarUsuarioUseCase()
	resp, err := uc.Create(usuarioValido())
	require.NoError(t, err)

	// El que borra es otro admin, no la propia cuenta.
	err = uc.Delete(context.Background(), domain.Scope{UserID: 99, Rol: entity.RolAdmin}, resp.ID)

	require.NoError(t, err)
	assert.Equal(t, 1, tx.corridas)
	assert.Contains(t, movRepo.borradosUsuario, resp.ID,
		"los movimientos del usuario se borran en la misma transacción")
	assert.NotContains(t, repo.porID, resp.ID)
}

func TestUsuarioDelete_InexistenteRetornaUserNotFound(t *testing.T) {
	uc, _, _, _ := armarUsuarioUseCase()

	err := uc.Delete(context.Background(), scopeAdmin(), 42)

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
