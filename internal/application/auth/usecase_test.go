package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printworks/stockroom-api/internal/application/auth"
	"github.com/printworks/stockroom-api/internal/application/dto"
	"github.com/printworks/stockroom-api/internal/domain"
	"github.com/printworks/stockroom-api/internal/domain/entity"
	pkgjwt "github.com/printworks/stockroom-api/pkg/jwt"
)

// fakeUserRepo repositorio de usuarios en memoria.
type fakeUserRepo struct {
	byID   map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[int64]*entity.User), nextID: 1}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	u.ID = f.nextID
	f.nextID++
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.byID {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(id int64) error {
	delete(f.byID, id)
	return nil
}

const authTestSecret = "secret-para-tests-de-auth"

func buildAuthUC() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     authTestSecret,
		ExpMinutes: 60,
		Issuer:     "stockroom-api-test",
	})
	return uc, repo
}

func TestAuth_RegistroYLogin(t *testing.T) {
	uc, _ := buildAuthUC()

	user, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "bodega@printworks.test",
		Password: "clave-segura-123",
		Role:     entity.RoleWarehouse,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleWarehouse, user.Role)
	assert.Equal(t, "active", user.Status)

	out, err := uc.Login(dto.LoginRequest{Email: "bodega@printworks.test", Password: "clave-segura-123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	email, role, err := pkgjwt.Parse(authTestSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "bodega@printworks.test", email)
	assert.Equal(t, entity.RoleWarehouse, role, "el token debe llevar el rol del usuario")
}

func TestAuth_RegistroDuplicado(t *testing.T) {
	uc, _ := buildAuthUC()

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.test", Password: "clave-segura-123"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "a@b.test", Password: "otra-clave-larga"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestAuth_LoginPasswordIncorrecta(t *testing.T) {
	uc, _ := buildAuthUC()

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.test", Password: "clave-segura-123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.test", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuth_LoginUsuarioInactivo(t *testing.T) {
	uc, _ := buildAuthUC()

	user, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.test", Password: "clave-segura-123"})
	require.NoError(t, err)

	inactive := "inactive"
	_, err = uc.UpdateUser(user.ID, dto.UpdateUserRequest{Status: &inactive})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.test", Password: "clave-segura-123"})
	assert.ErrorIs(t, err, domain.ErrForbidden, "un usuario inactivo no debe poder iniciar sesión")
}

func TestAuth_UpdateUser_CambioDeRol(t *testing.T) {
	uc, _ := buildAuthUC()

	user, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.test", Password: "clave-segura-123"})
	require.NoError(t, err)
	require.Equal(t, entity.RoleViewer, user.Role, "sin rol explícito el registro queda como viewer")

	admin := entity.RoleAdmin
	updated, err := uc.UpdateUser(user.ID, dto.UpdateUserRequest{Role: &admin})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, updated.Role)

	invalid := "superuser"
	_, err = uc.UpdateUser(user.ID, dto.UpdateUserRequest{Role: &invalid})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
