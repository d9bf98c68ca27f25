package account

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/garage-manager/internal/audit"
	"github.com/BruksfildServices01/garage-manager/internal/auth"
	domain "github.com/BruksfildServices01/garage-manager/internal/domain/account"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/infra/memory"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

var codes = map[string]models.Role{
	"GG-ADMIN-2025": models.RoleGarageAdmin,
	"GG-STAFF-2025": models.RoleMechanicStaff,
}

type fixture struct {
	store *memory.Store
	auth  *auth.Service
	audit *audit.Dispatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.New()
	d := audit.NewDispatcher(audit.New(store))
	t.Cleanup(d.Close)
	return &fixture{
		store: store,
		auth:  auth.NewService("test-secret", time.Hour, bcrypt.MinCost),
		audit: d,
	}
}

func (f *fixture) registerAdmin(t *testing.T, email string) *models.User {
	t.Helper()
	res, err := NewRegister(f.store, f.auth, codes, nil).Execute(context.Background(), RegisterInput{
		Email:          email,
		Password:       "secret123",
		Name:           "Ravi",
		ActivationCode: "GG-ADMIN-2025",
		GarageName:     "Speed Motors",
	})
	require.NoError(t, err)
	return res.User
}

type staticDomains bool

func (s staticDomains) Valid(context.Context, string) bool { return bool(s) }

func TestRegister_AdminCreatesGarage(t *testing.T) {
	f := newFixture(t)

	res, err := NewRegister(f.store, f.auth, codes, nil).Execute(context.Background(), RegisterInput{
		Email:          " Ravi@Example.com ",
		Password:       "secret123",
		Name:           "Ravi",
		ActivationCode: "GG-ADMIN-2025",
		GarageName:     "Speed Motors",
		GaragePhone:    "9876543210",
	})
	require.NoError(t, err)

	assert.Equal(t, "ravi@example.com", res.User.Email)
	assert.Equal(t, models.RoleGarageAdmin, res.User.Role)
	require.NotNil(t, res.Garage)
	require.NotNil(t, res.User.GarageID)
	assert.Equal(t, res.Garage.ID, *res.User.GarageID)
	assert.Equal(t, "Ravi", res.Garage.OwnerName)
	assert.Equal(t, "ravi@example.com", res.Garage.Email)
	assert.NotEmpty(t, res.Token)
	assert.NotEqual(t, "secret123", res.User.PasswordHash)
}

func TestRegister_StaffIsUnbound(t *testing.T) {
	f := newFixture(t)

	res, err := NewRegister(f.store, f.auth, codes, nil).Execute(context.Background(), RegisterInput{
		Email:          "mech@example.com",
		Password:       "secret123",
		Name:           "Arun",
		ActivationCode: "GG-STAFF-2025",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoleMechanicStaff, res.User.Role)
	assert.Nil(t, res.User.GarageID)
	assert.Nil(t, res.Garage)
}

func TestRegister_UnknownCodeWritesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := NewRegister(f.store, f.auth, codes, nil).Execute(ctx, RegisterInput{
		Email:          "x@example.com",
		Password:       "secret123",
		Name:           "X",
		ActivationCode: "WRONG",
		GarageName:     "Nope",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_activation_code"))

	_, err = f.store.GetUserByEmail(ctx, "x@example.com")
	assert.True(t, httperr.IsBusiness(err, "unknown_identity"))
}

func TestRegister_Rejections(t *testing.T) {
	f := newFixture(t)
	f.registerAdmin(t, "ravi@example.com")
	ctx := context.Background()

	_, err := NewRegister(f.store, f.auth, codes, nil).Execute(ctx, RegisterInput{
		Email: "RAVI@example.com", Password: "secret123", Name: "R", ActivationCode: "GG-STAFF-2025",
	})
	kind, _ := httperr.KindOf(err)
	assert.Equal(t, httperr.KindConflict, kind)

	_, err = NewRegister(f.store, f.auth, codes, nil).Execute(ctx, RegisterInput{
		Email: "new@example.com", Password: "secret123", Name: "R", ActivationCode: "GG-ADMIN-2025",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_garage_profile"))

	_, err = NewRegister(f.store, f.auth, codes, staticDomains(false)).Execute(ctx, RegisterInput{
		Email: "new@example.com", Password: "secret123", Name: "R", ActivationCode: "GG-STAFF-2025",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_email_domain"))

	_, err = NewRegister(f.store, f.auth, codes, nil).Execute(ctx, RegisterInput{
		Email: "new@example.com", Password: "123", Name: "R", ActivationCode: "GG-STAFF-2025",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_request"))
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	f.registerAdmin(t, "ravi@example.com")
	ctx := context.Background()
	login := NewLogin(f.store, f.auth)

	res, err := login.Execute(ctx, "Ravi@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	require.NotNil(t, res.Garage)
	assert.Equal(t, "Speed Motors", res.Garage.Name)

	_, err = login.Execute(ctx, "ravi@example.com", "wrong")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))

	_, err = login.Execute(ctx, "ghost@example.com", "secret123")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))
}

func TestAuthenticate(t *testing.T) {
	f := newFixture(t)
	user := f.registerAdmin(t, "ravi@example.com")
	ctx := context.Background()
	authn := NewAuthenticate(f.store, f.auth)

	token, err := f.auth.GenerateToken(user)
	require.NoError(t, err)

	id, err := authn.Execute(ctx, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id.UserID)
	assert.Equal(t, models.RoleGarageAdmin, id.Role)
	assert.Equal(t, *user.GarageID, id.Garage())

	_, err = authn.Execute(ctx, "")
	assert.True(t, httperr.IsBusiness(err, "missing_token"))

	_, err = authn.Execute(ctx, "Bearer garbage")
	assert.True(t, httperr.IsBusiness(err, "invalid_token"))

	ghost, err := f.auth.GenerateToken(&models.User{ID: "ghost", Role: models.RoleGarageAdmin})
	require.NoError(t, err)
	_, err = authn.Execute(ctx, "Bearer "+ghost)
	assert.True(t, httperr.IsBusiness(err, "unknown_identity"))
}

func TestUpdateGarage(t *testing.T) {
	f := newFixture(t)
	admin := f.registerAdmin(t, "ravi@example.com")
	ctx := context.Background()
	uc := NewUpdateGarage(f.store, f.audit)

	name := "Speed Motors 2"
	g, err := uc.Execute(ctx, domain.IdentityOf(admin), *admin.GarageID, GaragePatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, g.Name)
	assert.Equal(t, "Ravi", g.OwnerName)

	staff := domain.Identity{UserID: "s", Role: models.RoleMechanicStaff, GarageID: admin.GarageID}
	_, err = uc.Execute(ctx, staff, *admin.GarageID, GaragePatch{Name: &name})
	assert.True(t, httperr.IsBusiness(err, "insufficient_permissions"))

	other := f.registerAdmin(t, "other@example.com")
	_, err = uc.Execute(ctx, domain.IdentityOf(other), *admin.GarageID, GaragePatch{Name: &name})
	assert.True(t, httperr.IsBusiness(err, "access_denied"))

	empty := " "
	_, err = uc.Execute(ctx, domain.IdentityOf(admin), *admin.GarageID, GaragePatch{Name: &empty})
	assert.True(t, httperr.IsBusiness(err, "invalid_garage_profile"))
}

func TestCreateStaff_BindsToGarage(t *testing.T) {
	f := newFixture(t)
	admin := f.registerAdmin(t, "ravi@example.com")
	ctx := context.Background()

	staff, err := NewCreateStaff(f.store, f.auth, f.audit).Execute(ctx, domain.IdentityOf(admin), *admin.GarageID, CreateStaffInput{
		Name: "Arun", Email: "arun@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, staff.GarageID)
	assert.Equal(t, *admin.GarageID, *staff.GarageID)
	assert.Equal(t, models.RoleMechanicStaff, staff.Role)

	res, err := NewLogin(f.store, f.auth).Execute(ctx, "arun@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, *admin.GarageID, res.Garage.ID)
}

func TestEnsureSuperAdmin_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, EnsureSuperAdmin(ctx, f.store, f.auth, "root@example.com", "rootpass"))
	require.NoError(t, EnsureSuperAdmin(ctx, f.store, f.auth, "root@example.com", "rootpass"))
	require.NoError(t, EnsureSuperAdmin(ctx, f.store, f.auth, "", ""))

	u, err := f.store.GetUserByEmail(ctx, "root@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuperAdmin, u.Role)
	assert.Nil(t, u.GarageID)
}
