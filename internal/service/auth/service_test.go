package auth

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"

	"github.com/bizdash/bizops-backend-go/internal/domain/auth"
	"github.com/bizdash/bizops-backend-go/internal/domain/user"
	"github.com/bizdash/bizops-backend-go/internal/pkg/jwt"
	"github.com/bizdash/bizops-backend-go/internal/repository/excel"
	"github.com/bizdash/bizops-backend-go/internal/store"
)

type testHarness struct {
	svc        auth.AuthService
	store      store.Store
	jwtService jwt.Service
}

func newTestService(t *testing.T) testHarness {
	t.Helper()
	s, err := excel.NewStore(filepath.Join(t.TempDir(), "business_data.xlsx"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	jwtService := jwt.NewJWTService("test-secret-key", "1h", "168h")
	return testHarness{
		svc:        NewAuthService(s.Users(), jwtService),
		store:      s,
		jwtService: jwtService,
	}
}

func createStaffUser(t *testing.T, h testHarness, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = h.store.Users().Create(context.Background(), user.User{
		Email:        email,
		Name:         "Staff Member",
		PasswordHash: string(hash),
		Role:         user.RoleStaff,
	})
	require.NoError(t, err)
}

func tokenRole(t *testing.T, h testHarness, tokenString string) string {
	t.Helper()
	token, err := h.jwtService.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	role, _ := claims["role"].(string)
	return role
}

func TestAuthService_LoginAfterEnsureAdminUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t).svc

	require.NoError(t, svc.EnsureAdminUser(ctx, "admin@localhost", "Administrator", "s3cret"))

	resp, err := svc.Login(ctx, auth.LoginRequest{Email: "admin@localhost", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "admin@localhost", resp.User.Email)
	assert.Equal(t, "admin", resp.User.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t).svc

	require.NoError(t, svc.EnsureAdminUser(ctx, "admin@localhost", "Administrator", "s3cret"))

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "admin@localhost", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t).svc

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "nobody@localhost", Password: "s3cret"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_EnsureAdminUser_Idempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t).svc

	require.NoError(t, svc.EnsureAdminUser(ctx, "admin@localhost", "Administrator", "s3cret"))
	// A second run must not fail or reset the password.
	require.NoError(t, svc.EnsureAdminUser(ctx, "admin@localhost", "Administrator", "different"))

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "admin@localhost", Password: "s3cret"})
	assert.NoError(t, err)
}

func TestAuthService_RefreshAndLogout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t).svc

	require.NoError(t, svc.EnsureAdminUser(ctx, "admin@localhost", "Administrator", "s3cret"))
	login, err := svc.Login(ctx, auth.LoginRequest{Email: "admin@localhost", Password: "s3cret"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	require.NoError(t, svc.Logout(ctx, login.RefreshToken))

	_, err = svc.Refresh(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestAuthService_Refresh_KeepsStaffRole(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newTestService(t)

	createStaffUser(t, h, "staff@localhost", "s3cret")
	login, err := h.svc.Login(ctx, auth.LoginRequest{Email: "staff@localhost", Password: "s3cret"})
	require.NoError(t, err)
	require.Equal(t, "staff", login.User.Role)

	// A staff refresh token must never yield an admin access token.
	refreshed, err := h.svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "staff", tokenRole(t, h, refreshed.AccessToken))
}

func TestAuthService_Refresh_AdminRole(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newTestService(t)

	require.NoError(t, h.svc.EnsureAdminUser(ctx, "admin@localhost", "Administrator", "s3cret"))
	login, err := h.svc.Login(ctx, auth.LoginRequest{Email: "admin@localhost", Password: "s3cret"})
	require.NoError(t, err)

	refreshed, err := h.svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", tokenRole(t, h, refreshed.AccessToken))
}

func TestAuthService_Refresh_DeletedUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newTestService(t)

	// A refresh token pointing at a user id no longer in the store.
	token, _, err := h.jwtService.GenerateRefreshToken("missing-user-id")
	require.NoError(t, err)

	_, err = h.svc.Refresh(ctx, token)
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t).svc

	require.NoError(t, svc.EnsureAdminUser(ctx, "admin@localhost", "Administrator", "s3cret"))
	login, err := svc.Login(ctx, auth.LoginRequest{Email: "admin@localhost", Password: "s3cret"})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, login.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
