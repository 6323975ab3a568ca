package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/learninghub/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireValidation(t *testing.T, err error, msg string) {
	t.Helper()
	var ve *models.ValidationError
	require.True(t, errors.As(err, &ve), "want ValidationError, got %v", err)
	assert.Equal(t, msg, ve.Message)
}

func newTestMock() *MockClient {
	c := NewMockClient(0)
	c.now = func() time.Time { return time.UnixMilli(1700000000123) }
	return c
}

func TestMockClient_SignIn_Rules(t *testing.T) {
	tests := []struct {
		name  string
		creds models.SignInCredentials
		want  string
	}{
		{"empty email", models.SignInCredentials{Password: "password123"}, "Email and password are required"},
		{"empty password", models.SignInCredentials{Email: "a@b.com"}, "Email and password are required"},
		{"both empty", models.SignInCredentials{}, "Email and password are required"},
		{"short password", models.SignInCredentials{Email: "a@b.com", Password: "12345"}, "Invalid email or password"},
		{"short password, odd email", models.SignInCredentials{Email: "nope", Password: "x"}, "Invalid email or password"},
		{"three multibyte chars", models.SignInCredentials{Email: "a@b.com", Password: "ééé"}, "Invalid email or password"},
	}

	c := newTestMock()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := c.SignIn(context.Background(), tt.creds)
			require.Nil(t, resp)
			requireValidation(t, err, tt.want)
		})
	}
}

func TestMockClient_SignIn_Success(t *testing.T) {
	c := newTestMock()

	for _, email := range []string{"test@example.com", "john.doe@mail.org", "no-at-sign"} {
		resp, err := c.SignIn(context.Background(), models.SignInCredentials{Email: email, Password: "123456"})
		require.NoError(t, err)
		assert.Equal(t, "1", resp.User.ID)
		assert.Equal(t, email, resp.User.Email)
		assert.Equal(t, "mock_token_1700000000123", resp.Token)
	}

	resp, err := c.SignIn(context.Background(), models.SignInCredentials{Email: "test@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "test", resp.User.Name)
}

func TestMockClient_SignUp_Rules(t *testing.T) {
	valid := models.SignUpCredentials{Name: "Alice", Email: "alice@example.com", Password: "secret1", ConfirmPassword: "secret1"}

	tests := []struct {
		name   string
		mutate func(*models.SignUpCredentials)
		want   string
	}{
		{"missing name", func(c *models.SignUpCredentials) { c.Name = "" }, "All fields are required"},
		{"missing confirm", func(c *models.SignUpCredentials) { c.ConfirmPassword = "" }, "All fields are required"},
		{"mismatch before email format", func(c *models.SignUpCredentials) {
			c.Email = "not-an-email"
			c.ConfirmPassword = "other12"
		}, "Passwords do not match"},
		{"short password", func(c *models.SignUpCredentials) {
			c.Password, c.ConfirmPassword = "abc", "abc"
		}, "Password must be at least 6 characters"},
		{"three multibyte chars", func(c *models.SignUpCredentials) {
			c.Password, c.ConfirmPassword = "ééé", "ééé"
		}, "Password must be at least 6 characters"},
		{"bad email", func(c *models.SignUpCredentials) { c.Email = "alice@example" }, "Invalid email format"},
		{"email with space", func(c *models.SignUpCredentials) { c.Email = "al ice@example.com" }, "Invalid email format"},
	}

	c := newTestMock()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := valid
			tt.mutate(&creds)
			resp, err := c.SignUp(context.Background(), creds)
			require.Nil(t, resp)
			requireValidation(t, err, tt.want)
		})
	}
}

func TestMockClient_SignUp_Success(t *testing.T) {
	c := newTestMock()
	resp, err := c.SignUp(context.Background(), models.SignUpCredentials{
		Name: "Alice", Email: "alice@example.com", Password: "secret1", ConfirmPassword: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, models.User{ID: "1", Email: "alice@example.com", Name: "Alice"}, resp.User)
	assert.Equal(t, "mock_token_1700000000123", resp.Token)
}

func TestMockClient_LatencyHonorsContext(t *testing.T) {
	c := NewMockClient(time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.SignIn(ctx, models.SignInCredentials{Email: "a@b.com", Password: "123456"})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMockClient_LatencyElapses(t *testing.T) {
	c := NewMockClient(30 * time.Millisecond)
	start := time.Now()

	_, err := c.SignIn(context.Background(), models.SignInCredentials{Email: "a@b.com", Password: "123456"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestMockClient_PasswordLengthCountsCharacters(t *testing.T) {
	c := newTestMock()

	_, err := c.SignIn(context.Background(), models.SignInCredentials{Email: "a@b.com", Password: "éééééé"})
	require.NoError(t, err)

	_, err = c.SignUp(context.Background(), models.SignUpCredentials{
		Name: "Zoé", Email: "zoe@example.com", Password: "éééééé", ConfirmPassword: "éééééé",
	})
	require.NoError(t, err)
}
