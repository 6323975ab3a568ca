package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/learninghub/internal/client/models"
)

// MockClient fabricates users and tokens after a fixed artificial delay.
// Any pair passing the rules succeeds; nothing is looked up or stored.
type MockClient struct {
	latency time.Duration
	now     func() time.Time
}

func NewMockClient(latency time.Duration) *MockClient {
	return &MockClient{latency: latency, now: time.Now}
}

func (c *MockClient) SignIn(ctx context.Context, creds models.SignInCredentials) (*models.AuthResponse, error) {
	if err := simulateLatency(ctx, c.latency); err != nil {
		return nil, err
	}
	if err := checkSignIn(creds); err != nil {
		return nil, err
	}

	name, _, _ := strings.Cut(creds.Email, "@")
	return &models.AuthResponse{
		User:  models.User{ID: "1", Email: creds.Email, Name: name},
		Token: c.token(),
	}, nil
}

func (c *MockClient) SignUp(ctx context.Context, creds models.SignUpCredentials) (*models.AuthResponse, error) {
	if err := simulateLatency(ctx, c.latency); err != nil {
		return nil, err
	}
	if err := checkSignUp(creds); err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		User:  models.User{ID: "1", Email: creds.Email, Name: creds.Name},
		Token: c.token(),
	}, nil
}

func (c *MockClient) token() string {
	return fmt.Sprintf("mock_token_%d", c.now().UnixMilli())
}
