package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/learninghub/internal/client/models"
	"github.com/dmitrijs2005/learninghub/internal/dbx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// LocalClient keeps real accounts in the local SQLite file: bcrypt password
// hashes in the accounts table and HS256 tokens signed with a local secret.
type LocalClient struct {
	db      *sql.DB
	secret  []byte
	ttl     time.Duration
	latency time.Duration
	cost    int
	now     func() time.Time
}

type LocalOption func(*LocalClient)

func WithBcryptCost(cost int) LocalOption {
	return func(c *LocalClient) { c.cost = cost }
}

func WithLatency(d time.Duration) LocalOption {
	return func(c *LocalClient) { c.latency = d }
}

func NewLocalClient(db *sql.DB, secret string, ttl time.Duration, opts ...LocalOption) (*LocalClient, error) {
	if secret == "" {
		return nil, ErrNoTokenSecret
	}
	c := &LocalClient{
		db:     db,
		secret: []byte(secret),
		ttl:    ttl,
		cost:   bcrypt.DefaultCost,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *LocalClient) SignUp(ctx context.Context, creds models.SignUpCredentials) (*models.AuthResponse, error) {
	if err := simulateLatency(ctx, c.latency); err != nil {
		return nil, err
	}
	if err := checkSignUp(creds); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), c.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{ID: uuid.NewString(), Email: creds.Email, Name: creds.Name}

	err = dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var n int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts WHERE email = ?`, user.Email).Scan(&n); err != nil {
			return err
		}
		if n > 0 {
			return ErrAccountExists
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO accounts (id, email, name, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`,
			user.ID, user.Email, user.Name, hash, c.now().UTC())
		return err
	})
	if err != nil {
		if errors.Is(err, ErrAccountExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	token, err := c.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{User: user, Token: token}, nil
}

func (c *LocalClient) SignIn(ctx context.Context, creds models.SignInCredentials) (*models.AuthResponse, error) {
	if err := simulateLatency(ctx, c.latency); err != nil {
		return nil, err
	}
	if err := checkSignIn(creds); err != nil {
		return nil, err
	}

	var (
		user models.User
		hash []byte
	)
	err := c.db.QueryRowContext(ctx,
		`SELECT id, email, name, password_hash FROM accounts WHERE email = ?`, creds.Email).
		Scan(&user.ID, &user.Email, &user.Name, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewValidationError("Invalid email or password")
	}
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(creds.Password)); err != nil {
		return nil, models.NewValidationError("Invalid email or password")
	}

	token, err := c.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{User: user, Token: token}, nil
}

func (c *LocalClient) issueToken(user models.User) (string, error) {
	now := c.now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(c.ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}
