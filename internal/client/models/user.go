// Package models holds the plain data types shared by the client layers.
package models

// User is the identity record of an authenticated person.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session pairs an opaque token with the user it was issued for.
type Session struct {
	Token string
	User  User
}

type SignInCredentials struct {
	Email    string
	Password string
}

type SignUpCredentials struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// AuthResponse is what a backend returns after a successful sign in or sign up.
type AuthResponse struct {
	User  User
	Token string
}
