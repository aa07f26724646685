package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Console roles. Field officers (CDO) record and review the businesses they
// accompany; viewers only read.
const (
	RoleAdmin        = 1
	RoleFieldOfficer = 2
	RoleViewer       = 3
)

// User is the profile record. The console authenticates by a phone-derived
// credential, so phone is the natural lookup key.
type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"nama"`
	Phone        string     `json:"phone"`
	PasswordHash string     `json:"password,omitempty"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	Estate       *string    `json:"estate"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type UpdateUserRequest struct {
	ID      int     `json:"id"`
	Name    *string `json:"nama"`
	Phone   *string `json:"phone"`
	Active  *bool   `json:"active"`
	RoleID  *int    `json:"role_id"`
	Estate  *string `json:"estate"`
	Deleted *bool   `json:"deleted"`
}

type Claims struct {
	UserID     int
	UserName   string
	UserPhone  string
	UserActive bool
	UserRoleID int
	jwt.RegisteredClaims
}
