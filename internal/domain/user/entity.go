package user

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleWorker Role = "worker"
)

type User struct {
	ID             string
	CompanyID      string
	Email          string
	PasswordHash   string
	FullName       string
	Role           Role
	TeamScheduleID *string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
