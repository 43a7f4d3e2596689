package staff

import (
	"errors"
	"time"
)

var (
	ErrNotFound  = errors.New("employee not found")
	ErrForbidden = errors.New("manager capability required")
)

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleManager
}

type Employee struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"id"`
	Username  string    `gorm:"size:64;uniqueIndex:ux_employees_username" json:"username"`
	FullName  string    `gorm:"size:128;column:full_name" json:"full_name"`
	Role      Role      `gorm:"type:enum('employee','manager');default:'employee'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Employee) TableName() string { return "employees" }

// Identity is the authenticated caller, resolved by the HTTP layer and passed
// explicitly into every workflow call. Workflows never read ambient state.
type Identity struct {
	EmployeeID uint64
	Role       Role
}

func (i Identity) IsManager() bool { return i.Role == RoleManager }
