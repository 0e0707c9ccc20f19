package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pos-dashboard/backend/internal/domain/entity"
)

// UserModel represents the users table in the database.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:       m.ID,
		Username: m.Username,
		Name:     m.Name,
	}
}

// EmployeeModel represents the employees table in the database.
type EmployeeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(30)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the EmployeeModel.
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToEntity converts an EmployeeModel to a domain Employee entity.
func (m *EmployeeModel) ToEntity() *entity.Employee {
	return &entity.Employee{
		ID:    m.ID,
		Name:  m.Name,
		Phone: m.Phone,
	}
}
