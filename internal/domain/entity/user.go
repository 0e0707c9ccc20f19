package entity

import "github.com/google/uuid"

// User represents a staff account that can be assigned to serve orders.
type User struct {
	ID       uuid.UUID
	Username string
	Name     string
}

// Employee represents an employee record. It is only counted by the dashboard.
type Employee struct {
	ID    uuid.UUID
	Name  string
	Phone string
}
