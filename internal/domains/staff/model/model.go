package model

import "frontdesk/shared/model"

const (
	TableName  = "staff"
	EntityName = "staff"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFullName  = "full_name"
	FieldRole      = "role"
	FieldActive    = "active"
	FieldLastLogin = "last_login"
)

type Staff struct {
	ID        string  `db:"id"`
	Email     string  `db:"email"`
	Password  string  `db:"password"`
	FullName  string  `db:"full_name"`
	Role      string  `db:"role"`
	Active    bool    `db:"active"`
	LastLogin *string `db:"last_login"`
	model.Metadata
}
