package model

import "database/sql"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID       = "user_id"
	FieldUsername = "username"
	FieldRole     = "role"
)

// User is a staff account. Accounts are provisioned directly in the database.
type User struct {
	ID       int64          `db:"user_id"  insert:"-"`
	Username string         `db:"username"`
	Email    sql.NullString `db:"email"`
	Password string         `db:"password"`
	Role     string         `db:"role"`
}
