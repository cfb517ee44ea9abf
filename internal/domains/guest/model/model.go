package model

import "database/sql"

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID       = "guest_id"
	FieldFullName = "full_name"
	FieldPhone    = "phone"
	FieldEmail    = "email"
)

type Guest struct {
	ID          int64          `db:"guest_id"    insert:"-"`
	FullName    string         `db:"full_name"`
	Phone       sql.NullString `db:"phone"`
	Email       sql.NullString `db:"email"`
	Address     sql.NullString `db:"address"`
	Nationality sql.NullString `db:"nationality"`
}
