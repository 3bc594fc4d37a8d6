package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Monkey is an experimental subject.
type Monkey struct {
	bun.BaseModel `bun:"table:monkeys,alias:mk"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	Name      string    `bun:"name,unique,notnull" json:"name"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// Rig is a named experimental setup.
type Rig struct {
	bun.BaseModel `bun:"table:rigs,alias:rg"`

	ID          int64   `bun:"id,pk,autoincrement" json:"id"`
	Name        string  `bun:"name,unique,notnull" json:"name"`
	Description *string `bun:"description" json:"description,omitempty"`
}

// User is a lab member associated with sessions.
type User struct {
	bun.BaseModel `bun:"table:users,alias:us"`

	ID       int64   `bun:"id,pk,autoincrement" json:"id"`
	Username string  `bun:"username,unique,notnull" json:"username"`
	FullName *string `bun:"full_name" json:"full_name,omitempty"`
}
