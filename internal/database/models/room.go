package models

import "github.com/uptrace/bun"

type Room struct {
	bun.BaseModel `bun:"table:room,alias:room"`

	ID           int64 `bun:",pk,autoincrement"`
	Name         string
	MaxOccupancy int
}
