package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Roommate struct {
	bun.BaseModel `bun:"table:roommate,alias:roommate"`

	ID          int64 `bun:",pk,autoincrement"`
	FirstName   string
	LastName    string
	RentPortion int
	MoveInDate  time.Time
	RoomID      int64

	// Only populated by lookups that join the room.
	Room *Room `bun:"rel:belongs-to,join:room_id=id"`
}
