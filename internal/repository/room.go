package repository

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/roommates-project/roommates/internal/database"
	"github.com/roommates-project/roommates/internal/database/models"
	"github.com/roommates-project/roommates/internal/dberr"
)

func NewRoomRepository(connector database.Connector) *RoomRepository {
	return &RoomRepository{
		baseRepository: baseRepository{
			connector: connector,
		},
	}
}

type RoomRepository struct {
	baseRepository
}

func (r *RoomRepository) GetAll(ctx context.Context) (rooms []models.Room, err error) {
	rooms = make([]models.Room, 0)

	err = r.withConn(ctx, func(conn bun.Conn) error {
		return conn.NewSelect().
			Model(&rooms).
			Scan(ctx)
	})
	err = dberr.Wrap("list rooms", err)
	return
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (room models.Room, err error) {
	err = r.withConn(ctx, func(conn bun.Conn) error {
		return conn.NewSelect().
			Model(&room).
			Where("?TableAlias.id = ?", id).
			Scan(ctx)
	})
	err = dberr.Wrap("get room", err)
	return
}

// Insert stores room and sets room.ID to the generated identifier.
func (r *RoomRepository) Insert(ctx context.Context, room *models.Room) (id int64, err error) {
	err = r.withConn(ctx, func(conn bun.Conn) (err error) {
		_, err = conn.NewInsert().
			Model(room).
			Exec(ctx)
		return
	})
	if err = dberr.Wrap("insert room", err); err != nil {
		return
	}

	id = room.ID
	return
}

func (r *RoomRepository) Update(ctx context.Context, room *models.Room) error {
	err := r.withConn(ctx, func(conn bun.Conn) error {
		res, err := conn.NewUpdate().
			Model(room).
			Column("name", "max_occupancy").
			WherePK().
			Exec(ctx)
		if err != nil {
			return err
		}
		return dberr.CheckAffected(res)
	})
	return dberr.Wrap("update room", err)
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	err := r.withConn(ctx, func(conn bun.Conn) error {
		res, err := conn.NewDelete().
			Model((*models.Room)(nil)).
			Where("?TableAlias.id = ?", id).
			Exec(ctx)
		if err != nil {
			return err
		}
		return dberr.CheckAffected(res)
	})
	return dberr.Wrap("delete room", err)
}
