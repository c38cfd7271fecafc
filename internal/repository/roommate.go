package repository

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/roommates-project/roommates/internal/database"
	"github.com/roommates-project/roommates/internal/database/models"
	"github.com/roommates-project/roommates/internal/dberr"
)

func NewRoommateRepository(connector database.Connector) *RoommateRepository {
	return &RoommateRepository{
		baseRepository: baseRepository{
			connector: connector,
		},
	}
}

type RoommateRepository struct {
	baseRepository
}

func (r *RoommateRepository) GetAll(ctx context.Context) (roommates []models.Roommate, err error) {
	roommates = make([]models.Roommate, 0)

	err = r.withConn(ctx, func(conn bun.Conn) error {
		return conn.NewSelect().
			Model(&roommates).
			Scan(ctx)
	})
	err = dberr.Wrap("list roommates", err)
	return
}

// GetByID returns the roommate with only RoomID set for its room.
func (r *RoommateRepository) GetByID(ctx context.Context, id int64) (roommate models.Roommate, err error) {
	err = r.withConn(ctx, func(conn bun.Conn) error {
		return conn.NewSelect().
			Model(&roommate).
			Where("?TableAlias.id = ?", id).
			Scan(ctx)
	})
	err = dberr.Wrap("get roommate", err)
	return
}

// GetByIDWithRoom is GetByID with the occupied room loaded into Room.
func (r *RoommateRepository) GetByIDWithRoom(ctx context.Context, id int64) (roommate models.Roommate, err error) {
	err = r.withConn(ctx, func(conn bun.Conn) error {
		return conn.NewSelect().
			Model(&roommate).
			Relation("Room").
			Where("?TableAlias.id = ?", id).
			Scan(ctx)
	})
	err = dberr.Wrap("get roommate with room", err)
	return
}

// Insert stores roommate and sets roommate.ID to the generated identifier.
// RoomID must reference an existing room.
func (r *RoommateRepository) Insert(ctx context.Context, roommate *models.Roommate) (id int64, err error) {
	err = r.withConn(ctx, func(conn bun.Conn) (err error) {
		_, err = conn.NewInsert().
			Model(roommate).
			Exec(ctx)
		return
	})
	if err = dberr.Wrap("insert roommate", err); err != nil {
		return
	}

	id = roommate.ID
	return
}

func (r *RoommateRepository) Update(ctx context.Context, roommate *models.Roommate) error {
	err := r.withConn(ctx, func(conn bun.Conn) error {
		res, err := conn.NewUpdate().
			Model(roommate).
			Column("first_name", "last_name", "rent_portion", "move_in_date", "room_id").
			WherePK().
			Exec(ctx)
		if err != nil {
			return err
		}
		return dberr.CheckAffected(res)
	})
	return dberr.Wrap("update roommate", err)
}

func (r *RoommateRepository) Delete(ctx context.Context, id int64) error {
	err := r.withConn(ctx, func(conn bun.Conn) error {
		res, err := conn.NewDelete().
			Model((*models.Roommate)(nil)).
			Where("?TableAlias.id = ?", id).
			Exec(ctx)
		if err != nil {
			return err
		}
		return dberr.CheckAffected(res)
	})
	return dberr.Wrap("delete roommate", err)
}
