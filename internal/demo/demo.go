// Package demo runs the fixed walkthrough over both repositories.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roommates-project/roommates/internal/cctx"
	"github.com/roommates-project/roommates/internal/console"
	"github.com/roommates-project/roommates/internal/database/models"
	"github.com/roommates-project/roommates/internal/dberr"
)

type RoomStore interface {
	GetAll(ctx context.Context) ([]models.Room, error)
	GetByID(ctx context.Context, id int64) (models.Room, error)
	Insert(ctx context.Context, room *models.Room) (int64, error)
	Update(ctx context.Context, room *models.Room) error
	Delete(ctx context.Context, id int64) error
}

type RoommateStore interface {
	GetAll(ctx context.Context) ([]models.Roommate, error)
	GetByIDWithRoom(ctx context.Context, id int64) (models.Roommate, error)
	Insert(ctx context.Context, roommate *models.Roommate) (int64, error)
}

type Deps struct {
	Rooms     RoomStore
	Roommates RoommateStore

	LookupID int64
	DeleteID int64

	// Defaults to time.Now.
	Now func() time.Time
}

func Run(ctx context.Context, deps Deps, in io.Reader, out io.Writer) (err error) {
	if deps.Now == nil {
		deps.Now = time.Now
	}

	ctx = cctx.WithValues(ctx, cctx.RunID, uuid.New().String())
	log := cctx.Logger(ctx)
	c := console.New(in, out)

	c.Println("Getting All Rooms:")
	c.Println()
	var rooms []models.Room
	if rooms, err = deps.Rooms.GetAll(ctx); err != nil {
		return
	}
	for _, room := range rooms {
		c.Room(room)
	}
	log.Debug("listed rooms", zap.Int("count", len(rooms)))

	c.Println("Getting All Roommates:")
	c.Println()
	var roommates []models.Roommate
	if roommates, err = deps.Roommates.GetAll(ctx); err != nil {
		return
	}
	for _, roommate := range roommates {
		c.Roommate(roommate)
	}
	log.Debug("listed roommates", zap.Int("count", len(roommates)))

	c.Heading(fmt.Sprintf("Getting Room with Id %d", deps.LookupID))
	var room models.Room
	if room, err = deps.Rooms.GetByID(ctx, deps.LookupID); err != nil {
		return
	}
	c.Room(room)
	dump(log, "room", room)

	c.Heading(fmt.Sprintf("Getting Roommate with Id %d", deps.LookupID))
	var roommate models.Roommate
	if roommate, err = deps.Roommates.GetByIDWithRoom(ctx, deps.LookupID); err != nil {
		return
	}
	c.Roommate(roommate)
	dump(log, "roommate", roommate)

	bathroom := models.Room{Name: "Bathroom", MaxOccupancy: 1}
	if _, err = deps.Rooms.Insert(ctx, &bathroom); err != nil {
		return
	}
	c.Heading(fmt.Sprintf("Added the new Room with id %d", bathroom.ID))
	log.Info("inserted room", zap.Int64("room_id", bathroom.ID))

	c.Heading("Enter the new roommate")
	var newcomer models.Roommate
	if newcomer, err = c.PromptRoommate(); err != nil {
		return
	}
	newcomer.MoveInDate = deps.Now()
	newcomer.RoomID = bathroom.ID
	if _, err = deps.Roommates.Insert(ctx, &newcomer); err != nil {
		return
	}
	c.Heading(fmt.Sprintf("Added the new Roommate with id %d", newcomer.ID))
	log.Info("inserted roommate", zap.Int64("roommate_id", newcomer.ID), zap.Int64("room_id", newcomer.RoomID))

	bathroom.Name = "Bathroom2"
	bathroom.MaxOccupancy = 2
	if err = deps.Rooms.Update(ctx, &bathroom); err != nil {
		return
	}
	c.Heading(fmt.Sprintf("Updated Room with id %d", bathroom.ID))
	c.Room(bathroom)

	err = deps.Rooms.Delete(ctx, deps.DeleteID)
	switch {
	case errors.Is(err, dberr.ErrNotFound):
		c.Heading(fmt.Sprintf("No Room with id %d to delete", deps.DeleteID))
		log.Warn("delete matched no room", zap.Int64("room_id", deps.DeleteID))
		err = nil
	case err != nil:
		return
	default:
		c.Heading(fmt.Sprintf("Deleted Room with id %d", deps.DeleteID))
	}

	return
}

func dump(log *zap.Logger, what string, v interface{}) {
	if ce := log.Check(zap.DebugLevel, "fetched "+what); ce != nil {
		ce.Write(zap.String("dump", spew.Sdump(v)))
	}
}
