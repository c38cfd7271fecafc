package demo

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/roommates-project/roommates/internal/console"
	"github.com/roommates-project/roommates/internal/database/models"
	"github.com/roommates-project/roommates/internal/dberr"
)

type fakeStore struct {
	rooms     map[int64]models.Room
	roommates map[int64]models.Roommate
	nextID    int64

	failDelete error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rooms: map[int64]models.Room{
			1: {ID: 1, Name: "Living Room", MaxOccupancy: 4},
		},
		roommates: map[int64]models.Roommate{
			1: {ID: 1, FirstName: "Jenna", LastName: "Solis", RentPortion: 20, RoomID: 1},
		},
		nextID: 100,
	}
}

type fakeRooms struct{ *fakeStore }

func (f fakeRooms) GetAll(context.Context) ([]models.Room, error) {
	rooms := make([]models.Room, 0, len(f.rooms))
	for _, r := range f.rooms {
		rooms = append(rooms, r)
	}
	return rooms, nil
}

func (f fakeRooms) GetByID(_ context.Context, id int64) (models.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return r, dberr.ErrNotFound
	}
	return r, nil
}

func (f fakeRooms) Insert(_ context.Context, room *models.Room) (int64, error) {
	f.nextID++
	room.ID = f.nextID
	f.rooms[room.ID] = *room
	return room.ID, nil
}

func (f fakeRooms) Update(_ context.Context, room *models.Room) error {
	if _, ok := f.rooms[room.ID]; !ok {
		return dberr.ErrNotFound
	}
	f.rooms[room.ID] = *room
	return nil
}

func (f fakeRooms) Delete(_ context.Context, id int64) error {
	if f.failDelete != nil {
		return f.failDelete
	}
	if _, ok := f.rooms[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(f.rooms, id)
	return nil
}

type fakeRoommates struct{ *fakeStore }

func (f fakeRoommates) GetAll(context.Context) ([]models.Roommate, error) {
	roommates := make([]models.Roommate, 0, len(f.roommates))
	for _, r := range f.roommates {
		roommates = append(roommates, r)
	}
	return roommates, nil
}

func (f fakeRoommates) GetByIDWithRoom(_ context.Context, id int64) (models.Roommate, error) {
	r, ok := f.roommates[id]
	if !ok {
		return r, dberr.ErrNotFound
	}
	room := f.rooms[r.RoomID]
	r.Room = &room
	return r, nil
}

func (f fakeRoommates) Insert(_ context.Context, roommate *models.Roommate) (int64, error) {
	if _, ok := f.rooms[roommate.RoomID]; !ok {
		return 0, dberr.ErrForeignKeyViolation
	}
	f.nextID++
	roommate.ID = f.nextID
	f.roommates[roommate.ID] = *roommate
	return roommate.ID, nil
}

var fixedNow = time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC)

func depsFor(store *fakeStore, deleteID int64) Deps {
	return Deps{
		Rooms:     fakeRooms{store},
		Roommates: fakeRoommates{store},
		LookupID:  1,
		DeleteID:  deleteID,
		Now:       func() time.Time { return fixedNow },
	}
}

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(restore)

	return logs
}

func TestRun_FullSequence(t *testing.T) {
	logs := observe(t)
	store := newFakeStore()
	var out bytes.Buffer

	err := Run(context.Background(), depsFor(store, 1), strings.NewReader("Jimmy\nJackson\n100\n"), &out)

	require.NoError(t, err)

	// bathroom is 101, jimmy is 102
	jimmy, ok := store.roommates[102]
	require.True(t, ok)
	assert.Equal(t, "Jimmy", jimmy.FirstName)
	assert.Equal(t, "Jackson", jimmy.LastName)
	assert.Equal(t, 100, jimmy.RentPortion)
	assert.Equal(t, int64(101), jimmy.RoomID)
	assert.Equal(t, fixedNow, jimmy.MoveInDate)

	assert.Equal(t, models.Room{ID: 101, Name: "Bathroom2", MaxOccupancy: 2}, store.rooms[101])
	_, stillThere := store.rooms[1]
	assert.False(t, stillThere)

	text := out.String()
	assert.Contains(t, text, "Getting All Rooms:\n\n1 Living Room 4\n")
	assert.Contains(t, text, "Getting All Roommates:\n\n1 Jenna Solis 20\n")
	assert.Contains(t, text, console.Separator+"\nGetting Room with Id 1\n1 Living Room 4\n")
	assert.Contains(t, text, "  lives in Living Room\n")
	assert.Contains(t, text, "Added the new Room with id 101\n")
	assert.Contains(t, text, "Added the new Roommate with id 102\n")
	assert.Contains(t, text, "Updated Room with id 101\n101 Bathroom2 2\n")
	assert.Contains(t, text, "Deleted Room with id 1\n")

	assert.Equal(t, 2, logs.FilterMessage("fetched room").Len()+logs.FilterMessage("fetched roommate").Len())
	for _, entry := range logs.All() {
		assert.NotEmpty(t, entry.ContextMap()["run_id"])
	}
}

func TestRun_DeleteOfMissingRoomIsReported(t *testing.T) {
	logs := observe(t)
	var out bytes.Buffer

	err := Run(context.Background(), depsFor(newFakeStore(), 10), strings.NewReader("Jimmy\nJackson\n100\n"), &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "No Room with id 10 to delete\n")
	assert.Equal(t, 1, logs.FilterMessage("delete matched no room").Len())
}

func TestRun_DeleteFailureAborts(t *testing.T) {
	observe(t)
	store := newFakeStore()
	store.failDelete = dberr.ErrForeignKeyViolation

	err := Run(context.Background(), depsFor(store, 1), strings.NewReader("Jimmy\nJackson\n100\n"), &bytes.Buffer{})

	assert.ErrorIs(t, err, dberr.ErrConstraintViolation)
}

func TestRun_MissingLookupAborts(t *testing.T) {
	observe(t)
	store := newFakeStore()
	deps := depsFor(store, 10)
	deps.LookupID = 5

	err := Run(context.Background(), deps, strings.NewReader(""), &bytes.Buffer{})

	assert.ErrorIs(t, err, dberr.ErrNotFound)
	assert.Len(t, store.rooms, 1)
}

func TestRun_BadRentPortionStopsBeforeInsert(t *testing.T) {
	observe(t)
	store := newFakeStore()

	err := Run(context.Background(), depsFor(store, 10), strings.NewReader("Jimmy\nJackson\nlots\n"), &bytes.Buffer{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, console.ErrInvalidInput))
	assert.Len(t, store.roommates, 1)
	assert.Equal(t, "Bathroom", store.rooms[101].Name)
}
