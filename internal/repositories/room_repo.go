package repositories

import (
	"context"
	"fmt"

	"renti/internal/models"
)

type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	GetByID(ctx context.Context, id int) (*models.Room, error)
	GetByNumber(ctx context.Context, number string) (*models.Room, error)
	Update(ctx context.Context, room *models.Room) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]*models.Room, error)
	Load(seed []models.Room)
	Revision() uint64
}

type roomRepo struct {
	rooms *collection[models.Room]
}

func NewRoomRepository(seed []models.Room) RoomRepository {
	r := &roomRepo{
		rooms: newCollection(
			func(room *models.Room) int { return room.ID },
			func(room *models.Room, id int) { room.ID = id },
		),
	}
	r.rooms.load(seed)
	return r
}

func (r *roomRepo) Create(ctx context.Context, room *models.Room) error {
	r.rooms.insert(room)
	return nil
}

func (r *roomRepo) GetByID(ctx context.Context, id int) (*models.Room, error) {
	room, ok := r.rooms.get(id)
	if !ok {
		return nil, fmt.Errorf("room %d: %w", id, ErrNotFound)
	}
	return room, nil
}

func (r *roomRepo) GetByNumber(ctx context.Context, number string) (*models.Room, error) {
	room, ok := r.rooms.find(func(room *models.Room) bool { return room.Number == number })
	if !ok {
		return nil, fmt.Errorf("room %q: %w", number, ErrNotFound)
	}
	return room, nil
}

func (r *roomRepo) Update(ctx context.Context, room *models.Room) error {
	if !r.rooms.replace(room) {
		return fmt.Errorf("room %d: %w", room.ID, ErrNotFound)
	}
	return nil
}

func (r *roomRepo) Delete(ctx context.Context, id int) error {
	if !r.rooms.remove(id) {
		return fmt.Errorf("room %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *roomRepo) List(ctx context.Context) ([]*models.Room, error) {
	return r.rooms.list(), nil
}

func (r *roomRepo) Load(seed []models.Room) {
	r.rooms.load(seed)
}

func (r *roomRepo) Revision() uint64 {
	return r.rooms.rev()
}
