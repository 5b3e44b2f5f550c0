package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"renti/internal/common"
	"renti/internal/models"
	"renti/internal/repositories"
)

type RoomService interface {
	List(ctx context.Context, filter models.RoomFilter) ([]*models.Room, error)
	GetByID(ctx context.Context, id int) (*models.Room, error)
	Create(ctx context.Context, req *RoomRequest) (*models.Room, error)
	Update(ctx context.Context, id int, req *RoomRequest) (*models.Room, error)
	Delete(ctx context.Context, id int) error
	Grid(ctx context.Context) ([]*models.RoomTile, error)
	Tile(ctx context.Context, number string) (*models.RoomTile, error)
}

// RoomRequest is the add/edit room form. Status defaults to Vacant.
type RoomRequest struct {
	Number string            `json:"number"`
	Floor  string            `json:"floor"`
	Tenant string            `json:"tenant"`
	Status models.RoomStatus `json:"status"`
	Rent   int64             `json:"rent"`
}

type roomService struct {
	roomRepo   repositories.RoomRepository
	tenantRepo repositories.TenantRepository
	activity   ActivityService
}

func NewRoomService(roomRepo repositories.RoomRepository, tenantRepo repositories.TenantRepository, activity ActivityService) RoomService {
	return &roomService{
		roomRepo:   roomRepo,
		tenantRepo: tenantRepo,
		activity:   activity,
	}
}

// MatchesRoom applies the rooms tab search and status filter.
func MatchesRoom(room *models.Room, filter models.RoomFilter) bool {
	search := strings.TrimSpace(filter.Search)
	if search != "" && !common.ContainsFold(room.Number, search) && !common.ContainsFold(room.Tenant, search) {
		return false
	}
	if filter.Status != "" && filter.Status != "All" && room.Status != filter.Status {
		return false
	}
	return true
}

func (s *roomService) List(ctx context.Context, filter models.RoomFilter) ([]*models.Room, error) {
	if filter.Status != "" && filter.Status != "All" && !filter.Status.Valid() {
		return nil, common.NewFieldError("status", "must be one of: All, Occupied, Vacant")
	}

	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*models.Room, 0, len(rooms))
	for _, room := range rooms {
		if MatchesRoom(room, filter) {
			result = append(result, room)
		}
	}
	return result, nil
}

func (s *roomService) GetByID(ctx context.Context, id int) (*models.Room, error) {
	return s.roomRepo.GetByID(ctx, id)
}

func (s *roomService) Create(ctx context.Context, req *RoomRequest) (*models.Room, error) {
	room, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}
	s.activity.Record(ctx, models.ActivityRoom, "Room Added", fmt.Sprintf("Room %s added on floor %s", room.Number, room.Floor))
	return room, nil
}

func (s *roomService) Update(ctx context.Context, id int, req *RoomRequest) (*models.Room, error) {
	if _, err := s.roomRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	room, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}
	room.ID = id
	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// Delete removes the room. Tenants still pointing at its number keep it.
func (s *roomService) Delete(ctx context.Context, id int) error {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.roomRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.activity.Record(ctx, models.ActivityRoom, "Room Removed", fmt.Sprintf("Room %s removed", room.Number))
	return nil
}

// Grid lists every room as a tile. Occupied tiles carry the contact card of
// the tenant named on the room, when that tenant exists.
func (s *roomService) Grid(ctx context.Context) ([]*models.RoomTile, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	tiles := make([]*models.RoomTile, 0, len(rooms))
	for _, room := range rooms {
		tile, err := s.tile(ctx, room)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, tile)
	}
	return tiles, nil
}

func (s *roomService) Tile(ctx context.Context, number string) (*models.RoomTile, error) {
	room, err := s.roomRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return s.tile(ctx, room)
}

func (s *roomService) tile(ctx context.Context, room *models.Room) (*models.RoomTile, error) {
	tile := &models.RoomTile{Number: room.Number, Status: room.Status}
	if room.Status != models.RoomStatusOccupied {
		return tile, nil
	}

	tenant, err := s.tenantRepo.GetByName(ctx, room.Tenant)
	if errors.Is(err, repositories.ErrNotFound) {
		return tile, nil
	}
	if err != nil {
		return nil, err
	}
	tile.Tenant = &models.TenantContact{Name: tenant.Name, Email: tenant.Email, Phone: tenant.Phone}
	return tile, nil
}

func (s *roomService) fromRequest(req *RoomRequest) (*models.Room, error) {
	if err := common.ValidateRequiredString(req.Number, "number"); err != nil {
		return nil, err
	}
	if err := common.ValidateRequiredString(req.Floor, "floor"); err != nil {
		return nil, err
	}
	if err := common.ValidatePositiveAmount(req.Rent, "rent", maxRent); err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = models.RoomStatusVacant
	}
	if !status.Valid() {
		return nil, common.NewFieldError("status", "must be one of: Occupied, Vacant")
	}

	tenant := strings.TrimSpace(req.Tenant)
	if status == models.RoomStatusVacant && tenant == "" {
		tenant = models.VacantTenantLabel
	}
	if status == models.RoomStatusOccupied && (tenant == "" || tenant == models.VacantTenantLabel) {
		return nil, common.NewFieldError("tenant", "is required for an occupied room")
	}

	return &models.Room{
		Number: strings.TrimSpace(req.Number),
		Floor:  strings.TrimSpace(req.Floor),
		Tenant: tenant,
		Status: status,
		Rent:   req.Rent,
	}, nil
}
