package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"renti/internal/common"
	"renti/internal/models"
	"renti/internal/services"
)

type RoomHandlers struct {
	roomService services.RoomService
}

func NewRoomHandlers(roomService services.RoomService) *RoomHandlers {
	return &RoomHandlers{roomService: roomService}
}

func (h *RoomHandlers) ListRooms(c echo.Context) error {
	var filter models.RoomFilter
	if err := c.Bind(&filter); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}

	rooms, err := h.roomService.List(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, err, "Room")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"rooms": rooms,
		"count": len(rooms),
	})
}

func (h *RoomHandlers) GetRoom(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "Room")
	}
	room, err := h.roomService.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "Room")
	}
	return c.JSON(http.StatusOK, room)
}

func (h *RoomHandlers) CreateRoom(c echo.Context) error {
	var req services.RoomRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	room, err := h.roomService.Create(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err, "Room")
	}
	return c.JSON(http.StatusCreated, room)
}

func (h *RoomHandlers) UpdateRoom(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "Room")
	}
	var req services.RoomRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	room, err := h.roomService.Update(c.Request().Context(), id, &req)
	if err != nil {
		return respondError(c, err, "Room")
	}
	return c.JSON(http.StatusOK, room)
}

func (h *RoomHandlers) DeleteRoom(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "Room")
	}
	if err := h.roomService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err, "Room")
	}
	return c.NoContent(http.StatusNoContent)
}

// RoomGrid returns the floor plan tiles.
func (h *RoomHandlers) RoomGrid(c echo.Context) error {
	tiles, err := h.roomService.Grid(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Room")
	}
	return c.JSON(http.StatusOK, tiles)
}

// RoomTile returns the detail popover for a room number such as "2A".
func (h *RoomHandlers) RoomTile(c echo.Context) error {
	tile, err := h.roomService.Tile(c.Request().Context(), c.Param("number"))
	if err != nil {
		return respondError(c, err, "Room")
	}
	return c.JSON(http.StatusOK, tile)
}
