package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spothotel-backend/services"
	"spothotel-backend/utils"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload services.RoomInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "number, name, type and pricePerDay are required")
		return
	}

	room, err := ctrl.Rooms.Create(c.Request.Context(), hotelID, payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload services.RoomInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "number, name, type and pricePerDay are required")
		return
	}

	room, err := ctrl.Rooms.Update(c.Request.Context(), id, payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	room, err := ctrl.Rooms.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	services.RemovePictures(services.DecodePictures(room.Pictures))
	utils.JSONMessage(c, http.StatusOK, "room deleted successfully")
}

func (ctrl *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	room, err := ctrl.Rooms.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (ctrl *RoomController) GetHotelRooms(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rooms, err := ctrl.Rooms.ListByHotel(c.Request.Context(), hotelID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (ctrl *RoomController) UploadRoomPictures(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload uploadPicturesPayload
	if err := c.ShouldBindJSON(&payload); err != nil || len(payload.Pictures) < 1 {
		utils.JSONError(c, http.StatusBadRequest, "please upload room pictures")
		return
	}

	pics, err := services.SavePictures(payload.Pictures, "rooms")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "could not store pictures")
		return
	}

	previous, room, err := ctrl.Rooms.ReplacePictures(c.Request.Context(), id, pics)
	if err != nil {
		services.RemovePictures(pics)
		respondServiceError(c, err)
		return
	}

	services.RemovePictures(previous)
	utils.JSONSuccess(c, http.StatusOK, room)
}
