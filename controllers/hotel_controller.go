package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"spothotel-backend/services"
	"spothotel-backend/utils"
)

type HotelController struct {
	Hotels *services.HotelService
}

func NewHotelController(hotels *services.HotelService) *HotelController {
	return &HotelController{Hotels: hotels}
}

func (ctrl *HotelController) CreateHotel(c *gin.Context) {
	var payload services.HotelInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "name, location and description are required")
		return
	}

	hotel, err := ctrl.Hotels.Create(c.Request.Context(), payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, hotel)
}

func (ctrl *HotelController) UpdateHotel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload services.HotelInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "name, location and description are required")
		return
	}

	hotel, err := ctrl.Hotels.Update(c.Request.Context(), id, payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

func (ctrl *HotelController) DeleteHotel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	hotel, err := ctrl.Hotels.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	services.RemovePictures(services.DecodePictures(hotel.Pictures))
	utils.JSONMessage(c, http.StatusOK, "hotel deleted successfully")
}

func (ctrl *HotelController) GetHotel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	hotel, err := ctrl.Hotels.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

// SearchHotels handles the public listing with optional filters:
// ?location=..&room=N&person=N&d1=YYYY-MM-DD&d2=YYYY-MM-DD
func (ctrl *HotelController) SearchHotels(c *gin.Context) {
	in := services.SearchInput{
		Location: c.Query("location"),
	}

	if raw := strings.TrimSpace(c.Query("room")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			utils.JSONError(c, http.StatusBadRequest, "at least one room required")
			return
		}
		in.MinRooms = n
	}

	if raw := strings.TrimSpace(c.Query("person")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			utils.JSONError(c, http.StatusBadRequest, "at least one person required")
			return
		}
		in.Persons = n
	}

	in.From = c.Query("d1")
	in.To = c.Query("d2")

	hotels, err := ctrl.Hotels.Search(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

type uploadPicturesPayload struct {
	Pictures []string `json:"pictures"`
}

func (ctrl *HotelController) UploadHotelPictures(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload uploadPicturesPayload
	if err := c.ShouldBindJSON(&payload); err != nil || len(payload.Pictures) < 1 {
		utils.JSONError(c, http.StatusBadRequest, "please upload hotel pictures")
		return
	}

	pics, err := services.SavePictures(payload.Pictures, "hotels")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "could not store pictures")
		return
	}

	previous, hotel, err := ctrl.Hotels.ReplacePictures(c.Request.Context(), id, pics)
	if err != nil {
		services.RemovePictures(pics)
		respondServiceError(c, err)
		return
	}

	services.RemovePictures(previous)
	utils.JSONSuccess(c, http.StatusOK, hotel)
}
