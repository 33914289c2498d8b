package entities

import (
	"time"

	"ivms/internal/db"
)

type VisitorRequest struct {
	Name         string `json:"name" validate:"required"`
	Address      string `json:"address" validate:"required"`
	Designation  string `json:"designation" validate:"required"`
	Phone        string `json:"phone" validate:"required,len=10,numeric"`
	Email        string `json:"email" validate:"required,email"`
	PersonToMeet string `json:"personToMeet" validate:"required"`
	Purpose      string `json:"purpose" validate:"required"`
	Photo        string `json:"photo" validate:"required"`
	Pincode      string `json:"pincode" validate:"required,len=6,numeric"`
	Device       string `json:"device" validate:"required"`
}

type VisitorResponse struct {
	ID           string    `json:"id"`
	SlNumber     int64     `json:"slNumber"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Designation  string    `json:"designation"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	PersonToMeet string    `json:"personToMeet"`
	Purpose      string    `json:"purpose"`
	Photo        string    `json:"photo"`
	Pincode      string    `json:"pincode"`
	Device       string    `json:"device"`
	DateTime     time.Time `json:"dateTime"`
}

func VisitorResponseFrom(v *db.Visitor) VisitorResponse {
	return VisitorResponse{
		ID:           v.ID,
		SlNumber:     v.Serial,
		Name:         v.Name,
		Address:      v.Address,
		Designation:  v.Designation,
		Phone:        v.Phone,
		Email:        v.Email,
		PersonToMeet: v.PersonToMeet,
		Purpose:      v.Purpose,
		Photo:        v.Photo,
		Pincode:      v.Pincode,
		Device:       v.Device,
		DateTime:     v.CreatedAt,
	}
}
