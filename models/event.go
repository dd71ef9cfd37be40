package models

import "time"

type Event struct {
	Event_ID        int       `json:"eventId" goqu:"skipinsert"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Event_Date      time.Time `json:"date"`
	Location        *string   `json:"location"`
	Created_By      int       `json:"-"`
	Creator         UserRef   `json:"createdBy" goqu:"skipinsert,skipupdate"`
	Datetime_Create time.Time `json:"datetimeCreate" goqu:"skipinsert"`
	Datetime_Update time.Time `json:"datetimeUpdate" goqu:"skipinsert"`
}

type EventCreate struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Location    *string `json:"location"`
}

type EventUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
}
