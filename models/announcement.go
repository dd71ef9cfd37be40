package models

import "time"

type Announcement struct {
	Announcement_ID int       `json:"announcementId" goqu:"skipinsert"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	Member_Only     bool      `json:"memberOnly"`
	Created_By      int       `json:"-"`
	Creator         UserRef   `json:"createdBy" goqu:"skipinsert,skipupdate"`
	Datetime_Create time.Time `json:"datetimeCreate" goqu:"skipinsert"`
	Datetime_Update time.Time `json:"datetimeUpdate" goqu:"skipinsert"`
}

type AnnouncementCreate struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Member_Only *bool  `json:"memberOnly"`
}

type AnnouncementUpdate struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	Member_Only *bool   `json:"memberOnly"`
}
