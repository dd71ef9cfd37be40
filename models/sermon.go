package models

import "time"

// MediaKinds is the closed set of values accepted for a sermon's fileType.
var MediaKinds = map[string]bool{
	"audio": true,
	"video": true,
}

type Sermon struct {
	Sermon_ID       int       `json:"sermonId" goqu:"skipinsert"`
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	Speaker         string    `json:"speaker"`
	Sermon_Date     time.Time `json:"date"`
	File_Url        string    `json:"fileUrl"`
	File_Type       string    `json:"fileType"`
	Created_By      int       `json:"-"`
	Creator         UserRef   `json:"uploadedBy" goqu:"skipinsert,skipupdate"`
	Datetime_Create time.Time `json:"datetimeCreate" goqu:"skipinsert"`
	Datetime_Update time.Time `json:"datetimeUpdate" goqu:"skipinsert"`
}

// SermonUpdate deliberately includes the immutable columns so a payload that
// tries to touch them can be rejected instead of silently ignored.
type SermonUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Speaker     *string `json:"speaker"`
	Date        *string `json:"date"`
	File_Url    *string `json:"fileUrl"`
	File_Type   *string `json:"fileType"`
}
