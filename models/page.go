package models

import "time"

type Page struct {
	Page_ID         int       `json:"pageId" goqu:"skipinsert"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	Updated_By      int       `json:"-"`
	Editor          UserRef   `json:"lastUpdatedBy" goqu:"skipinsert,skipupdate"`
	Datetime_Create time.Time `json:"datetimeCreate" goqu:"skipinsert"`
	Datetime_Update time.Time `json:"datetimeUpdate" goqu:"skipinsert"`
}

type PageWrite struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
