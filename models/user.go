package models

import "time"

type User struct {
	User_ID         int       `json:"userId" goqu:"skipinsert"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Password        string    `json:"-"`
	Admin           bool      `json:"admin"`
	Datetime_Create time.Time `json:"datetimeCreate" goqu:"skipinsert"`
	Datetime_Update time.Time `json:"datetimeUpdate" goqu:"skipinsert"`
}

// UserRef is the display-safe projection of a user attached to content
// records. Nothing else from the user row ever leaves the API.
type UserRef struct {
	User_ID int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
