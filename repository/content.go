package repository

import (
	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/ChurchSite/models"
)

// Announcements lists newest first.
var Announcements = Store[models.Announcement]{
	Table:    "announcement",
	IDColumn: "announcement_id",
	Creator:  &CreatorJoin{Column: "created_by", Alias: "creator"},
	Ordering: []exp.OrderedExpression{goqu.I("announcement.datetime_create").Desc()},
}

// Events lists soonest first.
var Events = Store[models.Event]{
	Table:    "event",
	IDColumn: "event_id",
	Creator:  &CreatorJoin{Column: "created_by", Alias: "creator"},
	Ordering: []exp.OrderedExpression{goqu.I("event.event_date").Asc()},
}

// Sermons lists newest sermon date first.
var Sermons = Store[models.Sermon]{
	Table:    "sermon",
	IDColumn: "sermon_id",
	Creator:  &CreatorJoin{Column: "created_by", Alias: "creator"},
	Ordering: []exp.OrderedExpression{goqu.I("sermon.sermon_date").Desc()},
}

// Contacts carry no attribution join; submissions are anonymous.
var Contacts = Store[models.Contact]{
	Table:    "contact",
	IDColumn: "contact_id",
	Ordering: []exp.OrderedExpression{goqu.I("contact.datetime_create").Desc()},
}

var Pages = PageStore{
	Store: Store[models.Page]{
		Table:    "page",
		IDColumn: "page_id",
		Creator:  &CreatorJoin{Column: "updated_by", Alias: "editor"},
		Ordering: []exp.OrderedExpression{goqu.I("page.slug").Asc()},
	},
}
