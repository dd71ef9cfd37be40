// Package policy decides which records a requester may see in listings.
//
// Announcements are the only content type with differentiated read
// visibility. Pages, events and sermons are fully public; contact messages
// never appear on a public route at all (the admin route group gates them).
package policy

import (
	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

// Viewer is the resolved identity of the requester. Role never comes from
// client-supplied claims; middleware fills this from the verified token.
type Viewer struct {
	Authenticated bool
	Admin         bool
}

// AnnouncementFilter returns the listing filter for the given viewer.
// Anonymous visitors only see announcements that are not member-only;
// any authenticated user (member or admin) sees everything.
func AnnouncementFilter(v Viewer) []exp.Expression {
	if v.Authenticated {
		return nil
	}
	return []exp.Expression{goqu.Ex{"announcement.member_only": false}}
}
