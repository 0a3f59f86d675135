package sessions

import "time"

// Session scopes one assessment run. The notification email is captured for a
// future report-ready notification and is never required.
type Session struct {
	ID        string
	Email     string
	CreatedAt time.Time
}
