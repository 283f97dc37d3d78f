package domain

import "time"

type SessionID string
type UserID string
type PostID string

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Page identifies one of the six pages of the application.
type Page string

const (
	PageChat    Page = "chat"
	PageJournal Page = "journal"
	PageForum   Page = "community"
	PageSearch  Page = "search"
	PageFAQ     Page = "faqs"
	PageAbout   Page = "about"
)

// Pages lists every page in navigation order.
var Pages = []Page{PageChat, PageJournal, PageForum, PageSearch, PageFAQ, PageAbout}

// ParsePage maps a navigation selection to a Page. Unknown values fall back to chat.
func ParsePage(s string) Page {
	for _, p := range Pages {
		if string(p) == s {
			return p
		}
	}
	return PageChat
}

type Timestamp = time.Time

// TimestampLayout is the human readable, second precision layout used for
// journal entries and community posts.
const TimestampLayout = "2006-01-02 15:04:05"

// TimestampUnavailable is shown when a stored post carries no usable timestamp.
const TimestampUnavailable = "N/A"

// AnonymousUser is shown when a stored post carries no author.
const AnonymousUser = "Anonymous"
