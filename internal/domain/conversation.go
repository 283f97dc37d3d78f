package domain

// Message is one exchanged chat message. It is never mutated after creation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// JournalEntry is a private reflection saved during the current session only.
type JournalEntry struct {
	Timestamp string `json:"timestamp"`
	Content   string `json:"content"`
}
