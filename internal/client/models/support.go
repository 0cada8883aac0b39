package models

// Ticket statuses.
const (
	TicketOpen       = "OPEN"
	TicketInProgress = "IN_PROGRESS"
	TicketResolved   = "RESOLVED"
	TicketClosed     = "CLOSED"
)

type Ticket struct {
	ID             ID        `json:"id,omitempty"`
	TicketID       string    `json:"ticketId,omitempty"`
	UserID         ID        `json:"userId,omitempty"`
	ReportedByRole string    `json:"reportedByRole,omitempty"`
	Subject        string    `json:"subject"`
	Description    string    `json:"description"`
	IssueType      string    `json:"issueType,omitempty"`
	Priority       string    `json:"priority,omitempty"`
	Status         string    `json:"status,omitempty"`
	CreatedAt      Timestamp `json:"createdAt"`
}

type TicketMessage struct {
	ID         ID        `json:"id,omitempty"`
	SenderID   ID        `json:"senderId,omitempty"`
	SenderRole string    `json:"senderRole,omitempty"`
	Message    string    `json:"message"`
	CreatedAt  Timestamp `json:"createdAt"`
}

type Notification struct {
	ID               ID        `json:"id"`
	Title            string    `json:"title"`
	Message          string    `json:"message"`
	NotificationType string    `json:"notificationType,omitempty"`
	RelatedTicketID  ID        `json:"relatedTicketId,omitempty"`
	Read             bool      `json:"read"`
	CreatedAt        Timestamp `json:"createdAt"`
}

type SupportStats struct {
	TotalTickets      int `json:"totalTickets"`
	OpenTickets       int `json:"openTickets"`
	InProgressTickets int `json:"inProgressTickets"`
	ResolvedTickets   int `json:"resolvedTickets"`
}
