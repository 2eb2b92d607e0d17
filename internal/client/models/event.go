package models

// RegistrationStatus is the lifecycle state of a volunteer registration.
type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "pending"
	RegistrationApproved RegistrationStatus = "approved"
	RegistrationRejected RegistrationStatus = "rejected"
)

// Event is a volunteer opportunity published by an organization.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Date        string `json:"date,omitempty"`
	Capacity    int    `json:"capacity,omitempty"`
	OwnerID     string `json:"ownerId,omitempty"`
}

// Registration is a volunteer's application to an event.
type Registration struct {
	ID       string             `json:"id"`
	EventID  string             `json:"eventId"`
	Name     string             `json:"name"`
	Email    string             `json:"email"`
	Status   RegistrationStatus `json:"status"`
	Message  string             `json:"message,omitempty"`
}
