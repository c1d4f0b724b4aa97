package model

// Role tags a conversation turn as coming from the user or the assistant.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single role-tagged message in a dialogue. ImageData carries the
// base64 payload (or data URI) when the user attached a crop photo.
type Turn struct {
	Role      Role
	Content   string
	ImageData string
}
