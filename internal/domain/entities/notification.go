package entities

// NotificationKind is the severity shown by the notification service.
type NotificationKind string

const (
	NotificationKindInfo    NotificationKind = "INFO"
	NotificationKindSuccess NotificationKind = "SUCCESS"
	NotificationKindWarning NotificationKind = "WARNING"
	NotificationKindError   NotificationKind = "ERROR"
)

// Reference types tell the notification service which entity ReferenceID points at.
const (
	ReferenceTypeProject = "PROJECT"
	ReferenceTypeService = "SERVICE"
)

// Notification is the payload sent to the notification service.
type Notification struct {
	UserID        string           `json:"userId"`
	Kind          NotificationKind `json:"type"`
	Title         string           `json:"title"`
	Message       string           `json:"message"`
	ReferenceID   string           `json:"referenceId"`
	ReferenceType string           `json:"referenceType"`
}
