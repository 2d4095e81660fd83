// Package constants holds literals shared across layers.
package constants

const (
	// UnknownLabel is the display fallback for missing names and localities ("unknown").
	UnknownLabel = "نامشخص"

	// AddressUnavailable is the sentinel stored when no address could be resolved.
	AddressUnavailable = "آدرس در دسترس نیست"

	// DefaultCity is used when neither the request nor geocoding yields a city.
	DefaultCity = "تهران"

	// PersianComma separates address segments.
	PersianComma = "،"
)

// Assignment statuses.
const (
	AssignmentStatusPending   = "pending"
	AssignmentStatusCompleted = "completed"
)

// Deactivation request statuses and review actions.
const (
	DeactivationStatusPending  = "pending"
	DeactivationStatusApproved = "approved"
	DeactivationStatusRejected = "rejected"

	ReviewActionApprove = "approve"
	ReviewActionReject  = "reject"
)

// Event types published to the notification worker.
const (
	EventAssignmentCreated = "assignment.created"
	EventVisitCompleted    = "visit.completed"
)

// Upload kinds accepted by the upload endpoint.
const (
	UploadKindComments = "comments"
	UploadKindVisits   = "visits"
	UploadKindStores   = "stores"
)

// Event publisher providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
