package constant

import (
	"time"
)

const (
	ContextGuest = "guest"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyTokenID   contextKey = "token_id"
)

// Role ids are seeded by the roles migration and must stay in sync with it.
const (
	RoleIDSuperAdmin            = 1
	RoleIDTravelAdmin           = 2
	RoleIDTravelTeamMember      = 3
	RoleIDAccommodationSupplier = 4
	RoleIDRequester             = 5
	RoleIDManager               = 6
)

const (
	RoleSuperAdmin            = "super_admin"
	RoleTravelAdmin           = "travel_admin"
	RoleTravelTeamMember      = "travel_team_member"
	RoleAccommodationSupplier = "accommodation_supplier"
	RoleRequester             = "requester"
	RoleManager               = "manager"
)

var RoleNames = map[int]string{
	RoleIDSuperAdmin:            RoleSuperAdmin,
	RoleIDTravelAdmin:           RoleTravelAdmin,
	RoleIDTravelTeamMember:      RoleTravelTeamMember,
	RoleIDAccommodationSupplier: RoleAccommodationSupplier,
	RoleIDRequester:             RoleRequester,
	RoleIDManager:               RoleManager,
}

const (
	SignupTypeLocal = "local"
)

// Trip request status ids, seeded by migration.
const (
	StatusIDPending  = 1
	StatusIDApproved = 2
	StatusIDRejected = 3
)

const (
	EventApproveRejectNotification = "approve_reject_notification"
	EventEditTripNotification      = "edit_trip_notification"
	EventPostCommentNotification   = "post_comment_notification"
	EventTripRequestNotification   = "trip_request_notification"
	EventBookingNotification       = "booking_notification"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
	RequestParamToken   = "token"
)

const (
	RequestParamID            = "id"
	RequestParamTripRequestID = "tripRequestId"
	RequestMaxMemory          = 10 << 20 // 10 MB
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
	PqErrorCodeExclusion       = "23P01"
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = time.DateOnly
)

const (
	MinutesToSeconds = 60
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
	OtelKafkaScopeName    = "kafka"
	OtelRealtimeScopeName = "realtime"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderAPIKey             = "X-API-Key"
)

const (
	ContentTypeJSON              = "application/json"
	ContentTypeFormURLEncoded    = "application/x-www-form-urlencoded"
	ContentTypeMultipartFormData = "multipart/form-data"
	FormFile                     = "file"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseNoNewNotification         = "no new notification"
	ResponseUnknownLineManager        = "Unknown line manager"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
