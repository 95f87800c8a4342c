package constant

const (
	OtelRepositoryScopeName = "repository"
	OtelServiceScopeName    = "service"
	OtelStoreScopeName      = "store"
	OtelQueryAttributeKey   = "db.query"
	OtelTxAttributeKey      = "db.tx_id"
)

const (
	DefaultValueLimit   = 10
	DefaultValuePage    = 1
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"
)

const (
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

const (
	PqErrorCodeUniqueViolation    = "23505"
	PqErrorCodeFkViolation        = "23503"
	PqErrorCodeExclusionViolation = "23P01"
	PqErrorCodeCheckViolation     = "23514"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	DisplayLayout  = "January 02, 2006"
)
