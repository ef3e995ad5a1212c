// Package constants defines application-wide constant values.
package constants

// Environment names
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Database table names
const (
	TableBenefits   = "beneficios"
	TablePeriods    = "periodos"
	TableWorkers    = "trabajadores"
	TableDeliveries = "entregas"
	TableAuditLog   = "auditoria"
)

// Pagination
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 200
)

// Audit actions
const (
	AuditActionSignature = "FIRMA"
)

// MaxAuditDetailLength is the maximum length of an audit entry detail.
// Longer payloads (e.g. signature images) are truncated before storage.
const MaxAuditDetailLength = 2000

// Date layout used on the wire for plain dates.
const DateLayout = "2006-01-02"
