// Package audit holds the append-only log of sensitive actions. Entries
// reference their owning record weakly, by table name and row key; they are
// never updated or deleted.
package audit

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"entregas/internal/shared/constants"
)

// ErrReferenceRequired is returned when the table/row/action triple is incomplete
var ErrReferenceRequired = errors.New("table name, row key and action are required")

// Entry is an immutable record of a sensitive action.
type Entry struct {
	id        uint
	tableName string
	rowKey    string
	action    string
	actorName *string
	detail    *string
	createdAt time.Time
}

// NewEntry creates an audit entry. Detail is truncated to the storage
// maximum before it is persisted.
func NewEntry(tableName, rowKey, action string, actorName, detail *string) (*Entry, error) {
	tableName = strings.TrimSpace(tableName)
	rowKey = strings.TrimSpace(rowKey)
	action = strings.TrimSpace(action)
	if tableName == "" || rowKey == "" || action == "" {
		return nil, ErrReferenceRequired
	}

	if detail != nil && len(*detail) > constants.MaxAuditDetailLength {
		truncated := truncateOnRuneBoundary(*detail, constants.MaxAuditDetailLength)
		detail = &truncated
	}

	return &Entry{
		tableName: tableName,
		rowKey:    rowKey,
		action:    action,
		actorName: actorName,
		detail:    detail,
		createdAt: time.Now().UTC(),
	}, nil
}

// ReconstructEntry rebuilds an entry from persisted state.
func ReconstructEntry(id uint, tableName, rowKey, action string, actorName, detail *string, createdAt time.Time) *Entry {
	return &Entry{
		id:        id,
		tableName: tableName,
		rowKey:    rowKey,
		action:    action,
		actorName: actorName,
		detail:    detail,
		createdAt: createdAt,
	}
}

func (e *Entry) ID() uint             { return e.id }
func (e *Entry) TableName() string    { return e.tableName }
func (e *Entry) RowKey() string       { return e.rowKey }
func (e *Entry) Action() string       { return e.action }
func (e *Entry) ActorName() *string   { return e.actorName }
func (e *Entry) Detail() *string      { return e.detail }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }

// SetID records the store-assigned id after insert.
func (e *Entry) SetID(id uint) {
	e.id = id
}

// truncateOnRuneBoundary cuts s to at most max bytes without splitting a
// multi-byte UTF-8 rune.
func truncateOnRuneBoundary(s string, max int) string {
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
