package audit

import "context"

// Repository defines persistence for the audit log. The core never reads
// entries back; the log is pure append.
type Repository interface {
	Append(ctx context.Context, entry *Entry) error
}
