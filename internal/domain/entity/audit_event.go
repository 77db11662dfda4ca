package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fiadopro/fiado-api/internal/domain/enum"
	"github.com/google/uuid"
)

// Maximum stored lengths for request metadata. Longer values are truncated,
// never rejected, so oversized inputs cannot make audit recording fail.
const (
	AuditPathMaxLen      = 255
	AuditMethodMaxLen    = 10
	AuditUserAgentMaxLen = 512
)

// JSONMap is a JSONB-backed map column for structured audit payloads
type JSONMap map[string]interface{}

// Value implements driver.Valuer
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("audit: cannot scan %T into JSONMap", value)
	}
}

// AuditEvent is one immutable entry in the append-only audit trail. Events
// are never updated or deleted. The primary key is a bigserial so that
// events created in the same instant keep their insertion order.
type AuditEvent struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	ActorID     *uuid.UUID       `gorm:"type:uuid;index" json:"actor_id,omitempty"`
	Action      enum.AuditAction `gorm:"default:0;index" json:"action"`
	Description string           `gorm:"type:text;not null" json:"description"`
	Path        string           `gorm:"size:255" json:"path,omitempty"`
	Method      string           `gorm:"size:10" json:"method,omitempty"`
	IP          string           `gorm:"size:45" json:"ip,omitempty"`
	UserAgent   string           `gorm:"size:512" json:"user_agent,omitempty"`
	Extra       JSONMap          `gorm:"type:jsonb" json:"extra,omitempty"`
	CreatedAt   time.Time        `gorm:"index" json:"created_at"`

	Actor *User `gorm:"foreignKey:ActorID" json:"-"`
}

// TableName returns the table name for the AuditEvent model
func (AuditEvent) TableName() string {
	return "audit_events"
}

// RequestContext carries the request metadata an audit event captures.
// It is passed explicitly into the recorder; nothing is read from ambient
// globals.
type RequestContext struct {
	Path      string
	Method    string
	IP        string
	UserAgent string
	Extra     JSONMap
}

// Truncate bounds the metadata fields to their stored lengths
func (rc RequestContext) Truncate() RequestContext {
	rc.Path = truncate(rc.Path, AuditPathMaxLen)
	rc.Method = truncate(rc.Method, AuditMethodMaxLen)
	rc.UserAgent = truncate(rc.UserAgent, AuditUserAgentMaxLen)
	return rc
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
