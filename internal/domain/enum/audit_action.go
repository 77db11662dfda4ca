package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// AuditAction is the closed set of actions recorded in the audit trail
type AuditAction int

const (
	AuditActionOther AuditAction = iota
	AuditActionAccountCreated
	AuditActionAccountDeleted
	AuditActionAccountRestored
	AuditActionAccountReceiptViewed
	AuditActionAccountReceiptPrinted
	AuditActionPaymentRecorded
	AuditActionPaymentReceiptViewed
	AuditActionPaymentReceiptPrinted
	AuditActionLogin
	AuditActionLogout
)

var auditActionNames = [...]string{
	"other",
	"account_created",
	"account_deleted",
	"account_restored",
	"account_receipt_viewed",
	"account_receipt_printed",
	"payment_recorded",
	"payment_receipt_viewed",
	"payment_receipt_printed",
	"login",
	"logout",
}

func (a AuditAction) String() string {
	if a < 0 || int(a) >= len(auditActionNames) {
		return auditActionNames[AuditActionOther]
	}
	return auditActionNames[a]
}

func (a AuditAction) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *AuditAction) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*a = AuditAction(i)
		return nil
	}
	*a = AuditActionOther
	for i, name := range auditActionNames {
		if name == str {
			*a = AuditAction(i)
			break
		}
	}
	return nil
}

func (a AuditAction) Value() (driver.Value, error) {
	return int64(a), nil
}

func (a *AuditAction) Scan(value interface{}) error {
	if value == nil {
		*a = AuditActionOther
		return nil
	}
	switch v := value.(type) {
	case int64:
		*a = AuditAction(v)
	case int:
		*a = AuditAction(v)
	}
	return nil
}
