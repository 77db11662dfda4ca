package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountStatus(t *testing.T) {
	t.Run("string names", func(t *testing.T) {
		assert.Equal(t, "OPEN", AccountStatusOpen.String())
		assert.Equal(t, "PAID", AccountStatusPaid.String())
		assert.Equal(t, "OVERDUE", AccountStatusOverdue.String())
	})

	t.Run("json round trip", func(t *testing.T) {
		data, err := json.Marshal(AccountStatusOverdue)
		require.NoError(t, err)
		assert.Equal(t, `"OVERDUE"`, string(data))

		var s AccountStatus
		require.NoError(t, json.Unmarshal(data, &s))
		assert.Equal(t, AccountStatusOverdue, s)
	})

	t.Run("accepts numeric json", func(t *testing.T) {
		var s AccountStatus
		require.NoError(t, json.Unmarshal([]byte("1"), &s))
		assert.Equal(t, AccountStatusPaid, s)
	})

	t.Run("sql value and scan", func(t *testing.T) {
		v, err := AccountStatusPaid.Value()
		require.NoError(t, err)
		assert.Equal(t, int64(1), v)

		var s AccountStatus
		require.NoError(t, s.Scan(int64(2)))
		assert.Equal(t, AccountStatusOverdue, s)
	})
}

func TestAuditAction(t *testing.T) {
	t.Run("string names", func(t *testing.T) {
		assert.Equal(t, "account_created", AuditActionAccountCreated.String())
		assert.Equal(t, "payment_recorded", AuditActionPaymentRecorded.String())
		assert.Equal(t, "logout", AuditActionLogout.String())
	})

	t.Run("out of range falls back to other", func(t *testing.T) {
		assert.Equal(t, "other", AuditAction(99).String())
		assert.Equal(t, "other", AuditAction(-1).String())
	})

	t.Run("json round trip", func(t *testing.T) {
		data, err := json.Marshal(AuditActionAccountRestored)
		require.NoError(t, err)
		assert.Equal(t, `"account_restored"`, string(data))

		var a AuditAction
		require.NoError(t, json.Unmarshal(data, &a))
		assert.Equal(t, AuditActionAccountRestored, a)
	})

	t.Run("unknown name becomes other", func(t *testing.T) {
		var a AuditAction
		require.NoError(t, json.Unmarshal([]byte(`"reboot"`), &a))
		assert.Equal(t, AuditActionOther, a)
	})

	t.Run("sql value and scan", func(t *testing.T) {
		v, err := AuditActionLogin.Value()
		require.NoError(t, err)
		assert.Equal(t, int64(AuditActionLogin), v)

		var a AuditAction
		require.NoError(t, a.Scan(int64(AuditActionAccountDeleted)))
		assert.Equal(t, AuditActionAccountDeleted, a)
	})
}
