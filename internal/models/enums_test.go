package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnums_RoundTrip(t *testing.T) {
	t.Run("user roles", func(t *testing.T) {
		for _, r := range UserRoles {
			assertRoundTrip(t, r, new(UserRole))
		}
	})
	t.Run("parcel statuses", func(t *testing.T) {
		for _, s := range ParcelStatuses {
			assertRoundTrip(t, s, new(ParcelStatus))
		}
	})
	t.Run("transfer statuses", func(t *testing.T) {
		for _, s := range TransferStatuses {
			assertRoundTrip(t, s, new(TransferStatus))
		}
	})
	t.Run("document types", func(t *testing.T) {
		for _, d := range DocumentTypes {
			assertRoundTrip(t, d, new(DocumentType))
		}
	})
	t.Run("fraud risk levels", func(t *testing.T) {
		for _, l := range FraudRiskLevels {
			assertRoundTrip(t, l, new(FraudRiskLevel))
		}
	})
}

func assertRoundTrip[E ~string](t *testing.T, v E, dst *E) {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `"`+string(v)+`"`, string(data), "enum must render as its lowercase value")

	require.NoError(t, json.Unmarshal(data, dst))
	assert.Equal(t, v, *dst)
}

func TestEnums_RenderedValues(t *testing.T) {
	assert.Equal(t, "title_deed", DocumentTypeTitleDeed.String())
	assert.Equal(t, "identity_document", DocumentTypeIdentityDocument.String())
	assert.Equal(t, "cancelled", TransferStatusCancelled.String())
	assert.Equal(t, "verifier", UserRoleVerifier.String())
	assert.Equal(t, "critical", FraudRiskCritical.String())
	assert.Equal(t, "disputed", ParcelStatusDisputed.String())
}

func TestEnums_RejectUnknownValues(t *testing.T) {
	var status ParcelStatus
	err := json.Unmarshal([]byte(`"VERIFIED"`), &status)
	assert.Error(t, err, "enum values are case-sensitive")

	var risk FraudRiskLevel
	assert.Error(t, json.Unmarshal([]byte(`"extreme"`), &risk))

	_, err = json.Marshal(TransferStatus("lost"))
	assert.Error(t, err)
}

func TestEnums_Valid(t *testing.T) {
	assert.True(t, ParcelStatusPending.Valid())
	assert.False(t, ParcelStatus("").Valid())
	assert.True(t, DocumentTypeOther.Valid())
	assert.False(t, DocumentType("deed").Valid())
	assert.True(t, UserRoleAdmin.Valid())
	assert.False(t, UserRole("root").Valid())
}
