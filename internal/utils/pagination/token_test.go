package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	journalDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 3, 10, 9, 15, 30, 123456789, time.UTC)

	token := EncodeToken(journalDate, createdAt)
	assert.NotEmpty(t, token)

	gotDate, gotCreatedAt, err := DecodeToken(token)
	assert.NoError(t, err)
	assert.Equal(t, journalDate, gotDate)
	assert.Equal(t, createdAt, gotCreatedAt)

	// Zero values survive the round trip too.
	zeroToken := EncodeToken(time.Time{}, time.Time{})
	gotDate, gotCreatedAt, err = DecodeToken(zeroToken)
	assert.NoError(t, err)
	assert.True(t, gotDate.IsZero())
	assert.True(t, gotCreatedAt.IsZero())
}

func TestDecodeTokenErrors(t *testing.T) {
	_, _, err := DecodeToken("not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	// Valid base64 but no field separator.
	_, _, err = DecodeToken("MjAyNS0wMy0xMFQwMDowMDowMFo=")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	// "notadate|2025-03-10T09:15:30.123456789Z"
	_, _, err = DecodeToken("bm90YWRhdGV8MjAyNS0wMy0xMFQwOToxNTozMC4xMjM0NTY3ODla")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "journal date parse")
}

func TestEncodeMultiFieldToken(t *testing.T) {
	createdAt := time.Date(2025, 3, 10, 9, 15, 30, 0, time.UTC).Format(time.RFC3339Nano)
	token := EncodeMultiFieldToken(createdAt, "DEP-20250310-0007")

	fields, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err)
	assert.Equal(t, []string{createdAt, "DEP-20250310-0007"}, fields)
}

func TestDecodeMultiFieldTokenErrors(t *testing.T) {
	_, err := DecodeMultiFieldToken("%%%")
	assert.Error(t, err)

	// A field containing the separator splits into extra parts; callers must
	// check the field count.
	token := EncodeMultiFieldToken("a|b", "c")
	fields, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err)
	assert.Len(t, fields, 3)
}
