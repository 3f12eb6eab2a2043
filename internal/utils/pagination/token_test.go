package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeKeysetToken(t *testing.T) {
	// Test case 1: Standard timestamp with a UUID tie-breaker
	ts := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)
	id := "3f1c2a84-9a0b-4a3d-8f6e-0d9c1b2a3e4f"

	token := EncodeKeysetToken(ts, id)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedTs, decodedID, err := DecodeKeysetToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, ts, decodedTs, "Timestamp should match after decode")
	assert.Equal(t, id, decodedID, "Row ID should match after decode")

	// Test case 2: Zero time value
	zeroToken := EncodeKeysetToken(time.Time{}, id)
	decodedZeroTs, decodedZeroID, err := DecodeKeysetToken(zeroToken)
	assert.NoError(t, err, "Decoding zero time should not return an error")
	assert.Equal(t, time.Time{}, decodedZeroTs, "Zero timestamp should match after decode")
	assert.Equal(t, id, decodedZeroID)

	// Test case 3: Current time value
	now := time.Now().UTC()
	nowToken := EncodeKeysetToken(now, id)
	decodedNowTs, _, err := DecodeKeysetToken(nowToken)
	assert.NoError(t, err, "Decoding current time should not return an error")

	// Due to potential nanosecond precision issues, use Equal instead of direct comparison
	assert.True(t, now.Equal(decodedNowTs), "Current timestamp should match after decode")

	// Test case 4: IDs containing the separator survive the round trip
	sepToken := EncodeKeysetToken(ts, "id|with|pipes")
	_, decodedSepID, err := DecodeKeysetToken(sepToken)
	assert.NoError(t, err)
	assert.Equal(t, "id|with|pipes", decodedSepID)
}

func TestDecodeKeysetTokenError(t *testing.T) {
	// Test invalid base64
	_, _, err := DecodeKeysetToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Test invalid format (missing separator)
	invalidToken := "MjAyMy0wNS0xNVQwMDowMDowMFo=" // Base64 encoded timestamp without separator
	_, _, err = DecodeKeysetToken(invalidToken)
	assert.Error(t, err, "Should return an error for invalid token format")
	assert.Contains(t, err.Error(), "split", "Error should mention splitting issue")

	// Test unparseable timestamp ("not-a-timestamp|id")
	_, _, err = DecodeKeysetToken("bm90LWEtdGltZXN0YW1wfGlk")
	assert.Error(t, err, "Should return an error for a bad timestamp")
}
