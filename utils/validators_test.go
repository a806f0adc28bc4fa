// File: /utils/validators_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidLatitude(t *testing.T) {
	assert.True(t, IsValidLatitude(0))
	assert.True(t, IsValidLatitude(90))
	assert.True(t, IsValidLatitude(-90))
	assert.False(t, IsValidLatitude(90.1))
	assert.False(t, IsValidLatitude(-91))
}

func TestIsValidLongitude(t *testing.T) {
	assert.True(t, IsValidLongitude(0))
	assert.True(t, IsValidLongitude(180))
	assert.True(t, IsValidLongitude(-180))
	assert.False(t, IsValidLongitude(180.1))
	assert.False(t, IsValidLongitude(-181))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("Secret1"))
	assert.True(t, IsValidPassword("longlower1"))
	assert.False(t, IsValidPassword("short"))
	assert.False(t, IsValidPassword("alllowercase"))
}

func TestIsValidTransportationMode(t *testing.T) {
	assert.True(t, IsValidTransportationMode(""))
	assert.True(t, IsValidTransportationMode("walking"))
	assert.True(t, IsValidTransportationMode("public transport"))
	assert.False(t, IsValidTransportationMode("teleport"))
}
