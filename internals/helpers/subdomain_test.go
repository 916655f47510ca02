package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsReservedSubdomain(t *testing.T) {
	assert.True(t, IsReservedSubdomain("www"))
	assert.True(t, IsReservedSubdomain("admin"))
	assert.True(t, IsReservedSubdomain("  WWW "))
	assert.False(t, IsReservedSubdomain("graca"))
	assert.False(t, IsReservedSubdomain(""))
}

func TestIsValidSubdomain(t *testing.T) {
	valid := []string{"graca", "igreja-central", "ibc2024", "a"}
	for _, s := range valid {
		assert.True(t, IsValidSubdomain(s), "%q deveria ser válido", s)
	}

	invalid := []string{"", "Graca", "igreja_central", "igreja central", "açao", "a.b", "igreja!"}
	for _, s := range invalid {
		assert.False(t, IsValidSubdomain(s), "%q deveria ser inválido", s)
	}
}

func TestIsValidSubdomainMaxLength(t *testing.T) {
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, IsValidSubdomain(string(long)))
	assert.True(t, IsValidSubdomain(string(long[:100])))
}

func TestSubdomainFromHost(t *testing.T) {
	root := "minhaigreja.app"

	assert.Equal(t, "graca", SubdomainFromHost("graca.minhaigreja.app", root))
	assert.Equal(t, "graca", SubdomainFromHost("graca.minhaigreja.app:443", root))
	assert.Equal(t, "graca", SubdomainFromHost("GRACA.MinhaIgreja.App", root))
	assert.Equal(t, "www", SubdomainFromHost("www.minhaigreja.app", root))

	// sem tenant
	assert.Equal(t, "", SubdomainFromHost("minhaigreja.app", root))
	assert.Equal(t, "", SubdomainFromHost("localhost", root))
	assert.Equal(t, "", SubdomainFromHost("localhost:3000", root))
	assert.Equal(t, "", SubdomainFromHost("127.0.0.1", root))
	assert.Equal(t, "", SubdomainFromHost("10.0.0.5:8080", root))
	assert.Equal(t, "", SubdomainFromHost("outrodominio.com", root))
	assert.Equal(t, "", SubdomainFromHost("", root))

	// dois níveis não é tenant
	assert.Equal(t, "", SubdomainFromHost("a.b.minhaigreja.app", root))
}

func TestNormalizeSubdomain(t *testing.T) {
	assert.Equal(t, "graca", NormalizeSubdomain("  GRACA  "))
	assert.Equal(t, "", NormalizeSubdomain("   "))
}
