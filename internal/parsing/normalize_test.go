package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstallationID(t *testing.T) {
	assert.Equal(t, "105301957", InstallationID("10/530195-7"))
	assert.Equal(t, "3001234567", InstallationID(" 3001234567 "))
	assert.Equal(t, "", InstallationID("sem instalação"))
}

func TestDistributorName(t *testing.T) {
	assert.Equal(t, "ENERGISA MT", DistributorName("energisa_mt"))
	assert.Equal(t, "CEMIG", DistributorName(" cemig "))
	assert.Equal(t, "CPFL PAULISTA", DistributorName("CPFL Paulista"))
	assert.Equal(t, "", DistributorName(""))
}
