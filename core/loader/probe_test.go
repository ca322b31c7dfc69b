package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseComponents(t *testing.T) {
	probe := ParseComponents(" packetevents, Nexo ,,BetonQuest@3.1.0, WorldGuard@ ")

	assert.Equal(t, []string{"BetonQuest", "Nexo", "WorldGuard", "packetevents"}, probe.Names())

	tests := []struct {
		name        string
		component   string
		wantPresent bool
		wantVersion string
		wantKnown   bool
	}{
		{"Versioned", "BetonQuest", true, "3.1.0", true},
		{"NoVersion", "Nexo", true, "", false},
		{"EmptyVersion", "WorldGuard", true, "", false},
		{"Absent", "Oraxen", false, "", false},
		{"CaseSensitive", "nexo", false, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPresent, probe.IsPresent(tt.component))
			v, ok := probe.Version(tt.component)
			assert.Equal(t, tt.wantKnown, ok)
			assert.Equal(t, tt.wantVersion, v)
		})
	}
}

func TestParseComponents_Empty(t *testing.T) {
	probe := ParseComponents("")
	assert.Empty(t, probe.Names())
	assert.False(t, probe.IsPresent(""))
}
