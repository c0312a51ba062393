package constants

import (
	"testing"

	"github.com/piresc/routefinder/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestDestinationsCatalogue(t *testing.T) {
	assert.NotEmpty(t, Destinations)

	seen := make(map[string]bool)
	for _, d := range Destinations {
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Address)
		assert.False(t, seen[d.Name], "duplicate destination %q", d.Name)
		seen[d.Name] = true
	}
	assert.Len(t, DestinationNames(Destinations), len(Destinations))
}

func TestLookupDestination(t *testing.T) {
	catalogue := []models.Destination{
		{Name: "Hospital Teste", Address: "Rua Teste, 123"},
	}

	tests := []struct {
		name     string
		input    string
		expected string
		found    bool
	}{
		{name: "Exact name", input: "Hospital Teste", expected: "Rua Teste, 123", found: true},
		{name: "Different case and spaces", input: "  hospital teste ", expected: "Rua Teste, 123", found: true},
		{name: "Free text address", input: "Rua XV de Novembro, 100", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			address, found := LookupDestination(catalogue, tt.input)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, address)
		})
	}
}
