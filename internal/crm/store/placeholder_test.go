package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPlaceholderName(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"MESA", true},
		{"mesa 12", true},
		{"Mesa nº 4", true},
		{"MESA#7", true},
		{"Balcão", true},
		{"BALCAO", true},
		{"Consumidor Final", true},
		{"CLIENTE", true},
		{"Comanda 231", true},
		{"42", true},
		{"  ", true},
		{"#15", true},
		{"Ana Souza", false},
		{"Mesa Souza", false},
		{"Caixeta", false},
		{"Bartolomeu", false},
		{"Cliente Ana", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsPlaceholderName(tt.name))
		})
	}
}
