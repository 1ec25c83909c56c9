package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	tests := []struct {
		name  string
		found bool
	}{
		{"json", true},
		{"go-json", true},
		{"msgpack", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ByName(tt.name)
			assert.Equal(t, tt.found, ok)
			if ok {
				assert.Equal(t, tt.name, c.Name())
			}
		})
	}
}

func TestCodecsAreWireCompatible(t *testing.T) {
	type payload struct {
		Label      string    `json:"label"`
		Components []float64 `json:"components"`
	}
	in := payload{Label: "Stock", Components: []float64{10, 5, 15}}

	encoded := MustMarshal(JSON{}, in)

	var out payload
	require.NoError(t, GoJSON{}.Unmarshal(encoded, &out))
	assert.Equal(t, in, out)
}
