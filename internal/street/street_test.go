package street

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "blank", in: "   \t ", want: ""},
		{name: "road", in: "Elm Rd", want: "ELM ROAD"},
		{name: "already full", in: "ELM ROAD", want: "ELM ROAD"},
		{name: "whitespace", in: "  mill   road \t", want: "MILL ROAD"},
		{name: "avenue alias", in: "Park Av", want: "PARK AVENUE"},
		{name: "avenue", in: "park ave", want: "PARK AVENUE"},
		{name: "all tokens", in: "st blvd pl dr ln gr cl sq", want: "STREET BOULEVARD PLACE DRIVE LANE GROVE CLOSE SQUARE"},
		{name: "token must match exactly", in: "Stanley Rdx", want: "STANLEY RDX"},
		{name: "leading abbreviation", in: "St Andrews St", want: "STREET ANDREWS STREET"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, in := range []string{"", "Elm Rd", " the  Av ", "Green's Cl", "Ave Ave", "Königstraße"} {
		once := Normalize(in)
		require.Equal(t, once, Normalize(once), in)
	}
}

func TestNormalizeAbbreviationEquivalence(t *testing.T) {
	for abbr, full := range abbreviations {
		require.Equal(t, Normalize("elm "+full), Normalize("Elm "+abbr))
		require.Equal(t, Normalize("ELM "+full), Normalize("elm "+full))
	}
}
