package deck

import (
	"testing"

	utils "github.com/minaorangina/aton/internal"
)

func TestCard(t *testing.T) {
	cases := []struct {
		name  string
		card  Card
		valid bool
	}{
		{"Lowest value card", One, true},
		{"Highest value card", Four, true},
		{"Null card", NullCard, false},
		{"Out of range", Card(5), false},
		{"Negative", Card(-1), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			utils.AssertEqual(t, c.card.Valid(), c.valid)
		})
	}

	t.Run("string form is the numeric value", func(t *testing.T) {
		utils.AssertEqual(t, Three.String(), "3")
	})
}
