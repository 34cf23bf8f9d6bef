package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatProbability(t *testing.T) {
	cases := map[float64]string{
		1:       "100%",
		0.99995: "> 99.99%",
		0.9999:  "99.99%",
		0.1234:  "12.34%",
		0.5:     "50.00%",
		0:       "0.00%",
		-0.2:    "0.00%",
	}
	for p, want := range cases {
		assert.Equal(t, want, FormatProbability(p), "p=%v", p)
	}
}
