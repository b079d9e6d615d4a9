package recordgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareBool(t *testing.T) {
	assert.Equal(t, 0, CompareBool(false, false))
	assert.Equal(t, 0, CompareBool(true, true))
	assert.Equal(t, -1, CompareBool(false, true))
	assert.Equal(t, 1, CompareBool(true, false))
}
