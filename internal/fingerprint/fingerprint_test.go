package fingerprint_test

import (
	"testing"

	"github.com/RiceaRaul/apriori/internal/fingerprint"
	"github.com/stretchr/testify/assert"
)

func TestOfIsDeterministic(t *testing.T) {
	a := fingerprint.Of([]uint64{1, 2, 3})
	b := fingerprint.Of([]uint64{1, 2, 3})
	assert.Equal(t, a, b)
}

func TestOfIsOrderSensitive(t *testing.T) {
	// Of itself does not sort; callers are responsible for canonical order.
	a := fingerprint.Of([]uint64{1, 2, 3})
	b := fingerprint.Of([]uint64{3, 2, 1})
	assert.NotEqual(t, a, b)
}

func TestOfEmpty(t *testing.T) {
	a := fingerprint.Of(nil)
	b := fingerprint.Of([]uint64{})
	assert.Equal(t, a, b)
}
