package datasource_test

import (
	"testing"

	"github.com/RiceaRaul/apriori/datasource"
	"github.com/stretchr/testify/assert"
)

func TestStringItemEqual(t *testing.T) {
	a := datasource.StringItem("apple")
	b := datasource.StringItem("apple")
	c := datasource.StringItem("banana")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestStringItemLess(t *testing.T) {
	assert.True(t, datasource.StringItem("apple").Less(datasource.StringItem("banana")))
	assert.False(t, datasource.StringItem("banana").Less(datasource.StringItem("apple")))
}

func TestStringItemHashConsistentWithEqual(t *testing.T) {
	a := datasource.StringItem("apple")
	b := datasource.StringItem("apple")

	assert.Equal(t, a.Hash(), b.Hash())
}

func TestStringItemString(t *testing.T) {
	assert.Equal(t, "apple", datasource.StringItem("apple").String())
}
