package dao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntList_Value(t *testing.T) {
	value, err := IntList{10, 25, 33}.Value()
	require.NoError(t, err)
	assert.Equal(t, "[10,25,33]", value)

	value, err = IntList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", value)
}

func TestIntList_Scan(t *testing.T) {
	var list IntList
	require.NoError(t, list.Scan([]byte("[1,2,3]")))
	assert.Equal(t, IntList{1, 2, 3}, list)

	require.NoError(t, list.Scan("[7]"))
	assert.Equal(t, IntList{7}, list)

	require.NoError(t, list.Scan(nil))
	assert.Nil(t, list)

	assert.Error(t, list.Scan(42))
}
