package util

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetKeysSorted(t *testing.T) {
	m := map[int]string{7: "seventh", 1: "root", 5: "fifth", 3: "third"}
	assert.Equal(t, []int{1, 3, 5, 7}, GetKeysSorted(m))
}

func TestGetKeysSortedEmpty(t *testing.T) {
	assert.Empty(t, GetKeysSorted(map[string]int{}))
}

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, Map([]int{1, 2, 3}, strconv.Itoa))
}
