package dedup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShouldProcessOncePerTTL(t *testing.T) {
	d := New(time.Minute, 100)

	assert.True(t, d.ShouldProcess("a"))
	assert.False(t, d.ShouldProcess("a"))
	assert.True(t, d.ShouldProcess("b"))
	assert.Equal(t, 2, d.Len())
}

func TestEmptyIDAlwaysProcessed(t *testing.T) {
	d := New(time.Minute, 100)

	assert.True(t, d.ShouldProcess(""))
	assert.True(t, d.ShouldProcess(""))
}

func TestExpiredIDProcessedAgain(t *testing.T) {
	d := New(time.Nanosecond, 100)

	assert.True(t, d.ShouldProcess("a"))
	time.Sleep(time.Millisecond)
	assert.True(t, d.ShouldProcess("a"))
}
