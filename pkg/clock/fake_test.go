package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFake_FiresInDeadlineOrder(t *testing.T) {
	c := NewFake(epoch)
	var got []string

	c.AfterFunc(300*time.Millisecond, func() { got = append(got, "late") })
	c.AfterFunc(100*time.Millisecond, func() { got = append(got, "early") })
	c.AfterFunc(100*time.Millisecond, func() { got = append(got, "early-second") })

	c.Advance(50 * time.Millisecond)
	assert.Empty(t, got)
	assert.Equal(t, 3, c.Pending())

	c.Advance(time.Second)
	assert.Equal(t, []string{"early", "early-second", "late"}, got)
	assert.Equal(t, 0, c.Pending())
	assert.Equal(t, epoch.Add(1050*time.Millisecond), c.Now())
}

func TestFake_NowInsideCallbackIsDeadline(t *testing.T) {
	c := NewFake(epoch)
	var seen time.Time
	c.AfterFunc(200*time.Millisecond, func() { seen = c.Now() })

	c.Advance(time.Second)
	assert.Equal(t, epoch.Add(200*time.Millisecond), seen)
}

func TestFake_Stop(t *testing.T) {
	c := NewFake(epoch)
	fired := false
	timer := c.AfterFunc(10*time.Millisecond, func() { fired = true })

	require.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	c.Advance(time.Second)
	assert.False(t, fired)
}

func TestFake_StopAfterFire(t *testing.T) {
	c := NewFake(epoch)
	timer := c.AfterFunc(0, func() {})
	c.Advance(0)
	assert.False(t, timer.Stop())
}

func TestFake_CallbackCanRegister(t *testing.T) {
	c := NewFake(epoch)
	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 3 {
			c.AfterFunc(10*time.Millisecond, tick)
		}
	}
	c.AfterFunc(10*time.Millisecond, tick)

	c.Advance(25 * time.Millisecond)
	assert.Equal(t, 2, count)

	c.Advance(25 * time.Millisecond)
	assert.Equal(t, 3, count)
}

func TestReal_AfterFunc(t *testing.T) {
	done := make(chan struct{})
	Real().AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("real timer did not fire")
	}
}
