package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEntryTable_GetLive(t *testing.T) {
	table := newEntryTable[string, int]()
	now := epoch

	table.put("forever", 1, time.Time{})
	table.put("soon", 2, now.Add(time.Second))

	v, status := table.getLive("forever", now.Add(time.Hour))
	assert.Equal(t, found, status)
	assert.Equal(t, 1, v)

	v, status = table.getLive("soon", now.Add(999*time.Millisecond))
	assert.Equal(t, found, status)
	assert.Equal(t, 2, v)

	// expiresAt == now counts as expired and the entry is gone afterwards
	v, status = table.getLive("soon", now.Add(time.Second))
	assert.Equal(t, expired, status)
	assert.Equal(t, 2, v)

	_, status = table.getLive("soon", now)
	assert.Equal(t, missing, status)
	assert.Equal(t, 1, table.len())
}

func TestEntryTable_MatchesFollowsLatestPut(t *testing.T) {
	table := newEntryTable[string, string]()
	first := epoch.Add(100 * time.Millisecond)
	second := epoch.Add(10 * time.Second)

	table.put("k", "v1", first)
	assert.True(t, table.matches("k", first))

	table.put("k", "v2", second)
	assert.False(t, table.matches("k", first))
	assert.True(t, table.matches("k", second))

	table.put("k", "v3", time.Time{})
	assert.False(t, table.matches("k", second))
	assert.False(t, table.matches("k", time.Time{}))
}

func TestEntryTable_Expire(t *testing.T) {
	table := newEntryTable[string, string]()
	at := epoch.Add(time.Second)
	table.put("k", "v", at)

	_, ok := table.expire("k", at.Add(time.Millisecond))
	assert.False(t, ok)

	v, ok := table.expire("k", at)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
	assert.Equal(t, 0, table.len())
}

func TestEntryTable_RemoveAndClear(t *testing.T) {
	table := newEntryTable[string, string]()
	table.put("a", "1", time.Time{})
	table.put("b", "2", epoch)

	assert.True(t, table.remove("a"))
	assert.False(t, table.remove("a"))

	table.clear()
	assert.Equal(t, 0, table.len())
}

func TestEntryTable_Live(t *testing.T) {
	table := newEntryTable[string, string]()
	table.put("a", "1", time.Time{})
	table.put("b", "2", epoch.Add(time.Second))
	table.put("c", "3", epoch)

	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, table.live(epoch))
	// live does not purge
	assert.Equal(t, 3, table.len())
}
