package redis

import (
	"encoding/json"
	"fmt"
	"time"
)

// Cached slot lists go stale when working hours change, so the TTL is short;
// booking writes invalidate the affected provider/date key directly.
const slotTTL = time.Minute

func slotKey(providerID uint, date string) string {
	return fmt.Sprintf("slots:%d:%s", providerID, date)
}

// GetSlots returns the cached slot list for a provider and date, if present.
func GetSlots(providerID uint, date string) ([]string, bool) {
	if Client == nil {
		return nil, false
	}
	raw, err := Client.Get(Ctx, slotKey(providerID, date)).Result()
	if err != nil {
		return nil, false
	}
	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

// SetSlots caches the slot list for a provider and date.
func SetSlots(providerID uint, date string, slots []string) {
	if Client == nil {
		return
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	Client.Set(Ctx, slotKey(providerID, date), raw, slotTTL)
}

// InvalidateSlots drops the cached slots for a provider and date after a
// booking is created or changes status.
func InvalidateSlots(providerID uint, date string) {
	if Client == nil {
		return
	}
	Client.Del(Ctx, slotKey(providerID, date))
}
