package assemblerstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"nmea-svr/internal/observability"
	"nmea-svr/nmeadecode"
)

var ctx = context.Background()
var rdb *redis.Client

func InitRedis(addr string, db int) error {
	rdb = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	fmt.Println("[REDIS] connected")
	return nil
}

const fragmentTTL = 10 * time.Minute

// SaveFragments persists a connection's pending AIS fragment groups so a
// restarted ingestion process does not lose a straddling multi-part
// group. An empty snapshot clears the key instead of writing "[]".
func SaveFragments(sourceID string, snap []nmeadecode.PendingFragment) {
	if rdb == nil {
		return
	}
	key := "frag:" + sourceID
	if len(snap) == 0 {
		rdb.Del(ctx, key)
		return
	}
	b, err := json.Marshal(snap)
	if err != nil {
		fmt.Printf("[ERROR] marshal fragments %s: %v\n", sourceID, err)
		return
	}
	if err := rdb.Set(ctx, key, b, fragmentTTL).Err(); err != nil {
		observability.RedisErrors.Inc()
		fmt.Printf("[ERROR] redis SET %s: %v\n", key, err)
	}
}

// LoadFragments restores a previously saved fragment snapshot for sourceID.
func LoadFragments(sourceID string) ([]nmeadecode.PendingFragment, bool) {
	if rdb == nil {
		return nil, false
	}
	val, err := rdb.Get(ctx, "frag:"+sourceID).Result()
	if err != nil {
		return nil, false
	}
	var snap []nmeadecode.PendingFragment
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		return nil, false
	}
	return snap, true
}

const vsdTTL = 24 * time.Hour

// SaveStaticPart persists the most recently seen type-24 static data part
// (A or B) for mmsi so a caller can merge it with its counterpart once
// both parts have been seen, even across a restart.
func SaveStaticPart(mmsi uint32, vsd *nmeadecode.VesselStaticData) {
	if rdb == nil {
		return
	}
	b, err := json.Marshal(vsd)
	if err != nil {
		fmt.Printf("[ERROR] marshal static part %d: %v\n", mmsi, err)
		return
	}
	key := fmt.Sprintf("vsd:%d:%s", mmsi, vsd.Part24)
	if err := rdb.Set(ctx, key, b, vsdTTL).Err(); err != nil {
		observability.RedisErrors.Inc()
		fmt.Printf("[ERROR] redis SET %s: %v\n", key, err)
	}
}

// LoadStaticParts returns the stored A and B parts for mmsi, if present.
func LoadStaticParts(mmsi uint32) (a, b *nmeadecode.VesselStaticData) {
	if rdb == nil {
		return nil, nil
	}
	a = loadStaticPart(mmsi, "A")
	b = loadStaticPart(mmsi, "B")
	return a, b
}

func loadStaticPart(mmsi uint32, part string) *nmeadecode.VesselStaticData {
	val, err := rdb.Get(ctx, fmt.Sprintf("vsd:%d:%s", mmsi, part)).Result()
	if err != nil {
		return nil
	}
	var vsd nmeadecode.VesselStaticData
	if err := json.Unmarshal([]byte(val), &vsd); err != nil {
		return nil
	}
	return &vsd
}
