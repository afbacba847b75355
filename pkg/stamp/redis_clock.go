package stamp

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisClock reads the Redis TIME command, giving every issuer that
// shares the Redis instance the same view of time. Seconds are
// reported relative to EpochSeconds like WallClock.
//
// A failed read is an error, never a silent fallback to the local
// clock; wrap the clock in a FallbackClock when a standby source is
// wanted.
type RedisClock struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisClock(client *redis.Client) *RedisClock {
	return &RedisClock{
		client: client,
		ctx:    context.Background(),
	}
}

func (r *RedisClock) Tick() (Inst, error) {
	res, err := r.client.Time(r.ctx).Result()
	if err != nil {
		return Inst{}, &ClockReadError{Err: err}
	}

	secs := res.Unix()
	nanos := int64(res.Nanosecond())
	if secs < 0 || nanos < 0 {
		return Inst{}, &NegativeTimeReadingError{Secs: secs, Nanos: nanos}
	}
	if uint64(secs) < EpochSeconds {
		return Inst{}, &NegativeTimeReadingError{Secs: secs - int64(EpochSeconds), Nanos: nanos}
	}
	return NewInst(uint64(secs)-EpochSeconds, uint64(nanos)), nil
}
