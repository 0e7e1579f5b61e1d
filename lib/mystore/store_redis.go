package mystore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
)

// RedisStore keeps all entities of one kind as JSON values in a single redis hash
type RedisStore[T any] struct {
	client *redis.Client
	kind   string
}

type redisTransaction struct {
	tx     *redis.Tx
	writes map[string][]byte
}

func NewRedisStore[T any](c context.Context, addr string) (*RedisStore[T], func(), error) {
	opts, err := redis.ParseURL(addr)
	if err != nil {
		// plain "host:port"
		opts = &redis.Options{
			Addr:         addr,
			MinIdleConns: 1,
			DialTimeout:  10 * time.Second,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			PoolSize:     10,
		}
	}

	client := redis.NewClient(opts)
	client.AddHook(redisotel.NewTracingHook())

	err = client.Ping(c).Err()
	if err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("error connecting to redis on %s: %w", addr, err)
	}

	return &RedisStore[T]{
			client: client,
			kind:   kindOf[T](),
		}, func() {
			client.Close()
		}, nil
}

func redisTransactionFrom(c context.Context) *redisTransaction {
	tx, ok := c.Value(ctxTransactionKey{}).(*redisTransaction)
	if !ok {
		return nil
	}
	return tx
}

func (s *RedisStore[T]) RunInTransaction(c context.Context, f func(c context.Context) error) error {
	var err error
	for i := 1; i <= maxTransactionAttempts; i++ {
		err = s.client.Watch(c, func(tx *redis.Tx) error {
			rt := &redisTransaction{tx: tx, writes: map[string][]byte{}}

			err := f(context.WithValue(c, ctxTransactionKey{}, rt))
			if err != nil {
				// Rollback: buffered writes are dropped
				return err
			}

			_, err = tx.TxPipelined(c, func(pipe redis.Pipeliner) error {
				for uid, data := range rt.writes {
					pipe.HSet(c, s.kind, uid, data)
				}
				return nil
			})
			return err
		}, s.kind)
		if errors.Is(err, redis.TxFailedErr) {
			log.Printf("Concurrent transaction error on %s, retrying (%d of %d): %s", s.kind, i, maxTransactionAttempts, err)
			continue
		}
		return err
	}
	return err
}

func (s *RedisStore[T]) Put(c context.Context, uid string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error marshalling entity %s with uid %s: %w", s.kind, uid, err)
	}

	if rt := redisTransactionFrom(c); rt != nil {
		rt.writes[uid] = data
		return nil
	}

	err = s.client.HSet(c, s.kind, uid, data).Err()
	if err != nil {
		return fmt.Errorf("error storing entity %s with uid %s: %w", s.kind, uid, err)
	}
	return nil
}

func (s *RedisStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	var value T

	var data []byte
	var err error
	if rt := redisTransactionFrom(c); rt != nil {
		if pending, found := rt.writes[uid]; found {
			data = pending
		} else {
			data, err = rt.tx.HGet(c, s.kind, uid).Bytes()
		}
	} else {
		data, err = s.client.HGet(c, s.kind, uid).Bytes()
	}
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return value, false, nil
		}
		return value, false, fmt.Errorf("error fetching entity %s with uid %s: %w", s.kind, uid, err)
	}

	err = json.Unmarshal(data, &value)
	if err != nil {
		return value, false, fmt.Errorf("error parsing entity %s with uid %s: %w", s.kind, uid, err)
	}
	return value, true, nil
}

func (s *RedisStore[T]) List(c context.Context) ([]T, error) {
	var raw map[string]string
	var err error
	if rt := redisTransactionFrom(c); rt != nil {
		raw, err = rt.tx.HGetAll(c, s.kind).Result()
		if err == nil {
			for uid, data := range rt.writes {
				raw[uid] = string(data)
			}
		}
	} else {
		raw, err = s.client.HGetAll(c, s.kind).Result()
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching all entities %s: %w", s.kind, err)
	}

	result := make([]T, 0, len(raw))
	for uid, data := range raw {
		var value T
		err = json.Unmarshal([]byte(data), &value)
		if err != nil {
			return nil, fmt.Errorf("error parsing entity %s with uid %s: %w", s.kind, uid, err)
		}
		result = append(result, value)
	}
	return result, nil
}

func (s *RedisStore[T]) Query(c context.Context, filters []Filter, orderByField string) ([]T, error) {
	all, err := s.List(c)
	if err != nil {
		return nil, err
	}
	return filter(all, filters)
}
