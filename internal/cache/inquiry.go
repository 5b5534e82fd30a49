package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/inquiries/internal/model"
	"github.com/vmihailenco/msgpack/v5"
)

type redisInquiryCache struct {
	client     *redis.Client
	timeToLive time.Duration
}

// NewRedisInquiryCache builds cache which stores msgpack encoded inquiries for ttl
func NewRedisInquiryCache(client *redis.Client, ttl time.Duration) InquiryCache {
	return &redisInquiryCache{client: client, timeToLive: ttl}
}

func (r *redisInquiryCache) FindByID(ctx context.Context, id string) (*model.Inquiry, error) {
	res, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var i model.Inquiry
	if err := msgpack.Unmarshal(res, &i); err != nil {
		return nil, err
	}

	i.CreatedAt = i.CreatedAt.UTC()
	return &i, nil
}

func (r *redisInquiryCache) Create(ctx context.Context, i *model.Inquiry) error {
	encoded, err := msgpack.Marshal(i)
	if err != nil {
		return err
	}

	if err := r.client.SetNX(ctx, r.key(i.ID), encoded, r.timeToLive).Err(); err != nil {
		return err
	}
	return nil
}

func (r *redisInquiryCache) key(id string) string {
	return fmt.Sprintf("inquiry:%s", id)
}
