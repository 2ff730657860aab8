package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
)

// SessionIndex 会话令牌到用户ID的快速索引。数据库中的 users.session_token 始终是权威来源。
type SessionIndex interface {
	Lookup(ctx context.Context, token string) (uint, bool, error)
	Store(ctx context.Context, token string, userID uint) error
	Remove(ctx context.Context, token string) error
}

type RedisSessionIndex struct {
	Redis *redis.Client
}

func NewRedisSessionIndex(rdb *redis.Client) *RedisSessionIndex {
	return &RedisSessionIndex{Redis: rdb}
}

func sessionKey(token string) string {
	return fmt.Sprintf("badge:session:%s", token)
}

func (r *RedisSessionIndex) Lookup(ctx context.Context, token string) (uint, bool, error) {
	val, err := r.Redis.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return uint(id), true, nil
}

// Store 不设置过期时间：令牌只在登出或重新登录时失效
func (r *RedisSessionIndex) Store(ctx context.Context, token string, userID uint) error {
	return r.Redis.Set(ctx, sessionKey(token), strconv.FormatUint(uint64(userID), 10), 0).Err()
}

func (r *RedisSessionIndex) Remove(ctx context.Context, token string) error {
	return r.Redis.Del(ctx, sessionKey(token)).Err()
}
