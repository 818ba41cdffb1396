package trace

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSink 把跟踪行追加到一个 Redis 列表，便于在进程外查看失败诊断
// 列表只承载跟踪文本，不涉及堆状态本身
type RedisSink struct {
	rds  *redis.Client
	opts *RedisSinkOptions
}

// RedisSinkOptions configures the Redis trace sink
type RedisSinkOptions struct {
	Key    string        // 跟踪列表的键名
	MaxLen int64         // 列表最大长度，超出后裁掉最旧的行；<=0 表示不裁剪
	Expiry time.Duration // 键的过期时间，每次写入后刷新；<=0 表示不过期
}

// DefaultRedisSinkOptions returns default Redis trace sink options
func DefaultRedisSinkOptions() *RedisSinkOptions {
	return &RedisSinkOptions{
		Key:    "batch_heap:trace",
		MaxLen: 1024,
		Expiry: 24 * time.Hour,
	}
}

// NewRedisSink creates a new Redis-backed trace sink
func NewRedisSink(redisClient *redis.Client, opts *RedisSinkOptions) *RedisSink {
	if opts == nil {
		opts = DefaultRedisSinkOptions()
	}

	return &RedisSink{
		rds:  redisClient,
		opts: opts,
	}
}

// Emit 追加一行，并按配置裁剪列表、刷新过期时间
func (s *RedisSink) Emit(ctx context.Context, line string) error {
	if err := s.rds.RPush(ctx, s.opts.Key, line).Err(); err != nil {
		return err
	}

	if s.opts.MaxLen > 0 {
		if err := s.rds.LTrim(ctx, s.opts.Key, -s.opts.MaxLen, -1).Err(); err != nil {
			return err
		}
	}

	if s.opts.Expiry > 0 {
		if err := s.rds.Expire(ctx, s.opts.Key, s.opts.Expiry).Err(); err != nil {
			return err
		}
	}

	return nil
}
