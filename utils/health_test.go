package utils

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func TestProbeHealthReportsEachRedisRole(t *testing.T) {
	cacheSrv := miniredis.RunT(t)
	sessionSrv := miniredis.RunT(t)

	cacheClient := redis.NewClient(&redis.Options{Addr: cacheSrv.Addr()})
	sessionClient := redis.NewClient(&redis.Options{Addr: sessionSrv.Addr()})
	defer cacheClient.Close()
	defer sessionClient.Close()

	status := probeHealth(context.Background(), cacheClient, sessionClient, nil)
	if !status.Redis.Cache || !status.Redis.Sessions {
		t.Fatalf("redis roles = %+v, want both healthy", status.Redis)
	}
	if status.Mongo {
		t.Fatalf("mongo reported healthy with no client")
	}
	if status.CheckedAt.IsZero() {
		t.Fatalf("snapshot carries no timestamp")
	}

	sessionSrv.Close()
	status = probeHealth(context.Background(), cacheClient, sessionClient, nil)
	if !status.Redis.Cache {
		t.Fatalf("cache role flipped unhealthy: %+v", status.Redis)
	}
	if status.Redis.Sessions {
		t.Fatalf("session role still healthy after shutdown")
	}
}
