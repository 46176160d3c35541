package cacheinfra

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goerrors "github.com/goliatone/go-errors"
)

type redisRecord struct {
	Name  string
	Count int
}

func newRedisService(t *testing.T) (*RedisService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	svc, err := NewRedisService(context.Background(), RedisConfig{
		Addr:      mr.Addr(),
		Namespace: Namespace("type Query { ping: String }"),
	})
	if err != nil {
		t.Fatalf("failed to create redis service: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })

	return svc, mr
}

func TestNamespace(t *testing.T) {
	a := Namespace("schema a")
	b := Namespace("schema b")

	if !strings.HasPrefix(a, "cv:") || len(a) != len("cv:")+16 {
		t.Errorf("unexpected namespace format %q", a)
	}
	if a == b {
		t.Error("expected different schemas to produce different namespaces")
	}
	if a != Namespace("schema a") {
		t.Error("expected namespace to be stable")
	}
}

func TestRedisService_RoundTrip(t *testing.T) {
	svc, mr := newRedisService(t)
	ctx := context.Background()

	in := []redisRecord{{Name: "Alpha", Count: 2}, {Name: "Beta", Count: 0}}
	if err := svc.Set(ctx, "companies_all", in, time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if !mr.Exists(svc.key("companies_all")) {
		t.Fatalf("expected namespaced key %q in redis", svc.key("companies_all"))
	}

	value, found, err := svc.Get(ctx, "companies_all")
	if err != nil || !found {
		t.Fatalf("expected hit, got found=%v err=%v", found, err)
	}

	payload, ok := value.(Encoded)
	if !ok {
		t.Fatalf("expected Encoded payload, got %T", value)
	}

	var out []redisRecord
	if err := Decode(payload, &out); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(out) != 2 || out[0].Name != "Alpha" || out[1].Count != 0 {
		t.Errorf("unexpected decoded value: %+v", out)
	}
}

func TestRedisService_Expiry(t *testing.T) {
	svc, mr := newRedisService(t)
	ctx := context.Background()

	if err := svc.Set(ctx, "k", "v", 5*time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	mr.FastForward(4 * time.Minute)
	if _, found, _ := svc.Get(ctx, "k"); !found {
		t.Fatal("expected key before ttl")
	}

	mr.FastForward(time.Minute)
	if _, found, _ := svc.Get(ctx, "k"); found {
		t.Fatal("expected key to expire after ttl")
	}
}

func TestRedisService_BackendFailure(t *testing.T) {
	svc, mr := newRedisService(t)
	mr.Close()

	_, _, err := svc.Get(context.Background(), "k")
	if err == nil {
		t.Fatal("expected error when redis is down")
	}

	var gerr *goerrors.Error
	if !goerrors.As(err, &gerr) {
		t.Fatalf("expected go-errors error, got %T", err)
	}
	if gerr.Category != goerrors.CategoryExternal || gerr.TextCode != TextCodeCacheFailure {
		t.Errorf("unexpected category/text code: %s/%s", gerr.Category, gerr.TextCode)
	}
}

func TestRedisConfig_Validate(t *testing.T) {
	if err := (RedisConfig{}).Validate(); err == nil {
		t.Error("expected error for empty address")
	}
	if err := (RedisConfig{Addr: "localhost:6379", DB: -1}).Validate(); err == nil {
		t.Error("expected error for negative db")
	}
	if err := (RedisConfig{Addr: "localhost:6379"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
