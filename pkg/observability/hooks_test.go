package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestRegistry_DefaultsAreNoop(t *testing.T) {
	Reset()
	ctx := context.Background()

	Pipeline().OnRenderComplete(ctx, "vintage", "pdf", 2048, time.Second, nil)
	Cache().OnCacheSet(ctx, "artifact", 1024)
	HTTP().OnError(ctx, "GET", "github.com", "/google/fonts", errors.New("reset"))

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Errorf("Pipeline() = %T", Pipeline())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T", Cache())
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Errorf("HTTP() = %T", HTTP())
	}
}

func TestRegistry_SetAndReset(t *testing.T) {
	t.Cleanup(Reset)

	p, c, h := &testPipelineHooks{}, &testCacheHooks{}, &testHTTPHooks{}
	SetPipelineHooks(p)
	SetCacheHooks(c)
	SetHTTPHooks(h)
	SetPipelineHooks(nil)

	if Pipeline() != p || Cache() != c || HTTP() != h {
		t.Fatal("registered hooks not returned")
	}
	Reset()
	if Pipeline() == p {
		t.Error("Reset() kept pipeline hooks")
	}
}

func TestRegister(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	if n := Register(&testCacheHooks{}); n != 1 {
		t.Errorf("Register(cache only) = %d, want 1", n)
	}
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("cache-only hooks replaced pipeline hooks")
	}
	if n := Register(struct{}{}); n != 0 {
		t.Errorf("Register(struct{}) = %d, want 0", n)
	}

	lh := NewLogHooks(nil)
	if n := Register(lh); n != 3 {
		t.Errorf("Register(LogHooks) = %d, want 3", n)
	}
	if HTTP() != lh {
		t.Error("LogHooks not installed for HTTP")
	}
}

// Test implementations
type testPipelineHooks struct{ NoopPipelineHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }

func TestLogHooks(t *testing.T) {
	defer Reset()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	h := NewLogHooks(logger)
	h.Register()
	if Pipeline() != PipelineHooks(h) || Cache() != CacheHooks(h) || HTTP() != HTTPHooks(h) {
		t.Fatal("Register should install the hooks everywhere")
	}

	ctx := context.Background()
	Pipeline().OnRenderComplete(ctx, "vintage", "svg", 10, time.Millisecond, nil)
	Pipeline().OnRenderComplete(ctx, "vintage", "png", 0, time.Millisecond, errors.New("rsvg-convert missing"))
	Cache().OnCacheHit(ctx, "artifact")

	out := buf.String()
	for _, want := range []string{"render done", "render failed", "rsvg-convert missing", "cache hit"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
