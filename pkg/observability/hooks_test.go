package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	s := NoopSceneHooks{}
	s.OnLoadStart(ctx, "scene.json")
	s.OnLoadComplete(ctx, "scene.json", LoadStats{Widgets: 3, Connections: 4}, time.Second, nil)
	s.OnConnectionRejected(ctx, "a.LEFT", "b.TOP")

	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, "svg", 3)
	r.OnRenderComplete(ctx, "svg", 2048, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "render")
	c.OnCacheMiss(ctx, "render")
	c.OnCacheSet(ctx, "render", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Scene().(NoopSceneHooks); !ok {
		t.Error("Scene() should return NoopSceneHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customScene := &testSceneHooks{}
	SetSceneHooks(customScene)
	if Scene() != customScene {
		t.Error("SetSceneHooks should set custom hooks")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Scene().(NoopSceneHooks); !ok {
		t.Error("Reset() should restore NoopSceneHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testSceneHooks{}
	SetSceneHooks(custom)
	SetSceneHooks(nil)

	if Scene() != custom {
		t.Error("SetSceneHooks(nil) should be ignored")
	}

	Reset()
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	h := &countingSceneHooks{}
	SetSceneHooks(h)
	Scene().OnConnectionRejected(context.Background(), "a.LEFT", "b.TOP")
	Scene().OnConnectionRejected(context.Background(), "a.TOP", "b.LEFT")

	if h.rejected != 2 {
		t.Errorf("rejected = %d, want 2", h.rejected)
	}
}

// Test implementations
type testSceneHooks struct{ NoopSceneHooks }
type testRenderHooks struct{ NoopRenderHooks }
type testCacheHooks struct{ NoopCacheHooks }

type countingSceneHooks struct {
	NoopSceneHooks
	rejected int
}

func (h *countingSceneHooks) OnConnectionRejected(context.Context, string, string) { h.rejected++ }
