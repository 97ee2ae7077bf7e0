package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFromBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	tests := []struct {
		name string
		in   Info
		want Info
	}{
		{
			"unset variables are filled",
			Info{Version: devVersion, Commit: "none", Date: "unknown"},
			Info{Version: "v0.3.1", Commit: "0123456789abcdef", Date: "2026-01-02T03:04:05Z", Modified: true},
		},
		{
			"ldflags win",
			Info{Version: "v1.0.0", Commit: "abc", Date: "today"},
			Info{Version: "v1.0.0", Commit: "abc", Date: "today", Modified: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fromBuildInfo(tt.in, bi); got != tt.want {
				t.Errorf("fromBuildInfo() = %+v, want %+v", got, tt.want)
			}
		})
	}

	devel := &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}
	if got := fromBuildInfo(Info{Version: devVersion}, devel); got.Version != devVersion {
		t.Errorf("(devel) replaced the version: %q", got.Version)
	}
}

func TestCacheScope(t *testing.T) {
	tests := []struct {
		info Info
		want string
	}{
		{Info{Version: "v1.2.3", Commit: "abc", Modified: true}, "v1.2.3"},
		{Info{Version: devVersion, Commit: "0123456789abcdef"}, "dev+0123456789ab"},
		{Info{Version: devVersion, Commit: "none", Modified: true}, "dev+none.dirty"},
	}
	for _, tt := range tests {
		if got := tt.info.CacheScope(); got != tt.want {
			t.Errorf("%+v.CacheScope() = %q, want %q", tt.info, got, tt.want)
		}
	}
}

func TestTemplate(t *testing.T) {
	got := Info{Version: "v1.0.0", Commit: "abc", Date: "today", Modified: true}.Template()
	for _, want := range []string{"{{.Name}} v1.0.0", "commit: abc (modified)", "built: today"} {
		if !strings.Contains(got, want) {
			t.Errorf("Template() = %q, missing %q", got, want)
		}
	}
}
