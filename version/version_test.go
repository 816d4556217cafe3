package version

import (
	"runtime/debug"
	"testing"
)

func TestInfoString(t *testing.T) {
	tests := []struct {
		info Info
		want string
	}{
		{Info{Version: "dev", GitCommit: "unknown", BuildDate: "unknown"}, "dev"},
		{Info{Version: "1.2.0", GitCommit: "abc123", BuildDate: "2026-01-02"}, "1.2.0 (commit abc123, built 2026-01-02)"},
		{Info{Version: "dev", GitCommit: "0123456789abcdef", BuildDate: "2026-01-02", Modified: true}, "dev (commit 0123456789ab-dirty, built 2026-01-02)"},
	}
	for _, tt := range tests {
		if got := tt.info.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFromBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "deadbeef"},
			{Key: "vcs.time", Value: "2026-03-04T05:06:07Z"},
			{Key: "vcs.modified", Value: "false"},
		},
	}

	got := fromBuildInfo(Info{Version: "dev", GitCommit: "unknown", BuildDate: "unknown"}, bi)
	want := Info{Version: "v0.3.0", GitCommit: "deadbeef", BuildDate: "2026-03-04T05:06:07Z"}
	if got != want {
		t.Errorf("fromBuildInfo() = %+v, want %+v", got, want)
	}

	// ldflags win over build info
	got = fromBuildInfo(Info{Version: "1.0.0", GitCommit: "cafe", BuildDate: "today"}, bi)
	if got.Version != "1.0.0" || got.GitCommit != "cafe" || got.BuildDate != "today" {
		t.Errorf("ldflags values were overwritten: %+v", got)
	}

	// a plain go build reports (devel)
	bi.Main.Version = "(devel)"
	if got := fromBuildInfo(Info{Version: "dev", GitCommit: "unknown", BuildDate: "unknown"}, bi); got.Version != "dev" {
		t.Errorf("Version = %q, want dev", got.Version)
	}
}

func TestGetVersion(t *testing.T) {
	defer func(v string) { Version = v }(Version)
	Version = "2.0.0"
	if got := GetVersion(); got != "2.0.0" {
		t.Errorf("GetVersion() = %q", got)
	}
}
