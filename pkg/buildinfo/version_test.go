package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	old := Version
	Version = "v0.3.1"
	defer func() { Version = old }()

	s := String()
	for _, want := range []string{"version: v0.3.1", "commit: ", "built: "} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestTemplate(t *testing.T) {
	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version ") {
		t.Errorf("Template() = %q, want cobra name placeholder prefix", tmpl)
	}
	if !strings.HasSuffix(tmpl, "\n") {
		t.Error("Template() should end with a newline")
	}
}

func TestFill(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	defer func() { Version, Commit, Date = oldV, oldC, oldD }()

	type vars struct{ version, commit, date string }
	unset := vars{unsetVersion, unsetCommit, unsetDate}

	tests := []struct {
		name   string
		before vars
		info   *debug.BuildInfo
		want   vars
	}{
		{
			name:   "unset fields filled",
			before: unset,
			info: &debug.BuildInfo{
				Main: debug.Module{Version: "v0.2.0"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc123"},
					{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
				},
			},
			want: vars{"v0.2.0", "abc123", "2026-01-02T03:04:05Z"},
		},
		{
			name:   "ldflags values kept",
			before: vars{"v1.0.0", "deadbeef", "2026-05-01"},
			info: &debug.BuildInfo{
				Main:     debug.Module{Version: "v0.2.0"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
			},
			want: vars{"v1.0.0", "deadbeef", "2026-05-01"},
		},
		{
			name:   "devel version ignored",
			before: unset,
			info:   &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want:   unset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit, Date = tt.before.version, tt.before.commit, tt.before.date
			fill(tt.info)
			if got := (vars{Version, Commit, Date}); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
