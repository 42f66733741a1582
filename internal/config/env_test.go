package config

import (
	"strings"
	"testing"
)

func TestSubstitute(t *testing.T) {
	env := MapLookup(map[string]string{
		"A":         "alpha",
		"B":         "beta",
		"HOME":      "/users/me",
		"XDG_CACHE": "/var/cache",
	})

	cases := []struct {
		name  string
		value string
		want  string
	}{
		{name: "single placeholder", value: "$HOME/dl", want: "/users/me/dl"},
		{name: "underscore name", value: "$XDG_CACHE/bob", want: "/var/cache/bob"},
		{name: "only first placeholder resolved", value: "$A/$B", want: "alpha/$B"},
		{name: "repeated token replaced everywhere", value: "$A/x/$A", want: "alpha/x/alpha"},
		{name: "replacement is literal substring", value: "$A/$AB", want: "alpha/alphaB"},
		{name: "missing variable", value: "$MIRROR_HOST", want: "Couldn't find MIRROR_HOST environment variable"},
		{name: "missing variable keeps surrounding text", value: "https://$MIRROR_HOST/releases", want: "https://Couldn't find MIRROR_HOST environment variable/releases"},
		{name: "lowercase is not a placeholder", value: "$home/dl", want: "$home/dl"},
		{name: "bare dollar", value: "cost$", want: "cost$"},
		{name: "no placeholder", value: "/opt/nvim", want: "/opt/nvim"},
		{name: "empty", value: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{DownloadsLocation: ptr(tc.value)}

			if err := Substitute(&cfg, env); err != nil {
				t.Fatalf("Substitute returned error: %v", err)
			}
			if got := *cfg.DownloadsLocation; got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestSubstituteAllStringFields(t *testing.T) {
	env := MapLookup(map[string]string{"ROOT": "/r"})
	cfg := Config{
		DownloadsLocation:       ptr("$ROOT/downloads"),
		InstallationLocation:    ptr("$ROOT/install"),
		VersionSyncFileLocation: ptr("$ROOT/sync"),
		GithubMirror:            ptr("$ROOT/mirror"),
	}

	if err := Substitute(&cfg, env); err != nil {
		t.Fatalf("Substitute returned error: %v", err)
	}

	for name, got := range map[string]string{
		"downloads_location":         *cfg.DownloadsLocation,
		"installation_location":      *cfg.InstallationLocation,
		"version_sync_file_location": *cfg.VersionSyncFileLocation,
		"github_mirror":              *cfg.GithubMirror,
	} {
		if !strings.HasPrefix(got, "/r/") {
			t.Fatalf("%s was not substituted: %q", name, got)
		}
	}
}

func TestSubstituteLeavesOtherFieldsAlone(t *testing.T) {
	cfg := Config{
		EnableNightlyInfo:   ptr(true),
		EnableReleaseBuild:  ptr(false),
		RollbackLimit:       ptr(uint8(255)),
		EnableManpageMirror: ptr(true),
	}
	want := cfg

	if err := Substitute(&cfg, MapLookup(nil)); err != nil {
		t.Fatalf("Substitute returned error: %v", err)
	}
	if cfg != want {
		t.Fatalf("expected config to be unchanged, got %+v", cfg)
	}
	if !*cfg.EnableNightlyInfo || *cfg.EnableReleaseBuild || *cfg.RollbackLimit != 255 || !*cfg.EnableManpageMirror {
		t.Fatalf("non-substitutable values changed: %+v", cfg)
	}
}

func TestSubstituteIsIdempotent(t *testing.T) {
	env := MapLookup(map[string]string{"HOME": "/users/me"})
	cfg := Config{GithubMirror: ptr("$HOME/mirror"), DownloadsLocation: ptr("$MISSING")}

	if err := Substitute(&cfg, env); err != nil {
		t.Fatalf("Substitute returned error: %v", err)
	}
	mirror, downloads := *cfg.GithubMirror, *cfg.DownloadsLocation

	if err := Substitute(&cfg, env); err != nil {
		t.Fatalf("Substitute returned error: %v", err)
	}
	if *cfg.GithubMirror != mirror || *cfg.DownloadsLocation != downloads {
		t.Fatalf("second pass changed values: %q, %q", *cfg.GithubMirror, *cfg.DownloadsLocation)
	}
}

func TestSubstituteDefaultsToProcessEnvironment(t *testing.T) {
	t.Setenv("BOB_TEST_MIRROR", "mirror.internal")
	cfg := Config{GithubMirror: ptr("$BOB_TEST_MIRROR")}

	if err := Substitute(&cfg, nil); err != nil {
		t.Fatalf("Substitute returned error: %v", err)
	}
	if *cfg.GithubMirror != "mirror.internal" {
		t.Fatalf("unexpected github_mirror: %q", *cfg.GithubMirror)
	}
}

func TestSubstituteEmptyVariableValue(t *testing.T) {
	cfg := Config{DownloadsLocation: ptr("$EMPTY/dl")}

	if err := Substitute(&cfg, MapLookup(map[string]string{"EMPTY": ""})); err != nil {
		t.Fatalf("Substitute returned error: %v", err)
	}
	if *cfg.DownloadsLocation != "/dl" {
		t.Fatalf("expected set-but-empty variable to resolve to empty, got %q", *cfg.DownloadsLocation)
	}
}

func TestSubstituteNilConfig(t *testing.T) {
	if err := Substitute(nil, MapLookup(nil)); err != nil {
		t.Fatalf("Substitute returned error: %v", err)
	}
}
