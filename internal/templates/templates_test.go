package templates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/routegen/pkg/route"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"minimal", false},
		{"blog", false},
		{"nonexistent", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := Get(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tmpl.Name != tt.name {
				t.Errorf("Name = %q, want %q", tmpl.Name, tt.name)
			}
		})
	}
}

func TestList(t *testing.T) {
	got := List()
	if len(got) != 2 || got[0] != "blog" || got[1] != "minimal" {
		t.Errorf("List() = %v", got)
	}
}

func TestCreate(t *testing.T) {
	for _, name := range List() {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			tmpl, _ := Get(name)

			written, err := tmpl.Create(dir, Config{
				ProjectName: "shop",
				RoutesFile:  "build/routes.json",
				Src:         "src/routes",
			})
			if err != nil {
				t.Fatalf("Create() error: %v", err)
			}
			if len(written) != len(tmpl.Files) {
				t.Errorf("written %d files, want %d", len(written), len(tmpl.Files))
			}

			routes, err := route.LoadFile(filepath.Join(dir, "build", "routes.json"))
			if err != nil {
				t.Fatalf("descriptor file does not load: %v", err)
			}
			if err := route.Validate(routes); err != nil {
				t.Errorf("descriptor file does not validate: %v", err)
			}

			for _, r := range routes {
				if _, err := os.Stat(filepath.Join(dir, "src", "routes", filepath.FromSlash(r.File))); err != nil {
					t.Errorf("route %s: module %s not written", r.ID, r.File)
				}
			}

			index, err := os.ReadFile(filepath.Join(dir, "src", "routes", "index.js"))
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(index), "<h1>shop</h1>") {
				t.Errorf("ProjectName not substituted:\n%s", index)
			}
		})
	}
}

func TestCreateKeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "routes", "index.js")
	if err := os.MkdirAll(filepath.Dir(existing), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(existing, []byte("mine"), 0644); err != nil {
		t.Fatal(err)
	}

	tmpl, _ := Get("minimal")
	written, err := tmpl.Create(dir, Config{ProjectName: "x", RoutesFile: "routes.json", Src: "routes"})
	if err != nil {
		t.Fatal(err)
	}

	for _, w := range written {
		if w == "routes/index.js" {
			t.Error("existing file reported as written")
		}
	}
	data, _ := os.ReadFile(existing)
	if string(data) != "mine" {
		t.Errorf("existing file overwritten: %q", data)
	}
}
