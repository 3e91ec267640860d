package registry

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vango-dev/termkit/internal/errors"
)

func newTestServer(t *testing.T, p Provider) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewHandler(p, nil))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPSource_RoundTrip(t *testing.T) {
	srv := newTestServer(t, Embedded())
	ctx := context.Background()

	remote := New(NewHTTPSource(srv.URL+"/manifest.json", srv.Client()), nil)
	local := Embedded()

	m, err := remote.Catalog(ctx)
	if err != nil {
		t.Fatalf("Catalog() error = %v", err)
	}
	want, _ := local.Catalog(ctx)
	if len(m.Components) != len(want.Components) {
		t.Fatalf("got %d components, want %d", len(m.Components), len(want.Components))
	}

	d, err := remote.Lookup(ctx, "spinner")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	got, err := remote.Fetch(ctx, d)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	expected, _ := local.Fetch(ctx, d)
	for file, content := range expected {
		if string(got[file]) != string(content) {
			t.Errorf("%s differs between HTTP and embedded registry", file)
		}
	}
}

func TestHTTPSource_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	reg := New(NewHTTPSource(srv.URL, srv.Client()), nil)
	_, err := reg.Catalog(context.Background())
	if !errors.HasCode(err, "E111") {
		t.Errorf("Catalog() error = %v, want E111", err)
	}
}

func TestHTTPSource_MissingFile(t *testing.T) {
	mem := NewMemory()
	mem.Set(Descriptor{Name: "badge", Version: "1", Files: []string{"badge.go"}},
		map[string]string{"badge.go": "package badge\n"})
	srv := newTestServer(t, mem)

	reg := New(NewHTTPSource(srv.URL+"/", srv.Client()), nil)
	_, err := reg.Fetch(context.Background(), &Descriptor{
		Name:    "badge",
		Version: "1",
		Files:   []string{"other.go"},
	})
	if !errors.HasCode(err, "E112") {
		t.Errorf("Fetch() error = %v, want E112", err)
	}
}

func TestHandler(t *testing.T) {
	mem := NewMemory()
	mem.Set(Descriptor{Name: "badge", Version: "3", Files: []string{"badge.go"}},
		map[string]string{"badge.go": "package badge\n"})
	srv := newTestServer(t, mem)

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/healthz", http.StatusOK, "ok"},
		{"/components/badge/badge.go", http.StatusOK, "package badge\n"},
		{"/components/badge/other.go", http.StatusNotFound, ""},
		{"/components/nope/x.go", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := srv.Client().Get(srv.URL + tt.path)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if tt.wantBody != "" {
				body, _ := io.ReadAll(resp.Body)
				if string(body) != tt.wantBody {
					t.Errorf("body = %q, want %q", body, tt.wantBody)
				}
			}
		})
	}
}
