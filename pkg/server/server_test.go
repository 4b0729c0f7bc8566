package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pulse-ui/pulse/internal/config"
	"github.com/pulse-ui/pulse/pkg/dom"
	"github.com/pulse-ui/pulse/pkg/mount"
	"github.com/pulse-ui/pulse/pkg/stream"
)

func counterView(ctl *mount.Ctl) mount.Modifier {
	n := stream.NewSource(0)
	return mount.El("div",
		mount.Attr("class", "counter"),
		mount.El("span", mount.BindText(stream.Map(n, func(v int) string {
			return "count: " + itoa(v)
		}))),
		mount.El("button",
			mount.Text("+"),
			mount.On("click", func(dom.Event) {
				n.Update(func(v int) int { return v + 1 })
			}),
		),
	)
}

func itoa(v int) string {
	digits := "0123456789"
	if v == 0 {
		return "0"
	}
	out := ""
	for v > 0 {
		out = string(digits[v%10]) + out
		v /= 10
	}
	return out
}

func testConfig() *config.Config {
	cfg := config.New()
	cfg.Name = "test-app"
	cfg.Metrics.Enabled = false
	cfg.Static.Dir = ""
	return cfg
}

func TestPageRender(t *testing.T) {
	srv := New(testConfig(), counterView)
	defer srv.Shutdown()

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	html := string(body)
	for _, want := range []string{
		`<div id="app">`,
		`count: 0`,
		`<title>test-app</title>`,
		`/_pulse/client.js`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q:\n%s", want, html)
		}
	}
}

func TestPageRenderIsStateless(t *testing.T) {
	srv := New(testConfig(), counterView)
	defer srv.Shutdown()

	// Page renders must not leak sessions.
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	for i := 0; i < 3; i++ {
		resp, err := http.Get(ts.URL + "/")
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
	}
	if n := srv.Sessions().Len(); n != 0 {
		t.Errorf("page renders created %d sessions", n)
	}
}

func TestServeClient(t *testing.T) {
	srv := New(testConfig(), counterView)
	defer srv.Shutdown()

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/_pulse/client.js")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/javascript") {
		t.Errorf("Content-Type = %q", ct)
	}
	etag := resp.Header.Get("ETag")
	if etag == "" {
		t.Fatal("no ETag")
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/_pulse/client.js", nil)
	req.Header.Set("If-None-Match", etag)
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp2.Body.Close()
	if resp2.StatusCode != http.StatusNotModified {
		t.Errorf("conditional request status = %d, want 304", resp2.StatusCode)
	}
}

func TestCheckOrigin(t *testing.T) {
	cfg := testConfig()
	cfg.Server.AllowedOrigins = []string{"https://trusted.example"}
	srv := New(cfg, counterView)
	defer srv.Shutdown()

	cases := []struct {
		name   string
		origin string
		host   string
		want   bool
	}{
		{"no origin", "", "app.local", true},
		{"same host", "https://app.local", "app.local", true},
		{"allowed origin", "https://trusted.example", "app.local", true},
		{"foreign origin", "https://evil.example", "app.local", false},
		{"malformed origin", "::bad::", "app.local", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/_pulse/ws", nil)
			r.Host = tc.host
			if tc.origin != "" {
				r.Header.Set("Origin", tc.origin)
			}
			if got := srv.checkOrigin(r); got != tc.want {
				t.Errorf("checkOrigin = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCheckOriginWildcard(t *testing.T) {
	cfg := testConfig()
	cfg.Server.AllowedOrigins = []string{"*"}
	srv := New(cfg, counterView)
	defer srv.Shutdown()

	r := httptest.NewRequest(http.MethodGet, "/_pulse/ws", nil)
	r.Host = "app.local"
	r.Header.Set("Origin", "https://anywhere.example")
	if !srv.checkOrigin(r) {
		t.Error("wildcard should allow any origin")
	}
}
