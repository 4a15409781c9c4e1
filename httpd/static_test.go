package httpd

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestServeStatic_Index(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "index.html"), "<h1>home</h1>")
	writeFile(t, filepath.Join(root, "docs", "index.html"), "<h1>docs</h1>")

	for residual, want := range map[string]string{"": "<h1>home</h1>", "/": "<h1>home</h1>", "/docs/": "<h1>docs</h1>"} {
		res := ServeStatic(root, residual)
		if res.StatusCode != 200 {
			t.Fatalf("%q: status=%d", residual, res.StatusCode)
		}
		if string(res.Body) != want {
			t.Fatalf("%q: body=%q", residual, res.Body)
		}
		if ct := res.Header.Get("Content-Type"); ct != "text/html" {
			t.Fatalf("%q: Content-Type=%q", residual, ct)
		}
		if cl := res.Header.Get("Content-Length"); cl != "13" {
			t.Fatalf("%q: Content-Length=%q", residual, cl)
		}
	}
}

func TestServeStatic_FileAndMime(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "css", "site.css"), "body{}")
	writeFile(t, filepath.Join(root, "my file.bin"), "\x00\x01")

	res := ServeStatic(root, "/css/site.css")
	if res.StatusCode != 200 || res.Header.Get("Content-Type") != "text/css" || string(res.Body) != "body{}" {
		t.Fatalf("res=%d %v %q", res.StatusCode, res.Header, res.Body)
	}
	res = ServeStatic(root, "/my%20file.bin")
	if res.StatusCode != 200 || res.Header.Get("Content-Type") != "application/octet-stream" {
		t.Fatalf("escaped name: %d %v", res.StatusCode, res.Header)
	}
}

func TestServeStatic_NotFound(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sub", "a.txt"), "a")
	for _, residual := range []string{"/missing.txt", "/sub", "/nothing/"} {
		res := ServeStatic(root, residual)
		if res.StatusCode != 404 || string(res.Body) != notFoundBody {
			t.Fatalf("%q: status=%d body=%q", residual, res.StatusCode, res.Body)
		}
	}
}

func TestServeStatic_RejectsTraversal(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "public")
	writeFile(t, filepath.Join(root, "ok.txt"), "ok")
	writeFile(t, filepath.Join(parent, "secret.txt"), "secret")

	for _, residual := range []string{
		"/../secret.txt",
		"/sub/../../secret.txt",
		"/%2e%2e/secret.txt",
		"/..%2fsecret.txt",
		"/..\\secret.txt",
		"/ok.txt%00",
	} {
		res := ServeStatic(root, residual)
		if res.StatusCode != 404 {
			t.Fatalf("%q: status=%d body=%q", residual, res.StatusCode, res.Body)
		}
	}
}

func TestFileResponse(t *testing.T) {
	root := t.TempDir()
	p := filepath.Join(root, "data.json")
	writeFile(t, p, `{"a":1}`)
	res := File(201, p)
	if res.StatusCode != 201 || res.Header.Get("Content-Type") != "application/json" || string(res.Body) != `{"a":1}` {
		t.Fatalf("res=%d %v %q", res.StatusCode, res.Header, res.Body)
	}
	if res := File(200, filepath.Join(root, "nope")); res.StatusCode != 404 {
		t.Fatalf("missing file status=%d", res.StatusCode)
	}
}
