package httpd_test

import (
	"fmt"

	"dqx0.com/go/surfer/httpd"
)

// ExampleHeader shows that a header holds one value per name.
func ExampleHeader() {
	h := httpd.Header{}
	h.Set("X-Foo", "a")
	h.Set("x-foo", "b") // replaces the other case variant
	fmt.Println(h.Get("X-FOO"))
	fmt.Println(len(h))
	h.Del("X-Foo")
	fmt.Println(h.Get("x-foo") == "")
	// Output:
	// b
	// 1
	// true
}

// ExampleCookie attaches a cookie explicitly; responses never do it on their own.
func ExampleCookie() {
	res := httpd.Text(200, "welcome")
	c := httpd.NewCookie("session", "42").WithPath("/").WithHTTPOnly(true).WithSameSite("Lax")
	res.Header.Set("Set-Cookie", c.String())
	fmt.Println(res.Header.Get("Set-Cookie"))
	// Output:
	// session=42; Path=/; SameSite=Lax; HttpOnly
}

// ExampleRouter shows exact-match routes taking priority over static mappings.
func ExampleRouter() {
	rt := httpd.NewRouter()
	rt.HandleFunc("GET", "/", func(*httpd.Request) *httpd.Response { return httpd.Text(200, "root") })
	rt.Static("/assets", "public")

	_, ok := rt.Lookup("GET", "/?utm=1")
	fmt.Println(ok)
	m, residual, ok := rt.MatchStatic("GET", "/assets/css/site.css?v=2")
	fmt.Println(m.Root, residual, ok)
	_, ok = rt.Lookup("GET", "/assets/css/site.css")
	fmt.Println(ok)
	// Output:
	// true
	// public /css/site.css true
	// false
}

// ExampleJSON builds the JSON response the example binary serves on GET /.
func ExampleJSON() {
	res, err := httpd.JSON(200, map[string]string{"message": "Hello, Surfer!"})
	if err != nil {
		panic(err)
	}
	fmt.Println(res.StatusCode, res.Header.Get("Content-Type"), res.Header.Get("Content-Length"))
	fmt.Println(string(res.Body))
	// Output:
	// 200 application/json 28
	// {"message":"Hello, Surfer!"}
}
