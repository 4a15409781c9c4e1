package httpd

import (
	"strconv"
	"strings"
)

// Cookie builds one Set-Cookie value. It is not attached to a response
// automatically:
//
//	res.Header.Set("Set-Cookie", httpd.NewCookie("id", "7").WithPath("/").String())
type Cookie struct {
	Name     string
	Value    string
	Expires  string
	MaxAge   *int64
	Domain   string
	Path     string
	Secure   bool
	HTTPOnly bool
	SameSite string
}

func NewCookie(name, value string) *Cookie {
	return &Cookie{Name: name, Value: value}
}

func (c *Cookie) WithExpires(expires string) *Cookie { c.Expires = expires; return c }

func (c *Cookie) WithMaxAge(seconds int64) *Cookie { c.MaxAge = &seconds; return c }

func (c *Cookie) WithDomain(domain string) *Cookie { c.Domain = domain; return c }

func (c *Cookie) WithPath(path string) *Cookie { c.Path = path; return c }

func (c *Cookie) WithSecure(secure bool) *Cookie { c.Secure = secure; return c }

func (c *Cookie) WithHTTPOnly(httpOnly bool) *Cookie { c.HTTPOnly = httpOnly; return c }

func (c *Cookie) WithSameSite(sameSite string) *Cookie { c.SameSite = sameSite; return c }

func (c *Cookie) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteByte('=')
	b.WriteString(c.Value)
	if c.Expires != "" {
		b.WriteString("; Expires=" + c.Expires)
	}
	if c.MaxAge != nil {
		b.WriteString("; Max-Age=" + strconv.FormatInt(*c.MaxAge, 10))
	}
	if c.Domain != "" {
		b.WriteString("; Domain=" + c.Domain)
	}
	if c.Path != "" {
		b.WriteString("; Path=" + c.Path)
	}
	if c.SameSite != "" {
		b.WriteString("; SameSite=" + c.SameSite)
	}
	if c.Secure {
		b.WriteString("; Secure")
	}
	if c.HTTPOnly {
		b.WriteString("; HttpOnly")
	}
	return b.String()
}
