// Package urlbuilder fills upstream path templates and encodes query strings
// from caller-supplied parameters.
package urlbuilder

import (
	"net/url"
	"strings"

	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
)

// BuildPath substitutes every {key} placeholder in template that has a value in
// params. Values are escaped once as a path segment, so a value can neither add
// segments nor introduce new placeholders. Placeholders without a value are
// left in place for the upstream to reject.
func BuildPath(template string, params Params) string {
	if len(params) == 0 || !strings.Contains(template, "{") {
		return template
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			break
		}
		closing := strings.IndexByte(rest[open+1:], '}')
		if closing < 0 {
			break
		}
		closing += open + 1

		_, _ = buf.WriteString(rest[:open])
		key := rest[open+1 : closing]
		if value, ok := params.Get(key); ok {
			_, _ = buf.WriteString(url.PathEscape(value))
		} else {
			_, _ = buf.WriteString(rest[open : closing+1])
		}
		rest = rest[closing+1:]
	}
	_, _ = buf.WriteString(rest)

	return buf.String()
}

// BuildQuery encodes params as key=value pairs joined by '&' in input order.
func BuildQuery(params Params) string {
	if len(params) == 0 {
		return ""
	}

	args := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(args)

	for _, p := range params {
		args.Add(p.Key, p.Value)
	}
	return args.String()
}

// Placeholders lists the distinct {key} names of template in order of first use.
func Placeholders(template string) []string {
	var out []string
	seen := make(map[string]struct{})

	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			return out
		}
		closing := strings.IndexByte(rest[open+1:], '}')
		if closing < 0 {
			return out
		}
		key := rest[open+1 : open+1+closing]
		if _, ok := seen[key]; !ok && key != "" {
			seen[key] = struct{}{}
			out = append(out, key)
		}
		rest = rest[open+1+closing+1:]
	}
}

// Unfilled reports placeholders of template that params does not cover.
func Unfilled(template string, params Params) []string {
	var out []string
	for _, key := range Placeholders(template) {
		if _, ok := params.Get(key); !ok {
			out = append(out, key)
		}
	}
	return out
}
