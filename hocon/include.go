package hocon

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/yosida95/uritemplate/v3"
	"golang.org/x/oauth2"

	"github.com/erraggy/laika"
)

// IncludeLoader loads the raw HOCON (or JSON, which is a HOCON subset)
// text for an include resource. Grounded on the teacher's
// parser.RefResolver, which dispatches $ref resolution across an
// HTTPFetcher plus local baseDir/baseURL lookup; here the same shape
// generalizes to HOCON's file/classpath/url/heuristic include kinds.
type IncludeLoader interface {
	// Load returns the raw document text for resource, or an error if it
	// cannot be found or fetched.
	Load(ctx context.Context, resource IncludeResource) (string, error)
}

// FileIncludeLoader resolves "file(...)" (and unqualified, file-shaped)
// includes relative to BaseDir.
type FileIncludeLoader struct {
	BaseDir string
}

func (l FileIncludeLoader) Load(_ context.Context, resource IncludeResource) (string, error) {
	path := resource.Location
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.BaseDir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("hocon: file include %q: %w", resource.Location, err)
	}
	return string(data), nil
}

// ClasspathIncludeLoader resolves "classpath(...)" includes by searching
// an ordered list of root directories, mirroring a JVM classpath lookup
// without requiring an actual JVM.
type ClasspathIncludeLoader struct {
	Roots []string
}

func (l ClasspathIncludeLoader) Load(_ context.Context, resource IncludeResource) (string, error) {
	for _, root := range l.Roots {
		path := filepath.Join(root, resource.Location)
		data, err := os.ReadFile(path)
		if err == nil {
			return string(data), nil
		}
	}
	return "", fmt.Errorf("hocon: classpath include %q not found in %d root(s)", resource.Location, len(l.Roots))
}

// URLIncludeLoader resolves "url(...)" includes over HTTP(S). Location may
// be a URI template (RFC 6570): its variables are expanded against Vars
// before the request is made, letting a single include directive describe
// a family of environment-specific URLs. When TokenSource is set, requests
// carry an OAuth2 bearer token.
type URLIncludeLoader struct {
	Client      *http.Client
	Vars        map[string]any
	TokenSource oauth2.TokenSource
}

func (l URLIncludeLoader) Load(ctx context.Context, resource IncludeResource) (string, error) {
	location := resource.Location
	if strings.ContainsAny(location, "{}") {
		tmpl, err := uritemplate.New(location)
		if err != nil {
			return "", fmt.Errorf("hocon: url include template %q: %w", location, err)
		}
		values := uritemplate.Values{}
		for k, v := range l.Vars {
			values[k] = uritemplate.String(fmt.Sprint(v))
		}
		location = tmpl.Expand(values)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return "", fmt.Errorf("hocon: url include %q: %w", location, err)
	}
	req.Header.Set("User-Agent", laika.UserAgent())

	client := l.Client
	if l.TokenSource != nil {
		client = oauth2.NewClient(ctx, l.TokenSource)
	}
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("hocon: url include %q: %w", location, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("hocon: url include %q: status %d", location, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("hocon: url include %q: reading body: %w", location, err)
	}
	return string(body), nil
}

// AnyIncludeLoader implements the heuristic, unqualified `include "foo"`
// form: it tries URL (if the location looks like one), then classpath,
// then file, in that order, succeeding on the first loader that finds the
// resource.
type AnyIncludeLoader struct {
	URL       URLIncludeLoader
	Classpath ClasspathIncludeLoader
	File      FileIncludeLoader
}

func (l AnyIncludeLoader) Load(ctx context.Context, resource IncludeResource) (string, error) {
	if looksLikeURL(resource.Location) {
		if text, err := l.URL.Load(ctx, resource); err == nil {
			return text, nil
		}
	}
	if text, err := l.Classpath.Load(ctx, resource); err == nil {
		return text, nil
	}
	return l.File.Load(ctx, resource)
}

func looksLikeURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// loaderFor selects the loader appropriate to resource.Kind from a
// Resolver's configured set.
func (r *Resolver) loaderFor(resource IncludeResource) IncludeLoader {
	switch resource.Kind {
	case "file":
		return r.opts.FileLoader
	case "classpath":
		return r.opts.ClasspathLoader
	case "url":
		return r.opts.URLLoader
	default:
		return r.opts.AnyLoader
	}
}
