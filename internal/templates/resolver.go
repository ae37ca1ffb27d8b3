// Package templates decides which binary template a render uses. Resolution
// walks three independent tiers: the user's custom template, the deployed
// default asset, then an embedded last-resort copy.
package templates

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/jonathan/mission-reporter/internal/codec"
	"github.com/jonathan/mission-reporter/internal/fetch"
	"github.com/jonathan/mission-reporter/internal/types"
)

// DefaultAssetPath is the well-known relative path of the deployed default
// template, resolved against the configured base URL.
const DefaultAssetPath = "templates/default.docx"

// minAssetSize is the smallest plausible template payload. Anything at or
// below this is treated as a misbehaving static host, not a real archive.
const minAssetSize = 100

var zipMagic = []byte{'P', 'K', 0x03, 0x04}

// TemplateUnavailableError reports that no template tier could produce bytes.
// With a valid embedded constant this is a construction-time condition only.
type TemplateUnavailableError struct {
	Message string
	Cause   error
}

func (e *TemplateUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template unavailable: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template unavailable: %s", e.Message)
}

func (e *TemplateUnavailableError) Unwrap() error {
	return e.Cause
}

// AssetFetcher retrieves the deployed default template asset. It exists so the
// resolver can be exercised without a network.
type AssetFetcher interface {
	FetchAsset(ctx context.Context, url string) (*fetch.Result, error)
}

// AssetFetcherFunc adapts a function to the AssetFetcher interface.
type AssetFetcherFunc func(ctx context.Context, url string) (*fetch.Result, error)

// FetchAsset calls f.
func (f AssetFetcherFunc) FetchAsset(ctx context.Context, url string) (*fetch.Result, error) {
	return f(ctx, url)
}

// Resolver guarantees a usable template for every render. Resolve never fails:
// each tier absorbs its own errors and falls through to the next.
type Resolver struct {
	baseURL  string
	fetcher  AssetFetcher
	embedded []byte

	group singleflight.Group
	mu    sync.Mutex
	// cachedDefault holds a successfully fetched default asset for the
	// process lifetime; offline-first means one good fetch serves all renders.
	cachedDefault []byte
}

// NewResolver builds a Resolver. The embedded fallback constant is decoded and
// opened as an archive here so a corrupt build fails at construction time, not
// on first render. baseURL may be empty, which disables the fetched tier.
func NewResolver(baseURL string, fetcher AssetFetcher) (*Resolver, error) {
	embedded, err := codec.Decode(embeddedTemplateBase64)
	if err != nil {
		return nil, &TemplateUnavailableError{
			Message: "embedded template does not decode",
			Cause:   err,
		}
	}
	if _, err := zip.NewReader(bytes.NewReader(embedded), int64(len(embedded))); err != nil {
		return nil, &TemplateUnavailableError{
			Message: "embedded template is not a valid archive",
			Cause:   err,
		}
	}

	if fetcher == nil {
		fetcher = AssetFetcherFunc(func(ctx context.Context, url string) (*fetch.Result, error) {
			return fetch.Asset(ctx, url, nil)
		})
	}

	return &Resolver{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		fetcher:  fetcher,
		embedded: embedded,
	}, nil
}

// Resolve returns the template bytes for the given configuration. It always
// succeeds: a corrupt custom template or an unreachable default asset falls
// through to the next tier, ending at the embedded copy.
func (r *Resolver) Resolve(ctx context.Context, cfg types.ExportConfiguration) []byte {
	// Tier 1: the user's selected custom template.
	if cfg.ActiveTemplateID != "" && cfg.ActiveTemplateID != types.DefaultTemplateID {
		if desc, ok := cfg.FindTemplate(cfg.ActiveTemplateID); ok {
			if data, err := codec.Decode(desc.Data); err == nil {
				return data
			}
		}
	}

	// Tier 2: the deployed default asset.
	if data, ok := r.fetchDefault(ctx); ok {
		return data
	}

	// Tier 3: the embedded copy, validated at construction.
	return r.Embedded()
}

// Embedded returns a copy of the embedded last-resort template.
func (r *Resolver) Embedded() []byte {
	out := make([]byte, len(r.embedded))
	copy(out, r.embedded)
	return out
}

// CheckDefaultAsset fetches and validates the deployed default asset once,
// bypassing the cache. It returns the asset size, or the reason the fetched
// tier would fall through. Used for diagnostics, never by renders.
func (r *Resolver) CheckDefaultAsset(ctx context.Context) (int, error) {
	if r.baseURL == "" {
		return 0, fmt.Errorf("no base URL configured")
	}
	result, err := r.fetcher.FetchAsset(ctx, r.baseURL+"/"+DefaultAssetPath)
	if err != nil {
		return 0, err
	}
	if err := validateAsset(result); err != nil {
		return 0, err
	}
	return len(result.Body), nil
}

// fetchDefault fetches and validates the deployed default template, caching a
// success. Concurrent callers share one in-flight fetch.
func (r *Resolver) fetchDefault(ctx context.Context) ([]byte, bool) {
	if r.baseURL == "" {
		return nil, false
	}

	r.mu.Lock()
	cached := r.cachedDefault
	r.mu.Unlock()
	if cached != nil {
		return cached, true
	}

	url := r.baseURL + "/" + DefaultAssetPath
	v, err, _ := r.group.Do(url, func() (any, error) {
		result, err := r.fetcher.FetchAsset(ctx, url)
		if err != nil {
			return nil, err
		}
		if err := validateAsset(result); err != nil {
			return nil, err
		}
		return result.Body, nil
	})
	if err != nil {
		return nil, false
	}

	data := v.([]byte)
	r.mu.Lock()
	r.cachedDefault = data
	r.mu.Unlock()
	return data, true
}

// validateAsset rejects responses that are not plausibly the real template.
// A single-page-app deployment will happily answer any path with its HTML
// shell and a 200, so the status code alone proves nothing.
func validateAsset(result *fetch.Result) error {
	if result.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected HTTP status %d", result.StatusCode)
	}
	if strings.Contains(strings.ToLower(result.ContentType), "text/html") {
		return fmt.Errorf("asset served as HTML (%s)", result.ContentType)
	}
	if len(result.Body) <= minAssetSize {
		return fmt.Errorf("asset implausibly small (%d bytes)", len(result.Body))
	}
	if !bytes.HasPrefix(result.Body, zipMagic) {
		return fmt.Errorf("asset is not an archive")
	}
	return nil
}
