package symbols

import (
	"context"
	"path"

	"github.com/charmbracelet/log"
)

// Icon is a resolved node icon.
type Icon struct {
	// URL is the icon image location, or the fallback when Matched is false.
	URL string `json:"url"`
	// Symbol is the matched catalog name ("" when unmatched).
	Symbol string `json:"symbol,omitempty"`
	// Matched reports whether a confident catalog match was found.
	Matched bool `json:"matched"`
}

// Resolver turns node labels into icon URLs using a Matcher and a fixed
// image path template: <BaseURL>/<symbolName>.<Ext>.
type Resolver struct {
	matcher *Matcher
	logger  *log.Logger

	// BaseURL is the icons root, e.g. "/static/symbols".
	BaseURL string
	// Ext is the raster extension without dot, e.g. "png".
	Ext string
	// Fallback is the URL returned for unmatched labels. Empty means
	// "no icon": the renderer shows a plain node.
	Fallback string
}

// NewResolver creates a resolver over m with the given icons root.
// If logger is nil, the default logger is used.
func NewResolver(m *Matcher, baseURL, ext string, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.Default()
	}
	return &Resolver{
		matcher: m,
		logger:  logger,
		BaseURL: baseURL,
		Ext:     ext,
	}
}

// Resolve maps label to an icon. It ensures the catalog is loaded first;
// a failed load is logged and resolves to the fallback (rendering is
// best-effort, a missing catalog must not break the graph).
func (r *Resolver) Resolve(ctx context.Context, label string) Icon {
	if err := r.matcher.Catalog().Load(ctx); err != nil {
		r.logger.Warn("icon resolution without catalog", "label", label, "err", err)
		return Icon{URL: r.Fallback}
	}

	name, ok := r.matcher.FindBest(label)
	if !ok {
		r.logger.Debug("no confident symbol match", "label", label)
		return Icon{URL: r.Fallback}
	}

	return Icon{
		URL:     path.Join(r.BaseURL, name+"."+r.Ext),
		Symbol:  name,
		Matched: true,
	}
}
