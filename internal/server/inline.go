package server

import (
	"context"
	"encoding/base64"

	"github.com/pidcanvas/pidcanvas/pkg/graph"
	"github.com/pidcanvas/pidcanvas/pkg/httputil"
)

// inlineVectorAssets fetches each node's vector asset and embeds it as a
// data URI image, so scenes are self-contained when exported or served to
// another origin. Transient fetch failures are retried; a fetch that still
// fails is logged and the node keeps its raster image. Repeated URLs
// within one graph are fetched once.
func (s *Server) inlineVectorAssets(ctx context.Context, g *graph.Graph) {
	fetched := map[string]string{}

	for i := range g.Nodes {
		n := &g.Nodes[i]
		if n.SVGURL == "" {
			continue
		}

		uri, ok := fetched[n.SVGURL]
		if !ok {
			var data []byte
			err := httputil.DefaultRetry.Do(ctx, func() error {
				var ferr error
				data, ferr = httputil.GetBody(ctx, nil, n.SVGURL)
				return ferr
			})
			if err != nil {
				s.logger.Warn("vector asset fetch failed, keeping raster image",
					"node", n.ID, "url", n.SVGURL, "err", err)
				fetched[n.SVGURL] = ""
				continue
			}
			uri = "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(data)
			fetched[n.SVGURL] = uri
		}
		if uri != "" {
			n.ImageURL = uri
		}
	}
}
