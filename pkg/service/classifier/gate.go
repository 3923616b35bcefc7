package classifier

import (
	"path"
	"strings"

	"github.com/breedsense/breedsense/pkg/domain/model/config"
)

// Gate is the heuristic that stands in for real image recognition: an upload
// is accepted only when its MIME type and extension look like an image and
// its filename mentions a cattle term.
type Gate struct {
	contentTypes map[string]struct{}
	extensions   map[string]struct{}
	keywords     []string
}

// NewGate builds the acceptance predicate from the classifier configuration
func NewGate(cfg *config.ClassifierConfig) *Gate {
	g := &Gate{
		contentTypes: make(map[string]struct{}, len(cfg.AllowedContentTypes)),
		extensions:   make(map[string]struct{}, len(cfg.AllowedExtensions)),
		keywords:     cfg.Keywords,
	}
	for _, ct := range cfg.AllowedContentTypes {
		g.contentTypes[strings.ToLower(ct)] = struct{}{}
	}
	for _, ext := range cfg.AllowedExtensions {
		g.extensions[strings.ToLower(ext)] = struct{}{}
	}
	return g
}

// Accept reports whether the upload passes the heuristic. It is a pure
// function over (filename, contentType). Uploads without a filename are
// rejected unconditionally: there is nothing to apply the keyword heuristic
// to, so the gate stays conservative.
func (g *Gate) Accept(filename, contentType string) bool {
	if contentType == "" {
		return false
	}
	if _, ok := g.contentTypes[strings.ToLower(contentType)]; !ok {
		return false
	}

	if filename != "" {
		ext := strings.ToLower(path.Ext(filename))
		if _, ok := g.extensions[ext]; !ok {
			return false
		}
		name := strings.ToLower(filename)
		for _, kw := range g.keywords {
			if strings.Contains(name, kw) {
				return true
			}
		}
	}

	return false
}
