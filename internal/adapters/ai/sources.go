package ai

import (
	"strings"

	"github.com/baatie/controllerpro/internal/core/domain"
)

const sourcePrefix = "SOURCE:"

// splitSources separates answer text from the trailing SOURCE lines the
// research prompt asks for. Responses without source lines come back with
// an empty citation list.
func splitSources(content string) (string, []domain.Citation) {
	var textLines []string
	var sources []domain.Citation

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, sourcePrefix) {
			textLines = append(textLines, line)
			continue
		}
		rest := strings.TrimSpace(strings.TrimPrefix(trimmed, sourcePrefix))
		if rest == "" {
			continue
		}
		uri, title, found := strings.Cut(rest, " ")
		if !found {
			title = uri
		}
		sources = append(sources, domain.Citation{
			URI:   uri,
			Title: strings.TrimSpace(title),
		})
	}

	return strings.TrimSpace(strings.Join(textLines, "\n")), sources
}
