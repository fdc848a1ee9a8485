// Package assets resolves raw stored asset references into display URLs.
package assets

import (
	"strings"

	"studyhub/config"
	"studyhub/internal/domain/service"
)

// studyImageURLBuilder prefixes raw study image references with the public
// asset base URL from configuration.
type studyImageURLBuilder struct {
	baseURL string
}

// NewStudyImageURLBuilder is the constructor for studyImageURLBuilder.
func NewStudyImageURLBuilder(cfg *config.Config) service.StudyImageURLBuilder {
	baseURL := ""
	if cfg.Assets != nil {
		baseURL = strings.TrimRight(cfg.Assets.StudyImageBaseURL, "/")
	}

	return &studyImageURLBuilder{baseURL: baseURL}
}

// StudyImageURL builds the absolute display URL for a stored reference.
// References that are already absolute pass through untouched.
func (b *studyImageURLBuilder) StudyImageURL(ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}

	return b.baseURL + "/" + strings.TrimLeft(ref, "/")
}
