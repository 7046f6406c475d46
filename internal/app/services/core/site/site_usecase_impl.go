package site

import (
	"context"
	"dentalclinic-service/internal/app/models"
	"dentalclinic-service/internal/pkg/dto/responses"
	"dentalclinic-service/internal/pkg/exceptions"
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed content/site.yaml
var defaultSiteContent []byte

type siteUsecase struct {
	content models.SiteContent
}

// NewSiteUsecase decodes the YAML site document once. An empty document falls
// back to the embedded default.
func NewSiteUsecase(document []byte) (SiteUsecase, error) {
	if len(document) == 0 {
		document = defaultSiteContent
	}

	var content models.SiteContent
	if err := yaml.Unmarshal(document, &content); err != nil {
		return nil, exceptions.ErrParseSiteContent(err)
	}

	return &siteUsecase{content: content}, nil
}

func (uc *siteUsecase) GetContent(ctx context.Context) (*responses.SiteContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	response := uc.content.ConvertToSiteContentResponse()
	return &response, nil
}
