package site

import (
	"context"
	"dentalclinic-service/internal/pkg/dto/responses"
)

type SiteUsecase interface {
	GetContent(ctx context.Context) (*responses.SiteContent, error)
}
