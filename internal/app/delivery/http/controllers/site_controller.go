package controllers

import (
	"dentalclinic-service/internal/app/config"
	"dentalclinic-service/internal/app/services/core/site"
	"dentalclinic-service/internal/pkg/constvars"
	"dentalclinic-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type SiteController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	SiteUsecase    site.SiteUsecase
}

func NewSiteController(logger *zap.Logger, internalConfig *config.InternalConfig, siteUsecase site.SiteUsecase) *SiteController {
	return &SiteController{
		Log:            logger,
		InternalConfig: internalConfig,
		SiteUsecase:    siteUsecase,
	}
}

func (ctrl *SiteController) GetContent(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromContext(r)

	ctx, cancel := withRequestTimeout(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	response, err := ctrl.SiteUsecase.GetContent(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, requestID, "SiteUsecase.GetContent", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSiteContentSuccessMessage, response)
}

func (ctrl *SiteController) Healthz(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseOK, nil)
}
