package controllers

import (
	"context"
	"dentalclinic-service/internal/app/config"
	"dentalclinic-service/internal/app/delivery/http/views"
	"dentalclinic-service/internal/app/services/core/billings"
	"dentalclinic-service/internal/app/services/core/records"
	"dentalclinic-service/internal/app/services/core/site"
	"dentalclinic-service/internal/pkg/constvars"
	"dentalclinic-service/internal/pkg/exceptions"
	"dentalclinic-service/internal/pkg/utils"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

const (
	PathHome           = "/"
	PathOwnerBilling   = "/owner/billing"
	PathPatientRecords = "/patient/records"
)

type PageController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	Renderer       *views.Renderer
	SiteUsecase    site.SiteUsecase
	BillingUsecase billings.BillingUsecase
	RecordUsecase  records.RecordUsecase
}

func NewPageController(
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	renderer *views.Renderer,
	siteUsecase site.SiteUsecase,
	billingUsecase billings.BillingUsecase,
	recordUsecase records.RecordUsecase,
) *PageController {
	return &PageController{
		Log:            logger,
		InternalConfig: internalConfig,
		Renderer:       renderer,
		SiteUsecase:    siteUsecase,
		BillingUsecase: billingUsecase,
		RecordUsecase:  recordUsecase,
	}
}

func (ctrl *PageController) Home(w http.ResponseWriter, r *http.Request) {
	ctrl.servePage(w, r, constvars.PageHome, func(ctx context.Context, data *views.PageData) error {
		data.Title = "Home"
		data.Description = data.Site.Tagline
		return nil
	})
}

func (ctrl *PageController) OwnerBilling(w http.ResponseWriter, r *http.Request) {
	ctrl.servePage(w, r, constvars.PageOwnerBilling, func(ctx context.Context, data *views.PageData) error {
		list, err := ctrl.BillingUsecase.ListBillings(ctx)
		if err != nil {
			return err
		}
		data.Title = "Billing Dashboard"
		data.List = list
		data.ExportLinks = ctrl.exportLinks(constvars.ResourceBillings)
		return nil
	})
}

func (ctrl *PageController) PatientRecords(w http.ResponseWriter, r *http.Request) {
	ctrl.servePage(w, r, constvars.PagePatientRecords, func(ctx context.Context, data *views.PageData) error {
		list, err := ctrl.RecordUsecase.ListClinicalVisits(ctx)
		if err != nil {
			return err
		}
		data.Title = "My Dental Records"
		data.List = list
		data.ExportLinks = ctrl.exportLinks(constvars.ResourceRecords)
		return nil
	})
}

func (ctrl *PageController) servePage(w http.ResponseWriter, r *http.Request, page string, fill func(ctx context.Context, data *views.PageData) error) {
	requestID := requestIDFromContext(r)
	ctrl.Log.Info("PageController called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPageKey, page))

	ctx, cancel := withRequestTimeout(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	content, err := ctrl.SiteUsecase.GetContent(ctx)
	if err != nil {
		if ctx.Err() == nil {
			err = exceptions.ErrLoadSiteContent(err)
		}
		ctrl.writePageError(w, requestID, err)
		return
	}

	data := views.PageData{
		Site: content,
		Nav:  navLinks(r.URL.Path),
	}
	if err := fill(ctx, &data); err != nil {
		ctrl.writePageError(w, requestID, err)
		return
	}

	body, err := ctrl.Renderer.Render(page, data)
	if err != nil {
		ctrl.writePageError(w, requestID, exceptions.ErrRenderPage(err, page))
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.WriteHeader(constvars.StatusOK)
	w.Write(body)
}

func (ctrl *PageController) writePageError(w http.ResponseWriter, requestID string, err error) {
	ctrl.Log.Error("PageController failed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err))
	utils.BuildHTMLErrorResponse(ctrl.Log, w, asUsecaseError(err))
}

func (ctrl *PageController) exportLinks(resource string) []views.ExportLink {
	formats := []struct {
		label  string
		format string
	}{
		{"Export CSV", constvars.ExportFormatCSV},
		{"Export JSON", constvars.ExportFormatJSON},
		{"Export Text", constvars.ExportFormatText},
	}

	links := make([]views.ExportLink, 0, len(formats))
	for _, each := range formats {
		links = append(links, views.ExportLink{
			Label: each.label,
			Href: fmt.Sprintf("/%s/%s/%s/export?%s=%s",
				ctrl.InternalConfig.App.EndpointPrefix,
				ctrl.InternalConfig.App.Version,
				resource,
				constvars.URLQueryParamFormat,
				each.format,
			),
		})
	}
	return links
}

func navLinks(currentPath string) []views.NavLink {
	links := []views.NavLink{
		{Label: "Home", Href: PathHome},
		{Label: "Owner Billing", Href: PathOwnerBilling},
		{Label: "Patient Records", Href: PathPatientRecords},
	}
	for i := range links {
		links[i].Active = links[i].Href == currentPath
	}
	return links
}
