package models

import "dentalclinic-service/internal/pkg/dto/responses"

type (
	SiteContent struct {
		ClinicName string         `yaml:"clinic_name"`
		Tagline    string         `yaml:"tagline"`
		Hero       SiteHero       `yaml:"hero"`
		Services   []SiteService  `yaml:"services"`
		About      string         `yaml:"about"`
		Contacts   []SiteContact  `yaml:"contacts"`
		Locations  []SiteLocation `yaml:"locations"`
		Footer     string         `yaml:"footer"`
	}

	SiteHero struct {
		Title       string `yaml:"title"`
		Subtitle    string `yaml:"subtitle"`
		CallToLabel string `yaml:"call_to_label"`
		CallToHref  string `yaml:"call_to_href"`
	}

	SiteService struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
	}

	SiteContact struct {
		Label string `yaml:"label"`
		Value string `yaml:"value"`
		Href  string `yaml:"href"`
	}

	SiteLocation struct {
		Name     string `yaml:"name"`
		Address  string `yaml:"address"`
		Hours    string `yaml:"hours"`
		Phone    string `yaml:"phone"`
		MapEmbed string `yaml:"map_embed"`
	}
)

func (s SiteContent) ConvertToSiteContentResponse() responses.SiteContent {
	services := make([]responses.SiteService, len(s.Services))
	for i, eachService := range s.Services {
		services[i] = responses.SiteService{
			Name:        eachService.Name,
			Description: eachService.Description,
		}
	}

	contacts := make([]responses.SiteContact, len(s.Contacts))
	for i, eachContact := range s.Contacts {
		contacts[i] = responses.SiteContact{
			Label: eachContact.Label,
			Value: eachContact.Value,
			Href:  eachContact.Href,
		}
	}

	locations := make([]responses.SiteLocation, len(s.Locations))
	for i, eachLocation := range s.Locations {
		locations[i] = responses.SiteLocation{
			Name:     eachLocation.Name,
			Address:  eachLocation.Address,
			Hours:    eachLocation.Hours,
			Phone:    eachLocation.Phone,
			MapEmbed: eachLocation.MapEmbed,
		}
	}

	return responses.SiteContent{
		ClinicName: s.ClinicName,
		Tagline:    s.Tagline,
		Hero: responses.SiteHero{
			Title:       s.Hero.Title,
			Subtitle:    s.Hero.Subtitle,
			CallToLabel: s.Hero.CallToLabel,
			CallToHref:  s.Hero.CallToHref,
		},
		Services:  services,
		About:     s.About,
		Contacts:  contacts,
		Locations: locations,
		Footer:    s.Footer,
	}
}
