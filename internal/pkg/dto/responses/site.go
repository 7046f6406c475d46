package responses

type SiteContent struct {
	ClinicName string         `json:"clinic_name"`
	Tagline    string         `json:"tagline"`
	Hero       SiteHero       `json:"hero"`
	Services   []SiteService  `json:"services"`
	About      string         `json:"about"`
	Contacts   []SiteContact  `json:"contacts"`
	Locations  []SiteLocation `json:"locations"`
	Footer     string         `json:"footer"`
}

type SiteHero struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	CallToLabel string `json:"call_to_label"`
	CallToHref  string `json:"call_to_href"`
}

type SiteService struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type SiteContact struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Href  string `json:"href,omitempty"`
}

type SiteLocation struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Hours    string `json:"hours"`
	Phone    string `json:"phone"`
	MapEmbed string `json:"map_embed"`
}
