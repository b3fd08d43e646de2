package entity

import (
	_ "embed"
	"encoding/json"
	"time"
)

//go:embed defaults/private_charters.json
var privateChartersDefaults []byte

type HeroSlide struct {
	ID      string `bson:"id" json:"id"`
	Image   string `bson:"image" json:"image"`
	Caption string `bson:"caption" json:"caption"`
	Tag     string `bson:"tag,omitempty" json:"tag,omitempty"`
}

type MicroFormField struct {
	ID           string   `bson:"id" json:"id"`
	Label        string   `bson:"label" json:"label"`
	Type         string   `bson:"type" json:"type"`
	Placeholder  string   `bson:"placeholder,omitempty" json:"placeholder,omitempty"`
	Options      []string `bson:"options,omitempty" json:"options,omitempty"`
	DefaultValue string   `bson:"defaultValue,omitempty" json:"defaultValue,omitempty"`
}

type MicroForm struct {
	Heading        string           `bson:"heading" json:"heading"`
	Subheading     string           `bson:"subheading" json:"subheading"`
	SubmitLabel    string           `bson:"submitLabel" json:"submitLabel"`
	SuccessMessage string           `bson:"successMessage" json:"successMessage"`
	Fields         []MicroFormField `bson:"fields" json:"fields"`
}

type CharterHero struct {
	Badge       string      `bson:"badge" json:"badge"`
	Title       string      `bson:"title" json:"title"`
	Subtitle    string      `bson:"subtitle" json:"subtitle"`
	CTAText     string      `bson:"ctaText" json:"ctaText"`
	VideoURL    string      `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	VideoPoster string      `bson:"videoPoster,omitempty" json:"videoPoster,omitempty"`
	Images      []HeroSlide `bson:"images" json:"images"`
	MicroForm   MicroForm   `bson:"microForm" json:"microForm"`
}

type LabeledItem struct {
	ID          string `bson:"id" json:"id"`
	Label       string `bson:"label" json:"label"`
	Description string `bson:"description" json:"description"`
}

type CharterOverview struct {
	Summary    string        `bson:"summary" json:"summary"`
	Highlights []LabeledItem `bson:"highlights" json:"highlights"`
}

type StatChip struct {
	ID       string `bson:"id" json:"id"`
	IconName string `bson:"iconName" json:"iconName"`
	Label    string `bson:"label" json:"label"`
	Value    string `bson:"value" json:"value"`
}

type FleetAsset struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	VesselType  string   `bson:"vesselType" json:"vesselType"`
	Capacity    string   `bson:"capacity" json:"capacity"`
	Range       string   `bson:"range" json:"range"`
	PriceLabel  string   `bson:"priceLabel" json:"priceLabel"`
	IconName    string   `bson:"iconName" json:"iconName"`
	Image       string   `bson:"image" json:"image"`
	Highlights  []string `bson:"highlights" json:"highlights"`
	Hospitality []string `bson:"hospitality" json:"hospitality"`
}

type SignatureJourney struct {
	ID          string   `bson:"id" json:"id"`
	Title       string   `bson:"title" json:"title"`
	Duration    string   `bson:"duration" json:"duration"`
	Route       string   `bson:"route" json:"route"`
	Description string   `bson:"description" json:"description"`
	Services    []string `bson:"services" json:"services"`
}

type ServiceTier struct {
	ID           string   `bson:"id" json:"id"`
	Name         string   `bson:"name" json:"name"`
	IconName     string   `bson:"iconName" json:"iconName"`
	Description  string   `bson:"description" json:"description"`
	Deliverables []string `bson:"deliverables" json:"deliverables"`
}

type MissionEntry struct {
	ID          string `bson:"id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Timestamp   string `bson:"timestamp" json:"timestamp"`
	Description string `bson:"description" json:"description"`
	IconName    string `bson:"iconName" json:"iconName"`
	Quote       string `bson:"quote,omitempty" json:"quote,omitempty"`
}

type CrewHighlight struct {
	ID     string   `bson:"id" json:"id"`
	Name   string   `bson:"name" json:"name"`
	Role   string   `bson:"role" json:"role"`
	Bio    string   `bson:"bio" json:"bio"`
	Badges []string `bson:"badges" json:"badges"`
	Image  string   `bson:"image,omitempty" json:"image,omitempty"`
}

type LifestyleRitual struct {
	ID          string `bson:"id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	IconName    string `bson:"iconName" json:"iconName"`
	Tag         string `bson:"tag,omitempty" json:"tag,omitempty"`
}

type CharterBookingInfo struct {
	ConciergeNote          string `bson:"conciergeNote" json:"conciergeNote"`
	ContactPhone           string `bson:"contactPhone" json:"contactPhone"`
	WhatsApp               string `bson:"whatsapp" json:"whatsapp"`
	Email                  string `bson:"email" json:"email"`
	ResponseTime           string `bson:"responseTime" json:"responseTime"`
	IsLive                 bool   `bson:"isLive" json:"isLive"`
	NextAvailabilityWindow string `bson:"nextAvailabilityWindow" json:"nextAvailabilityWindow"`
	DepositNote            string `bson:"depositNote" json:"depositNote"`
	ContractNote           string `bson:"contractNote" json:"contractNote"`
}

type CharterPricing struct {
	Currency          string   `bson:"currency" json:"currency"`
	YachtMinimum      float64  `bson:"yachtMinimum" json:"yachtMinimum"`
	JetMinimum        float64  `bson:"jetMinimum" json:"jetMinimum"`
	HelicopterMinimum float64  `bson:"helicopterMinimum" json:"helicopterMinimum"`
	AddOns            []string `bson:"addOns" json:"addOns"`
}

type GalleryImage struct {
	ID      string `bson:"id" json:"id"`
	Image   string `bson:"image" json:"image"`
	Caption string `bson:"caption" json:"caption"`
}

type FAQEntry struct {
	ID       string `bson:"id" json:"id"`
	Question string `bson:"question" json:"question"`
	Answer   string `bson:"answer" json:"answer"`
}

type CharterSEO struct {
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Keywords    []string `bson:"keywords" json:"keywords"`
	OGImage     string   `bson:"ogImage" json:"ogImage"`
}

// PrivateChartersContent is the singleton content of the private charters page
type PrivateChartersContent struct {
	Hero         CharterHero        `bson:"hero" json:"hero"`
	Overview     CharterOverview    `bson:"overview" json:"overview"`
	Stats        []StatChip         `bson:"stats" json:"stats"`
	Fleet        []FleetAsset       `bson:"fleet" json:"fleet"`
	Journeys     []SignatureJourney `bson:"journeys" json:"journeys"`
	ServiceTiers []ServiceTier      `bson:"serviceTiers" json:"serviceTiers"`
	Missions     []MissionEntry     `bson:"missions" json:"missions"`
	Crew         []CrewHighlight    `bson:"crew" json:"crew"`
	Rituals      []LifestyleRitual  `bson:"rituals" json:"rituals"`
	Booking      CharterBookingInfo `bson:"booking" json:"booking"`
	Pricing      CharterPricing     `bson:"pricing" json:"pricing"`
	Gallery      []GalleryImage     `bson:"gallery" json:"gallery"`
	Testimonials []Testimonial      `bson:"testimonials" json:"testimonials"`
	Partners     []string           `bson:"partners" json:"partners"`
	FAQs         []FAQEntry         `bson:"faqs" json:"faqs"`
	SEO          CharterSEO         `bson:"seo" json:"seo"`
	UpdatedAt    *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// DefaultPrivateChartersContent returns a fresh copy of the built-in page content
func DefaultPrivateChartersContent() PrivateChartersContent {
	var content PrivateChartersContent
	if err := json.Unmarshal(privateChartersDefaults, &content); err != nil {
		panic("entity: invalid private charters defaults: " + err.Error())
	}
	return content
}
