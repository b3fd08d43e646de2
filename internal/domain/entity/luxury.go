package entity

// Luxury experience status
const (
	ExperienceDraft     = "draft"
	ExperiencePublished = "published"
	ExperienceArchived  = "archived"
)

var LuxuryCategories = []string{
	"luxury-safari",
	"photography-tours",
	"cultural-immersion",
	"wellness-retreats",
	"adventure-expeditions",
	"marine-adventures",
	"culinary-journeys",
	"romantic-escapes",
	"family-adventures",
	"exclusive-access",
}

type ItineraryDay struct {
	Day         int    `bson:"day" json:"day"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
}

type ExperienceLocation struct {
	Name        string    `bson:"name" json:"name"`
	Coords      []float64 `bson:"coords" json:"coords"`
	Description string    `bson:"description" json:"description"`
}

type SeasonalPrice struct {
	Season string  `bson:"season" json:"season"`
	Amount float64 `bson:"amount" json:"amount"`
}

type ExperiencePrice struct {
	Amount   float64         `bson:"amount" json:"amount"`
	Currency string          `bson:"currency" json:"currency"`
	Per      string          `bson:"per" json:"per"`
	Seasonal []SeasonalPrice `bson:"seasonal" json:"seasonal"`
}

type ExperienceAvailability struct {
	Type                 string   `bson:"type" json:"type"`
	MinimumNotice        int      `bson:"minimumNotice" json:"minimumNotice"`
	BlackoutDates        []string `bson:"blackoutDates" json:"blackoutDates"`
	SeasonalAvailability []string `bson:"seasonalAvailability" json:"seasonalAvailability"`
}

type Testimonial struct {
	Author string  `bson:"author" json:"author"`
	Quote  string  `bson:"quote" json:"quote"`
	Rating float64 `bson:"rating,omitempty" json:"rating,omitempty"`
}

type SEO struct {
	MetaTitle       string   `bson:"metaTitle" json:"metaTitle"`
	MetaDescription string   `bson:"metaDescription" json:"metaDescription"`
	Keywords        []string `bson:"keywords" json:"keywords"`
}

// LuxuryExperience is a curated premium experience
type LuxuryExperience struct {
	Meta `bson:",inline"`

	Title            string         `bson:"title" json:"title"`
	Subtitle         string         `bson:"subtitle" json:"subtitle"`
	Slug             string         `bson:"slug" json:"slug"`
	Category         string         `bson:"category" json:"category"`
	HeroImage        string         `bson:"heroImage" json:"heroImage"`
	HeroVideo        string         `bson:"heroVideo" json:"heroVideo"`
	Gallery          []string       `bson:"gallery" json:"gallery"`
	ShortDescription string         `bson:"shortDescription" json:"shortDescription"`
	FullDescription  string         `bson:"fullDescription" json:"fullDescription"`
	Highlights       []string       `bson:"highlights" json:"highlights"`
	Inclusions       []string       `bson:"inclusions" json:"inclusions"`
	Exclusions       []string       `bson:"exclusions" json:"exclusions"`
	Itinerary        []ItineraryDay `bson:"itinerary" json:"itinerary"`

	Duration           string               `bson:"duration" json:"duration"`
	GroupSize          string               `bson:"groupSize" json:"groupSize"`
	Locations          []ExperienceLocation `bson:"locations" json:"locations"`
	StartingPoint      string               `bson:"startingPoint" json:"startingPoint"`
	AgeRestrictions    string               `bson:"ageRestrictions" json:"ageRestrictions"`
	Requirements       []string             `bson:"requirements" json:"requirements"`
	CancellationPolicy string               `bson:"cancellationPolicy" json:"cancellationPolicy"`

	Price        ExperiencePrice        `bson:"price" json:"price"`
	Availability ExperienceAvailability `bson:"availability" json:"availability"`
	Difficulty   string                 `bson:"difficulty" json:"difficulty"`
	Testimonials []Testimonial          `bson:"testimonials" json:"testimonials"`
	SEO          SEO                    `bson:"seo" json:"seo"`

	Status   string `bson:"status" json:"status"`
	Featured bool   `bson:"featured" json:"featured"`
	Popular  bool   `bson:"popular" json:"popular"`
	New      bool   `bson:"new" json:"new"`
}

func (e *LuxuryExperience) Normalize() {
	if !oneOf(e.Category, LuxuryCategories...) {
		e.Category = LuxuryCategories[0]
	}
	defaultString(&e.Price.Currency, "USD")
	defaultString(&e.Price.Per, "person")
	defaultString(&e.Availability.Type, "daily")
	if e.Availability.MinimumNotice == 0 {
		e.Availability.MinimumNotice = 24
	}
	defaultString(&e.Difficulty, "easy")
	if !ValidExperienceStatus(e.Status) {
		e.Status = ExperienceDraft
	}
	if e.Gallery == nil {
		e.Gallery = []string{}
	}
	if e.Highlights == nil {
		e.Highlights = []string{}
	}
	if e.Itinerary == nil {
		e.Itinerary = []ItineraryDay{}
	}
}

func (e *LuxuryExperience) Validate() error {
	if e.Title == "" {
		return &FieldError{Field: "title", Message: "Title is required"}
	}
	return nil
}

func ValidExperienceStatus(s string) bool {
	return oneOf(s, ExperienceDraft, ExperiencePublished, ExperienceArchived)
}
