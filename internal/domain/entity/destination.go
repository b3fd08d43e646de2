package entity

import (
	_ "embed"
	"encoding/json"
	"strings"
	"time"
)

//go:embed defaults/destinations.json
var destinationDefaults []byte

type DestinationSlide struct {
	Image    string `bson:"image" json:"image"`
	Title    string `bson:"title" json:"title"`
	Subtitle string `bson:"subtitle" json:"subtitle"`
}

type Attraction struct {
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	Image       string  `bson:"image" json:"image"`
	Category    string  `bson:"category" json:"category"`
	Rating      float64 `bson:"rating" json:"rating"`
	Duration    string  `bson:"duration" json:"duration"`
	Price       string  `bson:"price" json:"price"`
}

type Activity struct {
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Icon        string `bson:"icon" json:"icon"`
	Price       string `bson:"price" json:"price"`
	Duration    string `bson:"duration" json:"duration"`
	Popular     bool   `bson:"popular" json:"popular"`
}

type DestinationInfo struct {
	Population string `bson:"population" json:"population"`
	Area       string `bson:"area" json:"area"`
	Elevation  string `bson:"elevation" json:"elevation"`
	BestTime   string `bson:"bestTime" json:"bestTime"`
	Language   string `bson:"language" json:"language"`
	Currency   string `bson:"currency" json:"currency"`
}

// DestinationContent is the CMS-editable part of a destination page.
// Nil sections mean "not stored" and fall back to defaults.
type DestinationContent struct {
	Slug            string             `bson:"_id" json:"slug"`
	HeroSlides      []DestinationSlide `bson:"heroSlides,omitempty" json:"heroSlides"`
	Attractions     []Attraction       `bson:"attractions,omitempty" json:"attractions"`
	Activities      []Activity         `bson:"activities,omitempty" json:"activities"`
	DestinationInfo *DestinationInfo   `bson:"destinationInfo,omitempty" json:"destinationInfo"`
	UpdatedAt       *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// DefaultDestinationContent returns the built-in content for slug. Slugs
// without built-in content get a single title slide and generic info.
func DefaultDestinationContent(slug string) DestinationContent {
	all := map[string]DestinationContent{}
	if err := json.Unmarshal(destinationDefaults, &all); err != nil {
		panic("entity: invalid destination defaults: " + err.Error())
	}
	if content, ok := all[slug]; ok {
		content.Slug = slug
		return content
	}

	name := titleCase(slug)
	return DestinationContent{
		Slug: slug,
		HeroSlides: []DestinationSlide{
			{Title: "Discover " + name, Subtitle: "Explore " + name + " with Recharge Travels"},
		},
		Attractions: []Attraction{},
		Activities:  []Activity{},
		DestinationInfo: &DestinationInfo{
			BestTime: "Year-round",
			Language: "Sinhala, Tamil, English",
			Currency: "Sri Lankan Rupee (LKR)",
		},
	}
}

// MergeOver fills every section missing from c with the one from defaults
func (c DestinationContent) MergeOver(defaults DestinationContent) DestinationContent {
	out := defaults
	out.Slug = c.Slug
	if c.HeroSlides != nil {
		out.HeroSlides = c.HeroSlides
	}
	if c.Attractions != nil {
		out.Attractions = c.Attractions
	}
	if c.Activities != nil {
		out.Activities = c.Activities
	}
	if c.DestinationInfo != nil {
		out.DestinationInfo = c.DestinationInfo
	}
	out.UpdatedAt = c.UpdatedAt
	return out
}

func titleCase(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
