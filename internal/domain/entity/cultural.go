package entity

// Cultural booking status
const (
	CulturalBookingPending   = "pending"
	CulturalBookingConfirmed = "confirmed"
	CulturalBookingCancelled = "cancelled"
)

var CulturalCategories = []string{"cooking-class", "street-food", "fine-dining", "spice-garden", "tea-experience"}

// CulturalTour is a culinary or cultural experience
type CulturalTour struct {
	Meta `bson:",inline"`

	Title        string   `bson:"title" json:"title"`
	Description  string   `bson:"description" json:"description"`
	Category     string   `bson:"category" json:"category"`
	Location     string   `bson:"location" json:"location"`
	Duration     string   `bson:"duration" json:"duration"`
	Price        float64  `bson:"price" json:"price"`
	Image        string   `bson:"image" json:"image"`
	Rating       float64  `bson:"rating" json:"rating"`
	Reviews      int      `bson:"reviews" json:"reviews"`
	Highlights   []string `bson:"highlights" json:"highlights"`
	Difficulty   string   `bson:"difficulty" json:"difficulty"`
	MaxGroupSize int      `bson:"maxGroupSize" json:"maxGroupSize"`
	Included     []string `bson:"included" json:"included"`
	Menu         []string `bson:"menu" json:"menu"`
	Chef         string   `bson:"chef" json:"chef"`
	Featured     bool     `bson:"featured" json:"featured"`
	VideoURL     string   `bson:"videoUrl" json:"videoUrl"`
	Gallery      []string `bson:"gallery" json:"gallery"`
	Availability string   `bson:"availability" json:"availability"`
	IsActive     *bool    `bson:"isActive,omitempty" json:"isActive,omitempty"`
}

func (c *CulturalTour) Normalize() {
	if !oneOf(c.Category, CulturalCategories...) {
		c.Category = CulturalCategories[0]
	}
	if c.Rating == 0 {
		c.Rating = 4.5
	}
	if c.MaxGroupSize <= 0 {
		c.MaxGroupSize = 10
	}
	defaultString(&c.Difficulty, "Easy")
	defaultString(&c.Availability, "Available")
	if c.IsActive == nil {
		t := true
		c.IsActive = &t
	}
	if c.Highlights == nil {
		c.Highlights = []string{}
	}
	if c.Included == nil {
		c.Included = []string{}
	}
	if c.Menu == nil {
		c.Menu = []string{}
	}
	if c.Gallery == nil {
		c.Gallery = []string{}
	}
}

func (c *CulturalTour) Validate() error {
	switch {
	case c.Title == "":
		return &FieldError{Field: "title", Message: "Title is required"}
	case c.Description == "":
		return &FieldError{Field: "description", Message: "Description is required"}
	case c.Location == "":
		return &FieldError{Field: "location", Message: "Location is required"}
	}
	return nil
}

// CulturalBooking is a customer reservation for a cultural tour
type CulturalBooking struct {
	Meta `bson:",inline"`

	TourID          string  `bson:"tourId" json:"tourId"`
	TourTitle       string  `bson:"tourTitle" json:"tourTitle"`
	UserID          string  `bson:"userId" json:"userId"`
	Date            string  `bson:"date" json:"date"`
	Guests          int     `bson:"guests" json:"guests"`
	ContactName     string  `bson:"contactName" json:"contactName"`
	ContactEmail    string  `bson:"contactEmail" json:"contactEmail"`
	ContactPhone    string  `bson:"contactPhone" json:"contactPhone"`
	SpecialRequests string  `bson:"specialRequests" json:"specialRequests"`
	TotalPrice      float64 `bson:"totalPrice" json:"totalPrice"`
	Status          string  `bson:"status" json:"status"`
}

// ValidCulturalBookingStatus reports whether s is a known booking status
func ValidCulturalBookingStatus(s string) bool {
	return oneOf(s, CulturalBookingPending, CulturalBookingConfirmed, CulturalBookingCancelled)
}

func (b *CulturalBooking) Normalize() {
	if !ValidCulturalBookingStatus(b.Status) {
		b.Status = CulturalBookingPending
	}
	if b.Guests <= 0 {
		b.Guests = 1
	}
}
