package entity

// Driver tiers
const (
	TierChauffeurGuide  = "chauffeur_guide"
	TierNationalGuide   = "national_guide"
	TierTouristDriver   = "tourist_driver"
	TierFreelanceDriver = "freelance_driver"
)

// Driver status
const (
	DriverVerified            = "verified"
	DriverPendingVerification = "pending_verification"
	DriverIncomplete          = "incomplete"
	DriverSuspended           = "suspended"
	DriverInactive            = "inactive"
)

// Driver is a guide or chauffeur listed in the back-office
type Driver struct {
	Meta `bson:",inline"`

	FullName           string   `bson:"full_name" json:"full_name"`
	Email              string   `bson:"email" json:"email"`
	Phone              string   `bson:"phone" json:"phone"`
	WhatsApp           string   `bson:"whatsapp" json:"whatsapp"`
	Biography          string   `bson:"biography" json:"biography"`
	SpecialtyLanguages []string `bson:"specialty_languages" json:"specialty_languages"`
	YearsExperience    int      `bson:"years_experience" json:"years_experience"`

	Tier            string `bson:"tier" json:"tier"`
	CurrentStatus   string `bson:"current_status" json:"current_status"`
	IsSLTDAApproved bool   `bson:"is_sltda_approved" json:"is_sltda_approved"`
	IsGuide         bool   `bson:"is_guide" json:"is_guide"`
	IsChauffeur     *bool  `bson:"is_chauffeur,omitempty" json:"is_chauffeur,omitempty"`

	VehicleType         string `bson:"vehicle_type" json:"vehicle_type"`
	VehicleMakeModel    string `bson:"vehicle_make_model" json:"vehicle_make_model"`
	VehicleRegistration string `bson:"vehicle_registration" json:"vehicle_registration"`
	VehicleCapacity     int    `bson:"vehicle_capacity" json:"vehicle_capacity"`
	VehicleAC           *bool  `bson:"vehicle_ac,omitempty" json:"vehicle_ac,omitempty"`
	VehicleWifi         bool   `bson:"vehicle_wifi" json:"vehicle_wifi"`
	VehiclePreference   string `bson:"vehicle_preference" json:"vehicle_preference"`

	DailyRate           float64 `bson:"daily_rate" json:"daily_rate"`
	HourlyRate          float64 `bson:"hourly_rate" json:"hourly_rate"`
	AirportTransferRate float64 `bson:"airport_transfer_rate" json:"airport_transfer_rate"`
	PerKmRate           float64 `bson:"per_km_rate" json:"per_km_rate"`
	AverageRating       float64 `bson:"average_rating" json:"average_rating"`
	TotalReviews        int     `bson:"total_reviews" json:"total_reviews"`

	SLTDALicenseNumber   string `bson:"sltda_license_number" json:"sltda_license_number"`
	DriversLicenseNumber string `bson:"drivers_license_number" json:"drivers_license_number"`
	NationalIDNumber     string `bson:"national_id_number" json:"national_id_number"`

	ProfilePhoto string `bson:"profile_photo" json:"profile_photo"`
	CoverImage   string `bson:"cover_image" json:"cover_image"`
}

func (d *Driver) Normalize() {
	if !ValidDriverTier(d.Tier) {
		d.Tier = TierFreelanceDriver
	}
	if !ValidDriverStatus(d.CurrentStatus) {
		d.CurrentStatus = DriverPendingVerification
	}
	if len(d.SpecialtyLanguages) == 0 {
		d.SpecialtyLanguages = []string{"English"}
	}
	if d.IsChauffeur == nil {
		t := true
		d.IsChauffeur = &t
	}
	if !oneOf(d.VehicleType, "sedan", "suv", "van", "mini_coach", "luxury") {
		d.VehicleType = "sedan"
	}
	if d.VehicleCapacity <= 0 {
		d.VehicleCapacity = 4
	}
	if d.VehicleAC == nil {
		t := true
		d.VehicleAC = &t
	}
	defaultString(&d.VehiclePreference, "own_vehicle")
	if d.AverageRating == 0 {
		d.AverageRating = 5.0
	}
}

func (d *Driver) Validate() error {
	if d.FullName == "" {
		return &FieldError{Field: "full_name", Message: "Full name is required"}
	}
	return nil
}

func ValidDriverTier(t string) bool {
	return oneOf(t, TierChauffeurGuide, TierNationalGuide, TierTouristDriver, TierFreelanceDriver)
}

func ValidDriverStatus(s string) bool {
	return oneOf(s, DriverVerified, DriverPendingVerification, DriverIncomplete, DriverSuspended, DriverInactive)
}
