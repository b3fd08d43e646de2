package entity

import "time"

// VerificationStatus is the review state of a vehicle owner
type VerificationStatus string

const (
	OwnerIncomplete          VerificationStatus = "incomplete"
	OwnerPendingVerification VerificationStatus = "pending_verification"
	OwnerPendingAdminReview  VerificationStatus = "pending_admin_review"
	OwnerVerified            VerificationStatus = "verified"
	OwnerRejected            VerificationStatus = "rejected"
	OwnerSuspended           VerificationStatus = "suspended"
)

// IsPending reports whether the owner is waiting on an admin decision
func (s VerificationStatus) IsPending() bool {
	return s == OwnerPendingVerification || s == OwnerPendingAdminReview
}

func (s VerificationStatus) Valid() bool {
	switch s {
	case OwnerIncomplete, OwnerPendingVerification, OwnerPendingAdminReview,
		OwnerVerified, OwnerRejected, OwnerSuspended:
		return true
	}
	return false
}

// DocumentStatus is the review state of a single uploaded document
type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "pending"
	DocumentVerified DocumentStatus = "verified"
	DocumentRejected DocumentStatus = "rejected"
)

var OwnerDocumentTypes = []string{
	"national_id_front",
	"national_id_back",
	"driving_license",
	"passport",
	"bank_statement",
	"tax_certificate",
	"authorization_letter",
	"business_license",
}

type OwnerAddress struct {
	Line1      string `bson:"line1" json:"line1"`
	Line2      string `bson:"line2" json:"line2"`
	City       string `bson:"city" json:"city"`
	District   string `bson:"district" json:"district"`
	PostalCode string `bson:"postalCode" json:"postalCode"`
}

type BankDetails struct {
	BankName          string `bson:"bankName" json:"bankName"`
	AccountNumber     string `bson:"accountNumber" json:"accountNumber"`
	AccountHolderName string `bson:"accountHolderName" json:"accountHolderName"`
	BranchCode        string `bson:"branchCode" json:"branchCode"`
	Verified          bool   `bson:"verified" json:"verified"`
}

// VerificationSteps is the fixed six-gate onboarding checklist
type VerificationSteps struct {
	Step1Registration        bool `bson:"step1_registration" json:"step1_registration"`
	Step2IDVerification      bool `bson:"step2_id_verification" json:"step2_id_verification"`
	Step3AddressVerification bool `bson:"step3_address_verification" json:"step3_address_verification"`
	Step4BankVerification    bool `bson:"step4_bank_verification" json:"step4_bank_verification"`
	Step5ProfileCompletion   bool `bson:"step5_profile_completion" json:"step5_profile_completion"`
	Step6AdminVerification   bool `bson:"step6_admin_verification" json:"step6_admin_verification"`
}

// Completed counts the cleared gates
func (v VerificationSteps) Completed() int {
	n := 0
	for _, ok := range []bool{
		v.Step1Registration, v.Step2IDVerification, v.Step3AddressVerification,
		v.Step4BankVerification, v.Step5ProfileCompletion, v.Step6AdminVerification,
	} {
		if ok {
			n++
		}
	}
	return n
}

type OwnerStats struct {
	TotalVehicles int     `bson:"totalVehicles" json:"totalVehicles"`
	TotalBookings int     `bson:"totalBookings" json:"totalBookings"`
	TotalEarnings float64 `bson:"totalEarnings" json:"totalEarnings"`
	Rating        float64 `bson:"rating" json:"rating"`
	ReviewCount   int     `bson:"reviewCount" json:"reviewCount"`
}

// OwnerSubmission is a vehicle owner application under admin review
type OwnerSubmission struct {
	Meta `bson:",inline"`

	FullName     string `bson:"fullName" json:"fullName"`
	Email        string `bson:"email" json:"email"`
	Phone        string `bson:"phone" json:"phone"`
	NIC          string `bson:"nic" json:"nic"`
	BusinessName string `bson:"businessName" json:"businessName"`

	Address     OwnerAddress `bson:"address" json:"address"`
	BankDetails BankDetails  `bson:"bankDetails" json:"bankDetails"`

	VerificationStatus VerificationStatus `bson:"verificationStatus" json:"verificationStatus"`
	VerificationSteps  VerificationSteps  `bson:"verificationSteps" json:"verificationSteps"`
	VerificationNotes  string             `bson:"verificationNotes,omitempty" json:"verificationNotes,omitempty"`
	VerifiedAt         *time.Time         `bson:"verifiedAt,omitempty" json:"verifiedAt,omitempty"`
	VerifiedBy         string             `bson:"verifiedBy,omitempty" json:"verifiedBy,omitempty"`

	Stats OwnerStats `bson:"stats" json:"stats"`
}

func (o *OwnerSubmission) Normalize() {
	if !o.VerificationStatus.Valid() {
		o.VerificationStatus = OwnerIncomplete
	}
}

// OwnerDocument is one uploaded verification document
type OwnerDocument struct {
	Meta `bson:",inline"`

	OwnerID         string         `bson:"ownerId" json:"ownerId"`
	DocumentType    string         `bson:"documentType" json:"documentType"`
	FileURL         string         `bson:"fileUrl" json:"fileUrl"`
	FileName        string         `bson:"fileName" json:"fileName"`
	Status          DocumentStatus `bson:"status" json:"status"`
	RejectionReason string         `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
	VerifiedAt      *time.Time     `bson:"verifiedAt,omitempty" json:"verifiedAt,omitempty"`
	UploadedAt      time.Time      `bson:"uploadedAt" json:"uploadedAt"`
}

func (d *OwnerDocument) Normalize() {
	switch d.Status {
	case DocumentPending, DocumentVerified, DocumentRejected:
	default:
		d.Status = DocumentPending
	}
	if d.UploadedAt.IsZero() {
		d.UploadedAt = d.CreatedAt
	}
}

// OwnerFilter narrows the owner list
type OwnerFilter struct {
	Status VerificationStatus
	Search string
}

// OwnerCounts summarizes owners by review state
type OwnerCounts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Verified  int `json:"verified"`
	Rejected  int `json:"rejected"`
	Suspended int `json:"suspended"`
}
