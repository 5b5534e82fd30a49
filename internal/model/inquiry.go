package model

import "time"

// InquiryType classifies what an inquiry is about
type InquiryType string

const (
	// InquiryTypeGeneral is the default inquiry type
	InquiryTypeGeneral InquiryType = "General Inquiry"
	// InquiryTypeProductInformation asks about catalog products
	InquiryTypeProductInformation InquiryType = "Product Information"
	// InquiryTypePartnership proposes a partnership
	InquiryTypePartnership InquiryType = "Partnership Opportunity"
	// InquiryTypeTechnicalSupport requests technical support
	InquiryTypeTechnicalSupport InquiryType = "Technical Support"
	// InquiryTypeQuoteRequest requests a quote
	InquiryTypeQuoteRequest InquiryType = "Quote Request"
)

// InquiryTypes lists all known inquiry types in presentation order
var InquiryTypes = []InquiryType{
	InquiryTypeGeneral,
	InquiryTypeProductInformation,
	InquiryTypePartnership,
	InquiryTypeTechnicalSupport,
	InquiryTypeQuoteRequest,
}

// Valid reports whether t is one of the known inquiry types
func (t InquiryType) Valid() bool {
	for _, known := range InquiryTypes {
		if t == known {
			return true
		}
	}
	return false
}

// NewInquiry is validated data required to create inquiry
type NewInquiry struct {
	FirstName   string
	LastName    string
	Email       string
	Company     string
	InquiryType InquiryType
	Message     string
}

// Inquiry is contact inquiry model entity
type Inquiry struct {
	ID          string      `json:"id" bson:"_id" gorm:"primaryKey;type:text"`
	FirstName   string      `json:"firstName" bson:"firstName" gorm:"not null"`
	LastName    string      `json:"lastName" bson:"lastName" gorm:"not null"`
	Email       string      `json:"email" bson:"email" gorm:"not null"`
	Company     string      `json:"company" bson:"company"`
	InquiryType InquiryType `json:"inquiryType" bson:"inquiryType" gorm:"not null"`
	Message     string      `json:"message" bson:"message" gorm:"type:text;not null"`
	CreatedAt   time.Time   `json:"createdAt" bson:"createdAt" gorm:"not null;index"`
}

// TableName specifies the table name for Inquiry
func (Inquiry) TableName() string {
	return "inquiries"
}
