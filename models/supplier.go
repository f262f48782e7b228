package models

type SupplierKind string

const (
	SupplierDeveloper SupplierKind = "Developer"
	SupplierPublisher SupplierKind = "Publisher"
)

type Supplier struct {
	ID          uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string       `gorm:"not null" json:"name"`
	Kind        SupplierKind `gorm:"type:VARCHAR(20);not null" json:"kind"`
	Country     string       `json:"country"`
	Website     string       `json:"website,omitempty"`
	Description string       `json:"description,omitempty"`
	Active      bool         `gorm:"not null" json:"active"`
	Products    []Product    `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}
