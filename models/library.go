package models

// LibraryTimeLayout is the stored format of LibraryEntry.AcquiredAt.
const LibraryTimeLayout = "2006-01-02 15:04"

// LibraryEntry records a product the user currently owns.
type LibraryEntry struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	UserID     string `gorm:"not null;uniqueIndex:idx_library_user_product" json:"-"`
	ProductID  uint   `gorm:"not null;uniqueIndex:idx_library_user_product" json:"product_id"`
	Name       string `json:"name"`
	AcquiredAt string `gorm:"type:VARCHAR(16)" json:"acquired_at"`
}
