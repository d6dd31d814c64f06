package entity

import "time"

// BlockedAccount is a fiscal id barred from submitting receipts.
// Configuration creation stays allowed for blocked accounts.
type BlockedAccount struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FiscalID  string    `gorm:"uniqueIndex;size:32;not null" json:"fiscal_id"`
	Reason    string    `gorm:"size:255" json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
