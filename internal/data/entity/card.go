package entity

import "time"

type Card struct {
	ID         int64     `db:"card_id"`
	Brand      string    `db:"card_brand"`
	Number     string    `db:"card_number"`
	ExpDate    time.Time `db:"exp_date"`
	NameOnCard string    `db:"name_on_card"`

	// Association link from the brings table.
	UserID int64 `db:"user_id"`
}

// MaskedNumber keeps only the last four digits for display.
func (c *Card) MaskedNumber() string {
	if len(c.Number) <= 4 {
		return c.Number
	}
	return "****" + c.Number[len(c.Number)-4:]
}
