package response

import (
	"srent/internal/data/entity"
)

type CardResponse struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	Brand      string `json:"card_brand"`
	Number     string `json:"card_number"`
	ExpDate    string `json:"exp_date"`
	NameOnCard string `json:"name_on_card"`
}

func CardToResponse(card *entity.Card) CardResponse {
	return CardResponse{
		ID:         card.ID,
		UserID:     card.UserID,
		Brand:      card.Brand,
		Number:     card.MaskedNumber(),
		ExpDate:    card.ExpDate.Format(dateLayout),
		NameOnCard: card.NameOnCard,
	}
}
