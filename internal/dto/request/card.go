package request

type CardRequest struct {
	Brand      string `json:"card_brand" validate:"required"`
	Number     string `json:"card_number" validate:"required,numeric,min=12,max=19"`
	ExpDate    string `json:"exp_date" validate:"required,datetime=2006-01-02"`
	NameOnCard string `json:"name_on_card" validate:"required"`
}
