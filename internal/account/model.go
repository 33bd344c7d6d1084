package account

// CardType identifies the card network the account is issued on.
type CardType string

const (
	// CardTypeStar is the in-house Star network card.
	CardTypeStar CardType = "star"
	// CardTypeMastercard is a co-branded Mastercard.
	CardTypeMastercard CardType = "mastercard"
)

// ValidCardType reports whether t belongs to the closed card type set.
func ValidCardType(t CardType) bool {
	switch t {
	case CardTypeStar, CardTypeMastercard:
		return true
	default:
		return false
	}
}

// Account is the single bank account served by this process. Balance is
// held in minor currency units (cents) to avoid floating point drift.
type Account struct {
	ID             string
	Name           string
	PINHash        []byte
	CardType       CardType
	Currency       string
	BalanceInCents int64
}

// PublicView is the caller-safe projection of an account. It carries no
// credential material and is recomputed on every read, never stored.
type PublicView struct {
	UserName string   `json:"user_name"`
	CardType CardType `json:"card_type"`
	Currency string   `json:"currency"`
	Balance  float64  `json:"balance"`
}

// Project derives the public view from an account snapshot. Rounding is
// display-only; the stored minor unit balance is never changed by it.
func Project(a Account) PublicView {
	return PublicView{
		UserName: a.Name,
		CardType: a.CardType,
		Currency: a.Currency,
		Balance:  float64(a.BalanceInCents) / 100,
	}
}
