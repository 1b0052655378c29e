package model

import "github.com/google/uuid"

// BeerStyle is the enumerated category of a beer.
type BeerStyle string

const (
	BeerStyleLager   BeerStyle = "LAGER"
	BeerStylePilsner BeerStyle = "PILSNER"
	BeerStyleStout   BeerStyle = "STOUT"
	BeerStyleGose    BeerStyle = "GOSE"
	BeerStylePorter  BeerStyle = "PORTER"
	BeerStyleAle     BeerStyle = "ALE"
	BeerStyleWheat   BeerStyle = "WHEAT"
	BeerStyleIPA     BeerStyle = "IPA"
	BeerStylePaleAle BeerStyle = "PALE_ALE"
	BeerStyleSaison  BeerStyle = "SAISON"
)

var beerStyles = []BeerStyle{
	BeerStyleLager,
	BeerStylePilsner,
	BeerStyleStout,
	BeerStyleGose,
	BeerStylePorter,
	BeerStyleAle,
	BeerStyleWheat,
	BeerStyleIPA,
	BeerStylePaleAle,
	BeerStyleSaison,
}

// BeerStyles returns every known style in declaration order.
func BeerStyles() []BeerStyle {
	out := make([]BeerStyle, len(beerStyles))
	copy(out, beerStyles)
	return out
}

// Valid reports whether s is one of the known styles.
func (s BeerStyle) Valid() bool {
	for _, v := range beerStyles {
		if v == s {
			return true
		}
	}
	return false
}

// Beer is the transfer object exchanged over the v2 beer API.
// ID is nil on create and update payloads; a stored beer always has one.
type Beer struct {
	ID        *uuid.UUID `json:"id,omitempty" validate:"isdefault" swaggertype:"string" format:"uuid" extensions:"x-nullable"`
	BeerName  string     `json:"beerName" validate:"notblank,min=3,max=100" example:"Mango Bobs"`
	BeerStyle BeerStyle  `json:"beerStyle" validate:"required,beerstyle" enums:"LAGER,PILSNER,STOUT,GOSE,PORTER,ALE,WHEAT,IPA,PALE_ALE,SAISON" example:"ALE"`
	UPC       int64      `json:"upc" validate:"required,gt=0" example:"123456789012"`
}
