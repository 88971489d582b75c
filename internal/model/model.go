package model

// Адрес домохозяйства в календаре вывоза

type AddressID string

type Address struct {
	HouseNumber string    `json:"houseNumber"`
	Street      string    `json:"street"`
	Postcode    string    `json:"postcode"`
	ID          AddressID `json:"id"`
}

// Типы вывоза

type RoundType string

const (
	RoundTypeOrganic  RoundType = "ORGANIC"
	RoundTypeRecycle  RoundType = "RECYCLE"
	RoundTypeDomestic RoundType = "DOMESTIC"
)

// Расписание

type CollectionEvent struct {
	Date              string      `json:"date"`
	RoundTypes        []RoundType `json:"roundTypes"`
	SlippedCollection bool        `json:"slippedCollection"`
}

// Schedule.Collections == nil означает, что поле отсутствовало в ответе.
type Schedule struct {
	Collections []CollectionEvent `json:"collections"`
	RoundTypes  []RoundType       `json:"roundTypes"`
}
