package model

import "carshare/shared/model"

const (
	TableName  = "cars"
	EntityName = "car"

	FieldID              = "id"
	FieldOwnerID         = "owner_id"
	FieldMake            = "make"
	FieldModel           = "model"
	FieldYear            = "year"
	FieldDailyRate       = "daily_rate"
	FieldSecurityDeposit = "security_deposit"
	FieldIsInstantBook   = "is_instant_book"
	FieldLocation        = "location"
	FieldActive          = "active"
)

// Car is a listed vehicle. DailyRate and SecurityDeposit are minor currency
// units; bookings snapshot both at creation so edits here only affect future
// requests.
type Car struct {
	ID              string `db:"id"`
	OwnerID         string `db:"owner_id"`
	Make            string `db:"make"`
	Model           string `db:"model"`
	Year            int    `db:"year"`
	DailyRate       int64  `db:"daily_rate"`
	SecurityDeposit int64  `db:"security_deposit"`
	IsInstantBook   bool   `db:"is_instant_book"`
	Location        string `db:"location"`
	Active          bool   `db:"active"`
	model.Metadata
}
