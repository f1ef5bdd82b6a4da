package dto

import (
	"github.com/google/uuid"

	"carshare/internal/domains/car/model"
	"carshare/shared"
	gDto "carshare/shared/dto"
	gModel "carshare/shared/model"
	"carshare/shared/timezone"
)

type CreateCarRequest struct {
	Make            string `json:"make"             validate:"required,max=50"`
	Model           string `json:"model"            validate:"required,max=50"`
	Year            int    `json:"year"             validate:"required,min=1950"`
	DailyRate       int64  `json:"daily_rate"       validate:"required,gt=0"`
	SecurityDeposit int64  `json:"security_deposit" validate:"omitempty,min=0"`
	IsInstantBook   bool   `json:"is_instant_book"`
	Location        string `json:"location"         validate:"omitempty,max=255"`
	Active          *bool  `json:"active"           validate:"omitempty"`
}

func (c *CreateCarRequest) ToModel(ownerID string) model.Car {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Car{
		ID:              uuid.NewString(),
		OwnerID:         ownerID,
		Make:            c.Make,
		Model:           c.Model,
		Year:            c.Year,
		DailyRate:       c.DailyRate,
		SecurityDeposit: c.SecurityDeposit,
		IsInstantBook:   c.IsInstantBook,
		Location:        c.Location,
		Active:          active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  ownerID,
			ModifiedBy: ownerID,
		},
	}
}

type UpdateCarRequest struct {
	Make            string `db:"make"             json:"make"             validate:"omitempty,max=50"`
	Model           string `db:"model"            json:"model"            validate:"omitempty,max=50"`
	Year            *int   `db:"year"             json:"year"             validate:"omitempty,min=1950"`
	DailyRate       *int64 `db:"daily_rate"       json:"daily_rate"       validate:"omitempty,gt=0"`
	SecurityDeposit *int64 `db:"security_deposit" json:"security_deposit" validate:"omitempty,min=0"`
	IsInstantBook   *bool  `db:"is_instant_book"  json:"is_instant_book"  validate:"omitempty"`
	Location        string `db:"location"         json:"location"         validate:"omitempty,max=255"`
	Active          *bool  `db:"active"           json:"active"           validate:"omitempty"`
}

type CarResponse struct {
	ID              string `json:"id"`
	OwnerID         string `json:"owner_id"`
	Make            string `json:"make"`
	Model           string `json:"model"`
	Year            int    `json:"year"`
	DailyRate       int64  `json:"daily_rate"`
	SecurityDeposit int64  `json:"security_deposit"`
	IsInstantBook   bool   `json:"is_instant_book"`
	Location        string `json:"location"`
	Active          bool   `json:"active"`
	gDto.Metadata
}

func (r *CarResponse) FromModel(car model.Car) {
	r.ID = car.ID
	r.OwnerID = car.OwnerID
	r.Make = car.Make
	r.Model = car.Model
	r.Year = car.Year
	r.DailyRate = car.DailyRate
	r.SecurityDeposit = car.SecurityDeposit
	r.IsInstantBook = car.IsInstantBook
	r.Location = car.Location
	r.Active = car.Active
	r.Metadata.FromModel(car.Metadata)
}

type GetCarsResponse struct {
	Cars      []CarResponse `json:"cars"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (r *GetCarsResponse) FromModels(models []model.Car, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Cars = make([]CarResponse, len(models))
	for i, mod := range models {
		r.Cars[i].FromModel(mod)
	}
}
