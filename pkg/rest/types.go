// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// PredictionRequest Характеристики объекта недвижимости. Незаполненные поля берутся из шаблона по умолчанию.
type PredictionRequest struct {
	Subtype                  string   `json:"subtype" validate:"required,oneof=APARTMENT HOUSE FLAT_STUDIO DUPLEX PENTHOUSE APARTMENT_GROUP GROUND_FLOOR APARTMENT_BLOCK MANSION EXCEPTIONAL_PROPERTY MIXED_USE_BUILDING TRIPLEX LOFT VILLA TOWN_HOUSE CHALET HOUSE_GROUP MANOR_HOUSE SERVICE_FLAT KOT FARMHOUSE BUNGALOW COUNTRY_COTTAGE OTHER_PROPERTY CASTLE PAVILION"`
	Province                 string   `json:"province" validate:"required,oneof=BRUSSELS NAMUR LIEGE HAINAUT 'BRABANT WALLON' LUXEMBOURG ANTWERP 'WEST FLANDERS' 'EAST FLANDERS' 'FLEMISH BRABANT' LIMBURG"`
	PostCode                 string   `json:"postCode" validate:"required,numeric"`
	BedroomCount             *int     `json:"bedroomCount,omitempty" validate:"omitempty,min=0"`
	HabitableSurface         *float64 `json:"habitableSurface,omitempty" validate:"omitempty,min=0"`
	BuildingCondition        *string  `json:"buildingCondition,omitempty" validate:"omitempty,oneof=GOOD TO_BE_DONE_UP AS_NEW JUST_RENOVATED TO_RENOVATE TO_RESTORE"`
	BuildingConstructionYear *int     `json:"buildingConstructionYear,omitempty" validate:"omitempty,min=1000"`
	FacadeCount              *int     `json:"facadeCount,omitempty" validate:"omitempty,min=1,max=4"`
	KitchenType              *string  `json:"kitchenType,omitempty" validate:"omitempty,oneof=SEMI_EQUIPPED INSTALLED HYPER_EQUIPPED NOT_INSTALLED USA_UNINSTALLED USA_HYPER_EQUIPPED USA_INSTALLED USA_SEMI_EQUIPPED"`
	LandSurface              *float64 `json:"landSurface,omitempty" validate:"omitempty,min=0"`
	ParkingCountOutdoor      *int     `json:"parkingCountOutdoor,omitempty" validate:"omitempty,min=0"`
	ToiletCount              *int     `json:"toiletCount,omitempty" validate:"omitempty,min=0"`
	TerraceSurface           *float64 `json:"terraceSurface,omitempty" validate:"omitempty,min=0"`
	EPCScore                 *string  `json:"epcScore,omitempty" validate:"omitempty,oneof=A++ A+ A B C D E F G"`
	HasDressingRoom          *bool    `json:"hasDressingRoom,omitempty"`
	HasHeatPump              *bool    `json:"hasHeatPump,omitempty"`
	HasPhotovoltaicPanels    *bool    `json:"hasPhotovoltaicPanels,omitempty"`
	HasThermicPanels         *bool    `json:"hasThermicPanels,omitempty"`
	HasOffice                *bool    `json:"hasOffice,omitempty"`
	HasSwimmingPool          *bool    `json:"hasSwimmingPool,omitempty"`
	HasFireplace             *bool    `json:"hasFireplace,omitempty"`
}

// Prediction Оценка стоимости и признаки, по которым она получена.
type Prediction struct {
	Price    float64            `json:"price"`
	Features map[string]float64 `json:"features"`
}

// Options Допустимые значения полей формы.
type Options struct {
	Subtypes           []string `json:"subtypes"`
	Provinces          []string `json:"provinces"`
	BuildingConditions []string `json:"buildingConditions"`
	KitchenTypes       []string `json:"kitchenTypes"`
	EPCScores          []string `json:"epcScores"`
	PostCodes          []string `json:"postCodes"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	// SupportID Идентификатор запроса для обращения в поддержку
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
