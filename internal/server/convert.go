package server

import (
	"errors"

	"git.appkode.ru/pub/go/failure"

	"estate_price/internal/domain"
	"estate_price/internal/domain/entity"
	"estate_price/internal/domain/value"
	"estate_price/pkg/rest"
)

func newDomainOverrides(request rest.PredictionRequest) map[string]any {
	overrides := map[string]any{
		entity.FieldSubtype:  request.Subtype,
		entity.FieldProvince: request.Province,
		entity.FieldPostCode: request.PostCode,
	}

	setIfPresent(overrides, entity.FieldBedroomCount, request.BedroomCount)
	setIfPresent(overrides, entity.FieldHabitableSurface, request.HabitableSurface)
	setIfPresent(overrides, entity.FieldBuildingCondition, request.BuildingCondition)
	setIfPresent(overrides, entity.FieldBuildingConstructionYear, request.BuildingConstructionYear)
	setIfPresent(overrides, entity.FieldFacadeCount, request.FacadeCount)
	setIfPresent(overrides, entity.FieldKitchenType, request.KitchenType)
	setIfPresent(overrides, entity.FieldLandSurface, request.LandSurface)
	setIfPresent(overrides, entity.FieldParkingCountOutdoor, request.ParkingCountOutdoor)
	setIfPresent(overrides, entity.FieldToiletCount, request.ToiletCount)
	setIfPresent(overrides, entity.FieldTerraceSurface, request.TerraceSurface)
	setIfPresent(overrides, entity.FieldEPCScore, request.EPCScore)
	setIfPresent(overrides, entity.FieldHasDressingRoom, request.HasDressingRoom)
	setIfPresent(overrides, entity.FieldHasHeatPump, request.HasHeatPump)
	setIfPresent(overrides, entity.FieldHasPhotovoltaicPanels, request.HasPhotovoltaicPanels)
	setIfPresent(overrides, entity.FieldHasThermicPanels, request.HasThermicPanels)
	setIfPresent(overrides, entity.FieldHasOffice, request.HasOffice)
	setIfPresent(overrides, entity.FieldHasSwimmingPool, request.HasSwimmingPool)
	setIfPresent(overrides, entity.FieldHasFireplace, request.HasFireplace)

	return overrides
}

func setIfPresent[T any](overrides map[string]any, field string, v *T) {
	if v != nil {
		overrides[field] = *v
	}
}

func newRESTPrediction(prediction entity.Prediction) rest.Prediction {
	return rest.Prediction{
		Price:    prediction.Price,
		Features: prediction.FeatureMap(),
	}
}

func newRESTOptions(prices value.PostalPrices) rest.Options {
	return rest.Options{
		Subtypes:           append([]string(nil), value.SubtypeChoices...),
		Provinces:          append([]string(nil), value.Provinces...),
		BuildingConditions: value.BuildingConditions.Values(),
		KitchenTypes:       value.KitchenTypes.Values(),
		EPCScores:          append([]string(nil), value.EPCChoices...),
		PostCodes:          prices.Codes(),
	}
}

// newTransportError maps domain errors raised by bad input to invalid
// argument errors. Everything else stays internal.
func newTransportError(err error) error {
	if !isInputError(err) {
		return err
	}

	code, ok := domain.GetCode(err)
	if !ok {
		return err
	}

	return failure.NewInvalidArgumentErrorFromError(
		err,
		failure.WithCode(code),
		failure.WithDescription(err.Error()),
	)
}

func isInputError(err error) bool {
	return errors.Is(err, domain.ErrUnknownCategory) ||
		errors.Is(err, domain.ErrMissingField) ||
		errors.Is(err, domain.ErrInvalidValue)
}
