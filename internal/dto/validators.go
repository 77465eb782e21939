package dto

import (
	"reflect"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RegisterValidators installs the domain specific binding tags on v:
// rol, moneda, metodo_pago, estado_comanda, decimal_gt0, decimal_gte0 and decimal_pct.
// Decimal fields are validated through their string form so no precision is lost.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	validations := map[string]validator.Func{
		"rol":            func(fl validator.FieldLevel) bool { return domain.Rol(fl.Field().String()).Valid() },
		"moneda":         func(fl validator.FieldLevel) bool { return domain.Moneda(fl.Field().String()).Valid() },
		"metodo_pago":    func(fl validator.FieldLevel) bool { return domain.MetodoPago(fl.Field().String()).Valid() },
		"estado_comanda": func(fl validator.FieldLevel) bool { return domain.EstadoComanda(fl.Field().String()).Valid() },
		"decimal_gt0":    decimalCheck(func(d decimal.Decimal) bool { return d.IsPositive() }),
		"decimal_gte0":   decimalCheck(func(d decimal.Decimal) bool { return !d.IsNegative() }),
		"decimal_pct":    decimalCheck(func(d decimal.Decimal) bool { return !d.IsNegative() && d.LessThanOrEqual(hundred) }),
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func decimalCheck(ok func(decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		return ok(d)
	}
}
