package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"

	"github.com/AbdelliBrahim0/DashboardAdmin/store"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	jsonTypes := map[string]validator.Func{
		"jsonnumber": func(fl validator.FieldLevel) bool {
			_, ok := store.Number(fl.Field().Interface())
			return ok
		},
		"jsonstring": func(fl validator.FieldLevel) bool {
			return fl.Field().Kind() == reflect.String
		},
		"jsonbool": func(fl validator.FieldLevel) bool {
			return fl.Field().Kind() == reflect.Bool
		},
		"jsonarray": func(fl validator.FieldLevel) bool {
			return fl.Field().Kind() == reflect.Slice
		},
	}
	for tag, fn := range jsonTypes {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	return v
}

// structErrors validates s and translates every failure through messages, keyed
// "<json field>.<tag>". Failures without a message get a generic one.
func structErrors(s interface{}, messages map[string]string) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
			out = append(out, msg)
			continue
		}
		out = append(out, fmt.Sprintf("%s is invalid", fe.Field()))
	}
	return out
}

// parseAmount accepts JSON numbers and numeric strings.
func parseAmount(v interface{}) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case nil, bool:
		return decimal.Zero, false
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		return d, err == nil
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		return d, err == nil
	}
	if f, ok := store.Number(v); ok {
		return decimal.NewFromFloat(f), true
	}
	return decimal.Zero, false
}

// positiveAmount parses v with parseAmount and returns the float64 that will be
// stored. Values that round to zero or overflow are rejected.
func positiveAmount(v interface{}) (float64, bool) {
	d, ok := parseAmount(v)
	if !ok || !d.IsPositive() {
		return 0, false
	}
	f := d.InexactFloat64()
	if f <= 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func stringField(rec store.Record, key string) string {
	s, _ := rec[key].(string)
	return s
}

// fieldRule names the validation tag checking the JSON type of one record field.
type fieldRule struct {
	field string
	tag   string
}

var jsonTypeNames = map[string]string{
	"jsonstring": "a string",
	"jsonnumber": "a number",
	"jsonbool":   "a boolean",
	"jsonarray":  "an array",
}

// recordRules derives one rule per json-tagged field of the typed record model.
func recordRules(typed interface{}) []fieldRule {
	t := reflect.TypeOf(typed)
	rules := make([]fieldRule, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		var tag string
		switch f.Type.Kind() {
		case reflect.String:
			tag = "jsonstring"
		case reflect.Bool:
			tag = "jsonbool"
		case reflect.Int, reflect.Int32, reflect.Int64, reflect.Float32, reflect.Float64:
			tag = "jsonnumber"
		case reflect.Slice:
			tag = "jsonarray"
		default:
			continue
		}
		rules = append(rules, fieldRule{field: name, tag: tag})
	}
	return rules
}

// typeErrors reports, in field order, every field of rec that is present but does
// not hold the JSON type its rule expects. Fields in skip are left to other checks.
func typeErrors(rec store.Record, rules []fieldRule, skip ...string) []string {
	var errs []string
	for _, r := range rules {
		v, ok := rec[r.field]
		if !ok || v == nil || slices.Contains(skip, r.field) {
			continue
		}
		if err := validate.Var(v, r.tag); err != nil {
			errs = append(errs, fmt.Sprintf("%s must be %s", r.field, jsonTypeNames[r.tag]))
		}
	}
	return errs
}
