/*
Copyright 2025 Fixedtext Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package code provides fixed-width ISO identifier codes on top of the
// fixed package: two-letter ISO 639-1 language codes, two-letter ISO 3166-1
// region codes, and three-letter ISO 4217 currency codes.
//
// These are the kind of field a fixed-capacity string exists for: short,
// bounded, exact-width text embedded directly in record layouts with value
// semantics and no heap allocation. The Parse functions validate input
// against the Unicode CLDR tables shipped with golang.org/x/text and store
// the canonical form (lowercase for languages, uppercase for regions and
// currencies), so two values for the same code always compare equal.
//
// A code value is comparable and usable as a map key, and it inherits JSON
// and text marshalling from fixed.Text. Note that unmarshalling checks
// width and UTF-8 validity only; input of unknown provenance should go
// through the Parse functions for registry validation.
package code

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/jplu/fixedtext/fixed"
)

// Language is a two-letter ISO 639-1 language code in canonical lowercase
// form, such as "en" or "de".
type Language = fixed.Text[[2]byte]

// Region is a two-letter ISO 3166-1 alpha-2 region code in canonical
// uppercase form, such as "US" or "FR".
type Region = fixed.Text[[2]byte]

// Currency is a three-letter ISO 4217 currency code in canonical uppercase
// form, such as "USD" or "EUR".
type Currency = fixed.Text[[3]byte]

// BadCodeError is returned when an input is rejected by the CLDR registry,
// wrapping the underlying x/text error.
type BadCodeError struct {
	// Code is the rejected input.
	Code string
	// Err is the registry error.
	Err error
}

// Error formats the error with the rejected input.
func (e *BadCodeError) Error() string {
	return fmt.Sprintf("invalid code %q: %v", e.Code, e.Err)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *BadCodeError) Unwrap() error {
	return e.Err
}

// ParseLanguage parses s as an ISO 639-1 language code. The match is
// case-insensitive; the stored form is the canonical lowercase code. A
// language known to the registry only by a three-letter ISO 639-3 code does
// not fit the two-byte width and is rejected with a *fixed.LengthError.
func ParseLanguage(s string) (Language, error) {
	base, err := language.ParseBase(s)
	if err != nil {
		return Language{}, &BadCodeError{Code: s, Err: err}
	}
	return fixed.FromString[[2]byte](base.String())
}

// ParseRegion parses s as an ISO 3166-1 alpha-2 region code. The match is
// case-insensitive; the stored form is the canonical uppercase code.
// Numeric UN M.49 codes (such as "419") are resolved by the registry but do
// not have a two-letter form and are rejected with a *fixed.LengthError.
func ParseRegion(s string) (Region, error) {
	region, err := language.ParseRegion(s)
	if err != nil {
		return Region{}, &BadCodeError{Code: s, Err: err}
	}
	return fixed.FromString[[2]byte](region.String())
}

// ParseCurrency parses s as an ISO 4217 currency code. The match is
// case-insensitive; the stored form is the canonical uppercase code.
func ParseCurrency(s string) (Currency, error) {
	unit, err := currency.ParseISO(s)
	if err != nil {
		return Currency{}, &BadCodeError{Code: s, Err: err}
	}
	return fixed.FromString[[3]byte](unit.String())
}
