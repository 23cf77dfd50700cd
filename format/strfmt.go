/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package format

import (
	"database/sql/driver"
	"fmt"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/entitystate/errors"
)

func init() {
	Register(strfmt.Default)
}

// Register adds the "cpf", "cnpj" and "cep" formats to reg.
func Register(reg strfmt.Registry) {
	reg.Add("cpf", new(CPFNumber), ValidCPF)
	reg.Add("cnpj", new(CNPJNumber), ValidCNPJ)
	reg.Add("cep", new(CEPCode), ValidCEP)
}

// CPFNumber is a CPF held in its formatted representation.
type CPFNumber string

// ParseCPF validates s and returns it formatted.
func ParseCPF(s string) (CPFNumber, error) {
	var c CPFNumber
	err := c.UnmarshalText([]byte(s))
	return c, err
}

func (c CPFNumber) String() string {
	return string(c)
}

// Digits returns the CPF without separators.
func (c CPFNumber) Digits() string {
	return StripDocument(string(c))
}

func (c CPFNumber) MarshalText() ([]byte, error) {
	return []byte(c), nil
}

func (c *CPFNumber) UnmarshalText(data []byte) error {
	s := string(data)
	if !ValidCPF(s) {
		return errors.NewValidationError("cpf", fmt.Sprintf("%q is not a valid CPF", s))
	}
	*c = CPFNumber(maskCPF(StripDocument(s)))
	return nil
}

// Scan reads a CPF stored as text, with or without separators.
func (c *CPFNumber) Scan(src any) error {
	s, err := scanString("cpf", src)
	if err != nil {
		return err
	}
	if s == "" {
		*c = ""
		return nil
	}
	*c = CPFNumber(maskCPF(StripDocument(s)))
	return nil
}

// Value stores the CPF as its 11 digits.
func (c CPFNumber) Value() (driver.Value, error) {
	if c == "" {
		return nil, nil
	}
	return c.Digits(), nil
}

// CNPJNumber is a CNPJ held in its formatted representation.
type CNPJNumber string

// ParseCNPJ validates s and returns it formatted.
func ParseCNPJ(s string) (CNPJNumber, error) {
	var c CNPJNumber
	err := c.UnmarshalText([]byte(s))
	return c, err
}

func (c CNPJNumber) String() string {
	return string(c)
}

// Digits returns the CNPJ without separators.
func (c CNPJNumber) Digits() string {
	return StripDocument(string(c))
}

func (c CNPJNumber) MarshalText() ([]byte, error) {
	return []byte(c), nil
}

func (c *CNPJNumber) UnmarshalText(data []byte) error {
	s := string(data)
	if !ValidCNPJ(s) {
		return errors.NewValidationError("cnpj", fmt.Sprintf("%q is not a valid CNPJ", s))
	}
	*c = CNPJNumber(maskCNPJ(StripDocument(s)))
	return nil
}

func (c *CNPJNumber) Scan(src any) error {
	s, err := scanString("cnpj", src)
	if err != nil {
		return err
	}
	if s == "" {
		*c = ""
		return nil
	}
	*c = CNPJNumber(maskCNPJ(StripDocument(s)))
	return nil
}

func (c CNPJNumber) Value() (driver.Value, error) {
	if c == "" {
		return nil, nil
	}
	return c.Digits(), nil
}

// CEPCode is a postal code held as 00000-000.
type CEPCode string

// ParseCEP validates s and returns it formatted.
func ParseCEP(s string) (CEPCode, error) {
	var c CEPCode
	err := c.UnmarshalText([]byte(s))
	return c, err
}

func (c CEPCode) String() string {
	return string(c)
}

// Digits returns the postal code without separators.
func (c CEPCode) Digits() string {
	return StripCEP(string(c))
}

func (c CEPCode) MarshalText() ([]byte, error) {
	return []byte(c), nil
}

func (c *CEPCode) UnmarshalText(data []byte) error {
	s := string(data)
	if !ValidCEP(s) {
		return errors.NewValidationError("cep", fmt.Sprintf("%q is not a valid CEP", s))
	}
	*c = CEPCode(CEP(s))
	return nil
}

func (c *CEPCode) Scan(src any) error {
	s, err := scanString("cep", src)
	if err != nil {
		return err
	}
	if s == "" {
		*c = ""
		return nil
	}
	*c = CEPCode(CEP(s))
	return nil
}

func (c CEPCode) Value() (driver.Value, error) {
	if c == "" {
		return nil, nil
	}
	return c.Digits(), nil
}

func scanString(field string, src any) (string, error) {
	switch v := src.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", errors.NewValidationError(field, fmt.Sprintf("cannot scan %T", src))
	}
}
