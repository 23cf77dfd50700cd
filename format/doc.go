/*
Package format provides string cleanup and formatting helpers for Brazilian
identifiers: CPF (individual taxpayer number, 11 digits), CNPJ (company
number, 14 digits) and CEP (postal code, 8 digits).

The helpers are total: blank input (empty or whitespace-only) maps to a fixed
fallback instead of an error.

	format.CPF("1234567890")               // "012.345.678-90"
	format.CPF("52998224725")              // "52998224725", already 11 characters
	format.CPF("")                         // "00000000000"
	format.CNPJ("1222333000181")           // "01.222.333/0001-81"
	format.StripDocument("529.982.247-25") // "52998224725"
	format.CEP("13083970")                 // "13083-970"
	format.Truncate("hello", 3)            // "hel"

Input that already has the full length is taken as formatted. ParseCPF and
ParseCNPJ always produce the separated form.

Check-digit validation is available through ValidCPF and ValidCNPJ.

OpenAPI integration:
The package registers the "cpf", "cnpj" and "cep" formats with the
go-openapi strfmt default registry, so models generated with go-swagger can
declare

	document:
	  type: string
	  format: cpf

and receive a CPFNumber normalized to its formatted representation.
*/
package format
