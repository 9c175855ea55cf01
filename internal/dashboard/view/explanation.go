package view

import (
	"strings"

	"casedesk/internal/cases/models"
)

type ruleExplanation struct {
	match   func(rule string, result models.CheckResult) bool
	explain string
}

func ruleContains(subs ...string) func(string, models.CheckResult) bool {
	return func(rule string, _ models.CheckResult) bool {
		for _, s := range subs {
			if strings.Contains(rule, s) {
				return true
			}
		}
		return false
	}
}

func ruleAndResult(sub string, result models.CheckResult) func(string, models.CheckResult) bool {
	return func(rule string, r models.CheckResult) bool {
		return strings.Contains(rule, sub) && r == result
	}
}

func resultIs(result models.CheckResult) func(string, models.CheckResult) bool {
	return func(_ string, r models.CheckResult) bool { return r == result }
}

// Checked in order, first match wins.
var ruleExplanations = []ruleExplanation{
	{ruleAndResult("expiry_date", models.ResultWarn), "Se verificó que la fecha de vencimiento del documento está próxima a vencer (dentro de los próximos 30 días)."},
	{ruleAndResult("expiry_date", models.ResultFail), "El documento ha vencido y no es válido para su uso."},
	{ruleContains("expiry_date"), "Se verificó que la fecha de vencimiento del documento es válida."},
	{ruleContains("holder", "ownership"), "Se validó que el titular del documento coincide con los datos registrados del cliente."},
	{ruleContains("cuit"), "Se verificó el formato y la consistencia del CUIT con los datos del documento."},
	{ruleContains("required_fields"), "Se validó la presencia de todos los campos obligatorios en el documento."},
	{resultIs(models.ResultPass), "La validación se ejecutó correctamente y cumplió con todos los criterios establecidos."},
	{resultIs(models.ResultWarn), "La validación detectó una condición que requiere atención, pero no impide el procesamiento."},
	{resultIs(models.ResultFail), "La validación no se cumplió y requiere acción correctiva antes de continuar."},
}

const defaultRuleExplanation = "Se ejecutó la validación según los criterios definidos."

// RuleExplanation returns the reviewer-facing sentence for a validation rule
// and its result.
func RuleExplanation(rule string, result models.CheckResult) string {
	for _, e := range ruleExplanations {
		if e.match(rule, result) {
			return e.explain
		}
	}
	return defaultRuleExplanation
}
