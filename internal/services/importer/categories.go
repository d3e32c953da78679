package importer

import (
	"strings"

	"lending-finance-backend/internal/models"
)

// Default suggestions when no keyword matches.
const (
	categoryOtherIncome  = "Otros Ingresos"
	categoryOtherExpense = "Otros Gastos"
)

// categoryRule maps a category label to the keywords that suggest it.
type categoryRule struct {
	Label    string
	Keywords []string
}

// categoryRules is checked in declaration order; the first matching rule
// wins, so the order is part of the behavior. Keywords mix generic terms
// with merchants and counterparties seen in Yape exports.
var categoryRules = []categoryRule{
	// Gastos
	{"Alimentación", []string{"inversiones jharfer", "jharfer", "carniceria", "restaurante", "comida", "food", "supermercado", "market", "pizza", "burger", "izi*distrito", "el chinito", "panaderia", "bodega"}},
	{"Transporte", []string{"uber", "taxi", "gasolina", "gas", "estacionamiento", "parking", "peaje", "movil bus", "pasaje", "transporte"}},
	{"Servicios", []string{"luz", "agua", "internet", "telefono", "cable", "netflix", "spotify", "claro", "distribuidora arias", "arias", "movistar", "entel"}},
	{"Salud", []string{"farmacia", "medico", "doctor", "clinica", "hospital", "medicina", "neuronova", "botica", "inkafarma"}},
	{"Entretenimiento", []string{"cine", "juego", "game", "netflix", "spotify", "concert", "concierto", "fiesta"}},
	{"Educación", []string{"universidad", "curso", "libro", "book", "colegio", "escuela", "capacitacion"}},
	{"Compras", []string{"samsung", "tienda", "compra", "shopping", "ropa", "zapatos"}},
	{"Familia", []string{"paolo", "pelaez", "huaman", "yahaira", "cinthia"}},

	// Ingresos
	{"Salario", []string{"sueldo", "salario", "pago", "nomina", "salary", "angel", "ramos", "aguinaldo", "gratificacion"}},
	{"Ventas", []string{"venta", "sale", "ingreso", "cobro", "factura"}},
	{"Transferencias", []string{"plin", "yape", "recibiste", "transferencia"}},
}

// suggestCategory attaches a best-effort category label based on a
// case-insensitive substring match of the description. Falls back to a
// default per transaction type. The consumer may always override it.
func suggestCategory(tx models.ImportTransaction) models.ImportTransaction {
	description := strings.ToLower(tx.Description)

	for _, rule := range categoryRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(description, keyword) {
				tx.SuggestedCategory = rule.Label
				return tx
			}
		}
	}

	if tx.Type == models.TypeIncome {
		tx.SuggestedCategory = categoryOtherIncome
	} else {
		tx.SuggestedCategory = categoryOtherExpense
	}
	return tx
}
