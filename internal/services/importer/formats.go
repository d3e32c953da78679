package importer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"lending-finance-backend/internal/models"
)

// detectYapeFormat reports whether the first line carries the markers of a
// Yape export (the Spanish transaction-type phrases it always includes).
func detectYapeFormat(line string) bool {
	lower := strings.ToLower(line)
	return strings.Contains(lower, "tipo de transacci") ||
		strings.Contains(lower, "pagaste") ||
		strings.Contains(lower, "te pagó")
}

// parseYapeLine parses one row of a Yape export. Columns:
// tipo; origen; destino; monto; mensaje; fecha de operación.
// Returns nil when the row has too few fields to be a candidate at all.
func parseYapeLine(line string, delimiter byte) *models.ImportTransaction {
	cols := splitLine(line, delimiter)
	if len(cols) < minYapeFields {
		return nil
	}

	tx := models.ImportTransaction{
		Type:             models.TypeExpense,
		ValidationErrors: []string{},
	}

	tipo := strings.ToUpper(field(cols, 0))
	origen := field(cols, 1)
	destino := field(cols, 2)
	montoStr := field(cols, 3)
	mensaje := field(cols, 4)
	fechaStr := field(cols, 5)

	switch {
	case strings.Contains(tipo, "PAGASTE"):
		tx.Type = models.TypeExpense
		tx.Description = "Pago a " + destino
	case strings.Contains(tipo, "PAG"): // TE PAGÓ
		tx.Type = models.TypeIncome
		tx.Description = "Recibido de " + origen
	default:
		tx.ValidationErrors = append(tx.ValidationErrors, fmt.Sprintf("Tipo de transacción desconocido: %s", tipo))
		return &tx
	}

	if amount, ok := parseAmount(montoStr); ok && amount.IsPositive() {
		tx.Amount = amount
	} else {
		tx.ValidationErrors = append(tx.ValidationErrors, fmt.Sprintf("Monto inválido: %s", montoStr))
	}

	if date, ok := parseYapeDate(fechaStr); ok {
		tx.TransactionDate = date
	} else {
		tx.ValidationErrors = append(tx.ValidationErrors, "Fecha inválida")
	}

	if mensaje != "" {
		tx.Notes = mensaje
		tx.Description += " - " + mensaje
	}

	tx.Reference = "Yape - " + tipo

	tx = validate(tx)
	tx = suggestCategory(tx)
	return &tx
}

// rowFields is the outcome of one accepted column-order hypothesis.
type rowFields struct {
	date        string
	amount      decimal.Decimal
	description string
	txType      models.TransactionType
	reference   string
}

// tryFormat attempts one column layout. It is total: it never fails a batch,
// it only reports whether its layout fits the row.
type tryFormat func(cols []string) (rowFields, bool)

// genericFormats are tried in priority order; the first success wins.
var genericFormats = []tryFormat{
	tryDateAmountDescription,
	tryDateDescriptionAmount,
	tryAmountDateDescription,
}

// parseGenericLine parses one row of a generic delimited export by trying
// each known column layout in order. Rows matching no layout are kept with a
// single validation error; rows with too few fields return nil.
func parseGenericLine(line string, delimiter byte, lineNumber int) *models.ImportTransaction {
	cols := splitLine(line, delimiter)
	if len(cols) < minGenericFields {
		return nil
	}

	tx := models.ImportTransaction{
		Type:             models.TypeExpense,
		ValidationErrors: []string{},
	}

	for _, try := range genericFormats {
		if f, ok := try(cols); ok {
			tx.TransactionDate = f.date
			tx.Amount = f.amount
			tx.Description = f.description
			tx.Type = f.txType
			tx.Reference = f.reference
			tx = validate(tx)
			tx = suggestCategory(tx)
			return &tx
		}
	}

	tx.ValidationErrors = append(tx.ValidationErrors, fmt.Sprintf("Línea %d: Formato no reconocido", lineNumber))
	return &tx
}

// tryDateAmountDescription matches: fecha, monto, descripcion[, tipo][, referencia].
func tryDateAmountDescription(cols []string) (rowFields, bool) {
	date, okDate := parseDate(field(cols, 0))
	amount, okAmount := parseAmount(field(cols, 1))
	if !okDate || !okAmount {
		return rowFields{}, false
	}

	f := rowFields{
		date:        date,
		amount:      amount.Abs(),
		description: defaultDescription(field(cols, 2)),
		reference:   field(cols, 4),
	}
	if typeStr := field(cols, 3); typeStr != "" {
		f.txType = parseType(typeStr)
	} else {
		f.txType = typeFromSign(amount)
	}
	return f, true
}

// tryDateDescriptionAmount matches: fecha, descripcion, monto[, referencia].
func tryDateDescriptionAmount(cols []string) (rowFields, bool) {
	date, okDate := parseDate(field(cols, 0))
	amount, okAmount := parseAmount(field(cols, 2))
	if !okDate || !okAmount {
		return rowFields{}, false
	}

	return rowFields{
		date:        date,
		amount:      amount.Abs(),
		description: defaultDescription(field(cols, 1)),
		txType:      typeFromSign(amount),
		reference:   field(cols, 3),
	}, true
}

// tryAmountDateDescription matches: monto, fecha, descripcion[, referencia].
func tryAmountDateDescription(cols []string) (rowFields, bool) {
	amount, okAmount := parseAmount(field(cols, 0))
	date, okDate := parseDate(field(cols, 1))
	if !okDate || !okAmount {
		return rowFields{}, false
	}

	return rowFields{
		date:        date,
		amount:      amount.Abs(),
		description: defaultDescription(field(cols, 2)),
		txType:      typeFromSign(amount),
		reference:   field(cols, 3),
	}, true
}

func defaultDescription(s string) string {
	if s == "" {
		return "Sin descripción"
	}
	return s
}

func typeFromSign(amount decimal.Decimal) models.TransactionType {
	if amount.IsNegative() {
		return models.TypeExpense
	}
	return models.TypeIncome
}

// parseType maps an explicit type column to a transaction type.
func parseType(s string) models.TransactionType {
	lower := strings.ToLower(s)
	for _, marker := range []string{"ingreso", "income", "credito", "pag"} {
		if strings.Contains(lower, marker) {
			return models.TypeIncome
		}
	}
	return models.TypeExpense
}
