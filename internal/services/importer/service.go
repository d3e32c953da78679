package importer

import (
	"strings"

	"lending-finance-backend/internal/models"
)

// Service parses raw bank/payment-app statement text into candidate
// transactions. It holds no state; Parse is a pure function of its input.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Minimum fields a line must split into before it produces a candidate.
const (
	minYapeFields    = 4
	minGenericFields = 3
)

// Parse transforms decoded statement text into an ImportResult. Malformed
// rows never abort the batch: they either carry validation errors or, when
// they cannot even be split into the minimum number of fields, are dropped.
func (s *Service) Parse(text string) models.ImportResult {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	result := models.ImportResult{Transactions: []models.ImportTransaction{}}
	if len(lines) == 0 {
		result.Recount()
		return result
	}

	delimiter := detectDelimiter(lines[0])
	yape := detectYapeFormat(lines[0])

	start := 0
	if detectHeader(lines[0]) {
		start = 1
	}

	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if isEmptyLine(line, delimiter) {
			continue
		}

		var tx *models.ImportTransaction
		if yape {
			tx = parseYapeLine(line, delimiter)
		} else {
			tx = parseGenericLine(line, delimiter, i+1)
		}
		if tx != nil {
			result.Transactions = append(result.Transactions, *tx)
		}
	}

	result.Recount()
	return result
}

// Validate recomputes the validation state of a candidate row, replacing any
// prior error list. Used both after raw parsing and when the user re-edits a
// row before saving.
func (s *Service) Validate(tx models.ImportTransaction) models.ImportTransaction {
	return validate(tx)
}

// SuggestCategory attaches a heuristic category label based on the row's
// description and type. The suggestion is a hint only.
func (s *Service) SuggestCategory(tx models.ImportTransaction) models.ImportTransaction {
	return suggestCategory(tx)
}

// detectDelimiter picks the field separator from the first line: semicolon
// when strictly more frequent than comma, comma otherwise. The whole file is
// split with this single delimiter.
func detectDelimiter(line string) byte {
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}
	return ','
}

// detectHeader reports whether the first line looks like a column header.
func detectHeader(line string) bool {
	lower := strings.ToLower(line)
	for _, marker := range []string{"fecha", "date", "monto", "amount", "descripcion", "description", "tipo"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// isEmptyLine reports whether a line carries no data once delimiters and
// whitespace are stripped.
func isEmptyLine(line string, delimiter byte) bool {
	if strings.TrimSpace(line) == "" {
		return true
	}
	stripped := strings.ReplaceAll(line, string(delimiter), "")
	return strings.TrimSpace(stripped) == ""
}

// splitLine splits a physical line on the delimiter, honoring double quotes.
// Surrounding quotes are stripped and the U+FFFD substitution character left
// behind by mis-decoded exports is repaired to 'ó'.
func splitLine(line string, delimiter byte) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case c == delimiter && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))

	for i, f := range fields {
		f = strings.Trim(f, `"`)
		f = strings.ReplaceAll(f, "�", "ó")
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

// field returns the trimmed column at index i, or "" when the row is short.
func field(cols []string, i int) string {
	if i < len(cols) {
		return strings.TrimSpace(cols[i])
	}
	return ""
}

// validate derives the error list from the parsed fields. IsValid is exactly
// "zero validation errors".
func validate(tx models.ImportTransaction) models.ImportTransaction {
	errs := []string{}

	if tx.TransactionDate == "" {
		errs = append(errs, "Fecha inválida")
	}
	if !tx.Amount.IsPositive() {
		errs = append(errs, "Monto inválido")
	}
	if strings.TrimSpace(tx.Description) == "" {
		errs = append(errs, "Descripción vacía")
	}

	tx.ValidationErrors = errs
	tx.IsValid = len(errs) == 0
	return tx
}
