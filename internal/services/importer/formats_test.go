package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lending-finance-backend/internal/models"
)

const yapeHeader = "Tipo de Transacción;Origen;Destino;Monto;Mensaje;Fecha de operación"

func TestParse_YapeExpense(t *testing.T) {
	s := NewService()
	input := yapeHeader + "\nPAGASTE;Juan Perez;Inversiones Jharfer;S/ 25.50;;17/11/2025 19:16:08\n"
	result := s.Parse(input)

	require.Len(t, result.Transactions, 1)
	tx := result.Transactions[0]
	assert.True(t, tx.IsValid)
	assert.Equal(t, models.TypeExpense, tx.Type)
	assert.Equal(t, "Pago a Inversiones Jharfer", tx.Description)
	assert.Equal(t, "25.5", tx.Amount.String())
	assert.Equal(t, "2025-11-17", tx.TransactionDate)
	assert.Equal(t, "Yape - PAGASTE", tx.Reference)
	assert.Equal(t, "Alimentación", tx.SuggestedCategory)
}

func TestParse_YapeIncomeWithMessage(t *testing.T) {
	s := NewService()
	input := yapeHeader + "\nTE PAGÓ;Maria Lopez;Juan Perez;100,00;Pago de deuda;01/12/2025 08:00:00\n"
	result := s.Parse(input)

	require.Len(t, result.Transactions, 1)
	tx := result.Transactions[0]
	assert.True(t, tx.IsValid)
	assert.Equal(t, models.TypeIncome, tx.Type)
	assert.Equal(t, "Recibido de Maria Lopez - Pago de deuda", tx.Description)
	assert.Equal(t, "Pago de deuda", tx.Notes)
	assert.Equal(t, "100", tx.Amount.String())
	assert.Equal(t, "2025-12-01", tx.TransactionDate)
	assert.Equal(t, "Yape - TE PAGÓ", tx.Reference)
}

func TestParse_YapeUnknownTypeToken(t *testing.T) {
	s := NewService()
	input := yapeHeader + "\nTRANSFERISTE;A;B;10.00;;17/11/2025 19:16:08\n"
	result := s.Parse(input)

	require.Len(t, result.Transactions, 1)
	tx := result.Transactions[0]
	assert.False(t, tx.IsValid)
	require.Len(t, tx.ValidationErrors, 1)
	assert.Equal(t, "Tipo de transacción desconocido: TRANSFERISTE", tx.ValidationErrors[0])
	// No further parsing for that row.
	assert.True(t, tx.Amount.IsZero())
	assert.Empty(t, tx.TransactionDate)
	assert.Empty(t, tx.Reference)
}

func TestParse_YapeBadAmountAndDateKeepRow(t *testing.T) {
	s := NewService()
	input := yapeHeader + "\nPAGASTE;Juan Perez;Bodega Rosa;no-monto;;17/11/2025\n"
	result := s.Parse(input)

	require.Len(t, result.Transactions, 1)
	tx := result.Transactions[0]
	assert.False(t, tx.IsValid)
	assert.Contains(t, tx.ValidationErrors, "Monto inválido")
	assert.Contains(t, tx.ValidationErrors, "Fecha inválida")
	// Description survives so the user can fix the row in place.
	assert.Equal(t, "Pago a Bodega Rosa", tx.Description)
}

func TestParse_YapeShortRowDropped(t *testing.T) {
	s := NewService()
	input := yapeHeader + "\nPAGASTE;Juan Perez;Bodega Rosa\n"
	result := s.Parse(input)

	assert.Empty(t, result.Transactions)
	assert.Equal(t, 0, result.TotalRows)
}

func TestParse_YapeDetectionWithoutHeader(t *testing.T) {
	// A Yape export with no header line is still recognized by the type
	// token in the first data line.
	s := NewService()
	input := "PAGASTE;Juan Perez;Farmacia Central;15.00;;02/01/2025 10:30:00\n"
	result := s.Parse(input)

	require.Len(t, result.Transactions, 1)
	tx := result.Transactions[0]
	assert.True(t, tx.IsValid)
	assert.Equal(t, models.TypeExpense, tx.Type)
	assert.Equal(t, "2025-01-02", tx.TransactionDate)
	assert.Equal(t, "Salud", tx.SuggestedCategory)
}

func TestParseType(t *testing.T) {
	assert.Equal(t, models.TypeIncome, parseType("INGRESO"))
	assert.Equal(t, models.TypeIncome, parseType("income"))
	assert.Equal(t, models.TypeIncome, parseType("Credito"))
	assert.Equal(t, models.TypeExpense, parseType("EXPENSE"))
	assert.Equal(t, models.TypeExpense, parseType("gasto"))
}

func TestGenericFormats_PriorityOrder(t *testing.T) {
	// A row where both the first and second hypothesis could extract values
	// resolves to the first one in priority order.
	cols := []string{"17/11/2025", "100.00", "200.00"}

	f, ok := tryDateAmountDescription(cols)
	require.True(t, ok)
	assert.Equal(t, "100", f.amount.String())
	assert.Equal(t, "200.00", f.description)
}
