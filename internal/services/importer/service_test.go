package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lending-finance-backend/internal/models"
)

func TestParse_HeaderAndGenericRow(t *testing.T) {
	s := NewService()
	result := s.Parse("Fecha,Monto,Descripcion,Tipo\n2024-01-15,100.50,Venta de producto,INCOME\n")

	require.Len(t, result.Transactions, 1)
	assert.Equal(t, 1, result.TotalRows)
	assert.Equal(t, 1, result.ValidRows)
	assert.Equal(t, 0, result.InvalidRows)

	tx := result.Transactions[0]
	assert.True(t, tx.IsValid)
	assert.Empty(t, tx.ValidationErrors)
	assert.Equal(t, models.TypeIncome, tx.Type)
	assert.Equal(t, "100.5", tx.Amount.String())
	assert.Equal(t, "2024-01-15", tx.TransactionDate)
	assert.Equal(t, "Venta de producto", tx.Description)
}

func TestParse_DelimiterDetection(t *testing.T) {
	assert.Equal(t, byte(';'), detectDelimiter("a;b,c;d"))
	assert.Equal(t, byte(','), detectDelimiter("a,b,c;d"))
}

func TestParse_NegativeAmountIsExpense(t *testing.T) {
	s := NewService()
	result := s.Parse("17/11/2025,-50.25,Compra supermercado\n")

	require.Len(t, result.Transactions, 1)
	tx := result.Transactions[0]
	assert.True(t, tx.IsValid)
	assert.Equal(t, models.TypeExpense, tx.Type)
	assert.Equal(t, "50.25", tx.Amount.String())
	assert.Equal(t, "2025-11-17", tx.TransactionDate)
}

func TestParse_DateDescriptionAmountLayout(t *testing.T) {
	s := NewService()
	result := s.Parse("17/11/2025,Pago de luz,-85.90\n")

	require.Len(t, result.Transactions, 1)
	tx := result.Transactions[0]
	assert.True(t, tx.IsValid)
	assert.Equal(t, "Pago de luz", tx.Description)
	assert.Equal(t, "85.9", tx.Amount.String())
	assert.Equal(t, models.TypeExpense, tx.Type)
}

func TestParse_AmountDateDescriptionLayout(t *testing.T) {
	s := NewService()
	result := s.Parse("250.00,17/11/2025,Cobro factura\n")

	require.Len(t, result.Transactions, 1)
	tx := result.Transactions[0]
	assert.True(t, tx.IsValid)
	assert.Equal(t, "Cobro factura", tx.Description)
	assert.Equal(t, "250", tx.Amount.String())
	assert.Equal(t, models.TypeIncome, tx.Type)
}

func TestParse_ZeroAmountInvalid(t *testing.T) {
	s := NewService()
	result := s.Parse("2024-01-15,0,Algo\n")

	require.Len(t, result.Transactions, 1)
	tx := result.Transactions[0]
	assert.False(t, tx.IsValid)
	assert.Contains(t, tx.ValidationErrors, "Monto inválido")
	assert.Equal(t, 0, result.ValidRows)
	assert.Equal(t, 1, result.InvalidRows)
}

func TestParse_UnrecognizedFormatKeepsRow(t *testing.T) {
	s := NewService()
	result := s.Parse("foo,bar,baz\n")

	require.Len(t, result.Transactions, 1)
	tx := result.Transactions[0]
	assert.False(t, tx.IsValid)
	require.Len(t, tx.ValidationErrors, 1)
	assert.Equal(t, "Línea 1: Formato no reconocido", tx.ValidationErrors[0])
	assert.True(t, tx.Amount.IsZero())
	assert.Empty(t, tx.TransactionDate)
}

func TestParse_ShortRowDropped(t *testing.T) {
	s := NewService()
	result := s.Parse("Fecha,Monto,Descripcion\n2024-01-15,100\n2024-01-16,50.00,Venta\n")

	// The two-field line never becomes a candidate and is not counted.
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, 1, result.TotalRows)
	assert.Equal(t, "Venta", result.Transactions[0].Description)
}

func TestParse_SkipsEmptyAndDelimiterOnlyLines(t *testing.T) {
	s := NewService()
	result := s.Parse("Fecha,Monto,Descripcion\n\n,,,\n   \n2024-01-16,50.00,Venta\n")

	require.Len(t, result.Transactions, 1)
	assert.Equal(t, 1, result.TotalRows)
}

func TestParse_CountInvariants(t *testing.T) {
	s := NewService()
	result := s.Parse("Fecha,Monto,Descripcion\n2024-01-15,100.00,Venta\n2024-01-16,0,Nada\nfoo,bar,baz\n")

	assert.Equal(t, len(result.Transactions), result.TotalRows)
	assert.Equal(t, result.TotalRows, result.ValidRows+result.InvalidRows)

	valid := 0
	for _, tx := range result.Transactions {
		if tx.IsValid {
			valid++
		}
	}
	assert.Equal(t, valid, result.ValidRows)
}

func TestParse_Idempotent(t *testing.T) {
	input := "Fecha;Monto;Descripcion\n17/11/2025;1.234,56;Compra tienda\nfoo;bar;baz\n"
	s := NewService()

	first := s.Parse(input)
	second := s.Parse(input)
	assert.Equal(t, first, second)
}

func TestParse_EmptyInput(t *testing.T) {
	s := NewService()
	result := s.Parse("")

	assert.Equal(t, 0, result.TotalRows)
	assert.Equal(t, 0, result.ValidRows)
	assert.Equal(t, 0, result.InvalidRows)
	assert.Empty(t, result.Transactions)
}

func TestParse_QuotedFieldsAndRepairedCharacters(t *testing.T) {
	s := NewService()
	result := s.Parse("17/11/2025,\"1.234,56\",\"Pago, con coma\"\n")

	require.Len(t, result.Transactions, 1)
	tx := result.Transactions[0]
	assert.True(t, tx.IsValid)
	assert.Equal(t, "1234.56", tx.Amount.String())
	assert.Equal(t, "Pago, con coma", tx.Description)

	fields := splitLine("PAG�,algo", ',')
	assert.Equal(t, "PAGó", fields[0])
}

func TestValidate_RecomputesErrorList(t *testing.T) {
	s := NewService()
	tx := models.ImportTransaction{
		Description:      "Venta",
		TransactionDate:  "2024-01-15",
		ValidationErrors: []string{"stale error"},
	}

	tx = s.Validate(tx)
	assert.False(t, tx.IsValid)
	assert.Equal(t, []string{"Monto inválido"}, tx.ValidationErrors)
}
