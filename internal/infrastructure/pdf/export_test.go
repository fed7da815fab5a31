package pdf

// Exporta helpers internos para los tests externos.
var (
	FormatInt   = formatInt
	FormatMoney = formatMoney
)
