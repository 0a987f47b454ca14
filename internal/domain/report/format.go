package report

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencyPrefix = "Rp"

var printer = message.NewPrinter(language.Indonesian)

// Sufixos compactos do id-ID: ribu, juta, miliar, triliun
var compactUnits = []struct {
	threshold float64
	suffix    string
}{
	{1e12, "T"},
	{1e9, "M"},
	{1e6, "jt"},
	{1e3, "rb"},
}

// FormatPrice formata em IDR compacto: Rp1,5 jt, Rp2 M, Rp750 rb, Rp500
func FormatPrice(v float64) string {
	// arredonda antes do sinal para -0,4 não virar "-Rp0"
	v = math.Round(v)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	for i, u := range compactUnits {
		if v < u.threshold {
			continue
		}
		scaled := roundCompact(v / u.threshold)
		// 999.950 vira "1 jt" e não "1.000 rb"
		if scaled >= 1000 && i > 0 {
			scaled = roundCompact(v / compactUnits[i-1].threshold)
			u = compactUnits[i-1]
		}
		return sign + currencyPrefix + decimalComma(scaled) + " " + u.suffix
	}

	return sign + currencyPrefix + strconv.FormatFloat(v, 'f', 0, 64)
}

// FormatCurrency formata o valor completo com agrupamento id-ID: Rp1.500.000
func FormatCurrency(v float64) string {
	return printer.Sprintf("%s%d", currencyPrefix, int64(math.Round(v)))
}

// FormatCount formata contagens com separador de milhar
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// roundCompact mantém uma casa decimal abaixo de 10 e nenhuma acima
func roundCompact(v float64) float64 {
	if v < 10 {
		r := math.Round(v*10) / 10
		if r < 10 {
			return r
		}
	}
	return math.Round(v)
}

func decimalComma(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	return strings.Replace(s, ".", ",", 1)
}
