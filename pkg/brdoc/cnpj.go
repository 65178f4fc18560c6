package brdoc

var (
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// IsCNPJ valida un CNPJ con o sin máscara ("11.222.333/0001-81" o "11222333000181").
func IsCNPJ(s string) bool {
	d, ok := stripDelimiters(s, "./-")
	if !ok || len(d) != 14 || allEqual(d) {
		return false
	}
	return cnpjDigit(d, cnpjWeights1) == d[12] && cnpjDigit(d, cnpjWeights2) == d[13]
}

func cnpjDigit(d []int, weights []int) int {
	r := weightedSum(d, weights) % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}
