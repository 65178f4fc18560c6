package brdoc

import "fmt"

// IsCPF valida un CPF con o sin máscara ("111.444.777-35" o "11144477735").
// Verifica los dos dígitos verificadores (módulo 11).
func IsCPF(s string) bool {
	d, ok := stripDelimiters(s, ".-")
	if !ok || len(d) != 11 || allEqual(d) {
		return false
	}
	return cpfDigit(d[:9]) == d[9] && cpfDigit(d[:10]) == d[10]
}

// cpfDigit calcula un dígito verificador: pesos descendentes desde len(base)+1 hasta 2.
func cpfDigit(base []int) int {
	var sum int
	for i, v := range base {
		sum += v * (len(base) + 1 - i)
	}
	r := (sum * 10) % 11
	if r == 10 {
		return 0
	}
	return r
}

// FormatCPF aplica la máscara xxx.xxx.xxx-xx a un CPF de 11 dígitos.
// Devuelve la entrada sin cambios si no tiene exactamente 11 dígitos.
func FormatCPF(s string) string {
	d := OnlyDigits(s)
	if len(d) != 11 {
		return s
	}
	return fmt.Sprintf("%s.%s.%s-%s", d[0:3], d[3:6], d[6:9], d[9:11])
}
