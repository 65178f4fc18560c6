// Package brdoc valida el formato y los dígitos verificadores de documentos brasileños
// (CPF, CNPJ, CNH) y del código postal (CEP).
//
// Todas las funciones son puras y totales: nunca hacen panic y devuelven false ante
// cualquier entrada inválida.
package brdoc

// OnlyDigits devuelve únicamente los dígitos ASCII de s, en orden.
func OnlyDigits(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// stripDelimiters quita los separadores admitidos y falla si queda cualquier otro carácter
// que no sea dígito.
func stripDelimiters(s string, delims string) ([]int, bool) {
	digits := make([]int, 0, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= '0' && ch <= '9':
			digits = append(digits, int(ch-'0'))
		case isDelimiter(ch, delims):
		default:
			return nil, false
		}
	}
	return digits, true
}

func isDelimiter(ch byte, delims string) bool {
	for i := 0; i < len(delims); i++ {
		if delims[i] == ch {
			return true
		}
	}
	return false
}

// allEqual: secuencias como 111.111.111-11 pasan el módulo 11 pero no son documentos emitidos.
func allEqual(d []int) bool {
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			return false
		}
	}
	return true
}

func weightedSum(d []int, weights []int) int {
	var sum int
	for i, w := range weights {
		sum += d[i] * w
	}
	return sum
}
