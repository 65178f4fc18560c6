package brdoc

// IsCNH valida el número de registro de la CNH (11 dígitos, sin máscara) con el algoritmo
// de los DETRAN: el primer dígito usa pesos 9..1 y, cuando su resto es 10, descuenta 2 del
// segundo dígito.
func IsCNH(s string) bool {
	d, ok := stripDelimiters(s, "")
	if !ok || len(d) != 11 || allEqual(d) {
		return false
	}

	var sum int
	for i := 0; i < 9; i++ {
		sum += d[i] * (9 - i)
	}
	dv1 := sum % 11
	discount := 0
	if dv1 >= 10 {
		dv1 = 0
		discount = 2
	}

	sum = 0
	for i := 0; i < 9; i++ {
		sum += d[i] * (i + 1)
	}
	dv2 := sum % 11
	if dv2 >= 10 {
		dv2 = 0
	} else {
		dv2 -= discount
	}

	return dv1 == d[9] && dv2 == d[10]
}
