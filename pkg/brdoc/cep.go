package brdoc

// IsCEP indica si s tiene exactamente 8 dígitos, sin guion.
func IsCEP(s string) bool {
	if len(s) != 8 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
