package entity

// Customer representa un cliente del cadastro. TaxID (CPF con máscara xxx.xxx.xxx-xx)
// es la clave única.
type Customer struct {
	TaxID                  string
	Name                   string
	NationalRegistryNumber string // RG
	PostalCode             string // CEP
	Street                 string
	District               string
	City                   string
	State                  string
	Email                  string
}

// SeedCustomer es el registro con el que arranca todo almacén.
func SeedCustomer() Customer {
	return Customer{
		TaxID:                  "123.456.789-00",
		Name:                   "Maria Joana",
		NationalRegistryNumber: "12.345.678-9",
		PostalCode:             "12345-678",
		Street:                 "Rua Principal",
		District:               "Centro",
		City:                   "Minha Cidade",
		State:                  "SP",
		Email:                  "maria@exemplo.com",
	}
}
