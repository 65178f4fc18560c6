package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/brdocs-api/internal/application/dto"
	"github.com/jhoicas/brdocs-api/internal/application/validation"
)

func requireFields(t *testing.T, err error) []dto.FieldError {
	t.Helper()
	var ve *validation.Error
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Fields)
	return ve.Fields
}

func TestCPFParam(t *testing.T) {
	c := validation.New()

	got, err := c.CPFParam("111.111.111-11")
	require.NoError(t, err, "la forma es válida aunque el dígito verificador no lo sea")
	assert.Equal(t, "111.111.111-11", got)

	for _, raw := range []string{"11111111111", "111.111.111-1", "abc", ""} {
		_, err := c.CPFParam(raw)
		fields := requireFields(t, err)
		assert.Equal(t, "cpf", fields[0].Campo, raw)
	}

	_, err = c.CPFParam("123")
	assert.Equal(t, "CPF inválido. Use o formato xxx.xxx.xxx-xx.", requireFields(t, err)[0].Mensagem)
}

func TestCNPJParam(t *testing.T) {
	c := validation.New()

	_, err := c.CNPJParam("11.222.333/0001-81")
	assert.NoError(t, err)

	_, err = c.CNPJParam("11222333000181")
	assert.Equal(t, "CNPJ inválido. Use o formato xx.xxx.xxx/xxxx-xx.", requireFields(t, err)[0].Mensagem)
}

func TestCNHParam(t *testing.T) {
	c := validation.New()

	_, err := c.CNHParam("12345678900")
	assert.NoError(t, err)

	_, err = c.CNHParam("1234567890")
	assert.Equal(t, "CNH deve ter 11 dígitos.", requireFields(t, err)[0].Mensagem)

	_, err = c.CNHParam("1234567890x")
	assert.Equal(t, "CNH deve conter apenas números.", requireFields(t, err)[0].Mensagem)
}

func TestCEPParam(t *testing.T) {
	c := validation.New()

	_, err := c.CEPParam("01001000")
	assert.NoError(t, err)

	_, err = c.CEPParam("01001-00")
	assert.Equal(t, "CEP deve conter apenas números.", requireFields(t, err)[0].Mensagem)

	_, err = c.CEPParam("0100100")
	assert.Equal(t, "CEP deve ter 8 dígitos.", requireFields(t, err)[0].Mensagem)
}

func TestCPFBody(t *testing.T) {
	c := validation.New()

	got, err := c.CPFBody([]byte(`{"cpf":"111.444.777-35"}`))
	require.NoError(t, err)
	assert.Equal(t, "111.444.777-35", got)

	_, err = c.CPFBody([]byte(`{"cpf":11144477735}`))
	assert.Equal(t, "cpf", requireFields(t, err)[0].Campo)

	_, err = c.CPFBody([]byte(`{`))
	assert.Equal(t, "body", requireFields(t, err)[0].Campo)

	_, err = c.CPFBody(nil)
	assert.True(t, validation.IsValidationError(err))
}

func TestCustomerBody(t *testing.T) {
	c := validation.New()
	body := `{"CPF":"111.444.777-35","Nome":"João","RG":"1","CEP":"01001000","Rua":"R",` +
		`"Bairro":"B","Cidade":"C","Estado":"SP","Email":"joao@exemplo.com"}`

	got, err := c.CustomerBody([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, "João", got.Nome)
	assert.Equal(t, "joao@exemplo.com", got.Email)
}

func TestCustomerBody_ErroresPorCampo(t *testing.T) {
	c := validation.New()

	_, err := c.CustomerBody([]byte(`{"CPF":"123","Email":"no-es-email"}`))
	fields := requireFields(t, err)

	byField := map[string]string{}
	for _, f := range fields {
		byField[f.Campo] = f.Mensagem
	}
	assert.Equal(t, "CPF inválido. Use o formato xxx.xxx.xxx-xx.", byField["CPF"])
	assert.Equal(t, "Nome é obrigatório.", byField["Nome"])
	assert.Equal(t, "Rua é obrigatória.", byField["Rua"])
	assert.Equal(t, "Email inválido.", byField["Email"])
	assert.Len(t, fields, 9)
}
