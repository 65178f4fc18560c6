// Package validation comprueba la forma de parámetros de ruta y cuerpos JSON antes de
// que lleguen a los casos de uso.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/brdocs-api/internal/application/dto"
)

var (
	cpfFormat  = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	cnpjFormat = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)
	digitsOnly = regexp.MustCompile(`^\d+$`)
)

// messages mensajes por "campo.tag"; el campo es el nombre JSON.
var messages = map[string]string{
	"cpf.required":     "CPF é obrigatório.",
	"cpf.cpf_format":   "CPF inválido. Use o formato xxx.xxx.xxx-xx.",
	"CPF.required":     "CPF é obrigatório.",
	"CPF.cpf_format":   "CPF inválido. Use o formato xxx.xxx.xxx-xx.",
	"cnpj.required":    "CNPJ é obrigatório.",
	"cnpj.cnpj_format": "CNPJ inválido. Use o formato xx.xxx.xxx/xxxx-xx.",
	"cnh.len":          "CNH deve ter 11 dígitos.",
	"cnh.digits":       "CNH deve conter apenas números.",
	"cep.len":          "CEP deve ter 8 dígitos.",
	"cep.digits":       "CEP deve conter apenas números.",
	"Nome.required":    "Nome é obrigatório.",
	"RG.required":      "RG é obrigatório.",
	"CEP.required":     "CEP é obrigatório.",
	"Rua.required":     "Rua é obrigatória.",
	"Bairro.required":  "Bairro é obrigatório.",
	"Cidade.required":  "Cidade é obrigatória.",
	"Estado.required":  "Estado é obrigatório.",
	"Email.required":   "Email inválido.",
	"Email.email":      "Email inválido.",
}

type cpfParam struct {
	CPF string `json:"cpf" validate:"required,cpf_format"`
}

type cnpjParam struct {
	CNPJ string `json:"cnpj" validate:"required,cnpj_format"`
}

type cnhParam struct {
	CNH string `json:"cnh" validate:"len=11,digits"`
}

type cepParam struct {
	CEP string `json:"cep" validate:"len=8,digits"`
}

// Checker valida la entrada con go-playground/validator y etiquetas propias.
// Es seguro para uso concurrente.
type Checker struct {
	v *validator.Validate
}

// New construye el Checker registrando cpf_format, cnpj_format y digits.
func New() *Checker {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "cpf_format", cpfFormat)
	mustRegister(v, "cnpj_format", cnpjFormat)
	mustRegister(v, "digits", digitsOnly)
	return &Checker{v: v}
}

func mustRegister(v *validator.Validate, tag string, re *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("validation: registrar %s: %v", tag, err))
	}
}

// CPFParam valida el CPF de la ruta (formato xxx.xxx.xxx-xx).
func (c *Checker) CPFParam(raw string) (string, error) {
	p := cpfParam{CPF: raw}
	if err := c.check("cpf.param", p); err != nil {
		return "", err
	}
	return p.CPF, nil
}

// CNPJParam valida el CNPJ de la ruta (formato xx.xxx.xxx/xxxx-xx).
func (c *Checker) CNPJParam(raw string) (string, error) {
	p := cnpjParam{CNPJ: raw}
	if err := c.check("cnpj.param", p); err != nil {
		return "", err
	}
	return p.CNPJ, nil
}

// CNHParam valida la CNH de la ruta (11 dígitos).
func (c *Checker) CNHParam(raw string) (string, error) {
	p := cnhParam{CNH: raw}
	if err := c.check("cnh.param", p); err != nil {
		return "", err
	}
	return p.CNH, nil
}

// CEPParam valida el CEP de la ruta (8 dígitos).
func (c *Checker) CEPParam(raw string) (string, error) {
	p := cepParam{CEP: raw}
	if err := c.check("cep.param", p); err != nil {
		return "", err
	}
	return p.CEP, nil
}

// CPFBody decodifica y valida {"cpf": "..."}.
func (c *Checker) CPFBody(body []byte) (string, error) {
	var in dto.CPFRequest
	if err := decode("cpf.body", body, &in); err != nil {
		return "", err
	}
	if err := c.check("cpf.body", in); err != nil {
		return "", err
	}
	return in.CPF, nil
}

// CustomerBody decodifica y valida el cuerpo de un cliente.
func (c *Checker) CustomerBody(body []byte) (*dto.Customer, error) {
	var in dto.Customer
	if err := decode("clientes.body", body, &in); err != nil {
		return nil, err
	}
	if err := c.Customer(in); err != nil {
		return nil, err
	}
	return &in, nil
}

// Customer valida un cliente ya decodificado (lo usa también el importador CSV).
func (c *Checker) Customer(in dto.Customer) error {
	return c.check("clientes.body", in)
}

// check traduce validator.ValidationErrors a *Error; cualquier otro fallo es de programación
// y se devuelve tal cual para que termine en un 500.
func (c *Checker) check(op string, s any) error {
	err := c.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%s: %w", op, err)
	}
	out := &Error{Op: op, Fields: make([]dto.FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, dto.FieldError{Campo: fe.Field(), Mensagem: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	if m, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return m
	}
	return fmt.Sprintf("%s inválido.", fe.Field())
}

func decode(op string, body []byte, out any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return newError(op, "body", "Corpo da requisição vazio.")
	}
	if err := json.Unmarshal(body, out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return newError(op, typeErr.Field, fmt.Sprintf("%s deve ser texto.", typeErr.Field))
		}
		return newError(op, "body", "JSON inválido.")
	}
	return nil
}
