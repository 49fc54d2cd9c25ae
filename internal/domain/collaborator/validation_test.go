package collaborator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Colaboradores-api/internal/domain/collaborator"
)

var departments = []string{"Design", "TI", "Produto", "Marketing"}

func TestValidateBasic_DatosValidos_SinErrores(t *testing.T) {
	cases := []collaborator.BasicInfo{
		{Name: "Ana", Email: "ana@empresa.com", Active: true},
		{Name: "  João Silva ", Email: "joao.silva@flugo.com.br"},
		{Name: "x", Email: "a@b.c"},
	}
	for _, in := range cases {
		assert.Empty(t, collaborator.ValidateBasic(in), "entrada válida: %+v", in)
	}
}

func TestValidateBasic_CamposVacios_Required(t *testing.T) {
	errs := collaborator.ValidateBasic(collaborator.BasicInfo{Name: "   ", Email: "\t"})
	assert.Equal(t, map[string]string{
		"name":  collaborator.MsgRequired,
		"email": collaborator.MsgRequired,
	}, errs)
}

func TestValidateBasic_EmailMalformado_InvalidFormat(t *testing.T) {
	for _, email := range []string{"bad", "ana@", "@empresa.com", "ana@empresa", "ana maria@empresa.com", "a@@b.com"} {
		errs := collaborator.ValidateBasic(collaborator.BasicInfo{Name: "Ana", Email: email})
		assert.Equal(t, collaborator.MsgInvalidFormat, errs["email"], "email %q debe ser inválido", email)
		assert.NotContains(t, errs, "name")
	}
}

func TestValidateProfessional(t *testing.T) {
	assert.Empty(t, collaborator.ValidateProfessional(collaborator.ProfessionalInfo{Department: "TI"}, departments))
	assert.Empty(t, collaborator.ValidateProfessional(collaborator.ProfessionalInfo{Department: " Design "}, departments),
		"el valor se compara sin espacios")
	assert.Empty(t, collaborator.ValidateProfessional(collaborator.ProfessionalInfo{Department: "Cualquiera"}, nil),
		"sin lista configurada solo se exige que no esté vacío")

	errs := collaborator.ValidateProfessional(collaborator.ProfessionalInfo{Department: "  "}, departments)
	assert.Equal(t, collaborator.MsgRequired, errs["department"])

	errs = collaborator.ValidateProfessional(collaborator.ProfessionalInfo{Department: "Finanzas"}, departments)
	assert.Equal(t, collaborator.MsgNotAllowed, errs["department"])
}
