package empresa

import (
	"github.com/ceac-fct/placement-management/internal/core/common/validation"
)

type CreateEmpresaDTO struct {
	Nombre           string `json:"nombre"`
	CIF              string `json:"cif"`
	Direccion        string `json:"direccion"`
	Localidad        string `json:"localidad"`
	ContactoNombre   string `json:"contactoNombre"`
	ContactoEmail    string `json:"contactoEmail"`
	ContactoTelefono string `json:"contactoTelefono"`

	// PendingTaskID consumes a saved draft atomically with the create.
	PendingTaskID *string `json:"pendingTaskId,omitempty"`
}

type UpdateEmpresaDTO struct {
	Nombre           string `json:"nombre"`
	CIF              string `json:"cif"`
	Direccion        string `json:"direccion"`
	Localidad        string `json:"localidad"`
	ContactoNombre   string `json:"contactoNombre"`
	ContactoEmail    string `json:"contactoEmail"`
	ContactoTelefono string `json:"contactoTelefono"`
}

type EmpresasResponse struct {
	Empresas []*Empresa `json:"empresas"`
}

func (d CreateEmpresaDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("nombre", d.Nombre).Required().MaxLength(200)
	v.Field("cif", d.CIF).Required().MaxLength(20)
	v.Field("contactoEmail", d.ContactoEmail).Email()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func (d UpdateEmpresaDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("nombre", d.Nombre).Required().MaxLength(200)
	v.Field("cif", d.CIF).Required().MaxLength(20)
	v.Field("contactoEmail", d.ContactoEmail).Email()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}
