package pendingtask

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ceac-fct/placement-management/internal"
)

// Form payloads are partial by nature: a draft is saved before the form is
// complete, so none of these fields are required. The payload shape is keyed
// by the task type and checked strictly on decode, so a draft of one kind
// can never be replayed into another entity's create form.

type EmpresaForm struct {
	Nombre           string `json:"nombre,omitempty"`
	CIF              string `json:"cif,omitempty"`
	Direccion        string `json:"direccion,omitempty"`
	Localidad        string `json:"localidad,omitempty"`
	ContactoNombre   string `json:"contactoNombre,omitempty"`
	ContactoEmail    string `json:"contactoEmail,omitempty"`
	ContactoTelefono string `json:"contactoTelefono,omitempty"`
}

type EstudianteForm struct {
	Nombre           string `json:"nombre,omitempty"`
	Apellidos        string `json:"apellidos,omitempty"`
	DNI              string `json:"dni,omitempty"`
	Email            string `json:"email,omitempty"`
	Telefono         string `json:"telefono,omitempty"`
	CicloFormativoID string `json:"cicloFormativoId,omitempty"`
	Curso            string `json:"curso,omitempty"`
}

type AsignacionForm struct {
	EstudianteID string `json:"estudianteId,omitempty"`
	EmpresaID    string `json:"empresaId,omitempty"`
	FechaInicio  string `json:"fechaInicio,omitempty"`
	FechaFin     string `json:"fechaFin,omitempty"`
}

type CicloForm struct {
	Nombre   string `json:"nombre,omitempty"`
	Nivel    string `json:"nivel,omitempty"`
	Familia  string `json:"familia,omitempty"`
	Duracion string `json:"duracion,omitempty"`
}

// DecodeForm unmarshals the stored form data into the payload type matching
// the task type. Unknown fields are rejected. The returned value is one of
// *EmpresaForm, *EstudianteForm, *AsignacionForm or *CicloForm.
func (t *PendingTask) DecodeForm() (interface{}, error) {
	raw := []byte(t.FormData)
	if len(raw) == 0 {
		raw = []byte("{}")
	}

	switch t.Type {
	case TaskTypeEmpresa:
		f := &EmpresaForm{}
		return f, decodeStrict(raw, f)
	case TaskTypeEstudiante:
		f := &EstudianteForm{}
		return f, decodeStrict(raw, f)
	case TaskTypeAsignacion:
		f := &AsignacionForm{}
		return f, decodeStrict(raw, f)
	case TaskTypeCiclo:
		f := &CicloForm{}
		return f, decodeStrict(raw, f)
	default:
		return nil, internal.NewValidationError(
			fmt.Sprintf("unknown task type %q", t.Type), internal.ErrCodeInvalidTaskType)
	}
}

func decodeStrict(raw []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode form data: %w", err)
	}
	return nil
}

// validateForm checks that raw matches the payload shape for the given type.
// Run on create so a malformed draft is rejected before it is stored.
func validateForm(taskType TaskType, raw json.RawMessage) error {
	if !taskType.IsValid() {
		return internal.NewValidationError(
			fmt.Sprintf("unknown task type %q", taskType), internal.ErrCodeInvalidTaskType)
	}

	probe := PendingTask{Type: taskType, FormData: []byte(raw)}
	if _, err := probe.DecodeForm(); err != nil {
		return internal.NewValidationFieldError("formData",
			"formData does not match the task type", internal.ErrCodeValidationFailed)
	}
	return nil
}
