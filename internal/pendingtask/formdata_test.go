package pendingtask

import (
	"gorm.io/datatypes"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("FormData", func() {
	ginkgo.Describe("DecodeForm", func() {
		ginkgo.It("should decode an estudiante draft into an EstudianteForm", func() {
			task := &PendingTask{
				Type:     TaskTypeEstudiante,
				FormData: datatypes.JSON(`{"nombre":"Lucía","apellidos":"Ferrer","cicloFormativoId":"c-1"}`),
			}

			form, err := task.DecodeForm()
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(form).To(gomega.Equal(&EstudianteForm{
				Nombre:           "Lucía",
				Apellidos:        "Ferrer",
				CicloFormativoID: "c-1",
			}))
		})

		ginkgo.It("should decode an asignacion draft with partial dates", func() {
			task := &PendingTask{
				Type:     TaskTypeAsignacion,
				FormData: datatypes.JSON(`{"estudianteId":"e-1","fechaInicio":"2026-03-01"}`),
			}

			form, err := task.DecodeForm()
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(form).To(gomega.Equal(&AsignacionForm{
				EstudianteID: "e-1",
				FechaInicio:  "2026-03-01",
			}))
		})

		ginkgo.It("should treat empty form data as an empty form", func() {
			task := &PendingTask{Type: TaskTypeCiclo}

			form, err := task.DecodeForm()
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(form).To(gomega.Equal(&CicloForm{}))
		})

		ginkgo.It("should reject fields belonging to a different form kind", func() {
			task := &PendingTask{
				Type:     TaskTypeCiclo,
				FormData: datatypes.JSON(`{"cif":"B12345678"}`),
			}

			_, err := task.DecodeForm()
			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("should fail on an unknown task type", func() {
			task := &PendingTask{Type: "factura", FormData: datatypes.JSON(`{}`)}

			_, err := task.DecodeForm()
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("TaskType", func() {
		ginkgo.It("should accept the four entity kinds", func() {
			gomega.Expect(TaskTypeEmpresa.IsValid()).To(gomega.BeTrue())
			gomega.Expect(TaskTypeEstudiante.IsValid()).To(gomega.BeTrue())
			gomega.Expect(TaskTypeAsignacion.IsValid()).To(gomega.BeTrue())
			gomega.Expect(TaskTypeCiclo.IsValid()).To(gomega.BeTrue())
		})

		ginkgo.It("should reject anything else", func() {
			gomega.Expect(TaskType("").IsValid()).To(gomega.BeFalse())
			gomega.Expect(TaskType("factura").IsValid()).To(gomega.BeFalse())
		})
	})
})
