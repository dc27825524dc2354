package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/ceac-fct/placement-management/internal/auth"
	"github.com/ceac-fct/placement-management/internal/ciclo"
	"github.com/ceac-fct/placement-management/internal/user"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with the standard ciclos formativos and a bootstrap admin",
	Long: `Provisions the catalog of ciclos formativos offered by the center and, when
SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD are set, a bootstrap administrator
account. Existing rows are left untouched; the command is safe to re-run.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		gormDB, err := initGorm(db)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		seeded, err := seedCiclos(gormDB)
		if err != nil {
			log.Fatalf("failed to seed ciclos: %v", err)
		}
		fmt.Printf("Seeded %d ciclos formativos\n", seeded)

		if err := seedAdmin(gormDB, cfg.Security.BCryptCost); err != nil {
			log.Fatalf("failed to seed admin: %v", err)
		}
	},
}

type seedCiclo struct {
	nombre   string
	nivel    string
	duracion string
}

// The center's catalog, grouped by familia profesional.
var ciclosCatalog = map[string][]seedCiclo{
	"Administración y Gestión": {
		{"Administración y Finanzas", "Superior", "2000"},
		{"Asistencia a la dirección", "Superior", "2000"},
		{"Gestión administrativa", "Medio", "2000"},
	},
	"Servicios Socioculturales y a la Comunidad": {
		{"Integración social", "Superior", "2000"},
		{"Educación infantil", "Superior", "2000"},
		{"Atención a personas en Situación de Dependencia", "Medio", "2000"},
	},
	"Comercio y Marketing": {
		{"Comercio internacional", "Superior", "2000"},
		{"Transporte y Logística", "Superior", "2000"},
		{"Marketing y Publicidad", "Superior", "2000"},
	},
	"Imagen y Sonido": {
		{"Animaciones 3D, Juegos y Entornos Interactivos", "Superior", "2000"},
	},
	"Hostelería y Turismo": {
		{"Gestión de alojamientos turísticos", "Superior", "2000"},
		{"Cocina y Gastronomía", "Medio", "2000"},
	},
	"Instalaciones y Mantenimiento": {
		{"Instalaciones Frigoríficas y de Climatización", "Medio", "2000"},
		{"Mecánica de Vehículos Automóviles", "Medio", "2000"},
		{"Instalaciones Eléctricas y Automáticas", "Medio", "2000"},
		{"Mantenimiento y Servicios a la Producción", "Medio", "2000"},
	},
	"Sanidad": {
		{"Anatomía Patológica y Citodiagnóstico", "Superior", "2000"},
		{"Dietética", "Superior", "2000"},
		{"Higiene Bucodental", "Superior", "2000"},
		{"Imagen para el Diagnóstico y Medicina Nuclear", "Superior", "2000"},
		{"Laboratorio Clínico y Biomédico", "Superior", "2000"},
		{"Prótesis Dentales", "Superior", "2000"},
		{"Radioterapia y Dosimetría", "Superior", "2000"},
		{"Documentación y Administración Sanitarias", "Superior", "2000"},
		{"Cuidados Auxiliares Enfermería", "Medio", "1400"},
		{"Emergencias Sanitarias", "Medio", "2000"},
		{"Farmacia y Parafarmacia", "Medio", "2000"},
	},
	"Informática y Comunicaciones": {
		{"Administración de Sistemas Informáticos en Red (ASIR)", "Superior", "2000"},
		{"Desarrollo de Aplicaciones Multiplataforma", "Superior", "2000"},
		{"Desarrollo de Aplicaciones Web", "Superior", "2000"},
		{"Sistemas Microinformáticos y Redes (SMR)", "Medio", "2000"},
	},
}

func seedCiclos(db *gorm.DB) (int, error) {
	seeded := 0
	for familia, ciclos := range ciclosCatalog {
		for _, c := range ciclos {
			var count int64
			if err := db.Model(&ciclo.CicloFormativo{}).
				Where("nombre = ?", c.nombre).
				Count(&count).Error; err != nil {
				return seeded, err
			}
			if count > 0 {
				continue
			}

			row := ciclo.NewCicloFormativo(ciclo.CreateCicloDTO{
				Nombre:   c.nombre,
				Nivel:    c.nivel,
				Familia:  familia,
				Duracion: c.duracion,
			})
			if err := db.Create(row).Error; err != nil {
				return seeded, err
			}
			seeded++
		}
	}
	return seeded, nil
}

func seedAdmin(db *gorm.DB, bcryptCost int) error {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		fmt.Println("SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD not set; skipping admin bootstrap")
		return nil
	}

	var count int64
	if err := db.Model(&user.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		fmt.Println("admin user already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}

	admin := user.NewUser(user.CreateUserDTO{
		Email:    email,
		Password: password,
		Nombre:   "Administrador",
		Role:     auth.RoleAdmin,
	}, string(hash))

	if err := db.Create(admin).Error; err != nil {
		return err
	}
	fmt.Println("Seeded admin user:", email)
	return nil
}
