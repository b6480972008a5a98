package main

import (
	"log"
	"os"
	"time"

	"hr-chatbot-be/internal/model"
	"hr-chatbot-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds a local development database: an admin account plus a small HR
// dataset so the pipeline has something to query. In production the HR
// tables are loaded by the institutional ETL and this command is not used.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDB(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding admin user...")
	seedAdmin(db)

	color.Cyan("Seeding sample HR dataset...")
	seedDataset(db)

	color.Green("✅ Seeding completed!")
}

func seedAdmin(db *gorm.DB) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@uta.cl"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		color.Yellow("Admin '%s' already exists, skipping...", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error hashing admin password: %v", err)
	}
	hashStr := string(hash)

	admin := model.User{
		Email:        email,
		PasswordHash: &hashStr,
		FullName:     "Administrador RRHH",
		Role:         "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Error creating admin user: %v", err)
	}
	color.Green("Created admin: %s", email)
}

func seedDataset(db *gorm.DB) {
	datasetModels := []interface{}{
		&model.Persona{},
		&model.Funcion{},
		&model.TiempoContrato{},
		&model.Contrato{},
	}
	if err := db.AutoMigrate(datasetModels...); err != nil {
		log.Fatalf("Error migrating dataset tables: %v", err)
	}

	var count int64
	db.Model(&model.Contrato{}).Count(&count)
	if count > 0 {
		color.Yellow("Dataset already has %d contracts, skipping...", count)
		return
	}

	personas := []model.Persona{
		{IdPersona: 1, NombreCompleto: "María José Rojas Pérez"},
		{IdPersona: 2, NombreCompleto: "Juan Andrés Mamani Flores"},
		{IdPersona: 3, NombreCompleto: "Carolina Ester Zegarra Díaz"},
	}
	funciones := []model.Funcion{
		{IdFuncion: 1, GradoEus: 12, DescripcionFuncion: "Apoyo administrativo en la Dirección de Docencia", CalificacionProfesional: "Técnico de Nivel Superior"},
		{IdFuncion: 2, GradoEus: 8, DescripcionFuncion: "Asesoría jurídica en convenios institucionales", CalificacionProfesional: "Abogado"},
		{IdFuncion: 3, GradoEus: 10, DescripcionFuncion: "Soporte informático a laboratorios de computación", CalificacionProfesional: "Ingeniero en Informática"},
	}
	tiempos := []model.TiempoContrato{
		{IdTiempo: 1, Anho: 2024, Mes: "marzo", FechaInicio: date(2024, 3, 1), FechaTermino: date(2024, 3, 31), Region: "Arica y Parinacota"},
		{IdTiempo: 2, Anho: 2024, Mes: "abril", FechaInicio: date(2024, 4, 1), FechaTermino: date(2024, 4, 30), Region: "Arica y Parinacota"},
		{IdTiempo: 3, Anho: 2024, Mes: "abril", FechaInicio: date(2024, 4, 1), FechaTermino: date(2024, 4, 30), Region: "Tarapacá"},
	}
	contratos := []model.Contrato{
		{IdContrato: 1, IdPersona: 1, IdFuncion: 1, IdTiempo: 1, HonorarioTotalBruto: 850000, TipoPago: "mensual", Viaticos: "no", Observaciones: "", EnlaceFunciones: "https://transparencia.uta.cl/funciones/1"},
		{IdContrato: 2, IdPersona: 2, IdFuncion: 2, IdTiempo: 2, HonorarioTotalBruto: 2400000, TipoPago: "mensual", Viaticos: "si", Observaciones: "Incluye traslados a Santiago", EnlaceFunciones: "https://transparencia.uta.cl/funciones/2"},
		{IdContrato: 3, IdPersona: 3, IdFuncion: 3, IdTiempo: 3, HonorarioTotalBruto: 1300000, TipoPago: "mensual", Viaticos: "no", Observaciones: "", EnlaceFunciones: "https://transparencia.uta.cl/funciones/3"},
	}

	for _, p := range personas {
		if err := db.Create(&p).Error; err != nil {
			log.Printf("Error creating persona %d: %v", p.IdPersona, err)
		}
	}
	for _, f := range funciones {
		if err := db.Create(&f).Error; err != nil {
			log.Printf("Error creating funcion %d: %v", f.IdFuncion, err)
		}
	}
	for _, t := range tiempos {
		if err := db.Create(&t).Error; err != nil {
			log.Printf("Error creating tiempo %d: %v", t.IdTiempo, err)
		}
	}
	for _, c := range contratos {
		if err := db.Create(&c).Error; err != nil {
			log.Printf("Error creating contrato %d: %v", c.IdContrato, err)
		}
	}

	color.Green("Created %d personas, %d funciones, %d periodos, %d contratos",
		len(personas), len(funciones), len(tiempos), len(contratos))
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
