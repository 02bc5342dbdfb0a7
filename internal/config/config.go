package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config содержит настройки приложения
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Rules    Rules
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Port string
}

// DatabaseConfig - настройки подключения к БД
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	Path     string
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Rules - неизменяемый набор бизнес-правил: имена ролей и границы валидации.
// Передаётся сервисам при создании.
type Rules struct {
	EmployeeRole string
	ManagerRole  string
	AdminRole    string

	DepartmentNameMinLength int
	DepartmentNameMaxLength int

	JobTitleNameMinLength int
	JobTitleNameMaxLength int

	FirstNameMinLength int
	FirstNameMaxLength int
	LastNameMinLength  int
	LastNameMaxLength  int

	UsernameMinLength int
	UsernameMaxLength int
	PasswordMinLength int
	PasswordMaxLength int

	SalaryMin decimal.Decimal
	SalaryMax decimal.Decimal
}

// RoleNames возвращает полный список ролей для первичного заполнения справочника
func (r Rules) RoleNames() []string {
	return []string{r.EmployeeRole, r.ManagerRole, r.AdminRole}
}

// DefaultRules возвращает правила по умолчанию
func DefaultRules() Rules {
	return Rules{
		EmployeeRole: "Employee",
		ManagerRole:  "Manager",
		AdminRole:    "HR Admin",

		DepartmentNameMinLength: 2,
		DepartmentNameMaxLength: 100,

		JobTitleNameMinLength: 2,
		JobTitleNameMaxLength: 50,

		FirstNameMinLength: 2,
		FirstNameMaxLength: 50,
		LastNameMinLength:  2,
		LastNameMaxLength:  50,

		UsernameMinLength: 3,
		UsernameMaxLength: 50,
		PasswordMinLength: 6,
		PasswordMaxLength: 20,

		SalaryMin: decimal.NewFromInt(0),
		SalaryMax: decimal.NewFromInt(10_000),
	}
}

// Load загружает конфигурацию из .env файла и переменных окружения
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "postgres"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "staffrecords"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			Path:     getEnv("DB_PATH", "staffrecords.db"),
		},
		Rules: DefaultRules(),
	}
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
