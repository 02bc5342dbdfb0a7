package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Department представляет подразделение организации
type Department struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	IsDeleted bool      `json:"is_deleted" gorm:"not null;default:false"`

	Users []UserRecord `json:"-" gorm:"foreignKey:DepartmentID"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// BeforeCreate присваивает идентификатор перед вставкой
func (d *Department) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// JobTitle представляет должность
type JobTitle struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(50);not null"`
	IsDeleted bool      `json:"is_deleted" gorm:"not null;default:false"`

	Users []UserRecord `json:"-" gorm:"foreignKey:JobTitleID"`
}

// TableName задаёт имя таблицы для GORM
func (JobTitle) TableName() string {
	return "job_titles"
}

// BeforeCreate присваивает идентификатор перед вставкой
func (j *JobTitle) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

// UserRecord представляет карточку сотрудника вместе с его учётной записью
type UserRecord struct {
	ID           uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	FirstName    string          `json:"first_name" gorm:"type:varchar(50);not null"`
	LastName     string          `json:"last_name" gorm:"type:varchar(50);not null"`
	Email        string          `json:"email" gorm:"type:varchar(50);not null;uniqueIndex"`
	Username     string          `json:"username" gorm:"type:varchar(50);not null;uniqueIndex"`
	PasswordHash string          `json:"-" gorm:"type:varchar(200);not null"`
	Salary       decimal.Decimal `json:"salary" gorm:"type:numeric(18,2);not null"`
	DepartmentID uuid.UUID       `json:"department_id" gorm:"type:uuid;not null;index"`
	JobTitleID   uuid.UUID       `json:"job_title_id" gorm:"type:uuid;not null;index"`
	IsDeleted    bool            `json:"is_deleted" gorm:"not null;default:false"`

	Department *Department `json:"-" gorm:"foreignKey:DepartmentID"`
	JobTitle   *JobTitle   `json:"-" gorm:"foreignKey:JobTitleID"`
	Roles      []Role      `json:"-" gorm:"many2many:user_roles;joinForeignKey:UserID;joinReferences:RoleID"`
}

// TableName задаёт имя таблицы для GORM
func (UserRecord) TableName() string {
	return "users"
}

// BeforeCreate присваивает идентификатор перед вставкой
func (u *UserRecord) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Role представляет роль из справочника учётных записей
type Role struct {
	ID   uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name string    `json:"name" gorm:"type:varchar(50);not null;uniqueIndex"`
}

// TableName задаёт имя таблицы для GORM
func (Role) TableName() string {
	return "roles"
}

// BeforeCreate присваивает идентификатор перед вставкой
func (r *Role) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
