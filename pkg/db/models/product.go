package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a catalog listing.
type Product struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	Name         string          `gorm:"column:name;not null"`
	BatchCode    string          `gorm:"column:batch_code"`
	Description  string          `gorm:"column:description"`
	ChemCode     string          `gorm:"column:chem_code"`
	ExpDate      string          `gorm:"column:exp_date"`
	ElabDate     string          `gorm:"column:elab_date"`
	Cost         decimal.Decimal `gorm:"column:cost;type:numeric(12,2);not null"`
	Stock        int             `gorm:"column:stock;not null;default:0"`
	StockCritico int             `gorm:"column:stock_critico;not null;default:0"`
	Proveedor    string          `gorm:"column:proveedor"`
	CategoriaID  *uuid.UUID      `gorm:"column:categoria_id;type:uuid"`
	Categoria    *Category       `gorm:"foreignKey:CategoriaID"`
	Image        string          `gorm:"column:image"`
	ActiveStatus bool            `gorm:"column:active_status;not null"`
	Destacado    bool            `gorm:"column:destacado;not null;default:false"`
	CreationDate time.Time       `gorm:"column:creation_date;autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Product) TableName() string { return "productos" }

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
