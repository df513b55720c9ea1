// Package productrepo reads the product catalog table with GORM.
package productrepo

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO mirrors the catalog's products table.
type ProductDTO struct {
	ID    int64           `gorm:"primaryKey;autoIncrement"`
	Name  string          `gorm:"not null"`
	Price decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Price)
}
