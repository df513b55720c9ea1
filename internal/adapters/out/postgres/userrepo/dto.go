// Package userrepo persists user aggregates with GORM. Deletion is soft.
package userrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// LiveEmailIndex keeps emails unique among users that are not deleted.
const LiveEmailIndex = "idx_users_email_live"

// UserDTO represents the database structure for persisting user aggregates.
type UserDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(254);not null;uniqueIndex:idx_users_email_live,where:deleted_at IS NULL"`
	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(16);not null;default:user"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	dto := UserDTO{
		Email:        aggregate.Email(),
		FirstName:    aggregate.FirstName(),
		LastName:     aggregate.LastName(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         aggregate.Role().String(),
	}
	if !aggregate.ID().IsZero() {
		dto.ID = aggregate.ID().Int64()
	}
	return dto
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Email, dto.FirstName, dto.LastName, dto.PasswordHash, user.Role(dto.Role))
}
