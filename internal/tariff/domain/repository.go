package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, tariff *Tariff) error
	Update(ctx context.Context, db *gorm.DB, tariff *Tariff) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Tariff, error)
	List(ctx context.Context, db *gorm.DB) ([]Tariff, error)
	ListByContract(ctx context.Context, db *gorm.DB, contractID snowflake.ID) ([]Tariff, error)
	ListByUtility(ctx context.Context, db *gorm.DB, utilityID snowflake.ID) ([]Tariff, error)
}
