package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, utility *Utility) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Utility, error)
	List(ctx context.Context, db *gorm.DB) ([]Utility, error)
	ListByContract(ctx context.Context, db *gorm.DB, contractID snowflake.ID) ([]Utility, error)
}
